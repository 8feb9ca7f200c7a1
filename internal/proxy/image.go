// Package proxy fetches remote menu images on behalf of the browser.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrBadURL   = errors.New("invalid image url")
	ErrUpstream = errors.New("failed to fetch image")
)

type ImageProxy struct {
	HTTP *http.Client
}

func NewImageProxy(timeout time.Duration) *ImageProxy {
	return &ImageProxy{HTTP: &http.Client{Timeout: timeout}}
}

// Fetch issues a GET for rawURL. On success the caller owns res.Body.
func (p *ImageProxy) Fetch(ctx context.Context, rawURL string) (*http.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrBadURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, ErrBadURL
	}
	res, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUpstream, res.Status)
	}
	return res, nil
}
