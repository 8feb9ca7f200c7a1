package health

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func init() {
	log.SetOutput(io.Discard)
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping(context.Context) error { return f.err }

func TestProbe_FollowsDatabase(t *testing.T) {
	db := &fakePinger{}
	s := NewServer(db)
	ctx := context.Background()

	if st := s.Probe(ctx); st != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status=%v", st)
	}
	res, err := s.hs.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil || res.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("Check: %v %v", res, err)
	}

	db.err = errors.New("connection refused")
	s.Probe(ctx)
	res, err = s.hs.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil || res.GetStatus() != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Fatalf("Check: %v %v", res, err)
	}
}
