// Package health exposes the standard gRPC health service. The serving status
// follows the reachability of the database.
package health

import (
	"context"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const ServiceName = "storefront"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	grpc *grpc.Server
	hs   *health.Server
	db   Pinger
}

func NewServer(db Pinger) *Server {
	hs := health.NewServer()
	g := grpc.NewServer()
	healthpb.RegisterHealthServer(g, hs)
	return &Server{grpc: g, hs: hs, db: db}
}

// Probe pings the database once and publishes the result.
func (s *Server) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := s.db.Ping(ctx); err != nil {
		log.Printf("[health] db ping: %v", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.hs.SetServingStatus("", st)
	s.hs.SetServingStatus(ServiceName, st)
	return st
}

// Watch probes every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	s.Probe(ctx)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Probe(ctx)
		}
	}
}

func (s *Server) Serve(l net.Listener) error {
	log.Printf("[health] grpc listening on %s", l.Addr())
	return s.grpc.Serve(l)
}

func (s *Server) Stop() {
	s.hs.Shutdown()
	s.grpc.GracefulStop()
}
