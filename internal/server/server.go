// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/paksentiment/paksentiment/internal/config"
	myGRPC "github.com/paksentiment/paksentiment/internal/handler/grpc"
	"github.com/paksentiment/paksentiment/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	startOnce    sync.Once
	startErr     error
	shutdownOnce sync.Once
}

// NewServer creates the HTTP server for handler and, when cfg.GRPCAddress is
// set, a gRPC server exposing the standard health service. Nothing is bound
// until Start.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if handler != nil {
		servers.httpServer = newHTTPServer(handler, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(myGRPC.NewHandler(logger), cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) Start() error {
	s.startOnce.Do(func() {
		s.startErr = s.start()
	})
	return s.startErr
}

func (s *server) start() error {
	if s.httpServer != nil {
		if err := s.httpServer.Listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.Listen(); err != nil {
			if s.httpServer != nil {
				s.httpServer.Close()
			}
			return err
		}
	}

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.Addr()).Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	return nil
}

func (s *server) HTTPAddr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr()
}

func (s *server) RunServer() {
	if err := s.Start(); err != nil {
		s.logger.Error().Err(err).Msg("Error running server")
		return
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		// finish HTTP server
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}

		// finish gRPC server
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
