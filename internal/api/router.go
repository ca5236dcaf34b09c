package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/itsprakash91/flood-relief-connect/internal/api/handlers/http/admin"
	"github.com/itsprakash91/flood-relief-connect/internal/api/handlers/http/public"
	"github.com/itsprakash91/flood-relief-connect/internal/api/handlers/http/stream"
	"github.com/itsprakash91/flood-relief-connect/internal/api/handlers/http/system"
	"github.com/itsprakash91/flood-relief-connect/internal/config"
	"github.com/itsprakash91/flood-relief-connect/internal/events"
	"github.com/itsprakash91/flood-relief-connect/internal/middleware"
	"github.com/itsprakash91/flood-relief-connect/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, hub *events.Hub) *Server {
	publicHandler := public.NewHandler(logger, svc.RequestService, svc.QueryService, svc.DonationService)
	adminHandler := admin.NewHandler(logger, svc.RequestService, svc.DashboardService, svc.DonationService)
	streamHandler := stream.NewHandler(logger, hub)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, publicHandler, adminHandler, streamHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	publicHandler *public.Handler,
	adminHandler *admin.Handler,
	streamHandler *stream.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Identity)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/requests", func(rr chi.Router) {
			// Creation stays open to anonymous victims; reads are public.
			rr.With(middleware.Limit(10, 20, 5*time.Minute, logger)).Post("/", publicHandler.RequestCreate)
			rr.Get("/", publicHandler.RequestList)
			rr.Get("/nearby", publicHandler.RequestNearby)

			rr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", publicHandler.RequestGet)
				ir.With(middleware.RequireIdentity).Patch("/", publicHandler.RequestUpdate)
			})
		})

		api.Route("/me", func(mr chi.Router) {
			mr.Use(middleware.RequireIdentity)
			mr.Get("/requests", publicHandler.MyRequests)
			mr.Get("/assigned", publicHandler.MyAssignedRequests)
			mr.Get("/donations", publicHandler.MyDonations)
		})

		api.Route("/donations", func(dr chi.Router) {
			dr.With(middleware.RequireIdentity).Post("/", publicHandler.DonationCreate)
			// Payment collaborator callback; no end-user identity involved.
			dr.With(middleware.APIKey(cfg.APIKey)).Post("/{id}/complete", adminHandler.DonationComplete)
		})

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.APIKey))
			ar.Use(middleware.RequireIdentity)
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/dashboard", adminHandler.AdminDashboard)
			ar.Get("/donations", adminHandler.AdminDonations)
			ar.Get("/audit-logs", adminHandler.AdminAuditLogs)
			ar.Patch("/requests/{id}/status", adminHandler.AdminRequestOverride)
		})

		api.Get("/events", streamHandler.Events)
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:        port,
		Handler:     s.router,
		ReadTimeout: s.cfg.Http.ReadTimeout,
		// SSE streams are long-lived; WriteTimeout would cut them off.
		WriteTimeout: 0,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
