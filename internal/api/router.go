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

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api/handlers/http/ngo"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api/handlers/http/public"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api/handlers/http/system"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/api/handlers/http/volunteer"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/config"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/middleware"
	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	ngoHandler := ngo.NewHandler(logger, svc.NGOService, svc.PublicService)
	volunteerHandler := volunteer.NewHandler(logger, svc.VolunteerService, svc.PublicService)
	publicHandler := public.NewHandler(logger, svc.PublicService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, ngoHandler, volunteerHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	ngoHandler *ngo.Handler,
	volunteerHandler *volunteer.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// NGO: key-guarded organization surface.
		api.Route("/ngo", func(nr chi.Router) {
			nr.Use(middleware.APIKey(cfg.APIKey))
			nr.Use(middleware.Limit(5, 10, 10*time.Minute, logger))

			nr.Route("/camps", func(cr chi.Router) {
				cr.Post("/", ngoHandler.CampDeploy)
				cr.Get("/", ngoHandler.CampList)
				cr.Post("/assign", ngoHandler.VolunteersAssign)

				cr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", ngoHandler.CampGet)
					rr.Post("/close", ngoHandler.CampClose)
					rr.Get("/reports", ngoHandler.CampReports)
				})
			})

			nr.Route("/reports", func(rr chi.Router) {
				rr.Post("/{id}/approve", ngoHandler.ReportApprove)
				rr.Post("/{id}/reject", ngoHandler.ReportReject)
			})

			nr.Get("/stream", ngoHandler.ReportStream)
		})

		// VOLUNTEER
		api.Route("/volunteers", func(vr chi.Router) {
			vr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			vr.Post("/", volunteerHandler.VolunteerRegister)
			vr.Get("/", volunteerHandler.VolunteerList)

			vr.Route("/{id}", func(rr chi.Router) {
				rr.Get("/", volunteerHandler.VolunteerGet)
				rr.Get("/dashboard", volunteerHandler.VolunteerDashboard)
				rr.Post("/join", volunteerHandler.CampJoin)
				rr.Post("/leave", volunteerHandler.CampLeave)
				rr.Post("/reports", volunteerHandler.ReportSubmit)
				rr.Get("/stream", volunteerHandler.NotificationStream)
			})
		})

		// PUBLIC
		api.Route("/health-data", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/", publicHandler.HealthSubmit)
			pr.Get("/overview", publicHandler.HealthOverview)
			pr.Get("/areas", publicHandler.HealthAreaStats)
		})

		api.Route("/environment", func(er chi.Router) {
			er.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			er.Get("/{area}", publicHandler.EnvironmentByArea)
			er.Get("/{area}/history", publicHandler.AQIHistory)
		})

		api.Route("/risk", func(rr chi.Router) {
			rr.Use(middleware.Limit(5, 10, 5*time.Minute, logger))
			rr.Get("/areas", publicHandler.RiskAreas)
		})

		// SYSTEM
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
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
