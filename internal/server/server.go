// Package server exposes the checks as a JSON API.
package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"Beamcalc/internal/auth"
	"Beamcalc/internal/calc/anchorage"
	"Beamcalc/internal/calc/converter"
	"Beamcalc/internal/calc/flexure"
	"Beamcalc/internal/calc/loads"
	"Beamcalc/internal/calc/minsteel"
	"Beamcalc/internal/calc/premium/autodesign"
	"Beamcalc/internal/calc/premium/batch"
	"Beamcalc/internal/calc/premium/importer"
	"Beamcalc/internal/calc/premium/recommend"
	"Beamcalc/internal/calc/report"
	"Beamcalc/internal/calc/shear"
	"Beamcalc/internal/config"
	"Beamcalc/internal/errors"
	"Beamcalc/internal/logging"
	"Beamcalc/internal/respond"
)

type Server struct {
	cfg     config.Config
	version string
}

func New(cfg config.Config, version string) *Server {
	return &Server{cfg: cfg, version: version}
}

// Router builds the routes with every middleware applied.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.NewIPRateLimiter(rate.Limit(s.cfg.RateLimit.RPS), s.cfg.RateLimit.Burst).LimitMiddleware)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)

	tools := api.PathPrefix("/tools").Subrouter()
	if s.cfg.Auth.Enabled() {
		tools.Use(auth.New(s.cfg.Auth).AuthMiddleware)
	} else {
		logging.Warn("token key not set, the API is open")
	}
	tools.Use(s.limitBody)

	tools.HandleFunc("/flexure/calc", (&flexure.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/shear/calc", (&shear.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/anchorage/calc", (&anchorage.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/minsteel/calc", (&minsteel.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/convert/calc", (&converter.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/loads/calc", (&loads.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/recommend/calc", (&recommend.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/autodesign/calc", (&autodesign.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/batch/calc", (&batch.Handler{}).Calc).Methods(http.MethodPost)
	tools.HandleFunc("/import/flexure", (&importer.Handler{}).Flexure).Methods(http.MethodPost)

	reportH := &report.Handler{Defaults: report.Meta{
		Project: s.cfg.Report.Project,
		Author:  s.cfg.Report.Author,
		Locale:  s.cfg.Report.Locale,
	}}
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	var h http.Handler = r
	h = cors(h)
	h = logRequests(h)
	h = recoverPanics(h)
	h = requestID(h)
	return h
}

// Run serves until ctx is done, then drains connections for
// Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		logging.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.Bool("tls", s.cfg.Server.TLSCert != ""),
			zap.Bool("auth", s.cfg.Auth.Enabled()),
		)
		var err error
		if s.cfg.Server.TLSCert != "" {
			err = srv.ListenAndServeTLS(s.cfg.Server.TLSCert, s.cfg.Server.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return errors.Internal("server stopped", err).WithContext("addr", srv.Addr)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Internal("shutdown", err)
	}
	<-errc
	logging.Info("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func writeError(w http.ResponseWriter, status int, message string) {
	respond.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
