// Package mine_api exposes the mining service over HTTP.
package mine_api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rskv-p/fpgrowth/pkg/x_log"
	"github.com/rskv-p/fpgrowth/servs/s_mine/mine_serv"
)

const (
	requestTimeout  = 2 * time.Minute
	shutdownTimeout = 5 * time.Second
)

// Router wires the REST endpoints.
func Router(svc *mine_serv.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(x_log.New("http")))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth(svc))

	r.Route("/api", func(r chi.Router) {
		// websocket streams live as long as the client listens
		r.Get("/mine/stream", handleStream(svc))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))
			r.Post("/mine", handleMine(svc))
			r.Get("/stats", handleStats(svc))
			r.Get("/runs", handleListRuns(svc))
			r.Get("/runs/{id}", handleGetRun(svc))
			r.Delete("/runs/{id}", handleDeleteRun(svc))
		})
	})
	return r
}

// Serve runs the API on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, svc *mine_serv.Service) error {
	log := x_log.New("http")
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger logs one line per request on zerolog.
func requestLogger(log x_log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Str("req", middleware.GetReqID(r.Context())).
					Dur("elapsed", time.Since(start)).
					Msg("request")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
