package http_server

import (
	"context"
	"errors"
	"github.com/codesync/autocomplete-server/config"
	"github.com/codesync/autocomplete-server/http_server/routes"
	"github.com/codesync/autocomplete-server/service"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"net/http"
	"time"
)

// NewRouter registers every route and wraps the router in the middleware
// chain. CORS sits outermost so preflight requests never reach mux.
func NewRouter(cfg *config.Config, s *service.Service) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	routes.AutocompleteRoute(router, s)
	routes.HealthRoute(router, cfg)

	return cors(cfg.AllowedOrigin, requestID(accessLog(recovery(router))))
}

// HandleRequests serves until ctx is cancelled, then shuts down gracefully.
func HandleRequests(ctx context.Context, cfg *config.Config, s *service.Service) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, s),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// upstream calls may take up to UpstreamTimeout
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("autocomplete server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	return g.Wait()
}
