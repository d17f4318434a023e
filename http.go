package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/FlagBrew/local-dex/internal/auth"
	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/handlers/dex"
	"github.com/FlagBrew/local-dex/internal/metrics"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/lrstanley/chix"
)

func httpServer(ctx context.Context) *http.Server {
	chix.DefaultAPIPrefix = "/api/"

	r := chi.NewRouter()

	r.Use(
		chix.UseContextIP,
		middleware.RequestID,
		chix.UseStructuredLogger(logger),
		chix.UseDebug(cli.Debug),
		chix.UseRecoverer,
		middleware.Compress(5),
		middleware.Maybe(middleware.StripSlashes, func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/debug/")
		}),
		chix.UseNextURL,
	)

	if cfg.HTTP.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.HTTP.RateLimit, time.Minute))
	}

	if cli.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	r.Get("/", index)
	r.Get("/health", health)
	r.Handle("/metrics", metrics.Handler())
	r.Route("/api/v1", dex.NewHandler(&cfg.HTTP, auth.NewStatic(&cfg.Admin)).Route)

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port),
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
		// Some sane defaults.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

func index(w http.ResponseWriter, r *http.Request) {
	chix.JSON(w, r, http.StatusOK, chix.M{
		"name":    "local-dex",
		"version": "v1",
		"resources": chix.M{
			string(models.KindPokemon): "/api/v1/pokemon",
			string(models.KindMove):    "/api/v1/moves",
			string(models.KindAbility): "/api/v1/abilities",
			string(models.KindItem):    "/api/v1/items",
		},
	})
}

func health(w http.ResponseWriter, r *http.Request) {
	client := database.FromContext(r.Context())
	if client == nil {
		chix.JSON(w, r, http.StatusServiceUnavailable, chix.M{"status": "unavailable", "error": "db is nil"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		log.FromContext(r.Context()).WithError(err).Error("health check failed")
		chix.JSON(w, r, http.StatusServiceUnavailable, chix.M{"status": "unavailable", "error": err.Error()})
		return
	}
	chix.JSON(w, r, http.StatusOK, chix.M{"status": "ok"})
}
