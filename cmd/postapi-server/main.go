package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dfryer1193/postapi/internal/config"
	"github.com/dfryer1193/postapi/internal/logging"
	"github.com/dfryer1193/postapi/internal/metrics"
	"github.com/dfryer1193/postapi/internal/middleware"
	"github.com/dfryer1193/postapi/internal/rest"
	"github.com/dfryer1193/postapi/posts/application"
	"github.com/dfryer1193/postapi/posts/persistence"
	"github.com/dfryer1193/postapi/shared/db/sqlite"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Apply(cfg.LogLevel, cfg.LogFile)

	database := sqlite.New(&sqlite.Config{DSN: cfg.DatabaseURL})
	if err := database.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	postRepo := persistence.NewPostRepository(database.DB())
	postService := application.NewPostService(postRepo)

	metricsManager := metrics.NewManager()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	router.Use(cors.Default())
	router.Use(middleware.MetricsMiddleware(metricsManager))

	rest.NewApi(router, postService, metricsManager)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
