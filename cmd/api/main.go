package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "visit-map-api/docs"
	"visit-map-api/internal/config"
	"visit-map-api/internal/handler"
	"visit-map-api/internal/logging"
	"visit-map-api/internal/repository"
	"visit-map-api/internal/service"
	"visit-map-api/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//	@title			Visit Map API
//	@version		1.0
//	@description	Customer locations, visit schedules and marker styling for the field map.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logging.Setup(config.LogLevel, config.LogFormat, os.Stderr)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot apply schema")
	}

	templates, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse templates")
	}

	// Initialize layers
	markerService := service.NewMarkerService(repo)
	searchService := service.NewSearchService(repo, markerService)
	adminService := service.NewAdminService(repo)

	r := handler.NewRouter(handler.Handlers{
		Pages: handler.NewPageHandler(
			service.NewAuthService(repo),
			service.NewOrgSettingsService(repo),
			adminService,
			handler.MapSettings{APIKey: config.GoogleMapsAPIKey, MapID: config.MapID},
		),
		Admin:        handler.NewAdminHandler(adminService),
		Customers:    handler.NewCustomerHandler(service.NewCustomerService(repo)),
		Visits:       handler.NewVisitHandler(service.NewVisitService(repo)),
		Markers:      handler.NewMarkerHandler(markerService, searchService),
		UserSettings: handler.NewUserSettingsHandler(service.NewUserSettingsService(repo)),
	}, handler.RouterOptions{
		AllowedOrigins: config.AllowedOrigins(),
		Templates:      templates,
		Health:         repo.Ping,
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
