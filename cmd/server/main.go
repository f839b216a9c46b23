package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkpost/internal/api"
	"inkpost/internal/api/view"
	"inkpost/internal/app/service"
	"inkpost/internal/common/security"
	"inkpost/internal/domain/repository"
	"inkpost/internal/platform/config"
	"inkpost/internal/platform/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	// 1. Load Configuration
	config.Load()
	log.Info().Msg("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	log.Info().Msg("JWT initialized.")

	// 3. Initialize on-disk storage layout
	storage.Init()
	log.Info().Str("blogs", config.AppConfig.BlogsDir).Str("users", config.AppConfig.UsersFile).Msg("Storage ready.")

	// 4. Initialize Repositories
	userRepo := repository.NewFileUserRepository(config.AppConfig.UsersFile)
	postRepo := repository.NewFilePostRepository(config.AppConfig.BlogsDir)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo)
	blogService := service.NewBlogService(postRepo)

	// 6. Initialize View & Router
	v, err := view.New(config.AppConfig.TemplatesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not load templates")
	}
	router := api.NewRouter(authService, blogService, v)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.AppPort).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Could not listen")
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped gracefully.")
}
