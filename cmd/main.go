package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Joako199002/proyecto-alzarea/pkg/api"
	"github.com/Joako199002/proyecto-alzarea/pkg/chat"
	"github.com/Joako199002/proyecto-alzarea/pkg/clients/groq"
	"github.com/Joako199002/proyecto-alzarea/pkg/config"
	"github.com/Joako199002/proyecto-alzarea/pkg/logging"
	"github.com/Joako199002/proyecto-alzarea/pkg/metrics"
	appmw "github.com/Joako199002/proyecto-alzarea/pkg/middleware"
	"github.com/Joako199002/proyecto-alzarea/pkg/prompting"
	"github.com/Joako199002/proyecto-alzarea/pkg/repository/upload"
	"github.com/Joako199002/proyecto-alzarea/pkg/session"
)

// shutdownGrace bounds how long in-flight requests may finish after a
// termination signal before the process force-exits.
const shutdownGrace = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config failed")
	}
	logging.Setup(cfg.Environment)

	reg := metrics.NewRegistry()

	store := session.NewMemoryStore(prompting.SystemPrompt(), cfg.Session.MaxSessions, cfg.Session.IdleTTL(), reg)
	uploads, err := upload.NewDiskRepository(cfg.Uploads.Dir, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}
	advisor := chat.NewAdvisor(store, groq.NewFromConfig(cfg.Groq), reg)

	server := echo.New()
	server.HideBanner = true
	server.Use(echomw.Recover())
	server.Use(appmw.RequestLogger(reg))
	server.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestedWith},
	}))

	api.NewHandlers(advisor, store, uploads, cfg).Register(server)
	server.GET("/metrics", reg.EchoHandlerText)
	server.GET("/metrics.json", reg.EchoHandlerJSON)
	server.Static("/imagenes", cfg.Uploads.ImagesDir)
	server.Static("/uploads", cfg.Uploads.Dir)

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("server started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown after grace period")
	}
	store.Shutdown()
	log.Info().Msg("server stopped")
}
