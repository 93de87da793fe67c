package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"digital_store/internal/config"
	"digital_store/internal/events"
	"digital_store/internal/handlers"
	"digital_store/internal/httpserver"
	"digital_store/internal/logging"
	"digital_store/internal/middleware"
	"digital_store/internal/repo"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, configuration)
	cancel()
	if err != nil {
		logger.Error("db init failed", "error", err)
		os.Exit(1)
	}

	var producer events.Publisher
	if configuration.KAFKA_ADDRESS != "" {
		p := events.NewProducer(configuration.KAFKA_ADDRESS)
		defer p.Close()
		producer = p
	}

	jwtSecret := []byte(configuration.JWT_SECRET)
	gormRepo := &repo.GormRepo{DB: db}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		UserHandler:     &handlers.UserHandler{Repo: gormRepo, JWTSecret: jwtSecret, Producer: producer},
		CategoryHandler: &handlers.CategoryHandler{Repo: gormRepo, Producer: producer},
		ProductHandler:  &handlers.ProductHandler{Repo: gormRepo, Producer: producer},
		JWTSecret:       jwtSecret,
	})

	go func() {
		if err := e.Start(configuration.HTTP_ADDRESS); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server start failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}
