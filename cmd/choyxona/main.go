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
	"github.com/labstack/echo/v4/middleware"

	"github.com/OtabekMamajonov/choyxona-bot/internal/bot"
	"github.com/OtabekMamajonov/choyxona-bot/internal/config"
	"github.com/OtabekMamajonov/choyxona-bot/internal/events"
	"github.com/OtabekMamajonov/choyxona-bot/internal/intake"
	"github.com/OtabekMamajonov/choyxona-bot/internal/logging"
	"github.com/OtabekMamajonov/choyxona-bot/internal/menu"
	"github.com/OtabekMamajonov/choyxona-bot/internal/repo"
	"github.com/OtabekMamajonov/choyxona-bot/internal/summary"
	"github.com/OtabekMamajonov/choyxona-bot/internal/webapp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone error: %v", err)
	}

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	initCancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	catalogue := menu.Default()
	orders := repo.New(db)
	producer := events.NewProducer(cfg.KafkaAddr, logger)
	bridge := intake.New(catalogue, orders, producer, logger)
	aggregator := summary.New(orders, loc)

	b, err := bot.New(bot.Options{
		Token:      cfg.BotToken,
		WebAppURL:  cfg.WebAppURL,
		Bridge:     bridge,
		Aggregator: aggregator,
		Location:   loc,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("bot init error: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(logging.RequestLogger(logger))

	webapp.Register(e, &webapp.Deps{Catalogue: catalogue})

	srv := &http.Server{
		Addr:         cfg.WebAppAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := b.Run(ctx); err != nil {
			log.Printf("bot error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
