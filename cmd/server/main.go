package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/httpserver"
	"github.com/example/storefront/internal/logging"
	"github.com/example/storefront/internal/repo"
	"github.com/example/storefront/internal/search"
	"github.com/example/storefront/internal/service"
	"github.com/example/storefront/pkg/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	config.MustNonEmpty(cfg.DBHost, "DB_HOST")
	config.MustNonEmpty(cfg.DBUser, "DB_USER")
	config.MustNonEmpty(cfg.DBName, "DB_NAME")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DSN())
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, events.Topic)
	defer producer.Close()

	rp := &repo.GormRepo{DB: gdb}
	userSvc := &service.UserService{Repo: rp}
	authSvc := &service.AuthService{Repo: rp, Users: userSvc, JWTSecret: cfg.JWTSecret}
	itemSvc := &service.ItemService{Repo: rp}
	bevSvc := &service.BeverageService{Repo: rp}
	orderSvc := &service.OrderService{Repo: rp}

	deps := &httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Auth: authSvc, Users: userSvc, Producer: producer},
		UserHandler:     &httpserver.UserHTTP{Svc: userSvc, Producer: producer},
		ItemHandler:     &httpserver.ItemHTTP{Svc: itemSvc, Producer: producer},
		BeverageHandler: &httpserver.BeverageHTTP{Svc: bevSvc, Producer: producer},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc, Producer: producer},
		SearchHandler:   &httpserver.SearchHTTP{},
		JWTSecret:       cfg.JWTSecret,
	}

	if cfg.ESUrl != "" {
		es, err := search.NewClient(cfg)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search disabled", "error", err)
		} else {
			deps.ItemHandler.ES = es
			deps.BeverageHandler.ES = es
			deps.SearchHandler.ES = es
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Use(httpserver.RequestLogger(logger))

	httpserver.Register(e, deps)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.ServerPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
