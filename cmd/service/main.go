package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-service/config"
	"restaurant-service/internal/producer"
	"restaurant-service/internal/repository"
	"restaurant-service/internal/service"
	transport "restaurant-service/internal/transport/http"
	"restaurant-service/pkg/database"
	"restaurant-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)
	catalog := service.NewCatalogLookup(repos.Catalog)

	// Kafka опциональна: без брокеров события просто не публикуются
	var events service.EventBus
	if len(cfg.KafkaBrokers) > 0 {
		p := producer.NewOrderEventProducer(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		defer p.Close()
		events = p
	}

	svc := service.NewOrderService(repos.Orders, catalog, events)

	router := transport.Router(svc, []byte(cfg.JWTSecret), log)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting restaurant HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down restaurant HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Shutdown error", zap.Error(err))
	}
	log.Info("Restaurant HTTP server stopped gracefully")
}
