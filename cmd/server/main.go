package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	shipmentapp "github.com/billymitchell/J-Charles-Shipment-Processing/internal/application/shipment"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/infrastructure/config"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/infrastructure/fulfillment"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/infrastructure/logger"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/interfaces/http/handler"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/interfaces/http/middleware"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("starting shipment processing service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("fulfillment_endpoint", cfg.Fulfillment.Endpoint),
	)

	fulfillmentClient, err := fulfillment.NewClient(fulfillment.Config{
		Endpoint: cfg.Fulfillment.Endpoint,
		Timeout:  cfg.Fulfillment.Timeout,
	})
	if err != nil {
		log.Fatal("fulfillment client init failed", zap.Error(err))
	}

	submissionService := shipmentapp.NewSubmissionService(shipmentapp.SubmissionServiceConfig{
		Gateway: fulfillmentClient,
		Logger:  log,
	})

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("trusted proxies not applied", zap.Error(err))
		}
	}

	// RequestID must run before the request logger so every log line
	// carries the ID.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	router.Mount(engine, "v1",
		handler.NewShipmentHandler(submissionService),
		handler.NewSystemHandler(cfg.App.Name),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown did not complete cleanly", zap.Error(err))
	}
	log.Info("shutdown complete")
}
