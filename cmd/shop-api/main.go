// @title        Shop API
// @version      1.0
// @description  Catalog, customers, shopping cart and orders for a t-shirt shop.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/shop-api/internal/audit"
	"github.com/MikeMC777/shop-api/internal/auth"
	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/config"
	"github.com/MikeMC777/shop-api/internal/customer"
	"github.com/MikeMC777/shop-api/internal/db"
	"github.com/MikeMC777/shop-api/internal/idempotency"
	"github.com/MikeMC777/shop-api/internal/logging"
	"github.com/MikeMC777/shop-api/internal/order"
	"github.com/MikeMC777/shop-api/internal/review"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	defer pool.Close()

	var guard idempotency.Guard = idempotency.Nop{}
	if cfg.Redis.Addr != "" {
		g := idempotency.NewRedisGuard(cfg.Redis)
		if err := g.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, idempotency keys degrade to best effort", zap.Error(err))
		}
		defer func() { _ = g.Close() }()
		guard = g
	}

	var rec audit.Recorder = audit.Nop{}
	if cfg.Mongo.URI != "" {
		m, err := audit.NewMongoRecorder(ctx, cfg.Mongo)
		if err != nil {
			logger.Warn("mongo unreachable, audit trail disabled", zap.Error(err))
		} else {
			defer func() { _ = m.Close(context.Background()) }()
			rec = m
		}
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	shippingRepo := shipping.NewPGRepo(pool)
	svc := services{
		catalog:   catalog.NewService(catalog.NewPGRepo(pool)),
		customers: customer.NewService(customer.NewPGRepo(pool), auth.Bcrypt{Cost: cfg.BcryptCost}, tokens, shippingRepo, rec, logger),
		carts:     cart.NewService(cart.NewPGRepo(pool)),
		orders:    order.NewService(order.NewPGStore(pool), guard, rec, logger),
		reviews:   review.NewService(review.NewPGRepo(pool)),
		taxes:     tax.NewPGRepo(pool),
		shipping:  shippingRepo,
		tokens:    tokens,
	}

	if cfg.Log.Mode != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(logger, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("shop-api listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
