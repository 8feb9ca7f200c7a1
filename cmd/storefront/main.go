package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/MikeMC777/food-storefront/docs"
	"github.com/MikeMC777/food-storefront/internal/cart"
	"github.com/MikeMC777/food-storefront/internal/config"
	"github.com/MikeMC777/food-storefront/internal/database"
	"github.com/MikeMC777/food-storefront/internal/health"
	"github.com/MikeMC777/food-storefront/internal/menu"
	"github.com/MikeMC777/food-storefront/internal/order"
	"github.com/MikeMC777/food-storefront/internal/proxy"
	"github.com/MikeMC777/food-storefront/internal/user"
)

// @title        Food Storefront API
// @version      1.0
// @description  Menu, cart, checkout and order history for the food storefront.
// @BasePath     /api
func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Open(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	defer pool.Close()

	var menuRepo menu.Repository = menu.NewPGRepo(pool)
	if cfg.RedisURL != "" {
		cache, err := menu.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("[menu] cache disabled: %v", err)
		} else {
			defer cache.Close()
			menuRepo = menu.NewCachedRepo(menuRepo, cache, cfg.MenuCacheTTL)
		}
	}

	var events order.Publisher = order.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		pub, err := order.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			log.Printf("[order] events disabled: %v", err)
		} else {
			defer pub.Close()
			events = pub
		}
	}

	hs := health.NewServer(pool)
	go hs.Watch(ctx, 15*time.Second)
	lis, err := net.Listen("tcp", cfg.HealthGRPCAddr)
	if err != nil {
		log.Fatalf("[health] listen %s: %v", cfg.HealthGRPCAddr, err)
	}
	go func() {
		if err := hs.Serve(lis); err != nil {
			log.Printf("[health] serve: %v", err)
		}
	}()
	defer hs.Stop()

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(deps{
		Menu:      menuRepo,
		Cart:      cart.NewPGRepo(pool),
		Orders:    order.NewService(order.NewPGRepo(pool), events, cfg.DeliveryETA),
		Accounts:  user.NewService(user.NewPGRepo(pool)),
		Images:    proxy.NewImageProxy(cfg.ImageProxyTimeout),
		StaticDir: cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("storefront listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[http] shutdown: %v", err)
	}
}
