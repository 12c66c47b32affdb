package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/jhonstore/admin-console/internal/cache"
	"github.com/jhonstore/admin-console/internal/config"
	"github.com/jhonstore/admin-console/internal/handler"
	"github.com/jhonstore/admin-console/internal/remote"
	"github.com/jhonstore/admin-console/internal/service"
	"github.com/jhonstore/admin-console/internal/session"
	"github.com/jhonstore/admin-console/internal/worker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session store: redis when configured, in-memory otherwise.
	var redisClient *redis.Client
	var sessionStore session.Store
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("connect to Redis", "error", err)
			os.Exit(1)
		}
		log.Info("connected to Redis")
		sessionStore = session.NewRedisStore(redisClient)
	} else {
		memStore := session.NewMemoryStore()
		memStore.StartJanitor(cfg.Session.SweepInterval)
		defer memStore.Stop()
		log.Info("using in-memory session store")
		sessionStore = memStore
	}

	sessions := session.NewHolder(sessionStore, cfg.Session.TTL, log)

	// Remote entity store
	store := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)

	// Entity caches, refreshed wholesale
	userCache := cache.New("usuarios", store.ListUsers)
	orderCache := cache.New("pedidos", store.ListOrders)
	detailCache := cache.New("pedido_detalle", store.ListOrderDetails)
	productCache := cache.New("productos", store.ListProducts)

	// Services
	authSvc := service.NewAuthService(service.NewStoreVerifier(store), sessions)
	userSvc := service.NewUserService(userCache)
	orderSvc := service.NewOrderService(store, store, orderCache, detailCache, productCache)
	productSvc := service.NewProductService(store, productCache, orderCache, detailCache)

	// Handlers
	authH := handler.NewAuthHandler(authSvc, cfg.Session.CookieName, int(cfg.Session.TTL.Seconds()))
	userH := handler.NewUserHandler(userSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	productH := handler.NewProductHandler(productSvc)
	healthH := handler.NewHealthHandler(redisClient)

	// Worker
	refresher := worker.NewRefresher(cfg.Cache.RefreshInterval, log,
		userCache, orderCache, detailCache, productCache)
	refresher.RefreshAll(ctx)
	refresher.Start(ctx)

	// Router
	router := gin.Default()
	router.Use(handler.SecurityHeaders())
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", handler.RequireSession(sessions, cfg.Session.CookieName), authH.Me)

		admin := api.Group("", handler.RequireSession(sessions, cfg.Session.CookieName))
		admin.GET("/users", userH.List)
		admin.GET("/users/stats", userH.Stats)

		admin.GET("/orders", orderH.List)
		admin.GET("/orders/:id", orderH.Detail)
		admin.PUT("/orders/:id/status", orderH.ChangeStatus)

		admin.GET("/products", productH.List)
		admin.GET("/products/stats", productH.SalesStats)
		admin.GET("/products/:id", productH.GetByID)
		admin.POST("/products", productH.Create)
		admin.PUT("/products/:id", productH.Update)
		admin.DELETE("/products/:id", productH.Delete)
	}

	if cfg.Server.StaticDir != "" {
		static := router.Group("", handler.BlockSensitiveFiles())
		static.Static("/app", cfg.Server.StaticDir)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	refresher.Stop()
	cancel()
	log.Info("server stopped")
}
