package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"biocat/internal/config"
	apphttp "biocat/internal/http"
	"biocat/internal/notify"
	"biocat/internal/repository/kvstore"
	"biocat/internal/service"
	storesqlite "biocat/internal/store/sqlite"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storesqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	kv := storesqlite.NewKV(db)
	if err := kv.Init(ctx); err != nil {
		logger.Fatalf("init store: %v", err)
	}

	productRepo := kvstore.NewProductRepository(kv, logger.WithField("collection", "products"))
	clientRepo := kvstore.NewClientRepository(kv, logger.WithField("collection", "clients"))
	if err := productRepo.Load(ctx); err != nil {
		logger.Fatalf("load products: %v", err)
	}
	if err := clientRepo.Load(ctx); err != nil {
		logger.Fatalf("load clients: %v", err)
	}

	feed := notify.NewFeed(50, logger.WithField("component", "notifications"))

	authService, err := service.NewAuthService(kv, cfg.Auth.Username, cfg.Auth.Password, logger.WithField("component", "auth"))
	if err != nil {
		logger.Fatalf("setup auth: %v", err)
	}
	productService := service.NewProductService(productRepo, feed)
	clientService := service.NewClientService(clientRepo, feed)
	themeService := service.NewThemeService(kv, logger.WithField("component", "theme"))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		authService,
		productService,
		clientService,
		themeService,
		feed,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
