package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"rentapi/internal/database"
	"rentapi/internal/router"
	"rentapi/internal/store"
	"rentapi/pkg/config"
	"rentapi/pkg/logger"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger := logger.GetLogger()
	appLogger.Info("Starting rental API...")

	// 初始化存储
	st, err := openStore(cfg)
	if err != nil {
		appLogger.Fatalf("Failed to initialize store: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			appLogger.Error("Failed to close store:", err)
		}
	}()

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := router.SetupRouter(router.Options{
		Store:    st,
		Config:   cfg,
		Registry: registry,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// 启动服务
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	appLogger.Infof("Server started on port %s (store=%s)", cfg.Server.Port, cfg.Store.Driver)

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown:", err)
	}
	appLogger.Info("Server exited")
}

// openStore 根据 STORE_DRIVER 选择存储，默认内存
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Store.Driver == "memory" {
		return store.NewMemory(), nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := store.AutoMigrate(db); err != nil {
		return nil, err
	}
	return store.NewGorm(db), nil
}
