package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mierzida/FLP-forBBK/internal/catalog"
	"github.com/mierzida/FLP-forBBK/internal/config"
	"github.com/mierzida/FLP-forBBK/internal/feed"
	"github.com/mierzida/FLP-forBBK/internal/httpapi"
	"github.com/mierzida/FLP-forBBK/internal/hub"
	"github.com/mierzida/FLP-forBBK/internal/session"
)

func main() {
	cfg := config.Load()

	logCfg := zap.NewProductionConfig()
	if cfg.Debug {
		logCfg = zap.NewDevelopmentConfig()
	}
	log, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("failed to load team catalog", zap.Error(err))
	}

	feedClient := feed.NewClient(cfg.FeedBaseURL, cfg.FeedAPIKey, cfg.FeedCacheTTL, log)

	ctx := context.Background()
	h := hub.NewHub(ctx, session.Config{
		Feed:         feedClient,
		PollInterval: cfg.PollInterval,
		Log:          log,
	})

	handler := httpapi.SetupRoutes(h, cat, log)

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
