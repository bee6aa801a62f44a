package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/skypulse/config"
	"github.com/Domenick1991/skypulse/internal/amadeus"
	"github.com/Domenick1991/skypulse/internal/bootstrap"
	"github.com/Domenick1991/skypulse/internal/cache"
	"github.com/Domenick1991/skypulse/internal/mockdata"
	"github.com/Domenick1991/skypulse/internal/service/search"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := amadeus.NewClient(cfg.Amadeus, mockdata.NewGenerator(nil))

	opts := []search.SearchServiceOption{search.WithMaxResults(cfg.Search.MaxResults)}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.ResultsCacheTTL)*time.Second)
		opts = append(opts, search.WithCache(redisCache))
	}
	searchService := search.NewSearchService(client, search.NewStore(), opts...)

	if err := bootstrap.Run(ctx, cfg, searchService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
