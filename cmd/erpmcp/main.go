package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Spok95/college-erp-mcp/internal/app"
	"github.com/Spok95/college-erp-mcp/internal/config"
	"github.com/Spok95/college-erp-mcp/internal/db"
	"github.com/Spok95/college-erp-mcp/internal/jobs"
	"github.com/Spok95/college-erp-mcp/internal/logging"
	"github.com/Spok95/college-erp-mcp/internal/observability"
	"github.com/Spok95/college-erp-mcp/internal/tools"
)

func main() {
	// Загрузка переменных окружения
	if err := godotenv.Load(); err != nil {
		log.Println("Не удалось загрузить .env файл, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("конфигурация: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("логгер: %v", err)
	}
	defer lg.Closer()

	closeSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, "erp-mcp-server")
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer closeSentry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		lg.Sugar.Fatalw("mongo connect failed", "err", err)
	}
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(shCtx)
	}()

	database := client.Database(cfg.DBName)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		lg.Sugar.Fatalw("index setup failed", "err", err)
	}

	// Сервисный HTTP: /healthz и /metrics. Основной трафик — stdio.
	app.StartHTTP(ctx, cfg.HTTPAddr, client)

	runner := jobs.New(ctx)
	runner.Every(time.Minute, "collection_gauges", jobs.RefreshCollectionGauges(database))

	srv := tools.New(database, lg.Sugar)
	lg.Sugar.Infow("erp mcp server started", "db", cfg.DBName, "http", cfg.HTTPAddr)
	if err := srv.ServeStdio(); err != nil {
		lg.Sugar.Fatalw("stdio server stopped", "err", err)
	}
}
