package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"github.com/dylan-park/TradeBell/internal/application"
	"github.com/dylan-park/TradeBell/internal/config"
	"github.com/dylan-park/TradeBell/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", logx.Error(err))
		os.Exit(1)
	}

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cfg.App.LogLevel,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(log)

	if err := application.Run(ctx, cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
