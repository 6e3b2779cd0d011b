package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Xizillimax/homework-bot/internal/config"
	"github.com/Xizillimax/homework-bot/internal/notifier/telegram"
	"github.com/Xizillimax/homework-bot/internal/scheduler"
	"github.com/Xizillimax/homework-bot/internal/service"
	"github.com/Xizillimax/homework-bot/internal/source/practicum"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Bootstrap logger until the config tells us level and file sink.
	logger := setupLogger("info", os.Stdout)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logWriter := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	logger = setupLogger(cfg.Log.Level, logWriter)

	notifier, err := telegram.New(telegram.Config{
		Token:  cfg.Telegram.Token,
		ChatID: cfg.Telegram.ChatID,
	}, logger)
	if err != nil {
		logger.Error("failed to create telegram notifier", "error", err)
		os.Exit(1)
	}

	source := practicum.New(practicum.Config{
		Endpoint: cfg.Practicum.Endpoint,
		Token:    cfg.Practicum.Token,
		Timeout:  cfg.Practicum.Timeout.Std(),
	}, logger)

	startCursor := time.Now().Add(-cfg.Poll.Lookback.Std()).Unix()
	watcher := service.NewWatcher(source, notifier, logger, startCursor)

	sched := scheduler.NewScheduler(watcher, cfg.Poll.Interval.Std(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting homework bot",
		"endpoint", cfg.Practicum.Endpoint,
		"interval", cfg.Poll.Interval.Std(),
		"lookback", cfg.Poll.Lookback.Std(),
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}
