// Package main is the entry point for the Tutor Engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/anthropics/tutor-engine/internal/calc"
	"github.com/anthropics/tutor-engine/internal/config"
	"github.com/anthropics/tutor-engine/internal/guard"
	"github.com/anthropics/tutor-engine/internal/ipc"
	"github.com/anthropics/tutor-engine/internal/solver"
	"github.com/anthropics/tutor-engine/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to configuration JSON file")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tutor %s (commit=%s, built=%s)\n", version, commit, date)
		os.Exit(0)
	}

	// A .env next to the binary may carry TUTOR_CONFIG.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Resolve config path: --config flag > TUTOR_CONFIG env > auto-discover.
	path := *configPath
	if path == "" {
		path = os.Getenv("TUTOR_CONFIG")
	}
	if path == "" {
		path = discoverConfig()
	}

	var cfg *config.Config
	if path == "" {
		logger.Info("no config file found, using defaults")
		cfg = config.Default()
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			logger.Fatal("load config", zap.String("path", path), zap.Error(err))
		}
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	manager, err := calc.New(cfg.CacheSize)
	if err != nil {
		logger.Fatal("create calculator", zap.Error(err))
	}

	handler := &ipc.Handler{
		Solver:      solver.New(),
		Calc:        manager,
		Guard:       guard.New(cfg.RateLimitPerMinute, cfg.MaxQuestionLen),
		DB:          db,
		HistoryRepo: &store.HistoryRepo{},
		CalcLogRepo: &store.CalcLogRepo{},
		Logger:      logger,
		History:     cfg.History(),
	}

	srv := ipc.NewServer(handler, cfg.ListenAddr)

	// Graceful shutdown on interrupt.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("tutor engine listening", zap.String("addr", cfg.ListenAddr))

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// discoverConfig looks for config.json next to the executable, then in the cwd.
func discoverConfig() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "config.json")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	if _, err := os.Stat("config.json"); err == nil {
		return "config.json"
	}
	return ""
}
