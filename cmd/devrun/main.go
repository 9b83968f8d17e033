package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"valuekit/cmd"
	"valuekit/internal/devserver"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	configs := getConfigs()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix: "devrun",
	})
	slogger := slog.New(logger)

	localIP := devserver.LocalIP()
	logger.Info("Starting development server", "os", runtime.GOOS, "watching", strings.Join(configs.ReloadDirs, ", "))
	logger.Info(fmt.Sprintf("Local:   http://127.0.0.1:%s", configs.HTTPPort))
	logger.Info(fmt.Sprintf("Network: http://%s:%s", localIP, configs.HTTPPort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := devserver.NewRunner("./cmd/app", []string{
		"HTTP_HOST=0.0.0.0",
		"HTTP_PORT=" + configs.HTTPPort,
	}, slogger)

	if err := runner.Start(ctx); err != nil {
		logger.Fatal("Failed to start application", "error", err)
	}

	watcher := devserver.NewWatcher(configs.ReloadDirs, configs.ReloadPatterns, func() {
		logger.Info("Change detected, restarting")
		if err := runner.Restart(ctx); err != nil {
			logger.Error("Failed to restart application", "error", err)
		}
	}, slogger)

	if err := watcher.Start(); err != nil {
		logger.Fatal("Failed to start watcher", "error", err)
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	watcher.Stop()
	if err := runner.Stop(); err != nil {
		logger.Error("Failed to stop application", "error", err)
	}
}

func getConfigs() cmd.Config {
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       cmd.EnvOrDefault("HTTP_PORT", "8000"),
		ReloadDirs:     []string{"cmd", "internal", "api"},
		ReloadPatterns: []string{".go", ".json"},
	}
}
