// Package main contains the entrypoint for the NodeSeek daily check-in bot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edgard/nodeseek-signbot/internal/bot"
	"github.com/edgard/nodeseek-signbot/internal/bot/tasks"
	"github.com/edgard/nodeseek-signbot/internal/checkin"
	"github.com/edgard/nodeseek-signbot/internal/config"
	"github.com/edgard/nodeseek-signbot/internal/health"
	"github.com/edgard/nodeseek-signbot/internal/logger"
	"github.com/edgard/nodeseek-signbot/internal/notify"
	"github.com/edgard/nodeseek-signbot/internal/quotes"
	"github.com/edgard/nodeseek-signbot/internal/signin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run wires config, logger, check-in client, notifier and scheduler, then either
// performs a single pass (-once) or serves until ctx is canceled.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	once := flag.Bool("once", false, "Run a single check-in pass and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	accounts := cfg.ConfiguredAccounts()
	if len(accounts) == 0 {
		log.Warn("No account slot has both NS_COOKIE_<i> and USER_<i> set")
	}
	log.Info("Accounts configured", "count", len(accounts), "notifications", cfg.Telegram.Enabled())

	notifier, err := notify.New(cfg.Telegram, log)
	if err != nil {
		log.Error("Failed to create notifier", "error", err)
		return 1
	}

	client := checkin.NewClient(cfg.CheckIn, nil, log)
	orchestrator := signin.New(cfg, client, notifier, quotes.NewPicker(nil), log)

	if *once {
		results, err := orchestrator.Run(ctx)
		for _, msg := range results {
			fmt.Println(msg)
			fmt.Println()
		}
		if err != nil {
			log.Error("Check-in pass aborted", "error", err)
			return 1
		}
		return 0
	}

	tDeps := tasks.TaskDeps{
		Logger: log,
		SignIn: orchestrator,
	}
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, sched, health.NewServer(cfg.HTTP.Addr, log))

	log.Info("Starting bot...")
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
