package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"user-records/internal/config"
	"user-records/internal/repository/memory"
	"user-records/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := configureLogger(logger, cfg); err != nil {
		logger.Fatalf("configure logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entry := startRun(logger)

	if err := run(ctx, os.Stdout, cfg, time.Now, logger); err != nil {
		entry.Fatalf("run demo: %v", err)
	}
	entry.Info("demo finished")
}

// startRun tags the run's log lines with a fresh run_id and announces the start.
func startRun(logger *logrus.Logger) *logrus.Entry {
	entry := logger.WithField("run_id", uuid.NewString())
	entry.Info("demo started")
	return entry
}

func configureLogger(logger *logrus.Logger, cfg config.Config) error {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// run registers the configured user, prints its info and the birth years of
// the configured ages.
func run(ctx context.Context, w io.Writer, cfg config.Config, now func() time.Time, logger *logrus.Logger) error {
	users := service.NewUserService(memory.NewUserRepository(), service.Options{
		Logger:   logger,
		Now:      now,
		Notifier: w,
	})

	_, user, err := users.Register(ctx, cfg.Demo.Name, cfg.Demo.Email, cfg.Demo.Age)
	if err != nil {
		return err
	}

	for _, field := range user.Info() {
		if _, err := fmt.Fprintf(w, "%s: %v\n", field.Key, field.Value); err != nil {
			return err
		}
	}

	years := service.BirthYears(now(), cfg.Demo.Ages)
	_, err = fmt.Fprintf(w, "\nBirth years: %s\n", formatList(years))
	return err
}

// formatList renders ints as "[a, b, c]".
func formatList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
