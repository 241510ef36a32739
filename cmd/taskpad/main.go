// Command taskpad is a terminal to-do list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskpad/internal/config"
	"taskpad/internal/logging"
	"taskpad/internal/storage"
	"taskpad/internal/task"
	"taskpad/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(os.Stderr, "\nInterrupted\n")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskpad", flag.ContinueOnError)
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *showVersion {
		fmt.Printf("taskpad %s\n", Version)
		return nil
	}

	logger, logFile, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Path:   cfg.LogPath(),
		Prefix: "taskpad",
	})
	if err != nil {
		return err
	}
	defer logFile.Close()

	prefs, err := storage.Open(cfg.PrefsPath())
	if err != nil {
		return fmt.Errorf("open preference store: %w", err)
	}

	store := task.NewStore(prefs)
	if err := store.Load(); err != nil {
		// Corrupt data is surfaced, never silently reset.
		return fmt.Errorf("%w (fix or remove %s)", err, cfg.PrefsPath())
	}

	dark, err := ui.LoadThemeFlag(prefs, cfg.DefaultTheme == "dark")
	if err != nil {
		return fmt.Errorf("read theme flag: %w", err)
	}

	logger.Info("starting", "version", Version, "tasks", store.Len(), "dark", dark)

	model := ui.New(cfg, store, prefs, logger, dark, Version)
	if err := ui.Run(ctx, model); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	logger.Info("exiting")
	return nil
}
