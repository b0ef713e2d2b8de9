package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mgregory22/priorities"
	"github.com/mgregory22/priorities/console"
	"github.com/mgregory22/priorities/internal/app"
	"github.com/mgregory22/priorities/internal/config"
	"github.com/mgregory22/priorities/internal/logging"
	"github.com/mgregory22/priorities/internal/store"
)

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = ""
	}
	configPath := flag.String("config", defaultConfig, "Path to config.yaml")
	showVersion := flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(priorities.UserAgent())
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Printf("starting %s", priorities.UserAgent())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		Logger:       logger,
		HistoryLimit: cfg.HistoryLimit,
		Prompts:      cfg.Prompts,
	}
	if cfg.DataFile != "" {
		st, err := store.Open(ctx, cfg.DataFile)
		if err != nil {
			logger.Printf("open store: %v", err)
			return err
		}
		defer st.Close()
		opts.Store = st
	}

	con, err := console.Open()
	if err != nil {
		return err
	}
	defer con.Close()
	con.SetWidth(cfg.Width)

	a := app.New(con, opts)
	if err := a.Load(ctx); err != nil {
		logger.Printf("%v", err)
		return err
	}
	if err := a.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Printf("terminated")
			return nil
		}
		logger.Printf("%v", err)
		return err
	}
	return nil
}
