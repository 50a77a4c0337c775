package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maciejzgadzaj/commit-block/config"
	"github.com/maciejzgadzaj/commit-block/fetcher"
	"github.com/maciejzgadzaj/commit-block/pipeline"
	"github.com/maciejzgadzaj/commit-block/web"
)

func main() {
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var cfgPath string
	var once bool
	flag.StringVar(&cfgPath, "config", config.DefaultPath(), "path to a TOML config")
	flag.BoolVar(&once, "once", false, "print the aggregated commit list to stdout and exit")
	flag.Parse()

	// Read config and create if default is missing
	conf, err := config.Read(cfgPath)
	if errors.Is(err, os.ErrNotExist) && cfgPath == config.DefaultPath() {
		if err := config.Write(cfgPath, conf); err != nil {
			log.Fatalf("failed to write default config with %s", err)
		}
	} else if err != nil {
		log.Fatalf("failed to read config with %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f := fetcher.New(time.Duration(conf.FetchTimeoutSecs) * time.Second)
	p, err := pipeline.New(f, pipeline.SourcesFor(conf), conf.Count)
	if err != nil {
		log.Fatalf("failed to initialize pipeline with %s", err)
	}

	if once {
		for _, c := range p.Run(ctx) {
			fmt.Printf("%-31s %-10s %s\n", c.Date, c.ShortHash(), c.Title)
		}
		return
	}

	server := web.NewServer(conf, p)
	httpServer := &http.Server{Addr: conf.Listen, Handler: server.Router}

	go func() {
		<-ctx.Done()
		slog.Info("interrupted by user, shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	slog.Info("serving commit block", "listen", conf.Listen)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed with %s", err)
	}
}
