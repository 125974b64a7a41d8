// dungeon-crawl-server runs the shared dungeon: an SSH front end that draws
// the game with tcell, and a websocket JSON API for scripted clients. Both
// drive the same game handler and store. Build:
//
//	go build -o dungeon-crawl-server ./cmd/server
//
// Usage:
//
//	./dungeon-crawl-server [--port 2222] [--key host_key] [--ws :8080]
//
// Connect with:
//
//	ssh -t -p 2222 alice@localhost
package main

import (
	"context"
	"dungeon-crawl/internal/config"
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/ssh"
	"dungeon-crawl/internal/store"
	"dungeon-crawl/internal/ws"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownGrace = 5 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags lets command-line flags override the listen settings loaded from
// the environment.
func applyFlags(args []string, cfg *config.Config) error {
	fs := flag.NewFlagSet("dungeon-crawl-server", flag.ContinueOnError)
	fs.IntVar(&cfg.SSHPort, "port", cfg.SSHPort, "SSH server port")
	fs.StringVar(&cfg.HostKeyPath, "key", cfg.HostKeyPath, "Path to the PEM-encoded host key (generated if absent)")
	fs.StringVar(&cfg.WSAddr, "ws", cfg.WSAddr, "Websocket API listen address; empty disables it")
	fs.StringVar(&cfg.Backend, "store", cfg.Backend, "Storage backend: memory, sqlite, postgres or file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return nil
}

func seed(cfg config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(args, &cfg); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	historyDir, err := config.DataDir(cfg.DataDir)
	if err != nil {
		logger.Warn("crawl history disabled", "error", err)
		historyDir = ""
	}

	h := game.NewHandler(st, rand.New(rand.NewSource(seed(cfg))), logger, game.Options{
		Winter:     cfg.Winter,
		LobbyTTL:   cfg.LobbyTTL,
		HistoryDir: historyDir,
	})

	signer, err := ssh.LoadOrCreateHostKey(cfg.HostKeyPath, logger)
	if err != nil {
		return err
	}
	sshSrv := ssh.NewServer(fmt.Sprintf(":%d", cfg.SSHPort), signer, h, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		logger.Info("ssh server listening", "port", cfg.SSHPort, "store", cfg.Backend)
		errCh <- sshSrv.ListenAndServe()
	}()

	var httpSrv *nethttp.Server
	if cfg.WSAddr != "" {
		mux := nethttp.NewServeMux()
		mux.HandleFunc("/ws", ws.NewHandler(h, logger).Handle)
		httpSrv = &nethttp.Server{Addr: cfg.WSAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			logger.Info("websocket api listening", "addr", cfg.WSAddr)
			if err := httpSrv.ListenAndServe(); !errors.Is(err, nethttp.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		logger.Error("server stopped", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if httpSrv != nil {
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("websocket shutdown", "error", err)
		}
	}
	if err := sshSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("ssh shutdown", "error", err)
	}
	return nil
}
