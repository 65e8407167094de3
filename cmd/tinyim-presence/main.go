// ABOUTME: Entry point for the tinyim-presence status service
// ABOUTME: Tracks online state with logout debounce and broadcasts status changes to friends

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"google.golang.org/grpc"

	"github.com/myluster/TinyIM/internal/config"
	"github.com/myluster/TinyIM/internal/presence"
	"github.com/myluster/TinyIM/internal/routing"
	"github.com/myluster/TinyIM/internal/store"
	pb "github.com/myluster/TinyIM/proto/im"
)

func main() {
	configPath := flag.String("config", "", "config file (default: $TINYIM_CONFIG or ~/.config/tinyim/config.yaml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	if configPath == "" {
		configPath = defaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Friend lists come from the read replica; status broadcasts ride the
	// same Redis bus the gateways subscribe to.
	db, err := store.Open(ctx, cfg.MySQL)
	if err != nil {
		return fmt.Errorf("opening mysql: %w", err)
	}
	defer db.Close()

	rdb := store.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	if err := store.PingRedis(ctx, rdb); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	router := routing.NewRouter(routing.NewDirectory(rdb), routing.NewBus(rdb))

	svc := presence.NewService(rdb, db, router, cfg.Presence.LogoutGrace)
	defer svc.Close()

	ln, err := net.Listen("tcp", cfg.Services.PresenceListen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Services.PresenceListen, err)
	}

	server := grpc.NewServer()
	pb.RegisterPresenceServiceServer(server, svc)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("presence service listening", "addr", ln.Addr().String(),
			"logout_grace", cfg.Presence.LogoutGrace.String())
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down presence service")
	server.GracefulStop()
	return nil
}

// defaultConfigPath resolves the config file the same way tinyim-gateway does.
func defaultConfigPath() string {
	if envPath := os.Getenv("TINYIM_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "tinyim", "config.yaml")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
