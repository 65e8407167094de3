// ABOUTME: Entry point for the tinyim-auth account service
// ABOUTME: Serves registration, login, token verification, and friend management over gRPC

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

	"github.com/myluster/TinyIM/internal/auth"
	"github.com/myluster/TinyIM/internal/client"
	"github.com/myluster/TinyIM/internal/config"
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

	db, err := store.Open(ctx, cfg.MySQL)
	if err != nil {
		return fmt.Errorf("opening mysql: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	rdb := store.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	if err := store.PingRedis(ctx, rdb); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	presenceConn, err := client.Dial(cfg.Services.PresenceAddr)
	if err != nil {
		return fmt.Errorf("presence service: %w", err)
	}
	defer presenceConn.Close()

	svc := auth.NewService(db, auth.NewTokenStore(rdb), client.NewPresence(presenceConn))

	ln, err := net.Listen("tcp", cfg.Services.AuthListen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Services.AuthListen, err)
	}

	server := grpc.NewServer()
	pb.RegisterAuthServiceServer(server, svc)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("auth service listening", "addr", ln.Addr().String())
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down auth service")
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
