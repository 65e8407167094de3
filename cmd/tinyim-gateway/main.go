// ABOUTME: Entry point for the tinyim-gateway edge node
// ABOUTME: Serves WebSocket sessions and the REST API, routing frames between edges

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/fatih/color"

	"github.com/myluster/TinyIM/internal/config"
	"github.com/myluster/TinyIM/internal/gateway"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
  _   _             ___ __  __
 | |_(_)_ __  _   _|_ _|  \/  |
 | __| | '_ \| | | || || |\/| |
 | |_| | | | | |_| || || |  | |
  \__|_|_| |_|\__, |___|_|  |_|
              |___/
`

// getConfigPath returns the path to the TinyIM config file.
// Priority: TINYIM_CONFIG env var > XDG_CONFIG_HOME/tinyim/config.yaml > ~/.config/tinyim/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("TINYIM_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "tinyim", "config.yaml")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tinyim-gateway <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve   Start the edge gateway")
		fmt.Println("  init    Create a new config file interactively")
		fmt.Println("  health  Check gateway health")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	case "health":
		err = runHealth(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	// Version info
	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)

	wsPath := cfg.Gateway.WSPath
	if wsPath == "" {
		wsPath = "/ws"
	}

	// Startup info
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Print("    ▶ ")
	fmt.Printf("Config:    %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:      %s\n", cfg.Gateway.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("WebSocket: %s\n", wsPath)
	green.Print("    ▶ ")
	fmt.Printf("Redis:     ")
	cyan.Print(cfg.Redis.Addr())
	if cfg.Redis.Sentinel.Enabled() {
		yellow.Printf(" [sentinel %s]", cfg.Redis.Sentinel.MasterName)
	}
	fmt.Println()
	green.Print("    ▶ ")
	fmt.Printf("Auth:      %s\n", cfg.Services.AuthAddr)
	green.Print("    ▶ ")
	fmt.Printf("Chat:      %s\n", cfg.Services.ChatAddr)
	green.Print("    ▶ ")
	fmt.Printf("Presence:  %s\n", cfg.Services.PresenceAddr)

	if cfg.Gateway.ID != "" {
		green.Print("    ▶ ")
		fmt.Printf("Edge ID:   %s\n", cfg.Gateway.ID)
	}

	fmt.Println()

	logger.Info("starting tinyim-gateway",
		"config", configPath,
		"http_addr", cfg.Gateway.HTTPAddr,
		"ws_path", wsPath,
	)

	// Create and run gateway
	gw, err := gateway.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating gateway: %w", err)
	}

	return gw.Run(ctx)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = &colorHandler{
			level: level,
		}
	}

	return slog.New(handler)
}

// colorHandler provides colorized log output with thread-safe writes.
type colorHandler struct {
	mu     sync.Mutex
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf strings.Builder

	// Format timestamp
	buf.WriteString(color.HiBlackString(r.Time.Format("15:04:05") + " "))

	// Colorize level
	switch r.Level {
	case slog.LevelDebug:
		buf.WriteString(color.MagentaString("DBG "))
	case slog.LevelInfo:
		buf.WriteString(color.CyanString("INF "))
	case slog.LevelWarn:
		buf.WriteString(color.YellowString("WRN "))
	case slog.LevelError:
		buf.WriteString(color.New(color.FgRed, color.Bold).Sprint("ERR "))
	default:
		buf.WriteString("??? ")
	}

	// Print message
	buf.WriteString(r.Message)

	// Print handler-level attrs first (from WithAttrs)
	for _, a := range h.attrs {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
	}

	// Print record attrs
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(color.HiBlackString(" " + a.Key + "="))
		buf.WriteString(a.Value.String())
		return true
	})

	buf.WriteString("\n")
	fmt.Print(buf.String())
	return nil
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &colorHandler{
		level:  h.level,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups), len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups = append(newGroups, name)
	return &colorHandler{
		level:  h.level,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

func runHealth(ctx context.Context) error {
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Make HTTP request to health endpoint with context
	url := fmt.Sprintf("http://%s/healthz", cfg.Gateway.HTTPAddr)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}

func runInit() error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("TinyIM configuration setup")
	fmt.Println("==========================")
	fmt.Println()

	defaultConfigPath := getConfigPath()

	// Output filename
	outputFile := prompt(reader, "Config file path", defaultConfigPath)

	// Check if file exists
	if _, err := os.Stat(outputFile); err == nil {
		overwrite := prompt(reader, "File exists. Overwrite?", "no")
		if strings.ToLower(overwrite) != "yes" && strings.ToLower(overwrite) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Gateway configuration
	fmt.Println("\n--- Gateway Configuration ---")
	httpAddr := prompt(reader, "HTTP address", "0.0.0.0:8080")
	edgeID := prompt(reader, "Edge ID (leave empty to auto-generate)", "")

	// MySQL
	fmt.Println("\n--- MySQL Configuration ---")
	mysqlHost := prompt(reader, "MySQL host", "127.0.0.1")
	mysqlPort := prompt(reader, "MySQL port", "3306")
	mysqlUser := prompt(reader, "MySQL user", "tinyim")
	mysqlPassword := prompt(reader, "MySQL password", "")
	mysqlDatabase := prompt(reader, "MySQL database", "tinyim")
	replicaHost := prompt(reader, "Read-replica host (leave empty for single node)", "")
	var replicaPort string
	if replicaHost != "" {
		replicaPort = prompt(reader, "Read-replica port", "3306")
	}

	// Redis
	fmt.Println("\n--- Redis Configuration ---")
	redisHost := prompt(reader, "Redis host", "127.0.0.1")
	redisPort := prompt(reader, "Redis port", "6379")
	redisPassword := prompt(reader, "Redis password", "")
	sentinelMaster := prompt(reader, "Sentinel master name (leave empty to disable)", "")
	var sentinelHost, sentinelPort string
	if sentinelMaster != "" {
		sentinelHost = prompt(reader, "Sentinel host", "127.0.0.1")
		sentinelPort = prompt(reader, "Sentinel port", "26379")
	}

	// Services
	fmt.Println("\n--- Service Configuration ---")
	authAddr := prompt(reader, "Auth service address", "127.0.0.1:50051")
	chatAddr := prompt(reader, "Chat service address", "127.0.0.1:50052")
	presenceAddr := prompt(reader, "Presence service address", "127.0.0.1:50053")

	// Logging
	fmt.Println("\n--- Logging Configuration ---")
	logLevel := prompt(reader, "Log level (debug/info/warn/error)", "info")
	logFormat := prompt(reader, "Log format (text/json)", "text")

	// Generate config
	var cfg strings.Builder
	cfg.WriteString("# TinyIM configuration\n")
	cfg.WriteString("# Generated by tinyim-gateway init\n\n")

	cfg.WriteString("gateway:\n")
	if edgeID != "" {
		cfg.WriteString(fmt.Sprintf("  id: \"%s\"\n", edgeID))
	}
	cfg.WriteString(fmt.Sprintf("  http_addr: \"%s\"\n", httpAddr))
	cfg.WriteString("  ws_path: \"/ws\"\n")
	cfg.WriteString("  heartbeat_idle: \"60s\"\n")
	cfg.WriteString("  heartbeat_dead: \"150s\"\n")
	cfg.WriteString("  reconcile_interval: \"30s\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("mysql:\n")
	cfg.WriteString("  primary:\n")
	cfg.WriteString(fmt.Sprintf("    host: \"%s\"\n", mysqlHost))
	cfg.WriteString(fmt.Sprintf("    port: %s\n", mysqlPort))
	cfg.WriteString(fmt.Sprintf("    user: \"%s\"\n", mysqlUser))
	if mysqlPassword != "" {
		cfg.WriteString(fmt.Sprintf("    password: \"%s\"\n", mysqlPassword))
	}
	cfg.WriteString(fmt.Sprintf("    database: \"%s\"\n", mysqlDatabase))
	if replicaHost != "" {
		cfg.WriteString("  replica:\n")
		cfg.WriteString(fmt.Sprintf("    host: \"%s\"\n", replicaHost))
		cfg.WriteString(fmt.Sprintf("    port: %s\n", replicaPort))
		cfg.WriteString(fmt.Sprintf("    user: \"%s\"\n", mysqlUser))
		if mysqlPassword != "" {
			cfg.WriteString(fmt.Sprintf("    password: \"%s\"\n", mysqlPassword))
		}
		cfg.WriteString(fmt.Sprintf("    database: \"%s\"\n", mysqlDatabase))
	}
	cfg.WriteString("\n")

	cfg.WriteString("redis:\n")
	cfg.WriteString(fmt.Sprintf("  host: \"%s\"\n", redisHost))
	cfg.WriteString(fmt.Sprintf("  port: %s\n", redisPort))
	if redisPassword != "" {
		cfg.WriteString(fmt.Sprintf("  password: \"%s\"\n", redisPassword))
	}
	if sentinelMaster != "" {
		cfg.WriteString("  sentinel:\n")
		cfg.WriteString(fmt.Sprintf("    host: \"%s\"\n", sentinelHost))
		cfg.WriteString(fmt.Sprintf("    port: %s\n", sentinelPort))
		cfg.WriteString(fmt.Sprintf("    master_name: \"%s\"\n", sentinelMaster))
	}
	cfg.WriteString("\n")

	cfg.WriteString("services:\n")
	cfg.WriteString(fmt.Sprintf("  auth_listen: \"%s\"\n", authAddr))
	cfg.WriteString(fmt.Sprintf("  chat_listen: \"%s\"\n", chatAddr))
	cfg.WriteString(fmt.Sprintf("  presence_listen: \"%s\"\n", presenceAddr))
	cfg.WriteString(fmt.Sprintf("  auth_addr: \"%s\"\n", authAddr))
	cfg.WriteString(fmt.Sprintf("  chat_addr: \"%s\"\n", chatAddr))
	cfg.WriteString(fmt.Sprintf("  presence_addr: \"%s\"\n", presenceAddr))
	cfg.WriteString("\n")

	cfg.WriteString("presence:\n")
	cfg.WriteString("  logout_grace: \"2s\"\n")
	cfg.WriteString("\n")

	cfg.WriteString("logging:\n")
	cfg.WriteString(fmt.Sprintf("  level: \"%s\"\n", logLevel))
	cfg.WriteString(fmt.Sprintf("  format: \"%s\"\n", logFormat))
	cfg.WriteString("\n")

	cfg.WriteString("metrics:\n")
	cfg.WriteString("  enabled: false\n")
	cfg.WriteString("  path: \"/metrics\"\n")

	// Ensure config directory exists
	configDir := filepath.Dir(outputFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write config file
	if err := os.WriteFile(outputFile, []byte(cfg.String()), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Printf("\nConfig written to %s\n", outputFile)
	fmt.Println("\nTo start the services:")
	fmt.Printf("  tinyim-auth && tinyim-chat && tinyim-presence\n")
	fmt.Printf("  tinyim-gateway serve\n")

	return nil
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s [%s]: ", question, defaultVal)
	} else {
		fmt.Printf("%s: ", question)
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		// On EOF or error, return default
		fmt.Println()
		return defaultVal
	}
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultVal
	}
	return input
}
