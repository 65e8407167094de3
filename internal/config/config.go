// ABOUTME: Configuration loading and parsing for the TinyIM services
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete TinyIM deployment configuration. All
// services read the same file and pick out their own sections.
type Config struct {
	Gateway  GatewayConfig  `yaml:"gateway"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Redis    RedisConfig    `yaml:"redis"`
	Services ServicesConfig `yaml:"services"`
	Presence PresenceConfig `yaml:"presence"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// GatewayConfig holds edge-node configuration
type GatewayConfig struct {
	// ID identifies this edge in the routing directory and topic names.
	// Left empty, the gateway generates one at startup.
	ID            string `yaml:"id"`
	HTTPAddr      string `yaml:"http_addr"` // serves WebSocket upgrades and the REST API
	WSPath        string `yaml:"ws_path"`
	MaxFrameBytes int64  `yaml:"max_frame_bytes"`
	WorkerPool    int    `yaml:"worker_pool"`
	WorkerQueue   int    `yaml:"worker_queue"`

	HeartbeatIdle     time.Duration `yaml:"-"`
	HeartbeatDead     time.Duration `yaml:"-"`
	ReconcileInterval time.Duration `yaml:"-"`

	// Raw string values for YAML unmarshaling
	HeartbeatIdleRaw     string `yaml:"heartbeat_idle"`
	HeartbeatDeadRaw     string `yaml:"heartbeat_dead"`
	ReconcileIntervalRaw string `yaml:"reconcile_interval"`
}

// MySQLConfig holds the primary pool and an optional read-replica pool.
// An absent replica section falls back to the primary (single-node mode).
type MySQLConfig struct {
	Primary MySQLNodeConfig `yaml:"primary"`
	Replica MySQLNodeConfig `yaml:"replica"`
}

// MySQLNodeConfig describes one MySQL endpoint
type MySQLNodeConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	PoolSize int    `yaml:"pool_size"`
}

// Addr returns the host:port of the node.
func (n MySQLNodeConfig) Addr() string {
	return net.JoinHostPort(n.Host, strconv.Itoa(n.Port))
}

// SingleNode reports whether the replica config collapses onto the primary.
func (m MySQLConfig) SingleNode() bool {
	return m.Replica == m.Primary
}

// RedisConfig holds cache/bus configuration, with optional Sentinel
// master discovery.
type RedisConfig struct {
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port"`
	Password string         `yaml:"password"`
	PoolSize int            `yaml:"pool_size"`
	Sentinel SentinelConfig `yaml:"sentinel"`
}

// SentinelConfig holds Redis Sentinel endpoints for master discovery
type SentinelConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	MasterName string `yaml:"master_name"`
}

// Addr returns the host:port of the Redis endpoint.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// Addr returns the host:port of the Sentinel endpoint.
func (s SentinelConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Enabled reports whether Sentinel discovery is configured.
func (s SentinelConfig) Enabled() bool {
	return s.MasterName != ""
}

// ServicesConfig holds the gRPC listen addresses and the peer addresses
// the gateway dials.
type ServicesConfig struct {
	AuthListen     string `yaml:"auth_listen"`
	ChatListen     string `yaml:"chat_listen"`
	PresenceListen string `yaml:"presence_listen"`

	AuthAddr     string `yaml:"auth_addr"`
	ChatAddr     string `yaml:"chat_addr"`
	PresenceAddr string `yaml:"presence_addr"`
}

// PresenceConfig holds presence-service tuning
type PresenceConfig struct {
	LogoutGrace time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	LogoutGraceRaw string `yaml:"logout_grace"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds metrics endpoint configuration
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	// Parse duration fields
	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyDefaults fills in the optional fields that have sensible defaults.
func (c *Config) applyDefaults() {
	if c.Gateway.WSPath == "" {
		c.Gateway.WSPath = "/ws"
	}
	if c.Gateway.MaxFrameBytes == 0 {
		c.Gateway.MaxFrameBytes = 64 * 1024
	}
	if c.Gateway.WorkerPool == 0 {
		c.Gateway.WorkerPool = 64
	}
	if c.Gateway.WorkerQueue == 0 {
		c.Gateway.WorkerQueue = 1024
	}
	if c.Gateway.HeartbeatIdleRaw == "" {
		c.Gateway.HeartbeatIdleRaw = "60s"
	}
	if c.Gateway.HeartbeatDeadRaw == "" {
		c.Gateway.HeartbeatDeadRaw = "120s"
	}
	if c.Gateway.ReconcileIntervalRaw == "" {
		c.Gateway.ReconcileIntervalRaw = "1m"
	}
	if c.MySQL.Primary.Port == 0 {
		c.MySQL.Primary.Port = 3306
	}
	if c.MySQL.Primary.PoolSize == 0 {
		c.MySQL.Primary.PoolSize = 10
	}
	// An absent replica section falls back to the primary.
	if c.MySQL.Replica.Host == "" {
		c.MySQL.Replica = c.MySQL.Primary
	}
	if c.MySQL.Replica.Port == 0 {
		c.MySQL.Replica.Port = 3306
	}
	if c.MySQL.Replica.PoolSize == 0 {
		c.MySQL.Replica.PoolSize = c.MySQL.Primary.PoolSize
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.Sentinel.Port == 0 {
		c.Redis.Sentinel.Port = 26379
	}
	if c.Presence.LogoutGraceRaw == "" {
		c.Presence.LogoutGraceRaw = "2s"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Gateway.HTTPAddr == "" {
		return fmt.Errorf("gateway.http_addr is required")
	}

	if c.MySQL.Primary.Host == "" {
		return fmt.Errorf("mysql.primary.host is required")
	}
	if c.MySQL.Primary.User == "" {
		return fmt.Errorf("mysql.primary.user is required")
	}
	if c.MySQL.Primary.Database == "" {
		return fmt.Errorf("mysql.primary.database is required")
	}

	// Sentinel discovery replaces the direct Redis address
	if !c.Redis.Sentinel.Enabled() && c.Redis.Host == "" {
		return fmt.Errorf("redis.host is required (or configure redis.sentinel)")
	}
	if c.Redis.Sentinel.Enabled() && c.Redis.Sentinel.Host == "" {
		return fmt.Errorf("redis.sentinel.host is required when sentinel is enabled")
	}

	if c.Services.AuthListen == "" {
		return fmt.Errorf("services.auth_listen is required")
	}
	if c.Services.ChatListen == "" {
		return fmt.Errorf("services.chat_listen is required")
	}
	if c.Services.PresenceListen == "" {
		return fmt.Errorf("services.presence_listen is required")
	}
	if c.Services.AuthAddr == "" {
		return fmt.Errorf("services.auth_addr is required")
	}
	if c.Services.ChatAddr == "" {
		return fmt.Errorf("services.chat_addr is required")
	}
	if c.Services.PresenceAddr == "" {
		return fmt.Errorf("services.presence_addr is required")
	}

	if c.Gateway.HeartbeatDead <= c.Gateway.HeartbeatIdle {
		return fmt.Errorf("gateway.heartbeat_dead must be greater than gateway.heartbeat_idle")
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Gateway.HeartbeatIdleRaw != "" {
		cfg.Gateway.HeartbeatIdle, err = time.ParseDuration(cfg.Gateway.HeartbeatIdleRaw)
		if err != nil {
			return fmt.Errorf("parsing heartbeat_idle %q: %w", cfg.Gateway.HeartbeatIdleRaw, err)
		}
	}

	if cfg.Gateway.HeartbeatDeadRaw != "" {
		cfg.Gateway.HeartbeatDead, err = time.ParseDuration(cfg.Gateway.HeartbeatDeadRaw)
		if err != nil {
			return fmt.Errorf("parsing heartbeat_dead %q: %w", cfg.Gateway.HeartbeatDeadRaw, err)
		}
	}

	if cfg.Gateway.ReconcileIntervalRaw != "" {
		cfg.Gateway.ReconcileInterval, err = time.ParseDuration(cfg.Gateway.ReconcileIntervalRaw)
		if err != nil {
			return fmt.Errorf("parsing reconcile_interval %q: %w", cfg.Gateway.ReconcileIntervalRaw, err)
		}
	}

	if cfg.Presence.LogoutGraceRaw != "" {
		cfg.Presence.LogoutGrace, err = time.ParseDuration(cfg.Presence.LogoutGraceRaw)
		if err != nil {
			return fmt.Errorf("parsing logout_grace %q: %w", cfg.Presence.LogoutGraceRaw, err)
		}
	}

	return nil
}
