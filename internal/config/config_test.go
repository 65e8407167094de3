// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, defaults, and duration parsing

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validConfig = `
gateway:
  id: "edge-1"
  http_addr: "0.0.0.0:8101"
  heartbeat_idle: "45s"
  heartbeat_dead: "100s"

mysql:
  primary:
    host: "127.0.0.1"
    port: 3306
    user: "tinyim"
    password: "secret"
    database: "tinyim"
    pool_size: 20
  replica:
    host: "127.0.0.2"
    user: "tinyim_ro"
    password: "secret"
    database: "tinyim"

redis:
  host: "127.0.0.1"
  port: 6379
  pool_size: 15

services:
  auth_listen: "0.0.0.0:8102"
  chat_listen: "0.0.0.0:8103"
  presence_listen: "0.0.0.0:8104"
  auth_addr: "127.0.0.1:8102"
  chat_addr: "127.0.0.1:8103"
  presence_addr: "127.0.0.1:8104"

presence:
  logout_grace: "500ms"

logging:
  level: "debug"
  format: "json"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify gateway config
	if cfg.Gateway.ID != "edge-1" {
		t.Errorf("Gateway.ID = %q, want %q", cfg.Gateway.ID, "edge-1")
	}
	if cfg.Gateway.HTTPAddr != "0.0.0.0:8101" {
		t.Errorf("Gateway.HTTPAddr = %q, want %q", cfg.Gateway.HTTPAddr, "0.0.0.0:8101")
	}
	if cfg.Gateway.HeartbeatIdle != 45*time.Second {
		t.Errorf("Gateway.HeartbeatIdle = %v, want %v", cfg.Gateway.HeartbeatIdle, 45*time.Second)
	}
	if cfg.Gateway.HeartbeatDead != 100*time.Second {
		t.Errorf("Gateway.HeartbeatDead = %v, want %v", cfg.Gateway.HeartbeatDead, 100*time.Second)
	}

	// Verify mysql config
	if cfg.MySQL.Primary.Addr() != "127.0.0.1:3306" {
		t.Errorf("MySQL.Primary.Addr() = %q, want %q", cfg.MySQL.Primary.Addr(), "127.0.0.1:3306")
	}
	if cfg.MySQL.Primary.PoolSize != 20 {
		t.Errorf("MySQL.Primary.PoolSize = %d, want 20", cfg.MySQL.Primary.PoolSize)
	}
	if cfg.MySQL.SingleNode() {
		t.Error("MySQL.SingleNode() = true, want false with distinct replica")
	}

	// Verify redis config
	if cfg.Redis.Addr() != "127.0.0.1:6379" {
		t.Errorf("Redis.Addr() = %q, want %q", cfg.Redis.Addr(), "127.0.0.1:6379")
	}
	if cfg.Redis.PoolSize != 15 {
		t.Errorf("Redis.PoolSize = %d, want 15", cfg.Redis.PoolSize)
	}
	if cfg.Redis.Sentinel.Enabled() {
		t.Error("Redis.Sentinel.Enabled() = true, want false")
	}

	// Verify service addresses
	if cfg.Services.ChatAddr != "127.0.0.1:8103" {
		t.Errorf("Services.ChatAddr = %q, want %q", cfg.Services.ChatAddr, "127.0.0.1:8103")
	}

	// Verify presence tuning
	if cfg.Presence.LogoutGrace != 500*time.Millisecond {
		t.Errorf("Presence.LogoutGrace = %v, want %v", cfg.Presence.LogoutGrace, 500*time.Millisecond)
	}

	// Verify logging config
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_Defaults(t *testing.T) {
	minimal := `
gateway:
  http_addr: "0.0.0.0:8101"

mysql:
  primary:
    host: "127.0.0.1"
    user: "tinyim"
    database: "tinyim"

redis:
  host: "127.0.0.1"

services:
  auth_listen: "0.0.0.0:8102"
  chat_listen: "0.0.0.0:8103"
  presence_listen: "0.0.0.0:8104"
  auth_addr: "127.0.0.1:8102"
  chat_addr: "127.0.0.1:8103"
  presence_addr: "127.0.0.1:8104"
`
	cfg, err := Load(writeConfig(t, minimal))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gateway.WSPath != "/ws" {
		t.Errorf("Gateway.WSPath = %q, want %q", cfg.Gateway.WSPath, "/ws")
	}
	if cfg.Gateway.MaxFrameBytes != 64*1024 {
		t.Errorf("Gateway.MaxFrameBytes = %d, want %d", cfg.Gateway.MaxFrameBytes, 64*1024)
	}
	if cfg.Gateway.HeartbeatIdle != 60*time.Second {
		t.Errorf("Gateway.HeartbeatIdle = %v, want %v", cfg.Gateway.HeartbeatIdle, 60*time.Second)
	}
	if cfg.Gateway.HeartbeatDead != 120*time.Second {
		t.Errorf("Gateway.HeartbeatDead = %v, want %v", cfg.Gateway.HeartbeatDead, 120*time.Second)
	}
	if cfg.Gateway.ReconcileInterval != time.Minute {
		t.Errorf("Gateway.ReconcileInterval = %v, want %v", cfg.Gateway.ReconcileInterval, time.Minute)
	}

	if cfg.MySQL.Primary.Port != 3306 {
		t.Errorf("MySQL.Primary.Port = %d, want 3306", cfg.MySQL.Primary.Port)
	}
	if !cfg.MySQL.SingleNode() {
		t.Error("MySQL.SingleNode() = false, want true when replica is omitted")
	}
	if cfg.MySQL.Replica != cfg.MySQL.Primary {
		t.Errorf("MySQL.Replica = %+v, want copy of primary", cfg.MySQL.Replica)
	}

	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want 6379", cfg.Redis.Port)
	}

	if cfg.Presence.LogoutGrace != 2*time.Second {
		t.Errorf("Presence.LogoutGrace = %v, want %v", cfg.Presence.LogoutGrace, 2*time.Second)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want %q", cfg.Metrics.Path, "/metrics")
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_TINYIM_MYSQL_PASSWORD", "pw-from-env")
	t.Setenv("TEST_TINYIM_GATEWAY_ID", "edge-from-env")

	content := strings.ReplaceAll(validConfig, `password: "secret"`, `password: "${TEST_TINYIM_MYSQL_PASSWORD}"`)
	content = strings.ReplaceAll(content, `id: "edge-1"`, `id: "${TEST_TINYIM_GATEWAY_ID}"`)

	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MySQL.Primary.Password != "pw-from-env" {
		t.Errorf("MySQL.Primary.Password = %q, want %q", cfg.MySQL.Primary.Password, "pw-from-env")
	}
	if cfg.Gateway.ID != "edge-from-env" {
		t.Errorf("Gateway.ID = %q, want %q", cfg.Gateway.ID, "edge-from-env")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "gateway:\n  http_addr \"missing colon\"\n"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	content := strings.ReplaceAll(validConfig, `heartbeat_idle: "45s"`, `heartbeat_idle: "not-a-duration"`)
	_, err := Load(writeConfig(t, content))
	if err == nil {
		t.Error("Load() expected error for invalid duration, got nil")
	}
}

func TestLoad_HeartbeatOrdering(t *testing.T) {
	content := strings.ReplaceAll(validConfig, `heartbeat_dead: "100s"`, `heartbeat_dead: "30s"`)
	_, err := Load(writeConfig(t, content))
	if err == nil {
		t.Error("Load() expected error when heartbeat_dead <= heartbeat_idle, got nil")
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(string) string
		wantErrSubstr string
	}{
		{
			name: "missing http_addr",
			mutate: func(s string) string {
				return strings.ReplaceAll(s, `http_addr: "0.0.0.0:8101"`, `http_addr: ""`)
			},
			wantErrSubstr: "gateway.http_addr is required",
		},
		{
			name: "missing mysql host",
			mutate: func(s string) string {
				return strings.Replace(s, `host: "127.0.0.1"`, `host: ""`, 1)
			},
			wantErrSubstr: "mysql.primary.host is required",
		},
		{
			name: "missing mysql user",
			mutate: func(s string) string {
				return strings.Replace(s, `user: "tinyim"`, `user: ""`, 1)
			},
			wantErrSubstr: "mysql.primary.user is required",
		},
		{
			name: "missing chat_addr",
			mutate: func(s string) string {
				return strings.ReplaceAll(s, `chat_addr: "127.0.0.1:8103"`, `chat_addr: ""`)
			},
			wantErrSubstr: "services.chat_addr is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate(validConfig)))
			if err == nil {
				t.Errorf("Load() expected error containing %q, got nil", tt.wantErrSubstr)
				return
			}
			if !strings.Contains(err.Error(), tt.wantErrSubstr) {
				t.Errorf("Load() error = %q, want error containing %q", err.Error(), tt.wantErrSubstr)
			}
		})
	}
}

func TestLoad_SentinelConfig(t *testing.T) {
	content := strings.ReplaceAll(validConfig, "redis:\n  host: \"127.0.0.1\"\n  port: 6379\n  pool_size: 15",
		"redis:\n  pool_size: 15\n  sentinel:\n    host: \"127.0.0.1\"\n    master_name: \"mymaster\"")

	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Redis.Sentinel.Enabled() {
		t.Fatal("Redis.Sentinel.Enabled() = false, want true")
	}
	if cfg.Redis.Sentinel.Addr() != "127.0.0.1:26379" {
		t.Errorf("Redis.Sentinel.Addr() = %q, want %q", cfg.Redis.Sentinel.Addr(), "127.0.0.1:26379")
	}
	if cfg.Redis.Sentinel.MasterName != "mymaster" {
		t.Errorf("Redis.Sentinel.MasterName = %q, want %q", cfg.Redis.Sentinel.MasterName, "mymaster")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FOO", "bar")
	t.Setenv("BAZ", "qux")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single env var",
			input:    "${FOO}",
			expected: "bar",
		},
		{
			name:     "env var with surrounding text",
			input:    "prefix-${FOO}-suffix",
			expected: "prefix-bar-suffix",
		},
		{
			name:     "multiple env vars",
			input:    "${FOO}/${BAZ}",
			expected: "bar/qux",
		},
		{
			name:     "no env vars",
			input:    "no-vars-here",
			expected: "no-vars-here",
		},
		{
			name:     "unset env var",
			input:    "${UNSET_VAR}",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandEnvVars(tt.input)
			if result != tt.expected {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
