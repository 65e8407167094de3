// ABOUTME: Configuration loading for the tinyim load generator
// ABOUTME: Loads TOML config with environment variable expansion and duration parsing

package main

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Target   TargetConfig   `toml:"target"`
	Load     LoadConfig     `toml:"load"`
	Accounts AccountsConfig `toml:"accounts"`
}

type TargetConfig struct {
	BaseURL string `toml:"base_url"`
	WSPath  string `toml:"ws_path"`
}

type LoadConfig struct {
	Pairs             int `toml:"pairs"`
	MessagesPerSender int `toml:"messages_per_sender"`

	SendInterval time.Duration `toml:"-"`
	DrainWait    time.Duration `toml:"-"`

	// Raw string values for TOML unmarshaling
	SendIntervalRaw string `toml:"send_interval"`
	DrainWaitRaw    string `toml:"drain_wait"`
}

type AccountsConfig struct {
	UsernamePrefix string `toml:"username_prefix"`
	Password       string `toml:"password"`
}

// Load reads config from the given path, expanding environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables (${VAR} syntax)
	expanded := expandEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(varName)
	})
}

func (c *Config) applyDefaults() {
	if c.Target.BaseURL == "" {
		c.Target.BaseURL = "http://127.0.0.1:8080"
	}
	if c.Target.WSPath == "" {
		c.Target.WSPath = "/ws"
	}
	if c.Load.Pairs == 0 {
		c.Load.Pairs = 10
	}
	if c.Load.MessagesPerSender == 0 {
		c.Load.MessagesPerSender = 50
	}
	if c.Load.SendIntervalRaw == "" {
		c.Load.SendIntervalRaw = "50ms"
	}
	if c.Load.DrainWaitRaw == "" {
		c.Load.DrainWaitRaw = "3s"
	}
	if c.Accounts.UsernamePrefix == "" {
		c.Accounts.UsernamePrefix = "loadgen"
	}
	if c.Accounts.Password == "" {
		c.Accounts.Password = "loadgen-pass-1"
	}
}

func (c *Config) parseDurations() error {
	var err error
	if c.Load.SendInterval, err = time.ParseDuration(c.Load.SendIntervalRaw); err != nil {
		return fmt.Errorf("parsing load.send_interval: %w", err)
	}
	if c.Load.DrainWait, err = time.ParseDuration(c.Load.DrainWaitRaw); err != nil {
		return fmt.Errorf("parsing load.drain_wait: %w", err)
	}
	return nil
}

// Validate checks that required config fields are present and valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Target.BaseURL)
	if err != nil {
		return fmt.Errorf("target.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("target.base_url must be http or https, got %q", u.Scheme)
	}
	if !strings.HasPrefix(c.Target.WSPath, "/") {
		return fmt.Errorf("target.ws_path must start with /, got %q", c.Target.WSPath)
	}
	if c.Load.Pairs < 1 {
		return fmt.Errorf("load.pairs must be positive, got %d", c.Load.Pairs)
	}
	if c.Load.MessagesPerSender < 1 {
		return fmt.Errorf("load.messages_per_sender must be positive, got %d", c.Load.MessagesPerSender)
	}
	return nil
}

// wsURL converts the HTTP base URL into the WebSocket endpoint.
func (c *Config) wsURL() string {
	base := strings.TrimSuffix(c.Target.BaseURL, "/")
	ws := strings.Replace(base, "http", "ws", 1)
	return ws + c.Target.WSPath
}
