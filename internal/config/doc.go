// Package config handles configuration loading for the TinyIM services.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// One file describes the whole deployment; each binary reads the same file and
// picks out its own sections. The package provides validation and sensible
// defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	mysql:
//	  primary:
//	    password: "${TINYIM_MYSQL_PASSWORD}"
//
// Syntax: ${VAR_NAME}. Unset variables expand to the empty string.
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	gateway:
//	  heartbeat_idle: "60s"
//	  heartbeat_dead: "120s"
//	  reconcile_interval: "1m"
//
// Supported units: ns, us, ms, s, m, h
//
// # Configuration Sections
//
// Gateway (edge node):
//
//	gateway:
//	  id: "edge-1"                # directory value and topic suffix; generated if empty
//	  http_addr: "0.0.0.0:8101"   # WebSocket upgrades + REST API + metrics
//	  ws_path: "/ws"
//	  max_frame_bytes: 65536
//	  worker_pool: 64
//	  worker_queue: 1024
//
// Stores:
//
//	mysql:
//	  primary:
//	    host: "127.0.0.1"
//	    port: 3306
//	    user: "tinyim"
//	    password: "${TINYIM_MYSQL_PASSWORD}"
//	    database: "tinyim"
//	    pool_size: 10
//	  replica:          # optional; falls back to primary (single-node mode)
//	    host: "127.0.0.2"
//
//	redis:
//	  host: "127.0.0.1"
//	  port: 6379
//	  pool_size: 10
//	  sentinel:         # optional master discovery
//	    host: "127.0.0.1"
//	    port: 26379
//	    master_name: "mymaster"
//
// Service addresses:
//
//	services:
//	  auth_listen: "0.0.0.0:8102"
//	  chat_listen: "0.0.0.0:8103"
//	  presence_listen: "0.0.0.0:8104"
//	  auth_addr: "127.0.0.1:8102"
//	  chat_addr: "127.0.0.1:8103"
//	  presence_addr: "127.0.0.1:8104"
//
// Presence tuning:
//
//	presence:
//	  logout_grace: "2s"  # hold the offline transition for rapid reconnects
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
package config
