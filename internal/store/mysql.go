// ABOUTME: MySQL-backed persistence with primary/replica pools and schema bootstrap
// ABOUTME: Collapses to a single pool when the replica config mirrors the primary

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/myluster/TinyIM/internal/config"
)

// DB wraps the primary and replica connection pools. All writes and Strong
// reads go to the primary; Eventual reads may be served by the replica.
type DB struct {
	primary *sqlx.DB
	replica *sqlx.DB
	logger  *slog.Logger
}

// Open connects the pools described by cfg and verifies both with a ping.
// When the replica section mirrors the primary, both handles share one pool.
func Open(ctx context.Context, cfg config.MySQLConfig) (*DB, error) {
	logger := slog.Default().With("component", "store")

	primary, err := openPool(ctx, cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("connecting primary: %w", err)
	}

	replica := primary
	if !cfg.SingleNode() {
		replica, err = openPool(ctx, cfg.Replica)
		if err != nil {
			primary.Close()
			return nil, fmt.Errorf("connecting replica: %w", err)
		}
	}

	db := &DB{primary: primary, replica: replica, logger: logger}
	logger.Info("MySQL store initialized",
		"primary", cfg.Primary.Addr(),
		"replica", cfg.Replica.Addr(),
		"single_node", cfg.SingleNode())
	return db, nil
}

// NewWithDB wraps existing connections, primarily for tests. Pass the same
// handle twice to model a single-node deployment.
func NewWithDB(primary, replica *sql.DB) *DB {
	return &DB{
		primary: sqlx.NewDb(primary, "mysql"),
		replica: sqlx.NewDb(replica, "mysql"),
		logger:  slog.Default().With("component", "store"),
	}
}

func openPool(ctx context.Context, node config.MySQLNodeConfig) (*sqlx.DB, error) {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = node.Addr()
	mc.User = node.User
	mc.Passwd = node.Password
	mc.DBName = node.Database
	mc.ParseTime = true

	pool, err := sqlx.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(node.PoolSize)
	pool.SetMaxIdleConns(node.PoolSize)
	pool.SetConnMaxLifetime(5 * time.Minute)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Reader returns the pool that serves a read at the given consistency level
func (db *DB) Reader(c Consistency) *sqlx.DB {
	if c == Strong {
		return db.primary
	}
	return db.replica
}

// Close releases both pools
func (db *DB) Close() error {
	err := db.primary.Close()
	if db.replica != db.primary {
		if rerr := db.replica.Close(); err == nil {
			err = rerr
		}
	}
	return err
}

// EnsureSchema creates all tables if they do not exist. Statements run one
// at a time because the driver rejects multi-statement exec by default.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.primary.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	db.logger.Info("database schema ensured", "tables", len(schemaStatements))
	return nil
}

// SchemaStatements returns a copy of the DDL applied by EnsureSchema, in
// order. Contract tests inspect it to catch accidental schema breakage.
func SchemaStatements() []string {
	out := make([]string, len(schemaStatements))
	copy(out, schemaStatements)
	return out
}

// MySQL error 1062: duplicate entry for a unique key
func isDuplicateEntry(err error) bool {
	var merr *mysql.MySQLError
	return errors.As(err, &merr) && merr.Number == 1062
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT NOT NULL AUTO_INCREMENT,
		username VARCHAR(64) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		nickname VARCHAR(64) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uk_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS friends (
		user_id BIGINT NOT NULL,
		friend_id BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, friend_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS friend_requests (
		id BIGINT NOT NULL AUTO_INCREMENT,
		from_user_id BIGINT NOT NULL,
		to_user_id BIGINT NOT NULL,
		status TINYINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uk_friend_requests_pair (from_user_id, to_user_id),
		KEY idx_friend_requests_to (to_user_id, status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS messages (
		id BIGINT NOT NULL AUTO_INCREMENT,
		from_user_id BIGINT NOT NULL,
		to_user_id BIGINT NOT NULL,
		content TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		PRIMARY KEY (id),
		KEY idx_messages_pair (from_user_id, to_user_id, id),
		KEY idx_messages_rev (to_user_id, from_user_id, id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS chat_sessions (
		owner_id BIGINT NOT NULL,
		peer_id BIGINT NOT NULL,
		last_msg_content TEXT NOT NULL,
		last_msg_ts BIGINT NOT NULL,
		unread_count INT NOT NULL DEFAULT 0,
		PRIMARY KEY (owner_id, peer_id),
		KEY idx_chat_sessions_recent (owner_id, last_msg_ts)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}
