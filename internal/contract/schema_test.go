// ABOUTME: Contract tests for the MySQL schema to detect breaking changes.
// ABOUTME: Validates expected tables, columns and indexes in the bootstrap DDL.

package contract

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myluster/TinyIM/internal/store"
)

// expectedSchema defines the contract for our database schema.
// If a table or column is removed or renamed, these tests will fail,
// catching breaking changes before they reach production.
var expectedSchema = map[string][]string{
	"users": {
		"id", "username", "password_hash", "nickname", "created_at",
	},
	"friends": {
		"user_id", "friend_id", "created_at",
	},
	"friend_requests": {
		"id", "from_user_id", "to_user_id", "status", "created_at",
	},
	"messages": {
		"id", "from_user_id", "to_user_id", "content", "created_at",
	},
	"chat_sessions": {
		"owner_id", "peer_id", "last_msg_content", "last_msg_ts", "unread_count",
	},
}

// expectedIndexes are the keys chat-path queries depend on: history and
// offline reads walk the message pair indexes, the recent-session list
// walks the per-owner timestamp index.
var expectedIndexes = []string{
	"uk_users_username",
	"uk_friend_requests_pair",
	"idx_friend_requests_to",
	"idx_messages_pair",
	"idx_messages_rev",
	"idx_chat_sessions_recent",
}

var createTableRe = regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+)`)

// statementsByTable indexes the bootstrap DDL by table name.
func statementsByTable(t *testing.T) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, stmt := range store.SchemaStatements() {
		m := createTableRe.FindStringSubmatch(stmt)
		require.NotNil(t, m, "statement without CREATE TABLE: %q", stmt)
		out[m[1]] = stmt
	}
	return out
}

// columnDefined reports whether the statement declares a column of the
// given name, i.e. the name starts a definition line.
func columnDefined(stmt, column string) bool {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(column) + `\s`)
	return re.MatchString(stmt)
}

// TestSchemaSurface verifies that all expected tables and columns exist
// in the bootstrap DDL. This acts as a contract test to prevent
// accidental breaking changes to the database structure.
func TestSchemaSurface(t *testing.T) {
	tables := statementsByTable(t)

	for table, expectedCols := range expectedSchema {
		t.Run(table, func(t *testing.T) {
			stmt, ok := tables[table]
			if !assert.True(t, ok, "table %s should exist", table) {
				return
			}
			for _, col := range expectedCols {
				assert.True(t, columnDefined(stmt, col),
					"column %s.%s should exist", table, col)
			}
		})
	}
}

// TestTablesExist is a quick sanity check that only contracted tables are
// created, so additions get recorded here.
func TestTablesExist(t *testing.T) {
	tables := statementsByTable(t)

	for table := range expectedSchema {
		assert.Contains(t, tables, table, "table %s should exist", table)
	}
	for table := range tables {
		_, known := expectedSchema[table]
		assert.True(t, known, "table %s is not in the schema contract (consider adding)", table)
	}
}

// TestSchemaHasIndexes verifies that the indexes critical for query
// performance survive schema edits.
func TestSchemaHasIndexes(t *testing.T) {
	ddl := strings.Join(store.SchemaStatements(), "\n")

	for _, idx := range expectedIndexes {
		assert.Contains(t, ddl, idx, "index %s should exist", idx)
	}
}

// TestMessagesTimestampIsMillis pins created_at on messages to a BIGINT:
// chat timestamps ride the wire as Unix milliseconds and must round-trip
// through the store without truncation.
func TestMessagesTimestampIsMillis(t *testing.T) {
	tables := statementsByTable(t)
	stmt, ok := tables["messages"]
	require.True(t, ok)

	re := regexp.MustCompile(`(?m)^\s*created_at\s+BIGINT`)
	assert.True(t, re.MatchString(stmt), "messages.created_at should be BIGINT milliseconds")
}
