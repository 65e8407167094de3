// ABOUTME: Tests for the user-to-session table.
// ABOUTME: Displacement on join and compare-and-delete on leave.

package gateway

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTableJoinDisplacesPrevious(t *testing.T) {
	table := newSessionTable()
	first := newSession(7, newFakeWSConn(), slog.Default())
	second := newSession(7, newFakeWSConn(), slog.Default())

	assert.Nil(t, table.Join(first))
	displaced := table.Join(second)
	require.NotNil(t, displaced)
	assert.Same(t, first, displaced)

	got, ok := table.Get(7)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, table.Len())
}

func TestSessionTableLeaveOnlyRemovesOwnEntry(t *testing.T) {
	table := newSessionTable()
	first := newSession(7, newFakeWSConn(), slog.Default())
	second := newSession(7, newFakeWSConn(), slog.Default())

	table.Join(first)
	table.Join(second)

	// The displaced session must not evict its replacement.
	assert.False(t, table.Leave(first))
	got, ok := table.Get(7)
	require.True(t, ok)
	assert.Same(t, second, got)

	assert.True(t, table.Leave(second))
	_, ok = table.Get(7)
	assert.False(t, ok)

	// Leaving twice is a no-op.
	assert.False(t, table.Leave(second))
}

func TestSessionTableSnapshots(t *testing.T) {
	table := newSessionTable()
	table.Join(newSession(1, newFakeWSConn(), slog.Default()))
	table.Join(newSession(2, newFakeWSConn(), slog.Default()))
	table.Join(newSession(3, newFakeWSConn(), slog.Default()))

	assert.Equal(t, 3, table.Len())
	assert.ElementsMatch(t, []int64{1, 2, 3}, table.UserIDs())
	assert.Len(t, table.Sessions(), 3)
}
