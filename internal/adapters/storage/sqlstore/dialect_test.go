package sqlstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoo-rooms/internal/domain/animals"
)

func TestRebind(t *testing.T) {
	assert.Equal(t, "a = $1 AND b IN ($2,$3)", Postgres.Rebind("a = ? AND b IN (?,?)"))
	assert.Equal(t, "a = ?", SQLite.Rebind("a = ?"))
	assert.Equal(t, "?,?,?", placeholders(3))
	assert.Equal(t, "", placeholders(0))
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t,
		`ORDER BY title_key ASC`,
		Postgres.OrderBy(animals.Ordering{Field: animals.SortByTitle, Order: animals.Asc}),
	)
	assert.Equal(t,
		`ORDER BY (located IS NULL) DESC, located DESC, lower(id) DESC`,
		SQLite.OrderBy(animals.Ordering{Field: animals.SortByLocated, Order: animals.Desc}),
	)
	assert.Equal(t,
		`ORDER BY title_key DESC`,
		SQLite.OrderBy(animals.Ordering{Field: animals.SortByTitle, Order: animals.Desc}),
	)
}

func TestDateEncoding(t *testing.T) {
	ts := time.Date(2024, 1, 5, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-05", SQLite.NullDate(&ts))
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Postgres.NullDate(&ts))
	assert.Nil(t, SQLite.NullDate(nil))
	assert.Nil(t, Postgres.NullTimestamp(nil))
}

func TestNullTimeScan(t *testing.T) {
	var n nullTime

	require.NoError(t, n.Scan("2024-01-05"))
	assert.True(t, n.Valid)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), n.Time)

	require.NoError(t, n.Scan([]byte("2024-01-05T10:00:00.5Z")))
	assert.Equal(t, 500*time.Millisecond, time.Duration(n.Time.Nanosecond()))

	require.NoError(t, n.Scan(nil))
	assert.False(t, n.Valid)
	assert.Nil(t, n.ptr())

	assert.Error(t, n.Scan("yesterday"))
	assert.Error(t, n.Scan(42))
}
