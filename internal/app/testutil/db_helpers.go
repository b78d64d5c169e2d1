package testutil

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// RatingsSchema creates the table read by the default feed query.
const RatingsSchema = `CREATE TABLE ratings (
	user_id   INTEGER NOT NULL,
	item_id   INTEGER NOT NULL,
	rating    INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
)`

// RatingsDB is a SQLite file holding a ratings table.
type RatingsDB struct {
	DSN string
	DB  *sql.DB
}

// SetupRatingsDB creates a SQLite ratings database under t.TempDir. The
// connection is closed on cleanup.
func SetupRatingsDB(t *testing.T) *RatingsDB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "ratings.db")
	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err, "open sqlite ratings database")

	_, err = db.Exec(RatingsSchema)
	require.NoError(t, err, "create ratings table")

	t.Cleanup(func() {
		db.Close()
	})

	return &RatingsDB{DSN: dsn, DB: db}
}

// Insert adds one rating.
func (r *RatingsDB) Insert(t *testing.T, user, item, rating int, timestamp int64) {
	t.Helper()
	_, err := r.DB.Exec(`INSERT INTO ratings (user_id, item_id, rating, timestamp) VALUES (?, ?, ?, ?)`,
		user, item, rating, timestamp)
	require.NoError(t, err)
}

// SeedRows inserts every rated cell of rows.
func (r *RatingsDB) SeedRows(t *testing.T, rows [][]int) int {
	t.Helper()
	count := 0
	for user, row := range rows {
		for item, rating := range row {
			if rating < 0 {
				continue
			}
			r.Insert(t, user, item, rating, int64(count))
			count++
		}
	}
	return count
}

// SeedFeed inserts the records of a text feed such as SampleFeed.
func (r *RatingsDB) SeedFeed(t *testing.T, feed string) int {
	t.Helper()
	tx, err := r.DB.Begin()
	require.NoError(t, err)

	count := 0
	for _, line := range strings.Split(feed, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		_, err := tx.Exec(`INSERT INTO ratings (user_id, item_id, rating, timestamp) VALUES (?, ?, ?, ?)`,
			fields[0], fields[1], fields[2], fields[3])
		require.NoError(t, err)
		count++
	}
	require.NoError(t, tx.Commit())
	return count
}
