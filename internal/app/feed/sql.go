package feed

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
)

// DefaultQuery selects the four feed columns from a ratings table.
const DefaultQuery = "SELECT user_id, item_id, rating, timestamp FROM ratings"

// SQLSource reads feed records from any database/sql driver. The query must
// return user, item, rating and timestamp columns in that order.
type SQLSource struct {
	db    *sql.DB
	query string
}

// OpenSQL opens a connection for driver ("sqlite3" or "postgres").
func OpenSQL(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, errors.InvalidField("sql driver", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFeedSource, "open %s: %v", driver, err)
	}
	return db, nil
}

func NewSQLSource(db *sql.DB, query string) *SQLSource {
	if query == "" {
		query = DefaultQuery
	}
	return &SQLSource{db: db, query: query}
}

// Close closes the underlying connection.
func (s *SQLSource) Close() error {
	return s.db.Close()
}

// Load streams the query result into a rows x cols grid.
func (s *SQLSource) Load(ctx context.Context, rows, cols int, opts LoadOptions) (*grid.Grid, Stats, error) {
	var stats Stats

	b, err := grid.NewBuilder(rows, cols)
	if err != nil {
		return nil, stats, err
	}

	result, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, stats, errors.Wrap(errors.ErrFeedSource, err.Error())
	}
	defer result.Close()

	for result.Next() {
		stats.Lines++
		var rec Record
		if err := result.Scan(&rec.User, &rec.Item, &rec.Rating, &rec.Timestamp); err != nil {
			if opts.Strict {
				return nil, stats, errors.MalformedRecord(stats.Lines, err.Error())
			}
			stats.Malformed++
			continue
		}
		if err := add(b, rec); err != nil {
			if opts.Strict {
				return nil, stats, errors.Wrapf(err, "row %d", stats.Lines)
			}
			stats.OutOfRange++
			continue
		}
		stats.Records++
	}
	if err := result.Err(); err != nil {
		return nil, stats, errors.Wrap(err, "iterate ratings")
	}

	return b.Build(), stats, nil
}
