// Package feed loads ratings into a grid.
//
// The text format is one record per line:
//
//	user item rating timestamp
//
// separated by any whitespace. The timestamp is parsed but not stored.
package feed

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/grid"
)

// Record is one parsed feed line.
type Record struct {
	User      int
	Item      int
	Rating    int
	Timestamp int64
}

// LoadOptions controls how bad input is treated.
type LoadOptions struct {
	// Strict aborts on the first malformed or out-of-range record. When false
	// such records are skipped and counted in Stats.
	Strict bool
}

// DefaultLoadOptions is strict.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Strict: true}
}

// Stats summarizes a load.
type Stats struct {
	Lines      int
	Records    int
	Malformed  int
	OutOfRange int
}

// Skipped is the number of records that did not reach the grid.
func (s Stats) Skipped() int {
	return s.Malformed + s.OutOfRange
}

// ParseRecord parses one feed line. Fields beyond the fourth are ignored.
// Errors match ErrMalformedRecord.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Record{}, errors.Wrapf(errors.ErrMalformedRecord, "want 4 fields, got %d", len(fields))
	}

	var rec Record
	var err error
	if rec.User, err = strconv.Atoi(fields[0]); err != nil {
		return Record{}, malformedField("user id", fields[0])
	}
	if rec.Item, err = strconv.Atoi(fields[1]); err != nil {
		return Record{}, malformedField("item id", fields[1])
	}
	if rec.Rating, err = strconv.Atoi(fields[2]); err != nil {
		return Record{}, malformedField("rating", fields[2])
	}
	if rec.Timestamp, err = strconv.ParseInt(fields[3], 10, 64); err != nil {
		return Record{}, malformedField("timestamp", fields[3])
	}
	return rec, nil
}

func malformedField(field, value string) error {
	return errors.Wrapf(errors.ErrMalformedRecord, "%s %q is not an integer", field, value)
}

// Load reads records from r into a rows x cols grid. Blank lines are ignored;
// a later record for the same cell replaces the earlier one.
func Load(r io.Reader, rows, cols int, opts LoadOptions) (*grid.Grid, Stats, error) {
	var stats Stats

	b, err := grid.NewBuilder(rows, cols)
	if err != nil {
		return nil, stats, err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			if opts.Strict {
				return nil, stats, errors.Wrapf(err, "line %d", stats.Lines)
			}
			stats.Malformed++
			continue
		}

		if err := add(b, rec); err != nil {
			if opts.Strict {
				return nil, stats, errors.Wrapf(err, "line %d", stats.Lines)
			}
			stats.OutOfRange++
			continue
		}
		stats.Records++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, errors.Wrap(err, "read feed")
	}

	return b.Build(), stats, nil
}

// LoadRecords builds a grid from already parsed records.
func LoadRecords(records []Record, rows, cols int, opts LoadOptions) (*grid.Grid, Stats, error) {
	var stats Stats

	b, err := grid.NewBuilder(rows, cols)
	if err != nil {
		return nil, stats, err
	}
	for i, rec := range records {
		stats.Lines++
		if err := add(b, rec); err != nil {
			if opts.Strict {
				return nil, stats, errors.Wrapf(err, "record %d", i)
			}
			stats.OutOfRange++
			continue
		}
		stats.Records++
	}
	return b.Build(), stats, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, rows, cols int, opts LoadOptions) (*grid.Grid, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Stats{}, errors.Wrapf(errors.ErrFileNotFound, "%s", path)
		}
		return nil, Stats{}, errors.Wrapf(err, "open feed %s", path)
	}
	defer f.Close()

	return Load(f, rows, cols, opts)
}

func add(b *grid.Builder, rec Record) error {
	return b.Set(rec.User, rec.Item, rec.Rating)
}
