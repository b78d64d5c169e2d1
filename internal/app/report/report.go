// Package report prints the classic driver output: a similarity pair, user
// matches and recommendations, the same on the transposed grid, and the
// item similarity index.
package report

import (
	"fmt"
	"io"

	"collab-filter/internal/app/errors"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/app/similarity"
)

// Options selects the entities each section reports on.
type Options struct {
	PairA int
	PairB int
	// User is the row used for matches and recommendations.
	User int
	// Item is the row of the transposed grid used for item matches.
	Item int
	// ItemUser is the row of the transposed grid used for item
	// recommendations.
	ItemUser int
	K        int
	// SimilarItems includes the full item index. It is the slowest section.
	SimilarItems bool
}

// DefaultOptions picks the entities of the MovieLens walkthrough.
func DefaultOptions() Options {
	return Options{
		PairA:        12,
		PairB:        20,
		User:         12,
		Item:         10,
		ItemUser:     12,
		K:            15,
		SimilarItems: true,
	}
}

// Write runs every section against engine and writes plain text to w.
func Write(w io.Writer, engine *recommend.Engine, opts Options) error {
	pw := &printer{w: w}
	distance := similarity.MetricDistance
	pearson := similarity.MetricPearson

	pw.header("cal distance")
	d, err := engine.Similarity(opts.PairA, opts.PairB, distance)
	if err != nil {
		return errors.Wrap(err, "distance")
	}
	p, err := engine.Similarity(opts.PairA, opts.PairB, pearson)
	if err != nil {
		return errors.Wrap(err, "pearson")
	}
	pw.linef("%s", formatScore(d))
	pw.linef("%s", formatScore(p))

	sections := []struct {
		title string
		run   func() (recommend.Ranked, error)
	}{
		{"top Matches", func() (recommend.Ranked, error) {
			return engine.UserMatches(opts.User, recommend.Query{K: opts.K, Metric: &pearson})
		}},
		{"get Recommendations", func() (recommend.Ranked, error) {
			return engine.UserRecommendations(opts.User, recommend.Query{K: opts.K, Metric: &pearson})
		}},
		{"transform Perfs -> top Matches", func() (recommend.Ranked, error) {
			return engine.ItemMatches(opts.Item, recommend.Query{K: opts.K, Metric: &pearson})
		}},
		{"transform Perfs -> get Recommendations", func() (recommend.Ranked, error) {
			return engine.ItemRecommendations(opts.ItemUser, recommend.Query{K: opts.K, Metric: &pearson})
		}},
	}
	for _, s := range sections {
		pw.header(s.title)
		ranked, err := s.run()
		if err != nil {
			return errors.Wrap(err, s.title)
		}
		pw.ranked(ranked)
	}

	if opts.SimilarItems {
		pw.header("calculate SimilarItems")
		index, err := engine.ItemIndex()
		if err != nil {
			return errors.Wrap(err, "similar items")
		}
		for _, ranked := range index {
			pw.ranked(ranked)
			pw.linef("")
		}
	}

	return pw.err
}

// WriteRanked prints one "id score" line per entry.
func WriteRanked(w io.Writer, ranked recommend.Ranked) error {
	pw := &printer{w: w}
	pw.ranked(ranked)
	return pw.err
}

// printer keeps the first write error so sections need no error plumbing.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) header(title string) {
	p.linef("--- %s ---", title)
}

func (p *printer) ranked(ranked recommend.Ranked) {
	for _, s := range ranked {
		p.linef("%d %s", s.ID, formatScore(s.Score))
	}
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.6g", score)
}
