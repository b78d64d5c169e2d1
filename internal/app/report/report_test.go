package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "collab-filter/internal/app/errors"
	"collab-filter/internal/app/recommend"
	"collab-filter/internal/app/testutil"
)

func sampleOptions() Options {
	return Options{PairA: 0, PairB: 1, User: 0, Item: 0, ItemUser: 2, K: 5, SimilarItems: true}
}

func TestWriteSample(t *testing.T) {
	engine := recommend.NewEngine(testutil.SampleGrid(t), recommend.DefaultEngineConfig())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, engine, sampleOptions()))

	want := strings.Join([]string{
		"--- cal distance ---",
		"0.5",
		"1",
		"--- top Matches ---",
		"1 1",
		"2 0",
		"--- get Recommendations ---",
		"2 2",
		"--- transform Perfs -> top Matches ---",
	}, "\n")
	assert.True(t, strings.HasPrefix(buf.String(), want), buf.String())

	out := buf.String()
	assert.Contains(t, out, "--- transform Perfs -> get Recommendations ---")
	assert.Contains(t, out, "--- calculate SimilarItems ---\n2 0.2\n1 0.166667\n\n0 0.166667\n2 0.0909091\n\n")
}

func TestWriteWithoutSimilarItems(t *testing.T) {
	engine := recommend.NewEngine(testutil.SampleGrid(t), recommend.DefaultEngineConfig())
	opts := sampleOptions()
	opts.SimilarItems = false

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, engine, opts))
	assert.NotContains(t, buf.String(), "SimilarItems")
}

func TestWriteOutOfRange(t *testing.T) {
	engine := recommend.NewEngine(testutil.SampleGrid(t), recommend.DefaultEngineConfig())

	var buf bytes.Buffer
	err := Write(&buf, engine, DefaultOptions())
	assert.True(t, errors.Is(err, apperrors.ErrOutOfRange))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteRanked(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRanked(&buf, recommend.Ranked{{ID: 3, Score: 0.25}, {ID: 1, Score: 1.0 / 3.0}}))
	assert.Equal(t, "3 0.25\n1 0.333333\n", buf.String())

	assert.Error(t, WriteRanked(failingWriter{}, recommend.Ranked{{ID: 1, Score: 1}}))
}
