package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collab-filter/internal/app/testutil"
)

func writeSampleFeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "u.data")
	require.NoError(t, os.WriteFile(path, []byte(testutil.SampleFeed), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	feedPath := writeSampleFeed(t)
	global := []string{"--feed", feedPath, "--rows", "3", "--cols", "3"}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"similarity distance", []string{"similarity", "0", "1", "--metric", "distance"}, "distance 0.5\n"},
		{"similarity both", []string{"similarity", "1", "2", "--metric", ""}, "distance 0.0909091\npearson -1\n"},
		{"top matches", []string{"top", "0", "-k", "1", "-m", "pearson", "--items=false"}, "1 1\n"},
		{"recommend", []string{"recommend", "0", "-k", "5", "-m", "pearson", "--items=false"}, "2 2\n"},
		{"recommend distance", []string{"recommend", "0", "-k", "5", "-m", "distance", "--items=false"}, "2 3.5\n"},
		{"recommend users for item", []string{"recommend", "2", "-k", "5", "-m", "distance", "--items"}, "0 4.375\n"},
		{"similar items for one item", []string{"items", "-i", "0"}, "2 0.2\n1 0.166667\n"},
		{"recommend items", []string{"recommend-items", "0", "-k", "5"}, "2 4.375\n"},
		{"version", []string{"version"}, "v0.1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append(global, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTransposeCommand(t *testing.T) {
	feedPath := writeSampleFeed(t)
	outPath := filepath.Join(t.TempDir(), "items.data")

	_, err := run(t, "--feed", feedPath, "--rows", "3", "--cols", "3", "transpose", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines, "1 0 3 0")
	assert.Contains(t, lines, "2 2 5 0")
}

func TestReportCommand(t *testing.T) {
	feedPath := writeSampleFeed(t)

	out, err := run(t, "--feed", feedPath, "--rows", "3", "--cols", "3",
		"report", "-a", "0", "-b", "1", "-u", "0", "-i", "0", "--item-user", "2", "-k", "5", "--similar-items=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "--- cal distance ---\n0.5\n1\n--- top Matches ---\n"), out)
	assert.NotContains(t, out, "SimilarItems")
}

func TestExportCommand(t *testing.T) {
	feedPath := writeSampleFeed(t)
	outPath := filepath.Join(t.TempDir(), "cfr.xlsx")

	_, err := run(t, "--feed", feedPath, "--rows", "3", "--cols", "3", "export", "-o", outPath, "-u", "0", "--grid")
	require.NoError(t, err)
	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCommandErrors(t *testing.T) {
	feedPath := writeSampleFeed(t)
	global := []string{"--feed", feedPath, "--rows", "3", "--cols", "3"}

	tests := []struct {
		name string
		args []string
	}{
		{"entity out of range", []string{"top", "9", "-m", "pearson", "--items=false"}},
		{"entity not a number", []string{"top", "x"}},
		{"unknown metric", []string{"recommend", "0", "-m", "cosine"}},
		{"negative count", []string{"top", "0", "-k", "-2", "-m", "pearson"}},
		{"negative item", []string{"items", "--item=-5"}},
		{"item out of range", []string{"items", "--item=3"}},
		{"feed larger than grid", []string{"--rows", "2", "similarity", "0", "1", "-m", "distance"}},
		{"missing feed", []string{"--feed", filepath.Join(t.TempDir(), "none"), "similarity", "0", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append(global, tt.args...)...)
			assert.Error(t, err)
		})
	}
}
