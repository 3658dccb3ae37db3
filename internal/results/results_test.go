package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	record := Record{
		Strategy:     "basic",
		Games:        1000,
		Profit:       -123.5,
		WinRate:      0.43,
		LossRate:     0.48,
		PushRate:     0.09,
		AvgBet:       10,
		MaxBet:       10,
		MinBet:       10,
		TotalWagered: 10000,
	}
	require.NoError(t, Write(dir, record))

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, record, loaded[0])
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Record{Strategy: "martingale", Games: 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "martingale_results.json", entries[0].Name())
}

func TestLoadSortsByProfit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Record{Strategy: "worst", Games: 1, Profit: -500}))
	require.NoError(t, Write(dir, Record{Strategy: "best", Games: 1, Profit: 250}))
	require.NoError(t, Write(dir, Record{Strategy: "middle", Games: 1, Profit: -10}))

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	require.Equal(t, []string{"best", "middle", "worst"},
		[]string{loaded[0].Strategy, loaded[1].Strategy, loaded[2].Strategy})
}

func TestLoadEmptyDir(t *testing.T) {
	loaded, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestLoadIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, Write(dir, Record{Strategy: "basic", Games: 1}))

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
}
