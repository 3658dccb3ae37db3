package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
table {
  rounds               = 50000
  decks                = 8
  penetration          = 0.3
  reshuffle_each_round = false
  blackjack_payout     = 1.2
  base_bet             = 25
}

counter {
  min_bet = 5
  max_bet = 500
}

martingale {
  max_doublings = 10
}

threshold_sweep {
  from = 14
  to   = 18
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50000, cfg.Table.Rounds)
	require.Equal(t, 8, cfg.Table.Decks)
	require.Equal(t, 0.3, cfg.Table.Penetration)
	require.False(t, *cfg.Table.ReshuffleEachRound)
	require.Equal(t, 1.2, cfg.Table.BlackjackPayout)
	require.Equal(t, 25, cfg.Table.BaseBet)
	require.Equal(t, 5, cfg.Counter.MinBet)
	require.Equal(t, 500, cfg.Counter.MaxBet)
	require.Equal(t, 10, cfg.Martingale.MaxDoublings)
	require.Equal(t, 14, cfg.Sweep.From)
	require.Equal(t, 18, cfg.Sweep.To)
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  rounds = 1000
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.Table.Rounds)
	require.Equal(t, 6, cfg.Table.Decks)
	require.Equal(t, 0.25, cfg.Table.Penetration)
	require.True(t, *cfg.Table.ReshuffleEachRound)
	require.Equal(t, 10, cfg.Counter.MinBet)
	require.Equal(t, 100, cfg.Counter.MaxBet)
	require.Equal(t, 18, cfg.Martingale.MaxDoublings)
	require.Equal(t, 12, cfg.Sweep.From)
	require.Equal(t, 20, cfg.Sweep.To)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"penetration out of range", "table {\n  penetration = 1.5\n}\n"},
		{"inverted sweep", "threshold_sweep {\n  from = 18\n  to   = 14\n}\n"},
		{"max doublings overflows int", "martingale {\n  max_doublings = 60\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	_, err := Load(writeConfig(t, "table {"))
	require.Error(t, err)
}
