// Package config loads simulation configuration from an optional HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjacksim/internal/strategy"
)

// SimConfig is the complete configuration for a simulation batch. Blocks are
// pointers so a config file may omit any of them; Load fills the gaps with
// defaults.
type SimConfig struct {
	Table      *TableSettings    `hcl:"table,block"`
	Counter    *CounterSettings  `hcl:"counter,block"`
	Martingale *MartingaleConfig `hcl:"martingale,block"`
	Sweep      *SweepSettings    `hcl:"threshold_sweep,block"`
}

// TableSettings contains the table-level rules shared by every run.
// ReshuffleEachRound is a pointer so an omitted attribute is
// distinguishable from an explicit false.
type TableSettings struct {
	Rounds             int     `hcl:"rounds,optional"`
	Decks              int     `hcl:"decks,optional"`
	Penetration        float64 `hcl:"penetration,optional"`
	ReshuffleEachRound *bool   `hcl:"reshuffle_each_round,optional"`
	BlackjackPayout    float64 `hcl:"blackjack_payout,optional"`
	BaseBet            int     `hcl:"base_bet,optional"`
}

// CounterSettings bounds the card counter's bet spread
type CounterSettings struct {
	MinBet int `hcl:"min_bet,optional"`
	MaxBet int `hcl:"max_bet,optional"`
}

// MartingaleConfig caps the martingale progression
type MartingaleConfig struct {
	MaxDoublings int `hcl:"max_doublings,optional"`
}

// SweepSettings is the inclusive fixed-threshold sweep range
type SweepSettings struct {
	From int `hcl:"from,optional"`
	To   int `hcl:"to,optional"`
}

// Default returns the built-in configuration matching the reference study
func Default() *SimConfig {
	return &SimConfig{
		Table: &TableSettings{
			Rounds:             1_000_000,
			Decks:              6,
			Penetration:        0.25,
			ReshuffleEachRound: boolPtr(true),
			BlackjackPayout:    1.5,
			BaseBet:            10,
		},
		Counter: &CounterSettings{
			MinBet: 10,
			MaxBet: 100,
		},
		Martingale: &MartingaleConfig{
			MaxDoublings: 18,
		},
		Sweep: &SweepSettings{
			From: 12,
			To:   20,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist. Omitted blocks and fields take default values.
func Load(filename string) (*SimConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg SimConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *SimConfig) {
	def := Default()
	if cfg.Table == nil {
		cfg.Table = def.Table
	} else {
		if cfg.Table.Rounds == 0 {
			cfg.Table.Rounds = def.Table.Rounds
		}
		if cfg.Table.Decks == 0 {
			cfg.Table.Decks = def.Table.Decks
		}
		if cfg.Table.Penetration == 0 {
			cfg.Table.Penetration = def.Table.Penetration
		}
		if cfg.Table.ReshuffleEachRound == nil {
			cfg.Table.ReshuffleEachRound = def.Table.ReshuffleEachRound
		}
		if cfg.Table.BlackjackPayout == 0 {
			cfg.Table.BlackjackPayout = def.Table.BlackjackPayout
		}
		if cfg.Table.BaseBet == 0 {
			cfg.Table.BaseBet = def.Table.BaseBet
		}
	}
	if cfg.Counter == nil {
		cfg.Counter = def.Counter
	} else {
		if cfg.Counter.MinBet == 0 {
			cfg.Counter.MinBet = def.Counter.MinBet
		}
		if cfg.Counter.MaxBet == 0 {
			cfg.Counter.MaxBet = def.Counter.MaxBet
		}
	}
	if cfg.Martingale == nil {
		cfg.Martingale = def.Martingale
	} else if cfg.Martingale.MaxDoublings == 0 {
		cfg.Martingale.MaxDoublings = def.Martingale.MaxDoublings
	}
	if cfg.Sweep == nil {
		cfg.Sweep = def.Sweep
	} else {
		if cfg.Sweep.From == 0 {
			cfg.Sweep.From = def.Sweep.From
		}
		if cfg.Sweep.To == 0 {
			cfg.Sweep.To = def.Sweep.To
		}
	}
}

func validate(cfg *SimConfig) error {
	if cfg.Table.Rounds < 0 {
		return fmt.Errorf("rounds must be non-negative, got %d", cfg.Table.Rounds)
	}
	if cfg.Table.Decks < 1 {
		return fmt.Errorf("decks must be at least 1, got %d", cfg.Table.Decks)
	}
	if cfg.Table.Penetration < 0 || cfg.Table.Penetration >= 1 {
		return fmt.Errorf("penetration must be in [0,1), got %f", cfg.Table.Penetration)
	}
	if cfg.Martingale.MaxDoublings < 0 || cfg.Martingale.MaxDoublings > strategy.MaxSupportedDoublings {
		return fmt.Errorf("max doublings must be in [0,%d], got %d", strategy.MaxSupportedDoublings, cfg.Martingale.MaxDoublings)
	}
	if cfg.Sweep.From > cfg.Sweep.To {
		return fmt.Errorf("threshold sweep range [%d,%d] is inverted", cfg.Sweep.From, cfg.Sweep.To)
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
