// Package results persists and loads the per-run summary records consumed by
// the reporting tooling.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Record is the persisted summary of one simulation run, one file per
// strategy or per threshold sweep value.
type Record struct {
	Strategy     string  `json:"strategy"`
	Games        int     `json:"games"`
	Profit       float64 `json:"profit"`
	WinRate      float64 `json:"win_rate"`
	LossRate     float64 `json:"loss_rate"`
	PushRate     float64 `json:"push_rate"`
	AvgBet       float64 `json:"avg_bet"`
	MaxBet       float64 `json:"max_bet"`
	MinBet       float64 `json:"min_bet"`
	TotalWagered float64 `json:"total_wagered"`
}

// Filename returns the record's file name within a results directory
func (r Record) Filename() string {
	name := strings.ReplaceAll(r.Strategy, " ", "_")
	return name + "_results.json"
}

// Write persists the record into dir atomically: the JSON is written to a
// temp file in the same directory and renamed into place, so readers see
// either no file or a complete record, never a partial write.
func Write(dir string, record Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results dir: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", record.Strategy, err)
	}

	path := filepath.Join(dir, record.Filename())
	tmp, err := os.CreateTemp(dir, record.Filename()+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming record into place: %w", err)
	}
	tmp = nil
	return nil
}

// Load reads every record file in dir, sorted by descending profit
func Load(dir string) ([]Record, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_results.json"))
	if err != nil {
		return nil, fmt.Errorf("listing results dir: %w", err)
	}

	records := make([]Record, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var record Record
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Profit > records[j].Profit
	})
	return records, nil
}
