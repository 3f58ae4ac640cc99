package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MatchRecord struct {
	ID int
	MatchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped folder under root for this batch.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "match", "seed", "players", "winner", "turns", "start_time", "end_time", "duration",
		"combats", "conquests", "eliminations", "trades", "cards"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Match,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Players),
			record.Winner,
			strconv.Itoa(record.Turns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Combats),
			strconv.Itoa(record.Conquests),
			strconv.Itoa(record.Eliminations),
			strconv.Itoa(record.Trades),
			strconv.Itoa(record.Cards),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
