package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists matchup results as CSV files under a run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates baseDir (and parents) and returns a writer rooted there.
func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory the CSV files are written to.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "kind", "seed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}
	for _, c := range configs {
		row := []string{
			strconv.Itoa(c.ID),
			c.Kind,
			strconv.FormatUint(c.Seed, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "white", "black", "start_time", "end_time", "duration_ms", "total_moves", "material", "out_of_moves"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.White),
			strconv.Itoa(r.Black),
			r.StartTime.UTC().Format(time.RFC3339Nano),
			r.EndTime.UTC().Format(time.RFC3339Nano),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			strconv.Itoa(r.TotalMoves),
			strconv.Itoa(r.Material),
			r.OutOfMoves,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "move", "material"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write moves header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			r.Move,
			strconv.Itoa(r.Material),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move row: %w", err)
		}
	}
	return nil
}
