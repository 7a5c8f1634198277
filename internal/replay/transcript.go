package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Transcript records what the agent sent during a replay.
type Transcript struct {
	Session  string        `toml:"session"`
	Strategy string        `toml:"strategy,omitempty"`
	Seed     int64         `toml:"seed,omitempty"`
	Rounds   []RoundRecord `toml:"round"`
	Summary  Summary       `toml:"summary"`
}

// RoundRecord is the replayed view of one round
type RoundRecord struct {
	Number    int              `toml:"number"`
	Hole      string           `toml:"hole"`
	Decisions []DecisionRecord `toml:"decision"`
	Delta     int              `toml:"delta"`
	Opponent  string           `toml:"opponent,omitempty"`
}

// DecisionRecord is one decision point and the action sent
type DecisionRecord struct {
	Street   int      `toml:"street"`
	Board    string   `toml:"board,omitempty"`
	Legal    []string `toml:"legal"`
	Action   string   `toml:"action"`
	Expected string   `toml:"expected,omitempty"`
	Mismatch bool     `toml:"mismatch,omitempty"`
}

// Summary holds match totals
type Summary struct {
	Rounds     int `toml:"rounds"`
	Decisions  int `toml:"decisions"`
	Repairs    int `toml:"repairs"`
	Violations int `toml:"violations"`
	Mismatches int `toml:"mismatches"`
	NetDelta   int `toml:"net_delta"`
}

// Encode writes the transcript to w in TOML format.
func Encode(w io.Writer, t *Transcript) error {
	if t == nil {
		return fmt.Errorf("replay: transcript is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(t)
}

// WriteFile encodes t and replaces path with it atomically: the transcript is
// written to a temporary file in the same directory and renamed over path, so
// a reader sees either the previous file or the complete new one.
func WriteFile(path string, t *Transcript) error {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
