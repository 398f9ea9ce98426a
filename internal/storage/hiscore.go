package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Bounds of an accepted high score. Anything else in the file is treated
// as absent.
const (
	DefaultHiScore = 20000
	maxHiScore     = 1000000
)

// HiScoreFile keeps the all-time best score as a single integer in a text file.
type HiScoreFile struct {
	path string
}

// NewHiScoreFile returns a store for the given path (a leading ~ is expanded).
func NewHiScoreFile(path string) (*HiScoreFile, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HiScoreFile{path: path}, nil
}

// Path returns the resolved file path.
func (h *HiScoreFile) Path() string {
	return h.path
}

// Load returns the stored high score. A missing, unreadable, malformed or
// out-of-range file yields DefaultHiScore.
func (h *HiScoreFile) Load() int {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return DefaultHiScore
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < DefaultHiScore || n >= maxHiScore {
		return DefaultHiScore
	}
	return n
}

// Save overwrites the file with score, written verbatim.
func (h *HiScoreFile) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", h.path, err)
	}
	if err := os.WriteFile(h.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}
