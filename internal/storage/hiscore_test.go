package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHiScoreFileLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		write    bool
		expected int
	}{
		{"missing file", "", false, 20000},
		{"valid value", "45100", true, 45100},
		{"trailing newline", "45100\n", true, 45100},
		{"below floor", "19999", true, 20000},
		{"at ceiling", "1000000", true, 20000},
		{"just below ceiling", "999999", true, 999999},
		{"garbage", "lots", true, 20000},
		{"empty", "", true, 20000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hiscore")
			if tc.write {
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			h, err := NewHiScoreFile(path)
			if err != nil {
				t.Fatalf("NewHiScoreFile() error = %v", err)
			}
			if got := h.Load(); got != tc.expected {
				t.Errorf("Load() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestHiScoreFileSaveVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "hiscore")
	h, err := NewHiScoreFile(path)
	if err != nil {
		t.Fatalf("NewHiScoreFile() error = %v", err)
	}

	if err := h.Save(5); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5" {
		t.Errorf("file contents = %q, expected %q", data, "5")
	}
	// Out of range values are written but ignored on load
	if got := h.Load(); got != DefaultHiScore {
		t.Errorf("Load() = %d, expected %d", got, DefaultHiScore)
	}

	if err := h.Save(31500); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := h.Load(); got != 31500 {
		t.Errorf("Load() = %d, expected 31500", got)
	}
}
