package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tank-arcade/internal/games/battle/sim"
)

func TestEmbeddedStagesAreValid(t *testing.T) {
	src := Embedded()
	if src.Count() < 6 {
		t.Fatalf("Count() = %d, expected at least 6", src.Count())
	}
	for _, p := range src.Validate() {
		t.Errorf("Validate(): %v", p)
	}
	for stage := 1; stage <= src.Count(); stage++ {
		m, err := src.Parse(stage)
		if err != nil {
			t.Fatalf("Parse(%d) error = %v", stage, err)
		}
		for _, c := range sim.FortressCells {
			if m.Kind(c) != sim.TileBrick {
				t.Errorf("stage %d: fortress cell %v is %v, expected brick", stage, c, m.Kind(c))
			}
		}
	}
}

func TestStageWrapping(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.txt", "2.txt", "10.txt", "3.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	src, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}

	tests := []struct {
		stage    int
		expected string
	}{
		{1, "1.txt"},
		{3, "3.txt"},
		{4, "10.txt"},
		{5, "1.txt"},
		{8, "10.txt"},
		{0, "10.txt"},
	}
	for _, tc := range tests {
		if got := src.Name(tc.stage); got != tc.expected {
			t.Errorf("Name(%d) = %q, expected %q", tc.stage, got, tc.expected)
		}
	}

	data, err := src.Load(6)
	if err != nil {
		t.Fatalf("Load(6) error = %v", err)
	}
	if strings.TrimSpace(string(data)) != "2.txt" {
		t.Errorf("Load(6) = %q, expected the second file", data)
	}
}

func TestDirErrors(t *testing.T) {
	if _, err := Dir(t.TempDir()); !errors.Is(err, ErrNoLevels) {
		t.Errorf("Dir(empty) error = %v, expected ErrNoLevels", err)
	}
	if _, err := Dir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Dir(missing) should fail")
	}
}

func TestValidateReportsProblems(t *testing.T) {
	dir := t.TempDir()
	blocked := "@@" + strings.Repeat(".", 24) + "\n"
	if err := os.WriteFile(filepath.Join(dir, "1.txt"), []byte(blocked), 0o644); err != nil {
		t.Fatal(err)
	}
	wide := strings.Repeat(".", 30) + "\n"
	if err := os.WriteFile(filepath.Join(dir, "2.txt"), []byte(wide), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := Dir(dir)
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	problems := src.Validate()
	if len(problems) != 3 {
		t.Fatalf("Validate() = %v, expected 3 problems", problems)
	}
	if !errors.Is(problems[2].Err, sim.ErrMalformedLevel) {
		t.Errorf("problem for stage 2 = %v, expected ErrMalformedLevel", problems[2].Err)
	}
}

func TestOpen(t *testing.T) {
	src, err := Open("")
	if err != nil || src.Where() != "embedded" {
		t.Errorf("Open(\"\") = %v, %v, expected embedded stages", src, err)
	}
}
