// Package levels supplies stage files to the battle simulation, either
// from the set compiled into the binary or from a directory on disk.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tank-arcade/internal/games/battle/sim"
)

//go:embed stages/*.txt
var embedded embed.FS

// ErrNoLevels is returned when a directory holds no stage files.
var ErrNoLevels = errors.New("levels: no stage files found")

// Source is an ordered set of stage files. Stage numbers start at 1 and
// wrap around the set.
type Source struct {
	fsys  fs.FS
	names []string
	where string
}

// Embedded returns the built-in stages.
func Embedded() *Source {
	sub, err := fs.Sub(embedded, "stages")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded stages: %v", err))
	}
	src, err := fromFS(sub, "embedded")
	if err != nil {
		panic(fmt.Sprintf("levels: embedded stages: %v", err))
	}
	return src
}

// Dir loads stage files from a directory. Files are taken in numeric order
// of their base name (1.txt, 02.txt, 10.txt); names that are not numbers
// sort after the numbered ones.
func Dir(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", path)
	}
	return fromFS(os.DirFS(path), path)
}

// Open returns the directory source for a non-empty path and the embedded
// stages otherwise.
func Open(path string) (*Source, error) {
	if path == "" {
		return Embedded(), nil
	}
	return Dir(path)
}

func fromFS(fsys fs.FS, where string) (*Source, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", where, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, where)
	}

	sort.SliceStable(names, func(i, j int) bool {
		ni, iok := stageNumber(names[i])
		nj, jok := stageNumber(names[j])
		switch {
		case iok && jok && ni != nj:
			return ni < nj
		case iok != jok:
			return iok
		default:
			return names[i] < names[j]
		}
	})
	return &Source{fsys: fsys, names: names, where: where}, nil
}

func stageNumber(name string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(name, filepath.Ext(name)))
	return n, err == nil
}

// Count returns the number of stage files.
func (s *Source) Count() int {
	return len(s.names)
}

// Where describes the origin of the stages for logs and listings.
func (s *Source) Where() string {
	return s.where
}

// Name returns the file name used for a stage number.
func (s *Source) Name(stage int) string {
	return s.names[s.index(stage)]
}

// index maps a 1-based stage number onto the file list: stage numbers wrap
// modulo the count, and a zero remainder selects the last file.
func (s *Source) index(stage int) int {
	n := len(s.names)
	i := stage % n
	if i < 0 {
		i += n
	}
	if i == 0 {
		return n - 1
	}
	return i - 1
}

// Load implements sim.LevelSource.
func (s *Source) Load(stage int) ([]byte, error) {
	name := s.Name(stage)
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

// Parse loads and parses a stage.
func (s *Source) Parse(stage int) (*sim.TileMap, error) {
	data, err := s.Load(stage)
	if err != nil {
		return nil, err
	}
	m, err := sim.ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", s.Name(stage), err)
	}
	return m, nil
}

// Problem is a validation finding for one stage file.
type Problem struct {
	Stage int
	Name  string
	Err   error
}

func (p Problem) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", p.Stage, p.Name, p.Err)
}

// Validate parses every stage and checks that the spawn points, the player
// starts and the castle are free of terrain.
func (s *Source) Validate() []Problem {
	var problems []Problem
	for stage := 1; stage <= s.Count(); stage++ {
		m, err := s.Parse(stage)
		if err != nil {
			problems = append(problems, Problem{Stage: stage, Name: s.Name(stage), Err: err})
			continue
		}
		for _, r := range sim.ReservedAreas() {
			for _, t := range m.Tiles() {
				if t.Kind.Blocks() && t.Rect().Intersects(r) {
					problems = append(problems, Problem{
						Stage: stage,
						Name:  s.Name(stage),
						Err:   fmt.Errorf("%v tile at column %d row %d blocks a reserved area", t.Kind, t.Col, t.Row),
					})
				}
			}
		}
	}
	return problems
}
