package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tank-arcade/internal/core"
)

func TestParseLevelBrickRow(t *testing.T) {
	data := "####\n" + strings.Repeat("\n", GridSize-1)
	m, err := ParseLevel([]byte(data))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	if m.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", m.Len())
	}

	obs := m.Obstacles()
	if len(obs) != 4 {
		t.Fatalf("Obstacles() = %d rects, expected 4", len(obs))
	}
	for i, r := range obs {
		want := core.NewRect(i*16, 0, 16, 16)
		if r != want {
			t.Errorf("Obstacles()[%d] = %+v, expected %+v", i, r, want)
		}
		if k := m.Kind(Cell{i, 0}); k != TileBrick {
			t.Errorf("Kind(%d, 0) = %v, expected brick", i, k)
		}
	}
}

func TestParseLevelCharacters(t *testing.T) {
	m, err := ParseLevel([]byte("#@~%- x.\r\n"))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	expected := []TileKind{TileBrick, TileSteel, TileWater, TileGrass, TileIce, TileEmpty, TileEmpty, TileEmpty}
	for col, want := range expected {
		if got := m.Kind(Cell{col, 0}); got != want {
			t.Errorf("Kind(%d, 0) = %v, expected %v", col, got, want)
		}
	}
	// Grass and ice never block.
	if len(m.Obstacles()) != 3 {
		t.Errorf("Obstacles() = %d rects, expected 3", len(m.Obstacles()))
	}
}

func TestParseLevelMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"too many rows", strings.Repeat(".\n", GridSize+1)},
		{"row too wide", strings.Repeat(".", GridSize+1) + "\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tc.data))
			if !errors.Is(err, ErrMalformedLevel) {
				t.Errorf("ParseLevel() error = %v, expected ErrMalformedLevel", err)
			}
		})
	}
}

func TestParseLevelTrailingBlankLines(t *testing.T) {
	data := strings.Repeat(".\n", GridSize) + "\n\n"
	if _, err := ParseLevel([]byte(data)); err != nil {
		t.Errorf("ParseLevel() error = %v, expected trailing blank lines to be ignored", err)
	}
}

func TestHitTile(t *testing.T) {
	tests := []struct {
		name        string
		kind        TileKind
		power       int
		stopped     bool
		removedTile bool
	}{
		{"brick power 1", TileBrick, 1, true, true},
		{"brick power 2", TileBrick, 2, true, true},
		{"steel power 1", TileSteel, 1, true, false},
		{"steel power 2", TileSteel, 2, true, true},
		{"water", TileWater, 2, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewTileMap()
			c := Cell{5, 5}
			m.Set(c, tc.kind)

			stopped, kind := m.HitTile(c.Rect().TopLeft(), tc.power)
			if stopped != tc.stopped {
				t.Errorf("HitTile() stopped = %v, expected %v", stopped, tc.stopped)
			}
			if kind != tc.kind {
				t.Errorf("HitTile() kind = %v, expected %v", kind, tc.kind)
			}
			if removed := m.Kind(c) == TileEmpty; removed != tc.removedTile {
				t.Errorf("tile removed = %v, expected %v", removed, tc.removedTile)
			}
		})
	}
}

func TestHitTileObjectiveDoesNotStop(t *testing.T) {
	m := NewTileMap()
	m.SetObjective(CastleRect)
	if stopped, _ := m.HitTile(CastleRect.TopLeft(), 2); stopped {
		t.Error("HitTile() on the objective should not stop the bullet")
	}
	if obs := m.Obstacles(); len(obs) != 1 || obs[0] != CastleRect {
		t.Errorf("Obstacles() = %v, expected the objective first", obs)
	}
}

func TestBuildFortress(t *testing.T) {
	m := NewTileMap()
	m.Set(FortressCells[0], TileWater)
	m.Set(Cell{0, 0}, TileBrick)

	m.BuildFortress(TileSteel)
	for _, c := range FortressCells {
		if k := m.Kind(c); k != TileSteel {
			t.Errorf("Kind(%v) = %v, expected steel", c, k)
		}
	}
	if m.Len() != len(FortressCells)+1 {
		t.Errorf("Len() = %d, expected %d", m.Len(), len(FortressCells)+1)
	}

	m.BuildFortress(TileBrick)
	if k := m.Kind(FortressCells[3]); k != TileBrick {
		t.Errorf("Kind() after revert = %v, expected brick", k)
	}
}

func TestObstaclesRebuiltAfterHit(t *testing.T) {
	m, err := ParseLevel([]byte("##\n"))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	before := m.Obstacles()
	m.HitTile(core.Pt(0, 0), 1)
	after := m.Obstacles()

	if len(before) != 2 {
		t.Errorf("earlier Obstacles() slice changed to %d rects", len(before))
	}
	if len(after) != 1 || after[0] != core.NewRect(16, 0, 16, 16) {
		t.Errorf("Obstacles() = %v, expected the remaining brick", after)
	}
}

func TestTileMapStringRoundTrip(t *testing.T) {
	src := "#@\n.~%-\n"
	m, err := ParseLevel([]byte(src))
	if err != nil {
		t.Fatalf("ParseLevel() error = %v", err)
	}
	again, err := ParseLevel([]byte(m.String()))
	if err != nil {
		t.Fatalf("ParseLevel(String()) error = %v", err)
	}
	if m.String() != again.String() {
		t.Errorf("String() round trip differs:\n%s\nvs\n%s", m.String(), again.String())
	}
	if lines := strings.Count(m.String(), "\n"); lines != GridSize {
		t.Errorf("String() has %d lines, expected %d", lines, GridSize)
	}
}
