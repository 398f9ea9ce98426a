package sim

import (
	"errors"
	"testing"
)

func TestSchedulerFiresAtInterval(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	count := func(Effect) error { fired++; return nil }

	s.Schedule(100, Effect{Kind: EffectShieldOff}, 1)
	s.Advance(99, count)
	if fired != 0 {
		t.Fatalf("fired = %d before interval, expected 0", fired)
	}
	s.Advance(1, count)
	if fired != 1 {
		t.Errorf("fired = %d at interval, expected 1", fired)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after single-shot fired, expected 0", s.Len())
	}
}

func TestSchedulerExactIntervalFiresOnce(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	s.Schedule(500, Effect{}, 1)
	s.Advance(500, func(Effect) error { fired++; return nil })
	if fired != 1 {
		t.Errorf("fired = %d, expected 1", fired)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestSchedulerRepeatCount(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	s.Schedule(10, Effect{}, 3)
	for range 5 {
		s.Advance(10, func(Effect) error { fired++; return nil })
	}
	if fired != 3 {
		t.Errorf("fired = %d, expected 3", fired)
	}
}

func TestSchedulerAtMostOncePerAdvance(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	count := func(Effect) error { fired++; return nil }
	s.Schedule(10, Effect{}, RepeatForever)

	s.Advance(35, count)
	if fired != 1 {
		t.Fatalf("fired = %d after one long advance, expected 1", fired)
	}
	// The remainder is kept: 25ms are already banked.
	s.Advance(0, count)
	if fired != 2 {
		t.Errorf("fired = %d after banked remainder, expected 2", fired)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	h := s.Schedule(10, Effect{}, RepeatForever)

	if !s.Pending(h) {
		t.Error("Pending() = false for a fresh entry")
	}
	if !s.Cancel(h) {
		t.Error("Cancel() = false for a live entry")
	}
	if s.Cancel(h) {
		t.Error("Cancel() = true for an already cancelled entry")
	}
	if s.Cancel(0) {
		t.Error("Cancel(0) = true, expected false")
	}
	for range 3 {
		s.Advance(10, func(Effect) error { fired++; return nil })
	}
	if fired != 0 {
		t.Errorf("cancelled entry fired %d times", fired)
	}
}

func TestSchedulerEvictsFailingEntry(t *testing.T) {
	s := NewScheduler(nil)
	calls := 0
	s.Schedule(10, Effect{Kind: EffectBonusBlink}, RepeatForever)
	s.Schedule(10, Effect{Kind: EffectWaterToggle}, RepeatForever)

	fire := func(e Effect) error {
		calls++
		if e.Kind == EffectBonusBlink {
			return errors.New("boom")
		}
		return nil
	}
	s.Advance(10, fire)
	s.Advance(10, fire)

	if calls != 3 {
		t.Errorf("calls = %d, expected 3 (failing entry fires once)", calls)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestSchedulerEntriesAddedDuringAdvance(t *testing.T) {
	s := NewScheduler(nil)
	var kinds []EffectKind
	s.Schedule(10, Effect{Kind: EffectSpawnEnemy}, 1)

	fire := func(e Effect) error {
		kinds = append(kinds, e.Kind)
		if e.Kind == EffectSpawnEnemy {
			s.Schedule(0, Effect{Kind: EffectEndSpawning}, 1)
		}
		return nil
	}
	s.Advance(10, fire)
	if len(kinds) != 1 {
		t.Fatalf("fired %v in first advance, expected only the original entry", kinds)
	}
	s.Advance(0, fire)
	if len(kinds) != 2 || kinds[1] != EffectEndSpawning {
		t.Errorf("fired %v, expected the new entry on the next advance", kinds)
	}
}

func TestSchedulerInsertionOrder(t *testing.T) {
	s := NewScheduler(nil)
	var got []int
	for i := 1; i <= 4; i++ {
		s.Schedule(5, Effect{Value: i}, 1)
	}
	s.Advance(5, func(e Effect) error { got = append(got, e.Value); return nil })
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("fire order = %v, expected [1 2 3 4]", got)
		}
	}
}

func TestEffectKindString(t *testing.T) {
	if got := EffectStageEnd.String(); got != "stage-end" {
		t.Errorf("String() = %q, expected stage-end", got)
	}
	if got := EffectKind(99).String(); got != "unknown" {
		t.Errorf("String() = %q, expected unknown", got)
	}
}
