package components

import "testing"

func TestMelodyNext(t *testing.T) {
	m := &MelodyData{Notes: []float64{100, 200, 300}}

	want := []struct {
		freq   float64
		cursor int
	}{
		{100, 1},
		{200, 2},
		{300, 3},
		{300, 3}, // past the end replays the last note, cursor stays at N
		{300, 3},
	}
	for i, w := range want {
		got := m.Next()
		if got != w.freq || m.Cursor != w.cursor {
			t.Fatalf("call %d: Next() = %v (cursor %d), want %v (cursor %d)", i, got, m.Cursor, w.freq, w.cursor)
		}
	}
	if !m.Complete() {
		t.Error("Complete() = false after every note played")
	}

	m.Reset()
	if m.Cursor != 0 || m.Complete() {
		t.Errorf("after Reset cursor = %d, complete = %v", m.Cursor, m.Complete())
	}
}

func TestMelodyEmpty(t *testing.T) {
	m := &MelodyData{}
	if got := m.Next(); got != 0 {
		t.Errorf("Next() on empty melody = %v, want 0", got)
	}
	if m.Cursor != 0 || m.Complete() {
		t.Errorf("empty melody cursor = %d, complete = %v", m.Cursor, m.Complete())
	}
}

func TestEffectsQueue(t *testing.T) {
	fx := &EffectsData{}
	fx.Push(EffectPlayerHit, 1.0, 0.2)

	if !fx.Active(EffectPlayerHit, 1.1) {
		t.Error("effect inactive before expiry")
	}
	if fx.Active(EffectPlayerHit, 1.2) {
		t.Error("effect still active at expiry")
	}

	fx.Push(EffectPlayerHit, 1.15, 0.2)
	fx.Prune(1.25)
	if len(fx.Queue) != 1 || !fx.Active(EffectPlayerHit, 1.3) {
		t.Errorf("after prune queue = %+v, want the later effect only", fx.Queue)
	}

	fx.Clear()
	if fx.Active(EffectPlayerHit, 1.3) {
		t.Error("effect active after Clear")
	}
}
