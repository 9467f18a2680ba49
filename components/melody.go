package components

import "github.com/yohamta/donburi"

// MelodyData pairs the fixed note table with a playback cursor.
// The cursor counts collections, not star indices.
type MelodyData struct {
	Notes  []float64
	Cursor int
}

// Next returns the note at the cursor (the last note once the cursor runs
// past the table) and advances the cursor, never beyond len(Notes).
func (m *MelodyData) Next() float64 {
	n := len(m.Notes)
	if n == 0 {
		return 0
	}
	idx := m.Cursor
	if idx >= n {
		idx = n - 1
	}
	if m.Cursor < n {
		m.Cursor++
	}
	return m.Notes[idx]
}

// Complete reports whether every note has played.
func (m *MelodyData) Complete() bool {
	return len(m.Notes) > 0 && m.Cursor >= len(m.Notes)
}

func (m *MelodyData) Reset() {
	m.Cursor = 0
}

var Melody = donburi.NewComponentType[MelodyData]()
