package world

// Memory is a viewer's map memory: terrain remembered from every cell
// that has ever been in sight. Remembered terrain is a snapshot from
// when the cell was last seen, so it can go stale if the world mutates.
type Memory struct {
	remembered map[Location]Terrain
}

// NewMemory returns an empty map memory.
func NewMemory() *Memory {
	return &Memory{remembered: make(map[Location]Terrain)}
}

// RememberChart records the terrain of every location the chart shows.
func (m *Memory) RememberChart(w *World, ch Chart) {
	for off, c := range ch {
		loc := c.Loc(off)
		m.remembered[loc] = w.Terrain(loc)
	}
}

// Recall returns the remembered terrain for loc, if any.
func (m *Memory) Recall(loc Location) (Terrain, bool) {
	t, ok := m.remembered[loc]
	return t, ok
}

// Len returns the number of remembered cells.
func (m *Memory) Len() int {
	return len(m.remembered)
}
