package render

import "hexcrawl/internal/world"

// Terrain glyphs. Emoji render with their own colors, so the remembered
// (out-of-sight) state uses distinct darker glyphs instead of terminal
// FG tinting.
var glyphs = map[world.Terrain]string{
	world.TerrainFloor: "🟫",
	world.TerrainGrass: "🟩",
	world.TerrainWater: "🟦",
	world.TerrainGate:  "🌀",
	world.TerrainWall:  "🧱",
	world.TerrainRock:  "🪨",
}

var dimGlyphs = map[world.Terrain]string{
	world.TerrainFloor: "▪ ",
	world.TerrainGrass: "▪ ",
	world.TerrainWater: "~ ",
	world.TerrainGate:  "◉ ",
	world.TerrainWall:  "▓▓",
	world.TerrainRock:  "▓▓",
}

// PlayerGlyph marks the viewer's cell.
const PlayerGlyph = "🧝"

// Glyph returns the 2-column glyph for a terrain, bright when the cell
// is currently visible and dim when only remembered.
func Glyph(t world.Terrain, visible bool) (string, bool) {
	m := glyphs
	if !visible {
		m = dimGlyphs
	}
	g, ok := m[t]
	return g, ok
}
