package world

// Form is the broad shape class of a terrain, which is what visibility
// cares about: void cells have nothing solid in them (a portal on one is
// looked through), wall-form cells block sight, floor-form cells are
// ordinary open ground.
type Form uint8

const (
	FormVoid Form = iota
	FormFloor
	FormWall
)

// Terrain identifies the terrain in one cell.
type Terrain uint8

const (
	TerrainVoid Terrain = iota
	TerrainFloor
	TerrainGrass
	TerrainWater
	TerrainGate
	TerrainWall
	TerrainRock
)

// Form returns the terrain's shape class. Gates are void-form on
// purpose: a portal under a gate is looked through, which is what makes
// the far region show through the opening.
func (t Terrain) Form() Form {
	switch t {
	case TerrainVoid, TerrainGate:
		return FormVoid
	case TerrainWall, TerrainRock:
		return FormWall
	default:
		return FormFloor
	}
}

// BlocksSight reports whether the terrain stops a line of sight.
func (t Terrain) BlocksSight() bool {
	return t.Form() == FormWall
}

// IsWalkable reports whether a mob can stand on or step into the cell.
// Gates are walkable even though they are void-form; stepping into one
// is how you travel through its portal.
func (t Terrain) IsWalkable() bool {
	switch t {
	case TerrainFloor, TerrainGrass, TerrainGate:
		return true
	default:
		return false
	}
}

// Name returns a short human-readable terrain name.
func (t Terrain) Name() string {
	switch t {
	case TerrainVoid:
		return "void"
	case TerrainFloor:
		return "floor"
	case TerrainGrass:
		return "grass"
	case TerrainWater:
		return "water"
	case TerrainGate:
		return "gate"
	case TerrainWall:
		return "wall"
	case TerrainRock:
		return "rock"
	default:
		return "unknown"
	}
}
