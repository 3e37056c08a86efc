// Package worldgen builds the demo world: a stack of noise-generated
// island regions stitched together with portal gates. Each region is an
// independent coordinate frame; the only way between them is through a
// gate cell carrying a portal, which is exactly the situation the
// visibility engine's portal handling exists for.
package worldgen

import (
	"fmt"
	"math"
	"math/rand"

	"hexcrawl/internal/hexgrid"
	"hexcrawl/internal/logger"
	"hexcrawl/internal/world"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/sirupsen/logrus"
)

// Config holds generation parameters.
type Config struct {
	Seed      int64   // random seed (0 = random)
	Regions   int     // number of stacked regions
	Radius    int     // island radius in cells
	SeaLevel  float64 // elevation below this is water
	RockLevel float64 // elevation above this is solid rock
}

// DefaultConfig returns a small world suitable for the demo.
func DefaultConfig() Config {
	return Config{
		Seed:      0,
		Regions:   3,
		Radius:    24,
		SeaLevel:  0.34,
		RockLevel: 0.72,
	}
}

// Region is registry metadata for one generated coordinate frame.
type Region struct {
	ID   uuid.UUID
	Name string
	Z    int16
}

// Result is a generated world plus its region registry.
type Result struct {
	World   *world.World
	Regions []Region
	Spawn   world.Location
	Gates   []world.Location // every gate cell carrying a portal
}

// RegionAt returns the registry entry for the region index z.
func (r *Result) RegionAt(z int16) (Region, bool) {
	for _, reg := range r.Regions {
		if reg.Z == z {
			return reg, true
		}
	}
	return Region{}, false
}

var regionNames = []string{
	"Emberfen",
	"Sunken Halls",
	"Glasswood",
	"The Warrens",
	"Cinder Reach",
	"Pale Terrace",
}

// Generate builds the world described by cfg. It fails when a region
// comes out with no walkable ground or no coastline to anchor a gate
// on, which can happen with adversarial noise parameters.
func Generate(cfg Config) (*Result, error) {
	if cfg.Regions < 1 {
		return nil, fmt.Errorf("worldgen: need at least one region, got %d", cfg.Regions)
	}
	if cfg.Radius < 4 {
		return nil, fmt.Errorf("worldgen: radius %d too small for an island", cfg.Radius)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	genLog := logger.Log.WithFields(logrus.Fields{
		"component": "worldgen",
		"seed":      seed,
		"regions":   cfg.Regions,
	})

	w := world.New()
	res := &Result{World: w}

	for z := 0; z < cfg.Regions; z++ {
		generateRegion(w, cfg, seed, int16(z))
		res.Regions = append(res.Regions, Region{
			ID:   uuid.New(),
			Name: regionNames[z%len(regionNames)],
			Z:    int16(z),
		})
	}

	// Stitch each region to the next with a pair of one-way gates that
	// together behave like a two-way passage.
	for z := 0; z < cfg.Regions-1; z++ {
		gates, err := linkRegions(w, cfg.Radius, int16(z), int16(z+1))
		if err != nil {
			return nil, err
		}
		res.Gates = append(res.Gates, gates...)
	}

	spawn, ok := findSpawn(w, cfg.Radius, 0)
	if !ok {
		return nil, fmt.Errorf("worldgen: no walkable spawn cell in region 0 (seed %d)", seed)
	}
	res.Spawn = spawn

	genLog.WithField("spawn", spawn).Info("world generated")
	return res, nil
}

// generateRegion fills one region with island terrain: layered simplex
// noise shaped by a radial falloff so the island fades into void at the
// rim.
func generateRegion(w *world.World, cfg Config, seed int64, z int16) {
	elevNoise := opensimplex.NewNormalized(seed + int64(z)*7)
	moistNoise := opensimplex.NewNormalized(seed + int64(z)*7 + 1)

	r := cfg.Radius
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			off := hexgrid.Vec{X: x, Y: y}
			if off.HexDist() > r {
				continue
			}

			fx, fy := float64(x), float64(y)
			elev := octaveNoise(elevNoise, fx, fy, 4, 0.09, 0.5)
			moist := octaveNoise(moistNoise, fx, fy, 3, 0.07, 0.5)

			// Push the coast below sea level near the rim.
			falloff := 1.0 - math.Pow(float64(off.HexDist())/float64(r), 3.0)
			if falloff < 0 {
				falloff = 0
			}
			elev *= falloff

			loc := world.Location{X: int16(x), Y: int16(y), Z: z}
			w.SetTerrain(loc, deriveTerrain(elev, moist, cfg))
		}
	}
}

func deriveTerrain(elev, moist float64, cfg Config) world.Terrain {
	switch {
	case elev <= 0.02:
		return world.TerrainVoid
	case elev < cfg.SeaLevel:
		return world.TerrainWater
	case elev >= cfg.RockLevel:
		return world.TerrainRock
	case elev >= cfg.RockLevel-0.08:
		return world.TerrainWall
	case moist > 0.5:
		return world.TerrainGrass
	default:
		return world.TerrainFloor
	}
}

// linkRegions anchors a gate on the southeast shore of region a leading
// into region b, and a matching return gate on b's northwest shore.
// Each gate is a void-form cell so sight passes through it, with the
// portal destination at the walkable cell the traveller lands on.
func linkRegions(w *world.World, radius int, a, b int16) ([]world.Location, error) {
	gateA, landA, err := shoreGate(w, radius, a, hexgrid.DirSouthEast)
	if err != nil {
		return nil, err
	}
	gateB, landB, err := shoreGate(w, radius, b, hexgrid.DirNorthWest)
	if err != nil {
		return nil, err
	}

	w.SetTerrain(gateA, world.TerrainGate)
	w.SetTerrain(gateB, world.TerrainGate)
	w.SetPortal(gateA, landB)
	w.SetPortal(gateB, landA)
	return []world.Location{gateA, gateB}, nil
}

// shoreGate finds a walkable cell in region z whose neighbor toward dir
// is open water or void, and returns that neighbor (the gate site,
// which the caller overwrites with gate terrain) along with the
// walkable cell itself. The search walks the dir axis inward from the
// rim so gates end up on the island's shore; if the axis has no usable
// shore the remaining directions are tried in turn.
func shoreGate(w *world.World, radius int, z int16, dir hexgrid.Dir6) (gate, land world.Location, err error) {
	center := world.Location{Z: z}
	for turn := 0; turn < 6; turn++ {
		step := dir.Rotate(turn).Vec()
		for d := radius; d >= 1; d-- {
			loc := center.Add(step.Mul(d))
			if !w.IsWalkable(loc) {
				continue
			}
			next := loc.Add(step)
			t := w.Terrain(next)
			if !t.IsWalkable() && !t.BlocksSight() {
				return next, loc, nil
			}
			break // shore toward this direction is blocked, rotate
		}
	}
	return world.Location{}, world.Location{}, fmt.Errorf(
		"worldgen: region %d has no usable shore cell", z)
}

// findSpawn returns the walkable cell nearest the center of region z.
func findSpawn(w *world.World, radius int, z int16) (world.Location, bool) {
	center := world.Location{Z: z}
	if w.IsWalkable(center) {
		return center, true
	}
	for d := 1; d <= radius; d++ {
		for i := 0; i < 6; i++ {
			// Walk the ring of radius d.
			for j := 0; j < d; j++ {
				off := hexgrid.DirFromInt(i).Vec().Mul(d).
					Add(hexgrid.DirFromInt(i + 2).Vec().Mul(j))
				if loc := center.Add(off); w.IsWalkable(loc) {
					return loc, true
				}
			}
		}
	}
	return world.Location{}, false
}

// octaveNoise layers multiple noise frequencies into fractal terrain.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
