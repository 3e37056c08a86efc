// crawl is an interactive walkabout through a portal-stitched hex
// world, rendered with the fake-isometric terminal projection. It
// exists to exercise the visibility engine: walk up to a gate and the
// far region shows through it seamlessly. Build:
//
//	go build -o crawl ./cmd/crawl
//
// Movement: k/j north/south, y/u/b/n the diagonals, q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"hexcrawl/internal/hexgrid"
	"hexcrawl/internal/logger"
	"hexcrawl/internal/render"
	"hexcrawl/internal/world"
	"hexcrawl/internal/worldgen"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Int64("seed", 0, "world seed (0 = random)")
	regions := flag.Int("regions", 3, "number of portal-linked regions")
	radius := flag.Int("radius", 24, "island radius per region")
	sightRange := flag.Int("range", 12, "sight range for the visible-set readout")
	logFile := flag.String("log", "crawl.log", "log file path (stdout is owned by the terminal UI)")
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: open log: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger.Init(f)

	cfg := worldgen.DefaultConfig()
	cfg.Seed = *seed
	cfg.Regions = *regions
	cfg.Radius = *radius

	gen, err := worldgen.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(gen, *sightRange); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(gen *worldgen.Result, sightRange int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	d := &demo{
		screen:     screen,
		renderer:   render.NewRenderer(screen),
		world:      gen.World,
		gen:        gen,
		memory:     world.NewMemory(),
		player:     gen.Spawn,
		sightRange: sightRange,
	}
	d.loop()
	return nil
}

type demo struct {
	screen     tcell.Screen
	renderer   *render.Renderer
	world      *world.World
	gen        *worldgen.Result
	memory     *world.Memory
	player     world.Location
	sightRange int
}

func (d *demo) loop() {
	for {
		d.drawFrame()

		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventResize:
			d.screen.Sync()
			d.renderer.Resize()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
			if dir, ok := keyToDir(ev); ok {
				d.move(dir)
			}
		}
	}
}

// move steps the player one cell, travelling through a gate when the
// target cell carries one.
func (d *demo) move(dir hexgrid.Dir6) {
	target := d.player.Add(dir.Vec())
	if !d.world.IsWalkable(target) {
		return
	}
	dest := d.world.Jump(target)
	if dest != target {
		logger.Log.WithFields(logrus.Fields{
			"component": "crawl",
			"from":      target,
			"to":        dest,
		}).Info("crossed portal")
	}
	d.player = dest
}

func (d *demo) drawFrame() {
	start := time.Now()
	chart := world.BuildChart(d.world, d.player, d.renderer.Viewport())
	sight := world.BuildSightSet(d.world, d.player, d.sightRange)
	d.memory.RememberChart(d.world, chart)

	logger.Log.WithFields(logrus.Fields{
		"component":  "crawl",
		"chart":      len(chart),
		"sight":      len(sight),
		"remembered": d.memory.Len(),
		"elapsed":    time.Since(start),
	}).Debug("frame scan")

	d.renderer.DrawFrame(d.world, chart, d.memory, d.player, d.hud(len(sight)))
}

func (d *demo) hud(sightCount int) string {
	name := "unknown"
	id := ""
	if reg, ok := d.gen.RegionAt(d.player.Z); ok {
		name = reg.Name
		id = reg.ID.String()[:8]
	}
	return fmt.Sprintf(" %s [%s]  pos %d,%d  in sight: %d  |  kjyubn to move, q to quit",
		name, id, d.player.X, d.player.Y, sightCount)
}

// keyToDir maps movement keys to hex directions. The hex grid has no
// pure east/west step, so h and l are unbound.
func keyToDir(ev *tcell.EventKey) (hexgrid.Dir6, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return hexgrid.DirNorth, true
	case tcell.KeyDown:
		return hexgrid.DirSouth, true
	}
	switch ev.Rune() {
	case 'k', 'K':
		return hexgrid.DirNorth, true
	case 'j', 'J':
		return hexgrid.DirSouth, true
	case 'u', 'U':
		return hexgrid.DirNorthEast, true
	case 'n', 'N':
		return hexgrid.DirSouthEast, true
	case 'b', 'B':
		return hexgrid.DirSouthWest, true
	case 'y', 'Y':
		return hexgrid.DirNorthWest, true
	}
	return 0, false
}
