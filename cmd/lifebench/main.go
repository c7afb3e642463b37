// Command lifebench drives the lifecore engine for a fixed number of
// generations against a synthetic random board, for profiling the hot
// loop outside of any UI. Adapted from the teacher's main.go profiling
// wrapper (cpuprofile/memprofile flags around a run loop), pointed at
// lifecore.LifeLikeEngine instead of an ebiten.Game.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/nlm-sim/lifecore"
	"github.com/nlm-sim/lifecore/internal/grid"
	"github.com/nlm-sim/lifecore/internal/lifelike"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
	width      = flag.Int("width", 1024, "board width in cells (must be a multiple of 16)")
	height     = flag.Int("height", 1024, "board height in cells")
	gens       = flag.Int("generations", 1000, "number of generations to advance")
	liveFrac   = flag.Float64("live", 0.35, "fraction of cells alive in the initial random board")
)

func run(logger *slog.Logger) {
	g := grid.New(*width, *height, 16, 16)
	seedRandom(g, *liveFrac)
	g.MarkAllDirty()

	engine := lifecore.NewLifeLikeEngine(conwayBirth, conwaySurvival)
	params := lifelike.Params{AliveStart: 1, AliveMax: 255, DeadStart: 0, DeadMin: 0}
	shared := make([]int32, 7)

	start := time.Now()
	for i := 0; i < *gens; i++ {
		engine.StepTwoState(g, params, shared)
	}
	elapsed := time.Since(start)

	logger.Info("run complete",
		"generations", *gens,
		"elapsed", elapsed,
		"gens_per_sec", float64(*gens)/elapsed.Seconds(),
		"final_population", shared[4],
	)
}

var (
	conwayBirth    = lifelike.Ruleset{3: true}
	conwaySurvival = lifelike.Ruleset{2: true, 3: true}
)

func seedRandom(g *grid.Grid, liveFrac float64) {
	src := rand.New(rand.NewSource(1))
	for y := 0; y < g.Height; y++ {
		row := g.Row(y)
		bitRow := g.BitRow(g.Bits.Current(), y)
		for x := 0; x < g.Width; x++ {
			if src.Float64() >= liveFrac {
				continue
			}
			row[x] = 1
			bitRow[x/16] |= 1 << uint(15-(x%16))
		}
	}
}

func main() {
	flag.Parse()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Error("could not create CPU profile", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error("could not start CPU profile", "error", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	run(logger)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			logger.Error("could not create memory profile", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Error("could not write memory profile", "error", err)
			os.Exit(1)
		}
	}
}
