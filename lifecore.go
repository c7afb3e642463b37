// Package lifecore is the generation-advancement engine: the public API
// a driver (renderer, CLI, test harness) calls once per generation. It
// composes the internal/* components into one of five rule-family step
// functions, and writes the generation's aggregate outputs into a
// caller-supplied shared []int32 array in one of three canonical orders
// (HROT-full, life-like/compact, and Moore-HROT compact).
//
// Step* functions work in the buffers the caller's *grid.Grid already
// owns, but some paths still allocate on every call: SuperEngine.Step
// copies the whole colour plane, grid.BitRow returns a fresh zero slice
// for rows outside the grid, and the HROT Moore path starts an errgroup
// of row-band workers.
package lifecore

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nlm-sim/lifecore/internal/cumsum"
	"github.com/nlm-sim/lifecore/internal/generations"
	"github.com/nlm-sim/lifecore/internal/grid"
	"github.com/nlm-sim/lifecore/internal/lifelike"
	"github.com/nlm-sim/lifecore/internal/neighborhood"
	"github.com/nlm-sim/lifecore/internal/super"
	"github.com/nlm-sim/lifecore/internal/transition"
)

// WriteSharedHROT packs the full HROT aggregate layout into shared,
// spec.md §6: [minX, maxX, minY, maxY, minX1, maxX1, minY1, maxY1,
// population, births, deaths].
func WriteSharedHROT(g *grid.Grid, shared []int32) {
	shared[0], shared[1] = int32(g.MinX), int32(g.MaxX)
	shared[2], shared[3] = int32(g.MinY), int32(g.MaxY)
	shared[4], shared[5] = int32(g.MinX1), int32(g.MaxX1)
	shared[6], shared[7] = int32(g.MinY1), int32(g.MaxY1)
	shared[8] = int32(g.Population)
	shared[9] = int32(g.Births)
	shared[10] = int32(g.Deaths)
}

// WriteSharedCompact packs the Life-like/Generations aggregate layout,
// spec.md §6: [newLeftX, newBottomY, newRightX, newTopY, population,
// births, deaths].
func WriteSharedCompact(g *grid.Grid, shared []int32) {
	shared[0], shared[1] = int32(g.MinX), int32(g.MinY)
	shared[2], shared[3] = int32(g.MaxX), int32(g.MaxY)
	shared[4] = int32(g.Population)
	shared[5] = int32(g.Births)
	shared[6] = int32(g.Deaths)
}

// WriteSharedMooreCompact packs the Moore-HROT compact layout (no X
// columns), spec.md §6: [minY, maxY, minY1, maxY1, population, births,
// deaths].
func WriteSharedMooreCompact(g *grid.Grid, shared []int32) {
	shared[0], shared[1] = int32(g.MinY), int32(g.MaxY)
	shared[2], shared[3] = int32(g.MinY1), int32(g.MaxY1)
	shared[4] = int32(g.Population)
	shared[5] = int32(g.Births)
	shared[6] = int32(g.Deaths)
}

// LifeLikeEngine pairs a compiled lifelike.Engine with the Generations
// promotion it optionally drives, mirroring how the source alternates
// between the two over the same bit-grid (spec.md §4.E/§4.F).
type LifeLikeEngine struct {
	core *lifelike.Engine
}

// NewLifeLikeEngine compiles the birth/survival lookup tables for the
// given ruleset.
func NewLifeLikeEngine(b, s lifelike.Ruleset) *LifeLikeEngine {
	return &LifeLikeEngine{core: lifelike.NewEngine(b, s)}
}

// StepTwoState advances a two-state (with fading history) grid by one
// generation and writes the compact aggregate layout.
func (e *LifeLikeEngine) StepTwoState(g *grid.Grid, p lifelike.Params, shared []int32) {
	e.core.Step(g, p)
	WriteSharedCompact(g, shared)
}

// StepGenerations advances a Generations-style grid: it first advances
// the bit plane with this engine's ruleset (StepBits, which reads only the
// bit plane and leaves the colour plane alone), then promotes the colour
// plane from that bit-grid (spec.md §4.F).
func (e *LifeLikeEngine) StepGenerations(g *grid.Grid, lp lifelike.Params, gp generations.Params, shared []int32) {
	e.core.StepBits(g, lp)
	generations.Promote(g, g.Bits.Current(), gp)
	WriteSharedCompact(g, shared)
}

// SuperEngine wraps the Life-like bit-grid evaluator driving the Super
// succession table (spec.md §4.G: Super reuses the same birth/survival
// bit-grid as Generations, reinterpreted through the 26-state table).
type SuperEngine struct {
	core *lifelike.Engine
}

// NewSuperEngine compiles the lookup tables for ruleset (b, s).
func NewSuperEngine(b, s lifelike.Ruleset) *SuperEngine {
	return &SuperEngine{core: lifelike.NewEngine(b, s)}
}

// Step advances a Super grid by one generation.
func (e *SuperEngine) Step(g *grid.Grid, lp lifelike.Params, shared []int32) {
	e.core.StepBits(g, lp)
	super.Step(g, g.Bits.Current())
	WriteSharedCompact(g, shared)
}

// HROTMooreParams configures a Moore-neighbourhood HROT generation.
type HROTMooreParams struct {
	Region    transition.Region
	XRange, YRange int
	ComboList []byte
}

// StepHROTMoore2State runs the Moore-HROT pipeline for a two-state rule:
// each cell's neighbour count is summed directly over its (xrange, yrange)
// rectangle by component B's Moore kernel, split across row bands, and
// fed to D, writing the full HROT aggregate layout. No cumulative table is
// built on this path; BuildMooreCumulativeTable exposes component C
// separately.
func StepHROTMoore2State(g *grid.Grid, p HROTMooreParams, tp transition.Params2State, aliveStart byte, shared []int32) {
	r := p.Region
	buildMooreCumulative(g, r, p.XRange, p.YRange, func(c byte) bool { return c >= aliveStart })
	queryMooreCounts(g, r)
	transition.Apply2State(g, g.Counts, p.ComboList, r, tp)
	WriteSharedHROT(g, shared)
}

// StepHROTMooreNState is the N-state (Generations-style) counterpart.
func StepHROTMooreNState(g *grid.Grid, p HROTMooreParams, tp transition.ParamsNState, maxGenState byte, shared []int32) {
	r := p.Region
	buildMooreCumulative(g, r, p.XRange, p.YRange, func(c byte) bool { return c == maxGenState })
	queryMooreCounts(g, r)
	transition.ApplyNState(g, g.Counts, p.ComboList, r, tp)
	WriteSharedHROT(g, shared)
}

// buildMooreCumulative computes the direct Moore neighbour sums over the
// padded region (no cumulative table, despite the name) in disjoint row
// bands, concurrently (spec.md §5). Each band writes only its own rows of
// g.Counts, so no reduction step is needed here — the concurrency is
// purely a throughput win over the counting stage, not the
// aggregate-bearing transition stage that follows it sequentially.
func buildMooreCumulative(g *grid.Grid, r transition.Region, xrange, yrange int, alive func(byte) bool) {
	// Row bands are disjoint writes into g.Counts (spec.md §5). Moore pads
	// its region by yrange rows on each side, so each band hands it a
	// region shrunk by yrange to keep its writes inside [y0, y1].
	_ = parallelRowBands(r.BottomY-yrange, r.TopY+yrange, func(y0, y1 int) error {
		band := neighborhood.Region{LeftX: r.LeftX, BottomY: y0 + yrange, RightX: r.RightX, TopY: y1 - yrange}
		neighborhood.Moore(g, g.Counts, band, xrange, yrange, alive)
		return nil
	})
}

func queryMooreCounts(g *grid.Grid, r transition.Region) {
	// Counts already holds raw per-cell neighbour sums from buildMooreCumulative
	// (a direct rectangle sum, not yet a cumulative table); the transition
	// applier reads it directly. A cumulative-table build is only needed
	// when the driver additionally wants O(1) arbitrary-subwindow queries
	// (see cumsum.BuildMoore / cumsum.Query) — exposed separately below
	// for drivers doing repeated windowed reads over the same generation.
	_ = r
}

// BuildMooreCumulativeTable exposes component C's O(1)-subwindow
// cumulative-sum build directly, for drivers that need repeated windowed
// counts (rather than the single full-rectangle sum StepHROTMoore*
// computes internally).
func BuildMooreCumulativeTable(g *grid.Grid, leftX, bottomY, rightX, topY int, alive func(byte) bool) {
	cumsum.BuildMoore(g.Counts, g.Colour, g.Width, leftX, bottomY, rightX, topY, alive)
}

// StepHROTVonNeumann2State runs the diamond-neighbourhood HROT pipeline:
// build the cumulative band via component C, then extract each cell's
// window sum through the pure Descriptor reader before applying the
// transition (spec.md §4.C, §9 "diamond descriptor" re-architecture).
func StepHROTVonNeumann2State(g *grid.Grid, r transition.Region, xrange, yrange int, comboList []byte, tp transition.Params2State, aliveStart byte, shared []int32) {
	d := buildVonNeumann(g, r, xrange, yrange, func(c byte) bool { return c >= aliveStart })
	extractVonNeumannCounts(g, r, xrange, yrange, d)
	transition.Apply2State(g, g.Counts, comboList, r, tp)
	WriteSharedHROT(g, shared)
}

// StepHROTVonNeumannNState is the N-state counterpart.
func StepHROTVonNeumannNState(g *grid.Grid, r transition.Region, xrange, yrange int, comboList []byte, tp transition.ParamsNState, maxGenState byte, shared []int32) {
	d := buildVonNeumann(g, r, xrange, yrange, func(c byte) bool { return c == maxGenState })
	extractVonNeumannCounts(g, r, xrange, yrange, d)
	transition.ApplyNState(g, g.Counts, comboList, r, tp)
	WriteSharedHROT(g, shared)
}

func buildVonNeumann(g *grid.Grid, r transition.Region, xrange, yrange int, alive func(byte) bool) cumsum.Descriptor {
	ccht := yrange + 1
	halfccwd := xrange
	d := cumsum.Descriptor{
		Counts:      g.Counts,
		CountsWidth: g.Width,
		NCols:       r.RightX - r.LeftX + 1,
		CCHT:        ccht,
		HalfCCWidth: halfccwd,
	}
	cumsum.BuildVonNeumannCumulative(d, g.Colour, g.Width, r.BottomY, r.LeftX, r.TopY-r.BottomY+1, alive)
	return d
}

func extractVonNeumannCounts(g *grid.Grid, r transition.Region, xrange, yrange int, d cumsum.Descriptor) {
	for y := r.BottomY; y <= r.TopY; y++ {
		for x := r.LeftX; x <= r.RightX; x++ {
			g.Counts[y*g.Width+x] = cumsum.WindowSum(y-r.BottomY, x-r.LeftX, xrange, yrange, d)
		}
	}
}

// StepHROTShaped2State runs a named-shape HROT pipeline (spec.md §4.B: every
// non-Moore/von-Neumann shape counts directly rather than through a
// cumulative table), for a two-state rule.
func StepHROTShaped2State(g *grid.Grid, r transition.Region, count func(g *grid.Grid, counts []int32, r neighborhood.Region, ind neighborhood.Indicator), comboList []byte, tp transition.Params2State, aliveStart byte, shared []int32) {
	nr := neighborhood.Region{LeftX: r.LeftX, BottomY: r.BottomY, RightX: r.RightX, TopY: r.TopY}
	count(g, g.Counts, nr, func(c byte) bool { return c >= aliveStart })
	transition.Apply2State(g, g.Counts, comboList, r, tp)
	WriteSharedHROT(g, shared)
}

// StepHROTShapedNState is the N-state counterpart.
func StepHROTShapedNState(g *grid.Grid, r transition.Region, count func(g *grid.Grid, counts []int32, r neighborhood.Region, ind neighborhood.Indicator), comboList []byte, tp transition.ParamsNState, maxGenState byte, shared []int32) {
	nr := neighborhood.Region{LeftX: r.LeftX, BottomY: r.BottomY, RightX: r.RightX, TopY: r.TopY}
	count(g, g.Counts, nr, func(c byte) bool { return c == maxGenState })
	transition.ApplyNState(g, g.Counts, comboList, r, tp)
	WriteSharedHROT(g, shared)
}

// parallelRowBands splits [from, to] into up to runtime.GOMAXPROCS(0)
// disjoint row bands and runs fn over each concurrently, propagating the
// first error (if fn ever returns one; today's fn implementations never
// do, but the signature keeps this usable for future fallible kernels).
// Adapted from the teacher's updateRange divide-and-conquer recursion
// (game/game.go) into a flat errgroup fan-out — disjoint row bands need
// no border gap here because, unlike the teacher's in-place neighbour-
// count buffer, component B's kernels only ever write their own row of
// g.Counts.
func parallelRowBands(from, to int, fn func(y0, y1 int) error) error {
	n := runtime.GOMAXPROCS(0)
	rows := to - from + 1
	if n < 1 || rows < 2*n {
		return fn(from, to)
	}

	band := rows / n
	g, _ := errgroup.WithContext(context.Background())
	y := from
	for i := 0; i < n; i++ {
		y0 := y
		y1 := y0 + band - 1
		if i == n-1 {
			y1 = to
		}
		g.Go(func() error { return fn(y0, y1) })
		y = y1 + 1
	}
	return g.Wait()
}
