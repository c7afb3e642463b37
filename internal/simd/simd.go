// Package simd is the engine's one knob for spec.md §9's "16-lane byte
// SIMD" abstraction: splat, load/store, saturating add/sub, compare,
// swizzle, bitmask. Go has no portable intrinsic for most of that, so this
// package picks between a github.com/ajroetker/go-highway/hwy-backed
// vector path (where the lane width and op actually map onto the hot
// loop's arithmetic — the Moore cumulative-sum fast path's "add a scalar
// to 16 lanes at once") and a scalar fallback. Per spec.md §9: "An
// implementation that scalarises everything MUST pass the same tests" —
// the scalar path is not a degraded mode, it is a first-class one.
package simd

import (
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-highway/hwy"
)

// Lanes is the lane width the cumulative-sum fast path operates on: one
// bit-plane word's worth of cells.
const Lanes = 16

// HasVectorInt32 reports whether the running CPU exposes a wide-enough
// integer SIMD unit to make the hwy-backed int32 path worthwhile. When
// false, callers should use the scalar fallback; the two paths are
// required to produce bit-identical results.
func HasVectorInt32() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}

// AddBroadcastInt32 adds the scalar delta to every one of the 16 int32
// lanes in dst, in place. This is the Moore cumulative-sum builder's
// fast path (spec.md §4.C): "vector-add the scalar running count to 16
// previous cumulative values at once."
func AddBroadcastInt32(dst []int32, delta int32) {
	if len(dst) != Lanes {
		addBroadcastInt32Scalar(dst, delta)
		return
	}
	if !HasVectorInt32() {
		addBroadcastInt32Scalar(dst, delta)
		return
	}
	v := hwy.Load(dst)
	v = hwy.Add(v, hwy.Set(delta))
	hwy.Store(v, dst)
}

func addBroadcastInt32Scalar(dst []int32, delta int32) {
	for i := range dst {
		dst[i] += delta
	}
}

// PopcountRow16 counts the set bits (live cells) across one bit-plane
// word. No other package in this module calls it.
func PopcountRow16(word uint16) int {
	return onesCount16(word)
}

func onesCount16(w uint16) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}
	return n
}
