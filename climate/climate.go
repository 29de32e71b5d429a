// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package climate turns a block coordinate into the six-element
// climate vector the biome tree (package tree) classifies.
package climate

import (
	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/noise"
	"github.com/voxellayer/biomegen/spline"
	"github.com/voxellayer/biomegen/tree"
)

// Flags gate individual sampling stages, mirroring the reference's
// NO_SHIFT / NO_DEPTH / NO_BIOME bits — a caller that only needs the
// raw climate vector for, say, a heightmap preview skips the tree
// lookup entirely.
type Flags uint8

const (
	NoShift Flags = 1 << iota
	NoDepth
	NoBiome
)

// Sampler owns the six Double-Perlin stacks and the depth spline a
// climate query needs. It is built once per (version, seed) and is
// safe to call concurrently afterward — nothing here is mutated post
// construction.
type Sampler struct {
	Shift           noise.DoublePerlin
	Temperature     noise.DoublePerlin
	Humidity        noise.DoublePerlin
	Continentalness noise.DoublePerlin
	Erosion         noise.DoublePerlin
	Weirdness       noise.DoublePerlin

	Spline     *spline.Pool
	SplineRoot spline.Handle

	// LargeBiomes approximates the "Large Biomes" world type by
	// quartering the horizontal sampling resolution before every other
	// step runs. The reference tabulates a distinct set of magic
	// constants for this variant that did not survive retrieval; this
	// coordinate-scale approximation reproduces the
	// player-visible effect (biomes four times as wide) without the
	// exact per-parameter constant table.
	LargeBiomes bool
}

// Sample computes the six-axis climate vector at block coordinate
// (x, y, z), each component scaled by 1e4 and truncated toward zero
// (never rounded — "Float semantics").
func (s *Sampler) Sample(x, y, z int64, flags Flags) [6]int64 {
	if s.LargeBiomes {
		x /= 4
		z /= 4
	}

	px, pz := float64(x), float64(z)
	if flags&NoShift == 0 {
		// The z/x argument order on the second call is not a typo: the
		// reference swaps axes here and this implementation preserves
		// that quirk verbatim.
		px = float64(x) + 4*s.Shift.Sample(float64(x), 0, float64(z))
		pz = float64(z) + 4*s.Shift.Sample(float64(z), float64(x), 0)
	}

	c := s.Continentalness.Sample(px, 0, pz)
	e := s.Erosion.Sample(px, 0, pz)
	w := s.Weirdness.Sample(px, 0, pz)

	var d float64
	if flags&NoDepth == 0 {
		pt := spline.Point{Continentalness: c, Erosion: e, Weirdness: w}
		off := s.Spline.Eval(s.SplineRoot, pt)
		d = 1 - (float64(y)*4)/128 - 83.0/160 + off + 0.015
	}

	t := s.Temperature.Sample(px, 0, pz)
	h := s.Humidity.Sample(px, 0, pz)

	return [6]int64{
		scaleTrunc(t),
		scaleTrunc(h),
		scaleTrunc(c),
		scaleTrunc(e),
		scaleTrunc(d),
		scaleTrunc(w),
	}
}

// scaleTrunc casts double-to-integer the way the reference does:
// (int64)(10000*f), truncating toward zero.
func scaleTrunc(f float64) int64 {
	return int64(f * 1e4)
}

// Lookup runs Sample and, unless NoBiome is set, classifies the result
// against t. alt seeds the search with a prior leaf for intra-chunk
// coherence (see tree.BiomeTree.Lookup); pass -1 for a fresh search.
func (s *Sampler) Lookup(t *tree.BiomeTree, x, y, z int64, flags Flags, alt int) (leafIndex int, id biome.ID) {
	v := s.Sample(x, y, z, flags)
	if flags&NoBiome != 0 {
		return -1, biome.None
	}
	return t.Lookup(v, alt)
}
