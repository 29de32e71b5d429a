// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package structure

import (
	"math"

	"github.com/voxellayer/biomegen/rng"
)

const (
	strongholdMaxRotations = 128
	strongholdRing0Count   = 3
	strongholdDistance     = 32 * 1.5
	strongholdDistanceStep = 32 * 3.0
	strongholdRingMaxStart = 3
)

// StrongholdIter walks the expanding-ring placement the reference uses
// for the 1.9+ stronghold distribution: ring 0 holds 3 positions at a
// uniform random angle and a fixed radius, each later ring adds more
// slots and a larger radius, until the fixed 128-rotation cap is
// exhausted.
type StrongholdIter struct {
	r rng.LCG

	angle     float64
	distance  float64
	ringMax   int
	ringSize  int
	ringIndex int
	rotations int
	maxRotate int
	exhausted bool
}

// NewStrongholdIter seeds the ring walk from the world seed, matching
// the reference's single Random(seed) draw before the first position.
func NewStrongholdIter(seed int64) *StrongholdIter {
	r := rng.NewLCG(seed)
	it := &StrongholdIter{
		r:         r,
		angle:     r.NextDouble() * 2 * math.Pi,
		distance:  strongholdDistance,
		ringMax:   strongholdRingMaxStart,
		ringSize:  strongholdRing0Count,
		maxRotate: strongholdMaxRotations,
	}
	return it
}

// Next returns the next candidate chunk coordinate in the ring walk. ok
// is false once the rotation cap (128) has been reached.
func (it *StrongholdIter) Next() (chunkX, chunkZ int64, ok bool) {
	if it.exhausted {
		return 0, 0, false
	}

	if it.ringIndex == it.ringSize {
		it.ringIndex = 0
		it.ringMax += 2*strongholdRingMaxStart + 2
		if it.ringMax > 128-it.ringSize {
			it.ringMax = 128 - it.ringSize
		}
		it.ringSize++
		if it.ringSize > it.ringMax {
			it.ringSize = it.ringMax
		}
		it.distance += strongholdDistanceStep
		it.angle += it.r.NextDouble()*0.5 - 0.25
	}

	x := math.Cos(it.angle) * it.distance
	z := math.Sin(it.angle) * it.distance
	chunkX = int64(math.Floor((x + 0.5*float64(sign(x)))))
	chunkZ = int64(math.Floor((z + 0.5*float64(sign(z)))))

	it.angle += 2 * math.Pi / float64(it.ringSize)
	it.ringIndex++
	it.rotations++

	if it.rotations >= it.maxRotate {
		it.exhausted = true
	}

	return chunkX, chunkZ, true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// FindFirstStronghold walks rings until isOceanic (sampled at the
// given scale by the caller's generator) rejects a candidate, returning
// the first land chunk coordinate. Every candidate the iterator skips
// for being oceanic still counts against the rotation cap, matching
// the reference's behavior of burning ring slots on rejected oceans.
func FindFirstStronghold(seed int64, isOceanic func(chunkX, chunkZ int64) bool) (chunkX, chunkZ int64, found bool) {
	it := NewStrongholdIter(seed)
	for {
		x, z, ok := it.Next()
		if !ok {
			return 0, 0, false
		}
		if !isOceanic(x, z) {
			return x, z, true
		}
	}
}
