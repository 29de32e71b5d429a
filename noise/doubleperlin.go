// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "github.com/voxellayer/biomegen/rng"

// doublePerlinFactor is the axis scale applied to the second octave
// stack's input coordinates. It is a long-standing reference magic
// constant, not a tunable.
const doublePerlinFactor = 1.0181268882175227

// DoublePerlin sums two independently-offset Octave stacks, which
// removes the periodic artifacts a single octave chain shows at its
// largest lacunarity.
type DoublePerlin struct {
	A, B               Octave
	CombiningAmplitude float64
}

// NewDoublePerlin combines two already-initialized octave stacks (which
// must have the same active layer count) using the reference's
// (5/3)*N/(N+1) combining amplitude.
func NewDoublePerlin(a, b Octave) DoublePerlin {
	n := a.Len()
	amp := (5.0 / 3.0) * float64(n) / float64(n+1)
	return DoublePerlin{A: a, B: b, CombiningAmplitude: amp}
}

// InitLegacyDoublePerlin seeds both octave stacks from the legacy LCG,
// draining it sequentially (stack A, then stack B).
func InitLegacyDoublePerlin(r *rng.LCG, omin, length int) DoublePerlin {
	a := InitLegacy(r, omin, length)
	b := InitLegacy(r, omin, length)
	return NewDoublePerlin(a, b)
}

// InitXoroshiroDoublePerlin seeds both octave stacks from the
// xoroshiro128++ stream.
func InitXoroshiroDoublePerlin(r *rng.Xoroshiro, amplitudes []float64, omin, length, nmax int) DoublePerlin {
	a := InitXoroshiro(r, amplitudes, omin, length, nmax)
	b := InitXoroshiro(r, amplitudes, omin, length, nmax)
	return NewDoublePerlin(a, b)
}

// Sample evaluates the combined field at (x, y, z).
func (d DoublePerlin) Sample(x, y, z float64) float64 {
	return d.CombiningAmplitude * (d.A.Sample(x, y, z) +
		d.B.Sample(x*doublePerlinFactor, y*doublePerlinFactor, z*doublePerlinFactor))
}
