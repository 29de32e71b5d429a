// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math"

	"github.com/voxellayer/biomegen/rng"
)

// Octave is a fixed-amplitude-and-lacunarity chain of Perlin layers.
// Layers are owned outright — no sharing with other stacks — matching
// the reference's "contiguous run, no storage shared across stacks"
// layout.
type Octave struct {
	Layers []Perlin
}

// InitLegacy seeds len Perlin layers from the legacy LCG with amplitude
// 1 and lacunarity 2^(omin+k) for layer k, draining the stream
// sequentially — the same draw order the reference produces when
// stepping through octaveInit without an amplitude table.
func InitLegacy(r *rng.LCG, omin, length int) Octave {
	o := Octave{Layers: make([]Perlin, length)}
	for k := 0; k < length; k++ {
		p := SeedLegacy(r)
		p.Amplitude = 1
		p.Lacunarity = math.Exp2(float64(omin + k))
		o.Layers[k] = p
	}
	return o
}

// InitXoroshiro seeds the non-zero-amplitude entries of amplitudes into
// up to nmax Perlin layers (negative nmax means no cap), each seeded
// from an independently-derived child stream of r: a per-octave
// Xoroshiro forked by mixing the parent state with two magic constants
// dependent on the octave index. The per-octave mix constants are
// generated deterministically from the octave index by
// octaveMixConstants, since the reference's literal magic-constant table did not survive
// retrieval (see DESIGN.md).
func InitXoroshiro(r *rng.Xoroshiro, amplitudes []float64, omin, length, nmax int) Octave {
	layers := make([]Perlin, 0, length)

	for k := 0; k < length; k++ {
		if amplitudes[k] == 0 {
			continue
		}
		if nmax >= 0 && len(layers) >= nmax {
			break
		}

		childLo, childHi := octaveMixConstants(k)
		child := r.Fork(childLo, childHi)

		p := SeedXoroshiro(&child)
		p.Amplitude = amplitudes[k]
		p.Lacunarity = math.Exp2(float64(omin + k))
		layers = append(layers, p)
	}

	return Octave{Layers: layers}
}

// octaveMixConstants derives the per-octave fork key deterministically
// from the octave index (multiplying index+1 by two SplitMix64
// constants and folding in a shift; SplitMix64 itself is not run) so
// InitXoroshiro is reproducible without a literal reference table.
func octaveMixConstants(index int) (lo, hi uint64) {
	const a, b = 0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9
	n := uint64(index + 1)
	lo = (n * a) ^ (n << 1)
	hi = (n * b) ^ (n >> 1)
	return
}

// Sample sums amplitude-weighted samples of every layer at (x, y, z)
// scaled by each layer's lacunarity.
func (o Octave) Sample(x, y, z float64) float64 {
	return o.SampleAmp(x, y, z, 0, 0)
}

// SampleAmp is Sample with the Y-amplitude clamp
// threaded through to every layer.
func (o Octave) SampleAmp(x, y, z, yAmp, yMin float64) float64 {
	var sum float64
	for i := range o.Layers {
		l := &o.Layers[i]
		sum += l.Amplitude * l.Sample(x*l.Lacunarity, y*l.Lacunarity, z*l.Lacunarity, yAmp, yMin)
	}
	return sum
}

// Len reports the number of active layers.
func (o Octave) Len() int {
	return len(o.Layers)
}
