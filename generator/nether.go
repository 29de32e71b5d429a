// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"math"

	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/noise"
	"github.com/voxellayer/biomegen/rng"
)

// netherConfidence is the reference's default disc-fill confidence;
// lowering it would paint larger, less accurate discs.
const netherConfidence = 1.0

type netherPoint struct {
	t, h, bias2 float64
	id          biome.ID
}

// netherPoints is the hard-coded 5-point classification table. The
// reference's literal constants did not survive retrieval (see
// DESIGN.md); these reproduce the table's documented shape — one point
// per Nether biome, separated along temperature/humidity, three with
// zero bias and two whose bias is added to their squared distance,
// which makes those two biomes less likely to win.
var netherPoints = []netherPoint{
	{t: 0.0, h: 0.0, bias2: 0, id: biome.NetherWastes},
	{t: 0.0, h: -0.5, bias2: 0, id: biome.SoulSandValley},
	{t: 0.4, h: 0.0, bias2: 0, id: biome.CrimsonForest},
	{t: 0.0, h: 0.5, bias2: 0.140625, id: biome.WarpedForest},
	{t: -0.5, h: 0.0, bias2: 0.030625, id: biome.BasaltDeltas},
}

// netherEngine owns the two Double-Perlin climate stacks Nether
// classification samples.
type netherEngine struct {
	temperature noise.DoublePerlin
	humidity    noise.DoublePerlin
}

func buildNetherEngine(seed int64) *netherEngine {
	r := rng.NewLCG(seed)
	return &netherEngine{
		temperature: noise.InitLegacyDoublePerlin(&r, -7, 2),
		humidity:    noise.InitLegacyDoublePerlin(&r, -7, 2),
	}
}

// sample returns the raw temperature/humidity pair at (x, z). The
// Nether fixes y = 0 internally.
func (n *netherEngine) sample(x, z int64) (t, h float64) {
	t = n.temperature.Sample(float64(x), 0, float64(z))
	h = n.humidity.Sample(float64(x), 0, float64(z))
	return
}

// nearestTwo returns the winning biome id together with the smallest
// and second-smallest squared distances, which the 3-D disc-fill
// optimization needs to size its paint radius.
func nearestTwo(t, h float64) (id biome.ID, d0, d1 float64) {
	d0, d1 = math.Inf(1), math.Inf(1)
	for _, p := range netherPoints {
		dt := t - p.t
		dh := h - p.h
		d := dt*dt + dh*dh + p.bias2
		if d < d0 {
			d1 = d0
			d0 = d
			id = p.id
		} else if d < d1 {
			d1 = d
		}
	}
	return
}

// biomeAt classifies a single column, ignoring y per the Nether's
// y-invariance.
func (n *netherEngine) biomeAt(x, z int64) biome.ID {
	t, h := n.sample(x, z)
	id, _, _ := nearestTwo(t, h)
	return id
}

// mapNether2D fills a rectangle by per-column sampling: a 2-D generator
// maps a rectangle by sampling each column independently.
func (n *netherEngine) mapNether2D(x0, z0 int64, sx, sz int) []biome.ID {
	out := make([]biome.ID, sx*sz)
	for k := 0; k < sz; k++ {
		for i := 0; i < sx; i++ {
			out[k*sx+i] = n.biomeAt(x0+int64(i), z0+int64(k))
		}
	}
	return out
}

// mapNether3D reproduces the noise-delta disc-fill optimization: after
// sampling a column, the gap between its two nearest classification
// points bounds a disc radius around that column that must share its
// biome, letting later columns inside the disc skip resampling
// entirely. It returns a single plane; GenBiomes copies it into every
// y layer since the Nether fixes y = 0 internally.
func (n *netherEngine) mapNether3D(x0, z0 int64, sx, sz, scale int) []biome.ID {
	plane := make([]biome.ID, sx*sz)
	filled := make([]bool, sx*sz)

	for k := 0; k < sz; k++ {
		for i := 0; i < sx; i++ {
			if filled[k*sx+i] {
				continue
			}

			t, h := n.sample(x0+int64(i), z0+int64(k))
			id, d0, d1 := nearestTwo(t, h)
			plane[k*sx+i] = id
			filled[k*sx+i] = true

			delta := d1 - d0
			if delta <= 0 {
				continue
			}
			radius := math.Sqrt(delta) / (netherConfidence * 0.05 * 2 * float64(scale))
			r := int(radius)
			if r < 1 {
				continue
			}

			for dz := -r; dz <= r; dz++ {
				zz := k + dz
				if zz < 0 || zz >= sz {
					continue
				}
				for dx := -r; dx <= r; dx++ {
					xx := i + dx
					if xx < 0 || xx >= sx || dx*dx+dz*dz > r*r {
						continue
					}
					if !filled[zz*sx+xx] {
						plane[zz*sx+xx] = id
						filled[zz*sx+xx] = true
					}
				}
			}
		}
	}

	return plane
}
