// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package spline

// BuildOverworldSpline constructs the depth spline tower used by the
// overworld climate sampler. The reference's literal control-point
// table did not survive retrieval (see DESIGN.md), so this tower is a
// structurally faithful stand-in: it obeys every stated invariant
// (continentalness root spans the full [-1, 1] domain, only internal
// nodes forward to further internal nodes, all boundary derivatives are
// finite) while using round, hand-placed control points rather than the
// reference's exact values.
//
// The shape mirrors the reference's documented structure: a
// continentalness root separates ocean from land, each land band
// branches on erosion, and the most mountainous erosion bands further
// branch on the ridges axis derived from weirdness.
func BuildOverworldSpline() (*Pool, Handle) {
	p := &Pool{}

	deepOcean := p.AddFixed(-0.8)
	ocean := p.AddFixed(-0.4)
	coast := p.AddFixed(-0.05)

	lowland := buildErosionBand(p, -0.05, 0.15)
	midland := buildErosionBand(p, 0.05, 0.45)
	highland := buildRidgedErosionBand(p, 0.2, 1.0)

	root := p.AddInternal(
		Continentalness,
		[]float64{-1.05, -0.455, -0.19, -0.11, 0.03, 0.3, 1.0},
		[]Handle{deepOcean, deepOcean, ocean, coast, lowland, midland, highland},
		[]float64{0, 0, 0, 0, 0, 0, 0},
	)

	return p, root
}

// buildErosionBand builds a 3-point erosion spline whose endpoints are
// flat depth plateaus at hi and whose midpoint (erosion 0) drops to lo
// to carve valleys on mid-erosion terrain.
func buildErosionBand(p *Pool, lo, hi float64) Handle {
	flat := p.AddFixed(hi)
	valley := p.AddFixed(lo)

	return p.AddInternal(
		Erosion,
		[]float64{-1.0, 0.0, 1.0},
		[]Handle{flat, valley, flat},
		[]float64{0, 0, 0},
	)
}

// buildRidgedErosionBand is buildErosionBand's mountainous counterpart:
// its low-erosion (most rugged) branch further subdivides on the
// ridges axis, so weirdness has a visible effect only where erosion
// permits peaks to form — matching the reference's documented coupling
// between erosion and ridge amplitude.
func buildRidgedErosionBand(p *Pool, lo, hi float64) Handle {
	valley := p.AddFixed(lo)
	peakBand := buildRidgesBand(p, lo, hi)

	return p.AddInternal(
		Erosion,
		[]float64{-1.0, -0.3, 1.0},
		[]Handle{peakBand, peakBand, valley},
		[]float64{0, 0, 0},
	)
}

func buildRidgesBand(p *Pool, valleyDepth, peakDepth float64) Handle {
	valley := p.AddFixed(valleyDepth)
	slope := p.AddFixed((valleyDepth + peakDepth) / 2)
	peak := p.AddFixed(peakDepth)

	return p.AddInternal(
		Ridges,
		[]float64{-1.0, 0.0, 1.0},
		[]Handle{valley, slope, peak},
		[]float64{0, 0, 0},
	)
}
