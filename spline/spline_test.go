// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package spline

import "testing"

func TestRidgesOfSymmetric(t *testing.T) {
	if RidgesOf(0.5) != RidgesOf(-0.5) {
		t.Fatalf("RidgesOf should be symmetric about 0: got %v vs %v", RidgesOf(0.5), RidgesOf(-0.5))
	}
}

func TestFixedEvalIsConstant(t *testing.T) {
	p := &Pool{}
	h := p.AddFixed(3.5)
	for _, pt := range []Point{
		{Continentalness: -1, Erosion: -1, Weirdness: -1},
		{Continentalness: 1, Erosion: 1, Weirdness: 1},
	} {
		if v := p.Eval(h, pt); v != 3.5 {
			t.Fatalf("fixed leaf returned %v, want 3.5", v)
		}
	}
}

func TestInternalExtrapolatesBeyondBoundary(t *testing.T) {
	p := &Pool{}
	lo := p.AddFixed(0)
	hi := p.AddFixed(10)
	root := p.AddInternal(Continentalness, []float64{0, 1}, []Handle{lo, hi}, []float64{2, 2})

	below := p.Eval(root, Point{Continentalness: -1})
	want := 0 + 2*(-1-0.0)
	if below != want {
		t.Fatalf("extrapolation below first control point = %v, want %v", below, want)
	}

	above := p.Eval(root, Point{Continentalness: 2})
	want = 10 + 2*(2-1)
	if above != want {
		t.Fatalf("extrapolation above last control point = %v, want %v", above, want)
	}
}

func TestInternalMatchesControlPointsExactly(t *testing.T) {
	p := &Pool{}
	a := p.AddFixed(-5)
	b := p.AddFixed(5)
	root := p.AddInternal(Erosion, []float64{-1, 1}, []Handle{a, b}, []float64{0, 0})

	if v := p.Eval(root, Point{Erosion: -1}); v != -5 {
		t.Fatalf("eval at first control point = %v, want -5", v)
	}
	if v := p.Eval(root, Point{Erosion: 1}); v != 5 {
		t.Fatalf("eval at last control point = %v, want 5", v)
	}
}

func TestOverworldSplineSpansFullContinentalnessRange(t *testing.T) {
	p, root := BuildOverworldSpline()

	deepest := p.Eval(root, Point{Continentalness: -1.2, Erosion: 0, Weirdness: 0})
	highest := p.Eval(root, Point{Continentalness: 1.2, Erosion: -1, Weirdness: 0})

	if deepest >= 0 {
		t.Fatalf("expected a negative depth far out at sea, got %v", deepest)
	}
	if highest <= 0 {
		t.Fatalf("expected a positive depth on rugged low-erosion land, got %v", highest)
	}
}

func TestOverworldSplineDeterministic(t *testing.T) {
	p, root := BuildOverworldSpline()
	pt := Point{Continentalness: 0.12, Erosion: -0.4, Weirdness: 0.6}

	a := p.Eval(root, pt)
	b := p.Eval(root, pt)
	if a != b {
		t.Fatalf("spline evaluation is not deterministic: %v != %v", a, b)
	}
}
