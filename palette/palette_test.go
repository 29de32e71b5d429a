// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import (
	"testing"

	"github.com/voxellayer/biomegen/biome"
)

func TestColorOfKnownBiomeIsStable(t *testing.T) {
	a := ColorOf(biome.Plains)
	b := ColorOf(biome.Plains)
	if a != b {
		t.Fatalf("ColorOf is not deterministic: %v != %v", a, b)
	}
}

func TestColorOfUnknownIDFallsBack(t *testing.T) {
	c := ColorOf(biome.None)
	if c != fallback {
		t.Fatalf("ColorOf(None) = %v, want fallback %v", c, fallback)
	}
}

func TestLerpAtZeroAndOneReturnsEndpoints(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(255, 255, 255)
	if lo := a.Lerp(b, 0); lo != a {
		t.Fatalf("Lerp(0) = %v, want %v", lo, a)
	}
	if hi := a.Lerp(b, 1); hi != b {
		t.Fatalf("Lerp(1) = %v, want %v", hi, b)
	}
}

func TestLerpClampsFactor(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(100, 100, 100)
	over := a.Lerp(b, 5)
	if over != b {
		t.Fatalf("Lerp(5) should clamp to the far endpoint, got %v", over)
	}
}

func TestRenderProducesOneColorPerCell(t *testing.T) {
	grid := []biome.ID{biome.Ocean, biome.Plains, biome.Desert, biome.Forest}
	img := Render(grid, 2, 2)
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("image size = %dx%d, want 2x2", bounds.Dx(), bounds.Dy())
	}
	if img.At(0, 0) != ColorOf(biome.Ocean).Color() {
		t.Fatalf("pixel (0,0) does not match the ocean color")
	}
	if img.At(1, 1) != ColorOf(biome.Forest).Color() {
		t.Fatalf("pixel (1,1) does not match the forest color")
	}
}
