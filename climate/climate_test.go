// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package climate

import (
	"testing"

	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/noise"
	"github.com/voxellayer/biomegen/rng"
	"github.com/voxellayer/biomegen/spline"
	"github.com/voxellayer/biomegen/tree"
)

func newTestSampler(seed int64) *Sampler {
	r := rng.NewLCG(seed)
	pool, root := spline.BuildOverworldSpline()
	return &Sampler{
		Shift:           noise.InitLegacyDoublePerlin(&r, -3, 4),
		Temperature:     noise.InitLegacyDoublePerlin(&r, -10, 2),
		Humidity:        noise.InitLegacyDoublePerlin(&r, -8, 2),
		Continentalness: noise.InitLegacyDoublePerlin(&r, -9, 2),
		Erosion:         noise.InitLegacyDoublePerlin(&r, -9, 2),
		Weirdness:       noise.InitLegacyDoublePerlin(&r, -7, 2),
		Spline:          pool,
		SplineRoot:      root,
	}
}

func TestSampleDeterministic(t *testing.T) {
	a := newTestSampler(12345).Sample(0, 63, 0, 0)
	b := newTestSampler(12345).Sample(0, 63, 0, 0)
	if a != b {
		t.Fatalf("Sample is not deterministic: %v != %v", a, b)
	}
}

func TestNoShiftFlagChangesOutput(t *testing.T) {
	s := newTestSampler(999)
	withShift := s.Sample(137, 63, -211, 0)
	withoutShift := s.Sample(137, 63, -211, NoShift)
	if withShift == withoutShift {
		t.Fatal("expected NoShift to change the sampled climate vector for a nonzero shift field")
	}
}

func TestNoDepthZeroesDepthComponent(t *testing.T) {
	s := newTestSampler(5)
	v := s.Sample(10, 80, 10, NoDepth)
	if v[4] != 0 {
		t.Fatalf("expected depth component to be 0 with NoDepth set, got %d", v[4])
	}
}

func TestLookupHonorsNoBiome(t *testing.T) {
	s := newTestSampler(1)
	bt := tree.BuildPlaceholderOverworldTable()
	_, id := s.Lookup(bt, 0, 64, 0, NoBiome, -1)
	if id != biome.None {
		t.Fatalf("expected None with NoBiome set, got %v", id)
	}
}

func TestLookupReturnsExistingBiome(t *testing.T) {
	s := newTestSampler(42)
	bt := tree.BuildPlaceholderOverworldTable()
	_, id := s.Lookup(bt, 100, 64, -100, 0, -1)
	if id == biome.None {
		t.Fatal("expected a real biome id from a fresh lookup")
	}
}

func TestLargeBiomesQuartersHorizontalResolution(t *testing.T) {
	large := newTestSampler(7)
	large.LargeBiomes = true

	// Four adjacent columns should collapse onto the same quartered
	// column under LargeBiomes, reproducing identical output.
	base := large.Sample(40, 64, 80, NoShift)
	for dx := int64(0); dx < 4; dx++ {
		for dz := int64(0); dz < 4; dz++ {
			v := large.Sample(40+dx, 64, 80+dz, NoShift)
			if v != base {
				t.Fatalf("LargeBiomes should collapse a 4x4 block to one sample: (%d,%d) = %v, want %v", dx, dz, v, base)
			}
		}
	}
}
