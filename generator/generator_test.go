// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"
	"testing"

	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/version"
)

func mustSetup(t *testing.T, mc version.MCVersion) *Generator {
	t.Helper()
	g, err := SetupGenerator(mc, 0)
	if err != nil {
		t.Fatalf("SetupGenerator failed: %v", err)
	}
	return g
}

func TestSetupGeneratorRejectsInvalidVersion(t *testing.T) {
	if _, err := SetupGenerator(version.Undefined, 0); err == nil {
		t.Fatal("expected an error for an undefined version")
	}
}

func TestGetBiomeAtRejectsInvalidScale(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Overworld, 12345); err != nil {
		t.Fatalf("ApplySeed failed: %v", err)
	}
	if _, err := g.GetBiomeAt(3, 0, 64, 0); err == nil {
		t.Fatal("expected InvalidScale error for scale=3")
	}
}

func TestOverworldGetBiomeAtDeterministic(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Overworld, 12345); err != nil {
		t.Fatalf("ApplySeed failed: %v", err)
	}

	a, err := g.GetBiomeAt(1, 0, 63, 0)
	if err != nil {
		t.Fatalf("GetBiomeAt failed: %v", err)
	}
	b, err := g.GetBiomeAt(1, 0, 63, 0)
	if err != nil {
		t.Fatalf("GetBiomeAt failed: %v", err)
	}
	if a != b {
		t.Fatalf("GetBiomeAt is not deterministic: %v != %v", a, b)
	}
}

func TestApplySeedIsIdempotentAcrossDimensionSwitch(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Overworld, 999); err != nil {
		t.Fatal(err)
	}
	a, _ := g.GetBiomeAt(4, 10, 64, 10)

	if err := g.ApplySeed(version.Nether, 999); err != nil {
		t.Fatal(err)
	}
	if err := g.ApplySeed(version.Overworld, 999); err != nil {
		t.Fatal(err)
	}
	b, _ := g.GetBiomeAt(4, 10, 64, 10)

	if a != b {
		t.Fatalf("re-applying the same (dim, seed) changed output: %v != %v", a, b)
	}
}

func TestEndCentralIslandIsAlwaysTheEnd(t *testing.T) {
	for _, seed := range []int64{0, 1, -12345, 999999} {
		g := mustSetup(t, version.Newest)
		if err := g.ApplySeed(version.End, seed); err != nil {
			t.Fatal(err)
		}
		id, err := g.GetBiomeAt(4, 0, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if id != biome.TheEnd {
			t.Fatalf("seed %d: expected the_end at the origin, got %v", seed, id)
		}
	}
}

func TestNetherSamplesAreInvariantUnderY(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Nether, 12345); err != nil {
		t.Fatal(err)
	}

	a, _ := g.GetBiomeAt(4, 37, 10, -52)
	b, _ := g.GetBiomeAt(4, 37, 200, -52)
	if a != b {
		t.Fatalf("Nether biome should not depend on y: %v != %v", a, b)
	}
}

func TestGetMinCacheSizeIncludesSourceOverheadOnlyAtScaleOne(t *testing.T) {
	atScale1, err := GetMinCacheSize(1, 16, 1, 16)
	if err != nil {
		t.Fatal(err)
	}
	atScale4, err := GetMinCacheSize(4, 16, 1, 16)
	if err != nil {
		t.Fatal(err)
	}
	if atScale1 <= atScale4 {
		t.Fatalf("scale-1 cache size (%d) should exceed scale-4 (%d) by the source overhead", atScale1, atScale4)
	}
	if atScale4 != 16*1*16 {
		t.Fatalf("scale-4 cache size = %d, want %d", atScale4, 16*1*16)
	}
}

func TestGenBiomesRejectsUndersizedBuffer(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Overworld, 1); err != nil {
		t.Fatal(err)
	}
	out := make([]biome.ID, 1)
	err := g.GenBiomes(out, Range{Scale: 4, SX: 4, SY: 1, SZ: 4})
	if err == nil {
		t.Fatal("expected OutOfMemory error for an undersized buffer")
	}
}

func TestGenBiomesFillsRangeLayout(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Overworld, 42); err != nil {
		t.Fatal(err)
	}

	r := Range{Scale: 4, X: 0, Y: 16, Z: 0, SX: 4, SY: 1, SZ: 4}
	out := make([]biome.ID, 4*1*4)
	if err := g.GenBiomes(out, r); err != nil {
		t.Fatal(err)
	}

	for iz := 0; iz < r.SZ; iz++ {
		for ix := 0; ix < r.SX; ix++ {
			want, err := g.GetBiomeAt(4, int64(ix), 16, int64(iz))
			if err != nil {
				t.Fatal(err)
			}
			got := out[iz*r.SX+ix]
			if got != want {
				t.Fatalf("out[%d,%d] = %v, want %v", ix, iz, got, want)
			}
		}
	}
}

func TestPoolRunFillsEveryTile(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Overworld, 7); err != nil {
		t.Fatal(err)
	}

	tiles := make([]Tile, 4)
	for i := range tiles {
		tiles[i] = Tile{
			Range: Range{Scale: 4, X: int64(i * 4), SX: 4, SY: 1, SZ: 4},
			Out:   make([]biome.ID, 16),
		}
	}

	p := NewPool(g, 2)
	if err := p.Run(context.Background(), tiles); err != nil {
		t.Fatalf("Pool.Run failed: %v", err)
	}

	for i, tile := range tiles {
		for _, id := range tile.Out {
			if id == biome.None {
				t.Fatalf("tile %d contains an unfilled (None) cell", i)
			}
		}
	}
}

func TestMapNether2DAgreesWithPerColumnLookup(t *testing.T) {
	g := mustSetup(t, version.Newest)
	if err := g.ApplySeed(version.Nether, 314); err != nil {
		t.Fatal(err)
	}

	plane := g.nether.mapNether2D(0, 0, 8, 8)
	for z := 0; z < 8; z++ {
		for x := 0; x < 8; x++ {
			want := g.nether.biomeAt(int64(x), int64(z))
			if plane[z*8+x] != want {
				t.Fatalf("mapNether2D(%d,%d) = %v, want %v", x, z, plane[z*8+x], want)
			}
		}
	}
}
