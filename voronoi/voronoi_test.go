// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package voronoi

import (
	"testing"

	"github.com/voxellayer/biomegen/hash"
)

func TestUpsampleDeterministic(t *testing.T) {
	sha := hash.VoronoiSHA(12345)
	x4a, y4a, z4a := Upsample(sha, 37, 63, -91)
	x4b, y4b, z4b := Upsample(sha, 37, 63, -91)
	if x4a != x4b || y4a != y4b || z4a != z4b {
		t.Fatal("Upsample is not deterministic")
	}
}

func TestUpsampleRepeatCallIsStable(t *testing.T) {
	sha := hash.VoronoiSHA(555)
	bx, by, bz := int64(20), int64(60), int64(20)

	x4, y4, z4 := Upsample(sha, bx, by, bz)
	gx, gy, gz := Upsample(sha, bx, by, bz)
	if gx != x4 || gy != y4 || gz != z4 {
		t.Fatalf("Upsample(%d,%d,%d) changed on repeat call", bx, by, bz)
	}
}

func TestUpsampleDistinctSeedsCanDiffer(t *testing.T) {
	shaA := hash.VoronoiSHA(1)
	shaB := hash.VoronoiSHA(2)

	x1, y1, z1 := Upsample(shaA, 100, 64, 100)
	x2, y2, z2 := Upsample(shaB, 100, 64, 100)

	if x1 == x2 && y1 == y2 && z1 == z2 {
		// Not impossible, but vanishingly unlikely for two distinct
		// jitter keys at the same coordinate; flag it for inspection.
		t.Log("warning: distinct seeds produced identical Voronoi cells (possible, but check jitter derivation)")
	}
}
