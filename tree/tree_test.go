// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import (
	"strconv"
	"testing"

	"github.com/voxellayer/biomegen/biome"
)

func TestPlaceholderTableValidates(t *testing.T) {
	tr := BuildPlaceholderOverworldTable()
	if err := tr.Validate(); err != nil {
		t.Fatalf("placeholder table should validate: %v", err)
	}
}

func TestLookupBucketsByTemperature(t *testing.T) {
	tr := BuildPlaceholderOverworldTable()

	cases := []struct {
		temperature int64
		want        biome.ID
	}{
		{-8000, biome.SnowyTundra},
		{-3000, biome.Taiga},
		{0, biome.Forest},
		{1500, biome.Plains},
		{6000, biome.Desert},
	}

	for _, c := range cases {
		v := [6]int64{c.temperature, 0, 0, 0, 0, 0}
		_, id := tr.Lookup(v, -1)
		if id != c.want {
			t.Fatalf("Lookup(temperature=%d) = %v, want %v", c.temperature, id, c.want)
		}
	}
}

func TestLookupIsDeterministic(t *testing.T) {
	tr := BuildPlaceholderOverworldTable()
	v := [6]int64{-2000, 500, 100, -100, 0, 50}

	_, a := tr.Lookup(v, -1)
	_, b := tr.Lookup(v, -1)
	if a != b {
		t.Fatalf("Lookup is not deterministic: %v != %v", a, b)
	}
}

func TestLookupAltSeedAgreesWithFreshSearch(t *testing.T) {
	tr := BuildPlaceholderOverworldTable()
	v := [6]int64{1800, 0, 0, 0, 0, 0}

	freshIdx, freshID := tr.Lookup(v, -1)
	seededIdx, seededID := tr.Lookup(v, freshIdx)

	if freshID != seededID || freshIdx != seededIdx {
		t.Fatalf("alt-seeded search diverged from fresh search: (%d,%v) vs (%d,%v)",
			freshIdx, freshID, seededIdx, seededID)
	}
}

func TestValidateRejectsOutOfRangeParamIndex(t *testing.T) {
	tr := &BiomeTree{
		Param: []int64{-1, 1},
		Nodes: []uint64{uint64(5)}, // axis 0 references param pair 5, but pool only has pair 0
		Steps: []int{0},
		Order: 1,
	}
	if err := tr.Validate(); err == nil {
		t.Fatal("expected Validate to reject an out-of-range param index")
	}
}

func TestLoadTableRoundTrip(t *testing.T) {
	src := BuildPlaceholderOverworldTable()
	data := []byte(`{"param":[` + joinInts64(src.Param) + `],"nodes":[` + joinUints64(src.Nodes) + `],"steps":[1,0],"order":5}`)

	loaded, err := LoadTable(data)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	v := [6]int64{-8000, 0, 0, 0, 0, 0}
	_, want := src.Lookup(v, -1)
	_, got := loaded.Lookup(v, -1)
	if got != want {
		t.Fatalf("round-tripped table disagreed: got %v, want %v", got, want)
	}
}

func joinInts64(vals []int64) string {
	s := ""
	for i, v := range vals {
		if i > 0 {
			s += ","
		}
		s += strconv.FormatInt(v, 10)
	}
	return s
}

func joinUints64(vals []uint64) string {
	s := ""
	for i, v := range vals {
		if i > 0 {
			s += ","
		}
		s += strconv.FormatUint(v, 10)
	}
	return s
}
