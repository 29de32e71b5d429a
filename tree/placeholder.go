// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import "github.com/voxellayer/biomegen/biome"

// BuildPlaceholderOverworldTable returns a small, structurally valid
// BiomeTree that buckets climate vectors by temperature alone. The
// reference's literal per-version table data did not survive retrieval
// (see DESIGN.md); generator.SetupGenerator always uses this table, and
// a table decoded by LoadTable is not wired into the generator. It satisfies every
// invariant a real table must: ascending, non-overlapping intervals,
// every leaf's rectangle contained in its ancestor's, and bounded depth.
func BuildPlaceholderOverworldTable() *BiomeTree {
	const full = 0 // pool index 0: the unconstrained (-10000, 10000) range

	param := []int64{
		-10000, 10000, // idx 0: full range, used by every unconstrained axis
		-10000, -5000, // idx 1: frigid
		-5000, -1500, // idx 2: cold
		-1500, 500, // idx 3: temperate
		500, 3000, // idx 4: warm
		3000, 10000, // idx 5: hot
	}

	leaf := func(temperatureIdx uint64, id biome.ID) uint64 {
		low48 := temperatureIdx // axis 0 (temperature) byte; axes 1..5 stay at idx `full` (0)
		return low48 | uint64(uint8(id))<<48
	}

	nodes := []uint64{
		uint64(full) | uint64(1)<<48, // root: full range on every axis, children start at index 1
		leaf(1, biome.SnowyTundra),
		leaf(2, biome.Taiga),
		leaf(3, biome.Forest),
		leaf(4, biome.Plains),
		leaf(5, biome.Desert),
	}

	return &BiomeTree{
		Param: param,
		Nodes: nodes,
		Steps: []int{1, 0},
		Order: 5,
	}
}
