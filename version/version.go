// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package version enumerates the tracked Minecraft versions and the two
// axes (Dimension, MCVersion) that gate biome availability. The ordering
// mirrors original_source/cubiomes-rebuild/biomes.h's MCVersion enum
// exactly: later versions compare greater, so callers can write
// `v >= MC1_19_2` the way the reference does in C.
package version

// MCVersion is an opaque, strictly-ordered version identifier.
type MCVersion int

const (
	Undefined MCVersion = iota
	MC1_18              // 1.18 - 1.18.2
	MC1_19_2            // 1.19.2 - 1.19.3
	MC1_19_4            // 1.19.4 - 1.20.5
	MC1_20_6            // 1.20.6 - 1.21.0
	MC1_21_1
	MC1_21_3
	MC1_21WD // Winter Drop (pale_garden)

	Newest = MC1_21WD
)

// String names a version the way a log line or CLI flag would.
func (v MCVersion) String() string {
	switch v {
	case MC1_18:
		return "1.18"
	case MC1_19_2:
		return "1.19.2"
	case MC1_19_4:
		return "1.19.4"
	case MC1_20_6:
		return "1.20.6"
	case MC1_21_1:
		return "1.21.1"
	case MC1_21_3:
		return "1.21.3"
	case MC1_21WD:
		return "1.21 (Winter Drop)"
	default:
		return "undefined"
	}
}

// Valid reports whether v is a supported, non-undefined version.
func (v MCVersion) Valid() bool {
	return v > Undefined && v <= Newest
}

// Dimension selects which engine (overworld noise stack, Nether
// Voronoi-of-points, or End simplex threshold) answers a sample.
type Dimension int

const (
	Nether    Dimension = -1
	Overworld Dimension = 0
	End       Dimension = 1
)

func (d Dimension) String() string {
	switch d {
	case Nether:
		return "nether"
	case Overworld:
		return "overworld"
	case End:
		return "end"
	default:
		return "undefined"
	}
}
