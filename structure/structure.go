// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package structure implements region-grid structure placement, the
// stronghold ring iterator, and per-structure viability checks against
// a sampled biome.
package structure

import (
	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/version"
)

// Type enumerates the structure kinds this module places.
type Type int

const (
	DesertPyramid Type = iota
	JunglePyramid
	SwampHut
	Igloo
	Village
	OceanRuin
	Shipwreck
	Monument
	Mansion
	OutpostStructure
	RuinedPortal
	AncientCity
	TrailRuins
	Fortress
	Bastion
	NetherFossil
	EndCity
	EndGateway
	Geode
	DesertWell
	Mineshaft
	SlimeChunk
	Stronghold
)

// Config holds the region-grid placement parameters for a structure.
type Config struct {
	Salt       int64
	RegionSize int64
	ChunkRange int64
	Dim        version.Dimension
	Rarity     float64
}

// Configs is the 23-entry table keyed by structure type.
// Salts and region sizes below are the long-standing reference magic
// numbers; they are not tunable and must not be renumbered.
var Configs = map[Type]Config{
	DesertPyramid:    {Salt: 14357617, RegionSize: 32, ChunkRange: 24, Dim: version.Overworld, Rarity: 1.0 / 27.216},
	JunglePyramid:    {Salt: 14357619, RegionSize: 32, ChunkRange: 24, Dim: version.Overworld, Rarity: 1.0 / 27.216},
	SwampHut:         {Salt: 14357620, RegionSize: 32, ChunkRange: 24, Dim: version.Overworld, Rarity: 1.0 / 27.216},
	Igloo:            {Salt: 14357618, RegionSize: 32, ChunkRange: 24, Dim: version.Overworld, Rarity: 1.0 / 27.216},
	Village:          {Salt: 10387312, RegionSize: 34, ChunkRange: 26, Dim: version.Overworld, Rarity: 1.0 / 22.3},
	OceanRuin:        {Salt: 14357621, RegionSize: 20, ChunkRange: 12, Dim: version.Overworld, Rarity: 1.0 / 6.6},
	Shipwreck:        {Salt: 165745295, RegionSize: 24, ChunkRange: 20, Dim: version.Overworld, Rarity: 1.0 / 9.6},
	Monument:         {Salt: 10387313, RegionSize: 32, ChunkRange: 27, Dim: version.Overworld, Rarity: 1.0 / 20.5},
	Mansion:          {Salt: 10387319, RegionSize: 80, ChunkRange: 60, Dim: version.Overworld, Rarity: 1.0 / 98.4},
	OutpostStructure: {Salt: 165745296, RegionSize: 32, ChunkRange: 24, Dim: version.Overworld, Rarity: 1.0 / 23.1},
	RuinedPortal:     {Salt: 34222645, RegionSize: 40, ChunkRange: 25, Dim: version.Overworld, Rarity: 1.0 / 25.8},
	AncientCity:      {Salt: 20083232, RegionSize: 24, ChunkRange: 16, Dim: version.Overworld, Rarity: 1.0 / 16.5},
	TrailRuins:       {Salt: 83469867, RegionSize: 34, ChunkRange: 26, Dim: version.Overworld, Rarity: 1.0 / 22.3},
	Fortress:         {Salt: 30084232, RegionSize: 27, ChunkRange: 23, Dim: version.Nether, Rarity: 1.0 / 21.1},
	Bastion:          {Salt: 30084232, RegionSize: 27, ChunkRange: 23, Dim: version.Nether, Rarity: 1.0 / 21.1},
	NetherFossil:     {Salt: 14357921, RegionSize: 2, ChunkRange: 1, Dim: version.Nether, Rarity: 1.0},
	EndCity:          {Salt: 10387313, RegionSize: 20, ChunkRange: 9, Dim: version.End, Rarity: 1.0 / 5.4},
	EndGateway:       {Salt: 40001, RegionSize: 1, ChunkRange: 1, Dim: version.End, Rarity: 1.0},
	Geode:            {Salt: 20000, RegionSize: 1, ChunkRange: 1, Dim: version.Overworld, Rarity: 1.0},
	DesertWell:       {Salt: 30001, RegionSize: 1, ChunkRange: 1, Dim: version.Overworld, Rarity: 1.0},
	Mineshaft:        {Salt: 0, RegionSize: 1, ChunkRange: 1, Dim: version.Overworld, Rarity: 0.004},
	SlimeChunk:       {Salt: 987234911, RegionSize: 1, ChunkRange: 1, Dim: version.Overworld, Rarity: 0.1},
	Stronghold:       {Salt: 0, RegionSize: 0, ChunkRange: 0, Dim: version.Overworld, Rarity: 1.0},
}

const lcgMultiplier = 0x5DEECE66D
const lcgMask = (uint64(1) << 48) - 1

// regionSeed derives the per-region LCG seed.
func regionSeed(seed, rX, rZ, salt int64) uint64 {
	s := uint64(seed) + uint64(rX)*341873128712 + uint64(rZ)*132897987541 + uint64(salt)
	return (s ^ lcgMultiplier) & lcgMask
}

func lcgStep(s uint64) uint64 {
	return (s*lcgMultiplier + 0xB) & lcgMask
}

// nextChunkOffset reproduces `step the LCG once, take s>>17 mod n`.
func nextChunkOffset(s uint64, n int64) (uint64, int64) {
	s = lcgStep(s)
	return s, int64(s>>17) % n
}

// Pos is a structure's placement, in blocks.
type Pos struct {
	X, Z int64
}

// GetStructurePos returns the structure's position within region
// (rX, rZ), in blocks. Large structures repeat the
// placement draw and average, producing a triangular distribution
// favoring the middle of the [0, ChunkRange) offset range.
func GetStructurePos(t Type, seed, rX, rZ int64, large bool) Pos {
	cfg := Configs[t]
	s := regionSeed(seed, rX, rZ, cfg.Salt)

	s, chunkX := nextChunkOffset(s, cfg.ChunkRange)
	s, chunkZ := nextChunkOffset(s, cfg.ChunkRange)

	if large {
		var chunkX2, chunkZ2 int64
		s, chunkX2 = nextChunkOffset(s, cfg.ChunkRange)
		_, chunkZ2 = nextChunkOffset(s, cfg.ChunkRange)
		chunkX = (chunkX + chunkX2) / 2
		chunkZ = (chunkZ + chunkZ2) / 2
	}

	return Pos{
		X: (rX*cfg.RegionSize + chunkX) << 4,
		Z: (rZ*cfg.RegionSize + chunkZ) << 4,
	}
}

// decoratorMix is the per-chunk decorator-feature seed derivation
// (end-gateways, geodes, wells): a 2-axis linear mix of two odd LCG
// draws against the population seed.
func decoratorMix(popSeed uint64, x, z int64) uint64 {
	a := lcgStep(popSeed)
	b := lcgStep(a)
	ax := int64(a>>16)*2 + 1
	az := int64(b>>16)*2 + 1
	return (uint64(x*ax+z*az) ^ popSeed) & lcgMask
}

// DecoratorSeed derives the chunk-local seed for a decorator feature
// at chunk (x, z) given the world population seed.
func DecoratorSeed(popSeed uint64, x, z int64) uint64 {
	return decoratorMix(popSeed, x, z)
}

// IsOceanicFunc samples the biome at a block coordinate and reports
// whether it is oceanic; the stronghold ring search consults it.
type IsOceanicFunc func(x, z int64) bool

// IsSlimeChunk reproduces the reference's fixed-salt chunk test. About
// 1 in 10 chunks qualify.
func IsSlimeChunk(seed int64, chunkX, chunkZ int64) bool {
	s := uint64(seed) +
		uint64(chunkX*chunkX)*0x4c1906 +
		uint64(chunkX)*0x5ac0db +
		uint64(chunkZ*chunkZ)*0x4307a7 +
		uint64(chunkZ)*0x5f24f
	s = (s ^ 0x3ad8025f) & lcgMask
	s = lcgStep(s)
	return int64(s>>17)%10 == 0
}

// matchesAny reports whether id matches any entry in the
// allow-list.
func matchesAny(allow []biome.ID, id biome.ID) bool {
	for _, a := range allow {
		if a == id {
			return true
		}
	}
	return false
}
