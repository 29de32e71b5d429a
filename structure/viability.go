// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package structure

import (
	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/version"
)

// BiomeSampler samples the biome id at a block coordinate, typically
// backed by generator.Generator.GetBiomeAt at the scale a structure
// type requires.
type BiomeSampler func(x, y, z int64) (biome.ID, error)

// allowList is the per-structure-type biome allow-list.
var allowList = map[Type][]biome.ID{
	DesertPyramid: {biome.Desert},
	JunglePyramid: {biome.Jungle, biome.BambooJungle},
	SwampHut:      {biome.Swamp},
	Igloo:         {biome.SnowyTundra, biome.SnowyTaiga},
	Village: {
		biome.Plains, biome.Desert, biome.Savanna, biome.Taiga,
		biome.SnowyTundra, biome.Meadow,
	},
	OceanRuin: {
		biome.Ocean, biome.FrozenOcean, biome.WarmOcean, biome.LukewarmOcean,
		biome.ColdOcean, biome.DeepOcean,
	},
	Shipwreck: {
		biome.Ocean, biome.FrozenOcean, biome.WarmOcean, biome.LukewarmOcean,
		biome.ColdOcean, biome.Beach, biome.SnowyBeach,
	},
	Monument:     {biome.Ocean, biome.DeepOcean, biome.DeepColdOcean, biome.DeepLukewarmOcean, biome.DeepWarmOcean, biome.DeepFrozenOcean},
	Mansion:      {biome.DarkForest, biome.DarkForestHills},
	AncientCity:  {biome.DeepDark},
	EndCity:      {biome.EndHighlands, biome.EndMidlands},
	EndGateway:   {biome.TheEnd},
	Bastion:      {biome.NetherWastes, biome.SoulSandValley, biome.CrimsonForest, biome.WarpedForest, biome.BasaltDeltas},
	NetherFossil: {biome.SoulSandValley},
}

// IsViableFeatureBiome reports whether id is in t's allow-list at mc.
// A structure whose type has no allow-list entry is treated as
// biome-independent (always viable), matching decorator features like
// geodes and desert wells that place on any surface.
func IsViableFeatureBiome(mc version.MCVersion, t Type, id biome.ID) bool {
	allow, ok := allowList[t]
	if !ok {
		return true
	}
	if !biome.Exists(mc, id) {
		return false
	}
	return matchesAny(allow, id)
}

// IsViableStructurePos samples the biome at the structure's chunk
// center and checks it against the allow-list. Fortress occupies the
// complement of Bastion within a Nether region: a position only counts
// as a Fortress site if Bastion would not also claim it.
func IsViableStructurePos(mc version.MCVersion, t Type, sample BiomeSampler, pos Pos) (bool, error) {
	cx := pos.X + 8
	cz := pos.Z + 8

	id, err := sample(cx, 64, cz)
	if err != nil {
		return false, err
	}

	if t == Fortress && IsViableFeatureBiome(mc, Bastion, id) {
		return false, nil
	}

	return IsViableFeatureBiome(mc, t, id), nil
}
