// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package biome holds the static biome ID table and the category
// predicates the generator and structure packages consult. IDs and
// values match Minecraft's own biome enum so precompiled biome-tree
// tables can be reused without renumbering.
package biome

import "github.com/voxellayer/biomegen/version"

// ID is a biome identifier. -1 (None) is the reserved "no biome" value.
type ID int32

const None ID = -1

// Base biomes (0-39).
const (
	Ocean ID = iota
	Plains
	Desert
	Mountains
	Forest
	Taiga
	Swamp
	River
	NetherWastes
	TheEnd
	FrozenOcean
	FrozenRiver
	SnowyTundra
	SnowyMountains
	MushroomFields
	MushroomFieldShore
	Beach
	DesertHills
	WoodedHills
	TaigaHills
	MountainEdge
	Jungle
	JungleHills
	JungleEdge
	DeepOcean
	StoneShore
	SnowyBeach
	BirchForest
	BirchForestHills
	DarkForest
	SnowyTaiga
	SnowyTaigaHills
	GiantTreeTaiga
	GiantTreeTaigaHills
	WoodedMountains
	Savanna
	SavannaPlateau
	Badlands
	WoodedBadlandsPlateau
	BadlandsPlateau
)

// End biomes (40-43) and 1.13+ ocean variants (44-50).
const (
	SmallEndIslands ID = iota + 40
	EndMidlands
	EndHighlands
	EndBarrens
	WarmOcean
	LukewarmOcean
	ColdOcean
	DeepWarmOcean
	DeepLukewarmOcean
	DeepColdOcean
	DeepFrozenOcean
)

const TheVoid ID = 127

// Mutated variants (128+).
const (
	SunflowerPlains                  = Plains + 128
	DesertLakes                      = Desert + 128
	GravellyMountains                = Mountains + 128
	FlowerForest                     = Forest + 128
	TaigaMountains                   = Taiga + 128
	SwampHills                       = Swamp + 128
	IceSpikes                        = SnowyTundra + 128
	ModifiedJungle                   = Jungle + 128
	ModifiedJungleEdge               = JungleEdge + 128
	TallBirchForest                  = BirchForest + 128
	TallBirchHills                   = BirchForestHills + 128
	DarkForestHills                  = DarkForest + 128
	SnowyTaigaMountains              = SnowyTaiga + 128
	GiantSpruceTaiga                 = GiantTreeTaiga + 128
	GiantSpruceTaigaHills            = GiantTreeTaigaHills + 128
	ModifiedGravellyMountains        = WoodedMountains + 128
	ShatteredSavanna                 = Savanna + 128
	ShatteredSavannaPlateau          = SavannaPlateau + 128
	ErodedBadlands                   = Badlands + 128
	ModifiedWoodedBadlandsPlateau    = WoodedBadlandsPlateau + 128
	ModifiedBadlandsPlateau          = BadlandsPlateau + 128
)

// 1.14+.
const (
	BambooJungle      ID = 168
	BambooJungleHills ID = 169
)

// 1.16+ Nether.
const (
	SoulSandValley ID = 170
	CrimsonForest  ID = 171
	WarpedForest   ID = 172
	BasaltDeltas   ID = 173
)

// 1.17+ caves.
const (
	DripstoneCaves ID = 174
	LushCaves      ID = 175
)

// 1.18+ mountains.
const (
	Meadow       ID = 177
	Grove        ID = 178
	SnowySlopes  ID = 179
	JaggedPeaks  ID = 180
	FrozenPeaks  ID = 181
	StonyPeaks   ID = 182
)

// 1.19+.
const (
	DeepDark      ID = 183
	MangroveSwamp ID = 184
)

// 1.20+.
const CherryGrove ID = 185

// 1.21+.
const PaleGarden ID = 186

// legacyRemoved marks IDs kept only for numeric continuity: they were
// generated by pre-1.18 worldgen and are never produced by this
// (1.18-floor) engine, so Exists always rejects them.
var legacyRemoved = map[ID]bool{
	SnowyMountains:        true,
	MushroomFieldShore:    true,
	DesertHills:           true,
	WoodedHills:           true,
	TaigaHills:            true,
	MountainEdge:          true,
	JungleHills:           true,
	BirchForestHills:      true,
	SnowyTaigaHills:       true,
	GiantTreeTaigaHills:   true,
	BadlandsPlateau:       true,
	TallBirchHills:        true,
	GiantSpruceTaigaHills: true,
}

// introducedAt records the version floor for biomes added after the
// 1.18 baseline this module targets.
var introducedAt = map[ID]version.MCVersion{
	DeepDark:      version.MC1_19_2,
	MangroveSwamp: version.MC1_19_2,
	CherryGrove:   version.MC1_20_6,
	PaleGarden:    version.MC1_21WD,
}

// Exists reports whether id is a biome the engine can produce at mc.
func Exists(mc version.MCVersion, id ID) bool {
	if id == None {
		return false
	}
	if legacyRemoved[id] {
		return false
	}
	if floor, ok := introducedAt[id]; ok {
		return mc >= floor
	}
	return id >= Ocean && id <= PaleGarden || id == TheVoid
}

var netherIDs = map[ID]bool{
	NetherWastes: true, SoulSandValley: true, CrimsonForest: true,
	WarpedForest: true, BasaltDeltas: true,
}

var endIDs = map[ID]bool{
	TheEnd: true, SmallEndIslands: true, EndMidlands: true,
	EndHighlands: true, EndBarrens: true,
}

// GetDimension reports which dimension generates id.
func GetDimension(id ID) version.Dimension {
	if netherIDs[id] {
		return version.Nether
	}
	if endIDs[id] {
		return version.End
	}
	return version.Overworld
}

// IsOverworld reports whether id is both a valid biome at mc and
// generated by the overworld engine.
func IsOverworld(mc version.MCVersion, id ID) bool {
	return Exists(mc, id) && GetDimension(id) == version.Overworld
}

var oceanic = map[ID]bool{
	Ocean: true, FrozenOcean: true, WarmOcean: true, LukewarmOcean: true,
	ColdOcean: true, DeepOcean: true, DeepWarmOcean: true,
	DeepLukewarmOcean: true, DeepColdOcean: true, DeepFrozenOcean: true,
}

var shallowOcean = map[ID]bool{
	Ocean: true, FrozenOcean: true, WarmOcean: true, LukewarmOcean: true, ColdOcean: true,
}

var deepOcean = map[ID]bool{
	DeepOcean: true, DeepWarmOcean: true, DeepLukewarmOcean: true,
	DeepColdOcean: true, DeepFrozenOcean: true,
}

func IsOceanic(id ID) bool      { return oceanic[id] }
func IsShallowOcean(id ID) bool { return shallowOcean[id] }
func IsDeepOcean(id ID) bool    { return deepOcean[id] }

var snowy = map[ID]bool{
	FrozenOcean: true, FrozenRiver: true, SnowyTundra: true, SnowyMountains: true,
	SnowyBeach: true, SnowyTaiga: true, SnowyTaigaHills: true, SnowyTaigaMountains: true,
	IceSpikes: true, DeepFrozenOcean: true, Grove: true, SnowySlopes: true,
	JaggedPeaks: true, FrozenPeaks: true,
}

func IsSnowy(id ID) bool { return snowy[id] }

var mesa = map[ID]bool{
	Badlands: true, WoodedBadlandsPlateau: true, BadlandsPlateau: true,
	ErodedBadlands: true, ModifiedWoodedBadlandsPlateau: true, ModifiedBadlandsPlateau: true,
}

func IsMesa(id ID) bool { return mesa[id] }

// categoryOf maps a biome (mutated or not) to the canonical id areSimilar
// groups it under, reconstructed from the mutated-variant relationships
// documented in the ID table above.
func categoryOf(id ID) ID {
	base := id
	if base >= 128 && base < 256 {
		base -= 128
	}

	switch base {
	case Jungle, JungleHills, JungleEdge, BambooJungle, BambooJungleHills:
		return Jungle
	case Badlands, WoodedBadlandsPlateau, BadlandsPlateau, ErodedBadlands:
		return Badlands
	case GiantTreeTaiga, GiantTreeTaigaHills:
		return GiantTreeTaiga
	case SnowyTundra, IceSpikes:
		return SnowyTundra
	case Savanna, SavannaPlateau:
		return Savanna
	case WoodedMountains, Mountains:
		return Mountains
	default:
		return base
	}
}

// AreSimilar reports whether id1 and id2 belong to the same biome
// category (structure placement and viability checks both consult
// category membership indirectly through the biome tables).
func AreSimilar(mc version.MCVersion, id1, id2 ID) bool {
	if !Exists(mc, id1) || !Exists(mc, id2) {
		return false
	}
	return categoryOf(id1) == categoryOf(id2)
}
