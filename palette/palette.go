// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette renders a biome grid to an image: a small fixed
// color table plus per-pixel lookup, no shading model beyond a flat
// per-biome color.
package palette

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/internal/numeric"
)

// ColorVec is an RGB color in [0, 1] float32 components.
type ColorVec [3]float32

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	factor = clamp01(factor)
	for i := range vec {
		vec[i] = numeric.Lerp(vec[i], other[i], factor)
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func clamp01(f float32) float32 {
	return math32.Max(0, math32.Min(1, f))
}

func floatToByte(f float32) byte {
	f = clamp01(f)
	return byte(f * 255)
}

// fallback is the color an id with no table entry (e.g. None, or a
// future biome id this table hasn't been extended to cover) falls back
// to.
var fallback = Gray(128)

// colors maps every biome this engine can produce to a flat display
// color. Oceans graduate by depth/temperature; everything else is one
// flat swatch per biome family.
var colors = map[biome.ID]ColorVec{
	biome.Ocean:             RGB(0, 50, 115),
	biome.DeepOcean:         RGB(0, 30, 80),
	biome.FrozenOcean:       RGB(130, 160, 200),
	biome.DeepFrozenOcean:   RGB(100, 130, 180),
	biome.WarmOcean:         RGB(0, 120, 190),
	biome.LukewarmOcean:     RGB(0, 100, 170),
	biome.ColdOcean:         RGB(20, 70, 130),
	biome.DeepWarmOcean:     RGB(0, 80, 150),
	biome.DeepLukewarmOcean: RGB(0, 70, 140),
	biome.DeepColdOcean:     RGB(10, 50, 110),

	biome.River:       RGB(30, 100, 170),
	biome.FrozenRiver: RGB(140, 170, 210),

	biome.Beach:           RGB(220, 210, 160),
	biome.SnowyBeach:      RGB(230, 230, 235),
	biome.StoneShore:      RGB(130, 130, 130),

	biome.Plains:         RGB(145, 180, 80),
	biome.SunflowerPlains: RGB(160, 195, 85),
	biome.Desert:         RGB(194, 178, 128),
	biome.DesertHills:    RGB(200, 183, 130),
	biome.DesertLakes:    RGB(205, 190, 140),

	biome.Forest:          RGB(60, 130, 55),
	biome.FlowerForest:    RGB(80, 150, 70),
	biome.WoodedHills:     RGB(55, 120, 50),
	biome.BirchForest:     RGB(110, 160, 75),
	biome.BirchForestHills: RGB(100, 150, 70),
	biome.TallBirchForest: RGB(110, 160, 80),
	biome.TallBirchHills:  RGB(105, 155, 75),
	biome.DarkForest:      RGB(40, 75, 35),
	biome.DarkForestHills: RGB(35, 70, 30),

	biome.Taiga:               RGB(50, 100, 75),
	biome.TaigaHills:          RGB(45, 95, 70),
	biome.TaigaMountains:      RGB(55, 105, 80),
	biome.SnowyTaiga:          RGB(150, 180, 170),
	biome.SnowyTaigaHills:     RGB(145, 175, 165),
	biome.SnowyTaigaMountains: RGB(155, 185, 175),
	biome.GiantTreeTaiga:      RGB(65, 95, 70),
	biome.GiantTreeTaigaHills: RGB(60, 90, 65),
	biome.GiantSpruceTaiga:    RGB(70, 100, 75),
	biome.GiantSpruceTaigaHills: RGB(65, 95, 70),

	biome.Swamp:      RGB(90, 100, 65),
	biome.SwampHills:  RGB(85, 95, 60),
	biome.MangroveSwamp: RGB(70, 110, 75),

	biome.Jungle:             RGB(60, 150, 40),
	biome.JungleHills:        RGB(55, 140, 35),
	biome.JungleEdge:         RGB(90, 160, 55),
	biome.ModifiedJungle:     RGB(65, 155, 45),
	biome.ModifiedJungleEdge: RGB(95, 165, 60),
	biome.BambooJungle:       RGB(70, 160, 50),
	biome.BambooJungleHills:  RGB(65, 150, 45),

	biome.Savanna:                  RGB(185, 175, 95),
	biome.SavannaPlateau:           RGB(180, 170, 100),
	biome.ShatteredSavanna:         RGB(190, 180, 100),
	biome.ShatteredSavannaPlateau:  RGB(185, 175, 105),

	biome.Badlands:                     RGB(170, 95, 55),
	biome.WoodedBadlandsPlateau:        RGB(150, 100, 60),
	biome.BadlandsPlateau:              RGB(175, 100, 60),
	biome.ErodedBadlands:               RGB(180, 90, 50),
	biome.ModifiedWoodedBadlandsPlateau: RGB(155, 105, 65),
	biome.ModifiedBadlandsPlateau:       RGB(180, 105, 65),

	biome.Mountains:                RGB(105, 110, 115),
	biome.WoodedMountains:          RGB(95, 105, 100),
	biome.GravellyMountains:        RGB(115, 115, 120),
	biome.ModifiedGravellyMountains: RGB(120, 120, 125),
	biome.MountainEdge:             RGB(110, 115, 118),

	biome.Grove:       RGB(120, 150, 140),
	biome.SnowySlopes: Gray(225),
	biome.JaggedPeaks:  Gray(200),
	biome.FrozenPeaks:  RGB(215, 225, 235),
	biome.StonyPeaks:   RGB(140, 140, 140),
	biome.Meadow:       RGB(150, 190, 90),

	biome.SnowyTundra:   Gray(235),
	biome.IceSpikes:     RGB(200, 225, 235),
	biome.MushroomFields: RGB(160, 100, 140),

	biome.DripstoneCaves: RGB(110, 95, 80),
	biome.LushCaves:      RGB(70, 140, 60),
	biome.DeepDark:       RGB(25, 25, 30),

	biome.CherryGrove: RGB(235, 170, 200),
	biome.PaleGarden:  RGB(150, 150, 155),

	biome.TheVoid: RGB(0, 0, 0),

	biome.NetherWastes:    RGB(120, 40, 40),
	biome.SoulSandValley:  RGB(70, 55, 45),
	biome.CrimsonForest:   RGB(140, 30, 30),
	biome.WarpedForest:    RGB(30, 110, 100),
	biome.BasaltDeltas:    RGB(60, 55, 60),

	biome.TheEnd:          RGB(35, 30, 50),
	biome.SmallEndIslands: RGB(45, 40, 60),
	biome.EndMidlands:     RGB(195, 185, 110),
	biome.EndHighlands:    RGB(205, 195, 120),
	biome.EndBarrens:      RGB(60, 55, 70),
}

// ColorOf returns id's display color, falling back to a neutral gray
// for any id the table does not carry (e.g. None).
func ColorOf(id biome.ID) ColorVec {
	if c, ok := colors[id]; ok {
		return c
	}
	return fallback
}

// Render paints a biome grid of width sx and height sz (row-major,
// matching generator.GenBiomes's out layout for a single y layer) into
// an RGBA image the same dimensions.
func Render(grid []biome.ID, sx, sz int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, sx, sz))
	for z := 0; z < sz; z++ {
		for x := 0; x < sx; x++ {
			c := ColorOf(grid[z*sx+x])
			img.Set(x, z, c.Color())
		}
	}
	return img
}
