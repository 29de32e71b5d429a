// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// viewer renders a square region of Overworld biomes to a PNG: one
// seed, one scale, one output file, no config beyond a handful of
// flags.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime/pprof"

	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/generator"
	"github.com/voxellayer/biomegen/palette"
	"github.com/voxellayer/biomegen/version"
)

func main() {
	var (
		seed       int64
		scale      int
		size       int
		y          int64
		out        string
		cpuProfile string
	)
	flag.Int64Var(&seed, "seed", 0, "world seed")
	flag.IntVar(&scale, "scale", 4, "biome scale: one of 1, 4, 16, 64, 256")
	flag.IntVar(&size, "size", 512, "output image width and height, in cells")
	flag.Int64Var(&y, "y", 64, "sample height (overworld only)")
	flag.StringVar(&out, "out", "biomes.png", "output PNG path")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(seed, scale, size, y, out); err != nil {
		log.Fatal(err)
	}
}

func run(seed int64, scale, size int, y int64, out string) error {
	g, err := generator.SetupGenerator(version.Newest, 0)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	if err := g.ApplySeed(version.Overworld, seed); err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}

	half := int64(size / 2)
	r := generator.Range{
		Scale: scale,
		X:     -half, Y: y, Z: -half,
		SX: size, SY: 1, SZ: size,
	}

	need, err := generator.GetMinCacheSize(scale, size, 1, size)
	if err != nil {
		return fmt.Errorf("cache size: %w", err)
	}
	grid := make([]biome.ID, need)
	if err := g.GenBiomes(grid, r); err != nil {
		return fmt.Errorf("gen biomes: %w", err)
	}

	img := palette.Render(grid[:size*size], size, size)

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer file.Close()

	return png.Encode(file, img)
}
