// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// seedhunter scans a seed range for an Overworld spawn column matching
// a target biome, printing every hit: one small, flag-driven batch job,
// no persistence or server wiring.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/voxellayer/biomegen/generator"
	"github.com/voxellayer/biomegen/version"
)

const workers = 8

func main() {
	var (
		from, to   int64
		scale      int
		biomeID    int
		cpuProfile string
	)
	flag.Int64Var(&from, "from", 0, "first seed to scan (inclusive)")
	flag.Int64Var(&to, "to", 1000, "last seed to scan (exclusive)")
	flag.IntVar(&scale, "scale", 4, "biome scale to sample at")
	flag.IntVar(&biomeID, "biome", -1, "target biome.ID to search for")
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

	if biomeID < 0 {
		log.Fatal("-biome is required")
	}

	if err := run(from, to, scale, biomeID); err != nil {
		log.Fatal(err)
	}
}

// run divides [from, to) into one contiguous span per worker; each
// worker owns its own Generator since ApplySeed mutates it per seed.
func run(from, to int64, scale, biomeID int) error {
	if to <= from {
		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())

	var mu sync.Mutex
	var hits []int64

	span := (to - from + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := from + int64(w)*span
		hi := lo + span
		if hi > to {
			hi = to
		}
		if lo >= hi {
			continue
		}

		g.Go(func() error {
			gen, err := generator.SetupGenerator(version.Newest, 0)
			if err != nil {
				return fmt.Errorf("setup: %w", err)
			}

			for seed := lo; seed < hi; seed++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				if err := gen.ApplySeed(version.Overworld, seed); err != nil {
					return fmt.Errorf("apply seed %d: %w", seed, err)
				}
				id, err := gen.GetBiomeAt(scale, 0, 64, 0)
				if err != nil {
					return fmt.Errorf("sample seed %d: %w", seed, err)
				}
				if int(id) == biomeID {
					mu.Lock()
					hits = append(hits, seed)
					mu.Unlock()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })
	for _, seed := range hits {
		fmt.Println(seed)
	}
	return nil
}
