// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package generator assembles the noise, climate, and biome-tree
// stacks into the three per-dimension engines (scaled-volume Overworld
// sampling, Nether, and End) behind one immutable Generator value.
package generator

import (
	"fmt"

	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/climate"
	"github.com/voxellayer/biomegen/hash"
	"github.com/voxellayer/biomegen/noise"
	"github.com/voxellayer/biomegen/rng"
	"github.com/voxellayer/biomegen/spline"
	"github.com/voxellayer/biomegen/tree"
	"github.com/voxellayer/biomegen/version"
)

// Kind enumerates the small, non-recoverable error conditions a
// Generator can surface.
type Kind int

const (
	InvalidScale Kind = iota
	InvalidVersion
	OutOfMemory
	MalformedTable
)

func (k Kind) String() string {
	switch k {
	case InvalidScale:
		return "invalid scale"
	case InvalidVersion:
		return "invalid version"
	case OutOfMemory:
		return "out of memory"
	case MalformedTable:
		return "malformed table"
	default:
		return "unknown"
	}
}

// Error is the sentinel error type every public operation in this
// package returns. It wraps tree.ErrMalformedTable where applicable so
// callers can still use errors.Is against that lower-level sentinel.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Flags gates optional generator behaviors established at setup time.
type Flags uint8

const (
	LargeBiomes Flags = 1 << iota
)

// Generator is immutable after applySeed: every noise table, spline,
// and tree reference it holds is fixed, so sampling is safe from any
// number of goroutines without synchronization.
type Generator struct {
	Version version.MCVersion
	Dim     version.Dimension
	Seed    int64

	tree *tree.BiomeTree

	overworld *climate.Sampler
	nether    *netherEngine
	end       *endEngine

	sha         uint64
	largeBiomes bool
}

// SetupGenerator validates mc and returns a Generator with its
// version-gated tables loaded. The returned Generator has no seed
// bound yet; call ApplySeed before sampling.
func SetupGenerator(mc version.MCVersion, flags Flags) (*Generator, error) {
	if !mc.Valid() {
		return nil, newError(InvalidVersion, fmt.Sprintf("mc=%d below supported floor", mc))
	}

	bt := tree.BuildPlaceholderOverworldTable()
	if err := bt.Validate(); err != nil {
		return nil, &Error{Kind: MalformedTable, Msg: err.Error(), err: err}
	}

	g := &Generator{
		Version: mc,
		tree:    bt,
	}
	g.largeBiomes = flags&LargeBiomes != 0
	return g, nil
}

// ApplySeed rebuilds exactly the subsystem the requested dimension
// needs and atomically swaps it in: from the caller's perspective a
// Generator is never half-initialized.
func (g *Generator) ApplySeed(dim version.Dimension, seed int64) error {
	switch dim {
	case version.Overworld:
		g.overworld = buildOverworldSampler(seed, g.largeBiomes)
	case version.Nether:
		g.nether = buildNetherEngine(seed)
	case version.End:
		g.end = buildEndEngine(seed)
	default:
		return newError(InvalidVersion, fmt.Sprintf("unknown dimension %v", dim))
	}

	g.Dim = dim
	g.Seed = seed
	g.sha = hash.VoronoiSHA(seed)
	return nil
}

func buildOverworldSampler(seed int64, largeBiomes bool) *climate.Sampler {
	r := rng.NewLCG(seed)
	pool, root := spline.BuildOverworldSpline()

	return &climate.Sampler{
		Shift:           noise.InitLegacyDoublePerlin(&r, -3, 4),
		Temperature:     noise.InitLegacyDoublePerlin(&r, -10, 2),
		Humidity:        noise.InitLegacyDoublePerlin(&r, -8, 2),
		Continentalness: noise.InitLegacyDoublePerlin(&r, -9, 2),
		Erosion:         noise.InitLegacyDoublePerlin(&r, -9, 2),
		Weirdness:       noise.InitLegacyDoublePerlin(&r, -7, 2),
		Spline:          pool,
		SplineRoot:      root,
		LargeBiomes:     largeBiomes,
	}
}
