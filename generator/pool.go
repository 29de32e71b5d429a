// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/voxellayer/biomegen/biome"
)

// Tile is one rectangular unit of work a Pool worker claims whole; a
// caller typically shards an output buffer and runs one tile per OS
// thread.
type Tile struct {
	Range Range
	Out   []biome.ID
}

// Pool runs GenBiomes over a batch of tiles concurrently. Because a
// Generator never mutates after ApplySeed, every worker can share the
// same Generator by reference with no locking.
type Pool struct {
	gen   *Generator
	limit int
}

// NewPool returns a Pool bound to gen with at most limit tiles running
// concurrently; limit <= 0 means the caller accepts errgroup's
// unbounded default (one goroutine per tile).
func NewPool(gen *Generator, limit int) *Pool {
	return &Pool{gen: gen, limit: limit}
}

// Run fills every tile's Out buffer, returning the first error
// encountered (other in-flight tiles are allowed to finish; none of
// them share mutable state, so there is nothing to roll back).
func (p *Pool) Run(ctx context.Context, tiles []Tile) error {
	g, ctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i := range tiles {
		t := &tiles[i]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return p.gen.GenBiomes(t.Out, t.Range)
		})
	}

	return g.Wait()
}
