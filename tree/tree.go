// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tree implements the flat, table-driven approximate-nearest-
// neighbor search that turns a 6-D climate vector into a biome id. The
// structure favors a flat node-array layout with load-time validation
// over defensive checks in the hot path: malformed tables surface as an
// error from Validate, never a panic during search.
package tree

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/voxellayer/biomegen/biome"
)

// ErrMalformedTable is returned by Validate (and wrapped by LoadTable)
// when a table's child indices would walk past the node array: an
// internal invariant violation to be caught at load time, never inside
// the search hot path.
var ErrMalformedTable = errors.New("tree: malformed biome table")

// BiomeTree is the precompiled lookup structure: a pool of shared 1-D
// intervals, a flat array of packed node records, and the per-depth
// fan-out schedule.
type BiomeTree struct {
	// Param holds (lo, hi) pairs: axis k of a node addresses pair idx
	// via Param[2*idx], Param[2*idx+1].
	Param []int64
	// Nodes holds packed records: low 48 bits are six 8-bit indices into
	// Param (one per climate axis), high 16 bits are either a child base
	// index (inner node) or a biome id (leaf, low byte of the field).
	Nodes []uint64
	// Steps holds the per-depth child stride; Steps[d] == 0 marks d as
	// a leaf depth.
	Steps []int
	// Order is the branching factor: at most this many children are
	// considered per inner node.
	Order int
}

type tableJSON struct {
	Param []int64  `json:"param"`
	Nodes []uint64 `json:"nodes"`
	Steps []int    `json:"steps"`
	Order int      `json:"order"`
}

var tableJSONAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadTable decodes a precompiled table blob and validates it before
// returning, so a malformed table fails at startup instead of mid-search.
func LoadTable(data []byte) (*BiomeTree, error) {
	var raw tableJSON
	if err := tableJSONAPI.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("tree: decode table: %w", err)
	}
	t := &BiomeTree{Param: raw.Param, Nodes: raw.Nodes, Steps: raw.Steps, Order: raw.Order}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate walks every node and confirms that every axis index
// addresses a pair inside Param and that every inner node's child base
// index lies inside the node array. A child range that starts inside
// the array but runs past its end is accepted: the search stops at the
// end. A tree failing this must never reach the search.
func (t *BiomeTree) Validate() error {
	if len(t.Steps) == 0 {
		return fmt.Errorf("%w: no depth schedule", ErrMalformedTable)
	}
	if t.Order <= 0 {
		return fmt.Errorf("%w: non-positive order %d", ErrMalformedTable, t.Order)
	}

	maxParamIdx := len(t.Param)/2 - 1
	for i, node := range t.Nodes {
		for k := 0; k < 6; k++ {
			idx := int((node >> uint(8*k)) & 0xff)
			if idx > maxParamIdx {
				return fmt.Errorf("%w: node %d axis %d references param pair %d beyond pool size %d",
					ErrMalformedTable, i, k, idx, maxParamIdx+1)
			}
		}

		depth := t.depthOf(i)
		if depth >= len(t.Steps) {
			return fmt.Errorf("%w: node %d has no depth entry", ErrMalformedTable, i)
		}
		if t.Steps[depth] == 0 {
			continue // leaf: high field is a biome id, nothing to bound-check
		}

		base := int(node >> 48)
		step := t.Steps[depth]
		last := base + (t.Order-1)*step
		if step > 0 && last >= len(t.Nodes) && base < len(t.Nodes) {
			// Reference behavior: the order loop is expected to break
			// early once a child index walks off the end; that is not
			// itself malformed. Only a base index that is already out
			// of range is.
			continue
		}
		if base >= len(t.Nodes) {
			return fmt.Errorf("%w: node %d child base %d is out of range (len %d)",
				ErrMalformedTable, i, base, len(t.Nodes))
		}
	}
	return nil
}

// depthOf recovers a node's depth by walking the tree from the root.
// Tables are small (depth bounded at 6), so a linear walk at validation
// time is cheap and keeps the hot path free of any per-node depth
// bookkeeping.
func (t *BiomeTree) depthOf(target int) int {
	if target == 0 {
		return 0
	}
	var walk func(idx, depth int) int
	walk = func(idx, depth int) int {
		if idx == target {
			return depth
		}
		if depth >= len(t.Steps) || t.Steps[depth] == 0 {
			return -1
		}
		base := int(t.Nodes[idx] >> 48)
		step := t.Steps[depth]
		for c := 0; c < t.Order; c++ {
			child := base + c*step
			if child >= len(t.Nodes) {
				break
			}
			if found := walk(child, depth+1); found >= 0 {
				return found
			}
		}
		return -1
	}
	if d := walk(0, 0); d >= 0 {
		return d
	}
	// Unreachable from the root: treat conservatively as the deepest
	// leaf depth so Validate still bound-checks its param indices.
	return len(t.Steps) - 1
}

// dist is the leaf/inner-node rectangle distance: the summed squared
// clearance from v to the node's 6-D hyper-rectangle, computed in
// unsigned 64-bit arithmetic since a single-axis difference can exceed
// 2^32 and the reference squares it intentionally in that width.
func (t *BiomeTree) dist(v [6]int64, node uint64) uint64 {
	var sum uint64
	for k := 0; k < 6; k++ {
		idx := int((node >> uint(8*k)) & 0xff)
		lo := t.Param[2*idx]
		hi := t.Param[2*idx+1]

		var c int64
		switch {
		case v[k] < lo:
			c = lo - v[k]
		case v[k] > hi:
			c = v[k] - hi
		}
		sum += uint64(c) * uint64(c)
	}
	return sum
}

// Lookup returns the index and biome id of the closest leaf to v. alt,
// when >= 0, seeds the search with a caller-supplied prior leaf index
// for intra-chunk temporal coherence, so the search can terminate early
// when the previous sample's leaf is still the winner.
func (t *BiomeTree) Lookup(v [6]int64, alt int) (leafIndex int, id biome.ID) {
	ds := ^uint64(0) // -1 reinterpreted as unsigned max: every candidate can improve it
	best := -1

	if alt >= 0 && alt < len(t.Nodes) {
		ds = t.dist(v, t.Nodes[alt])
		best = alt
	}

	t.search(v, 0, 0, &ds, &best)

	if best < 0 {
		return -1, biome.None
	}
	return best, leafBiome(t.Nodes[best])
}

func (t *BiomeTree) search(v [6]int64, idx, depth int, ds *uint64, best *int) {
	node := t.Nodes[idx]
	d := t.dist(v, node)
	if d >= *ds {
		return
	}

	if t.Steps[depth] == 0 {
		*ds = d
		*best = idx
		return
	}

	base := int(node >> 48)
	step := t.Steps[depth]
	for c := 0; c < t.Order; c++ {
		child := base + c*step
		if child >= len(t.Nodes) {
			break
		}
		t.search(v, child, depth+1, ds, best)
	}
}

func leafBiome(node uint64) biome.ID {
	return biome.ID(int32(uint8(node >> 48)))
}
