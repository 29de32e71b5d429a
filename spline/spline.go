// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package spline implements a recursive, Hermite-interpolated spline
// tree that folds the four climate axes (continentalness, erosion,
// ridges, weirdness) down to a single depth scalar. Nodes live in flat,
// index-referenced arenas rather than a pointer graph: a spline tower
// is immutable once built and evaluated extremely often, so owning
// nodes by slice index avoids a pointer chase and an allocation per
// node.
package spline

import "math"

// Axis selects which climate coordinate an internal node branches on.
type Axis int

const (
	Continentalness Axis = iota
	Erosion
	Ridges
	Weirdness
)

// Point is the climate-space input to a spline evaluation. Ridges is
// a derived scalar, never stored directly — it is always computed from
// Weirdness, so Point only carries the three independent axes and
// computes Ridges on demand in Get.
type Point struct {
	Continentalness float64
	Erosion         float64
	Weirdness       float64
}

// Get returns the coordinate a spline node reads for the given axis.
func (p Point) Get(a Axis) float64 {
	switch a {
	case Continentalness:
		return p.Continentalness
	case Erosion:
		return p.Erosion
	case Weirdness:
		return p.Weirdness
	case Ridges:
		return RidgesOf(p.Weirdness)
	default:
		return 0
	}
}

// RidgesOf derives the ridges scalar from a weirdness sample.
func RidgesOf(w float64) float64 {
	return -3 * (math.Abs(math.Abs(w)-2.0/3.0) - 1.0/3.0)
}

// Handle references a node owned by a Pool: either a fixed leaf or an
// internal branch, selected by kind.
type Handle struct {
	kind  uint8
	index int32
}

const (
	kindFixed uint8 = iota
	kindInternal
)

// Nil reports whether h is the zero Handle. The first leaf a Pool's
// AddFixed registers has the same value, so Nil is true for it as well.
func (h Handle) Nil() bool {
	return h.kind == kindFixed && h.index == 0 && h == Handle{}
}

type fixedNode struct {
	value float64
}

type internalNode struct {
	axis        Axis
	locations   []float64
	values      []Handle
	derivatives []float64
}

// Pool is an arena of spline nodes. A fully built tower lives entirely
// inside one Pool; nothing outside it is ever mutated after construction,
// which is what lets Eval be called concurrently from multiple climate
// samplers without locking.
type Pool struct {
	fixed    []fixedNode
	internal []internalNode
}

// AddFixed registers a constant leaf and returns its handle.
func (p *Pool) AddFixed(value float64) Handle {
	p.fixed = append(p.fixed, fixedNode{value: value})
	return Handle{kind: kindFixed, index: int32(len(p.fixed) - 1)}
}

// AddInternal registers a branch node. locations must be strictly
// increasing and the same length as values and derivatives; AddInternal
// does not check either condition.
func (p *Pool) AddInternal(axis Axis, locations []float64, values []Handle, derivatives []float64) Handle {
	p.internal = append(p.internal, internalNode{
		axis:        axis,
		locations:   locations,
		values:      values,
		derivatives: derivatives,
	})
	return Handle{kind: kindInternal, index: int32(len(p.internal) - 1)}
}

// Eval walks the tree rooted at h, following recursive
// Hermite rule: outside the first/last control point the node
// extrapolates linearly using the boundary derivative; otherwise it
// locates the bracketing segment and blends the cubic Hermite basis.
func (p *Pool) Eval(h Handle, pt Point) float64 {
	if h.kind == kindFixed {
		return p.fixed[h.index].value
	}

	n := &p.internal[h.index]
	f := pt.Get(n.axis)

	i := 0
	for i < len(n.locations) && n.locations[i] < f {
		i++
	}

	if i == 0 {
		return p.Eval(n.values[0], pt) + n.derivatives[0]*(f-n.locations[0])
	}
	if i == len(n.locations) {
		last := i - 1
		return p.Eval(n.values[last], pt) + n.derivatives[last]*(f-n.locations[last])
	}

	lo := n.locations[i-1]
	hi := n.locations[i]
	t := (f - lo) / (hi - lo)

	nv := p.Eval(n.values[i-1], pt)
	ov := p.Eval(n.values[i], pt)

	dlo := n.derivatives[i-1] * (hi - lo)
	dhi := n.derivatives[i] * (hi - lo)

	q := dlo - (ov - nv)
	r := -dhi + (ov - nv)

	return lerp(t, nv, ov) + t*(1-t)*lerp(t, q, r)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
