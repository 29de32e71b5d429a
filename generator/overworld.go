// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"github.com/voxellayer/biomegen/biome"
	"github.com/voxellayer/biomegen/climate"
	"github.com/voxellayer/biomegen/version"
	"github.com/voxellayer/biomegen/voronoi"
)

// validScales is the only set of horizontal scales genBiomes and
// getBiomeAt accept.
var validScales = map[int]bool{1: true, 4: true, 16: true, 64: true, 256: true}

// Range is a cuboidal sampling request. At scale 1, Y is block
// coordinates; otherwise Y is biome coordinates (1:4).
type Range struct {
	Scale      int
	X, Y, Z    int64
	SX, SY, SZ int
}

// overworldBiomeAt answers a single-point query at the given scale.
// Coordinates are already in biome (1:4) units except at scale 1, where
// they are block coordinates resolved through the Voronoi upsampler
// first.
func (g *Generator) overworldBiomeAt(scale int, x, y, z int64) biome.ID {
	s := g.overworld

	switch scale {
	case 1:
		x4, y4, z4 := voronoi.Upsample(g.sha, x, y, z)
		_, id := s.Lookup(g.tree, x4, y4, z4, 0, -1)
		return id
	case 4:
		_, id := s.Lookup(g.tree, x, y, z, 0, -1)
		return id
	default:
		// Cell-center sampling scale > 4 skips the
		// shift distortion (the documented MC-241546 accuracy
		// trade-off), so scale-4 output stays exact.
		sc := int64(scale)
		cx := x*sc/4 + sc/8
		cz := z*sc/4 + sc/8
		flags := climate.Flags(0)
		if scale > 4 {
			flags |= climate.NoShift
		}
		_, id := s.Lookup(g.tree, cx, y, cz, flags, -1)
		return id
	}
}

// GetBiomeAt dispatches to the active dimension's engine.
func (g *Generator) GetBiomeAt(scale int, x, y, z int64) (biome.ID, error) {
	if !validScales[scale] {
		return biome.None, newError(InvalidScale, "scale must be one of {1,4,16,64,256}")
	}

	switch g.Dim {
	case version.Overworld:
		if g.overworld == nil {
			return biome.None, newError(InvalidVersion, "ApplySeed was never called for the Overworld")
		}
		return g.overworldBiomeAt(scale, x, y, z), nil
	case version.Nether:
		if g.nether == nil {
			return biome.None, newError(InvalidVersion, "ApplySeed was never called for the Nether")
		}
		return g.nether.biomeAt(x, z), nil
	case version.End:
		if g.end == nil {
			return biome.None, newError(InvalidVersion, "ApplySeed was never called for the End")
		}
		return g.end.biomeAt(x, z), nil
	default:
		return biome.None, newError(InvalidVersion, "unknown dimension")
	}
}

// sourceCover bounds the scale-4 source range the Voronoi upsampler
// needs to cover a scale-1 request of size (sx, sy, sz). The exact
// count (`s.sx = ((x+sx+2)>>2) - s.x + 1`) depends on the request's
// absolute start coordinate, not just its size, because of how the
// "-2" shift interacts with floor division at different alignments;
// this is a size-only, alignment-independent upper bound, which is all
// GetMinCacheSize needs to guarantee (its buffer-size contract is an
// inequality, not an exact count).
func sourceCover(sx, sy, sz int) int {
	coverAxis := func(n int) int {
		return ((n + 3) >> 2) + 2
	}
	return coverAxis(sx) * coverAxis(sy) * coverAxis(sz)
}

// GetMinCacheSize returns the element count genBiomes needs to
// provision for a request of the given shape, including the scale-4
// source-buffer overhead when scale == 1.
func GetMinCacheSize(scale, sx, sy, sz int) (int, error) {
	if !validScales[scale] {
		return 0, newError(InvalidScale, "scale must be one of {1,4,16,64,256}")
	}
	if sy == 0 {
		sy = 1
	}
	n := sx * sy * sz
	if scale == 1 {
		n += sourceCover(sx, sy, sz)
	}
	return n, nil
}

// GenBiomes fills out (z-major, then x-minor within y planes) for r.
// out must have at least GetMinCacheSize(r...) elements.
func (g *Generator) GenBiomes(out []biome.ID, r Range) error {
	if !validScales[r.Scale] {
		return newError(InvalidScale, "scale must be one of {1,4,16,64,256}")
	}
	sy := r.SY
	if sy == 0 {
		sy = 1
	}

	need, _ := GetMinCacheSize(r.Scale, r.SX, sy, r.SZ)
	if len(out) < need {
		return newError(OutOfMemory, "output buffer smaller than GetMinCacheSize")
	}

	if g.Dim == version.Nether && g.nether != nil {
		// The Nether's noise-delta disc-fill only pays off sampling a
		// whole plane at once, and its output is y-invariant, so build
		// one plane and broadcast it across every y layer.
		plane := g.nether.mapNether3D(r.X, r.Z, r.SX, r.SZ, r.Scale)
		for iy := 0; iy < sy; iy++ {
			copy(out[iy*r.SX*r.SZ:(iy+1)*r.SX*r.SZ], plane)
		}
		return nil
	}

	for iy := 0; iy < sy; iy++ {
		y := r.Y + int64(iy)
		for iz := 0; iz < r.SZ; iz++ {
			z := r.Z + int64(iz)
			for ix := 0; ix < r.SX; ix++ {
				x := r.X + int64(ix)
				id, err := g.GetBiomeAt(r.Scale, x, y, z)
				if err != nil {
					return err
				}
				out[iy*r.SX*r.SZ+iz*r.SX+ix] = id
			}
		}
	}
	return nil
}
