// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "math"

const (
	simplexF2 = 0.3660254037844386  // (sqrt(3)-1)/2
	simplexG2 = 0.21132486540518713 // (3-sqrt(3))/6
)

// Sample2D evaluates 2-D simplex noise at (x, z) against p's permutation
// table, reusing the 3-D gradient table projected onto the XZ plane.
// The result is intentionally unnormalized: the End engine compares it
// directly against raw thresholds (40, 0, -20).
func Sample2D(p *Perlin, x, z float64) float64 {
	s := (x + z) * simplexF2
	i := math.Floor(x + s)
	j := math.Floor(z + s)

	t := (i + j) * simplexG2
	x0c := i - t
	y0c := j - t
	x0 := x - x0c
	y0 := z - y0c

	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - i1 + simplexG2
	y1 := y0 - j1 + simplexG2
	x2 := x0 - 1 + 2*simplexG2
	y2 := y0 - 1 + 2*simplexG2

	ii := int(i) & 0xff
	jj := int(j) & 0xff

	gi0 := p.d[(ii+int(p.d[jj]))&0xff]
	gi1 := p.d[(ii+int(i1)+int(p.d[(jj+int(j1))&0xff]))&0xff]
	gi2 := p.d[(ii+1+int(p.d[(jj+1)&0xff]))&0xff]

	n0 := cornerContribution(x0, y0, gi0)
	n1 := cornerContribution(x1, y1, gi1)
	n2 := cornerContribution(x2, y2, gi2)

	return 70 * (n0 + n1 + n2)
}

func cornerContribution(x, y float64, gi uint8) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * grad(gi, x, y, 0)
}
