// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise implements gradient (Perlin/Simplex) noise, fixed
// octave chains, and Double-Perlin stacks. A third-party Perlin library
// (aquilax/go-perlin) has its own permutation and gradient conventions
// that would not reproduce the Java reference's exact bit layout, so
// this package hand-rolls the gradient table and permutation shuffle
// instead, following the same small-struct-per-primitive shape as the
// ambient terrain/noise wrapper this codebase otherwise uses — one
// struct per noise primitive, seeded once and sampled many times.
package noise

import "math"

// Perlin is a 3-D gradient noise layer: a permutation of 0..255 (plus
// the wrap-free duplicate entry 256), three fractional seed offsets,
// and the amplitude/lacunarity an octave chain assigns it.
type Perlin struct {
	d          [257]uint8
	a, b, c    float64
	Amplitude  float64
	Lacunarity float64
}

// seedPerlin fills the permutation and offsets from two callbacks so
// the legacy-LCG and Xoroshiro seeding paths (which draw doubles and
// bounded ints in an identical sequence from different streams) share
// one implementation.
func seedPerlin(nextDouble func() float64, nextInt func(n int32) int32) Perlin {
	var p Perlin
	p.a = nextDouble() * 256
	p.b = nextDouble() * 256
	p.c = nextDouble() * 256
	p.Amplitude = 1
	p.Lacunarity = 1

	for i := 0; i < 256; i++ {
		p.d[i] = uint8(i)
	}
	for i := 0; i < 256; i++ {
		j := int(nextInt(int32(256 - i)))
		p.d[i], p.d[i+j] = p.d[i+j], p.d[i]
	}
	p.d[256] = p.d[0]
	return p
}

// LegacyRand is the slice of java.util.Random-compatible methods Perlin
// seeding needs from the legacy LCG.
type LegacyRand interface {
	NextDouble() float64
	NextInt(n int32) int32
}

// XoroshiroRand is the slice of methods Perlin seeding needs from the
// xoroshiro128++ stream.
type XoroshiroRand interface {
	NextDouble() float64
	NextInt(n uint32) uint32
}

// SeedLegacy seeds a Perlin layer from the 48-bit legacy LCG.
func SeedLegacy(r LegacyRand) Perlin {
	return seedPerlin(r.NextDouble, r.NextInt)
}

// SeedXoroshiro seeds a Perlin layer from the 128-bit xoroshiro128++
// stream.
func SeedXoroshiro(r XoroshiroRand) Perlin {
	return seedPerlin(r.NextDouble, func(n int32) int32 { return int32(r.NextInt(uint32(n))) })
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad is Ken Perlin's canonical improved-noise gradient function: 12
// edge directions of a cube extended to 16 by duplicating four, selected
// by the low 4 bits of hash.
func grad(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	var u float64
	if h < 8 {
		u = x
	} else {
		u = y
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// maintainPrecision is a deliberate no-op: the reference once subtracted
// round(x/2^25)*2^25 to fight float drift over huge coordinates. The
// production generator disables that clamp, and require
// this implementation not to reintroduce it.
func maintainPrecision(x float64) float64 {
	return x
}

// Sample evaluates the noise field at (x, y, z). When yAmp is non-zero,
// the caller wants the Y-amplitude clamp quirk from step 4
// (exercised by certain ocean-floor stacks); yMin bounds it.
func (p *Perlin) Sample(x, y, z, yAmp, yMin float64) float64 {
	x = maintainPrecision(x + p.a)
	y = maintainPrecision(y + p.b)
	z = maintainPrecision(z + p.c)

	xf := math.Floor(x)
	yf := math.Floor(y)
	zf := math.Floor(z)
	X := int(xf) & 0xff
	Y := int(yf) & 0xff
	Z := int(zf) & 0xff

	fx := x - xf
	fy := y - yf
	fz := z - zf

	u := fade(fx)

	if yAmp != 0 {
		fy = fy - math.Floor(math.Min(yMin, fy)/yAmp)*yAmp
	}
	v := fade(fy)
	w := fade(fz)

	A := int(p.d[X]) + Y
	AA := int(p.d[A&0xff]) + Z
	AB := int(p.d[(A+1)&0xff]) + Z
	B := int(p.d[(X+1)&0xff]) + Y // the mask wraps X==255 to 0, so d[256] is not read here
	BA := int(p.d[B&0xff]) + Z
	BB := int(p.d[(B+1)&0xff]) + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.d[AA&0xff], fx, fy, fz), grad(p.d[BA&0xff], fx-1, fy, fz)),
			lerp(u, grad(p.d[AB&0xff], fx, fy-1, fz), grad(p.d[BB&0xff], fx-1, fy-1, fz)),
		),
		lerp(v,
			lerp(u, grad(p.d[(AA+1)&0xff], fx, fy, fz-1), grad(p.d[(BA+1)&0xff], fx-1, fy, fz-1)),
			lerp(u, grad(p.d[(AB+1)&0xff], fx, fy-1, fz-1), grad(p.d[(BB+1)&0xff], fx-1, fy-1, fz-1)),
		),
	)
}

// Sample3 is Sample with the Y-amplitude clamp disabled.
func (p *Perlin) Sample3(x, y, z float64) float64 {
	return p.Sample(x, y, z, 0, 0)
}
