// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package rng

import "testing"

func TestLCGDeterministic(t *testing.T) {
	a := NewLCG(12345)
	b := NewLCG(12345)

	for i := 0; i < 100; i++ {
		if av, bv := a.NextLong(), b.NextLong(); av != bv {
			t.Fatalf("step %d: diverged %d != %d", i, av, bv)
		}
	}
}

func TestLCGNextIntPowerOfTwoRange(t *testing.T) {
	r := NewLCG(1)
	for i := 0; i < 1000; i++ {
		v := r.NextInt(256)
		if v < 0 || v >= 256 {
			t.Fatalf("NextInt(256) out of range: %d", v)
		}
	}
}

func TestLCGNextIntNonPowerOfTwoRange(t *testing.T) {
	r := NewLCG(2)
	for i := 0; i < 1000; i++ {
		v := r.NextInt(37)
		if v < 0 || v >= 37 {
			t.Fatalf("NextInt(37) out of range: %d", v)
		}
	}
}

func TestLCGSkipMatchesRepeatedNext(t *testing.T) {
	const n = 257
	stepped := NewLCG(98765)
	for i := 0; i < n; i++ {
		stepped.next(31)
	}

	skipped := NewLCG(98765)
	skipped.Skip(n)

	if stepped.State() != skipped.State() {
		t.Fatalf("Skip(%d) state %d != repeated-next state %d", n, skipped.State(), stepped.State())
	}
}

func TestLCGSkipZeroIsNoop(t *testing.T) {
	r := NewLCG(42)
	state := r.State()
	r.Skip(0)
	if r.State() != state {
		t.Fatalf("Skip(0) changed state: %d != %d", r.State(), state)
	}
}

func TestWithStateRoundTrip(t *testing.T) {
	r := NewLCG(7)
	r.next(31)
	r2 := WithState(r.State())
	if r.NextLong() != r2.NextLong() {
		t.Fatal("WithState did not reproduce continuation")
	}
}
