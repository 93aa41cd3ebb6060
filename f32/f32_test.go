// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package f32_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/miasolak/fp-multiply/f32"
)

func TestComponents(t *testing.T) {
	data := []struct {
		v        uint32
		sign     uint32
		exponent uint32
		fraction uint32
	}{
		{0x00000000, 0, 0x00, 0},
		{0x80000000, 1, 0x00, 0},
		{0x3F800000, 0, 0x7F, 0},
		{0xC0000000, 1, 0x80, 0},
		{0x7F800000, 0, 0xFF, 0},
		{0xFF800000, 1, 0xFF, 0},
		{0x7FC00000, 0, 0xFF, 0x400000},
		{0x00000001, 0, 0x00, 1},
		{0x807FFFFF, 1, 0x00, 0x7FFFFF},
		{0x40490FDB, 0, 0x80, 0x490FDB},
	}
	for i, line := range data {
		t.Run(fmt.Sprintf("#%d: 0x%08X", i, line.v), func(t *testing.T) {
			b := f32.Bits(line.v)
			sign, exponent, fraction := b.Components()
			if sign != line.sign {
				t.Errorf("sign: want=%d  got=%d", line.sign, sign)
			}
			if exponent != line.exponent {
				t.Errorf("exponent: want=%#x  got=%#x", line.exponent, exponent)
			}
			if fraction != line.fraction {
				t.Errorf("fraction: want=%#x  got=%#x", line.fraction, fraction)
			}
			if got := f32.Pack(sign, exponent, fraction); got != b {
				t.Errorf("pack round trip: want=%#x  got=%#x", b, got)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	data := []struct {
		v    uint32
		want f32.Class
	}{
		{0x00000000, f32.Zero},
		{0x80000000, f32.Zero},
		{0x00000001, f32.Subnormal},
		{0x807FFFFF, f32.Subnormal},
		{0x00800000, f32.Normal},
		{0x3F800000, f32.Normal},
		{0x7F7FFFFF, f32.Normal},
		{0x7F800000, f32.Infinity},
		{0xFF800000, f32.Infinity},
		{0x7F800001, f32.NaN},
		{0x7FC00000, f32.NaN},
		{0xFFFFFFFF, f32.NaN},
	}
	for i, line := range data {
		t.Run(fmt.Sprintf("#%d: 0x%08X", i, line.v), func(t *testing.T) {
			b := f32.Bits(line.v)
			if got := b.Classify(); got != line.want {
				t.Errorf("want=%s  got=%s", line.want, got)
			}
			// Classification is a pure function of the pattern.
			if got := b.Classify(); got != line.want {
				t.Errorf("second call: want=%s  got=%s", line.want, got)
			}
		})
	}
}

func TestFloat32SpotCheck(t *testing.T) {
	// Spot check a few values to not take any chance from:
	// https://en.wikipedia.org/wiki/Single-precision_floating-point_format#Notable_single-precision_cases
	data := []struct {
		v    uint32
		want float64
	}{
		{0x00000000, 0.},
		{0x80000000, math.Copysign(0, -1)},
		{0x3F800000, 1.},
		{0xC0000000, -2.},
		{0x3F000000, 0.5},
		{0x7F800000, math.Inf(0)},
		{0xFF800000, math.Inf(-1)},
	}
	for i, line := range data {
		t.Run(fmt.Sprintf("#%d: %g", i, line.want), func(t *testing.T) {
			got := float64(f32.Bits(line.v).Float32())
			if got != line.want {
				t.Errorf("want=%g got=%g", line.want, got)
			}
			if round := f32.FromFloat32(f32.Bits(line.v).Float32()); round != f32.Bits(line.v) {
				t.Errorf("bits round trip: want=%#x got=%#x", line.v, round)
			}
		})
	}
}

func TestUnbiasedSignificand(t *testing.T) {
	data := []struct {
		v           uint32
		unbiased    int
		significand uint32
	}{
		{0x3F800000, 0, 1 << 23},
		{0x40000000, 1, 1 << 23},
		{0x00800000, -126, 1 << 23},
		{0x7F7FFFFF, 127, 0xFFFFFF},
		// Zero and subnormal report the subnormal scale exponent.
		{0x00000000, -126, 0},
		{0x00000001, -126, 1},
	}
	for i, line := range data {
		t.Run(fmt.Sprintf("#%d: 0x%08X", i, line.v), func(t *testing.T) {
			b := f32.Bits(line.v)
			if got := b.Unbiased(); got != line.unbiased {
				t.Errorf("unbiased: want=%d got=%d", line.unbiased, got)
			}
			if got := b.Significand(); got != line.significand {
				t.Errorf("significand: want=%#x got=%#x", line.significand, got)
			}
		})
	}
}

func TestPackHelpers(t *testing.T) {
	if got := f32.PackZero(0); got != f32.PosZero {
		t.Errorf("PackZero(0) = %#x", got)
	}
	if got := f32.PackZero(1); got != f32.NegZero {
		t.Errorf("PackZero(1) = %#x", got)
	}
	if got := f32.PackInf(0); got != f32.PosInf {
		t.Errorf("PackInf(0) = %#x", got)
	}
	if got := f32.PackInf(1); got != f32.NegInf {
		t.Errorf("PackInf(1) = %#x", got)
	}
	if !f32.QNaN.IsNaN() {
		t.Error("QNaN must classify NaN")
	}
	if f32.QNaN.Sign() != 0 || f32.QNaN.Fraction() != 0x400000 {
		t.Errorf("canonical qNaN fields: %#x", uint32(f32.QNaN))
	}
}
