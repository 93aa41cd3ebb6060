// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package fmul computes the bit-exact binary32 product under a restricted
// numeric model: subnormal inputs are treated as zero (DAZ), subnormal
// results are flushed to a signed zero (FTZ), and every NaN output is the
// single canonical quiet NaN.
//
// The computation is integer-only. It never touches host floating-point
// arithmetic, so the result is reproducible bit for bit on any platform.
package fmul

import "github.com/miasolak/fp-multiply/f32"

// Result is the product and the accumulated status flags of one multiply.
type Result struct {
	Y         f32.Bits
	Invalid   bool
	Overflow  bool
	Underflow bool
	Inexact   bool
}

// Mul returns the binary32 product of a and b under DAZ/FTZ with
// round-to-nearest-even. Total over all bit-pattern pairs.
func Mul(a, b f32.Bits) Result {
	o := Result{}

	// The sign rule holds for every non-NaN outcome, so compute it up front.
	s := (a.Sign() ^ b.Sign()) & 1

	// Any NaN input, by raw fraction test, wins over everything else. The
	// payload is dropped; no flag is raised.
	if a.IsNaN() || b.IsNaN() {
		o.Y = f32.QNaN
		return o
	}

	// DAZ: a subnormal operand behaves exactly like a zero of its sign.
	aEffZero := a.IsZero() || a.IsSubnormal()
	bEffZero := b.IsZero() || b.IsSubnormal()

	aInf := a.IsInf()
	bInf := b.IsInf()

	// Inf * 0 is the only invalid operation in this model.
	if (aInf && bEffZero) || (bInf && aEffZero) {
		o.Invalid = true
		o.Y = f32.QNaN
		return o
	}

	if aInf || bInf {
		o.Y = f32.PackInf(s)
		return o
	}

	if aEffZero || bEffZero {
		o.Y = f32.PackZero(s)
		return o
	}

	// Both operands are normal from here on.
	// 24-bit significands with the hidden bit, unbiased exponents.
	sigA := uint64(a.Significand())
	sigB := uint64(b.Significand())
	exp := a.Unbiased() + b.Unbiased()

	// 24x24 -> 48-bit product. The leading one is at bit 46 or 47.
	prod := sigA * sigB

	// A product in [2,4) renormalizes by one position.
	if prod&(1<<47) != 0 {
		prod >>= 1
		exp++
	}

	// Keep prod[46:23]: hidden bit plus 23 fraction bits. The discarded tail
	// splits into guard, round and sticky.
	kept := uint32(prod>>23) & 0xFFFFFF
	guard := uint32(prod>>22) & 1
	round := uint32(prod>>21) & 1
	sticky := uint32(0)
	if prod&((1<<21)-1) != 0 {
		sticky = 1
	}

	// Round to nearest, ties to even.
	lsb := kept & 1
	kept += guard & (round | sticky | lsb)

	// The increment can carry into a 25th bit: renormalize once more.
	if kept&(1<<24) != 0 {
		kept >>= 1
		exp++
	}

	if guard|round|sticky != 0 {
		o.Inexact = true
	}

	if exp > f32.ExponentBias {
		o.Overflow = true
		o.Inexact = true
		o.Y = f32.PackInf(s)
		return o
	}

	// FTZ: a result below the normal range flushes to a signed zero instead
	// of being represented subnormally.
	if exp < 1-f32.ExponentBias {
		o.Underflow = true
		o.Inexact = true
		o.Y = f32.PackZero(s)
		return o
	}

	o.Y = f32.Pack(s, uint32(exp+f32.ExponentBias), kept)
	return o
}
