// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package f32 dissects IEEE-754 binary32 bit patterns.
//
// Everything here is field extraction on a uint32. No host floating-point
// instruction is involved except Float32/FromFloat32, which exist purely for
// diagnostic display.
package f32

import "math"

const (
	// https://en.wikipedia.org/wiki/Single-precision_floating-point_format
	SignOffset     = 31
	ExponentOffset = 23
	ExponentBias   = 127

	ExponentMask = (1 << (SignOffset - ExponentOffset)) - 1 // 0xFF
	FractionMask = (1 << ExponentOffset) - 1                // 0x7FFFFF
)

// Well-known bit patterns.
const (
	PosZero Bits = 0x00000000
	NegZero Bits = 0x80000000
	PosInf  Bits = 0x7F800000
	NegInf  Bits = 0xFF800000
	// QNaN is the single canonical quiet NaN. Every computed NaN output is
	// canonicalized to this pattern; input NaN payloads are never propagated.
	QNaN Bits = 0x7FC00000
)

// Bits represents a binary32 value as its raw bit pattern.
type Bits uint32

// FromFloat32 returns the bit pattern of f.
func FromFloat32(f float32) Bits {
	return Bits(math.Float32bits(f))
}

// Components returns the sign, exponent and fraction bits separated.
func (b Bits) Components() (uint32, uint32, uint32) {
	return b.Sign(), b.Exponent(), b.Fraction()
}

// Sign returns the sign bit, 0 or 1.
func (b Bits) Sign() uint32 {
	return uint32(b >> SignOffset)
}

// Exponent returns the biased 8-bit exponent field.
func (b Bits) Exponent() uint32 {
	return uint32(b>>ExponentOffset) & ExponentMask
}

// Fraction returns the 23-bit fraction field.
func (b Bits) Fraction() uint32 {
	return uint32(b) & FractionMask
}

// Unbiased returns the unbiased exponent. Zero and subnormal patterns report
// -126, the exponent their fraction is scaled by.
func (b Bits) Unbiased() int {
	e := b.Exponent()
	if e == 0 {
		return 1 - ExponentBias
	}
	return int(e) - ExponentBias
}

// Significand returns the integer significand: the fraction with the hidden
// bit set for normal (and exponent-all-ones) patterns.
func (b Bits) Significand() uint32 {
	if b.Exponent() == 0 {
		return b.Fraction()
	}
	return (1 << ExponentOffset) | b.Fraction()
}

// Class is the IEEE-754 class of a bit pattern.
type Class int

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinity
	NaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinity:
		return "inf"
	case NaN:
		return "nan"
	}
	return "invalid"
}

// Classify returns the class of the pattern. Pure field test, no hidden
// state.
func (b Bits) Classify() Class {
	switch e, f := b.Exponent(), b.Fraction(); {
	case e == ExponentMask && f != 0:
		return NaN
	case e == ExponentMask:
		return Infinity
	case e == 0 && f == 0:
		return Zero
	case e == 0:
		return Subnormal
	}
	return Normal
}

func (b Bits) IsZero() bool      { return b.Classify() == Zero }
func (b Bits) IsSubnormal() bool { return b.Classify() == Subnormal }
func (b Bits) IsNormal() bool    { return b.Classify() == Normal }
func (b Bits) IsInf() bool       { return b.Classify() == Infinity }
func (b Bits) IsNaN() bool       { return b.Classify() == NaN }

// Pack assembles a pattern from a sign bit, a biased exponent field and a
// fraction field. Out of range inputs are masked to their field width.
func Pack(sign, exponent, fraction uint32) Bits {
	return Bits((sign&1)<<SignOffset |
		(exponent&ExponentMask)<<ExponentOffset |
		fraction&FractionMask)
}

// PackZero returns a zero with the given sign bit.
func PackZero(sign uint32) Bits {
	return Bits(sign&1) << SignOffset
}

// PackInf returns an infinity with the given sign bit.
func PackInf(sign uint32) Bits {
	return Bits(sign&1)<<SignOffset | PosInf
}

// Float32 returns the native float32 with this bit pattern. Display only;
// callers must not feed it back into any computation that is compared
// bit-exactly.
func (b Bits) Float32() float32 {
	return math.Float32frombits(uint32(b))
}
