// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package device bundles a software multiplier implementing the dv.Device
// contract, written register-transfer style as a two-stage pipeline: decode
// and multiply into a stage register on one evaluation step, round and pack
// out of it on the next. It settles in two Eval calls.
package device

import (
	"github.com/miasolak/fp-multiply/f32"
	"github.com/miasolak/fp-multiply/fmul"
)

type kind uint8

const (
	kindNormal kind = iota
	kindNaN
	kindInvalid
	kindInf
	kindZero
)

// stage is the pipeline register between the decode and rounding stages.
type stage struct {
	kind kind
	sign uint32
	prod uint64
	exp  int
}

// FMul is the bundled binary32 DAZ/FTZ multiplier.
type FMul struct {
	a, b f32.Bits    // input ports
	st   stage       // decode -> round pipeline register
	out  fmul.Result // output register
}

// New returns a multiplier with all registers cleared.
func New() *FMul {
	return &FMul{}
}

// Drive latches the operand ports.
func (d *FMul) Drive(a, b f32.Bits) {
	d.a, d.b = a, b
}

// Eval advances both stages one step: the output register latches the result
// of the previous decode, then the decode stage samples the input ports.
func (d *FMul) Eval() {
	d.out = round(d.st)
	d.st = decode(d.a, d.b)
}

// Read samples the output register.
func (d *FMul) Read() fmul.Result {
	return d.out
}

func effZero(x f32.Bits) bool {
	c := x.Classify()
	return c == f32.Zero || c == f32.Subnormal
}

// decode classifies the operands and forms the raw 48-bit significand
// product with its provisional exponent.
func decode(a, b f32.Bits) stage {
	st := stage{sign: (a.Sign() ^ b.Sign()) & 1}
	switch {
	case a.IsNaN() || b.IsNaN():
		st.kind = kindNaN
	case (a.IsInf() && effZero(b)) || (b.IsInf() && effZero(a)):
		st.kind = kindInvalid
	case a.IsInf() || b.IsInf():
		st.kind = kindInf
	case effZero(a) || effZero(b):
		st.kind = kindZero
	default:
		st.prod = uint64(a.Significand()) * uint64(b.Significand())
		st.exp = a.Unbiased() + b.Unbiased()
	}
	return st
}

// round normalizes, rounds to nearest even and packs the stage register.
func round(st stage) fmul.Result {
	switch st.kind {
	case kindNaN:
		return fmul.Result{Y: f32.QNaN}
	case kindInvalid:
		return fmul.Result{Y: f32.QNaN, Invalid: true}
	case kindInf:
		return fmul.Result{Y: f32.PackInf(st.sign)}
	case kindZero:
		return fmul.Result{Y: f32.PackZero(st.sign)}
	}

	prod, exp := st.prod, st.exp
	if prod>>47 != 0 {
		prod >>= 1
		exp++
	}

	kept := uint32(prod>>23) & 0xFFFFFF
	residue := uint32(prod) & 0x7FFFFF // guard, round and sticky window
	guard := residue >> 22
	roundBit := (residue >> 21) & 1
	sticky := uint32(0)
	if residue&((1<<21)-1) != 0 {
		sticky = 1
	}

	kept += guard & (roundBit | sticky | kept&1)
	if kept>>24 != 0 {
		kept >>= 1
		exp++
	}

	o := fmul.Result{Inexact: residue != 0}
	switch {
	case exp > f32.ExponentBias:
		o.Overflow = true
		o.Inexact = true
		o.Y = f32.PackInf(st.sign)
	case exp < 1-f32.ExponentBias:
		o.Underflow = true
		o.Inexact = true
		o.Y = f32.PackZero(st.sign)
	default:
		o.Y = f32.Pack(st.sign, uint32(exp+f32.ExponentBias), kept)
	}
	return o
}
