// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dv drives a binary32 multiplier implementation through directed and
// randomized operand vectors and judges every output against the bit-exact
// reference in package fmul.
package dv

import (
	"github.com/miasolak/fp-multiply/f32"
	"github.com/miasolak/fp-multiply/fmul"
)

// Device is the multiplier under test, an opaque black box consumed through
// a strict drive/evaluate/read protocol: present the operands, advance the
// device through its settle steps, and only then sample the outputs. The
// harness owns the ordering; implementations only have to latch and compute.
type Device interface {
	// Drive presents the two operand bit patterns on the input ports.
	Drive(a, b f32.Bits)
	// Eval advances the device one evaluation step.
	Eval()
	// Read samples the output value and the four status flags. The sample is
	// only meaningful after the settle protocol has run.
	Read() fmul.Result
}
