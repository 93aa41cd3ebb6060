// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dv

import "github.com/miasolak/fp-multiply/f32"

// Case is one operand pair submitted to the device under test.
type Case struct {
	A, B f32.Bits
	// Tag labels the case in diagnostic output.
	Tag string
	// VerboseOnFail requests a full diagnostic dump if the case fails.
	VerboseOnFail bool
}

// DirectedCases returns the fixed list run before the random phase. Each one
// pins a corner of the restricted numeric model.
func DirectedCases() []Case {
	return []Case{
		{A: 0x7F800000, B: 0x00000000, Tag: "Inf*0", VerboseOnFail: true},
		{A: 0x7FC00001, B: 0x3F800000, Tag: "NaN*1", VerboseOnFail: true},
		{A: 0x00000001, B: 0x3F800000, Tag: "subnormal input DAZ", VerboseOnFail: true},
		{A: 0x00800000, B: 0x3F000000, Tag: "min_norm*0.5 => FTZ", VerboseOnFail: true},
		{A: 0x7F7FFFFF, B: 0x40000000, Tag: "max_finite*2 => overflow", VerboseOnFail: true},
	}
}
