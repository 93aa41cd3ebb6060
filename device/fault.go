// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package device

import (
	"github.com/miasolak/fp-multiply/dv"
	"github.com/miasolak/fp-multiply/f32"
	"github.com/miasolak/fp-multiply/fmul"
)

// FlipY injects a value fault: the inner device's output is XORed with Mask.
// Used to exercise the harness failure paths.
type FlipY struct {
	Inner dv.Device
	Mask  f32.Bits
}

func (f *FlipY) Drive(a, b f32.Bits) { f.Inner.Drive(a, b) }
func (f *FlipY) Eval()               { f.Inner.Eval() }

func (f *FlipY) Read() fmul.Result {
	r := f.Inner.Read()
	r.Y ^= f.Mask
	return r
}

// StuckInexact injects a flag fault: the inexact status output is stuck
// high. Only visible to the harness when flag checking is enabled.
type StuckInexact struct {
	Inner dv.Device
}

func (s *StuckInexact) Drive(a, b f32.Bits) { s.Inner.Drive(a, b) }
func (s *StuckInexact) Eval()               { s.Inner.Eval() }

func (s *StuckInexact) Read() fmul.Result {
	r := s.Inner.Read()
	r.Inexact = true
	return r
}
