// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dv

import (
	"fmt"
	"io"

	"golang.org/x/xerrors"

	"github.com/miasolak/fp-multiply/f32"
	"github.com/miasolak/fp-multiply/fmul"
)

// Tracer records one sample of the device ports per evaluation step. The
// step counter is monotonically increasing across the whole run.
type Tracer interface {
	Sample(step uint64, a, b f32.Bits, out fmul.Result)
}

// VCD identifier codes for the traced wires.
const (
	vcdIDA         = "!"
	vcdIDB         = "\""
	vcdIDY         = "#"
	vcdIDInvalid   = "$"
	vcdIDOverflow  = "%"
	vcdIDUnderflow = "&"
	vcdIDInexact   = "'"
)

// VCD writes an append-only value-change-dump trace of the device ports. A
// write error sticks and silences further output; check Err after the run.
type VCD struct {
	w     io.Writer
	err   error
	first bool

	prevA, prevB f32.Bits
	prev         fmul.Result
}

// NewVCD writes the trace header and returns the tracer.
func NewVCD(w io.Writer) *VCD {
	v := &VCD{w: w, first: true}
	v.writef("$timescale 1ns $end\n")
	v.writef("$scope module fmul $end\n")
	v.writef("$var wire 32 %s a [31:0] $end\n", vcdIDA)
	v.writef("$var wire 32 %s b [31:0] $end\n", vcdIDB)
	v.writef("$var wire 32 %s y [31:0] $end\n", vcdIDY)
	v.writef("$var wire 1 %s invalid $end\n", vcdIDInvalid)
	v.writef("$var wire 1 %s overflow $end\n", vcdIDOverflow)
	v.writef("$var wire 1 %s underflow $end\n", vcdIDUnderflow)
	v.writef("$var wire 1 %s inexact $end\n", vcdIDInexact)
	v.writef("$upscope $end\n")
	v.writef("$enddefinitions $end\n")
	return v
}

// Sample implements Tracer. Only wires that changed since the previous step
// are dumped, except for the first sample which dumps everything.
func (v *VCD) Sample(step uint64, a, b f32.Bits, out fmul.Result) {
	if v.err != nil {
		return
	}
	v.writef("#%d\n", step)
	if v.first || a != v.prevA {
		v.vector(vcdIDA, a)
	}
	if v.first || b != v.prevB {
		v.vector(vcdIDB, b)
	}
	if v.first || out.Y != v.prev.Y {
		v.vector(vcdIDY, out.Y)
	}
	if v.first || out.Invalid != v.prev.Invalid {
		v.scalar(vcdIDInvalid, out.Invalid)
	}
	if v.first || out.Overflow != v.prev.Overflow {
		v.scalar(vcdIDOverflow, out.Overflow)
	}
	if v.first || out.Underflow != v.prev.Underflow {
		v.scalar(vcdIDUnderflow, out.Underflow)
	}
	if v.first || out.Inexact != v.prev.Inexact {
		v.scalar(vcdIDInexact, out.Inexact)
	}
	v.prevA, v.prevB, v.prev = a, b, out
	v.first = false
}

// Err returns the first write error, if any.
func (v *VCD) Err() error {
	return v.err
}

func (v *VCD) vector(id string, b f32.Bits) {
	v.writef("b%b %s\n", uint32(b), id)
}

func (v *VCD) scalar(id string, b bool) {
	v.writef("%d%s\n", b2i(b), id)
}

func (v *VCD) writef(format string, args ...any) {
	if v.err != nil {
		return
	}
	if _, err := fmt.Fprintf(v.w, format, args...); err != nil {
		v.err = xerrors.Errorf("vcd write: %w", err)
	}
}
