// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dv

import (
	"fmt"
	"io"

	"github.com/miasolak/fp-multiply/f32"
	"github.com/miasolak/fp-multiply/fmul"
)

const rule = "====================================================================================================="

// Reporter renders structured per-case and summary records to a sink.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Case dumps one full case record: both operands, the device observation and
// the reference result with their flags side by side.
func (r *Reporter) Case(ok bool, tc Case, dut, ref fmul.Result) {
	status := "FAIL"
	if ok {
		status = "PASS"
	}
	fmt.Fprintf(r.w, "\n======================== %s [%s] ========================\n", status, tc.Tag)
	r.operand("a", tc.A)
	r.operand("b", tc.B)
	fmt.Fprintf(r.w, "\n ----------------------- DUT -----------------------\n")
	r.operand("y", dut.Y)
	r.flags(dut)
	fmt.Fprintf(r.w, "\n ----------------------- REF -----------------------\n")
	r.operand("y", ref.Y)
	r.flags(ref)
	fmt.Fprintln(r.w, rule)
}

// operand renders one bit pattern: raw bits, decoded value or class, the
// three fields, and the unbiased exponent and integer significand.
func (r *Reporter) operand(label string, b f32.Bits) {
	sign, exponent, fraction := b.Components()
	var value string
	switch b.Classify() {
	case f32.NaN:
		value = "NaN"
	case f32.Infinity:
		if sign != 0 {
			value = "-Inf"
		} else {
			value = "+Inf"
		}
	default:
		value = fmt.Sprintf("%+.20e", b.Float32())
	}
	fmt.Fprintf(r.w, "  %-8s : 0x%08X  %-28s | s=%d e=0x%02X f=0x%06X | %-9s ue=%4d sig=0x%06X\n",
		label, uint32(b), value, sign, exponent, fraction,
		b.Classify(), b.Unbiased(), b.Significand())
}

func (r *Reporter) flags(o fmul.Result) {
	fmt.Fprintf(r.w, "  flags    : invalid=%d overflow=%d underflow=%d inexact=%d\n",
		b2i(o.Invalid), b2i(o.Overflow), b2i(o.Underflow), b2i(o.Inexact))
}

// Note appends an informational line to the last record.
func (r *Reporter) Note(msg string) {
	fmt.Fprintf(r.w, "NOTE: %s\n", msg)
}

// Summary renders the final tally block.
func (r *Reporter) Summary(stats Stats, checkFlags bool) {
	mode := "DISABLED"
	if checkFlags {
		mode = "ENABLED"
	}
	fmt.Fprintf(r.w, "\n%s\n", rule)
	fmt.Fprintf(r.w, "Tests run : %d\n", stats.TestsRun)
	fmt.Fprintf(r.w, "Failures  : %d\n", stats.Failures)
	fmt.Fprintf(r.w, "Flag check: %s\n", mode)
	fmt.Fprintln(r.w, rule)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
