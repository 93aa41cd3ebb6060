// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package device_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miasolak/fp-multiply/device"
	"github.com/miasolak/fp-multiply/dv"
	"github.com/miasolak/fp-multiply/f32"
	"github.com/miasolak/fp-multiply/fmul"
)

// settle runs the drive/evaluate/read protocol on a device.
func settle(d dv.Device, a, b f32.Bits) fmul.Result {
	d.Drive(a, b)
	d.Eval()
	d.Eval()
	return d.Read()
}

func TestFMulSettlesInTwoEvals(t *testing.T) {
	d := device.New()
	want := fmul.Mul(0x40000000, 0x40400000) // 2 * 3

	d.Drive(0x40000000, 0x40400000)
	d.Eval()
	require.NotEqual(t, want, d.Read(), "pipeline output must still be stale after one step")
	d.Eval()
	require.Equal(t, want, d.Read())
	// Extra steps with held inputs keep the output stable.
	d.Eval()
	require.Equal(t, want, d.Read())
}

func TestFMulDirected(t *testing.T) {
	d := device.New()
	for _, tc := range dv.DirectedCases() {
		t.Run(tc.Tag, func(t *testing.T) {
			require.Equal(t, fmul.Mul(tc.A, tc.B), settle(d, tc.A, tc.B))
		})
	}
}

func TestFMulMatchesReference(t *testing.T) {
	d := device.New()
	gen := dv.NewGenerator(0xC001D00D)
	for i := 0; i < 50000; i++ {
		a, b := gen.Next(), gen.Next()
		got := settle(d, a, b)
		want := fmul.Mul(a, b)
		if got != want {
			t.Fatalf("pair %d: FMul(%#08x, %#08x) = %+v, reference %+v",
				i, uint32(a), uint32(b), got, want)
		}
	}
}

func TestFlipY(t *testing.T) {
	d := &device.FlipY{Inner: device.New(), Mask: 0x00000001}
	got := settle(d, 0x40000000, 0x40400000)
	want := fmul.Mul(0x40000000, 0x40400000)
	require.Equal(t, want.Y^1, got.Y)
	require.Equal(t, want.Inexact, got.Inexact)
}

func TestStuckInexact(t *testing.T) {
	d := &device.StuckInexact{Inner: device.New()}
	got := settle(d, 0x3F800000, 0x3F800000) // 1 * 1 is exact
	require.Equal(t, fmul.Mul(0x3F800000, 0x3F800000).Y, got.Y)
	require.True(t, got.Inexact)
}
