// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dv

import (
	"fmt"

	"github.com/miasolak/fp-multiply/f32"
)

// Coverage tallies the operand patterns a run exercised, one histogram per
// bit field plus the derived class. It answers "did the stimulus ever reach
// this region" after a run.
type Coverage struct {
	Signs     [2]int
	Exponents [1 << 8]int
	Classes   [f32.NaN + 1]int
	Total     int
}

// Record tallies one operand.
func (c *Coverage) Record(b f32.Bits) {
	c.Signs[b.Sign()]++
	c.Exponents[b.Exponent()]++
	c.Classes[b.Classify()]++
	c.Total++
}

// ExponentsSeen returns how many distinct exponent field values occurred.
func (c *Coverage) ExponentsSeen() int {
	return effective(c.Exponents[:])
}

// ClassesSeen returns how many of the five classes occurred.
func (c *Coverage) ClassesSeen() int {
	return effective(c.Classes[:])
}

func (c *Coverage) String() string {
	return fmt.Sprintf("operands=%d exponents=%d/%d zero=%d subnormal=%d normal=%d inf=%d nan=%d",
		c.Total, c.ExponentsSeen(), len(c.Exponents),
		c.Classes[f32.Zero], c.Classes[f32.Subnormal], c.Classes[f32.Normal],
		c.Classes[f32.Infinity], c.Classes[f32.NaN])
}

// effective returns the number of non-zero buckets in a histogram.
func effective(l []int) int {
	o := 0
	for _, v := range l {
		if v != 0 {
			o++
		}
	}
	return o
}
