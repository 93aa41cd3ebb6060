// Copyright 2025 Mia Solak. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dv

import (
	"math/rand/v2"

	"github.com/miasolak/fp-multiply/f32"
)

// pattern is one weighted outcome of the operand generator: fixed base bits
// plus a mask of bits drawn uniformly. A zero mask yields a literal pattern.
type pattern struct {
	base   f32.Bits
	random f32.Bits
	weight uint32
}

// defaultPatterns biases the draw toward the boundary and special-value
// regions a uniform 32-bit sample would rarely hit. Weights out of 12: eight
// special outcomes at 1 each, the uniform draw at 4.
var defaultPatterns = []pattern{
	{base: f32.PosZero, weight: 1},
	{base: f32.NegZero, weight: 1},
	{base: f32.PosInf, weight: 1},
	{base: f32.NegInf, weight: 1},
	{base: 0x7FC00001, weight: 1},                                        // NaN
	{random: 0x807FFFFF, weight: 1},                                      // exponent 0: zero/subnormal region
	{base: 1 << f32.ExponentOffset, random: 0x807FFFFF, weight: 1},       // exponent 1: smallest normals
	{base: 254 << f32.ExponentOffset, random: 0x807FFFFF, weight: 1},     // exponent 254: largest normals
	{random: 0xFFFFFFFF, weight: 4},                                      // uniform
}

// Generator produces operand bit patterns from a seeded deterministic source.
// The same seed always reproduces the same sequence.
type Generator struct {
	rng   *rand.Rand
	table []pattern
	total uint32
}

// NewGenerator returns a generator over the default pattern table.
func NewGenerator(seed uint64) *Generator {
	g := &Generator{
		rng:   rand.New(rand.NewPCG(seed, seed)),
		table: defaultPatterns,
	}
	for _, p := range g.table {
		g.total += p.weight
	}
	return g
}

// Next draws one operand. The uniform word is drawn before the outcome is
// selected so every outcome consumes the same amount of the stream.
func (g *Generator) Next() f32.Bits {
	raw := f32.Bits(g.rng.Uint32())
	p := &g.table[weightedIndex(g.rng, g.table, g.total)]
	return p.base | raw&p.random
}

// weightedIndex is the single weighted-choice primitive: it picks an index
// with probability weight/total.
func weightedIndex(rng *rand.Rand, table []pattern, total uint32) int {
	n := rng.Uint32N(total)
	for i := range table {
		if n < table[i].weight {
			return i
		}
		n -= table[i].weight
	}
	// Unreachable while total is the sum of the weights.
	return len(table) - 1
}
