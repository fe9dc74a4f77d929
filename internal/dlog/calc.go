/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package dlog computes discrete logarithms in the multiplicative
// group of integers modulo a prime below 2^32.
package dlog

import (
	"math"

	"github.com/pkg/errors"

	"github.com/mukherjeesagar/simulation-of-probabilities/internal"
)

var errNotFound = errors.New("failed to find the discrete logarithm within bound")

// bruteForceBound is the largest bound searched exponent by exponent.
const bruteForceBound = 64

// CalcZp represents a calculator for discrete logarithms
// that operates in the Zp group of integers modulo prime p.
type CalcZp struct {
	p     uint64
	bound uint64
	m     uint64
}

// InZp returns a calculator for the group modulo p with the search
// bounded by p-1. The caller guarantees p is prime.
func InZp(p uint64) (*CalcZp, error) {
	if p < 3 || p > math.MaxUint32 {
		return nil, errors.Errorf("group modulus %d must lie in [3, 2^32)", p)
	}

	return (&CalcZp{p: p}).WithBound(p - 1), nil
}

// WithBound returns a copy of c searching for exponents in [0, bound).
func (c *CalcZp) WithBound(bound uint64) *CalcZp {
	m := uint64(math.Sqrt(float64(bound))) + 1

	return &CalcZp{
		p:     c.p,
		bound: bound,
		m:     m,
	}
}

// BabyStepGiantStep returns the smallest x in [0, bound) with
// h = g^x mod p. Bounds up to bruteForceBound skip the table and try
// each exponent in turn.
func (c *CalcZp) BabyStepGiantStep(h, g uint64) (uint64, error) {
	h %= c.p
	g %= c.p
	if h == 0 || g == 0 {
		return 0, errors.Wrapf(errNotFound, "zero has no logarithm mod %d", c.p)
	}
	if c.bound <= bruteForceBound {
		return bruteForce(h, g, c.p, c.bound)
	}

	// baby steps: g^j for j < m, keeping the smallest j per value
	T := make(map[uint64]uint64, c.m)
	x := uint64(1)
	for j := uint64(0); j < c.m; j++ {
		if _, ok := T[x]; !ok {
			T[x] = j
		}
		x = x * g % c.p
	}

	// giant steps: h * g^(-m*i)
	gInv := internal.ModExp(g, c.p-2, c.p)
	z := internal.ModExp(gInv, c.m, c.p)
	x = h
	for i := uint64(0); i*c.m < c.bound; i++ {
		if j, ok := T[x]; ok {
			if e := i*c.m + j; e < c.bound {
				return e, nil
			}
			break
		}
		x = x * z % c.p
	}

	return 0, errNotFound
}

// bruteForce tries every exponent below bound in turn.
func bruteForce(h, g, p, bound uint64) (uint64, error) {
	x := uint64(1)
	for i := uint64(0); i < bound; i++ {
		if x == h%p {
			return i, nil
		}
		x = x * g % p
	}

	return 0, errNotFound
}
