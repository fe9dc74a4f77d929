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

package rng

import (
	"github.com/pkg/errors"

	"github.com/mukherjeesagar/simulation-of-probabilities/internal"
	"github.com/mukherjeesagar/simulation-of-probabilities/internal/logging"
)

const (
	// Modulus is the Mersenne prime 2^31 - 1.
	Modulus uint64 = 1<<31 - 1
	// Multiplier is 7^5.
	Multiplier uint64 = 16807
)

// ErrInvalidSeed is returned when an explicit seed is 0 or not smaller
// than Modulus. A zero state is absorbing and would yield 0 forever.
var ErrInvalidSeed = internal.ErrInvalidSeed

var logger = logging.GetLogger("rng")

// Generator produces an infinite stream of uniform variates in (0, 1).
// The zero value is not usable; construct one with New, NewWithClock
// or NewWithSeed.
type Generator struct {
	state uint64
}

// New returns a Generator seeded from the monotonic clock.
func New() *Generator {
	return NewWithClock(MonotonicClock)
}

// NewWithClock returns a Generator seeded from the provided clock.
func NewWithClock(clock Clock) *Generator {
	g := &Generator{state: 1}
	g.SeedFromEntropy(clock)

	return g
}

// NewWithSeed returns a Generator whose state is set to seed.
// It returns an error if seed is not in (0, Modulus).
func NewWithSeed(seed uint64) (*Generator, error) {
	g := &Generator{state: 1}
	if err := g.Seed(seed); err != nil {
		return nil, err
	}

	return g, nil
}

// Seed sets the state of the generator to seed. Two generators seeded
// with the same value produce identical streams.
func (g *Generator) Seed(seed uint64) error {
	if seed == 0 || seed >= Modulus {
		return errors.Wrapf(ErrInvalidSeed, "got %d", seed)
	}
	g.state = seed
	logger.Debug("seeded generator", "seed", seed, "source", "explicit")

	return nil
}

// SeedFromEntropy reseeds the generator with a four-digit value read
// from clock and returns the seed used. A reading of 0000 would leave
// the generator in its absorbing state, so the clock is read again
// until the digits are not all zero.
func (g *Generator) SeedFromEntropy(clock Clock) uint64 {
	seed := EntropySeed(clock)
	for seed == 0 {
		seed = EntropySeed(clock)
	}
	g.state = seed
	logger.Debug("seeded generator", "seed", seed, "source", "entropy")

	return seed
}

// State returns the current state. Passing it to Seed restores the
// stream to this point.
func (g *Generator) State() uint64 {
	return g.state
}

// Float64 advances the generator and returns state / Modulus.
// The result is never 0 and at most (Modulus-1)/Modulus.
func (g *Generator) Float64() float64 {
	return float64(g.next()) / float64(Modulus)
}

// Skip advances the generator by n draws without producing them.
// It is equivalent to calling Float64 n times.
func (g *Generator) Skip(n uint64) {
	g.state = internal.ModMul(internal.ModExp(Multiplier, n, Modulus), g.state, Modulus)
}

// next advances the generator and returns the raw state.
func (g *Generator) next() uint64 {
	g.state = (Multiplier * g.state) % Modulus

	return g.state
}
