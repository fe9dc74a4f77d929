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
	"golang.org/x/exp/rand"
)

var _ rand.Source = (*Source)(nil)

// Source adapts a Generator to the rand.Source interface used by
// golang.org/x/exp/rand and by gonum's distuv distributions, so that
// they draw from the Lehmer stream.
//
// Each Uint64 consumes three draws. The generator never yields 0 or
// Modulus, so the packed value is close to, but not exactly, uniform
// over the full 64-bit range.
type Source struct {
	g *Generator
}

// NewSource returns a Source drawing from g.
func NewSource(g *Generator) *Source {
	return &Source{g: g}
}

// Uint64 packs three consecutive 31-bit states into a 64-bit value.
func (s *Source) Uint64() uint64 {
	hi := s.g.next()
	mid := s.g.next()
	lo := s.g.next()

	return hi<<33 ^ mid<<2 ^ lo&3
}

// Seed reseeds the underlying generator. Any seed is folded into
// [1, Modulus-1] since rand.Source cannot report an invalid seed.
func (s *Source) Seed(seed uint64) {
	_ = s.g.Seed(seed%(Modulus-1) + 1)
}
