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

// Package rng implements the Lehmer (Park-Miller) linear congruential
// generator that drives every sampler in this module.
//
// The generator keeps a single state in the open interval (0, Modulus)
// and advances it with state = Multiplier * state mod Modulus. Each draw
// returns state / Modulus, a float64 in (0, 1). Modulus and Multiplier
// are part of the generator's contract: changing either changes every
// stream that has ever been produced from a recorded seed.
//
// A Generator is a plain mutable value and is not safe for concurrent
// use. Give each goroutine its own Generator, or guard a shared one
// with a mutex.
package rng
