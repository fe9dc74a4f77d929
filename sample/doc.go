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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface along with
// implementations for six discrete laws (uniform integer, Bernoulli,
// binomial, geometric, negative binomial, Poisson) and six continuous
// ones (uniform, exponential, gamma, normal, log-normal and the
// bivariate normal). Every sampler consumes uniform variates from a
// Source, normally an *rng.Generator, and returns one value per call
// to Sample. Callers that need a batch call Sample repeatedly with the
// same Source, or fill a data.Vector with NewRandomVector.
//
// Constructors validate the distribution parameters and return an
// error wrapping ErrInvalidParameter for values outside the domain of
// the distribution. Once constructed, a sampler cannot fail.
//
// Samplers hold no state besides their parameters, but they share the
// state of their Source and are therefore not safe for concurrent use.
package sample
