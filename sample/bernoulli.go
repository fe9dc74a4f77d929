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

package sample

// Bernoulli samples 1 with probability p and 0 with probability 1-p.
type Bernoulli struct {
	src Source
	p   float64
}

// NewBernoulli returns an instance of the Bernoulli sampler.
func NewBernoulli(src Source, p float64) (*Bernoulli, error) {
	if err := checkProbability("bernoulli", p); err != nil {
		return nil, err
	}

	return &Bernoulli{src: src, p: p}, nil
}

// Sample draws one uniform variate U and returns 1 if U <= p.
func (b *Bernoulli) Sample() int64 {
	if b.src.Float64() <= b.p {
		return 1
	}

	return 0
}

// Binomial samples the number of successes in n independent
// Bernoulli(p) trials.
type Binomial struct {
	src Source
	n   int64
	p   float64
}

// NewBinomial returns an instance of the Binomial sampler.
func NewBinomial(src Source, n int64, p float64) (*Binomial, error) {
	if n < 0 {
		return nil, invalidParam("binomial", "number of trials n must be non-negative, got %d", n)
	}
	if err := checkProbability("binomial", p); err != nil {
		return nil, err
	}

	return &Binomial{src: src, n: n, p: p}, nil
}

// Sample consumes exactly n uniform variates.
func (b *Binomial) Sample() int64 {
	var x int64
	for i := int64(0); i < b.n; i++ {
		if b.src.Float64() <= b.p {
			x++
		}
	}

	return x
}

// Geometric samples the number of Bernoulli(p) trials needed to
// obtain the first success, counting the successful trial.
type Geometric struct {
	src Source
	p   float64
}

// NewGeometric returns an instance of the Geometric sampler.
// p = 0 would never succeed and is rejected.
func NewGeometric(src Source, p float64) (*Geometric, error) {
	if !(p > 0 && p <= 1) {
		return nil, invalidParam("geometric", "probability p must lie in (0, 1], got %v", p)
	}

	return &Geometric{src: src, p: p}, nil
}

// Sample returns a value >= 1.
func (g *Geometric) Sample() int64 {
	x := int64(1)
	for g.src.Float64() > g.p {
		x++
	}

	return x
}

// NegativeBinomial samples the number of successes among
// Bernoulli(p) trials observed before the r-th failure.
type NegativeBinomial struct {
	src Source
	r   int64
	p   float64
}

// NewNegativeBinomial returns an instance of the NegativeBinomial
// sampler. p = 1 would never produce a failure and is rejected.
func NewNegativeBinomial(src Source, r int64, p float64) (*NegativeBinomial, error) {
	if r < 1 {
		return nil, invalidParam("negative-binomial", "number of failures r must be at least 1, got %d", r)
	}
	if !(p >= 0 && p < 1) {
		return nil, invalidParam("negative-binomial", "probability p must lie in [0, 1), got %v", p)
	}

	return &NegativeBinomial{src: src, r: r, p: p}, nil
}

// Sample returns a value >= 0.
func (nb *NegativeBinomial) Sample() int64 {
	var x, failures int64
	for failures < nb.r {
		if nb.src.Float64() <= nb.p {
			x++
		} else {
			failures++
		}
	}

	return x
}
