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
	"github.com/mukherjeesagar/simulation-of-probabilities/internal/dlog"
)

// Distance returns the number of draws that take a generator in state
// from to state to, the inverse of Skip. Multiplier generates the whole
// group modulo Modulus, so the result is unique in [0, Modulus-1).
func Distance(from, to uint64) (uint64, error) {
	for _, s := range []uint64{from, to} {
		if s == 0 || s >= Modulus {
			return 0, errors.Wrapf(ErrInvalidSeed, "state %d", s)
		}
	}

	calc, err := dlog.InZp(Modulus)
	if err != nil {
		return 0, err
	}
	// to = Multiplier^n * from, so Multiplier^n = to * from^-1
	fromInv := internal.ModExp(from, Modulus-2, Modulus)
	n, err := calc.BabyStepGiantStep(internal.ModMul(to, fromInv, Modulus), Multiplier)
	if err != nil {
		return 0, errors.Wrapf(err, "distance from %d to %d", from, to)
	}
	logger.Debug("computed stream distance", "from", from, "to", to, "draws", n)

	return n, nil
}
