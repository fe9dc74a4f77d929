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

package internal

import "math/big"

// ModExp calculates g^x mod m for unsigned operands. The product is
// carried out in big integers so that no intermediate value overflows.
func ModExp(g, x, m uint64) uint64 {
	ret := new(big.Int).Exp(
		new(big.Int).SetUint64(g),
		new(big.Int).SetUint64(x),
		new(big.Int).SetUint64(m),
	)

	return ret.Uint64()
}

// ModMul calculates a*b mod m for unsigned operands.
func ModMul(a, b, m uint64) uint64 {
	ret := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	ret.Mod(ret, new(big.Int).SetUint64(m))

	return ret.Uint64()
}
