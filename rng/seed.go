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

import "time"

// Clock returns a monotonic time reading in nanoseconds. Only the
// differences between readings carry meaning.
type Clock func() int64

var clockOrigin = time.Now()

// MonotonicClock returns the nanoseconds elapsed on the monotonic clock
// since the package was initialized.
func MonotonicClock() int64 {
	return int64(time.Since(clockOrigin))
}

// Digit returns the hundreds-of-nanoseconds digit of a clock reading,
// a value in [0, 9].
func Digit(clock Clock) uint64 {
	ns := clock()
	if ns < 0 {
		ns = -ns
	}

	return uint64((ns / 100) % 10)
}

// EntropySeed builds a four-digit decimal number from four consecutive
// clock digits, thousands first. The result lies in [0, 9999].
func EntropySeed(clock Clock) uint64 {
	var n uint64
	for i := 0; i < 4; i++ {
		n = n*10 + Digit(clock)
	}

	return n
}
