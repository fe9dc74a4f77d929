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

import (
	"github.com/pkg/errors"
)

var invalidStr = "is outside the domain of the distribution"

// ErrInvalidParameter is returned when a sampler is constructed with
// parameters for which its construction is meaningless or would not
// terminate.
var ErrInvalidParameter = errors.Errorf("parameter %s", invalidStr)

// ErrInvalidSeed is returned when a generator is seeded with a value
// outside of the open interval (0, modulus).
var ErrInvalidSeed = errors.New("seed must lie strictly between 0 and the generator modulus")
