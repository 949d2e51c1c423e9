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
// Package sample provides the Sampler interface along with different
// implementations of this interface, the random sources they draw
// from, and UnitNSphere, which picks uniformly distributed directions.
//
// Every sampler draws from a *rand.Rand (golang.org/x/exp/rand) handed
// over by the caller, so a sampling session is reproducible given the
// seed of its source. Samplers are not safe for concurrent use; give
// each goroutine its own source.
package sample
