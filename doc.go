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

// Package polyrun samples points from convex polytopes given by a
// system of linear constraints Ax <= b, Cx = d.
//
// The sampling engine lives in the subpackages:
//
//	constraints/ - the constraint system and its text format
//	boundary/    - extents of the feasible segment along a direction
//	transform/   - reduction of Cx = d to a full-dimensional space
//	interior/    - interior point search via an auxiliary linear program
//	walk/        - Hit-and-Run, Ball, Sphere and Grid walks
//	thinning/    - number of walk steps per emitted sample
//	runner/      - chain and neighborhood sampling over a polytope
//	solver/      - the linear program contract and a simplex adapter
//
// This package only declares the error kinds shared by all of them.
// Errors returned by the subpackages wrap one of the sentinels below,
// so callers can branch with errors.Is:
//
//	samples, err := r.Chain(hr, thinning.None(), 100)
//	if errors.Is(err, polyrun.ErrUnbounded) {
//		...
//	}
package polyrun
