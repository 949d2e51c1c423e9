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

// Package transform reduces a system with equality constraints to a
// full-dimensional one.
//
// The solutions of Cx = d are exactly the points x = Ny + t, where the
// columns of N form an orthonormal basis of the null space of C and t is
// a particular solution. Inequalities Ax <= b then become
// (AN)y <= b - At in the lower dimensional space of y, where a random
// walk can be run. Both N and t are obtained from the singular value
// decomposition of C.
package transform
