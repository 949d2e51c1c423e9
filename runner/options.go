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

package runner

import (
	"github.com/fentec-project/polyrun/solver"
	"github.com/op/go-logging"
)

type options struct {
	remover solver.Solver
	dense   bool
	log     *logging.Logger
}

// Option configures a PolytopeRunner.
type Option func(*options)

// WithRedundancyRemoval makes the runner drop, after the reduction to
// the sampling space, every inequality implied by the others. Each
// inequality is checked with one linear program solved by s.
func WithRedundancyRemoval(s solver.Solver) Option {
	return func(o *options) {
		o.remover = s
	}
}

// WithDenseRows makes the walks iterate over all elements of the rows
// of the reduced inequalities instead of their non-zero elements only.
func WithDenseRows() Option {
	return func(o *options) {
		o.dense = true
	}
}

// WithLogger sets the logger of the runner. By default the runner logs
// to the go-logging module "runner" and leaves its backend and level to
// the host.
func WithLogger(log *logging.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
