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

package config

import (
	"github.com/fentec-project/polyrun/logger"
	"github.com/urfave/cli/v2"
)

var (
	InputFlag = cli.PathFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage: "constraints file, one '<a_1> ... <a_n> <type> <rhs>' per line with " +
			"<type> one of '<=', '>=', '='; standard input is read if omitted",
	}
	SeedFlag = cli.Uint64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "seed of the random generator (default: time-based)",
	}
	KeyFlag = cli.StringFlag{
		Name: "key",
		Usage: "32 byte key in hex; if set, random values are read from its salsa20 keystream " +
			"starting at the block given by --seed",
	}
	SamplesFlag = cli.IntFlag{
		Name:    "samples",
		Aliases: []string{"n"},
		Usage:   "number of samples",
		Value:   1000,
	}
	ThinningFlag = cli.StringFlag{
		Name:    "thinning",
		Aliases: []string{"t"},
		Usage: "thinning function <symbol>:<parameter> with symbol tfc (a), tfl (ceil(a*n^3)), " +
			"tfg (ceil(a*log(n+1)*n^3)) or tfm (ceil(a*m*n))",
		Value: "tfl:1",
	}
	WalkFlag = cli.StringFlag{
		Name:    "walk",
		Aliases: []string{"w"},
		Usage:   "random walk: \"hitandrun\", \"ball\", \"sphere\" or \"grid\"",
		Value:   HitAndRun,
	}
	RadiusFlag = cli.Float64Flag{
		Name:  "radius",
		Usage: "radius of the ball and sphere walks",
		Value: 1,
	}
	SpacingFlag = cli.Float64Flag{
		Name:  "spacing",
		Usage: "spacing of the grid walk",
		Value: 1,
	}
	OutOfBoundsFlag = cli.StringFlag{
		Name:  "out-of-bounds",
		Usage: "what the ball and sphere walks do with a step leaving the polytope: \"stay\" or \"crop\"",
		Value: "stay",
	}
	RandomizeStartFlag = cli.BoolFlag{
		Name:  "randomize-start",
		Usage: "start the chain from a randomized interior point",
	}
	RemoveRedundantFlag = cli.BoolFlag{
		Name:  "remove-redundant",
		Usage: "remove redundant constraints before sampling",
	}
	SummaryFlag = cli.BoolFlag{
		Name:  "summary",
		Usage: "print a per-variable summary table instead of the samples",
	}
)

// Flags lists every flag read by NewConfig.
var Flags = []cli.Flag{
	&InputFlag,
	&SeedFlag,
	&KeyFlag,
	&SamplesFlag,
	&ThinningFlag,
	&WalkFlag,
	&RadiusFlag,
	&SpacingFlag,
	&OutOfBoundsFlag,
	&RandomizeStartFlag,
	&RemoveRedundantFlag,
	&SummaryFlag,
	&logger.LogLevelFlag,
}
