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

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/fentec-project/polyrun/config"
	"github.com/fentec-project/polyrun/constraints"
	"github.com/fentec-project/polyrun/data"
	"github.com/fentec-project/polyrun/logger"
	"github.com/fentec-project/polyrun/runner"
	"github.com/fentec-project/polyrun/solver"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}

	return runSampling(cfg, ctx.App.Reader, ctx.App.Writer)
}

// runSampling reads the constraints named by cfg (or in, when no input
// file is given) and writes the samples, or their summary, to out.
func runSampling(cfg *config.Config, in io.Reader, out io.Writer) error {
	log := logger.NewLogger(cfg.LogLevel, "polyrun")

	sys, err := readSystem(cfg.Input, in)
	if err != nil {
		return err
	}
	log.Infof("read %d inequalities and %d equalities over %d variables",
		sys.NumInequalities(), sys.NumEqualities(), sys.NumVariables())

	rnd := cfg.NewRand()
	w, err := cfg.NewWalk(rnd)
	if err != nil {
		return err
	}

	lp := solver.NewSimplex(solver.DefaultTolerance)
	opts := []runner.Option{runner.WithLogger(log)}
	if cfg.RemoveRedundant {
		opts = append(opts, runner.WithRedundancyRemoval(lp))
	}
	s := runner.NewSamplerRunner(w, cfg.Thinning, lp, rnd, opts...)

	buf := bufio.NewWriter(out)
	var sum *summary
	consumer := func(x data.Vector) error {
		_, err := fmt.Fprintln(buf, x.String())
		return err
	}
	if cfg.Summary {
		sum = newSummary(sys.NumVariables())
		consumer = sum.add
	}

	log.Infof("sampling %d points with the %s walk (seed %d, keyed %t)", cfg.Samples, cfg.Walk, cfg.Seed, cfg.Key != nil)
	start := time.Now()
	if err := s.SampleTo(sys, cfg.Samples, cfg.RandomizeStart, consumer); err != nil {
		return errors.Wrap(err, "sampling failed")
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("sampling finished in %vh %vm %vs", hours, minutes, seconds)

	if sum != nil {
		sum.render(buf)
	}

	return buf.Flush()
}

func readSystem(path string, in io.Reader) (*constraints.System, error) {
	if path == "" {
		return constraints.Read(in)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open constraints file")
	}
	defer f.Close()

	return constraints.Read(f)
}

// summary accumulates the minimum, mean and maximum of every variable.
type summary struct {
	count    int
	min, max data.Vector
	sum      data.Vector
}

func newSummary(n int) *summary {
	return &summary{
		min: data.NewConstantVector(n, math.Inf(1)),
		max: data.NewConstantVector(n, math.Inf(-1)),
		sum: data.NewConstantVector(n, 0),
	}
}

func (s *summary) add(x data.Vector) error {
	if len(x) != len(s.sum) {
		return fmt.Errorf("sample has %d coordinates, expected %d", len(x), len(s.sum))
	}
	for i, v := range x {
		s.min[i] = math.Min(s.min[i], v)
		s.max[i] = math.Max(s.max[i], v)
		s.sum[i] += v
	}
	s.count++

	return nil
}

func (s *summary) render(out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"variable", "min", "mean", "max"})
	for i := range s.sum {
		t.AppendRow(table.Row{
			fmt.Sprintf("x%d", i+1),
			s.min[i],
			s.sum[i] / float64(s.count),
			s.max[i],
		})
	}
	t.AppendFooter(table.Row{"samples", s.count})
	t.Render()
}
