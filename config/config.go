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

// Package config turns the command line flags of polyrun into a
// validated Config.
package config

import (
	"encoding/hex"
	"time"

	"github.com/fentec-project/polyrun"
	"github.com/fentec-project/polyrun/logger"
	"github.com/fentec-project/polyrun/sample"
	"github.com/fentec-project/polyrun/thinning"
	"github.com/fentec-project/polyrun/walk"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"
)

// Names of the available random walks.
const (
	HitAndRun = "hitandrun"
	Ball      = "ball"
	Sphere    = "sphere"
	Grid      = "grid"
)

// Config holds the settings of a sampling run.
type Config struct {
	AppName string

	Input           string
	Seed            uint64
	Key             *[32]byte
	Samples         int
	Thinning        thinning.Function
	Walk            string
	Radius          float64
	Spacing         float64
	OutOfBounds     walk.OutOfBounds
	RandomizeStart  bool
	RemoveRedundant bool
	Summary         bool
	LogLevel        string
}

// NewConfig reads and validates the flags set on ctx.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		AppName:         ctx.App.HelpName,
		Input:           ctx.Path(InputFlag.Name),
		Seed:            ctx.Uint64(SeedFlag.Name),
		Samples:         ctx.Int(SamplesFlag.Name),
		Walk:            ctx.String(WalkFlag.Name),
		Radius:          ctx.Float64(RadiusFlag.Name),
		Spacing:         ctx.Float64(SpacingFlag.Name),
		RandomizeStart:  ctx.Bool(RandomizeStartFlag.Name),
		RemoveRedundant: ctx.Bool(RemoveRedundantFlag.Name),
		Summary:         ctx.Bool(SummaryFlag.Name),
		LogLevel:        ctx.String(logger.LogLevelFlag.Name),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logger.LogLevelFlag.Value
	}
	if key := ctx.String(KeyFlag.Name); key != "" {
		raw, err := hex.DecodeString(key)
		if err != nil || len(raw) != 32 {
			return nil, errors.Wrap(polyrun.ErrPrecondition, "key must be 32 bytes given as 64 hex digits")
		}
		cfg.Key = new([32]byte)
		copy(cfg.Key[:], raw)
	}
	// a keyed stream is reproducible from the key alone
	if cfg.Seed == 0 && cfg.Key == nil {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if cfg.Samples <= 0 {
		return nil, errors.Wrapf(polyrun.ErrPrecondition, "number of samples must be positive, was %d", cfg.Samples)
	}

	var err error
	if cfg.Thinning, err = thinning.Parse(ctx.String(ThinningFlag.Name)); err != nil {
		return nil, err
	}

	switch cfg.Walk {
	case HitAndRun:
	case Ball, Sphere:
		if !(cfg.Radius > 0) {
			return nil, errors.Wrapf(polyrun.ErrPrecondition, "radius must be positive, was %v", cfg.Radius)
		}
		if cfg.OutOfBounds, err = walk.ParseOutOfBounds(ctx.String(OutOfBoundsFlag.Name)); err != nil {
			return nil, err
		}
	case Grid:
		if !(cfg.Spacing > 0) {
			return nil, errors.Wrapf(polyrun.ErrPrecondition, "spacing must be positive, was %v", cfg.Spacing)
		}
	default:
		return nil, errors.Wrapf(polyrun.ErrPrecondition, "unknown random walk '%s'", cfg.Walk)
	}

	return cfg, nil
}

// NewRand returns the random number generator of the run: the salsa20
// keystream of Key starting at block Seed when a key is set, a Mersenne
// twister seeded with Seed otherwise.
func (cfg *Config) NewRand() *rand.Rand {
	if cfg.Key == nil {
		return sample.NewRand(cfg.Seed)
	}
	src := sample.NewKeyedSource(cfg.Key)
	src.Seed(cfg.Seed)

	return rand.New(src)
}

// NewWalk returns the random walk selected by the config, drawing from rnd.
func (cfg *Config) NewWalk(rnd *rand.Rand) (walk.RandomWalk, error) {
	switch cfg.Walk {
	case HitAndRun:
		return walk.NewHitAndRun(rnd), nil
	case Ball:
		w, err := walk.NewBallWalk(rnd, cfg.Radius, cfg.OutOfBounds)
		if err != nil {
			return nil, err
		}
		return w, nil
	case Sphere:
		w, err := walk.NewSphereWalk(rnd, cfg.Radius, cfg.OutOfBounds)
		if err != nil {
			return nil, err
		}
		return w, nil
	case Grid:
		w, err := walk.NewGridWalk(rnd, cfg.Spacing)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, errors.Wrapf(polyrun.ErrPrecondition, "unknown random walk '%s'", cfg.Walk)
}
