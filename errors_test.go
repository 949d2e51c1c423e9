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

package polyrun_test

import (
	"testing"

	"github.com/fentec-project/polyrun"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrors_Kinds(t *testing.T) {
	wrapped := errors.Wrap(polyrun.ErrSinglePoint, "cannot build transformation")
	assert.True(t, errors.Is(wrapped, polyrun.ErrSinglePoint))
	assert.True(t, errors.Is(wrapped, polyrun.ErrNotFullDimensional))
	assert.False(t, errors.Is(wrapped, polyrun.ErrInfeasible))

	assert.True(t, errors.Is(errors.Wrap(polyrun.ErrNoStartPoint, "chain"), polyrun.ErrPrecondition))
}

func TestErrors_Slack(t *testing.T) {
	var err error = &polyrun.SlackError{Slack: -0.25}
	err = errors.Wrap(err, "interior point")

	assert.True(t, errors.Is(err, polyrun.ErrInfeasible))
	assert.False(t, errors.Is(err, polyrun.ErrUnbounded))
	assert.Contains(t, err.Error(), "-0.25")

	var slackErr *polyrun.SlackError
	assert.True(t, errors.As(err, &slackErr))
	assert.Equal(t, -0.25, slackErr.Slack)
}
