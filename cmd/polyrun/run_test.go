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
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fentec-project/polyrun"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangle = `# x >= 0, y >= 0, x + y <= 1
1 0 >= 0
0 1 >= 0
1 1 <= 1
`

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	app := newApp()
	out := &bytes.Buffer{}
	app.Reader = strings.NewReader(stdin)
	app.Writer = out
	err := app.Run(append([]string{"polyrun", "--log", "error"}, args...))

	return out.String(), err
}

func parseSamples(t *testing.T, out string) [][]float64 {
	t.Helper()

	var samples [][]float64
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var x []float64
		for _, f := range strings.Split(line, "\t") {
			v, err := strconv.ParseFloat(f, 64)
			require.NoError(t, err)
			x = append(x, v)
		}
		samples = append(samples, x)
	}

	return samples
}

func TestRun_Stdin(t *testing.T) {
	out, err := runApp(t, triangle, "--seed", "7", "--samples", "50", "--thinning", "tfc:2")
	require.NoError(t, err)

	samples := parseSamples(t, out)
	require.Len(t, samples, 50)
	for _, x := range samples {
		require.Len(t, x, 2)
		assert.True(t, x[0] >= -1e-9 && x[1] >= -1e-9 && x[0]+x[1] <= 1+1e-9, "sample %v left the triangle", x)
	}
}

func TestRun_SameSeed(t *testing.T) {
	args := []string{"--seed", "11", "--samples", "20", "--walk", "ball", "--radius", "0.2", "--randomize-start"}
	first, err := runApp(t, triangle, args...)
	require.NoError(t, err)
	second, err := runApp(t, triangle, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_Key(t *testing.T) {
	key := strings.Repeat("5a", 32)
	args := []string{"--key", key, "--samples", "20", "--thinning", "tfc:3"}

	first, err := runApp(t, triangle, args...)
	require.NoError(t, err)
	second, err := runApp(t, triangle, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second, "the same key should give the same samples")
	assert.Len(t, parseSamples(t, first), 20)

	other, err := runApp(t, triangle, "--key", strings.Repeat("a5", 32), "--samples", "20", "--thinning", "tfc:3")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	_, err = runApp(t, triangle, "--key", "0011")
	assert.True(t, errors.Is(err, polyrun.ErrPrecondition), "unexpected error %v", err)
}

func TestRun_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "point.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 0 = 1\n0 1 = 2\n"), 0o600))

	out, err := runApp(t, "", "--input", path, "--samples", "3")
	require.NoError(t, err)

	samples := parseSamples(t, out)
	require.Len(t, samples, 3)
	for _, x := range samples {
		assert.InDeltaSlice(t, []float64{1, 2}, x, 1e-12)
	}
}

func TestRun_Summary(t *testing.T) {
	out, err := runApp(t, triangle, "--seed", "3", "--samples", "200", "--walk", "grid",
		"--spacing", "0.05", "--remove-redundant", "--summary")
	require.NoError(t, err)

	upper := strings.ToUpper(out)
	assert.Contains(t, upper, "MEAN")
	assert.Contains(t, upper, "X1")
	assert.Contains(t, upper, "X2")
	assert.Contains(t, out, "200")
}

func TestRun_Errors(t *testing.T) {
	_, err := runApp(t, "1 0 >= 0\n0 1 >= 0\n", "--samples", "5")
	assert.True(t, errors.Is(err, polyrun.ErrUnbounded), "unexpected error %v", err)

	_, err = runApp(t, triangle, "--samples", "0")
	assert.True(t, errors.Is(err, polyrun.ErrPrecondition), "unexpected error %v", err)

	_, err = runApp(t, "1 0 < 1\n", "--samples", "5")
	assert.True(t, errors.Is(err, polyrun.ErrPrecondition), "unexpected error %v", err)

	_, err = runApp(t, "", "--input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	s := newSummary(2)
	require.NoError(t, s.add([]float64{0, 1}))
	require.NoError(t, s.add([]float64{2, -1}))
	assert.Error(t, s.add([]float64{1}))

	assert.Equal(t, 2, s.count)
	assert.Equal(t, []float64{0, -1}, []float64(s.min))
	assert.Equal(t, []float64{2, 1}, []float64(s.max))
	assert.Equal(t, []float64{2, 0}, []float64(s.sum))
}
