// seehuhn.de/go/plot - a library for drawing scientific plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ticks chooses tick positions and tick labels for plot axes.
package ticks

import "math"

// Magform decomposes x into a mantissa a and a decimal exponent b, such
// that x = a * 10^b and 1 <= |a| < 10.  For x = 0 the result is (0, 0).
// The sign of x is preserved in a.
func Magform(x float64) (a float64, b int) {
	if x == 0 {
		return 0, 0
	}
	b = int(math.Floor(math.Log10(math.Abs(x))))
	a = x / math.Pow(10, float64(b))
	// guard against rounding at decade boundaries
	if math.Abs(a) >= 10 {
		a /= 10
		b++
	}
	if math.Abs(a) < 1 {
		a *= 10
		b--
	}
	return a, b
}

// DefaultLinear returns "nice" major tick positions for a linear axis
// covering the range [lo, hi].  The step is one of {1, 2, 5, 10}*10^b,
// chosen so that the range contains roughly five steps.
func DefaultLinear(lo, hi float64) []float64 {
	a, b := Magform((hi - lo) / 5)
	var step float64
	switch {
	case math.Abs(a) < 1.5:
		step = 1
	case math.Abs(a) < 3.5:
		step = 2
	case math.Abs(a) < 7.5:
		step = 5
	default:
		step = 10
	}
	step *= math.Pow(10, float64(b))
	return multiples(lo, hi, step)
}

// multiples returns the multiples of step within [lo, hi], inclusive at
// the ends up to floating point tolerance.
func multiples(lo, hi, step float64) []float64 {
	i0 := int(math.Ceil(lo/step - 1e-10))
	i1 := int(math.Floor(hi/step + 1e-10))
	var res []float64
	for i := i0; i <= i1; i++ {
		res = append(res, float64(i)*step)
	}
	return res
}

// decadeSpan returns the number of whole powers of ten contained in
// [lo, hi].  Both bounds must be positive.
func decadeSpan(lo, hi float64) int {
	return logFloor(hi) - logCeil(lo) + 1
}

func logFloor(x float64) int {
	return int(math.Floor(math.Log10(x) + 1e-12))
}

func logCeil(x float64) int {
	return int(math.Ceil(math.Log10(x) - 1e-12))
}

// DefaultLog returns major tick positions for a logarithmic axis
// covering the range [lo, hi].  For ten or more decades the ticks are
// spaced linearly in log space, for at least two decades there is one
// tick per whole decade, and for sub-decade ranges the linear algorithm
// is applied to the raw range.
func DefaultLog(lo, hi float64) []float64 {
	n := decadeSpan(lo, hi)
	switch {
	case n >= 10:
		pos := DefaultLinear(math.Log10(lo), math.Log10(hi))
		res := make([]float64, len(pos))
		for i, p := range pos {
			res[i] = math.Pow(10, p)
		}
		return res
	case n >= 2:
		var res []float64
		for i := logCeil(lo); i <= logFloor(hi); i++ {
			res = append(res, math.Pow(10, float64(i)))
		}
		return res
	default:
		return DefaultLinear(lo, hi)
	}
}

// SubLinear returns minor tick positions for a linear axis, given the
// major ticks.  Each major interval is subdivided by num minor ticks;
// num <= 0 selects the default of four, reduced to three when the major
// step's mantissa lies strictly between 1 and 3.5.  Positions which
// coincide with a major tick are omitted.
func SubLinear(lo, hi float64, major []float64, num int) []float64 {
	step := majorStep(lo, hi, major)
	if step <= 0 {
		return nil
	}
	if num <= 0 {
		num = 4
		if a, _ := Magform(step); 1 < math.Abs(a) && math.Abs(a) < 3.5 {
			num = 3
		}
	}
	small := step / float64(num+1)
	var res []float64
	for _, x := range multiples(lo, hi, small) {
		if onGrid(x, step) {
			continue
		}
		res = append(res, x)
	}
	return res
}

func majorStep(lo, hi float64, major []float64) float64 {
	if len(major) < 2 {
		major = DefaultLinear(lo, hi)
	}
	if len(major) < 2 {
		return 0
	}
	return major[1] - major[0]
}

func onGrid(x, step float64) bool {
	q := x / step
	return math.Abs(q-math.Round(q)) < 1e-8
}

// SubLog returns minor tick positions for a logarithmic axis, given the
// major ticks.  Below ten decades the {1..9}*10^i pattern is used,
// filtered to [lo, hi]; for ten or more decades the minor ticks are
// computed in log space like the major ticks.
func SubLog(lo, hi float64, major []float64, num int) []float64 {
	n := decadeSpan(lo, hi)
	if n >= 10 {
		logMajor := make([]float64, len(major))
		for i, x := range major {
			logMajor[i] = math.Log10(x)
		}
		pos := SubLinear(math.Log10(lo), math.Log10(hi), logMajor, num)
		res := make([]float64, len(pos))
		for i, p := range pos {
			res[i] = math.Pow(10, p)
		}
		return res
	}
	var res []float64
	for i := logFloor(lo) - 1; i <= logCeil(hi); i++ {
		decade := math.Pow(10, float64(i))
		for j := 1; j <= 9; j++ {
			x := float64(j) * decade
			if x >= lo*(1-1e-10) && x <= hi*(1+1e-10) {
				res = append(res, x)
			}
		}
	}
	return res
}
