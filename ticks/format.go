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

package ticks

import (
	"regexp"
	"strconv"
)

// FormatLabel renders the tick position x as a label string.
//
// Values more than four orders of magnitude away from 1 are rendered in
// scientific notation "m×10^{e}", with the mantissa limited to five
// significant digits.  When labelRange, the extent of the labelled
// range, is smaller than 1e-6, fixed-point notation is used with as
// many decimal places as labelRange has leading zeros.  All other
// values use the shortest decimal form which round-trips.
func FormatLabel(x, labelRange float64) string {
	if x == 0 {
		return "0"
	}
	_, b := Magform(x)
	if b > 4 || b < -4 {
		a, e := Magform(x)
		m := strconv.FormatFloat(a, 'f', -1, 64)
		if sigDigits(m) > 5 {
			m = trimZeros(strconv.FormatFloat(a, 'f', 6, 64))
		}
		return m + "×10^{" + strconv.Itoa(e) + "}"
	}
	if labelRange < 1e-6 {
		_, rb := Magform(labelRange)
		prec := rb
		if prec < 0 {
			prec = -prec
		}
		return strconv.FormatFloat(x, 'f', prec, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// sigDigits counts the significant decimal digits in the number s.
func sigDigits(s string) int {
	n := 0
	started := false
	for _, c := range s {
		if c < '0' || c > '9' {
			continue
		}
		if c != '0' {
			started = true
		}
		if started {
			n++
		}
	}
	return n
}

var tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)

// trimZeros removes trailing zeros (and a trailing decimal point) from
// a fixed-point number string.
func trimZeros(s string) string {
	if m := tailRegexp.FindStringSubmatchIndex(s); m != nil {
		if m[2] > 0 {
			s = s[:m[2]]
		} else if m[4] > 0 {
			s = s[:m[4]]
		}
	}
	return s
}
