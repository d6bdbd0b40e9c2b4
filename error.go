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

package plot

import "log"

// EmptyContainerError indicates an attempt to render a container
// without any content.
type EmptyContainerError struct {
	Kind string
}

func (err *EmptyContainerError) Error() string {
	kind := err.Kind
	if kind == "" {
		kind = "container"
	}
	return "cannot render empty " + kind
}

// Logger receives non-fatal warnings, e.g. when the layout iteration
// fails to converge.  Setting Logger to nil disables these warnings.
var Logger = log.Default()

func warnf(format string, args ...any) {
	if Logger != nil {
		Logger.Printf(format, args...)
	}
}
