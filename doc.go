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

// Package plot turns an abstract description of a chart into drawing
// commands for a renderer.
//
// A plot is assembled from components (curves, points, fills, labels)
// added to a container such as [FramedPlot] or [Table].  When the
// container is drawn, a layout pass reserves just enough margin for the
// axes, tick labels and titles to fit the target region, and the
// components are then projected from data coordinates to device
// coordinates and rendered:
//
//	p := plot.NewFramedPlot()
//	p.Title = "sine"
//	p.Add(plot.NewCurve(x, y))
//	err := p.Draw(renderer)
//
// Output backends implement the render.Renderer interface; this
// package contains no file format support of its own.
package plot
