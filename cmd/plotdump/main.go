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

// Plotdump renders a demo plot and prints the resulting stream of
// renderer calls.  This is meant for inspecting the plot layout
// machinery without a graphical output backend.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"seehuhn.de/go/plot"
	"seehuhn.de/go/plot/config"
	"seehuhn.de/go/plot/render"
)

func main() {
	width := flag.Float64("width", 400, "device width")
	height := flag.Float64("height", 300, "device height")
	logScale := flag.Bool("log", false, "use a logarithmic y axis")
	configFile := flag.String("config", "", "style configuration file (YAML)")
	verbose := flag.Bool("v", false, "print call arguments")
	flag.Parse()

	if *configFile != "" {
		table, err := config.LoadFile(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		plot.Config = table
	}

	rec := render.NewRecorder(*width, *height)
	if err := draw(rec, *logScale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	counts := map[render.Op]int{}
	for _, cmd := range rec.Cmds {
		counts[cmd.Op]++
		if *verbose {
			fmt.Printf("%-10s %v\n", opName(cmd.Op), cmd.Args)
		}
	}
	for op := render.OpOpen; op <= render.OpClip; op++ {
		if counts[op] > 0 {
			fmt.Printf("%-10s %d\n", opName(op), counts[op])
		}
	}
}

func draw(dev render.Renderer, logScale bool) error {
	n := 50
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i+1) / 5
		y[i] = 2 + math.Sin(x[i])
		if logScale {
			y[i] = math.Exp(y[i])
		}
	}

	p := plot.NewFramedPlot()
	p.YLog = logScale
	p.SetTitle("demo")
	p.SetXLabel("time")
	p.SetYLabel("signal")

	curve := plot.NewCurve(x, y)
	points := plot.NewPoints(x, y)
	p.Add(curve, points)

	key := plot.NewKey(0.1, 0.9)
	key.AddEntry(curve, "model")
	key.AddEntry(points, "samples")
	p.Add(key)

	return p.Draw(dev)
}

func opName(op render.Op) string {
	names := [...]string{
		render.OpOpen:      "Open",
		render.OpClose:     "Close",
		render.OpSave:      "Save",
		render.OpRestore:   "Restore",
		render.OpSet:       "Set",
		render.OpLine:      "Line",
		render.OpCurve:     "Curve",
		render.OpPolygon:   "Polygon",
		render.OpText:      "Text",
		render.OpSymbol:    "Symbol",
		render.OpSymbols:   "Symbols",
		render.OpImage:     "Image",
		render.OpMove:      "Move",
		render.OpRelLineTo: "RelLineTo",
		render.OpStroke:    "Stroke",
		render.OpClip:      "Clip",
	}
	if int(op) < len(names) {
		return names[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}
