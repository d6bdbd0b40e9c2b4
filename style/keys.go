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

package style

// Key identifies a style attribute.  The set of keys is fixed; public
// attribute names are mapped to keys via the per-family rename tables.
type Key string

// The recognized attribute keys.
const (
	LineColor  Key = "linecolor"
	LineType   Key = "linetype"
	LineWidth  Key = "linewidth"
	FillColor  Key = "fillcolor"
	FillType   Key = "filltype"
	FontFace   Key = "fontface"
	FontSize   Key = "fontsize"
	TextColor  Key = "textcolor"
	TextAngle  Key = "textangle"
	TextHAlign Key = "texthalign"
	TextVAlign Key = "textvalign"
	SymbolType Key = "symboltype"
	SymbolSize Key = "symbolsize"
	TickSize   Key = "ticksize"
	LabelPad   Key = "labelpad"
)

// Rename tables, mapping public attribute names to keys.  Names not
// listed in a table are used as keys unchanged.
var (
	// LineRename is used by line-drawing components.
	LineRename = map[string]Key{
		"color": LineColor,
		"type":  LineType,
		"width": LineWidth,
	}

	// FillRename is used by area-filling components.
	FillRename = map[string]Key{
		"color": FillColor,
		"type":  FillType,
	}

	// TextRename is used by text components.
	TextRename = map[string]Key{
		"color":  TextColor,
		"face":   FontFace,
		"size":   FontSize,
		"angle":  TextAngle,
		"halign": TextHAlign,
		"valign": TextVAlign,
	}

	// SymbolRename is used by symbol-drawing components.
	SymbolRename = map[string]Key{
		"color": LineColor,
		"type":  SymbolType,
		"size":  SymbolSize,
	}
)
