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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/plot/style"
)

// Load parses YAML configuration data and returns the resulting table,
// layered over the built-in defaults.  The expected document structure
// is a mapping from type names to attribute mappings.
func Load(data []byte) (Table, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	overlay := make(Table, len(raw))
	for name, opts := range raw {
		m := make(map[string]style.Value, len(opts))
		for k, v := range opts {
			val, err := convert(v)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", name, k, err)
			}
			m[k] = val
		}
		overlay[name] = m
	}
	return Merge(Builtin(), overlay), nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(fname string) (Table, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

func convert(v any) (style.Value, error) {
	switch v := v.(type) {
	case nil:
		return style.None{}, nil
	case bool:
		return style.Bool(v), nil
	case int:
		return style.Number(v), nil
	case float64:
		return style.Number(v), nil
	case string:
		return style.String(v), nil
	case map[string]any:
		m := make(style.Dict, len(v))
		for k, sub := range v {
			val, err := convert(sub)
			if err != nil {
				return nil, err
			}
			m[style.Key(k)] = val
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
