// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import (
	"strconv"
	"strings"
)

// ApertureTemplate is a named factory that produces an Aperture from a
// numeric parameter list.
type ApertureTemplate interface {
	Call(params []float64) (Aperture, error)
}

// CircleTemplate builds Circle apertures from 1 or 2 parameters:
// (diameter) or (diameter, hole).
type CircleTemplate struct{}

func (CircleTemplate) Call(params []float64) (Aperture, error) {
	if len(params) < 1 || len(params) > 2 {
		return nil, newParseError("circle template expects 1 to 2 parameters")
	}
	hole := 0.0
	if len(params) == 2 {
		hole = params[1]
	}
	return NewCircle(params[0], hole)
}

// RectangleTemplate builds Rectangle apertures from 2 or 3 parameters:
// (x, y) or (x, y, hole).
type RectangleTemplate struct{}

func (RectangleTemplate) Call(params []float64) (Aperture, error) {
	if len(params) < 2 || len(params) > 3 {
		return nil, newParseError("rectangle template expects 2 to 3 parameters")
	}
	hole := 0.0
	if len(params) == 3 {
		hole = params[2]
	}
	return NewRectangle(params[0], params[1], hole)
}

// ObroundTemplate builds Obround apertures from 2 or 3 parameters:
// (x, y) or (x, y, hole).
type ObroundTemplate struct{}

func (ObroundTemplate) Call(params []float64) (Aperture, error) {
	if len(params) < 2 || len(params) > 3 {
		return nil, newParseError("obround template expects 2 to 3 parameters")
	}
	hole := 0.0
	if len(params) == 3 {
		hole = params[2]
	}
	return NewObround(params[0], params[1], hole)
}

// PolygonTemplate builds Polygon apertures from 2 to 4 parameters:
// (outer, n), (outer, n, rotation), or (outer, n, rotation, hole).
type PolygonTemplate struct{}

func (PolygonTemplate) Call(params []float64) (Aperture, error) {
	if len(params) < 2 || len(params) > 4 {
		return nil, newParseError("polygon template expects 2 to 4 parameters")
	}
	rotation, hole := 0.0, 0.0
	if len(params) > 2 {
		rotation = params[2]
	}
	if len(params) > 3 {
		hole = params[3]
	}
	return NewPolygon(params[0], int(params[1]), rotation, hole)
}

// MacroTemplate stores an aperture macro's literal, unparsed body words for
// late expansion: the body is re-parsed with a fresh Variables table on
// every Call, since macros are parameterized and may be instantiated more
// than once with different arguments.
type MacroTemplate struct {
	Body []string
}

// NewMacroTemplate wraps a macro's body words (one per `*`-terminated
// statement within the `%AM...*...*%` block, excluding the leading
// `AM<name>` word).
func NewMacroTemplate(body []string) *MacroTemplate {
	return &MacroTemplate{Body: body}
}

func (t *MacroTemplate) Call(params []float64) (Aperture, error) {
	vars := Variables{}
	for i, p := range params {
		vars[i+1] = p
	}

	macro := NewMacro()
	for _, word := range t.Body {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if assignID, expr, ok := parseAssignment(word); ok {
			value, err := NewExpression(expr).Evaluate(vars)
			if err != nil {
				return nil, err
			}
			vars[assignID] = value
			continue
		}
		if word == "0" || strings.HasPrefix(word, "0 ") {
			continue // comment primitive, free-form text, no-op
		}

		fields := strings.Split(word, ",")
		code, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, newParseErrorf("invalid macro primitive code: %s", fields[0])
		}
		if code == 0 {
			continue // comment primitive, free-form text, no-op
		}

		params := make([]float64, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, err := NewExpression(strings.TrimSpace(f)).Evaluate(vars)
			if err != nil {
				return nil, err
			}
			params = append(params, v)
		}

		prim, err := newMacroPrimitive(code, params)
		if err != nil {
			return nil, err
		}
		macro.AddPrimitive(prim)
	}
	return macro, nil
}

func newMacroPrimitive(code int, params []float64) (MacroPrimitive, error) {
	switch code {
	case 1:
		return NewMacroCircleFromParams(params)
	case 20:
		return NewMacroVectorLineFromParams(params)
	case 21:
		return NewMacroCenterLineFromParams(params)
	case 4:
		return NewMacroOutlineFromParams(params)
	case 5:
		return NewMacroPolygonFromParams(params)
	case 7:
		return NewMacroThermalFromParams(params)
	default:
		return nil, newParseErrorf("unsupported macro primitive code: %d", code)
	}
}

// parseAssignment recognizes the macro body's variable-definition form
// "$n=<expr>".
func parseAssignment(word string) (id int, expr string, ok bool) {
	if len(word) < 2 || word[0] != '$' {
		return 0, "", false
	}
	eq := strings.IndexByte(word, '=')
	if eq < 0 {
		return 0, "", false
	}
	idStr := word[1:eq]
	n, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, "", false
	}
	return n, word[eq+1:], true
}
