// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "testing"

func TestBuiltinTemplates(t *testing.T) {
	t.Run("circle", func(t *testing.T) {
		if _, err := (CircleTemplate{}).Call([]float64{1.5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := (CircleTemplate{}).Call([]float64{1.5, 0.5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := (CircleTemplate{}).Call(nil); err == nil {
			t.Fatal("expected error for zero params")
		}
	})

	t.Run("rectangle", func(t *testing.T) {
		if _, err := (RectangleTemplate{}).Call([]float64{1, 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := (RectangleTemplate{}).Call([]float64{1, 2, 0.5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := (RectangleTemplate{}).Call([]float64{1}); err == nil {
			t.Fatal("expected error for too few params")
		}
	})

	t.Run("obround", func(t *testing.T) {
		if _, err := (ObroundTemplate{}).Call([]float64{1, 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("polygon", func(t *testing.T) {
		ap, err := (PolygonTemplate{}).Call([]float64{2, 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		poly, ok := ap.(*Polygon)
		if !ok {
			t.Fatalf("expected *Polygon, got %T", ap)
		}
		if poly.NumVertices != 6 {
			t.Errorf("NumVertices = %d, want 6", poly.NumVertices)
		}
		if _, err := (PolygonTemplate{}).Call([]float64{2, 3}); err != nil {
			t.Fatalf("unexpected error for min vertices: %v", err)
		}
	})
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		word    string
		wantID  int
		wantExp string
		wantOK  bool
	}{
		{"$1=$2+$3", 1, "$2+$3", true},
		{"$4=1.5x2", 4, "1.5x2", true},
		{"1,1,$1,0,0", 0, "", false},
		{"$bad=1", 0, "", false},
	}
	for _, tt := range tests {
		id, expr, ok := parseAssignment(tt.word)
		if ok != tt.wantOK {
			t.Errorf("parseAssignment(%q) ok = %v, want %v", tt.word, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if id != tt.wantID || expr != tt.wantExp {
			t.Errorf("parseAssignment(%q) = (%d, %q), want (%d, %q)", tt.word, id, expr, tt.wantID, tt.wantExp)
		}
	}
}

func TestMacroTemplateCall(t *testing.T) {
	mt := NewMacroTemplate([]string{
		"0 comment, ignored entirely",
		"$4=$1x2",
		"1,1,$4,0,0,0",
		"20,1,0.5,-1,0,1,0,0",
	})
	ap, err := mt.Call([]float64{3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	macro, ok := ap.(*Macro)
	if !ok {
		t.Fatalf("expected *Macro, got %T", ap)
	}
	if len(macro.Primitives) != 2 {
		t.Fatalf("len(Primitives) = %d, want 2", len(macro.Primitives))
	}
	circle, ok := macro.Primitives[0].(*MacroCircle)
	if !ok {
		t.Fatalf("expected *MacroCircle, got %T", macro.Primitives[0])
	}
	if circle.Diameter != 6 {
		t.Errorf("Diameter = %v, want 6 (variable substitution failed)", circle.Diameter)
	}
}

func TestBuiltinTemplateBoundingBoxesNonNegative(t *testing.T) {
	format := CoordinateFormat{IntegerDigits: 2, DecimalDigits: 6}
	cases := []struct {
		name     string
		template ApertureTemplate
		params   []float64
	}{
		{"circle", CircleTemplate{}, []float64{2}},
		{"circle with hole", CircleTemplate{}, []float64{2, 0.5}},
		{"rectangle", RectangleTemplate{}, []float64{3, 4}},
		{"rectangle with hole", RectangleTemplate{}, []float64{3, 4, 1}},
		{"obround", ObroundTemplate{}, []float64{3, 1}},
		{"obround with hole", ObroundTemplate{}, []float64{3, 1, 0.2}},
		{"polygon", PolygonTemplate{}, []float64{2, 6}},
		{"polygon with rotation and hole", PolygonTemplate{}, []float64{2, 8, 15, 0.3}},
	}
	for _, c := range cases {
		ap, err := c.template.Call(c.params)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		box := ap.Box(format)
		if box.Width < 0 || box.Height < 0 {
			t.Errorf("%s: box = %+v, want width,height >= 0", c.name, box)
		}
	}
}

func TestMacroTemplateUnsupportedCode(t *testing.T) {
	mt := NewMacroTemplate([]string{"99,1,2,3"})
	if _, err := mt.Call(nil); err == nil {
		t.Fatal("expected error for unsupported primitive code")
	}
}
