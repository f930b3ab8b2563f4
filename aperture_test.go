// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "testing"

func TestApertureConstructorValidation(t *testing.T) {
	if _, err := NewCircle(-1, 0); err == nil {
		t.Error("expected error for negative circle diameter")
	}
	if _, err := NewRectangle(1, -1, 0); err == nil {
		t.Error("expected error for negative rectangle dimension")
	}
	if _, err := NewObround(1, 1, -1); err == nil {
		t.Error("expected error for negative obround hole")
	}
	if _, err := NewPolygon(1, 2, 0, 0); err == nil {
		t.Error("expected error for too few polygon vertices")
	}
	if _, err := NewPolygon(1, 13, 0, 0); err == nil {
		t.Error("expected error for too many polygon vertices")
	}
}

func TestApertureBoundingBoxesNonNegative(t *testing.T) {
	format := CoordinateFormat{IntegerDigits: 2, DecimalDigits: 6}

	circle, _ := NewCircle(2, 0.5)
	rect, _ := NewRectangle(3, 4, 0)
	obround, _ := NewObround(3, 1, 0)
	poly, _ := NewPolygon(2, 6, 0, 0)

	for name, ap := range map[string]Aperture{
		"circle": circle, "rectangle": rect, "obround": obround, "polygon": poly,
	} {
		box := ap.Box(format)
		if box.Width < 0 || box.Height < 0 {
			t.Errorf("%s: box = %+v, want width,height >= 0", name, box)
		}
	}
}

func TestCircleApplyTransformScalesDiameter(t *testing.T) {
	c, _ := NewCircle(2, 0)
	c.ApplyTransform(Transform{Polarity: Dark, Mirror: MirrorNone, Rotation: 0, Scaling: 2})
	box := c.Box(CoordinateFormat{})
	if box.Width != 4 {
		t.Errorf("Width = %v, want 4 after 2x scaling", box.Width)
	}
}

func TestCircleClonedApertureIndependent(t *testing.T) {
	c, _ := NewCircle(2, 0)
	clone := c.Clone().(*Circle)
	clone.Diameter = 99
	if c.Diameter == 99 {
		t.Error("mutating the clone mutated the original")
	}
}

func TestBlockApertureBoxEmpty(t *testing.T) {
	b := NewBlockAperture()
	box := b.Box(CoordinateFormat{IntegerDigits: 2, DecimalDigits: 6})
	if box != (Box{}) {
		t.Errorf("Box() = %+v, want zero value for an empty block", box)
	}
}

func TestBlockApertureCloneIsDeep(t *testing.T) {
	circle, _ := NewCircle(1, 0)
	draw, err := NewDraw(Segment{Start: FixedPoint{}, End: FixedPoint{X: 1}}, circle)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBlockAperture()
	b.AddObject(draw)

	clone := b.Clone().(*Block)
	clone.Objects[0].(*Draw).DrawWidth = 99
	if b.Objects[0].(*Draw).DrawWidth == 99 {
		t.Error("cloning the block aperture shared object state with the original")
	}
}

func TestCircleSerializeWithHoleAddsClearCircle(t *testing.T) {
	c, _ := NewCircle(2, 0.5)
	rec := &recordingSerializer{}
	c.Serialize(rec, RealPoint{}, CoordinateFormat{})
	if rec.circles != 2 {
		t.Errorf("circles recorded = %d, want 2 (outer + hole)", rec.circles)
	}
}

func TestRectangleSerializeEmitsPolygon(t *testing.T) {
	r, _ := NewRectangle(2, 3, 0)
	rec := &recordingSerializer{}
	r.Serialize(rec, RealPoint{}, CoordinateFormat{})
	if rec.polygons != 1 {
		t.Errorf("polygons recorded = %d, want 1", rec.polygons)
	}
}

func TestObroundSerializeEmitsDraw(t *testing.T) {
	o, _ := NewObround(3, 1, 0)
	rec := &recordingSerializer{}
	o.Serialize(rec, RealPoint{}, CoordinateFormat{})
	if rec.draws != 1 {
		t.Errorf("draws recorded = %d, want 1", rec.draws)
	}
}

func TestMacroSerializeSplitsOnOffGroups(t *testing.T) {
	m := NewMacro()
	on, _ := NewMacroCircleFromParams([]float64{1, 2, 0, 0})
	off, _ := NewMacroCircleFromParams([]float64{0, 1, 0, 0})
	m.AddPrimitive(on)
	m.AddPrimitive(off)
	rec := &recordingSerializer{}
	m.Serialize(rec, RealPoint{}, CoordinateFormat{})
	if rec.circles != 2 {
		t.Errorf("circles recorded = %d, want 2", rec.circles)
	}
	if rec.masks != 1 {
		t.Errorf("masks recorded = %d, want 1 for the off-exposure primitive", rec.masks)
	}
}

func TestBlockSerializeStampsEachObjectAtOrigin(t *testing.T) {
	circle, _ := NewCircle(1, 0)
	draw, err := NewDraw(Segment{Start: FixedPoint{}, End: FixedPoint{X: 1}}, circle)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBlockAperture()
	b.AddObject(draw)
	rec := &recordingSerializer{}
	b.Serialize(rec, RealPoint{X: 1, Y: 1}, CoordinateFormat{IntegerDigits: 2, DecimalDigits: 6})
	if rec.draws != 1 {
		t.Errorf("draws recorded = %d, want 1", rec.draws)
	}
}

func TestMacroApertureBoxCoversPrimitives(t *testing.T) {
	m := NewMacro()
	circle, err := NewMacroCircleFromParams([]float64{1, 2, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	m.AddPrimitive(circle)
	box := m.Box(CoordinateFormat{})
	if box.Width != 2 || box.Height != 2 {
		t.Errorf("Box() = %+v, want a 2x2 box around the circle", box)
	}
}
