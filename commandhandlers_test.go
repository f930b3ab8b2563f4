// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "testing"

func newTestProcessor() *CommandsProcessor {
	p := NewCommandsProcessor(&fakeSink{})
	if err := p.SetFormat(2, 6); err != nil {
		panic(err)
	}
	return p
}

func TestHandleUnit(t *testing.T) {
	p := newTestProcessor()
	if err := handleUnit(p, []string{"MOMM"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.State.Unit == nil || *p.State.Unit != Millimeter {
		t.Errorf("Unit = %v, want Millimeter", p.State.Unit)
	}
	if err := handleUnit(p, []string{"MOXX"}); err == nil {
		t.Error("expected error for an unrecognized unit field")
	}
}

func TestHandleFormat(t *testing.T) {
	p := NewCommandsProcessor(&fakeSink{})
	if err := handleFormat(p, []string{"FSLAX26Y26"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *p.State.Format != (CoordinateFormat{IntegerDigits: 2, DecimalDigits: 6}) {
		t.Errorf("Format = %v, want {2 6}", p.State.Format)
	}
	p2 := NewCommandsProcessor(&fakeSink{})
	if err := handleFormat(p2, []string{"FSLAX26Y37"}); err == nil {
		t.Error("expected error for mismatched X/Y digit specs")
	}
}

func TestHandleApertureDefine(t *testing.T) {
	p := newTestProcessor()
	if err := handleApertureDefine(p, []string{"ADD10C,0.5"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ap, err := p.lookupAperture(10)
	if err != nil {
		t.Fatal(err)
	}
	circle, ok := ap.(*Circle)
	if !ok || circle.Diameter != 0.5 {
		t.Errorf("aperture 10 = %+v, want a 0.5-diameter circle", ap)
	}
	if err := handleApertureDefine(p, []string{"ADD9C,0.5"}); err == nil {
		t.Error("expected error for an aperture ident below 10")
	}
}

func TestHandleMacroDefine(t *testing.T) {
	p := newTestProcessor()
	if err := handleMacroDefine(p, []string{"AMDONUT", "1,1,1,0,0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.templates["DONUT"]; !ok {
		t.Error("expected a template named DONUT to be registered")
	}
	if err := handleMacroDefine(p, nil); err == nil {
		t.Error("expected error for an empty AM body")
	}
}

func TestHandleSelectApertureAndPlot(t *testing.T) {
	p := newTestProcessor()
	if err := p.DefineAperture(10, "C", []float64{1.0}); err != nil {
		t.Fatal(err)
	}
	if err := handleSelectAperture(p, []string{"D10"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.State.CurrentAperture == nil || *p.State.CurrentAperture != 10 {
		t.Errorf("CurrentAperture = %v, want 10", p.State.CurrentAperture)
	}

	if err := handlePlotLinear(p, nil); err != nil {
		t.Fatal(err)
	}
	if err := handleMove(p, []string{"X0Y0D02"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := handlePlot(p, []string{"X1000000Y0D01"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sink := p.destinations[0].(*fakeSink)
	if len(sink.objects) != 1 {
		t.Fatalf("len(objects) = %d, want 1", len(sink.objects))
	}
}

func TestHandleFlashRejectsIJ(t *testing.T) {
	p := newTestProcessor()
	if err := p.DefineAperture(10, "C", []float64{1.0}); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCurrentAperture(10); err != nil {
		t.Fatal(err)
	}
	if err := handleFlash(p, []string{"X0Y0I1J0D03"}); err == nil {
		t.Error("expected error for a flash with I/J fields")
	}
	if err := handleFlash(p, []string{"X0Y0D03"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleLoadCommands(t *testing.T) {
	p := newTestProcessor()
	if err := handleLoadPolarity(p, []string{"LPC"}); err != nil {
		t.Fatal(err)
	}
	if p.State.Transform.Polarity != Clear {
		t.Errorf("Polarity = %v, want Clear", p.State.Transform.Polarity)
	}
	if err := handleLoadMirroring(p, []string{"LMXY"}); err != nil {
		t.Fatal(err)
	}
	if p.State.Transform.Mirror != MirrorXY {
		t.Errorf("Mirror = %v, want MirrorXY", p.State.Transform.Mirror)
	}
	if err := handleLoadRotation(p, []string{"LR90"}); err != nil {
		t.Fatal(err)
	}
	if p.State.Transform.Rotation != 90 {
		t.Errorf("Rotation = %v, want 90", p.State.Transform.Rotation)
	}
	if err := handleLoadScaling(p, []string{"LS2.0"}); err != nil {
		t.Fatal(err)
	}
	if p.State.Transform.Scaling != 2.0 {
		t.Errorf("Scaling = %v, want 2.0", p.State.Transform.Scaling)
	}
	if err := handleLoadScaling(p, []string{"LS0"}); err == nil {
		t.Error("expected error for a non-positive scaling factor")
	}
}

func TestHandleRegionStartEnd(t *testing.T) {
	p := newTestProcessor()
	if err := p.DefineAperture(10, "C", []float64{1.0}); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCurrentAperture(10); err != nil {
		t.Fatal(err)
	}
	if err := handleRegionStart(p, nil); err != nil {
		t.Fatal(err)
	}
	if err := handlePlotLinear(p, nil); err != nil {
		t.Fatal(err)
	}
	if err := handleMove(p, []string{"X0Y0D02"}); err != nil {
		t.Fatal(err)
	}
	if err := handlePlot(p, []string{"X1000000Y0D01"}); err != nil {
		t.Fatal(err)
	}
	if err := handlePlot(p, []string{"X1000000Y1000000D01"}); err != nil {
		t.Fatal(err)
	}
	if err := handlePlot(p, []string{"X0Y1000000D01"}); err != nil {
		t.Fatal(err)
	}
	if err := handlePlot(p, []string{"X0Y0D01"}); err != nil {
		t.Fatal(err)
	}
	if err := handleRegionEnd(p, nil); err != nil {
		t.Fatalf("unexpected error closing a properly closed region: %v", err)
	}
}

func TestHandleApertureBlockOpenClose(t *testing.T) {
	p := newTestProcessor()
	if err := handleApertureBlock(p, []string{"ABD100"}); err != nil {
		t.Fatal(err)
	}
	if err := p.DefineAperture(10, "C", []float64{1.0}); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCurrentAperture(10); err != nil {
		t.Fatal(err)
	}
	if err := handlePlotLinear(p, nil); err != nil {
		t.Fatal(err)
	}
	if err := handleMove(p, []string{"X0Y0D02"}); err != nil {
		t.Fatal(err)
	}
	if err := handlePlot(p, []string{"X1000000Y0D01"}); err != nil {
		t.Fatal(err)
	}
	if err := handleApertureBlock(p, []string{"AB"}); err != nil {
		t.Fatal(err)
	}
	ap, err := p.lookupAperture(100)
	if err != nil {
		t.Fatal(err)
	}
	block, ok := ap.(*Block)
	if !ok || len(block.Objects) != 1 {
		t.Errorf("aperture 100 = %+v, want a block with one object", ap)
	}
	if p.State.CurrentPoint != nil {
		t.Error("CurrentPoint should be cleared when crossing the block-closing boundary")
	}
}

func TestHandleStepAndRepeatOpenClose(t *testing.T) {
	p := newTestProcessor()
	if err := handleStepAndRepeat(p, []string{"SRX2Y3I5.0J4.0"}); err != nil {
		t.Fatal(err)
	}
	if p.activeSR == nil || p.activeSR.Nx != 2 || p.activeSR.Ny != 3 {
		t.Fatalf("activeSR = %+v, want Nx=2 Ny=3", p.activeSR)
	}
	if err := handleStepAndRepeat(p, []string{"SR"}); err != nil {
		t.Fatal(err)
	}
	if p.activeSR != nil {
		t.Error("activeSR should be nil after closing the step-and-repeat frame")
	}
}

func TestHandleEndOfFile(t *testing.T) {
	p := newTestProcessor()
	if err := handleEndOfFile(p, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CommandState != StateEndOfFile {
		t.Errorf("CommandState = %v, want StateEndOfFile", p.CommandState)
	}

	p2 := newTestProcessor()
	if err := handleApertureBlock(p2, []string{"ABD100"}); err != nil {
		t.Fatal(err)
	}
	if err := handleEndOfFile(p2, nil); err == nil {
		t.Error("expected error ending the file with an open aperture block")
	}
}
