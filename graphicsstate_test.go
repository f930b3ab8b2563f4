// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "testing"

func int32ptr(v int32) *int32 { return &v }

func TestGraphicsStateGetPoint(t *testing.T) {
	gs := NewGraphicsState()

	if _, err := gs.GetPoint(CoordinateData{}); err == nil {
		t.Fatal("expected error with no current point and no XY")
	}

	p, err := gs.GetPoint(CoordinateData{X: int32ptr(100), Y: int32ptr(200)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != (FixedPoint{X: 100, Y: 200}) {
		t.Errorf("GetPoint = %+v, want {100 200}", p)
	}
	gs.CurrentPoint = &p

	p2, err := gs.GetPoint(CoordinateData{X: int32ptr(300)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2 != (FixedPoint{X: 300, Y: 200}) {
		t.Errorf("GetPoint (partial) = %+v, want {300 200}", p2)
	}

	p3, err := gs.GetPoint(CoordinateData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p3 != p {
		t.Errorf("GetPoint (empty) = %+v, want %+v", p3, p)
	}
}

func TestGraphicsStateGetCenterOffset(t *testing.T) {
	gs := NewGraphicsState()
	offset := gs.GetCenterOffset(CoordinateData{I: int32ptr(10)})
	if offset != (FixedPoint{X: 10, Y: 0}) {
		t.Errorf("GetCenterOffset = %+v, want {10 0}", offset)
	}
}
