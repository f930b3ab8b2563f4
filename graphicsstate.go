// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

// PlotState selects the interpretation of a D01 operation: a straight draw
// or a clockwise/counterclockwise arc.
type PlotState int

const (
	// PlotUndefined means no G01/G02/G03 has been seen yet.
	PlotUndefined PlotState = iota
	// PlotLinear selects straight draws (G01).
	PlotLinear
	// PlotClockwise selects clockwise arcs (G02).
	PlotClockwise
	// PlotCounterClockwise selects counterclockwise arcs (G03).
	PlotCounterClockwise
)

// ArcMode controls how an arc's center offset is interpreted.
type ArcMode int

const (
	// ArcModeUndefined means no G74/G75 has been seen yet.
	ArcModeUndefined ArcMode = iota
	// ArcModeSingleQuadrant restricts arcs to a single 90-degree quadrant
	// (G74). Not supported; see ErrUnsupportedFeature.
	ArcModeSingleQuadrant
	// ArcModeMultiQuadrant allows arcs spanning any angle (G75).
	ArcModeMultiQuadrant
)

// GraphicsState is the interpreter's mutable cursor: the coordinate format,
// unit, current point, selected aperture, and plot/arc mode accumulated
// while processing a command stream.
type GraphicsState struct {
	Format           *CoordinateFormat
	Unit             *Unit
	CurrentPoint     *FixedPoint
	CurrentAperture  *int
	PlotState        PlotState
	ArcMode          ArcMode
	Transform        Transform
}

// NewGraphicsState returns a GraphicsState with identity transform and all
// other fields unset.
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{Transform: IdentityTransform()}
}

// GetPoint completes a coordinate data's X/Y fields against the current
// point, producing the operation's destination. It does not mutate the
// GraphicsState.
func (gs *GraphicsState) GetPoint(data CoordinateData) (FixedPoint, error) {
	if gs.CurrentPoint == nil && (!data.HasXY()) {
		return FixedPoint{}, newLogicError("no current point to complete coordinate data")
	}
	point := FixedPoint{}
	if gs.CurrentPoint != nil {
		point = *gs.CurrentPoint
	}
	if data.X != nil {
		point.X = *data.X
	}
	if data.Y != nil {
		point.Y = *data.Y
	}
	return point, nil
}

// GetCenterOffset reads a coordinate data's I/J fields, defaulting to zero
// when absent (permitted only by some dialects, but accepted here).
func (gs *GraphicsState) GetCenterOffset(data CoordinateData) FixedPoint {
	offset := FixedPoint{}
	if data.I != nil {
		offset.X = *data.I
	}
	if data.J != nil {
		offset.Y = *data.J
	}
	return offset
}
