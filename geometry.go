// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "math"

// FixedPoint is a 2D point with integer coordinates, in the format units
// parsed directly from a command stream prior to any unit conversion.
type FixedPoint struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p FixedPoint) Add(q FixedPoint) FixedPoint {
	return FixedPoint{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p FixedPoint) Sub(q FixedPoint) FixedPoint {
	return FixedPoint{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by an integer factor.
func (p FixedPoint) Scale(factor int32) FixedPoint {
	return FixedPoint{p.X * factor, p.Y * factor}
}

// RealPoint is a 2D point with double-precision coordinates, in the file's
// declared unit after coordinate-format conversion (millimeters for an MOMM
// file; inch values are not converted).
type RealPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p RealPoint) Add(q RealPoint) RealPoint {
	return RealPoint{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p RealPoint) Sub(q RealPoint) RealPoint {
	return RealPoint{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by a real factor about the origin.
func (p RealPoint) Scale(factor float64) RealPoint {
	return RealPoint{p.X * factor, p.Y * factor}
}

// Mirror negates p's components per axis.
func (p RealPoint) Mirror(mirrorX, mirrorY bool) RealPoint {
	x, y := p.X, p.Y
	if mirrorX {
		x = -x
	}
	if mirrorY {
		y = -y
	}
	return RealPoint{x, y}
}

// Rotate returns p rotated by degrees counter-clockwise about the origin.
func (p RealPoint) Rotate(degrees float64) RealPoint {
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sin(rad), math.Cos(rad)
	return RealPoint{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Box is an axis-aligned bounding rectangle. Width and height are always
// non-negative.
type Box struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
}

// NewBox builds a Box from width, height, left, and bottom. Width and
// height must be non-negative; callers constructing geometry are
// responsible for that invariant.
func NewBox(width, height, left, bottom float64) Box {
	return Box{Width: width, Height: height, Left: left, Bottom: bottom}
}

// Right returns the box's maximum X coordinate.
func (b Box) Right() float64 { return b.Left + b.Width }

// Top returns the box's maximum Y coordinate.
func (b Box) Top() float64 { return b.Bottom + b.Height }

// Extend returns the smallest box covering both b and other.
func (b Box) Extend(other Box) Box {
	left := math.Min(b.Left, other.Left)
	bottom := math.Min(b.Bottom, other.Bottom)
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())
	return NewBox(right-left, top-bottom, left, bottom)
}

// Pad returns b uniformly dilated by d on every side.
func (b Box) Pad(d float64) Box {
	return NewBox(b.Width+2*d, b.Height+2*d, b.Left-d, b.Bottom-d)
}

// Translate returns b shifted by offset.
func (b Box) Translate(offset RealPoint) Box {
	return NewBox(b.Width, b.Height, b.Left+offset.X, b.Bottom+offset.Y)
}

// Segment is a straight line from Start to End, in format units.
type Segment struct {
	Start FixedPoint `json:"start"`
	End   FixedPoint `json:"end"`
}

// ArcDirection is the winding direction of an ArcSegment.
type ArcDirection int

const (
	// Clockwise winding.
	Clockwise ArcDirection = iota
	// CounterClockwise winding.
	CounterClockwise
)

// ArcSegment is a circular arc from Start to End, with the arc's center
// given relative to Start.
type ArcSegment struct {
	Segment
	CenterOffset FixedPoint   `json:"center_offset"`
	Direction    ArcDirection `json:"direction"`
}

// IsCircle reports whether the arc's start and end coincide, i.e. it
// describes a full circle rather than a partial arc.
func (a ArcSegment) IsCircle() bool {
	return a.Start == a.End
}

// Center returns the arc's center point in format units.
func (a ArcSegment) Center() FixedPoint {
	return a.Start.Add(a.CenterOffset)
}

// RealSegment is a straight line from Start to End, in converted real
// coordinates (see RealPoint), as passed to a Serializer.
type RealSegment struct {
	Start RealPoint
	End   RealPoint
}

// RealArcSegment is a circular arc from Start to End, in converted real
// coordinates (see RealPoint), as passed to a Serializer.
type RealArcSegment struct {
	RealSegment
	Center    RealPoint
	Direction ArcDirection
}

// RealContourSegment is either a straight RealSegment or a curved
// RealArcSegment, in absolute converted real coordinates, as passed to a
// Serializer.
type RealContourSegment struct {
	Line *RealSegment    `json:"line,omitempty"`
	Arc  *RealArcSegment `json:"arc,omitempty"`
}

// RealContour is a Contour resolved to absolute, real-valued coordinates,
// as passed to a Serializer.
type RealContour struct {
	Segments []RealContourSegment `json:"segments"`
}
