// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "math"

// Unit is the measurement unit declared by the MO command.
type Unit int

const (
	// Millimeter unit.
	Millimeter Unit = iota
	// Inch unit.
	Inch
)

// UnitFromCommand parses the MO command's field ("MM" or "IN").
func UnitFromCommand(s string) (Unit, error) {
	switch s {
	case "MM":
		return Millimeter, nil
	case "IN":
		return Inch, nil
	default:
		return Millimeter, newParseErrorf("invalid unit command: %s", s)
	}
}

// CoordinateFormat describes the fixed-point convention declared by the FS
// command: how many integer and decimal digits a coordinate field carries.
type CoordinateFormat struct {
	IntegerDigits int `json:"integer_digits"`
	DecimalDigits int `json:"decimal_digits"`
}

// NewCoordinateFormat validates and builds a CoordinateFormat. Integer
// digits must be in [1,6]; decimal digits must be 5 or 6.
func NewCoordinateFormat(integerDigits, decimalDigits int) (CoordinateFormat, error) {
	if integerDigits < 1 || integerDigits > 6 {
		return CoordinateFormat{}, newParseErrorf("invalid integer digit count: %d", integerDigits)
	}
	if decimalDigits != 5 && decimalDigits != 6 {
		return CoordinateFormat{}, newParseErrorf("invalid decimal digit count: %d", decimalDigits)
	}
	return CoordinateFormat{IntegerDigits: integerDigits, DecimalDigits: decimalDigits}, nil
}

// Convert turns a FixedPoint parsed directly from the command stream into a
// RealPoint, by multiplying by 10^(-DecimalDigits). The result is in the
// file's declared unit: inch coordinates are not converted to millimeters.
func (f CoordinateFormat) Convert(p FixedPoint) RealPoint {
	scale := math.Pow(10, -float64(f.DecimalDigits))
	return RealPoint{X: float64(p.X) * scale, Y: float64(p.Y) * scale}
}

// ConvertScalar converts a single fixed-point magnitude (e.g. an aperture
// dimension already expressed in format units) the same way Convert does.
func (f CoordinateFormat) ConvertScalar(v int32) float64 {
	return float64(v) * math.Pow(10, -float64(f.DecimalDigits))
}

// CoordinateData is the parsed `[X<int>][Y<int>][I<int>J<int>]` payload of
// a D01/D02/D03 operation, prior to completion against the current point.
type CoordinateData struct {
	X, Y   *int32
	I, J   *int32
}

// HasXY reports whether either X or Y was present in the command.
func (c CoordinateData) HasXY() bool {
	return c.X != nil || c.Y != nil
}

// HasIJ reports whether the arc-center offset was present in the command.
func (c CoordinateData) HasIJ() bool {
	return c.I != nil || c.J != nil
}
