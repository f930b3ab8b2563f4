// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

// Polarity selects whether an object adds (Dark) or subtracts (Clear)
// material during layer composition.
type Polarity int

const (
	// Dark adds material.
	Dark Polarity = iota
	// Clear subtracts material.
	Clear
)

// String implements fmt.Stringer.
func (p Polarity) String() string {
	if p == Clear {
		return "Clear"
	}
	return "Dark"
}

// Mirroring selects which axes an aperture is mirrored across.
type Mirroring int

const (
	// MirrorNone applies no mirroring.
	MirrorNone Mirroring = iota
	// MirrorX mirrors across the X axis.
	MirrorX
	// MirrorY mirrors across the Y axis.
	MirrorY
	// MirrorXY mirrors across both axes.
	MirrorXY
)

// Transform is the layer-object transformation applied to an aperture when
// it produces a graphical object: mirroring, then scaling, then rotation,
// plus the polarity under which the object is composed.
type Transform struct {
	Polarity Polarity `json:"polarity"`
	Mirror   Mirroring `json:"mirror"`
	// Rotation in degrees, counter-clockwise, about the origin.
	Rotation float64 `json:"rotation"`
	// Scaling factor, must stay > 0.
	Scaling float64 `json:"scaling"`
}

// IdentityTransform returns the neutral transform: Dark polarity, no
// mirroring, zero rotation, unit scaling.
func IdentityTransform() Transform {
	return Transform{Polarity: Dark, Mirror: MirrorNone, Rotation: 0, Scaling: 1}
}

func (m Mirroring) axes() (mirrorX, mirrorY bool) {
	switch m {
	case MirrorX:
		return true, false
	case MirrorY:
		return false, true
	case MirrorXY:
		return true, true
	default:
		return false, false
	}
}

func mirroringFromAxes(mirrorX, mirrorY bool) Mirroring {
	switch {
	case mirrorX && mirrorY:
		return MirrorXY
	case mirrorX:
		return MirrorX
	case mirrorY:
		return MirrorY
	default:
		return MirrorNone
	}
}

// Apply transforms p: mirror first, then scale, then rotate about the
// origin.
func (t Transform) Apply(p RealPoint) RealPoint {
	mirrorX, mirrorY := t.Mirror.axes()
	p = p.Mirror(mirrorX, mirrorY)
	p = p.Scale(t.Scaling)
	p = p.Rotate(t.Rotation)
	return p
}

// ApplyScaling scales a scalar (e.g. a diameter) without mirroring or
// rotation.
func (t Transform) ApplyScaling(value float64) float64 {
	return value * t.Scaling
}

// Stack composes a child transform onto the receiver, the parent. Scaling
// factors multiply, rotations add, polarity XORs (a Clear child inverts the
// parent's polarity), and mirror flags XOR per axis. This models a flashed
// block or step-and-repeat frame replaying its contents with the flash's
// transform stacked onto each inner object's own baked transform.
func (t Transform) Stack(child Transform) Transform {
	parentX, parentY := t.Mirror.axes()
	childX, childY := child.Mirror.axes()

	polarity := t.Polarity
	if child.Polarity == Clear {
		polarity = invertPolarity(polarity)
	}

	return Transform{
		Polarity: polarity,
		Mirror:   mirroringFromAxes(parentX != childX, parentY != childY),
		Rotation: t.Rotation + child.Rotation,
		Scaling:  t.Scaling * child.Scaling,
	}
}

func invertPolarity(p Polarity) Polarity {
	if p == Dark {
		return Clear
	}
	return Dark
}

// PolarityFromCommand parses the LP command's polarity field ("D" or "C").
func PolarityFromCommand(s string) (Polarity, error) {
	switch s {
	case "D":
		return Dark, nil
	case "C":
		return Clear, nil
	default:
		return Dark, newParseError("invalid polarity command: " + s)
	}
}

// MirroringFromCommand parses the LM command's mirroring field ("N", "X",
// "Y", or "XY").
func MirroringFromCommand(s string) (Mirroring, error) {
	switch s {
	case "N":
		return MirrorNone, nil
	case "X":
		return MirrorX, nil
	case "Y":
		return MirrorY, nil
	case "XY":
		return MirrorXY, nil
	default:
		return MirrorNone, newParseError("invalid mirroring command: " + s)
	}
}
