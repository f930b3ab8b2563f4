// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "math"

// MacroExposure is a macro primitive's local exposure: ON composes as Dark,
// OFF as Clear, within the enclosing Macro aperture.
type MacroExposure int

const (
	// MacroOff clears.
	MacroOff MacroExposure = iota
	// MacroOn adds.
	MacroOn
)

// MacroExposureFromNum maps a macro body's leading exposure digit (0 or 1)
// to a MacroExposure.
func MacroExposureFromNum(n int) (MacroExposure, error) {
	switch n {
	case 0:
		return MacroOff, nil
	case 1:
		return MacroOn, nil
	default:
		return MacroOff, newParseErrorf("invalid macro exposure: %d", n)
	}
}

// MacroPrimitive is a simple shape that composes a Macro aperture. A
// primitive always rotates around its parent macro's origin, before the
// aperture's own flash-time Transform is applied.
type MacroPrimitive interface {
	Exposure() MacroExposure
	Box() Box
	ApplyTransform(t Transform)
	Clone() MacroPrimitive
	Serialize(s Serializer, target SerialItem, origin RealPoint)
}

// MacroComment is a no-op primitive (code 0): the rest of its body word is
// free-form comment text.
type MacroComment struct{}

func (MacroComment) Exposure() MacroExposure                              { return MacroOff }
func (MacroComment) Box() Box                                             { return Box{} }
func (MacroComment) ApplyTransform(Transform)                             {}
func (MacroComment) Clone() MacroPrimitive                                { return MacroComment{} }
func (MacroComment) Serialize(Serializer, SerialItem, RealPoint)          {}

// MacroCircle is a circle primitive defined by its center and diameter.
type MacroCircle struct {
	exposure MacroExposure
	Diameter float64
	Center   RealPoint
}

// NewMacroCircleFromParams builds a MacroCircle from a macro body's
// field list: exposure, diameter, center x, center y, [rotation].
func NewMacroCircleFromParams(params []float64) (*MacroCircle, error) {
	if len(params) < 4 || len(params) > 5 {
		return nil, newParseError("macro circle expects 4 to 5 parameters")
	}
	exposure, err := MacroExposureFromNum(int(params[0]))
	if err != nil {
		return nil, err
	}
	diameter := params[1]
	if diameter < 0 {
		return nil, newParseError("circle diameter must be >= 0")
	}
	center := RealPoint{X: params[2], Y: params[3]}
	rotation := 0.0
	if len(params) > 4 {
		rotation = params[4]
	}
	return &MacroCircle{exposure: exposure, Diameter: diameter, Center: center.Rotate(rotation)}, nil
}

func (c *MacroCircle) Exposure() MacroExposure { return c.exposure }

func (c *MacroCircle) Box() Box {
	r := c.Diameter / 2
	return NewBox(c.Diameter, c.Diameter, c.Center.X-r, c.Center.Y-r)
}

func (c *MacroCircle) ApplyTransform(t Transform) {
	c.Center = t.Apply(c.Center)
	c.Diameter = t.ApplyScaling(c.Diameter)
}

func (c *MacroCircle) Clone() MacroPrimitive {
	clone := *c
	return &clone
}

func (c *MacroCircle) Serialize(s Serializer, target SerialItem, origin RealPoint) {
	s.AddCircle(target, c.Diameter/2, origin.Add(c.Center))
}

// MacroVectorLine is a rectangle primitive defined by its line width and
// start/end points.
type MacroVectorLine struct {
	exposure MacroExposure
	Width    float64
	Start    RealPoint
	End      RealPoint
}

// NewMacroVectorLineFromParams builds a MacroVectorLine from: exposure,
// width, start x, start y, end x, end y, rotation.
func NewMacroVectorLineFromParams(params []float64) (*MacroVectorLine, error) {
	if len(params) != 7 {
		return nil, newParseError("macro vector line expects 7 parameters")
	}
	exposure, err := MacroExposureFromNum(int(params[0]))
	if err != nil {
		return nil, err
	}
	width := params[1]
	if width < 0 {
		return nil, newParseError("vector line width must be >= 0")
	}
	start := RealPoint{X: params[2], Y: params[3]}
	end := RealPoint{X: params[4], Y: params[5]}
	rotation := params[6]
	return &MacroVectorLine{
		exposure: exposure,
		Width:    width,
		Start:    start.Rotate(rotation),
		End:      end.Rotate(rotation),
	}, nil
}

func (v *MacroVectorLine) Exposure() MacroExposure { return v.exposure }

func (v *MacroVectorLine) Box() Box {
	r := v.Width / 2
	b := NewBox(0, 0, v.Start.X, v.Start.Y).Extend(NewBox(0, 0, v.End.X, v.End.Y))
	return b.Pad(r)
}

func (v *MacroVectorLine) ApplyTransform(t Transform) {
	v.Start = t.Apply(v.Start)
	v.End = t.Apply(v.End)
	v.Width = t.ApplyScaling(v.Width)
}

func (v *MacroVectorLine) Clone() MacroPrimitive {
	clone := *v
	return &clone
}

func (v *MacroVectorLine) Serialize(s Serializer, target SerialItem, origin RealPoint) {
	s.AddDraw(target, v.Width, RealSegment{Start: origin.Add(v.Start), End: origin.Add(v.End)})
}

// MacroCenterLine is a rectangle primitive defined by its width, height and
// center point.
type MacroCenterLine struct {
	exposure MacroExposure
	Width    float64
	Height   float64
	Center   RealPoint
	rotation float64
}

// NewMacroCenterLineFromParams builds a MacroCenterLine from: exposure,
// width, height, center x, center y, rotation.
func NewMacroCenterLineFromParams(params []float64) (*MacroCenterLine, error) {
	if len(params) != 6 {
		return nil, newParseError("macro center line expects 6 parameters")
	}
	exposure, err := MacroExposureFromNum(int(params[0]))
	if err != nil {
		return nil, err
	}
	width, height := params[1], params[2]
	if width < 0 || height < 0 {
		return nil, newParseError("center line width and height must be >= 0")
	}
	center := RealPoint{X: params[3], Y: params[4]}
	rotation := params[5]
	return &MacroCenterLine{
		exposure: exposure,
		Width:    width,
		Height:   height,
		Center:   center.Rotate(rotation),
		rotation: rotation,
	}, nil
}

func (c *MacroCenterLine) Exposure() MacroExposure { return c.exposure }

func (c *MacroCenterLine) vertices() []RealPoint {
	hw, hh := c.Width/2, c.Height/2
	corners := []RealPoint{
		{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh},
	}
	out := make([]RealPoint, len(corners))
	for i, p := range corners {
		out[i] = p.Rotate(c.rotation).Add(c.Center)
	}
	return out
}

func (c *MacroCenterLine) Box() Box {
	vs := c.vertices()
	b := NewBox(0, 0, vs[0].X, vs[0].Y)
	for _, p := range vs[1:] {
		b = b.Extend(NewBox(0, 0, p.X, p.Y))
	}
	return b
}

func (c *MacroCenterLine) ApplyTransform(t Transform) {
	c.Center = t.Apply(c.Center)
	c.Width = t.ApplyScaling(c.Width)
	c.Height = t.ApplyScaling(c.Height)
	c.rotation = 0
}

func (c *MacroCenterLine) Clone() MacroPrimitive {
	clone := *c
	return &clone
}

func (c *MacroCenterLine) Serialize(s Serializer, target SerialItem, origin RealPoint) {
	vs := c.vertices()
	points := make([]RealPoint, len(vs))
	for i, p := range vs {
		points[i] = origin.Add(p)
	}
	s.AddPolygon(target, points)
}

// MacroOutline is a polygon primitive defined by an explicit, closed vertex
// list.
type MacroOutline struct {
	exposure MacroExposure
	Vertices []RealPoint
}

// NewMacroOutlineFromParams builds a MacroOutline from: exposure, n (vertex
// count minus one), x1, y1, ..., x(n+1), y(n+1), rotation.
func NewMacroOutlineFromParams(params []float64) (*MacroOutline, error) {
	if len(params) < 5 {
		return nil, newParseError("macro outline expects at least 5 parameters")
	}
	exposure, err := MacroExposureFromNum(int(params[0]))
	if err != nil {
		return nil, err
	}
	num := int(params[1]) + 1
	if len(params) != 5+2*(num-1) {
		return nil, newParseError("macro outline expects 5+2n parameters")
	}
	vertices := make([]RealPoint, 0, num)
	idx := 2
	for i := 0; i < num; i++ {
		vertices = append(vertices, RealPoint{X: params[idx], Y: params[idx+1]})
		idx += 2
	}
	rotation := params[len(params)-1]
	for i, v := range vertices {
		vertices[i] = v.Rotate(rotation)
	}
	return &MacroOutline{exposure: exposure, Vertices: vertices}, nil
}

func (o *MacroOutline) Exposure() MacroExposure { return o.exposure }

func (o *MacroOutline) Box() Box {
	b := NewBox(0, 0, o.Vertices[0].X, o.Vertices[0].Y)
	for _, p := range o.Vertices[1:] {
		b = b.Extend(NewBox(0, 0, p.X, p.Y))
	}
	return b
}

func (o *MacroOutline) ApplyTransform(t Transform) {
	for i, p := range o.Vertices {
		o.Vertices[i] = t.Apply(p)
	}
}

func (o *MacroOutline) Clone() MacroPrimitive {
	clone := *o
	clone.Vertices = append([]RealPoint(nil), o.Vertices...)
	return &clone
}

func (o *MacroOutline) Serialize(s Serializer, target SerialItem, origin RealPoint) {
	points := make([]RealPoint, len(o.Vertices))
	for i, p := range o.Vertices {
		points[i] = origin.Add(p)
	}
	s.AddPolygon(target, points)
}

// MacroPolygon is a regular polygon primitive circumscribed by a circle of
// the given outer diameter.
type MacroPolygon struct {
	exposure    MacroExposure
	NumVertices int
	Center      RealPoint
	Diameter    float64
	rotation    float64
}

// NewMacroPolygonFromParams builds a MacroPolygon from: exposure,
// numVertices, center x, center y, diameter, rotation.
func NewMacroPolygonFromParams(params []float64) (*MacroPolygon, error) {
	if len(params) != 6 {
		return nil, newParseError("macro polygon expects 6 parameters")
	}
	exposure, err := MacroExposureFromNum(int(params[0]))
	if err != nil {
		return nil, err
	}
	num := int(params[1])
	if num < 3 || num > 12 {
		return nil, newParseError("number of vertices must be from 3 to 12")
	}
	center := RealPoint{X: params[2], Y: params[3]}
	diameter := params[4]
	if diameter < 0 {
		return nil, newParseError("polygon diameter must be >= 0")
	}
	rotation := params[5]
	return &MacroPolygon{
		exposure:    exposure,
		NumVertices: num,
		Center:      center.Rotate(rotation),
		Diameter:    diameter,
		rotation:    rotation,
	}, nil
}

func (p *MacroPolygon) Exposure() MacroExposure { return p.exposure }

func (p *MacroPolygon) vertices() []RealPoint {
	r := p.Diameter / 2
	out := make([]RealPoint, p.NumVertices)
	for i := 0; i < p.NumVertices; i++ {
		angle := 360.0 * float64(i) / float64(p.NumVertices)
		out[i] = RealPoint{X: r, Y: 0}.Rotate(angle + p.rotation).Add(p.Center)
	}
	return out
}

func (p *MacroPolygon) Box() Box {
	vs := p.vertices()
	b := NewBox(0, 0, vs[0].X, vs[0].Y)
	for _, v := range vs[1:] {
		b = b.Extend(NewBox(0, 0, v.X, v.Y))
	}
	return b
}

func (p *MacroPolygon) ApplyTransform(t Transform) {
	p.Center = t.Apply(p.Center)
	p.Diameter = t.ApplyScaling(p.Diameter)
	p.rotation += t.Rotation
}

func (p *MacroPolygon) Clone() MacroPrimitive {
	clone := *p
	return &clone
}

func (p *MacroPolygon) Serialize(s Serializer, target SerialItem, origin RealPoint) {
	vs := p.vertices()
	points := make([]RealPoint, len(vs))
	for i, v := range vs {
		points[i] = origin.Add(v)
	}
	s.AddPolygon(target, points)
}

// MacroThermal is a ring interrupted by four gaps, always exposed ON.
// Geometry is approximated, per the ring-minus-four-rectangles sufficiency
// note, as four quadrant polygon pads whose arcs are subdivided into short
// line segments.
type MacroThermal struct {
	Center        RealPoint
	OuterDiameter float64
	InnerDiameter float64
	GapThickness  float64
	rotation      float64
}

// NewMacroThermalFromParams builds a MacroThermal from: center x, center y,
// outer diameter, inner diameter, gap thickness, rotation.
func NewMacroThermalFromParams(params []float64) (*MacroThermal, error) {
	if len(params) != 6 {
		return nil, newParseError("macro thermal expects 6 parameters")
	}
	center := RealPoint{X: params[0], Y: params[1]}
	outer, inner, gap := params[2], params[3], params[4]
	rotation := params[5]
	if outer < 0 || inner < 0 || gap < 0 {
		return nil, newParseError("thermal diameters and gap must be >= 0")
	}
	if outer <= inner {
		return nil, newParseError("thermal outer diameter must be larger than inner diameter")
	}
	if gap >= outer/math.Sqrt2 {
		return nil, newParseError("thermal gap thickness must be less than (outer diameter)/sqrt(2)")
	}
	return &MacroThermal{Center: center.Rotate(rotation), OuterDiameter: outer, InnerDiameter: inner, GapThickness: gap, rotation: rotation}, nil
}

func (MacroThermal) Exposure() MacroExposure { return MacroOn }

func (t *MacroThermal) Box() Box {
	r := t.OuterDiameter / 2
	return NewBox(t.OuterDiameter, t.OuterDiameter, t.Center.X-r, t.Center.Y-r)
}

func (t *MacroThermal) ApplyTransform(tr Transform) {
	t.Center = tr.Apply(t.Center)
	t.OuterDiameter = tr.ApplyScaling(t.OuterDiameter)
	t.InnerDiameter = tr.ApplyScaling(t.InnerDiameter)
	t.GapThickness = tr.ApplyScaling(t.GapThickness)
	t.rotation += tr.Rotation
}

func (t *MacroThermal) Clone() MacroPrimitive {
	clone := *t
	return &clone
}

const thermalArcSteps = 8

func (t *MacroThermal) Serialize(s Serializer, target SerialItem, origin RealPoint) {
	outerR := t.OuterDiameter / 2
	innerR := t.InnerDiameter / 2
	// Each arc stops where it meets a gap edge, a line at distance gap/2
	// from the gap's axis, so the outer and inner arcs use their own angles.
	outerHalfGap := math.Asin(t.GapThickness/2/outerR) * 180 / math.Pi
	innerHalfGap := math.Asin(t.GapThickness/2/innerR) * 180 / math.Pi
	for quadrant := 0; quadrant < 4; quadrant++ {
		base := float64(quadrant)*90 + t.rotation
		var points []RealPoint
		for i := 0; i <= thermalArcSteps; i++ {
			angle := base + outerHalfGap + (90-2*outerHalfGap)*float64(i)/float64(thermalArcSteps)
			points = append(points, RealPoint{X: outerR, Y: 0}.Rotate(angle))
		}
		for i := thermalArcSteps; i >= 0; i-- {
			angle := base + innerHalfGap + (90-2*innerHalfGap)*float64(i)/float64(thermalArcSteps)
			points = append(points, RealPoint{X: innerR, Y: 0}.Rotate(angle))
		}
		for i, p := range points {
			points[i] = p.Add(t.Center).Add(origin)
		}
		s.AddPolygon(target, points)
	}
}
