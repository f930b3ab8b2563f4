// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

// Aperture is a 2D plane figure, the basic tool used to create graphical
// objects via flash and draw operations. Every aperture carries its own
// Transform, applied during serialization rather than baked in eagerly. A
// Macro is the exception for geometry: its ApplyTransform moves, scales and
// rotates the primitives at once, and only the polarity is applied when it
// is serialized.
type Aperture interface {
	Box(format CoordinateFormat) Box
	ApplyTransform(t Transform)
	Clone() Aperture
	Serialize(s Serializer, origin RealPoint, format CoordinateFormat)
}

type apertureBase struct {
	Transform Transform
}

// Circle is a round aperture with an optional central hole.
type Circle struct {
	apertureBase
	Diameter     float64 `json:"diameter"`
	HoleDiameter float64 `json:"hole_diameter"`
}

// NewCircle validates and builds a Circle aperture.
func NewCircle(diameter, hole float64) (*Circle, error) {
	if diameter < 0 {
		return nil, newParseError("circle diameter must be >= 0")
	}
	if hole < 0 {
		return nil, newParseError("circle hole diameter must be >= 0")
	}
	return &Circle{apertureBase: apertureBase{Transform: IdentityTransform()}, Diameter: diameter, HoleDiameter: hole}, nil
}

func (c *Circle) Box(CoordinateFormat) Box {
	d := c.Transform.ApplyScaling(c.Diameter)
	return NewBox(d, d, -d/2, -d/2)
}

func (c *Circle) ApplyTransform(t Transform) { c.Transform = c.Transform.Stack(t) }

func (c *Circle) Clone() Aperture {
	clone := *c
	return &clone
}

func (c *Circle) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	target := s.GetTarget(c.Transform.Polarity)
	s.AddCircle(target, c.Transform.ApplyScaling(c.Diameter)/2, origin)
	if c.HoleDiameter > 0 {
		hole := s.GetTarget(invertPolarity(c.Transform.Polarity))
		s.AddCircle(hole, c.Transform.ApplyScaling(c.HoleDiameter)/2, origin)
	}
}

// Rectangle is a rectangular aperture with an optional central hole.
type Rectangle struct {
	apertureBase
	XSize        float64 `json:"x_size"`
	YSize        float64 `json:"y_size"`
	HoleDiameter float64 `json:"hole_diameter"`
}

// NewRectangle validates and builds a Rectangle aperture.
func NewRectangle(x, y, hole float64) (*Rectangle, error) {
	if x < 0 || y < 0 {
		return nil, newParseError("rectangle dimensions must be >= 0")
	}
	if hole < 0 {
		return nil, newParseError("rectangle hole diameter must be >= 0")
	}
	return &Rectangle{apertureBase: apertureBase{Transform: IdentityTransform()}, XSize: x, YSize: y, HoleDiameter: hole}, nil
}

func (r *Rectangle) vertices() []RealPoint {
	hx, hy := r.XSize/2, r.YSize/2
	corners := []RealPoint{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}
	out := make([]RealPoint, len(corners))
	for i, p := range corners {
		out[i] = r.Transform.Apply(p)
	}
	return out
}

func (r *Rectangle) Box(CoordinateFormat) Box {
	vs := r.vertices()
	b := NewBox(0, 0, vs[0].X, vs[0].Y)
	for _, p := range vs[1:] {
		b = b.Extend(NewBox(0, 0, p.X, p.Y))
	}
	return b
}

func (r *Rectangle) ApplyTransform(t Transform) { r.Transform = r.Transform.Stack(t) }

func (r *Rectangle) Clone() Aperture {
	clone := *r
	return &clone
}

func (r *Rectangle) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	target := s.GetTarget(r.Transform.Polarity)
	vs := r.vertices()
	points := make([]RealPoint, len(vs))
	for i, p := range vs {
		points[i] = p.Add(origin)
	}
	s.AddPolygon(target, points)
	if r.HoleDiameter > 0 {
		hole := s.GetTarget(invertPolarity(r.Transform.Polarity))
		s.AddCircle(hole, r.Transform.ApplyScaling(r.HoleDiameter)/2, origin)
	}
}

// Obround is a rectangle with its short sides rounded into half-circles.
type Obround struct {
	apertureBase
	XSize        float64 `json:"x_size"`
	YSize        float64 `json:"y_size"`
	HoleDiameter float64 `json:"hole_diameter"`
}

// NewObround validates and builds an Obround aperture.
func NewObround(x, y, hole float64) (*Obround, error) {
	if x < 0 || y < 0 {
		return nil, newParseError("obround dimensions must be >= 0")
	}
	if hole < 0 {
		return nil, newParseError("obround hole diameter must be >= 0")
	}
	return &Obround{apertureBase: apertureBase{Transform: IdentityTransform()}, XSize: x, YSize: y, HoleDiameter: hole}, nil
}

func (o *Obround) Box(CoordinateFormat) Box {
	x := o.Transform.ApplyScaling(o.XSize)
	y := o.Transform.ApplyScaling(o.YSize)
	return NewBox(x, y, -x/2, -y/2)
}

func (o *Obround) ApplyTransform(t Transform) { o.Transform = o.Transform.Stack(t) }

func (o *Obround) Clone() Aperture {
	clone := *o
	return &clone
}

func (o *Obround) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	target := s.GetTarget(o.Transform.Polarity)
	x := o.Transform.ApplyScaling(o.XSize)
	y := o.Transform.ApplyScaling(o.YSize)
	if x >= y {
		half := (x - y) / 2
		start := o.Transform.Apply(RealPoint{X: -half, Y: 0}).Add(origin)
		end := o.Transform.Apply(RealPoint{X: half, Y: 0}).Add(origin)
		s.AddDraw(target, y, RealSegment{Start: start, End: end})
	} else {
		half := (y - x) / 2
		start := o.Transform.Apply(RealPoint{X: 0, Y: -half}).Add(origin)
		end := o.Transform.Apply(RealPoint{X: 0, Y: half}).Add(origin)
		s.AddDraw(target, x, RealSegment{Start: start, End: end})
	}
	if o.HoleDiameter > 0 {
		hole := s.GetTarget(invertPolarity(o.Transform.Polarity))
		s.AddCircle(hole, o.Transform.ApplyScaling(o.HoleDiameter)/2, origin)
	}
}

// Polygon is a regular polygon aperture circumscribed by a circle of the
// given outer diameter.
type Polygon struct {
	apertureBase
	OuterDiameter float64 `json:"outer_diameter"`
	NumVertices   int     `json:"num_vertices"`
	Rotation      float64 `json:"rotation"`
	HoleDiameter  float64 `json:"hole_diameter"`
}

// NewPolygon validates and builds a Polygon aperture.
func NewPolygon(outer float64, numVertices int, rotation, hole float64) (*Polygon, error) {
	if outer < 0 {
		return nil, newParseError("polygon outer diameter must be >= 0")
	}
	if numVertices < 3 || numVertices > 12 {
		return nil, newParseError("polygon vertex count must be in [3,12]")
	}
	if hole < 0 {
		return nil, newParseError("polygon hole diameter must be >= 0")
	}
	return &Polygon{apertureBase: apertureBase{Transform: IdentityTransform()}, OuterDiameter: outer, NumVertices: numVertices, Rotation: rotation, HoleDiameter: hole}, nil
}

func (p *Polygon) vertices() []RealPoint {
	r := p.OuterDiameter / 2
	out := make([]RealPoint, p.NumVertices)
	for i := 0; i < p.NumVertices; i++ {
		angle := 360.0*float64(i)/float64(p.NumVertices) + p.Rotation
		out[i] = p.Transform.Apply(RealPoint{X: r, Y: 0}.Rotate(angle))
	}
	return out
}

func (p *Polygon) Box(CoordinateFormat) Box {
	vs := p.vertices()
	b := NewBox(0, 0, vs[0].X, vs[0].Y)
	for _, v := range vs[1:] {
		b = b.Extend(NewBox(0, 0, v.X, v.Y))
	}
	return b
}

func (p *Polygon) ApplyTransform(t Transform) { p.Transform = p.Transform.Stack(t) }

func (p *Polygon) Clone() Aperture {
	clone := *p
	return &clone
}

func (p *Polygon) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	target := s.GetTarget(p.Transform.Polarity)
	vs := p.vertices()
	points := make([]RealPoint, len(vs))
	for i, v := range vs {
		points[i] = v.Add(origin)
	}
	s.AddPolygon(target, points)
	if p.HoleDiameter > 0 {
		hole := s.GetTarget(invertPolarity(p.Transform.Polarity))
		s.AddCircle(hole, p.Transform.ApplyScaling(p.HoleDiameter)/2, origin)
	}
}

// Macro is a compound aperture built from a list of macro primitives.
type Macro struct {
	apertureBase
	Primitives []MacroPrimitive `json:"-"`
}

// NewMacro builds an empty Macro aperture ready to receive primitives.
func NewMacro() *Macro {
	return &Macro{apertureBase: apertureBase{Transform: IdentityTransform()}}
}

// AddPrimitive appends a primitive to the macro.
func (m *Macro) AddPrimitive(p MacroPrimitive) {
	m.Primitives = append(m.Primitives, p)
}

func (m *Macro) Box(CoordinateFormat) Box {
	if len(m.Primitives) == 0 {
		return Box{}
	}
	box := m.Primitives[0].Box()
	for _, p := range m.Primitives[1:] {
		box = box.Extend(p.Box())
	}
	return box
}

func (m *Macro) ApplyTransform(t Transform) {
	for _, p := range m.Primitives {
		p.ApplyTransform(t)
	}
	m.Transform = m.Transform.Stack(t)
}

func (m *Macro) Clone() Aperture {
	clone := &Macro{apertureBase: m.apertureBase, Primitives: make([]MacroPrimitive, len(m.Primitives))}
	for i, p := range m.Primitives {
		clone.Primitives[i] = p.Clone()
	}
	return clone
}

func (m *Macro) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	group := s.NewGroup(s.GetTarget(m.Transform.Polarity))
	on := s.NewGroup(group)
	var off SerialItem
	lastExposure := MacroOn
	box := m.Box(format).Translate(origin)
	for _, p := range m.Primitives {
		var target SerialItem
		if p.Exposure() == MacroOn {
			if lastExposure == MacroOff {
				on = s.NewGroup(group)
			}
			target = on
		} else {
			if off == nil {
				off = s.NewMask(box)
				s.SetMask(on, off)
			}
			target = off
		}
		p.Serialize(s, target, origin)
		lastExposure = p.Exposure()
	}
}

// Block is a recursive aperture whose shape is an inlined list of
// graphical objects, stamped at the flash's origin.
type Block struct {
	apertureBase
	Objects []GraphicalObject `json:"-"`
}

// NewBlockAperture builds an empty Block aperture ready to receive
// objects.
func NewBlockAperture() *Block {
	return &Block{apertureBase: apertureBase{Transform: IdentityTransform()}}
}

// AddObject appends an object to the block's object list.
func (b *Block) AddObject(o GraphicalObject) {
	b.Objects = append(b.Objects, o)
}

func (b *Block) Box(format CoordinateFormat) Box {
	if len(b.Objects) == 0 {
		return Box{}
	}
	box := b.Objects[0].Box(format)
	for _, o := range b.Objects[1:] {
		box = box.Extend(o.Box(format))
	}
	return box
}

func (b *Block) ApplyTransform(t Transform) { b.Transform = b.Transform.Stack(t) }

func (b *Block) Clone() Aperture {
	clone := &Block{apertureBase: b.apertureBase, Objects: make([]GraphicalObject, len(b.Objects))}
	for i, o := range b.Objects {
		clone.Objects[i] = o.Clone()
	}
	return clone
}

func (b *Block) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	for _, o := range b.Objects {
		stamped := o.Clone()
		stamped.ApplyTransform(b.Transform)
		stamped.Serialize(s, origin, format)
	}
}
