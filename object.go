// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

// Contour is an ordered, connected chain of linear or circular segments. A
// contour is closed iff it has at least one segment, every segment's start
// equals the prior segment's end, and the last segment's end equals the
// first segment's start. Zero-length segments are never permitted.
type Contour struct {
	Segments []ContourSegment `json:"segments"`
}

// ContourSegment is either a straight Segment or a curved ArcSegment.
type ContourSegment struct {
	Line *Segment    `json:"line,omitempty"`
	Arc  *ArcSegment `json:"arc,omitempty"`
}

func segmentStartEnd(s ContourSegment) (start, end FixedPoint) {
	if s.Arc != nil {
		return s.Arc.Start, s.Arc.End
	}
	return s.Line.Start, s.Line.End
}

// AddSegment appends a segment, rejecting zero-length segments.
func (c *Contour) AddSegment(s ContourSegment) error {
	start, end := segmentStartEnd(s)
	if start == end {
		return newLogicError("contour cannot have a zero-length segment")
	}
	c.Segments = append(c.Segments, s)
	return nil
}

// IsClosed reports whether the contour's segments chain end-to-start and
// its last end coincides with its first start. An empty contour is never
// considered closed.
func (c Contour) IsClosed() bool {
	if len(c.Segments) == 0 {
		return false
	}
	firstStart, _ := segmentStartEnd(c.Segments[0])
	_, lastEnd := segmentStartEnd(c.Segments[len(c.Segments)-1])
	if firstStart != lastEnd {
		return false
	}
	for i := 1; i < len(c.Segments); i++ {
		_, prevEnd := segmentStartEnd(c.Segments[i-1])
		start, _ := segmentStartEnd(c.Segments[i])
		if start != prevEnd {
			return false
		}
	}
	return true
}

// GraphicalObject is the leaf of the resolved scene graph.
type GraphicalObject interface {
	Polarity() Polarity
	SetPolarity(p Polarity)
	Box(format CoordinateFormat) Box
	ApplyTransform(t Transform)
	Clone() GraphicalObject
	Serialize(s Serializer, origin RealPoint, format CoordinateFormat)
}

type polarityHolder struct {
	polarity Polarity
}

func (p *polarityHolder) Polarity() Polarity      { return p.polarity }
func (p *polarityHolder) SetPolarity(pol Polarity) { p.polarity = pol }

// Draw is a stroked straight line segment, drawn with a circle aperture.
type Draw struct {
	polarityHolder
	Segment   Segment
	DrawWidth float64
}

// NewDraw builds a Draw from a segment and the Circle aperture stamping
// it; aperture must be a *Circle.
func NewDraw(segment Segment, aperture Aperture) (*Draw, error) {
	circle, ok := aperture.(*Circle)
	if !ok {
		return nil, newLogicError("draw only supports circle apertures")
	}
	d := &Draw{Segment: segment, DrawWidth: circle.Diameter}
	d.polarity = Dark
	return d, nil
}

func (d *Draw) Box(format CoordinateFormat) Box {
	start := format.Convert(d.Segment.Start)
	end := format.Convert(d.Segment.End)
	b := NewBox(0, 0, start.X, start.Y).Extend(NewBox(0, 0, end.X, end.Y))
	return b.Pad(d.DrawWidth / 2)
}

func (d *Draw) ApplyTransform(t Transform) {
	d.DrawWidth = t.ApplyScaling(d.DrawWidth)
}

func (d *Draw) Clone() GraphicalObject {
	clone := *d
	return &clone
}

func (d *Draw) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	start := format.Convert(d.Segment.Start).Add(origin)
	end := format.Convert(d.Segment.End).Add(origin)
	target := s.GetTarget(d.polarity)
	s.AddDraw(target, d.DrawWidth, RealSegment{Start: start, End: end})
}

// Arc is a stroked circular arc, drawn with a circle aperture.
type Arc struct {
	polarityHolder
	Segment   ArcSegment
	DrawWidth float64
}

// NewArc builds an Arc from an arc segment and the Circle aperture
// stamping it; aperture must be a *Circle.
func NewArc(segment ArcSegment, aperture Aperture) (*Arc, error) {
	circle, ok := aperture.(*Circle)
	if !ok {
		return nil, newLogicError("arc only supports circle apertures")
	}
	a := &Arc{Segment: segment, DrawWidth: circle.Diameter}
	a.polarity = Dark
	return a, nil
}

func (a *Arc) Box(format CoordinateFormat) Box {
	start := format.Convert(a.Segment.Start)
	end := format.Convert(a.Segment.End)
	center := format.Convert(a.Segment.Center())
	radius := center.Sub(start).X
	if radius < 0 {
		radius = -radius
	}
	b := NewBox(0, 0, start.X, start.Y).Extend(NewBox(0, 0, end.X, end.Y))
	b = b.Extend(NewBox(2*radius, 2*radius, center.X-radius, center.Y-radius))
	return b.Pad(a.DrawWidth / 2)
}

func (a *Arc) ApplyTransform(t Transform) {
	a.DrawWidth = t.ApplyScaling(a.DrawWidth)
}

func (a *Arc) Clone() GraphicalObject {
	clone := *a
	return &clone
}

func (a *Arc) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	start := format.Convert(a.Segment.Start).Add(origin)
	end := format.Convert(a.Segment.End).Add(origin)
	center := format.Convert(a.Segment.Center()).Add(origin)
	target := s.GetTarget(a.polarity)
	s.AddArc(target, a.DrawWidth, RealArcSegment{
		RealSegment: RealSegment{Start: start, End: end},
		Center:      center,
		Direction:   a.Segment.Direction,
	})
}

// Flash stamps an aperture at a single point.
type Flash struct {
	polarityHolder
	Origin   FixedPoint
	Aperture Aperture
}

// NewFlash builds a Flash, cloning aperture so later transform changes to
// the dictionary entry cannot retroactively alter this object.
func NewFlash(origin FixedPoint, aperture Aperture) *Flash {
	f := &Flash{Origin: origin, Aperture: aperture.Clone()}
	f.polarity = Dark
	return f
}

func (f *Flash) Box(format CoordinateFormat) Box {
	origin := format.Convert(f.Origin)
	return f.Aperture.Box(format).Translate(origin)
}

func (f *Flash) ApplyTransform(t Transform) {
	f.Aperture.ApplyTransform(t)
}

func (f *Flash) Clone() GraphicalObject {
	clone := *f
	clone.Aperture = f.Aperture.Clone()
	return &clone
}

func (f *Flash) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	at := format.Convert(f.Origin).Add(origin)
	f.Aperture.Serialize(s, at, format)
}

// Region is a filled area bounded by one or more contours.
type Region struct {
	polarityHolder
	Contours []Contour
}

// NewRegion builds an empty region with the given polarity.
func NewRegion(polarity Polarity) *Region {
	r := &Region{}
	r.polarity = polarity
	return r
}

// StartContour appends a new, empty contour.
func (r *Region) StartContour() {
	r.Contours = append(r.Contours, Contour{})
}

// AddSegment appends a segment to the currently open contour.
func (r *Region) AddSegment(s ContourSegment) error {
	if len(r.Contours) == 0 {
		r.StartContour()
	}
	return r.Contours[len(r.Contours)-1].AddSegment(s)
}

// AreContoursClosed reports whether every contour in the region is closed.
func (r *Region) AreContoursClosed() bool {
	for _, c := range r.Contours {
		if !c.IsClosed() {
			return false
		}
	}
	return true
}

func (r *Region) Box(format CoordinateFormat) Box {
	var box Box
	first := true
	for _, c := range r.Contours {
		for _, seg := range c.Segments {
			start, end := segmentStartEnd(seg)
			sp, ep := format.Convert(start), format.Convert(end)
			b := NewBox(0, 0, sp.X, sp.Y).Extend(NewBox(0, 0, ep.X, ep.Y))
			if first {
				box = b
				first = false
			} else {
				box = box.Extend(b)
			}
		}
	}
	return box
}

func (r *Region) ApplyTransform(Transform) {}

func (r *Region) Clone() GraphicalObject {
	clone := *r
	clone.Contours = append([]Contour(nil), r.Contours...)
	return &clone
}

func (r *Region) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	target := s.GetTarget(r.polarity)
	for _, c := range r.Contours {
		s.AddContour(target, resolveContour(c, origin, format))
	}
}

func resolveContour(c Contour, origin RealPoint, format CoordinateFormat) RealContour {
	out := RealContour{Segments: make([]RealContourSegment, len(c.Segments))}
	for i, seg := range c.Segments {
		if seg.Arc != nil {
			start := format.Convert(seg.Arc.Start).Add(origin)
			end := format.Convert(seg.Arc.End).Add(origin)
			center := format.Convert(seg.Arc.Center()).Add(origin)
			out.Segments[i] = RealContourSegment{Arc: &RealArcSegment{
				RealSegment: RealSegment{Start: start, End: end},
				Center:      center,
				Direction:   seg.Arc.Direction,
			}}
		} else {
			start := format.Convert(seg.Line.Start).Add(origin)
			end := format.Convert(seg.Line.End).Add(origin)
			out.Segments[i] = RealContourSegment{Line: &RealSegment{Start: start, End: end}}
		}
	}
	return out
}

// StepAndRepeat replicates an object list across an nx-by-ny grid with
// offsets dx, dy. Copies are emitted first in positive Y then positive X.
type StepAndRepeat struct {
	polarityHolder
	Nx, Ny   int
	Dx, Dy   float64
	Objects  []GraphicalObject
}

// NewStepAndRepeat validates and builds a StepAndRepeat frame.
func NewStepAndRepeat(nx, ny int, dx, dy float64) (*StepAndRepeat, error) {
	if nx < 1 || ny < 1 {
		return nil, newParseError("step and repeat counts must be >= 1")
	}
	if dx < 0 || dy < 0 {
		return nil, newParseError("step and repeat offsets must be >= 0")
	}
	sr := &StepAndRepeat{Nx: nx, Ny: ny, Dx: dx, Dy: dy}
	sr.polarity = Dark
	return sr, nil
}

// AddObject appends an object to the frame's replicated sub-scene.
func (sr *StepAndRepeat) AddObject(o GraphicalObject) {
	sr.Objects = append(sr.Objects, o)
}

func (sr *StepAndRepeat) Box(format CoordinateFormat) Box {
	var box Box
	first := true
	for ix := 0; ix < sr.Nx; ix++ {
		for iy := 0; iy < sr.Ny; iy++ {
			offset := RealPoint{X: float64(ix) * sr.Dx, Y: float64(iy) * sr.Dy}
			for _, obj := range sr.Objects {
				b := obj.Box(format).Translate(offset)
				if first {
					box = b
					first = false
				} else {
					box = box.Extend(b)
				}
			}
		}
	}
	return box
}

func (sr *StepAndRepeat) ApplyTransform(Transform) {}

func (sr *StepAndRepeat) Clone() GraphicalObject {
	clone := *sr
	clone.Objects = append([]GraphicalObject(nil), sr.Objects...)
	return &clone
}

func (sr *StepAndRepeat) Serialize(s Serializer, origin RealPoint, format CoordinateFormat) {
	for ix := 0; ix < sr.Nx; ix++ {
		for iy := 0; iy < sr.Ny; iy++ {
			offset := origin.Add(RealPoint{X: float64(ix) * sr.Dx, Y: float64(iy) * sr.Dy})
			for _, obj := range sr.Objects {
				obj.Serialize(s, offset, format)
			}
		}
	}
}
