// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

// recordingSerializer is a minimal Serializer fake that records every call
// it receives, for use by tests that exercise Serialize methods.
type recordingSerializer struct {
	groups   int
	masks    int
	circles  int
	draws    int
	arcs     int
	polygons int
	contours int

	// circleTargets records, in call order, the target each AddCircle call
	// was made against. It is a Polarity when the caller drew into
	// GetTarget's result, since GetTarget below returns the polarity itself
	// as the opaque SerialItem; macro primitives record the group or mask
	// item they were given instead.
	circleTargets []SerialItem
}

func (r *recordingSerializer) NewGroup(parent SerialItem) SerialItem {
	r.groups++
	return r.groups
}

func (r *recordingSerializer) NewMask(box Box) SerialItem {
	r.masks++
	return "mask"
}

func (r *recordingSerializer) SetMask(target, mask SerialItem) {}

func (r *recordingSerializer) AddCircle(target SerialItem, radius float64, center RealPoint) {
	r.circles++
	r.circleTargets = append(r.circleTargets, target)
}

func (r *recordingSerializer) AddDraw(target SerialItem, width float64, segment RealSegment) {
	r.draws++
}

func (r *recordingSerializer) AddArc(target SerialItem, width float64, arc RealArcSegment) {
	r.arcs++
}

func (r *recordingSerializer) AddPolygon(target SerialItem, points []RealPoint) {
	r.polygons++
}

func (r *recordingSerializer) AddContour(target SerialItem, contour RealContour) {
	r.contours++
}

func (r *recordingSerializer) GetTarget(polarity Polarity) SerialItem {
	return polarity
}

func (r *recordingSerializer) Save(path string) error {
	return nil
}
