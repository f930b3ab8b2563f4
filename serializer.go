// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

// SerialItem is an opaque handle returned by a Serializer implementation,
// e.g. a node in a scene graph or a group in an SVG document. This module
// defines no concrete SerialItem; a rendering backend provides its own.
type SerialItem any

// Serializer is the external collaborator that turns resolved geometry
// into a concrete output document (SVG, CGAL, or any other planar
// representation). No concrete implementation ships in this module — only
// a recording fake used by tests. Every GraphicalObject and MacroPrimitive
// variant drives this interface via its Serialize method.
type Serializer interface {
	// NewGroup creates a new child grouping node under parent.
	NewGroup(parent SerialItem) SerialItem
	// NewMask creates a masking node covering box.
	NewMask(box Box) SerialItem
	// SetMask applies mask to target.
	SetMask(target, mask SerialItem)
	// AddCircle adds a filled circle of the given radius centered at
	// center to target.
	AddCircle(target SerialItem, radius float64, center RealPoint)
	// AddDraw adds a stroked line segment of the given width to target.
	AddDraw(target SerialItem, width float64, segment RealSegment)
	// AddArc adds a stroked circular arc of the given width to target.
	AddArc(target SerialItem, width float64, arc RealArcSegment)
	// AddPolygon adds a filled polygon to target.
	AddPolygon(target SerialItem, points []RealPoint)
	// AddContour adds a filled region bounded by contour to target.
	AddContour(target SerialItem, contour RealContour)
	// GetTarget returns the Dark or Clear composition root.
	GetTarget(polarity Polarity) SerialItem
	// Save writes the document to path.
	Save(path string) error
}
