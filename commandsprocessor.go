// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

// objectSink accepts finished graphical objects: the Document itself, an
// open Block aperture, or an open StepAndRepeat frame.
type objectSink interface {
	AddObject(o GraphicalObject)
}

// CommandState tracks which command grammar is currently legal.
type CommandState int

const (
	// StateNormal accepts any top-level command.
	StateNormal CommandState = iota
	// StateInsideRegion is set between G36 and G37: D01/D02 build region
	// contours and D03 is rejected; other commands are processed as usual.
	StateInsideRegion
	// StateEndOfFile is set by M02. Commands that follow it are still
	// processed; the state does not reject them.
	StateEndOfFile
)

// blockFrame is one level of an AB aperture-block-definition nesting: the
// block under construction and the aperture number it will register as.
type blockFrame struct {
	id    int
	block *Block
}

// CommandsProcessor holds the semantic state built up while a command
// stream is processed: the graphics cursor, the aperture dictionary and
// template registry, the destination stack for nested block/step-and-repeat
// scopes, and the region currently being accumulated.
type CommandsProcessor struct {
	State       *GraphicsState
	CommandState CommandState

	apertures map[int]Aperture
	templates map[string]ApertureTemplate

	destinations []objectSink

	activeRegion *Region
	openBlocks   []blockFrame
	activeSR     *StepAndRepeat
}

// NewCommandsProcessor builds a processor rooted at doc, pre-registering
// the four built-in aperture templates.
func NewCommandsProcessor(doc objectSink) *CommandsProcessor {
	p := &CommandsProcessor{
		State:        NewGraphicsState(),
		apertures:    map[int]Aperture{},
		templates: map[string]ApertureTemplate{
			"C": CircleTemplate{},
			"R": RectangleTemplate{},
			"O": ObroundTemplate{},
			"P": PolygonTemplate{},
		},
		destinations: []objectSink{doc},
	}
	return p
}

func (p *CommandsProcessor) destination() objectSink {
	return p.destinations[len(p.destinations)-1]
}

func (p *CommandsProcessor) emit(o GraphicalObject) {
	o.SetPolarity(p.State.Transform.Polarity)
	p.destination().AddObject(o)
}

// SetFormat applies the FS command. It may only be set once; a second FS
// is a LogicError.
func (p *CommandsProcessor) SetFormat(integerDigits, decimalDigits int) error {
	if p.State.Format != nil {
		return newLogicError("coordinate format already set")
	}
	format, err := NewCoordinateFormat(integerDigits, decimalDigits)
	if err != nil {
		return err
	}
	p.State.Format = &format
	return nil
}

// SetUnit applies the MO command.
func (p *CommandsProcessor) SetUnit(unit Unit) {
	p.State.Unit = &unit
}

// SetPlotState applies a G01/G02/G03 command.
func (p *CommandsProcessor) SetPlotState(state PlotState) {
	p.State.PlotState = state
}

// SetArcMode applies a G74/G75 command. Single-quadrant mode is recognized
// but unsupported.
func (p *CommandsProcessor) SetArcMode(mode ArcMode) error {
	if mode == ArcModeSingleQuadrant {
		return ErrUnsupportedFeature
	}
	p.State.ArcMode = mode
	return nil
}

// DefineAperture applies an AD command: looks up templateName (built-in or
// macro-defined), calls it with params, and registers the result under id.
// Aperture numbers are write-once.
func (p *CommandsProcessor) DefineAperture(id int, templateName string, params []float64) error {
	if _, exists := p.apertures[id]; exists {
		return newLogicErrorf("aperture %d already defined", id)
	}
	tmpl, ok := p.templates[templateName]
	if !ok {
		return newTemplateNotFound(templateName)
	}
	aperture, err := tmpl.Call(params)
	if err != nil {
		return err
	}
	p.apertures[id] = aperture
	return nil
}

// DefineMacro applies an AM command: registers a MacroTemplate under name.
func (p *CommandsProcessor) DefineMacro(name string, body []string) error {
	if _, exists := p.templates[name]; exists {
		return newLogicErrorf("template %q already defined", name)
	}
	p.templates[name] = NewMacroTemplate(body)
	return nil
}

func (p *CommandsProcessor) lookupAperture(id int) (Aperture, error) {
	ap, ok := p.apertures[id]
	if !ok {
		return nil, newAptNotFound(id)
	}
	return ap, nil
}

// SetCurrentAperture applies a Dnn command, selecting the active aperture.
func (p *CommandsProcessor) SetCurrentAperture(id int) error {
	if _, err := p.lookupAperture(id); err != nil {
		return err
	}
	p.State.CurrentAperture = &id
	return nil
}

// Move applies a D02 operation: relocates the current point without
// drawing.
func (p *CommandsProcessor) Move(data CoordinateData) error {
	point, err := p.State.GetPoint(data)
	if err != nil {
		return err
	}
	p.State.CurrentPoint = &point
	if p.activeRegion != nil {
		p.activeRegion.StartContour()
	}
	return nil
}

func (p *CommandsProcessor) requireAperture() (Aperture, error) {
	if p.State.CurrentAperture == nil {
		return nil, newLogicError("no aperture selected")
	}
	return p.lookupAperture(*p.State.CurrentAperture)
}

// PlotDraw applies a D01 operation under linear plot state: a straight
// stroke outside a region, or a contour edge inside one.
func (p *CommandsProcessor) PlotDraw(data CoordinateData) error {
	if p.State.CurrentPoint == nil {
		return newLogicError("no current point to draw from")
	}
	end, err := p.State.GetPoint(data)
	if err != nil {
		return err
	}
	segment := Segment{Start: *p.State.CurrentPoint, End: end}

	if p.activeRegion != nil {
		if err := p.activeRegion.AddSegment(ContourSegment{Line: &segment}); err != nil {
			return err
		}
	} else {
		aperture, err := p.requireAperture()
		if err != nil {
			return err
		}
		draw, err := NewDraw(segment, aperture)
		if err != nil {
			return err
		}
		draw.ApplyTransform(p.State.Transform)
		p.emit(draw)
	}
	p.State.CurrentPoint = &end
	return nil
}

// PlotArc applies a D01 operation under clockwise/counterclockwise plot
// state: a circular stroke outside a region, or a curved contour edge
// inside one.
func (p *CommandsProcessor) PlotArc(data CoordinateData) error {
	if p.State.CurrentPoint == nil {
		return newLogicError("no current point to draw from")
	}
	if p.State.ArcMode != ArcModeMultiQuadrant {
		return newLogicError("arc plotted before a supported arc mode was set")
	}
	end, err := p.State.GetPoint(data)
	if err != nil {
		return err
	}
	offset := p.State.GetCenterOffset(data)
	direction := CounterClockwise
	if p.State.PlotState == PlotClockwise {
		direction = Clockwise
	}
	arc := ArcSegment{
		Segment:      Segment{Start: *p.State.CurrentPoint, End: end},
		CenterOffset: offset,
		Direction:    direction,
	}

	if p.activeRegion != nil {
		if err := p.activeRegion.AddSegment(ContourSegment{Arc: &arc}); err != nil {
			return err
		}
	} else {
		aperture, err := p.requireAperture()
		if err != nil {
			return err
		}
		a, err := NewArc(arc, aperture)
		if err != nil {
			return err
		}
		a.ApplyTransform(p.State.Transform)
		p.emit(a)
	}
	p.State.CurrentPoint = &end
	return nil
}

// Flash applies a D03 operation: stamps the current aperture at the given
// point.
func (p *CommandsProcessor) Flash(data CoordinateData) error {
	if p.activeRegion != nil {
		return newLogicError("flash is not permitted inside a region")
	}
	point, err := p.State.GetPoint(data)
	if err != nil {
		return err
	}
	aperture, err := p.requireAperture()
	if err != nil {
		return err
	}
	flash := NewFlash(point, aperture)
	flash.ApplyTransform(p.State.Transform)
	p.emit(flash)
	p.State.CurrentPoint = &point
	return nil
}

// StartRegion applies a G36 command.
func (p *CommandsProcessor) StartRegion() error {
	if p.activeRegion != nil {
		return newLogicError("region already open")
	}
	p.activeRegion = NewRegion(p.State.Transform.Polarity)
	p.CommandState = StateInsideRegion
	return nil
}

// EndRegion applies a G37 command, closing the region scope. A region whose
// contour never closed is discarded rather than emitted; this is reported
// as a recoverable error so the rest of the file still parses.
func (p *CommandsProcessor) EndRegion() error {
	if p.activeRegion == nil {
		return newLogicError("no region is open")
	}
	region := p.activeRegion
	p.activeRegion = nil
	p.CommandState = StateNormal
	if !region.AreContoursClosed() {
		return newParseError("region has an unclosed contour")
	}
	p.emit(region)
	return nil
}

// OpenApertureBlock applies an AB command opening a nested block
// definition, reserving id for the finished Block aperture.
func (p *CommandsProcessor) OpenApertureBlock(id int) error {
	if _, exists := p.apertures[id]; exists {
		return newLogicErrorf("aperture %d already defined", id)
	}
	block := NewBlockAperture()
	p.openBlocks = append(p.openBlocks, blockFrame{id: id, block: block})
	p.destinations = append(p.destinations, block)
	return nil
}

// CloseApertureBlock applies a bare AB command, registering the
// accumulated block aperture under its reserved id.
func (p *CommandsProcessor) CloseApertureBlock() error {
	if len(p.openBlocks) == 0 {
		return newLogicError("no aperture block is open")
	}
	frame := p.openBlocks[len(p.openBlocks)-1]
	p.openBlocks = p.openBlocks[:len(p.openBlocks)-1]
	p.destinations = p.destinations[:len(p.destinations)-1]
	p.apertures[frame.id] = frame.block
	p.State.CurrentPoint = nil
	return nil
}

// OpenStepAndRepeat applies an SR command opening a step-and-repeat frame.
func (p *CommandsProcessor) OpenStepAndRepeat(nx, ny int, dx, dy float64) error {
	if p.activeSR != nil {
		return newLogicError("step and repeat already open")
	}
	sr, err := NewStepAndRepeat(nx, ny, dx, dy)
	if err != nil {
		return err
	}
	p.activeSR = sr
	p.destinations = append(p.destinations, sr)
	return nil
}

// CloseStepAndRepeat applies a bare SR command, emitting the accumulated
// frame into the enclosing destination.
func (p *CommandsProcessor) CloseStepAndRepeat() error {
	if p.activeSR == nil {
		return newLogicError("no step and repeat is open")
	}
	sr := p.activeSR
	p.activeSR = nil
	p.destinations = p.destinations[:len(p.destinations)-1]
	p.emit(sr)
	p.State.CurrentPoint = nil
	return nil
}

// SetPolarity applies an LP command.
func (p *CommandsProcessor) SetPolarity(polarity Polarity) {
	p.State.Transform.Polarity = polarity
}

// SetMirroring applies an LM command.
func (p *CommandsProcessor) SetMirroring(mirror Mirroring) {
	p.State.Transform.Mirror = mirror
}

// SetRotation applies an LR command.
func (p *CommandsProcessor) SetRotation(degrees float64) {
	p.State.Transform.Rotation = degrees
}

// SetScaling applies an LS command.
func (p *CommandsProcessor) SetScaling(factor float64) error {
	if factor <= 0 {
		return newParseError("scaling factor must be > 0")
	}
	p.State.Transform.Scaling = factor
	return nil
}

// SetEndOfFile applies an M02 command: no further commands are legal.
func (p *CommandsProcessor) SetEndOfFile() error {
	if p.activeRegion != nil || len(p.openBlocks) != 0 || p.activeSR != nil {
		return newLogicError("end of file reached with an open scope")
	}
	p.CommandState = StateEndOfFile
	return nil
}
