// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import (
	"regexp"
	"strconv"
	"strings"
)

// Handler executes one command code's word-level grammar against p. words
// is the full command group as returned by the stream parser: one element
// for a word command, one or more for an extended command.
type Handler func(p *CommandsProcessor, words []string) error

// Handlers maps every recognized command code to its handler. Codes absent
// from this map are unsupported commands: the file processor warns and
// moves on.
var Handlers = map[string]Handler{
	"G04": handleComment,
	"MO":  handleUnit,
	"FS":  handleFormat,
	"AD":  handleApertureDefine,
	"AM":  handleMacroDefine,
	"Dnn": handleSelectAperture,
	"G01": handlePlotLinear,
	"G02": handlePlotClockwise,
	"G03": handlePlotCounterClockwise,
	"G74": handleArcSingleQuadrant,
	"G75": handleArcMultiQuadrant,
	"D01": handlePlot,
	"D02": handleMove,
	"D03": handleFlash,
	"LP":  handleLoadPolarity,
	"LM":  handleLoadMirroring,
	"LR":  handleLoadRotation,
	"LS":  handleLoadScaling,
	"G36": handleRegionStart,
	"G37": handleRegionEnd,
	"AB":  handleApertureBlock,
	"SR":  handleStepAndRepeat,
	"M02": handleEndOfFile,
	"TF":  handleAttributeNoOp,
	"TA":  handleAttributeNoOp,
	"TO":  handleAttributeNoOp,
	"TD":  handleAttributeNoOp,
}

func handleComment(*CommandsProcessor, []string) error { return nil }

func handleAttributeNoOp(*CommandsProcessor, []string) error { return nil }

var unitRegex = regexp.MustCompile(`^MO(MM|IN)$`)

func handleUnit(p *CommandsProcessor, words []string) error {
	m := unitRegex.FindStringSubmatch(words[0])
	if m == nil {
		return newParseErrorf("malformed MO command: %s", words[0])
	}
	unit, err := UnitFromCommand(m[1])
	if err != nil {
		return err
	}
	p.SetUnit(unit)
	return nil
}

var formatRegex = regexp.MustCompile(`^FSLAX([0-9])([0-9])Y([0-9])([0-9])$`)

func handleFormat(p *CommandsProcessor, words []string) error {
	m := formatRegex.FindStringSubmatch(words[0])
	if m == nil {
		return newParseErrorf("malformed FS command: %s", words[0])
	}
	xi, xd, yi, yd := m[1], m[2], m[3], m[4]
	if xi != yi || xd != yd {
		return newParseError("FS command's X and Y digit specifications must match")
	}
	integerDigits, _ := strconv.Atoi(xi)
	decimalDigits, _ := strconv.Atoi(xd)
	return p.SetFormat(integerDigits, decimalDigits)
}

var apertureDefineRegex = regexp.MustCompile(`^ADD([0-9]+)([._$a-zA-Z][._$a-zA-Z0-9]{0,126}),?(.*)$`)

func handleApertureDefine(p *CommandsProcessor, words []string) error {
	m := apertureDefineRegex.FindStringSubmatch(words[0])
	if m == nil {
		return newParseErrorf("malformed AD command: %s", words[0])
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return newParseErrorf("malformed aperture ident: %s", m[1])
	}
	if id < 10 {
		return newParseErrorf("aperture ident must be >= 10: %d", id)
	}
	params, err := SplitParams(m[3], 'X')
	if err != nil {
		return err
	}
	return p.DefineAperture(id, m[2], params)
}

var macroNameRegex = regexp.MustCompile(`^AM([._$a-zA-Z][._$a-zA-Z0-9]{0,126})$`)

func handleMacroDefine(p *CommandsProcessor, words []string) error {
	if len(words) == 0 {
		return newParseError("malformed AM command: empty body")
	}
	m := macroNameRegex.FindStringSubmatch(words[0])
	if m == nil {
		return newParseErrorf("malformed AM command: %s", words[0])
	}
	return p.DefineMacro(m[1], words[1:])
}

func handleSelectAperture(p *CommandsProcessor, words []string) error {
	id, err := strconv.Atoi(strings.TrimPrefix(words[0], "D"))
	if err != nil {
		return newParseErrorf("malformed aperture select command: %s", words[0])
	}
	return p.SetCurrentAperture(id)
}

func handlePlotLinear(p *CommandsProcessor, _ []string) error {
	p.SetPlotState(PlotLinear)
	return nil
}

func handlePlotClockwise(p *CommandsProcessor, _ []string) error {
	p.SetPlotState(PlotClockwise)
	return nil
}

func handlePlotCounterClockwise(p *CommandsProcessor, _ []string) error {
	p.SetPlotState(PlotCounterClockwise)
	return nil
}

func handleArcSingleQuadrant(p *CommandsProcessor, _ []string) error {
	return p.SetArcMode(ArcModeSingleQuadrant)
}

func handleArcMultiQuadrant(p *CommandsProcessor, _ []string) error {
	return p.SetArcMode(ArcModeMultiQuadrant)
}

var coordinateDataRegex = regexp.MustCompile(
	`^(?:X([+-]?[0-9]+))?(?:Y([+-]?[0-9]+))?(?:I([+-]?[0-9]+))?(?:J([+-]?[0-9]+))?D0([123])$`)

func parseCoordinateData(word string) (CoordinateData, error) {
	m := coordinateDataRegex.FindStringSubmatch(word)
	if m == nil {
		return CoordinateData{}, newParseErrorf("malformed coordinate data: %s", word)
	}
	data := CoordinateData{}
	assign := func(s string) *int32 {
		if s == "" {
			return nil
		}
		v, _ := strconv.ParseInt(s, 10, 32)
		iv := int32(v)
		return &iv
	}
	data.X = assign(m[1])
	data.Y = assign(m[2])
	data.I = assign(m[3])
	data.J = assign(m[4])
	return data, nil
}

func handlePlot(p *CommandsProcessor, words []string) error {
	data, err := parseCoordinateData(words[0])
	if err != nil {
		return err
	}
	switch p.State.PlotState {
	case PlotLinear:
		return p.PlotDraw(data)
	case PlotClockwise, PlotCounterClockwise:
		return p.PlotArc(data)
	default:
		return newLogicError("D01 plotted before a plot state was set")
	}
}

func handleMove(p *CommandsProcessor, words []string) error {
	data, err := parseCoordinateData(words[0])
	if err != nil {
		return err
	}
	if data.HasIJ() {
		return newParseError("move operation does not accept I/J")
	}
	return p.Move(data)
}

func handleFlash(p *CommandsProcessor, words []string) error {
	data, err := parseCoordinateData(words[0])
	if err != nil {
		return err
	}
	if data.HasIJ() {
		return newParseError("flash operation does not accept I/J")
	}
	return p.Flash(data)
}

func handleLoadPolarity(p *CommandsProcessor, words []string) error {
	polarity, err := PolarityFromCommand(strings.TrimPrefix(words[0], "LP"))
	if err != nil {
		return err
	}
	p.SetPolarity(polarity)
	return nil
}

func handleLoadMirroring(p *CommandsProcessor, words []string) error {
	mirror, err := MirroringFromCommand(strings.TrimPrefix(words[0], "LM"))
	if err != nil {
		return err
	}
	p.SetMirroring(mirror)
	return nil
}

func handleLoadRotation(p *CommandsProcessor, words []string) error {
	field := strings.TrimPrefix(words[0], "LR")
	if !numberRegex.MatchString(field) {
		return newParseErrorf("malformed LR command: %s", words[0])
	}
	degrees, _ := strconv.ParseFloat(field, 64)
	p.SetRotation(degrees)
	return nil
}

func handleLoadScaling(p *CommandsProcessor, words []string) error {
	field := strings.TrimPrefix(words[0], "LS")
	if !numberRegex.MatchString(field) {
		return newParseErrorf("malformed LS command: %s", words[0])
	}
	factor, _ := strconv.ParseFloat(field, 64)
	return p.SetScaling(factor)
}

func handleRegionStart(p *CommandsProcessor, _ []string) error {
	return p.StartRegion()
}

func handleRegionEnd(p *CommandsProcessor, _ []string) error {
	return p.EndRegion()
}

var apertureBlockRegex = regexp.MustCompile(`^ABD([0-9]+)$`)

func handleApertureBlock(p *CommandsProcessor, words []string) error {
	if words[0] == "AB" {
		return p.CloseApertureBlock()
	}
	m := apertureBlockRegex.FindStringSubmatch(words[0])
	if m == nil {
		return newParseErrorf("malformed AB command: %s", words[0])
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return newParseErrorf("malformed aperture block ident: %s", m[1])
	}
	return p.OpenApertureBlock(id)
}

var stepAndRepeatRegex = regexp.MustCompile(
	`^SRX([0-9]+)Y([0-9]+)I(` + NumberPattern + `)J(` + NumberPattern + `)$`)

func handleStepAndRepeat(p *CommandsProcessor, words []string) error {
	if words[0] == "SR" {
		return p.CloseStepAndRepeat()
	}
	m := stepAndRepeatRegex.FindStringSubmatch(words[0])
	if m == nil {
		return newParseErrorf("malformed SR command: %s", words[0])
	}
	nx, _ := strconv.Atoi(m[1])
	ny, _ := strconv.Atoi(m[2])
	dx, _ := strconv.ParseFloat(m[3], 64)
	dy, _ := strconv.ParseFloat(m[4], 64)
	return p.OpenStepAndRepeat(nx, ny, dx, dy)
}

func handleEndOfFile(p *CommandsProcessor, _ []string) error {
	return p.SetEndOfFile()
}
