// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import "fmt"

// ParseError marks a recoverable failure: a malformed token, unknown
// template, invalid parameter count, out-of-range numeric, or unsupported
// command code. The file processor logs it with the offending line and
// word, then continues with the next command.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func newParseError(msg string) *ParseError { return &ParseError{msg: msg} }

func newParseErrorf(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

// LogicError marks a fatal violation of a semantic precondition: plotting
// without a current point, closing a scope that was never opened, flashing
// with no aperture, format-before-commands violations. The file processor
// aborts on it.
type LogicError struct {
	msg string
}

func (e *LogicError) Error() string { return e.msg }

func newLogicError(msg string) *LogicError { return &LogicError{msg: msg} }

func newLogicErrorf(format string, args ...any) *LogicError {
	return &LogicError{msg: fmt.Sprintf(format, args...)}
}

// IOError marks a fatal input failure: an unterminated command group at
// EOF, or an underlying read failure.
type IOError struct {
	msg string
}

func (e *IOError) Error() string { return e.msg }

func newIOError(msg string) *IOError { return &IOError{msg: msg} }

// NotFoundError is returned by aperture and template lookups. It is
// recoverable (a ParseError) when encountered while parsing commands, fatal
// when encountered during serialization — callers decide which wrapper to
// apply.
type NotFoundError struct {
	Kind string // "aperture" or "template"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func newAptNotFound(id int) *NotFoundError {
	return &NotFoundError{Kind: "aperture", ID: fmt.Sprintf("%d", id)}
}

func newTemplateNotFound(name string) *NotFoundError {
	return &NotFoundError{Kind: "template", ID: name}
}

var (
	// ErrUnsupportedFeature is returned for recognized-but-unsupported
	// syntax, such as G74 single-quadrant arc mode.
	ErrUnsupportedFeature = newParseError("unsupported feature")

	// ErrUnterminatedCommand is returned by the stream parser when a
	// word or extended command is never closed before EOF.
	ErrUnterminatedCommand = newIOError("unterminated command group")
)
