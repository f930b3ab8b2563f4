// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/go-kratos/kratos/v2/log"
)

// DefaultMaxObjects is the default bound on the number of top-level
// objects in Document.Objects. Objects inside step-and-repeat frames and
// block apertures are not counted, and a step-and-repeat frame counts once
// whatever its repeat counts.
const DefaultMaxObjects = 1_000_000

// Warning is a recoverable ParseError captured during Parse, tagged with
// the line and offending word it was reported against.
type Warning struct {
	Line int    `json:"line"`
	Word string `json:"word"`
	Err  string `json:"error"`
}

// Options controls how a Document parses its input and where it logs.
// Whether the input is memory-mapped depends on Open versus OpenBytes,
// not on Options.
type Options struct {
	// MaxObjects bounds the top-level object count (see
	// DefaultMaxObjects); by default DefaultMaxObjects.
	MaxObjects int

	// Logger receives warnings and fatal errors; by default a stdout
	// logger. Whichever logger is used is filtered to level Warn and
	// above.
	Logger log.Logger
}

func (o *Options) normalize() *Options {
	opts := Options{}
	if o != nil {
		opts = *o
	}
	if opts.MaxObjects == 0 {
		opts.MaxObjects = DefaultMaxObjects
	}
	return &opts
}

// Document is a parsed Gerber file: its resolved scene graph, the
// graphics state as it stood at the end of parsing, and any recoverable
// findings encountered along the way.
type Document struct {
	Objects      []GraphicalObject `json:"objects,omitempty"`
	Warnings     []Warning         `json:"warnings,omitempty"`
	CommandState CommandState      `json:"command_state"`

	processor *CommandsProcessor
	data      mmap.MMap
	f         *os.File
	opts      *Options
	logger    *log.Helper
}

// AddObject implements objectSink for the Document's top-level object
// list.
func (d *Document) AddObject(o GraphicalObject) {
	d.Objects = append(d.Objects, o)
}

// State returns the graphics state as it stands after the most recent
// Parse call.
func (d *Document) State() *GraphicsState {
	return d.processor.State
}

func newDocument(opts *Options) *Document {
	opts = opts.normalize()
	var logger log.Logger
	if opts.Logger == nil {
		logger = log.NewStdLogger(os.Stdout)
	} else {
		logger = opts.Logger
	}
	doc := &Document{opts: opts, logger: log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelWarn)))}
	doc.processor = NewCommandsProcessor(doc)
	return doc
}

// Open memory-maps the file at path and returns a Document ready to
// Parse.
func Open(path string, opts *Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	doc := newDocument(opts)
	doc.data = data
	doc.f = f
	return doc, nil
}

// OpenBytes wraps an in-memory buffer, for tests and fuzzing.
func OpenBytes(data []byte, opts *Options) (*Document, error) {
	doc := newDocument(opts)
	doc.data = data
	return doc, nil
}

// Close releases the underlying file mapping, if any. Safe to call more
// than once.
func (d *Document) Close() error {
	if d.data != nil {
		_ = d.data.Unmap()
		d.data = nil
	}
	if d.f != nil {
		err := d.f.Close()
		d.f = nil
		return err
	}
	return nil
}

// Parse drives the stream-parser → command-code → handler dispatch loop
// over the document's input. Recoverable ParseErrors and NotFoundErrors are
// logged and appended to Warnings; the processor's state is left unchanged
// for that command and parsing continues. The one exception is a G37 whose
// region has an unclosed contour: the region scope is still closed and the
// region is discarded. A LogicError or IOError aborts parsing and is
// returned.
func (d *Document) Parse() error {
	stream := NewStreamParser(d.data)
	for {
		line := stream.Line()
		words, err := stream.NextCommand()
		if err != nil {
			d.logger.Errorf("gerbex: aborting at line %d: %v", line, err)
			return err
		}
		if words == nil {
			break
		}

		code, err := CommandCode(words[0])
		if err != nil {
			d.warn(line, words[0], err)
			continue
		}

		handler, ok := Handlers[code]
		if !ok {
			d.warn(line, words[0], newParseErrorf("unsupported command code: %s", code))
			continue
		}

		if err := handler(d.processor, words); err != nil {
			switch err.(type) {
			case *ParseError, *NotFoundError:
				d.warn(line, words[0], err)
			default:
				d.logger.Errorf("gerbex: aborting at line %d, word %q: %v", line, words[0], err)
				return err
			}
		}

		if len(d.Objects) > d.opts.MaxObjects {
			err := newLogicErrorf("object count exceeded MaxObjects (%d)", d.opts.MaxObjects)
			d.logger.Errorf("gerbex: %v", err)
			return err
		}
	}

	d.CommandState = d.processor.CommandState
	return nil
}

func (d *Document) warn(line int, word string, err error) {
	d.Warnings = append(d.Warnings, Warning{Line: line, Word: word, Err: err.Error()})
	d.logger.Warnf("gerbex: line %d, word %q: %v", line, word, err)
}
