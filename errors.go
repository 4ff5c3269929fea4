// Copyright 2017 The oksvg Authors. All rights reserved.

package svgpaths

import (
	"errors"
	"fmt"
)

var (
	paramMismatchError  = errors.New("param mismatch")
	commandUnknownError = errors.New("unknown command")
	missingMoveToError  = errors.New("path data must start with a moveto")

	// ErrUnsupportedShape is returned when a Shape carries a kind with no converter.
	ErrUnsupportedShape = errors.New("svgpaths: unsupported shape")
)

// AttributeError reports an attribute whose value is not a number.
type AttributeError struct {
	Element string // tag of the element, e.g. "rect"
	Name    string // attribute name
	Value   string
	Err     error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("svgpaths: %s attribute %s=%q: %v", e.Element, e.Name, e.Value, e.Err)
}

func (e *AttributeError) Unwrap() error { return e.Err }

// PathDataError reports path data rejected by the PathParser.
// Index is the position of the offending element in the Document.
type PathDataError struct {
	Index int
	Data  string
	Err   error
}

func (e *PathDataError) Error() string {
	return fmt.Sprintf("svgpaths: path %d %q: %v", e.Index, e.Data, e.Err)
}

func (e *PathDataError) Unwrap() error { return e.Err }

// DocumentError reports a source that could not be opened or read as XML.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	return "svgpaths: document: " + e.Err.Error()
}

func (e *DocumentError) Unwrap() error { return e.Err }
