// Copyright 2017 The oksvg Authors. All rights reserved.

package svgpaths

import "github.com/srwiley/rasterx"

// ErrorMode selects how unknown path commands and skipped shape elements are reported.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)

// PathParser compiles path data into a structured path.
type PathParser interface {
	ParsePath(d string) (rasterx.Path, error)
}

// Options configures a conversion. The zero value converts only <path>
// elements; start from DefaultOptions or DocumentOptions instead.
type Options struct {
	ConvertCircles    bool
	ConvertEllipses   bool
	ConvertLines      bool
	ConvertPolylines  bool
	ConvertPolygons   bool
	ConvertRectangles bool

	// RootAttributes also captures the attributes of the first <svg> element.
	RootAttributes bool
	// UseCubics draws circles and ellipses with four cubic Béziers instead of two arcs.
	UseCubics bool

	ErrorMode ErrorMode
	// Parser compiles the extracted path data. When nil, each call uses
	// a new PathCursor running in ErrorMode.
	Parser PathParser
}

// DefaultOptions converts every shape kind and does not return root attributes.
func DefaultOptions() Options {
	return Options{
		ConvertCircles:    true,
		ConvertEllipses:   true,
		ConvertLines:      true,
		ConvertPolylines:  true,
		ConvertPolygons:   true,
		ConvertRectangles: true,
		ErrorMode:         StrictErrorMode,
	}
}

// DocumentOptions is DefaultOptions with RootAttributes set.
func DocumentOptions() Options {
	o := DefaultOptions()
	o.RootAttributes = true
	return o
}

func (o Options) converts(k ShapeKind) bool {
	switch k {
	case PathKind:
		return true
	case LineKind:
		return o.ConvertLines
	case PolylineKind:
		return o.ConvertPolylines
	case PolygonKind:
		return o.ConvertPolygons
	case EllipseKind:
		return o.ConvertEllipses
	case CircleKind:
		return o.ConvertCircles
	case RectKind:
		return o.ConvertRectangles
	}
	return false
}

func (o Options) parser() PathParser {
	if o.Parser != nil {
		return o.Parser
	}
	return &PathCursor{ErrorMode: o.ErrorMode}
}
