// Copyright 2017 The oksvg Authors. All rights reserved.

package svgpaths

import "strings"

// This file implements the transformation from
// high level shapes to their path data equivalent

// ShapeKind enumerates the elements converted to path data.
type ShapeKind uint8

const (
	PathKind ShapeKind = iota
	LineKind
	PolylineKind
	PolygonKind
	EllipseKind
	CircleKind
	RectKind
)

var shapeTags = [...]string{
	PathKind:     "path",
	LineKind:     "line",
	PolylineKind: "polyline",
	PolygonKind:  "polygon",
	EllipseKind:  "ellipse",
	CircleKind:   "circle",
	RectKind:     "rect",
}

func (k ShapeKind) String() string {
	if int(k) < len(shapeTags) {
		return shapeTags[k]
	}
	return "unknown"
}

// ShapeKindOf returns the kind of the element with the given tag name.
func ShapeKindOf(tag string) (ShapeKind, bool) {
	for k, t := range shapeTags {
		if t == tag {
			return ShapeKind(k), true
		}
	}
	return 0, false
}

// pathKappa is the distance of the control points of a cubic Bézier
// approximating a quarter circle of radius 1.
const pathKappa = 0.552284

// Shape is one shape element with its attributes.
type Shape struct {
	Kind  ShapeKind
	Attrs Attributes
}

// PathData converts the shape to path data. useCubics only affects
// circles and ellipses.
func (s Shape) PathData(useCubics bool) (string, error) {
	switch s.Kind {
	case PathKind:
		return s.Attrs["d"], nil
	case LineKind:
		return LinePathData(s.Attrs)
	case PolylineKind:
		return PolylinePathData(s.Attrs, false)
	case PolygonKind:
		return PolygonPathData(s.Attrs)
	case EllipseKind:
		return EllipsePathData(s.Attrs, useCubics)
	case CircleKind:
		return CirclePathData(s.Attrs, useCubics)
	case RectKind:
		return RectPathData(s.Attrs)
	}
	return "", ErrUnsupportedShape
}

// LinePathData returns "M x1 y1 L x2 y2". Coordinates are copied as written,
// missing ones are "0".
func LinePathData(attrs Attributes) (string, error) {
	var c [4]string
	for i, name := range [...]string{"x1", "y1", "x2", "y2"} {
		v, ok := attrs[name]
		if !ok {
			v = "0"
		} else if _, err := parseNumber("line", name, v); err != nil {
			return "", err
		}
		c[i] = v
	}
	return "M" + c[0] + " " + c[1] + " L" + c[2] + " " + c[3], nil
}

// PolylinePathData returns the points of a polyline joined by lines. The path
// is closed when isPolygon is set or when the first and last points are equal.
// A closed polygon repeats its first point so that n points give n lines.
func PolylinePathData(attrs Attributes, isPolygon bool) (string, error) {
	points := ScanCoordinatePairs(attrs["points"])
	if len(points) == 0 {
		return "", nil
	}
	element := "polyline"
	if isPolygon {
		element = "polygon"
	}
	closed, err := samePoint(element, points[0], points[len(points)-1])
	if err != nil {
		return "", err
	}
	if isPolygon && closed {
		points = append(points, points[0])
	}
	var b strings.Builder
	b.WriteByte('M')
	for i, p := range points {
		if i > 0 {
			b.WriteByte('L')
		}
		b.WriteString(p.X)
		b.WriteByte(' ')
		b.WriteString(p.Y)
	}
	if isPolygon || closed {
		b.WriteByte('z')
	}
	return b.String(), nil
}

// PolygonPathData is PolylinePathData in polygon mode.
func PolygonPathData(attrs Attributes) (string, error) {
	return PolylinePathData(attrs, true)
}

func samePoint(element string, a, b CoordinatePair) (bool, error) {
	var v [4]float64
	for i, s := range [...]string{a.X, a.Y, b.X, b.Y} {
		f, err := parseNumber(element, "points", s)
		if err != nil {
			return false, err
		}
		v[i] = f
	}
	return v[0] == v[2] && v[1] == v[3], nil
}

// RectPathData returns the outline of a rect, clockwise from its top left corner.
// When rx or ry is set, the corners are quarter ellipse arcs; a missing
// radius takes the value of the other one.
func RectPathData(attrs Attributes) (string, error) {
	var x, y, w, h float64
	var err error
	for _, a := range [...]struct {
		v    *float64
		name string
	}{{&x, "x"}, {&y, "y"}, {&w, "width"}, {&h, "height"}} {
		if *a.v, err = attrs.float("rect", a.name, 0); err != nil {
			return "", err
		}
	}

	rxs, hasRx := attrs["rx"]
	rys, hasRy := attrs["ry"]
	if !hasRx && !hasRy {
		return "M" + formatNumber(x) + " " + formatNumber(y) +
			" L " + point(x+w, y) +
			" L " + point(x+w, y+h) +
			" L " + point(x, y+h) + " z", nil
	}
	if !hasRx {
		rxs = rys
	}
	if !hasRy {
		rys = rxs
	}
	if rxs == "" && !hasRx {
		rxs = "0"
	}
	if rys == "" && !hasRy {
		rys = "0"
	}
	rx, err := parseNumber("rect", "rx", rxs)
	if err != nil {
		return "", err
	}
	ry, err := parseNumber("rect", "ry", rys)
	if err != nil {
		return "", err
	}

	arc := "A " + point(rx, ry) + " 0 0 1 "
	var b strings.Builder
	b.WriteString("M " + point(x+rx, y) + " ")
	b.WriteString("L " + point(x+w-rx, y) + " ")
	b.WriteString(arc + point(x+w, y+ry) + " ")
	b.WriteString("L " + point(x+w, y+h-ry) + " ")
	b.WriteString(arc + point(x+w-rx, y+h) + " ")
	b.WriteString("L " + point(x+rx, y+h) + " ")
	b.WriteString(arc + point(x, y+h-ry) + " ")
	b.WriteString("L " + point(x, y+ry) + " ")
	b.WriteString(arc + point(x+rx, y) + " z")
	return b.String(), nil
}

// EllipsePathData returns the outline of an ellipse, or of a circle when
// the r attribute is present. By default it is made of two half ellipse arcs
// starting at the leftmost point. With useCubics, it is made of four cubic
// Béziers starting at the rightmost point and running clockwise.
func EllipsePathData(attrs Attributes, useCubics bool) (string, error) {
	return ellipsePathData("ellipse", attrs, useCubics)
}

// CirclePathData returns the outline of a circle, see EllipsePathData.
func CirclePathData(attrs Attributes, useCubics bool) (string, error) {
	return ellipsePathData("circle", attrs, useCubics)
}

func ellipsePathData(element string, attrs Attributes, useCubics bool) (string, error) {
	cx, err := attrs.float(element, "cx", 0)
	if err != nil {
		return "", err
	}
	cy, err := attrs.float(element, "cy", 0)
	if err != nil {
		return "", err
	}
	var rx, ry float64
	if r, ok := attrs["r"]; ok {
		if rx, err = parseNumber(element, "r", r); err != nil {
			return "", err
		}
		ry = rx
	} else {
		if rx, err = attrs.float(element, "rx", 0); err != nil {
			return "", err
		}
		if ry, err = attrs.float(element, "ry", 0); err != nil {
			return "", err
		}
	}

	if !useCubics {
		arc := "a" + formatNumber(rx) + "," + formatNumber(ry) + " 0 1,0 "
		return "M" + formatNumber(cx-rx) + "," + formatNumber(cy) +
			arc + formatNumber(2*rx) + ",0" +
			arc + formatNumber(-2*rx) + ",0z", nil
	}

	kx, ky := rx*pathKappa, ry*pathKappa
	var b strings.Builder
	b.WriteString("M" + point(cx+rx, cy))
	// bottom right quadrant
	b.WriteString("C" + point(cx+rx, cy+ky) + " " + point(cx+kx, cy+ry) + " " + point(cx, cy+ry))
	// bottom left
	b.WriteString("C" + point(cx-kx, cy+ry) + " " + point(cx-rx, cy+ky) + " " + point(cx-rx, cy))
	// top left
	b.WriteString("C" + point(cx-rx, cy-ky) + " " + point(cx-kx, cy-ry) + " " + point(cx, cy-ry))
	// top right
	b.WriteString("C" + point(cx+kx, cy-ry) + " " + point(cx+rx, cy-ky) + " " + point(cx+rx, cy))
	b.WriteByte('z')
	return b.String(), nil
}

func point(x, y float64) string {
	return formatNumber(x) + " " + formatNumber(y)
}
