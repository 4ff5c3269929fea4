// Copyright 2017 The oksvg Authors. All rights reserved.

package svgpaths

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Attributes maps the attribute names of one element to their values.
// Names are qualified as written in the document ("xlink:href").
// The walker allocates a fresh map per element; converters only read it.
type Attributes map[string]string

// attributesOf copies the attributes of a raw start element.
func attributesOf(se xml.StartElement) Attributes {
	attrs := make(Attributes, len(se.Attr))
	for _, attr := range se.Attr {
		attrs[qualifiedName(attr.Name)] = attr.Value
	}
	return attrs
}

// qualifiedName rebuilds prefix:local from a name returned by xml.Decoder.RawToken,
// which leaves the prefix in Space.
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Clone returns a copy of a that shares nothing with it.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	b := make(Attributes, len(a))
	for k, v := range a {
		b[k] = v
	}
	return b
}

// float returns the numeric value of the attribute name, or def when absent.
func (a Attributes) float(element, name string, def float64) (float64, error) {
	v, ok := a[name]
	if !ok {
		return def, nil
	}
	return parseNumber(element, name, v)
}

func parseNumber(element, name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, &AttributeError{Element: element, Name: name, Value: v, Err: err}
	}
	return f, nil
}

// formatNumber writes f in its shortest round-trip decimal form, without exponent.
func formatNumber(f float64) string {
	if f == 0 {
		f = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
