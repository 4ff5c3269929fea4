// Copyright 2017 The oksvg Authors. All rights reserved.
//
// created: 2/12/2017 by S.R.Wiley
// The svgpaths package converts the shape elements of an SVG document
// (circle, ellipse, line, polyline, polygon and rect) into path data,
// and compiles the path data of every shape into a rasterx Path.
// Transforms, styles and rendering are left to the caller.

package svgpaths

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/net/html/charset"
)

// Document holds the shapes of an SVG document in document order.
// Data, Attributes and Paths are aligned: index i refers to the same element.
type Document struct {
	Data       []string
	Attributes []Attributes
	Paths      []rasterx.Path
	// Root holds the attributes of the first svg element when requested.
	Root Attributes
}

// Len returns the number of shapes in the document.
func (d *Document) Len() int {
	return len(d.Data)
}

var (
	errNoElement  = errors.New("no root element")
	errNoSVG      = errors.New("no svg element")
	errUnclosed   = errors.New("unexpected end of document")
	errExtraToken = errors.New("content after root element")
)

// ExtractPathData walks every element of stream in document order and
// converts the enabled shape kinds to path data. Paths is left empty.
func ExtractPathData(stream io.Reader, opts Options) (*Document, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	var (
		stack    []string
		seenRoot bool
		seenSVG  bool
	)
	for {
		t, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DocumentError{Err: err}
		}
		switch se := t.(type) {
		case xml.StartElement:
			if len(stack) == 0 && seenRoot {
				return nil, &DocumentError{Err: errExtraToken}
			}
			seenRoot = true
			name := qualifiedName(se.Name)
			stack = append(stack, name)

			if name == "svg" && opts.RootAttributes && !seenSVG {
				seenSVG = true
				doc.Root = attributesOf(se)
			}
			kind, ok := ShapeKindOf(name)
			if !ok {
				continue
			}
			if !opts.converts(kind) {
				if opts.ErrorMode == WarnErrorMode {
					log.Println("Cannot process svg element " + name)
				}
				continue
			}
			shape := Shape{Kind: kind, Attrs: attributesOf(se)}
			d, err := shape.PathData(opts.UseCubics)
			if err != nil {
				return nil, err
			}
			doc.Data = append(doc.Data, d)
			doc.Attributes = append(doc.Attributes, shape.Attrs)
		case xml.EndElement:
			name := qualifiedName(se.Name)
			if len(stack) == 0 || stack[len(stack)-1] != name {
				return nil, &DocumentError{
					Err: fmt.Errorf("element <%s> closed by </%s>", last(stack), name)}
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) != 0 {
				continue
			}
			text := string(se)
			if !seenRoot {
				text = strings.TrimPrefix(text, "\ufeff") // byte order mark
			}
			if len(strings.TrimSpace(text)) != 0 {
				return nil, &DocumentError{Err: errExtraToken}
			}
		}
	}
	switch {
	case !seenRoot:
		return nil, &DocumentError{Err: errNoElement}
	case len(stack) != 0:
		return nil, &DocumentError{Err: fmt.Errorf("<%s>: %w", last(stack), errUnclosed)}
	case opts.RootAttributes && !seenSVG:
		return nil, &DocumentError{Err: errNoSVG}
	}
	return doc, nil
}

func last(stack []string) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}

// ReadPathsStream extracts the shapes of stream and compiles each one.
// On a parse failure it returns a *PathDataError and no document.
func ReadPathsStream(stream io.Reader, opts Options) (*Document, error) {
	doc, err := ExtractPathData(stream, opts)
	if err != nil {
		return nil, err
	}
	parser := opts.parser()
	doc.Paths = make([]rasterx.Path, len(doc.Data))
	for i, d := range doc.Data {
		p, err := parser.ParsePath(d)
		if err != nil {
			return nil, &PathDataError{Index: i, Data: d, Err: err}
		}
		doc.Paths[i] = p
	}
	return doc, nil
}

// ReadPathsString is ReadPathsStream on an in-memory document.
func ReadPathsString(svg string, opts Options) (*Document, error) {
	return ReadPathsStream(strings.NewReader(svg), opts)
}

// ReadPaths reads the document from the named file.
func ReadPaths(svgFile string, opts Options) (*Document, error) {
	fin, err := os.Open(svgFile)
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	defer fin.Close()
	return ReadPathsStream(fin, opts)
}
