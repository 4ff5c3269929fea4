// Copyright 2018 The oksvg Authors. All rights reserved.
// created: 2018 by S.R.Wiley
package svgpaths

import (
	"errors"
	"fmt"
	"testing"

	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

const testArco = `M150,350 l 50,-55
           a25,25 -30 0,1 50,-25 l 50,-25
           a25,50 -30 0,1 50,-25 l 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25 l 50,15z`

const testArco2 = `M150,350 l 50,-55
           a35,25 -30 0,0 50,-25 l 50,-25
           a25,50 -30 0,1 50,-25 l 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25, l 50,15z`

const testArcoS = `M150,350 l 50,-55
           a35,25 -30 0,0 50,-25,
           25,50 -30 0,1 50,-25
           a25,75 -30 0,1 50,-25 l 50,-25
           a25,100 -30 0,1 50,-25 l 50,15,0,25,-15,-15  z`

// Explicitly call each command in abs and rel mode and concatenated forms
const testSVG0 = `m20,20,0,400,400,0z`
const testSVG1 = `M20,20 L500,800 L800,200z`
const testSVG2 = `M20,20 Q200,800 800,800z`
const testSVG3 = `M20,50 C200,200 800,200 800,500z`
const testSVG4 = `M20,50 S200,1400 400,500 S700,800 800,400z`
const testSVG5 = `M50,20 Q 800,500 500,800z`
const testSVG6 = `M20,50 c200,200 800,200 400,300z`
const testSVG7 = `M20,20 c0,500 500,0 500,500z`
const testSVG8 = `M20,50 c200,200 800,200 400,300c200,200 800,200 400,300z`
const testSVG9 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300z`
const testSVG10 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300s500,300 200,200s600,300 200,200z`
const testSVG11 = `M20,50 c200,200 800,200 400,300,200,200 800,200 400,300s500,300 200,200,600,300 200,200z`
const testSVG12 = `M100,100 Q400,100 250,250 T400,400z`
const testSVG13 = `M100,100 Q400,100 250,250 t150,150,150,150z`

// pathRecorder is a rasterx.Adder writing each command as text.
// Stop(false) carries no information and is dropped.
type pathRecorder struct {
	ops []string
}

var _ rasterx.Adder = (*pathRecorder)(nil)

func pt(p fixed.Point26_6) string {
	return fmt.Sprintf("%g,%g", float64(p.X)/64, float64(p.Y)/64)
}

func (r *pathRecorder) Start(a fixed.Point26_6) { r.ops = append(r.ops, "M"+pt(a)) }
func (r *pathRecorder) Line(b fixed.Point26_6) { r.ops = append(r.ops, "L"+pt(b)) }
func (r *pathRecorder) QuadBezier(b, c fixed.Point26_6) {
	r.ops = append(r.ops, "Q"+pt(b)+" "+pt(c))
}
func (r *pathRecorder) CubeBezier(b, c, d fixed.Point26_6) {
	r.ops = append(r.ops, "C"+pt(b)+" "+pt(c)+" "+pt(d))
}
func (r *pathRecorder) Stop(closeLoop bool) {
	if closeLoop {
		r.ops = append(r.ops, "Z")
	}
}

func record(p rasterx.Path) []string {
	r := &pathRecorder{}
	p.AddTo(r)
	return r.ops
}

func compile(t *testing.T, d string) []string {
	t.Helper()
	c := &PathCursor{ErrorMode: StrictErrorMode}
	require.NoError(t, c.CompilePath(d))
	return record(c.Path)
}

func TestCompileFixtures(t *testing.T) {
	for i, p := range []string{testArco, testArco2, testArcoS,
		testSVG0, testSVG1, testSVG2, testSVG3, testSVG4, testSVG5,
		testSVG6, testSVG7, testSVG8, testSVG9, testSVG10,
		testSVG11, testSVG12, testSVG13,
	} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			ops := compile(t, p)
			require.NotEmpty(t, ops)
			assert.Equal(t, "Z", ops[len(ops)-1])
		})
	}
}

func TestCompilePath(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want []string
	}{
		{name: "lines", d: "M10 20 L30 40z", want: []string{"M10,20", "L30,40", "Z"}},
		{name: "implicit lineto", d: "m20,20,0,400,400,0z",
			want: []string{"M20,20", "L20,420", "L420,420", "Z"}},
		{name: "h and v", d: "M0 0 h10 v10 H0 V0",
			want: []string{"M0,0", "L10,0", "L10,10", "L0,10", "L0,0"}},
		{name: "drawing after close", d: "M10 10 l10 0 l0 10 z l5 5",
			want: []string{"M10,10", "L20,10", "L20,20", "Z", "M10,10", "L15,15"}},
		{name: "relative move after close", d: "M10 10 h5 z m1 1 h1",
			want: []string{"M10,10", "L15,10", "Z", "M11,11", "L12,11"}},
		{name: "exponents and signs", d: "M1e1 2E1 L+3.5.5",
			want: []string{"M10,20", "L3.5,0.5"}},
		{name: "smooth cubic", d: "M0 0 C0 10 10 10 10 0 S20 -10 20 0",
			want: []string{"M0,0", "C0,10 10,10 10,0", "C10,-10 20,-10 20,0"}},
		{name: "smooth quad", d: "M0 0 Q5 10 10 0 T20 0",
			want: []string{"M0,0", "Q5,10 10,0", "Q15,-10 20,0"}},
		{name: "zero radius arc", d: "M0 0 A0 5 0 0 1 10 0", want: []string{"M0,0", "L10,0"}},
		{name: "zero length arc", d: "M5 5 A5 5 0 0 1 5 5", want: []string{"M5,5"}},
		{name: "empty", d: "  ", want: nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, compile(t, test.d))
		})
	}
}

func TestArcEndPoint(t *testing.T) {
	for _, d := range []string{"M0 0 A5 5 0 0 1 10 0", "M0 0 a-5 -5 0 1 0 10 0", "M0 0 A1 1 30 0 1 10 0"} {
		ops := compile(t, d)
		require.Greater(t, len(ops), 1, d)
		last := ops[len(ops)-1]
		assert.Equal(t, "C", last[:1], d)
		assert.Equal(t, "10,0", last[len(last)-4:], d)
	}
}

func TestCompilePathErrors(t *testing.T) {
	tests := []struct {
		d    string
		want error
	}{
		{"L1 1", missingMoveToError},
		{"10 10 L1 1", missingMoveToError},
		{"z", missingMoveToError},
		{"M0 0 L1", paramMismatchError},
		{"M0 0z1", paramMismatchError},
		{"M0 0 A1 1 0 0 1", paramMismatchError},
		{"M0 0 L1 1 X3 3", commandUnknownError},
	}
	for _, test := range tests {
		t.Run(test.d, func(t *testing.T) {
			c := &PathCursor{ErrorMode: StrictErrorMode}
			err := c.CompilePath(test.d)
			assert.True(t, errors.Is(err, test.want), "%v", err)
		})
	}
}

func TestUnknownCommandModes(t *testing.T) {
	for _, mode := range []ErrorMode{IgnoreErrorMode, WarnErrorMode} {
		c := &PathCursor{ErrorMode: mode}
		require.NoError(t, c.CompilePath("M0 0 L1 1 X3 3"))
		assert.Equal(t, []string{"M0,0", "L1,1"}, record(c.Path))
	}
}

func TestParsePathCopies(t *testing.T) {
	c := &PathCursor{}
	first, err := c.ParsePath("M0 0 L1 1")
	require.NoError(t, err)
	_, err = c.ParsePath("M5 5 L6 6 L7 7")
	require.NoError(t, err)
	assert.Equal(t, []string{"M0,0", "L1,1"}, record(first))

	p, err := c.ParsePath("M0 0 L")
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestGetPoints(t *testing.T) {
	c := &PathCursor{}
	require.NoError(t, c.GetPoints("1-2+3 .5.5e1,-1e-1"))
	assert.Equal(t, []float64{1, -2, 3, .5, 5, -0.1}, c.points)

	assert.Error(t, c.GetPoints("1,-,2"))
}
