// Copyright 2017 The oksvg Authors. All rights reserved.

package svgpaths

import "regexp"

// CoordinatePair is one x,y pair of a points attribute, as written.
type CoordinatePair struct {
	X, Y string
}

const (
	numberPattern   = `[+-]?\d*[.\d]\d*(?:[eE][+-]?\d+)?`
	negativePattern = `-\d*[.\d]\d*(?:[eE][+-]?\d+)?`
)

// coordPair matches two numbers separated by a comma, by white space,
// or by nothing when the second one starts with a minus sign ("1-2").
var coordPair = regexp.MustCompile(
	`(` + numberPattern + `)(?:\s*,\s*|\s+)(` + numberPattern + `)` +
		`|(` + numberPattern + `)(` + negativePattern + `)`)

// ScanCoordinatePairs returns the coordinate pairs of a points string, left to right.
// Content that does not complete a pair is ignored.
func ScanCoordinatePairs(points string) []CoordinatePair {
	matches := coordPair.FindAllStringSubmatch(points, -1)
	pairs := make([]CoordinatePair, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			pairs = append(pairs, CoordinatePair{X: m[1], Y: m[2]})
		} else {
			pairs = append(pairs, CoordinatePair{X: m[3], Y: m[4]})
		}
	}
	return pairs
}
