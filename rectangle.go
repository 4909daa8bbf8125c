// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"golang.org/x/image/math/f32"
)

// Rectangle is an axis-aligned rectangle with float32 co-ordinates.
//
// It is valid for a minimum co-ordinate to be greater than or equal to the
// corresponding maximum, or for any co-ordinate to be NaN, in which case the
// rectangle is empty. There are multiple ways to represent an empty rectangle
// but the canonical representation has all fields set to positive zero.
type Rectangle struct {
	Min f32.Vec2
	Max f32.Vec2
}

// DefaultViewBox is the ViewBox of an IconVG graphic that carries no explicit
// ViewBox metadata: {-32, -32, +32, +32}.
var DefaultViewBox = Rectangle{
	Min: f32.Vec2{-32, -32},
	Max: f32.Vec2{+32, +32},
}

// Width returns the rectangle's width: its Max minus Min X co-ordinate, or
// zero if the rectangle is empty on that axis.
func (r Rectangle) Width() float32 {
	// Note that a co-ordinate may be NaN. Every comparison with NaN is false,
	// so a NaN co-ordinate gives a zero width.
	if r.Max[0] > r.Min[0] {
		return r.Max[0] - r.Min[0]
	}
	return 0
}

// Height returns the rectangle's height: its Max minus Min Y co-ordinate, or
// zero if the rectangle is empty on that axis.
func (r Rectangle) Height() float32 {
	if r.Max[1] > r.Min[1] {
		return r.Max[1] - r.Min[1]
	}
	return 0
}

// Empty reports whether the rectangle contains no points.
func (r Rectangle) Empty() bool {
	return !(r.Max[0] > r.Min[0]) || !(r.Max[1] > r.Min[1])
}

// AspectRatio returns the rectangle's aspect ratio. An IconVG graphic is
// scalable; these dimensions do not necessarily map 1:1 to pixels.
func (r Rectangle) AspectRatio() (dx, dy float32) {
	return r.Width(), r.Height()
}
