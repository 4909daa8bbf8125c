// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// Sink handles the drawing and metadata events decoded from an IconVG
// graphic. It is conceptually a 'virtual super-class' with e.g. Cairo-backed
// or Skia-backed 'sub-classes', except that Go interfaces replace explicit
// vtables.
//
// For a single Decode call, the event sequence always begins with exactly one
// BeginDecode call and ends with exactly one EndDecode call. In between, in
// order: at most one OnMetadataViewBox call (always made, with the default
// ViewBox if the graphic has no explicit one, before any drawing event); at
// most one OnMetadataSuggestedPalette call; then, for each styled path, one
// BeginDrawing call, one or more BeginPath/EndPath spans carrying PathEtcTo
// events, and one EndDrawing call.
//
// Each method returns nil to continue decoding. A non-nil return aborts the
// decode immediately: the decoder makes no further calls other than passing
// that error to EndDecode, and EndDecode's return value becomes Decode's
// result.
//
// The *Paint passed to EndDrawing borrows the decoder's register state. It is
// only valid until EndDrawing returns; implementations must not retain it.
type Sink interface {
	BeginDecode(dstRect Rectangle) error
	EndDecode(err error) error

	OnMetadataViewBox(viewBox Rectangle) error
	OnMetadataSuggestedPalette(p *Palette) error

	BeginDrawing() error
	EndDrawing(p *Paint) error

	BeginPath(x0, y0 float32) error
	EndPath() error

	PathLineTo(x1, y1 float32) error
	PathQuadTo(x1, y1, x2, y2 float32) error
	PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error
	PathArcTo(rx, ry, xAxisRotation float32, largeArc, sweep bool, x, y float32) error
}
