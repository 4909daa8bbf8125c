// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

// BrokenSink is a Sink whose every method returns a preset error. It stands
// in for a Sink that could not be constructed, deferring the constructor's
// error to the Decode call.
type BrokenSink struct {
	err error
}

// NewBrokenSink returns a Sink whose methods all return err, except that
// EndDecode returns its own err argument unchanged if that is non-nil.
func NewBrokenSink(err error) *BrokenSink {
	return &BrokenSink{err: err}
}

func (z *BrokenSink) BeginDecode(dstRect Rectangle) error { return z.err }

func (z *BrokenSink) EndDecode(err error) error {
	if err != nil {
		return err
	}
	return z.err
}

func (z *BrokenSink) OnMetadataViewBox(viewBox Rectangle) error       { return z.err }
func (z *BrokenSink) OnMetadataSuggestedPalette(p *Palette) error     { return z.err }
func (z *BrokenSink) BeginDrawing() error                             { return z.err }
func (z *BrokenSink) EndDrawing(p *Paint) error                       { return z.err }
func (z *BrokenSink) BeginPath(x0, y0 float32) error                  { return z.err }
func (z *BrokenSink) EndPath() error                                  { return z.err }
func (z *BrokenSink) PathLineTo(x1, y1 float32) error                 { return z.err }
func (z *BrokenSink) PathQuadTo(x1, y1, x2, y2 float32) error         { return z.err }
func (z *BrokenSink) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error { return z.err }

func (z *BrokenSink) PathArcTo(rx, ry, xAxisRotation float32, largeArc, sweep bool, x, y float32) error {
	return z.err
}
