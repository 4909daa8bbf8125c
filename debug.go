// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"fmt"
	"io"
)

// DebugSink is a Sink that logs each call, one prefixed line per call, before
// forwarding the call on to a wrapped Sink.
type DebugSink struct {
	w       io.Writer
	prefix  string
	wrapped Sink
}

// NewDebugSink returns a Sink that logs calls to w before forwarding them on
// to wrapped. Log lines are prefixed by prefix.
//
// w may be nil, in which case nothing is logged.
//
// wrapped may be nil, in which case the Sink calls always return success (a
// nil error) except that EndDecode returns its (possibly non-nil) err
// argument unchanged.
func NewDebugSink(w io.Writer, prefix string, wrapped Sink) *DebugSink {
	return &DebugSink{
		w:       w,
		prefix:  prefix,
		wrapped: wrapped,
	}
}

func (z *DebugSink) printf(format string, args ...interface{}) {
	if z.w == nil {
		return
	}
	fmt.Fprintf(z.w, "%s%s\n", z.prefix, fmt.Sprintf(format, args...))
}

func (z *DebugSink) BeginDecode(dstRect Rectangle) error {
	z.printf("begin_decode({%g, %g, %g, %g})",
		dstRect.Min[0], dstRect.Min[1], dstRect.Max[0], dstRect.Max[1])
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.BeginDecode(dstRect)
}

func (z *DebugSink) EndDecode(err error) error {
	if err != nil {
		z.printf("end_decode(%q)", err.Error())
	} else {
		z.printf("end_decode(nil)")
	}
	if z.wrapped == nil {
		return err
	}
	return z.wrapped.EndDecode(err)
}

func (z *DebugSink) OnMetadataViewBox(viewBox Rectangle) error {
	z.printf("on_metadata_viewbox({%g, %g, %g, %g})",
		viewBox.Min[0], viewBox.Min[1], viewBox.Max[0], viewBox.Max[1])
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.OnMetadataViewBox(viewBox)
}

func (z *DebugSink) OnMetadataSuggestedPalette(p *Palette) error {
	z.printf("on_metadata_suggested_palette(%d colors)",
		lastColorThatIsntOpaqueBlack(p)+1)
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.OnMetadataSuggestedPalette(p)
}

func (z *DebugSink) BeginDrawing() error {
	z.printf("begin_drawing()")
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.BeginDrawing()
}

func (z *DebugSink) EndDrawing(p *Paint) error {
	switch p.Type() {
	case PaintTypeFlatColor:
		c := p.FlatColor()
		z.printf("end_drawing(flat_color=%02x%02x%02x%02x)", c.R, c.G, c.B, c.A)
	case PaintTypeLinearGradient:
		z.printf("end_drawing(linear_gradient, %d stops, spread=%s)",
			p.GradientNumberOfStops(), gradientSpreadNames[p.GradientSpread()])
	case PaintTypeRadialGradient:
		z.printf("end_drawing(radial_gradient, %d stops, spread=%s)",
			p.GradientNumberOfStops(), gradientSpreadNames[p.GradientSpread()])
	default:
		z.printf("end_drawing(invalid_paint)")
	}
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.EndDrawing(p)
}

func (z *DebugSink) BeginPath(x0, y0 float32) error {
	z.printf("begin_path(%g, %g)", x0, y0)
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.BeginPath(x0, y0)
}

func (z *DebugSink) EndPath() error {
	z.printf("end_path()")
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.EndPath()
}

func (z *DebugSink) PathLineTo(x1, y1 float32) error {
	z.printf("path_line_to(%g, %g)", x1, y1)
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.PathLineTo(x1, y1)
}

func (z *DebugSink) PathQuadTo(x1, y1, x2, y2 float32) error {
	z.printf("path_quad_to(%g, %g, %g, %g)", x1, y1, x2, y2)
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.PathQuadTo(x1, y1, x2, y2)
}

func (z *DebugSink) PathCubeTo(x1, y1, x2, y2, x3, y3 float32) error {
	z.printf("path_cube_to(%g, %g, %g, %g, %g, %g)", x1, y1, x2, y2, x3, y3)
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.PathCubeTo(x1, y1, x2, y2, x3, y3)
}

func (z *DebugSink) PathArcTo(rx, ry, xAxisRotation float32, largeArc, sweep bool, x, y float32) error {
	z.printf("path_arc_to(%g, %g, %g, largeArc=%t, sweep=%t, %g, %g)",
		rx, ry, xAxisRotation, largeArc, sweep, x, y)
	if z.wrapped == nil {
		return nil
	}
	return z.wrapped.PathArcTo(rx, ry, xAxisRotation, largeArc, sweep, x, y)
}
