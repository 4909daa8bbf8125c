// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"image/color"

	"golang.org/x/image/math/f32"
)

// PaintType distinguishes the kinds of paint that can fill a path.
type PaintType uint8

const (
	PaintTypeInvalid PaintType = iota
	PaintTypeFlatColor
	PaintTypeLinearGradient
	PaintTypeRadialGradient
)

// GradientSpread is how to spread a gradient past its nominal bounds (from
// offset being 0.0 to offset being 1.0).
type GradientSpread uint8

const (
	GradientSpreadNone GradientSpread = iota
	GradientSpreadPad
	GradientSpreadReflect
	GradientSpreadRepeat
)

var gradientSpreadNames = [4]string{"none", "pad", "reflect", "repeat"}

// Paint is how to fill a path: the styling state in effect when the path was
// closed.
//
// A Paint borrows the decoder's register state: it is only valid during the
// Sink.EndDrawing call it is passed to.
type Paint struct {
	viewBox Rectangle
	dstRect Rectangle
	rgba    color.RGBA
	custom  *Palette
	creg    *Palette
	nreg    *[64]float32
	lod0    float32
	lod1    float32
}

// Type returns the paint's type.
//
// A flat color is an alpha-premultiplied RGBA value. An RGBA value that is
// not valid alpha-premultiplied encodes a gradient: its alpha is zero and the
// high bit of its blue channel is set, the blue channel's 0x40 bit selecting
// a radial (set) or linear (unset) gradient. Anything else is invalid.
func (p *Paint) Type() PaintType {
	rgba := p.rgba
	if validAlphaPremulColor(rgba) {
		return PaintTypeFlatColor
	} else if (rgba.A == 0x00) && (rgba.B >= 0x80) {
		if rgba.B&0x40 != 0 {
			return PaintTypeRadialGradient
		}
		return PaintTypeLinearGradient
	}
	return PaintTypeInvalid
}

// FlatColor returns the paint's color as alpha-premultiplied RGBA. It is only
// meaningful when Type returns PaintTypeFlatColor.
func (p *Paint) FlatColor() color.RGBA {
	return p.rgba
}

// NonPremulFlatColor returns the paint's color with the alpha
// premultiplication undone.
func (p *Paint) NonPremulFlatColor() color.NRGBA {
	return nonPremul(p.rgba)
}

func nonPremul(c color.RGBA) color.NRGBA {
	if c.A == 0x00 {
		return color.NRGBA{}
	} else if c.A == 0xff {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	a := uint32(c.A)
	return color.NRGBA{
		R: uint8(uint32(c.R) * 0xff / a),
		G: uint8(uint32(c.G) * 0xff / a),
		B: uint8(uint32(c.B) * 0xff / a),
		A: uint8(a),
	}
}

// LOD returns the level-of-detail bounds in effect: renderers may skip the
// path when the overall rendering scale lies outside [lod0, lod1).
func (p *Paint) LOD() (lod0, lod1 float32) {
	return p.lod0, p.lod1
}

// A gradient paint packs its parameters into the paint's RGBA channels: the
// number of stops in the low six bits of red, the CREG base and spread in
// green, the NREG base and shape in blue. Stop colors live in the CREG
// registers starting at the CREG base and stop offsets in the NREG registers
// starting at the NREG base; the six NREG registers just below the base hold
// the affine transformation from graphic co-ordinates to gradient
// co-ordinates.

// GradientSpread returns how the gradient spreads past its nominal bounds. It
// is only meaningful when Type returns a gradient type.
func (p *Paint) GradientSpread() GradientSpread {
	return GradientSpread(p.rgba.G >> 6)
}

// GradientNumberOfStops returns the gradient's number of stops. It is only
// meaningful when Type returns a gradient type.
func (p *Paint) GradientNumberOfStops() int {
	return int(p.rgba.R & 0x3f)
}

// GradientStopColor returns the alpha-premultiplied color of the
// whichStop'th gradient stop.
func (p *Paint) GradientStopColor(whichStop int) (color.RGBA, error) {
	t := p.Type()
	if t != PaintTypeLinearGradient && t != PaintTypeRadialGradient {
		return color.RGBA{}, ErrInvalidPaintType
	}
	if whichStop < 0 || whichStop >= p.GradientNumberOfStops() {
		return color.RGBA{}, ErrInvalidPaintType
	}
	cBase := uint32(p.rgba.G)
	return p.creg[0x3f&(cBase+uint32(whichStop))], nil
}

// GradientStopOffset returns the offset, in the range [0, 1], of the
// whichStop'th gradient stop.
func (p *Paint) GradientStopOffset(whichStop int) (float32, error) {
	t := p.Type()
	if t != PaintTypeLinearGradient && t != PaintTypeRadialGradient {
		return 0, ErrInvalidPaintType
	}
	if whichStop < 0 || whichStop >= p.GradientNumberOfStops() {
		return 0, ErrInvalidPaintType
	}
	nBase := uint32(p.rgba.B)
	return p.nreg[0x3f&(nBase+uint32(whichStop))], nil
}

// GradientTransform returns the affine transformation from destination
// co-ordinates to gradient (also known as pattern or paint) co-ordinates,
// where linear gradients always range from x=0 to x=1 and radial gradients
// always have centre (0, 0) and radius 1.
//
// The six NREG registers below the gradient's NREG base hold the matrix
// [s00, s01, s02; s10, s11, s12] transforming graphic (ViewBox) co-ordinates
// to gradient co-ordinates:
//
//	pat_x = (src_x * s00) + (src_y * s01) + s02
//	pat_y = (src_x * s10) + (src_y * s11) + s12
//
// Composing that with the destination-to-ViewBox mapping implied by the
// Decode call's destination rectangle yields the returned matrix. When the
// destination rectangle is empty (including the zero Rectangle), destination
// and ViewBox co-ordinates are taken to coincide.
func (p *Paint) GradientTransform() f32.Aff3 {
	nBase := uint32(p.rgba.B)
	s00 := float64(p.nreg[0x3f&(nBase-6)])
	s01 := float64(p.nreg[0x3f&(nBase-5)])
	s02 := float64(p.nreg[0x3f&(nBase-4)])
	s10 := float64(p.nreg[0x3f&(nBase-3)])
	s11 := float64(p.nreg[0x3f&(nBase-2)])
	s12 := float64(p.nreg[0x3f&(nBase-1)])

	d2sScaleX, d2sBiasX, d2sScaleY, d2sBiasY := p.dstToSrc()

	return f32.Aff3{
		float32(s00 * d2sScaleX),
		float32(s01 * d2sScaleY),
		float32((s00 * d2sBiasX) + (s01 * d2sBiasY) + s02),
		float32(s10 * d2sScaleX),
		float32(s11 * d2sScaleY),
		float32((s10 * d2sBiasX) + (s11 * d2sBiasY) + s12),
	}
}

// dstToSrc returns the scale and bias mapping destination co-ordinates to
// graphic (ViewBox) co-ordinates:
//
//	src_x = (dst_x * scaleX) + biasX
//	src_y = (dst_y * scaleY) + biasY
func (p *Paint) dstToSrc() (scaleX, biasX, scaleY, biasY float64) {
	if p.dstRect.Empty() || p.viewBox.Empty() {
		return 1, 0, 1, 0
	}
	scaleX = float64(p.viewBox.Width()) / float64(p.dstRect.Width())
	biasX = float64(p.viewBox.Min[0]) - (float64(p.dstRect.Min[0]) * scaleX)
	scaleY = float64(p.viewBox.Height()) / float64(p.dstRect.Height())
	biasY = float64(p.viewBox.Min[1]) - (float64(p.dstRect.Min[1]) * scaleY)
	return scaleX, biasX, scaleY, biasY
}
