// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"bytes"
	"image/color"
	"math"

	"golang.org/x/image/math/f32"
)

const magic = "\x89IVG"

var magicBytes = []byte(magic)

const (
	midViewBox          = 0
	midSuggestedPalette = 1
)

var positiveInfinity = float32(math.Inf(+1))

// adjustments are the ADJ values from the IconVG spec: the low three opcode
// bits name a selector offset, except that 7 means offset 0 followed by a
// post-increment of the selector.
var adjustments = [8]uint8{0, 1, 2, 3, 4, 5, 6, 0}

// DecodeOptions are the optional parameters to the Decode function.
type DecodeOptions struct {
	// Palette is an optional 64 color palette. If one isn't provided, the
	// IconVG graphic's suggested palette will be used.
	Palette *Palette

	// DstRect is the destination rectangle, in destination co-ordinates, that
	// the graphic is being decoded into. It is passed through to the Sink's
	// BeginDecode call and determines the Paint's gradient transformation. If
	// one isn't provided, destination co-ordinates are taken to coincide with
	// ViewBox co-ordinates.
	DstRect *Rectangle
}

// DecodeViewBox decodes only the ViewBox metadata in an IconVG graphic.
//
// An explicit ViewBox is optional in the IconVG file format. If src does not
// hold one, DecodeViewBox returns the default ViewBox: {-32, -32, +32, +32}.
func DecodeViewBox(src []byte) (Rectangle, error) {
	if src == nil {
		return Rectangle{}, ErrNullArgument
	}
	d := decoder{viewBox: DefaultViewBox}
	if _, err := d.decodeMetadata(src); err != nil {
		return Rectangle{}, err
	}
	return d.viewBox, nil
}

// Decode decodes the src IconVG graphic, calling dst's methods to deliver the
// decoded vector graphic.
//
// The call sequence always begins with exactly one BeginDecode call and ends
// with exactly one EndDecode call. If src holds well-formed IconVG data and
// none of the callbacks returns an error then the err argument to EndDecode
// will be nil. Otherwise, the call sequence stops as soon as a non-nil error
// is encountered, whether a file format error or a callback error. This
// non-nil error becomes the err argument to EndDecode and Decode returns
// whatever EndDecode returns.
//
// dst may be nil, in which case the decode still validates src's byte code.
func Decode(dst Sink, src []byte, opts *DecodeOptions) error {
	if dst == nil {
		dst = NewDebugSink(nil, "", nil)
	}

	d := decoder{
		sink:    dst,
		viewBox: DefaultViewBox,
		custom:  DefaultPalette,
		lod1:    positiveInfinity,
	}
	if opts != nil {
		if opts.Palette != nil {
			d.custom = *opts.Palette
			d.customExplicit = true
		}
		if opts.DstRect != nil {
			d.dstRect = *opts.DstRect
		}
	}

	err := dst.BeginDecode(d.dstRect)
	if err == nil {
		err = d.decode(src)
	}
	return dst.EndDecode(err)
}

// decoder is the fixed-size state of one decode: the color and number
// register files, the selector registers, the level-of-detail bounds, and the
// current-point and smooth-curve state of the drawing mode. It can be reused
// across decodes.
type decoder struct {
	sink Sink

	viewBox Rectangle
	dstRect Rectangle

	// custom is the custom palette and creg the color register file. creg is
	// reset to the custom palette when the byte code starts executing.
	custom Palette
	creg   Palette
	nreg   [64]float32

	customExplicit bool

	csel uint8
	nsel uint8

	lod0 float32
	lod1 float32

	// curr is the path's current point. quadCtrl and cubeCtrl are the
	// reflection points for the smooth quadratic and smooth cubic commands:
	// the previous explicit control point of the same curve family, or curr
	// itself after any other command.
	curr     f32.Vec2
	quadCtrl f32.Vec2
	cubeCtrl f32.Vec2

	// paint is re-used for every EndDrawing call, borrowing the register
	// files above.
	paint Paint

	drawing bool
}

func (d *decoder) decode(src []byte) error {
	if src == nil {
		return ErrNullArgument
	}
	rest, err := d.decodeMetadata(src)
	if err != nil {
		return err
	}
	d.creg = d.custom
	d.nreg = [64]float32{}
	d.csel = 0
	d.nsel = 0
	d.lod0 = 0
	d.lod1 = positiveInfinity
	d.drawing = false
	d.paint = Paint{
		viewBox: d.viewBox,
		dstRect: d.dstRect,
		custom:  &d.custom,
		creg:    &d.creg,
		nreg:    &d.nreg,
	}
	return d.execute(rest)
}

// decodeMetadata validates the magic identifier and walks the metadata
// chunks, returning the remaining (styling and drawing) byte code. When
// d.sink is nil only the framing and the ViewBox chunk are validated, which
// is all that DecodeViewBox needs.
func (d *decoder) decodeMetadata(src buffer) (buffer, error) {
	if !bytes.HasPrefix(src, magicBytes) {
		return nil, ErrBadMagicIdentifier
	}
	src = src[len(magic):]

	nMetadataChunks, n := src.decodeNatural()
	if n == 0 {
		return nil, ErrBadMetadata
	}
	src = src[n:]

	useDefaultViewBox := true
	previousMID := int64(-1)
	for ; nMetadataChunks > 0; nMetadataChunks-- {
		length, n := src.decodeNatural()
		if n == 0 || int64(length) > int64(len(src)-n) {
			return nil, ErrBadMetadata
		}
		src = src[n:]
		chunk := src[:length]
		src = src[length:]

		mid, n := chunk.decodeNatural()
		if n == 0 {
			return nil, ErrBadMetadata
		}
		if int64(mid) <= previousMID {
			return nil, ErrBadMetadataIDOrder
		}
		previousMID = int64(mid)
		chunk = chunk[n:]

		// If this graphic carries no explicit ViewBox then the default one is
		// reported just before the first chunk that cannot be a ViewBox.
		if mid != midViewBox && useDefaultViewBox {
			useDefaultViewBox = false
			if err := d.emitViewBox(DefaultViewBox); err != nil {
				return nil, err
			}
		}

		switch {
		case mid == midViewBox:
			useDefaultViewBox = false
			if err := d.decodeMetadataViewBox(chunk); err != nil {
				return nil, err
			}
		case mid == midSuggestedPalette && d.sink != nil:
			if err := d.decodeMetadataSuggestedPalette(chunk); err != nil {
				return nil, err
			}
		default:
			// Unrecognized metadata is skipped by its declared chunk length.
		}
	}

	if useDefaultViewBox {
		if err := d.emitViewBox(DefaultViewBox); err != nil {
			return nil, err
		}
	}
	return src, nil
}

func (d *decoder) emitViewBox(r Rectangle) error {
	d.viewBox = r
	if d.sink == nil {
		return nil
	}
	return d.sink.OnMetadataViewBox(r)
}

func (d *decoder) decodeMetadataViewBox(chunk buffer) error {
	var r Rectangle
	coords := [4]*float32{&r.Min[0], &r.Min[1], &r.Max[0], &r.Max[1]}
	for _, c := range coords {
		f, n := chunk.decodeCoordinate()
		if n == 0 {
			return ErrBadMetadataViewBox
		}
		*c = f
		chunk = chunk[n:]
	}
	if len(chunk) != 0 {
		return ErrBadMetadataViewBox
	}
	return d.emitViewBox(r)
}

func (d *decoder) decodeMetadataSuggestedPalette(chunk buffer) error {
	if len(chunk) == 0 {
		return ErrBadMetadataSuggestedPalette
	}
	length, format := 1+int(chunk[0]&0x3f), chunk[0]>>6
	decode := buffer.decodeColor4
	switch format {
	case 0:
		decode = buffer.decodeColor1
	case 1:
		decode = buffer.decodeColor2
	case 2:
		decode = buffer.decodeColor3Direct
	}
	chunk = chunk[1:]

	suggested := DefaultPalette
	for i := 0; i < length; i++ {
		c, n := decode(chunk)
		if n == 0 {
			return ErrBadMetadataSuggestedPalette
		}
		rgba := c.rgba()
		if c.typ != ColorTypeRGBA || !validAlphaPremulColor(rgba) {
			rgba = color.RGBA{0x00, 0x00, 0x00, 0xff}
		}
		suggested[i] = rgba
		chunk = chunk[n:]
	}
	if len(chunk) != 0 {
		return ErrBadMetadataSuggestedPalette
	}

	if !d.customExplicit {
		d.custom = suggested
	}
	return d.sink.OnMetadataSuggestedPalette(&suggested)
}

// modeFunc is the decoding mode: whether we are decoding styling or drawing
// opcodes.
//
// It is a function type. The decoding loop calls this function to decode and
// execute the next opcode from the src buffer, returning the subsequent mode
// and the remaining source bytes.
type modeFunc func(d *decoder, src buffer) (modeFunc, buffer, error)

func (d *decoder) execute(src buffer) error {
	mf := decodeStyling
	for len(src) > 0 {
		var err error
		mf, src, err = mf(d, src)
		if err != nil {
			return err
		}
	}
	if d.drawing {
		return ErrBadPathUnfinished
	}
	return nil
}

func decodeStyling(d *decoder, src buffer) (modeFunc, buffer, error) {
	switch opcode := src[0]; {
	case opcode < 0x40:
		d.csel = opcode & 0x3f
		return decodeStyling, src[1:], nil
	case opcode < 0x80:
		d.nsel = opcode & 0x3f
		return decodeStyling, src[1:], nil
	case opcode < 0xa8:
		return decodeSetCReg(d, src[1:], opcode)
	case opcode < 0xc0:
		return decodeSetNReg(d, src[1:], opcode)
	case opcode < 0xc7:
		return decodeStartPath(d, src[1:], opcode)
	case opcode == 0xc7:
		return decodeSetLOD(d, src[1:])
	}
	return nil, nil, ErrBadStylingOpcode
}

func decodeSetCReg(d *decoder, src buffer, opcode byte) (modeFunc, buffer, error) {
	decode := buffer.decodeColor1
	switch (opcode - 0x80) >> 3 {
	case 1:
		decode = buffer.decodeColor2
	case 2:
		decode = buffer.decodeColor3Direct
	case 3:
		decode = buffer.decodeColor4
	case 4:
		decode = buffer.decodeColor3Indirect
	}

	c, n := decode(src)
	if n == 0 {
		return nil, nil, ErrBadColor
	}
	src = src[n:]

	adj := adjustments[opcode&0x07]
	d.creg[(d.csel-adj)&0x3f] = c.Resolve(&d.custom, &d.creg)
	if opcode&0x07 == 0x07 {
		d.csel++
	}
	return decodeStyling, src, nil
}

func decodeSetNReg(d *decoder, src buffer, opcode byte) (modeFunc, buffer, error) {
	decode, badNumber := buffer.decodeReal, ErrBadNumber
	switch (opcode - 0xa8) >> 3 {
	case 1:
		decode, badNumber = buffer.decodeCoordinate, ErrBadCoordinate
	case 2:
		decode, badNumber = buffer.decodeZeroToOne, ErrBadNumber
	}

	f, n := decode(src)
	if n == 0 {
		return nil, nil, badNumber
	}
	src = src[n:]

	adj := adjustments[opcode&0x07]
	d.nreg[(d.nsel-adj)&0x3f] = f
	if opcode&0x07 == 0x07 {
		d.nsel++
	}
	return decodeStyling, src, nil
}

func decodeStartPath(d *decoder, src buffer, opcode byte) (modeFunc, buffer, error) {
	var coords [2]float32
	src, err := decodeCoordinates(coords[:], src)
	if err != nil {
		return nil, nil, err
	}

	adj := opcode & 0x07
	d.paint.rgba = d.creg[(d.csel-adj)&0x3f]
	d.paint.lod0 = d.lod0
	d.paint.lod1 = d.lod1

	if err := d.sink.BeginDrawing(); err != nil {
		return nil, nil, err
	}
	if err := d.sink.BeginPath(coords[0], coords[1]); err != nil {
		return nil, nil, err
	}
	d.moveTo(coords[0], coords[1])
	d.drawing = true
	return decodeDrawing, src, nil
}

func decodeSetLOD(d *decoder, src buffer) (modeFunc, buffer, error) {
	lod0, n := src.decodeReal()
	if n == 0 {
		return nil, nil, ErrBadNumber
	}
	src = src[n:]
	lod1, n := src.decodeReal()
	if n == 0 {
		return nil, nil, ErrBadNumber
	}
	src = src[n:]

	d.lod0, d.lod1 = lod0, lod1
	return decodeStyling, src, nil
}

// moveTo sets the current point, clearing both smooth-curve reflection points
// so that an immediately following smooth command has a coincident implicit
// control point.
func (d *decoder) moveTo(x, y float32) {
	d.curr = f32.Vec2{x, y}
	d.quadCtrl = d.curr
	d.cubeCtrl = d.curr
}

func decodeDrawing(d *decoder, src buffer) (mf modeFunc, src1 buffer, err error) {
	var coords [6]float32

	switch opcode := src[0]; {
	case opcode < 0x40: // 'L' and 'l' mnemonics: absolute and relative lineTo.
		relative := opcode >= 0x20
		nReps := 1 + int(opcode&0x1f)
		src = src[1:]
		for i := 0; i < nReps; i++ {
			if src, err = decodeCoordinates(coords[:2], src); err != nil {
				return nil, nil, err
			}
			if relative {
				coords[0] += d.curr[0]
				coords[1] += d.curr[1]
			}
			if err = d.sink.PathLineTo(coords[0], coords[1]); err != nil {
				return nil, nil, err
			}
			d.moveTo(coords[0], coords[1])
		}

	case opcode < 0xe0:
		nReps := 1 + int(opcode&0x0f)
		src = src[1:]
		for i := 0; i < nReps; i++ {
			switch opcode >> 4 {
			case 0x04, 0x05: // 'T' and 't': absolute and relative smooth quadTo.
				if src, err = decodeCoordinates(coords[2:4], src); err != nil {
					return nil, nil, err
				}
				if opcode>>4 == 0x05 {
					coords[2] += d.curr[0]
					coords[3] += d.curr[1]
				}
				coords[0] = (2 * d.curr[0]) - d.quadCtrl[0]
				coords[1] = (2 * d.curr[1]) - d.quadCtrl[1]
				if err = d.quadTo(&coords); err != nil {
					return nil, nil, err
				}

			case 0x06, 0x07: // 'Q' and 'q': absolute and relative quadTo.
				if src, err = decodeCoordinates(coords[:4], src); err != nil {
					return nil, nil, err
				}
				if opcode>>4 == 0x07 {
					for j := 0; j < 4; j += 2 {
						coords[j+0] += d.curr[0]
						coords[j+1] += d.curr[1]
					}
				}
				if err = d.quadTo(&coords); err != nil {
					return nil, nil, err
				}

			case 0x08, 0x09: // 'S' and 's': absolute and relative smooth cubeTo.
				if src, err = decodeCoordinates(coords[2:6], src); err != nil {
					return nil, nil, err
				}
				if opcode>>4 == 0x09 {
					for j := 2; j < 6; j += 2 {
						coords[j+0] += d.curr[0]
						coords[j+1] += d.curr[1]
					}
				}
				coords[0] = (2 * d.curr[0]) - d.cubeCtrl[0]
				coords[1] = (2 * d.curr[1]) - d.cubeCtrl[1]
				if err = d.cubeTo(&coords); err != nil {
					return nil, nil, err
				}

			case 0x0a, 0x0b: // 'C' and 'c': absolute and relative cubeTo.
				if src, err = decodeCoordinates(coords[:6], src); err != nil {
					return nil, nil, err
				}
				if opcode>>4 == 0x0b {
					for j := 0; j < 6; j += 2 {
						coords[j+0] += d.curr[0]
						coords[j+1] += d.curr[1]
					}
				}
				if err = d.cubeTo(&coords); err != nil {
					return nil, nil, err
				}

			case 0x0c, 0x0d: // 'A' and 'a': absolute and relative arcTo.
				if src, err = decodeCoordinates(coords[:2], src); err != nil {
					return nil, nil, err
				}
				rot, n := src.decodeZeroToOne()
				if n == 0 {
					return nil, nil, ErrBadCoordinate
				}
				src = src[n:]
				flags, n := src.decodeNatural()
				if n == 0 {
					return nil, nil, ErrBadCoordinate
				}
				src = src[n:]
				if src, err = decodeCoordinates(coords[4:6], src); err != nil {
					return nil, nil, err
				}
				if opcode>>4 == 0x0d {
					coords[4] += d.curr[0]
					coords[5] += d.curr[1]
				}
				if err = d.sink.PathArcTo(coords[0], coords[1], rot,
					flags&0x01 != 0, flags&0x02 != 0, coords[4], coords[5]); err != nil {
					return nil, nil, err
				}
				d.moveTo(coords[4], coords[5])

			default:
				// The enclosing case already bounds the opcode's high nibble
				// to the 0x04 through 0x0d families.
				return nil, nil, errUnreachable
			}
		}

	case opcode == 0xe1: // 'z': closePath; end path.
		src = src[1:]
		if err = d.sink.EndPath(); err != nil {
			return nil, nil, err
		}
		if err = d.sink.EndDrawing(&d.paint); err != nil {
			return nil, nil, err
		}
		d.drawing = false
		return decodeStyling, src, nil

	case opcode == 0xe2 || opcode == 0xe3: // 'z; M' and 'z; m': closePath; moveTo.
		relative := opcode == 0xe3
		src = src[1:]
		if err = d.sink.EndPath(); err != nil {
			return nil, nil, err
		}
		if src, err = decodeCoordinates(coords[:2], src); err != nil {
			return nil, nil, err
		}
		if relative {
			coords[0] += d.curr[0]
			coords[1] += d.curr[1]
		}
		if err = d.sink.BeginPath(coords[0], coords[1]); err != nil {
			return nil, nil, err
		}
		d.moveTo(coords[0], coords[1])

	case opcode >= 0xe6 && opcode <= 0xe9: // 'H', 'h', 'V' and 'v': horizontal and vertical lineTo.
		src = src[1:]
		if src, err = decodeCoordinates(coords[:1], src); err != nil {
			return nil, nil, err
		}
		x, y := d.curr[0], d.curr[1]
		switch opcode {
		case 0xe6:
			x = coords[0]
		case 0xe7:
			x += coords[0]
		case 0xe8:
			y = coords[0]
		case 0xe9:
			y += coords[0]
		}
		if err = d.sink.PathLineTo(x, y); err != nil {
			return nil, nil, err
		}
		d.moveTo(x, y)

	default:
		return nil, nil, ErrBadDrawingOpcode
	}
	return decodeDrawing, src, nil
}

// quadTo emits a quadratic Bézier curve from coords[0:4], then records its
// explicit control point for a following smooth quadratic command.
func (d *decoder) quadTo(coords *[6]float32) error {
	if err := d.sink.PathQuadTo(coords[0], coords[1], coords[2], coords[3]); err != nil {
		return err
	}
	d.curr = f32.Vec2{coords[2], coords[3]}
	d.quadCtrl = f32.Vec2{coords[0], coords[1]}
	d.cubeCtrl = d.curr
	return nil
}

// cubeTo emits a cubic Bézier curve from coords[0:6], then records its last
// explicit control point for a following smooth cubic command.
func (d *decoder) cubeTo(coords *[6]float32) error {
	if err := d.sink.PathCubeTo(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5]); err != nil {
		return err
	}
	d.curr = f32.Vec2{coords[4], coords[5]}
	d.cubeCtrl = f32.Vec2{coords[2], coords[3]}
	d.quadCtrl = d.curr
	return nil
}

func decodeCoordinates(coords []float32, src buffer) (src1 buffer, err error) {
	for i := range coords {
		f, n := src.decodeCoordinate()
		if n == 0 {
			return nil, ErrBadCoordinate
		}
		coords[i] = f
		src = src[n:]
	}
	return src, nil
}
