// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"image/color"
	"math"
)

// buffer is a cursor over an encoded IconVG graphic: slicing it advances the
// cursor, re-slicing with an upper bound limits it to one metadata chunk.
//
// The decodeXxx methods decode one self-describing number or color from the
// front of the buffer. They return the decoded value and n, how many bytes it
// occupied; n is zero when the buffer does not hold enough bytes, and the
// caller maps that to the ErrBadEtc error for its context.
//
// The encodeXxx methods append an encoded value in place. The decoder has no
// use for them, but tests do, when assembling byte streams.
type buffer []byte

// The first byte of every number encoding carries its own length: a clear
// low bit means a 1 byte encoding holding a 7 bit payload, a clear second
// bit means 2 bytes holding 14, and anything else means 4 bytes holding 30.

func (b buffer) peekU16LE() uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func (b buffer) peekU32LE() uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (b buffer) decodeNatural() (u uint32, n int) {
	if len(b) == 0 {
		return 0, 0
	}
	switch v := b[0]; {
	case v&0x01 == 0: // 1 byte encoding.
		return uint32(v) >> 1, 1
	case v&0x02 == 0: // 2 byte encoding.
		if len(b) >= 2 {
			return uint32(b.peekU16LE()) >> 2, 2
		}
	default: // 4 byte encoding.
		if len(b) >= 4 {
			return b.peekU32LE() >> 2, 4
		}
	}
	return 0, 0
}

// The 4 byte forms of the three floating point kinds re-interpret the
// encoded bits, low two bits cleared, as an IEEE 754 single precision value.

func (b buffer) decodeReal() (f float32, n int) {
	if len(b) == 0 {
		return 0, 0
	}
	switch v := b[0]; {
	case v&0x01 == 0:
		return float32(v >> 1), 1
	case v&0x02 == 0:
		if len(b) >= 2 {
			return float32(b.peekU16LE() >> 2), 2
		}
	default:
		if len(b) >= 4 {
			return math.Float32frombits(0xfffffffc & b.peekU32LE()), 4
		}
	}
	return 0, 0
}

func (b buffer) decodeCoordinate() (f float32, n int) {
	if len(b) == 0 {
		return 0, 0
	}
	switch v := b[0]; {
	case v&0x01 == 0:
		// The 1 byte payload is biased by 64: it spans [-64, +64).
		return float32(int32(v>>1) - 64), 1
	case v&0x02 == 0:
		if len(b) >= 2 {
			// The 2 byte payload is biased by 128*64 and scaled by 64: it
			// spans [-128, +128) in steps of 1/64.
			return float32(int32(b.peekU16LE()>>2)-128*64) / 64, 2
		}
	default:
		if len(b) >= 4 {
			return math.Float32frombits(0xfffffffc & b.peekU32LE()), 4
		}
	}
	return 0, 0
}

func (b buffer) decodeZeroToOne() (f float32, n int) {
	if len(b) == 0 {
		return 0, 0
	}
	switch v := b[0]; {
	case v&0x01 == 0:
		// The short payloads are fractions of 120 and of 15120 = 120 * 126,
		// numbers with many divisors.
		return float32(float64(v>>1) / 120), 1
	case v&0x02 == 0:
		if len(b) >= 2 {
			return float32(float64(b.peekU16LE()>>2) / 15120), 2
		}
	default:
		if len(b) >= 4 {
			return math.Float32frombits(0xfffffffc & b.peekU32LE()), 4
		}
	}
	return 0, 0
}

func (b buffer) decodeColor1() (c Color, n int) {
	if len(b) < 1 {
		return Color{}, 0
	}
	return decodeColor1(b[0]), 1
}

func (b buffer) decodeColor2() (c Color, n int) {
	if len(b) < 2 {
		return Color{}, 0
	}
	// Each nibble doubles up to a full byte: 0x7 becomes 0x77.
	return RGBAColor(color.RGBA{
		R: (b[0] >> 4) * 0x11,
		G: (b[0] & 0x0f) * 0x11,
		B: (b[1] >> 4) * 0x11,
		A: (b[1] & 0x0f) * 0x11,
	}), 2
}

func (b buffer) decodeColor3Direct() (c Color, n int) {
	if len(b) < 3 {
		return Color{}, 0
	}
	return RGBAColor(color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}), 3
}

func (b buffer) decodeColor4() (c Color, n int) {
	if len(b) < 4 {
		return Color{}, 0
	}
	return RGBAColor(color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}), 4
}

func (b buffer) decodeColor3Indirect() (c Color, n int) {
	if len(b) < 3 {
		return Color{}, 0
	}
	return BlendColor(b[0], b[1], b[2]), 3
}

func (b *buffer) encodeNatural(u uint32) {
	switch {
	case u < 1<<7:
		*b = append(*b, uint8(u<<1))
	case u < 1<<14:
		u = u<<2 | 0x01
		*b = append(*b, uint8(u), uint8(u>>8))
	default:
		u = u<<2 | 0x03
		*b = append(*b, uint8(u), uint8(u>>8), uint8(u>>16), uint8(u>>24))
	}
}

func (b *buffer) encodeReal(f float32) int {
	// Small non-negative integers share the natural number's short forms.
	u := uint32(f)
	if float32(u) != f || u >= 1<<14 {
		b.encode4ByteReal(f)
		return 4
	}
	n := len(*b)
	b.encodeNatural(u)
	return len(*b) - n
}

func (b *buffer) encode4ByteReal(f float32) {
	u := math.Float32bits(f)

	// Round the 23 fraction bits to the nearest multiple of 4, but not past
	// the top of the fraction, then flag a 4 byte encoding by setting the low
	// two bits.
	if u&0x007fffff < 0x007ffffe {
		u += 2
	}
	u |= 0x03
	*b = append(*b, uint8(u), uint8(u>>8), uint8(u>>16), uint8(u>>24))
}

func (b *buffer) encodeCoordinate(f float32) int {
	if i := int32(f); float32(i) == f && -64 <= i && i < +64 {
		*b = append(*b, uint8(i+64)<<1)
		return 1
	}
	if i := int32(f * 64); float32(i) == f*64 && -128*64 <= i && i < +128*64 {
		u := uint32(i+128*64)<<2 | 0x01
		*b = append(*b, uint8(u), uint8(u>>8))
		return 2
	}
	b.encode4ByteReal(f)
	return 4
}

func (b *buffer) encodeAngle(f float32) int {
	// Normalize f to the range [0, 1).
	g := float64(f)
	return b.encodeZeroToOne(float32(g - math.Floor(g)))
}

func (b *buffer) encodeZeroToOne(f float32) int {
	u := uint32(f * 15120)
	if float32(u) != f*15120 || u >= 15120 {
		b.encode4ByteReal(f)
		return 4
	}
	if u%126 == 0 {
		*b = append(*b, uint8(u/126)<<1)
		return 1
	}
	u = u<<2 | 0x01
	*b = append(*b, uint8(u), uint8(u>>8))
	return 2
}

// The encodeColorN helpers fall back to opaque black when the Color has no
// N byte encoding.

func (b *buffer) encodeColor1(c Color) {
	if x, ok := encodeColor1(c); ok {
		*b = append(*b, x)
	} else {
		*b = append(*b, 0x03)
	}
}

func (b *buffer) encodeColor2(c Color) {
	if x, ok := encodeColor2(c); ok {
		*b = append(*b, x[0], x[1])
	} else {
		*b = append(*b, 0x00, 0x0f)
	}
}

func (b *buffer) encodeColor3Direct(c Color) {
	if x, ok := encodeColor3Direct(c); ok {
		*b = append(*b, x[0], x[1], x[2])
	} else {
		*b = append(*b, 0x00, 0x00, 0x00)
	}
}

func (b *buffer) encodeColor4(c Color) {
	if x, ok := encodeColor4(c); ok {
		*b = append(*b, x[0], x[1], x[2], x[3])
	} else {
		*b = append(*b, 0x00, 0x00, 0x00, 0xff)
	}
}

func (b *buffer) encodeColor3Indirect(c Color) {
	if x, ok := encodeColor3Indirect(c); ok {
		*b = append(*b, x[0], x[1], x[2])
	} else {
		*b = append(*b, 0x00, 0x00, 0x00)
	}
}
