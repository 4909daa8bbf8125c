// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package iconvg implements a decoder for IconVG, a compact, binary format for
simple vector graphics: icons, logos, glyphs and emoji.

A longer overview is at https://github.com/google/iconvg

# Structure

An IconVG graphic consists of a magic identifier, one or more metadata bytes
then a sequence of variable length instructions for a register-based virtual
machine.

Those instructions encode a sequence of filled paths, such as Bézier curves
and elliptical arcs. This package does not rasterize those paths itself.
Instead, the Decode function walks the instruction stream once, front to
back, and reports everything it finds to a caller-provided Sink: first the
metadata (such as the ViewBox, the graphic's co-ordinate space), then one
BeginDrawing / geometry / EndDrawing span per filled path. A Sink backed by
Cairo, Skia or any other 2-D graphics library turns those events into pixels;
the DebugSink in this package turns them into a human-readable log; a nil
Sink merely validates the byte stream.

# Registers

The decoder state includes 64 color registers (CREG) and 64 number registers
(NREG). Two selector registers, CSEL and NSEL, name the current color and
number register. The CREG registers are initialized to the custom palette:
the 64 color DecodeOptions.Palette if provided, else the graphic's suggested
palette metadata, else 64 times opaque black.

Styling mode instructions assign to the registers and selectors. When a path
is closed, the color selected at the time the path began becomes the path's
paint, either a flat color or a gradient whose stops refer back to the CREG
and NREG register files.

# Numbers

The instruction stream encodes numbers in four self-describing forms (
natural, real, coordinate and zero-to-one), each 1, 2 or 4 bytes long, keyed
on the low bits of the first byte. The 4 byte form of the three floating
point kinds re-interprets the encoded bits, with the low two bits cleared, as
an IEEE 754 single precision number.

# Errors

Decoding can fail either because the source bytes are not well-formed IconVG
(the ErrBadEtc values, recognized by IsFileFormatError) or because a Sink
method returned an error of the caller's own. Either way, the decoder stops
at the first error, the Sink's EndDecode method still runs and receives that
error, and its return value is the Decode call's result.
*/
package iconvg
