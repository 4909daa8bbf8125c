// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDebugSinkPrefixAndForwarding(t *testing.T) {
	w := new(bytes.Buffer)
	rec := newRecordingSink()
	z := NewDebugSink(w, "dbg: ", rec)

	src := makeIVG(
		0xc0, 0x40, 0x40, // M (-32, -32).
		0x00, 0xa0, 0x80, // L (16, 0).
		0xe1,
	)
	if err := Decode(z, src, nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := []string{
		"dbg: begin_decode({0, 0, 0, 0})",
		"dbg: on_metadata_viewbox({-32, -32, 32, 32})",
		"dbg: begin_drawing()",
		"dbg: begin_path(-32, -32)",
		"dbg: path_line_to(16, 0)",
		"dbg: end_path()",
		"dbg: end_drawing(flat_color=000000ff)",
		"dbg: end_decode(nil)",
	}
	got := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}

	// The wrapped Sink saw every forwarded call.
	if rec.beginDrawings != 1 || rec.endDrawings != 1 || rec.endPaths != 1 {
		t.Errorf("forwarding: got %d/%d/%d begin/end drawings and end paths",
			rec.beginDrawings, rec.endDrawings, rec.endPaths)
	}
	if len(rec.lineTos) != 1 || rec.lineTos[0] != [2]float32{16, 0} {
		t.Errorf("forwarding: lineTos: got %v", rec.lineTos)
	}
	if rec.endDecodeCalls != 1 || rec.endDecodeErr != nil {
		t.Errorf("forwarding: endDecode: got %d calls, err %v", rec.endDecodeCalls, rec.endDecodeErr)
	}
}

func TestDebugSinkNilWriter(t *testing.T) {
	rec := newRecordingSink()
	z := NewDebugSink(nil, "", rec)
	if err := Decode(z, makeIVG(0xc0, 0x40, 0x40, 0xe1), nil); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.beginDrawings != 1 {
		t.Errorf("forwarding without a writer: got %d beginDrawings, want 1", rec.beginDrawings)
	}
}

func TestDebugSinkRecords(t *testing.T) {
	creg := Palette{}
	nreg := [64]float32{}
	pal := DefaultPalette
	pal[0] = color.RGBA{0xff, 0x00, 0x00, 0xff}
	pal[4] = color.RGBA{0x00, 0xff, 0x00, 0xff}

	testCases := []struct {
		name string
		call func(z *DebugSink) error
		want string
	}{{
		"end_decode with an error",
		func(z *DebugSink) error { return z.EndDecode(ErrBadMetadata) },
		`end_decode("iconvg: bad metadata")`,
	}, {
		"suggested palette",
		func(z *DebugSink) error { return z.OnMetadataSuggestedPalette(&pal) },
		"on_metadata_suggested_palette(5 colors)",
	}, {
		"arc",
		func(z *DebugSink) error { return z.PathArcTo(2, 3, 0.25, true, false, 8, 0) },
		"path_arc_to(2, 3, 0.25, largeArc=true, sweep=false, 8, 0)",
	}, {
		"quad",
		func(z *DebugSink) error { return z.PathQuadTo(1, 2, 3, 4.5) },
		"path_quad_to(1, 2, 3, 4.5)",
	}, {
		"cube",
		func(z *DebugSink) error { return z.PathCubeTo(1, 2, 3, 4, 5, 6) },
		"path_cube_to(1, 2, 3, 4, 5, 6)",
	}, {
		"linear gradient paint",
		func(z *DebugSink) error {
			return z.EndDrawing(&Paint{
				rgba: color.RGBA{0x02, 0x42, 0x82, 0x00},
				creg: &creg,
				nreg: &nreg,
			})
		},
		"end_drawing(linear_gradient, 2 stops, spread=pad)",
	}, {
		"radial gradient paint",
		func(z *DebugSink) error {
			return z.EndDrawing(&Paint{
				rgba: color.RGBA{0x03, 0xc0, 0xc1, 0x00},
				creg: &creg,
				nreg: &nreg,
			})
		},
		"end_drawing(radial_gradient, 3 stops, spread=repeat)",
	}, {
		"invalid paint",
		func(z *DebugSink) error {
			return z.EndDrawing(&Paint{rgba: color.RGBA{0xff, 0x00, 0x00, 0x00}})
		},
		"end_drawing(invalid_paint)",
	}}
	for _, tc := range testCases {
		w := new(bytes.Buffer)
		z := NewDebugSink(w, "", nil)
		if err := tc.call(z); err != nil && err != ErrBadMetadata {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if got := strings.TrimSuffix(w.String(), "\n"); got != tc.want {
			t.Errorf("%s:\ngot  %q\nwant %q", tc.name, got, tc.want)
		}
	}
}

func TestDebugSinkWrappedError(t *testing.T) {
	z := NewDebugSink(nil, "", NewBrokenSink(ErrNullArgument))
	if err := z.BeginDecode(Rectangle{}); err != ErrNullArgument {
		t.Errorf("BeginDecode: got %v, want the wrapped sink's error", err)
	}
	if err := z.PathLineTo(1, 2); err != ErrNullArgument {
		t.Errorf("PathLineTo: got %v, want the wrapped sink's error", err)
	}
}
