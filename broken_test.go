// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"errors"
	"testing"
)

func TestBrokenSink(t *testing.T) {
	errBroken := errors.New("test: broken")
	z := NewBrokenSink(errBroken)

	if err := z.BeginDecode(Rectangle{}); err != errBroken {
		t.Errorf("BeginDecode: got %v", err)
	}
	if err := z.OnMetadataViewBox(DefaultViewBox); err != errBroken {
		t.Errorf("OnMetadataViewBox: got %v", err)
	}
	if err := z.BeginDrawing(); err != errBroken {
		t.Errorf("BeginDrawing: got %v", err)
	}
	if err := z.PathLineTo(1, 2); err != errBroken {
		t.Errorf("PathLineTo: got %v", err)
	}

	// EndDecode passes a non-nil err through unchanged, and substitutes its
	// own otherwise.
	if err := z.EndDecode(nil); err != errBroken {
		t.Errorf("EndDecode(nil): got %v", err)
	}
	if err := z.EndDecode(ErrBadMetadata); err != ErrBadMetadata {
		t.Errorf("EndDecode(ErrBadMetadata): got %v", err)
	}
}

func TestDecodeIntoBrokenSink(t *testing.T) {
	errBroken := errors.New("test: broken")
	src := makeIVG(0xc0, 0x40, 0x40, 0xe1)
	if err := Decode(NewBrokenSink(errBroken), src, nil); err != errBroken {
		t.Errorf("valid src: got %v, want the broken sink's error", err)
	}
	// A file format error does not take precedence: BeginDecode fails
	// first, so src is never examined and the broken sink's error wins here.
	if err := Decode(NewBrokenSink(errBroken), []byte{0x88}, nil); err != errBroken {
		t.Errorf("bad src: got %v, want the broken sink's error", err)
	}
}
