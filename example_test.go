// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg_test

import (
	"log"
	"os"

	iconvg "github.com/iconvg/iconvg-go"
)

func ExampleDecode() {
	// A minimal IconVG graphic: the magic identifier, zero metadata chunks,
	// then a single triangular path filled with the default color.
	ivgData := []byte{
		0x89, 0x49, 0x56, 0x47, // Magic identifier.
		0x00,             // Zero metadata chunks.
		0xc0, 0x40, 0x40, // Start path at (-32, -32).
		0x01, 0xc0, 0x40, 0xa0, 0xc0, // L (32, -32), L (16, 32).
		0xe1, // Close the path.
	}

	z := iconvg.NewDebugSink(os.Stdout, "", nil)
	if err := iconvg.Decode(z, ivgData, nil); err != nil {
		log.Fatal(err)
	}

	// Output:
	// begin_decode({0, 0, 0, 0})
	// on_metadata_viewbox({-32, -32, 32, 32})
	// begin_drawing()
	// begin_path(-32, -32)
	// path_line_to(32, -32)
	// path_line_to(16, 32)
	// end_path()
	// end_drawing(flat_color=000000ff)
	// end_decode(nil)
}
