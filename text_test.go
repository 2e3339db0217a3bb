// seehuhn.de/go/flatpdf - create simple single-page PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"
	"testing"
	"time"
)

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"Hello, World!",
		"Größenwahn",
		"こんにちは",
		"line\nbreak",
	}
	for _, in := range cases {
		enc := TextString(in)
		out := enc.AsTextString()
		if out != in {
			t.Errorf("text string round trip failed: %q -> %q", in, out)
		}
	}
}

func TestTextStringASCII(t *testing.T) {
	// Plain ASCII text must be stored directly, without a byte order
	// mark, so that the strings stay readable in the file.
	enc := TextString("Hello, World!")
	if !bytes.Equal(enc, []byte("Hello, World!")) {
		t.Errorf("ASCII text was re-encoded: %q", enc)
	}

	enc = TextString("Größenwahn")
	if len(enc) < 2 || enc[0] != 0xFE || enc[1] != 0xFF {
		t.Errorf("missing byte order mark: % x", enc)
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("test", 60*60)
	when := time.Date(2026, 8, 25, 13, 14, 15, 0, loc)
	enc := Date(when)
	want := "D:20260825131415+01'00"
	if string(enc) != want {
		t.Errorf("wrong date string: got %q, want %q", enc, want)
	}
}
