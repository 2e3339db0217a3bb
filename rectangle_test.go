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

import "testing"

func TestRectangleFormat(t *testing.T) {
	cases := []struct {
		in  Rectangle
		out string
	}{
		{Rectangle{}, "[0 0 0 0]"},
		{Rectangle{URx: 595, URy: 842}, "[0 0 595 842]"},
		{Rectangle{LLx: 1.25, LLy: 2.5, URx: 3.125, URy: 4}, "[1.25 2.5 3.13 4]"},
	}
	for _, test := range cases {
		out := AsString(&test.in)
		if out != test.out {
			t.Errorf("wrong output for %v: got %q, want %q",
				test.in, out, test.out)
		}
	}
}

func TestRectangleGeometry(t *testing.T) {
	r := &Rectangle{LLx: 10, LLy: 20, URx: 110, URy: 170}
	if w := r.XWidth(); w != 100 {
		t.Errorf("wrong width %g", w)
	}
	if h := r.XHeight(); h != 150 {
		t.Errorf("wrong height %g", h)
	}
	if r.IsZero() {
		t.Error("non-zero rectangle reported as zero")
	}
	if !(&Rectangle{}).IsZero() {
		t.Error("zero rectangle not reported as zero")
	}

	other := &Rectangle{LLx: 10.0001, LLy: 20, URx: 110, URy: 169.9999}
	if !r.NearlyEqual(other, 0.001) {
		t.Error("NearlyEqual failed for close rectangles")
	}
	if r.NearlyEqual(other, 0.00001) {
		t.Error("NearlyEqual succeeded for distant rectangles")
	}

	q := r.AsRect()
	if q.LLx != r.LLx || q.LLy != r.LLy || q.URx != r.URx || q.URy != r.URy {
		t.Errorf("wrong rect conversion: %v", q)
	}
}
