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

package standard

import (
	"testing"

	pdf "seehuhn.de/go/flatpdf"
)

func TestAll(t *testing.T) {
	if len(All) != 14 {
		t.Errorf("wrong number of standard fonts: %d", len(All))
	}
	for _, f := range All {
		if !f.IsValid() {
			t.Errorf("font %q is not valid", f)
		}
		if f.PostScriptName() != string(f) {
			t.Errorf("wrong PostScript name for %q", f)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, name := range []Font{"", "Arial", "helvetica", "Times"} {
		if name.IsValid() {
			t.Errorf("font %q should not be valid", name)
		}
	}
}

func TestClassification(t *testing.T) {
	cases := []struct {
		font       Font
		fixedPitch bool
		symbolic   bool
	}{
		{Courier, true, false},
		{CourierBoldOblique, true, false},
		{Helvetica, false, false},
		{TimesBoldItalic, false, false},
		{Symbol, false, true},
		{ZapfDingbats, false, true},
	}
	for _, test := range cases {
		if got := test.font.IsFixedPitch(); got != test.fixedPitch {
			t.Errorf("%q.IsFixedPitch() = %t", test.font, got)
		}
		if got := test.font.IsSymbolic(); got != test.symbolic {
			t.Errorf("%q.IsSymbolic() = %t", test.font, got)
		}
	}
}

func TestAsDict(t *testing.T) {
	dict := TimesRoman.AsDict()
	if dict["Type"] != pdf.Name("Font") {
		t.Errorf("wrong /Type: %v", dict["Type"])
	}
	if dict["Subtype"] != pdf.Name("Type1") {
		t.Errorf("wrong /Subtype: %v", dict["Subtype"])
	}
	if dict["BaseFont"] != pdf.Name("Times-Roman") {
		t.Errorf("wrong /BaseFont: %v", dict["BaseFont"])
	}
}
