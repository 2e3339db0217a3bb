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

// Package standard provides access to the 14 standard PDF fonts.
//
// These fonts are guaranteed to be available in every conforming PDF
// viewer and do not require font data to be embedded in the file.
package standard

import (
	"strings"

	pdf "seehuhn.de/go/flatpdf"
)

// Font identifies the individual fonts.  The value of a Font is its
// PostScript name.
type Font string

// Constants for the 14 standard PDF fonts.
const (
	Courier              Font = "Courier"
	CourierBold          Font = "Courier-Bold"
	CourierBoldOblique   Font = "Courier-BoldOblique"
	CourierOblique       Font = "Courier-Oblique"
	Helvetica            Font = "Helvetica"
	HelveticaBold        Font = "Helvetica-Bold"
	HelveticaBoldOblique Font = "Helvetica-BoldOblique"
	HelveticaOblique     Font = "Helvetica-Oblique"
	TimesRoman           Font = "Times-Roman"
	TimesBold            Font = "Times-Bold"
	TimesBoldItalic      Font = "Times-BoldItalic"
	TimesItalic          Font = "Times-Italic"
	Symbol               Font = "Symbol"
	ZapfDingbats         Font = "ZapfDingbats"
)

// All lists the 14 standard PDF fonts.
var All = []Font{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

// IsValid reports whether f is one of the 14 standard fonts.
func (f Font) IsValid() bool {
	for _, g := range All {
		if f == g {
			return true
		}
	}
	return false
}

// PostScriptName returns the PostScript name of the font.
func (f Font) PostScriptName() string {
	return string(f)
}

// IsFixedPitch reports whether the font is a fixed-width font.
func (f Font) IsFixedPitch() bool {
	return strings.HasPrefix(string(f), "Courier")
}

// IsSymbolic reports whether the font uses a built-in, non-standard
// character encoding.
func (f Font) IsSymbolic() bool {
	return f == Symbol || f == ZapfDingbats
}

// AsDict returns the font dictionary which selects the font in a PDF
// file.  Since the standard fonts are built into the viewer, the
// dictionary contains no font data.
func (f Font) AsDict() pdf.Dict {
	return pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f),
	}
}
