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

package graphics

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	pdf "seehuhn.de/go/flatpdf"
)

// This file implements the text-related PDF operators used for simple
// text placement.  The operators are defined in tables 105 and 107 of
// ISO 32000-2:2020.

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextBegin() {
	if !w.isValid("TextBegin", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	w.State.TextMatrix = matrix.Identity
	w.State.TextLineMatrix = matrix.Identity

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextBegin")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.  The name must refer to an
// entry in the /Font resource dictionary of the page.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name pdf.Name, size float64) {
	if w.Err != nil {
		return
	}

	w.State.TextFont = name
	w.State.TextFontSize = size

	err := name.PDF(w.Content)
	if err != nil {
		w.Err = err
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", w.coord(size), "Tf")
}

// TextFirstLine moves the text position to the given coordinates,
// relative to the origin of the previous line.  At the start of a text
// object this sets the absolute position of the first line.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(x, y float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	w.TextLineMatrix = matrix.Translate(x, y).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "Td")
}

// TextSecondLine moves the text position to the given coordinates,
// relative to the start of the current line, and sets the leading to
// -dy.
//
// This implements the PDF graphics operator "TD".
func (w *Writer) TextSecondLine(dx, dy float64) {
	if !w.isValid("TextSecondLine", objText) {
		return
	}

	w.TextLineMatrix = matrix.Translate(dx, dy).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "TD")
}

// TextNextLine moves the text position to the start of the next line,
// using the leading set by a previous call to [Writer.TextSecondLine].
//
// This implements the PDF graphics operator "T*".
func (w *Writer) TextNextLine() {
	if !w.isValid("TextNextLine", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, "T*")
}

// TextShow draws a string of text at the current text position.  The
// string is written using the standard PDF string escaping rules.  An
// empty string emits no operator at all.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s string) {
	if !w.isValid("TextShow", objText) {
		return
	}
	if s == "" {
		return
	}

	err := pdf.String(s).PDF(w.Content)
	if err != nil {
		w.Err = err
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}
