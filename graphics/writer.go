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

// Package graphics generates PDF content streams.
//
// The [Writer] type emits the operators which make up a content
// stream.  Only the text subset of the PDF operator set is
// implemented; this is all that is needed to place strings of text on
// a page.
package graphics

import (
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/matrix"

	pdf "seehuhn.de/go/flatpdf"
)

// Writer writes a content stream to the underlying io.Writer.
//
// All errors are reported via the Err field: once an error has
// occurred, all subsequent method calls are ignored.  This allows
// operator sequences to be written without error checks after every
// call.
type Writer struct {
	Content io.Writer
	Err     error

	State

	currentObject objectType
	nesting       []pairType
}

// State describes the part of the graphics state tracked by the
// writer.
type State struct {
	TextMatrix     matrix.Matrix
	TextLineMatrix matrix.Matrix
	TextFont       pdf.Name
	TextFontSize   float64
}

// NewWriter allocates a Writer which writes a content stream to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Content:       w,
		currentObject: objPage,
	}
}

// objectType describes the graphics object the content stream is
// currently inside of (ISO 32000-2:2020, figure 21).
type objectType int

const (
	objPage objectType = iota
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objText:
		return "text"
	default:
		return "objectType(" + strconv.Itoa(int(s)) + ")"
	}
}

// pairType describes the currently open operator pairs.
type pairType int

const (
	pairTypeBT pairType = iota + 1 // BT ... ET
)

// isValid returns true if the current graphics object is one of the
// given types.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}
	if w.currentObject != ss {
		w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
		return false
	}
	return true
}

func (w *Writer) coord(x float64) string {
	return format(x)
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
