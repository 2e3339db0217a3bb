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

// Package document assembles complete, single-page PDF documents.
//
// A [Document] describes one page showing one string of text in one of
// the built-in PDF fonts.  The corresponding PDF file is produced by
// the Write and Bytes methods; for a given Document the output is
// always byte-for-byte identical.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	pdf "seehuhn.de/go/flatpdf"
	"seehuhn.de/go/flatpdf/font/standard"
	"seehuhn.de/go/flatpdf/graphics"
)

// Errors reported by [New].
var (
	ErrFontSize = errors.New("font size must be positive and finite")
	ErrText     = errors.New("text is not valid UTF-8")
)

// Position of the text on the page.  The text is placed at a fixed
// margin; no line breaking or centering takes place.
const (
	textLeft = 72 // one inch from the left edge of the page
	textDrop = 92 // distance from the top edge down to the first baseline
)

// fontName is the name under which the font is entered into the
// resource dictionary of the page.
const fontName = pdf.Name("F1")

// Document describes a single-page PDF document before serialization.
type Document struct {
	// Text is shown on the page, as a single line.
	Text string

	// FontSize is the font size in PDF points.
	FontSize float64

	// Font is the standard font used for the text.
	Font standard.Font

	// PaperSize gives the media box of the page.
	PaperSize *pdf.Rectangle

	// Info, if non-nil, is stored in the document information
	// dictionary of the file.
	Info *Info

	// Version is the PDF version of the generated file.
	Version pdf.Version
}

// Info describes the document information dictionary.  Empty fields
// are omitted from the file.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// Options allows to override the defaults used by [New].
type Options struct {
	Font      standard.Font
	PaperSize *pdf.Rectangle
	Info      *Info
	Version   pdf.Version
}

// New creates a new single-page document showing the given text.
//
// The text may be empty, in which case the page is blank.  The font
// size must be positive and finite; otherwise [ErrFontSize] is
// returned.  If opt is nil, the text is set in Helvetica on an A4
// page, and the file uses PDF version 1.7.
func New(text string, fontSize float64, opt *Options) (*Document, error) {
	if math.IsNaN(fontSize) || math.IsInf(fontSize, 0) || fontSize <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrFontSize, fontSize)
	}
	if !utf8.ValidString(text) {
		return nil, ErrText
	}

	doc := &Document{
		Text:      text,
		FontSize:  fontSize,
		Font:      standard.Helvetica,
		PaperSize: A4,
		Version:   pdf.V1_7,
	}
	if opt != nil {
		if opt.Font != "" {
			if !opt.Font.IsValid() {
				return nil, fmt.Errorf("unknown standard font %q", opt.Font)
			}
			doc.Font = opt.Font
		}
		if opt.PaperSize != nil {
			doc.PaperSize = opt.PaperSize
		}
		if opt.Info != nil {
			doc.Info = opt.Info
		}
		if opt.Version != 0 {
			doc.Version = opt.Version
		}
	}
	return doc, nil
}

// Write serializes the document to w.
//
// Objects are emitted in ascending order of object number, so that the
// cross-reference table at the end of the file is contiguous.  The
// output depends only on the fields of doc.
func (doc *Document) Write(w io.Writer) error {
	out, err := pdf.NewWriter(w, doc.Version)
	if err != nil {
		return err
	}

	catalogRef := out.Alloc()
	pagesRef := out.Alloc()
	pageRef := out.Alloc()
	contentsRef := out.Alloc()
	fontRef := out.Alloc()
	var infoRef *pdf.Reference
	if doc.Info != nil {
		infoRef = out.Alloc()
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	_, err = out.WriteIndirect(catalog, catalogRef)
	if err != nil {
		return err
	}

	pages := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  pdf.Array{pageRef},
		"Count": pdf.Integer(1),
	}
	_, err = out.WriteIndirect(pages, pagesRef)
	if err != nil {
		return err
	}

	page := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   pagesRef,
		"MediaBox": doc.PaperSize,
		"Resources": pdf.Dict{
			"Font": pdf.Dict{
				fontName: fontRef,
			},
		},
		"Contents": contentsRef,
	}
	_, err = out.WriteIndirect(page, pageRef)
	if err != nil {
		return err
	}

	contents, err := doc.contentStream()
	if err != nil {
		return err
	}
	_, err = out.WriteIndirect(contents, contentsRef)
	if err != nil {
		return err
	}

	_, err = out.WriteIndirect(doc.Font.AsDict(), fontRef)
	if err != nil {
		return err
	}

	if doc.Info != nil {
		_, err = out.WriteIndirect(doc.Info.AsDict(), infoRef)
		if err != nil {
			return err
		}
	}

	return out.Close(catalogRef, infoRef)
}

// Bytes returns the complete PDF file as a byte slice.
func (doc *Document) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// contentStream builds the content stream object for the page.  For
// empty text no show-text operator is written, and the page stays
// blank.
func (doc *Document) contentStream() (*pdf.Stream, error) {
	buf := &bytes.Buffer{}
	g := graphics.NewWriter(buf)
	g.TextBegin()
	g.TextSetFont(fontName, doc.FontSize)
	g.TextFirstLine(textLeft, doc.PaperSize.URy-textDrop)
	g.TextShow(doc.Text)
	g.TextEnd()
	if g.Err != nil {
		return nil, g.Err
	}
	return pdf.NewStream(buf.Bytes(), nil), nil
}

// AsDict returns the document information dictionary.
func (info *Info) AsDict() pdf.Dict {
	dict := pdf.Dict{}
	for _, field := range []struct {
		key pdf.Name
		val string
	}{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Keywords", info.Keywords},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	} {
		if field.val != "" {
			dict[field.key] = pdf.TextString(field.val)
		}
	}
	return dict
}
