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
	"errors"
	"fmt"
	"io"
	"os"
)

// Writer represents a PDF file open for writing.
//
// Objects are written using [Writer.WriteIndirect], and the file is
// completed by a call to [Writer.Close] which emits the cross-reference
// table and the trailer.  The byte offset of every indirect object is
// recorded at the moment the object's header is written, so that the
// cross-reference table always matches the emitted bytes exactly.
type Writer struct {
	// Version is the PDF version used in the file header.
	Version Version

	w       *posWriter
	xref    map[int]*xRefEntry
	nextRef int
}

// xRefEntry is one entry of the cross-reference table.  Pos is the byte
// offset of the object's header, or -1 for free entries.
type xRefEntry struct {
	Pos        int64
	Generation uint16
}

// NewWriter prepares a PDF file for writing.
//
// After the header line, a comment line containing four bytes with the
// high bit set is written, to mark the file as binary for software
// which inspects the first few bytes only.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	verString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		Version: ver,

		w:       &posWriter{w: w},
		xref:    make(map[int]*xRefEntry),
		nextRef: 1,
	}
	pdf.xref[0] = &xRefEntry{
		Pos:        -1,
		Generation: 65535,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\xE2\xE3\xCF\xD3\n", verString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Create creates the named PDF file and opens it for output.  If a
// previous file with the same name exists, it is overwritten.  After
// writing is complete, Close() must be called to write the trailer and
// to close the underlying file.
func Create(name string, ver Version) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return NewWriter(fd, ver)
}

// Alloc allocates an object number for an indirect object.  Numbers are
// handed out contiguously, starting at 1.
func (pdf *Writer) Alloc() *Reference {
	res := &Reference{
		Number:     pdf.nextRef,
		Generation: 0,
	}
	pdf.nextRef++
	return res
}

// WriteIndirect writes an object to the PDF file, as an indirect
// object.  If ref is nil, a new object number is allocated.  The
// returned reference can be used to refer to this object from other
// parts of the file.
func (pdf *Writer) WriteIndirect(obj Object, ref *Reference) (*Reference, error) {
	pos := pdf.w.pos

	if ref == nil {
		ref = pdf.Alloc()
	} else {
		_, seen := pdf.xref[ref.Number]
		if seen {
			return nil, errors.New("object already written")
		}
	}

	if obj == nil {
		// missing objects are treated as null
		pos = -1
	} else {
		_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
		if err != nil {
			return nil, err
		}
		err = obj.PDF(pdf.w)
		if err != nil {
			return nil, err
		}
		_, err = pdf.w.Write([]byte("\nendobj\n"))
		if err != nil {
			return nil, err
		}
	}

	pdf.xref[ref.Number] = &xRefEntry{Pos: pos, Generation: ref.Generation}

	return ref, nil
}

// Close writes the cross-reference table and the trailer, and closes
// the underlying io.Writer if it has a Close method.  The catalog
// reference is required; info may be nil.
func (pdf *Writer) Close(catalog *Reference, info *Reference) error {
	if catalog == nil {
		return errors.New("missing /Catalog")
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if info != nil {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	if closer, ok := pdf.w.w.(io.Closer); ok {
		return closer.Close()
	}

	// Since we couldn't close the writer, make sure we don't
	// accidentally write beyond the end of file.
	pdf.w = nil

	return nil
}

// writeXRefTable writes the classic cross-reference table, followed by
// the trailer dictionary.  Every entry is exactly 20 bytes long.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for i := 0; i < pdf.nextRef; i++ {
		entry := pdf.xref[i]
		if entry != nil && entry.Pos >= 0 {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n \n",
				entry.Pos, entry.Generation)
		} else {
			// free object
			_, err = pdf.w.Write([]byte("0000000000 65535 f \n"))
		}
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

// Pos returns the number of bytes written to the file so far.
func (pdf *Writer) Pos() int64 {
	return pdf.w.pos
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
