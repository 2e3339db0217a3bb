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

// Package pdf implements the PDF object model and the low-level file
// writer used to assemble complete PDF documents.
//
// The package provides the native PDF object types (booleans, numbers,
// strings, names, arrays, dictionaries, streams and references to
// indirect objects), each of which knows how to write its own PDF file
// representation.  A [Writer] emits indirect objects one at a time,
// records the byte offset of every object, and on Close writes the
// cross-reference table and the trailer which bind the objects into a
// complete file.
//
// Higher-level layers live in separate packages:
// seehuhn.de/go/flatpdf/document assembles single-page documents, and
// seehuhn.de/go/flatpdf/capi exposes finished documents to foreign
// callers through opaque handles.
package pdf
