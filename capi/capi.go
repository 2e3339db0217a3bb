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

// Package capi exposes finished PDF documents through opaque handles.
//
// The package is the boundary layer for callers which cannot share
// Go's memory management, for example when the library is built as a
// C shared library.  A [Handle] is a plain integer: the engine keeps
// the document and its serialized bytes in an internal registry, and
// the caller never holds a pointer into the engine's memory.
//
// The lifecycle contract has two rules.  First, [Data] must only be
// used while the handle is alive: [Release] invalidates all previously
// returned byte slices.  Second, a handle must be released exactly
// once; releasing the zero handle, or a handle that was already
// released, is a safe no-op because stale handles simply miss the
// registry.
package capi

import (
	"fmt"
	"os"
	"sync"

	"seehuhn.de/go/flatpdf/document"
)

// Version number of the library.  [Version] returns this string.
const versionString = "0.1.0"

// Handle refers to a document owned by the engine.  The zero Handle is
// never valid.
type Handle uint64

// entry is the engine-owned state behind one handle.  The data slice
// is written once at creation time and never modified afterwards.
type entry struct {
	doc  *document.Document
	data []byte
}

var (
	mu      sync.RWMutex
	nextID  Handle = 1
	handles        = make(map[Handle]*entry)
)

// Create builds a single-page PDF document showing the given text, and
// returns a handle to the finished document.
//
// The document and its serialized form are created together; on error
// no handle is allocated.  The font size must be positive and finite,
// and the text must be valid UTF-8.
func Create(text string, fontSize float64) (Handle, error) {
	doc, err := document.New(text, fontSize, nil)
	if err != nil {
		return 0, err
	}
	data, err := doc.Bytes()
	if err != nil {
		return 0, err
	}

	mu.Lock()
	h := nextID
	nextID++
	handles[h] = &entry{doc: doc, data: data}
	mu.Unlock()

	return h, nil
}

// Data returns the serialized PDF file for the given handle.
//
// The returned slice is owned by the engine and must not be modified;
// it is only valid until [Release] is called for h.  For the zero
// handle, or a handle which has already been released, Data returns
// nil.
func Data(h Handle) []byte {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := handles[h]
	if !ok {
		return nil
	}
	return e.data
}

// SaveToFile writes the serialized PDF file to the given path.  An
// existing file is overwritten.  The write is a single whole-buffer
// write; on error the contents of the target file are unspecified.
func SaveToFile(h Handle, path string) error {
	mu.RLock()
	e, ok := handles[h]
	mu.RUnlock()

	if !ok {
		return fmt.Errorf("invalid handle %d", h)
	}
	return os.WriteFile(path, e.data, 0o666)
}

// Release destroys the document behind the handle, invalidating all
// byte slices previously returned by [Data] for this handle.  Calling
// Release with the zero handle or an already released handle has no
// effect.
func Release(h Handle) {
	mu.Lock()
	delete(handles, h)
	mu.Unlock()
}

// Version returns the version of the library.  The result is constant
// over the lifetime of the process.
func Version() string {
	return versionString
}
