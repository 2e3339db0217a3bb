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
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Rectangle represents a PDF rectangle, given by the coordinates of two
// diagonally opposite corners.  All coordinates are in PDF default user
// space units (1/72 inch).
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

// XHeight returns the height of the rectangle.
func (r *Rectangle) XHeight() float64 {
	return r.URy - r.LLy
}

// XWidth returns the width of the rectangle.
func (r *Rectangle) XWidth() float64 {
	return r.URx - r.LLx
}

// IsZero is true if the rectangle is the zero rectangle.
func (r Rectangle) IsZero() bool {
	return r.LLx == 0 && r.LLy == 0 && r.URx == 0 && r.URy == 0
}

// NearlyEqual reports whether the corner coordinates of two rectangles
// differ by less than eps.
func (r *Rectangle) NearlyEqual(other *Rectangle, eps float64) bool {
	return (math.Abs(r.LLx-other.LLx) < eps &&
		math.Abs(r.LLy-other.LLy) < eps &&
		math.Abs(r.URx-other.URx) < eps &&
		math.Abs(r.URy-other.URy) < eps)
}

// AsRect converts the rectangle to a rect.Rect.
func (r *Rectangle) AsRect() rect.Rect {
	return rect.Rect{
		LLx: r.LLx,
		LLy: r.LLy,
		URx: r.URx,
		URy: r.URy,
	}
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.LLx, r.LLy, r.URx, r.URy)
}

// PDF implements the [Object] interface.
func (r *Rectangle) PDF(w io.Writer) error {
	res := Array{}
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		x = math.Round(100*x) / 100
		res = append(res, Number(x))
	}
	return res.PDF(w)
}
