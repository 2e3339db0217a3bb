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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-1), "-1"},
		{Integer(1234567890), "1234567890"},
		{Real(0), "0."},
		{Real(1.5), "1.5"},
		{Real(-0.25), "-0.25"},
		{Number(12), "12"},
		{Number(12.5), "12.5"},
		{Name("Type"), "/Type"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{&Reference{Number: 4, Generation: 0}, "4 0 R"},
		{(*Reference)(nil), "null"},
		{Dict(nil), "null"},
		{Dict{}, "<<\n>>"},
	}
	for _, test := range cases {
		out := AsString(test.in)
		if out != test.out {
			t.Errorf("wrong output for %v: got %q, want %q",
				test.in, out, test.out)
		}
	}
}

func TestStringFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"", "()"},
		{"hello", "(hello)"},
		{"balanced (parens)", "(balanced (parens))"},
		{")", `(\))`},
		{"(", `(\()`},
		{`back\slash`, `(back\\slash)`},
		{"line\nbreak", "(line\nbreak)"},
		{"bell\a", "(bell\\007)"},
		{"\x00\x01\x02", "<000102>"},
		{"\xfe\xff", "<feff>"},
	}
	for _, test := range cases {
		out := AsString(String(test.in))
		if out != test.out {
			t.Errorf("wrong output for %q: got %q, want %q",
				test.in, out, test.out)
		}
	}
}

func TestNameFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"", "/"},
		{"Font", "/Font"},
		{"A;Name_With-Various***Characters?", "/A;Name_With-Various***Characters?"},
		{"1.2", "/1.2"},
		{"A#B", "/A#23B"},
		{"with space", "/with#20space"},
		{"paired()", "/paired#28#29"},
		{"un\xf6de", "/un#f6de"},
	}
	for _, test := range cases {
		out := AsString(Name(test.in))
		if out != test.out {
			t.Errorf("wrong output for %q: got %q, want %q",
				test.in, out, test.out)
		}
	}
}

// TestDictFormat checks that dictionary keys are written in sorted
// order, independently of Go's map iteration order.
func TestDictFormat(t *testing.T) {
	dict := Dict{
		"Type":    Name("Test"),
		"Alpha":   Integer(1),
		"Beta":    Integer(2),
		"Skipped": nil,
	}
	want := "<<\n/Alpha 1\n/Beta 2\n/Type /Test\n>>"
	for i := 0; i < 10; i++ {
		got := AsString(dict)
		if d := cmp.Diff(want, got); d != "" {
			t.Fatalf("wrong dict output (-want +got):\n%s", d)
		}
	}
}

func TestStreamFormat(t *testing.T) {
	s := NewStream([]byte("BT ET"), Dict{"Test": Bool(true)})

	if s.Dict["Length"] != Integer(5) {
		t.Errorf("wrong /Length: %v", s.Dict["Length"])
	}

	want := "<<\n/Length 5\n/Test true\n>>\nstream\nBT ET\nendstream"
	got := AsString(s)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("wrong stream output (-want +got):\n%s", d)
	}
}
