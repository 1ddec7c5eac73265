// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.


package assembler_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lassandro/gohack/pkg/assembler"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Want  []string
	}{
		{
			Name:  "Basic",
			Input: "@1\nD=M+1\n@2\n",
			Want:  []string{"@1", "D=M+1", "@2"},
		},
		{
			Name:  "Whitespace",
			Input: "  @1   \n\n\t\tD=M+1\n   \n@2",
			Want:  []string{"@1", "D=M+1", "@2"},
		},
		{
			Name:  "Comments",
			Input: "// header\n@1 // one\nD=M+1//inline\n  // indented\n@2",
			Want:  []string{"@1", "D=M+1", "@2"},
		},
		{
			Name:  "CRLF",
			Input: "@1\r\nD=M+1\r\n\r\n@2\r\n",
			Want:  []string{"@1", "D=M+1", "@2"},
		},
		{
			Name:  "Empty",
			Input: "",
			Want:  nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			lines, err := assembler.Normalize(strings.NewReader(test.Input))

			if err != nil {
				t.Fatal(err)
			}

			var have []string
			for _, line := range lines {
				have = append(have, line.Text)
			}

			if !reflect.DeepEqual(have, test.Want) {
				t.Fatalf("want:%q\nhave:%q", test.Want, have)
			}
		})
	}
}

func TestNormalizePosition(t *testing.T) {
	input := "// header\r\n\r\n   D=M // load\n\t@2"

	lines, err := assembler.Normalize(strings.NewReader(input))

	if err != nil {
		t.Fatal(err)
	}

	want := []assembler.Cursor{
		{Line: 3, Column: 4, Byte: 16, Size: 3, LineByte: 13},
		{Line: 4, Column: 2, Byte: 29, Size: 2, LineByte: 28},
	}

	if len(lines) != len(want) {
		t.Fatalf("Line count mismatch\nwant:%d\nhave:%d", len(want), len(lines))
	}

	for i, line := range lines {
		if line.Position != want[i] {
			t.Errorf(
				"Position mismatch (%q)\nwant:%+v\nhave:%+v",
				line.Text,
				want[i],
				line.Position,
			)
		}

		if got := input[line.Position.Byte : line.Position.Byte+line.Position.Size]; got != line.Text {
			t.Errorf("Byte offset does not point at %q: %q", line.Text, got)
		}
	}
}
