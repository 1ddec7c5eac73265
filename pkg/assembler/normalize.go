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


package assembler

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Splits source text into instruction lines, dropping comments, blank lines,
// and surrounding whitespace. Positions refer to the original text.
func Normalize(input io.Reader) ([]Line, error) {
	var lines []Line
	var reader = bufio.NewReader(input)
	var cursor = Cursor{Line: 1}

	for {
		raw, err := reader.ReadString('\n')

		if err != nil && err != io.EOF {
			return nil, err
		}

		if len(raw) == 0 && err == io.EOF {
			break
		}

		text := strings.TrimRight(raw, "\r\n")

		if i := strings.Index(text, COMMENT); i != -1 {
			text = text[:i]
		}

		trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
		column := len(text) - len(trimmed) + 1
		trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)

		if len(trimmed) > 0 {
			lines = append(lines, Line{
				Text: trimmed,
				Position: Cursor{
					Line:     cursor.Line,
					Column:   column,
					Byte:     cursor.LineByte + int64(column-1),
					Size:     int64(len(trimmed)),
					LineByte: cursor.LineByte,
				},
			})
		}

		cursor.Line++
		cursor.LineByte += int64(len(raw))

		if err == io.EOF {
			break
		}
	}

	return lines, nil
}
