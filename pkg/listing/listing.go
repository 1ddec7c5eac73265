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


package listing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/encoding"
)

// Listing renders a binary program as annotated assembly. Source and SymTable
// are optional; without them only the decoded instructions are printed.
type Listing struct {
	Source   io.ReadSeeker
	SymTable *assembler.SymTable
	Color    bool
}

func (l *Listing) style(code, s string) string {
	if !l.Color {
		return s
	}

	return "\033[" + code + "m" + s + "\033[0m"
}

func (l *Listing) Print(w io.Writer, words []uint16) error {
	out := bufio.NewWriter(w)

	for i, value := range words {
		addr := uint16(i)

		if l.SymTable != nil {
			for _, label := range l.SymTable.Labels[addr] {
				fmt.Fprintf(out, "%s\n", l.style("1;34", "("+label+")"))
			}
		}

		word, err := encoding.DecodeWord(value)

		if err != nil {
			return fmt.Errorf("[%04x] %w", addr, err)
		}

		mnemonic := word.String()
		var comment []string

		if l.SymTable != nil {
			if symbol, exists := l.SymTable.Operands[addr]; exists && word.Address {
				mnemonic = "@" + symbol
				comment = append(comment, fmt.Sprintf("%d", word.Value))
			}
		}

		if source, ok := l.sourceLine(addr); ok && source != mnemonic {
			comment = append(comment, source)
		}

		line := fmt.Sprintf(
			"%s %s    %-20s",
			l.style("1", fmt.Sprintf("[%04x]", addr)),
			encoding.FormatWord(value),
			mnemonic,
		)

		if len(comment) > 0 {
			line += l.style("1;30", "// "+strings.Join(comment, " | "))
		}

		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}

	return out.Flush()
}

// Reads the source line recorded for addr
func (l *Listing) sourceLine(addr uint16) (string, bool) {
	if l.Source == nil || l.SymTable == nil {
		return "", false
	}

	offset, exists := l.SymTable.Symbols[addr]

	if !exists {
		return "", false
	}

	if _, err := l.Source.Seek(offset, io.SeekStart); err != nil {
		return "", false
	}

	line, err := bufio.NewReader(l.Source).ReadString('\n')

	if err != nil && err != io.EOF {
		return "", false
	}

	return strings.TrimSpace(line), true
}
