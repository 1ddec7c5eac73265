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
	"strings"

	"github.com/lassandro/gohack/pkg/encoding"
)

// Determines the shape of a cleaned line and decomposes it. Every mnemonic of
// a returned *ComputeInstruction is known to the encoder.
func Classify(line Line) (Instruction, error) {
	text := line.Text

	if len(text) == 0 {
		return nil, &UnknownInstructionError{line.Position, text}
	}

	switch {
	case text[0] == LABEL_START || text[len(text)-1] == LABEL_END:
		return classifyLabel(line)
	case text[0] == ADDRESS_START:
		return classifyAddress(line)
	}

	return classifyCompute(line)
}

func classifyLabel(line Line) (Instruction, error) {
	text := line.Text

	if len(text) < 3 || text[0] != LABEL_START || text[len(text)-1] != LABEL_END {
		return nil, &UnknownInstructionError{line.Position, text}
	}

	name, position := field(line, 1, len(text)-1)

	if !isSymbol(name) {
		return nil, &InvalidSymbolError{position, name}
	}

	return &LabelDeclaration{line.Position, name}, nil
}

func classifyAddress(line Line) (Instruction, error) {
	text := line.Text

	if len(text) < 2 {
		return nil, &UnknownInstructionError{line.Position, text}
	}

	target, position := field(line, 1, len(text))

	if isDigit(target[0]) {
		value, err := encoding.DecodeInt(target)

		if _, ok := err.(*encoding.OversizedAddressError); ok {
			return nil, &OversizedLiteralError{
				position, encoding.MAX_ADDRESS, target,
			}
		} else if err != nil {
			return nil, &InvalidLiteralError{position}
		}

		return &AddressInstruction{Position: line.Position, Value: value}, nil
	}

	if !isSymbol(target) {
		return nil, &InvalidSymbolError{position, target}
	}

	return &AddressInstruction{Position: line.Position, Symbol: target}, nil
}

func classifyCompute(line Line) (Instruction, error) {
	var ins = ComputeInstruction{Position: line.Position}
	var text = line.Text

	compStart, compEnd := 0, len(text)

	if i := strings.Index(text, DEST_SEPARATOR); i != -1 {
		dest, position := field(line, 0, i)

		if _, exists := encoding.DestTable[dest]; !exists {
			return nil, &InvalidDestError{position, dest}
		}

		ins.Dest = dest
		compStart = i + 1
	}

	if i := strings.Index(text[compStart:], JUMP_SEPARATOR); i != -1 {
		compEnd = compStart + i
		jump, position := field(line, compEnd+1, len(text))

		if _, exists := encoding.JumpTable[jump]; !exists {
			return nil, &InvalidJumpError{position, jump}
		}

		ins.Jump = jump
	}

	comp, position := field(line, compStart, compEnd)

	if _, exists := encoding.CompTable[comp]; !exists {
		return nil, &InvalidCompError{position, comp}
	}

	ins.Comp = comp

	return &ins, nil
}

// Returns the trimmed text of line.Text[start:end] and its position
func field(line Line, start, end int) (string, Cursor) {
	raw := line.Text[start:end]
	value := strings.TrimLeft(raw, " \t")
	start += len(raw) - len(value)
	value = strings.TrimRight(value, " \t")

	position := line.Position
	position.Column += start
	position.Byte += int64(start)
	position.Size = int64(len(value))

	if position.Size == 0 {
		position.Size = 1
	}

	return value, position
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Symbols are letters, digits, and _ . $ : not beginning with a digit
func isSymbol(s string) bool {
	if len(s) == 0 || isDigit(s[0]) {
		return false
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		case c == '_', c == '.', c == '$', c == ':':
		default:
			return false
		}
	}

	return true
}
