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
	"io"
	"os"

	"github.com/lassandro/gohack/pkg/encoding"
)

// Encodes a resolved program, one 16 character word per instruction
func Encode(program []Instruction) (result []string, errs []error) {
	result = make([]string, 0, len(program))

	for _, ins := range program {
		var word string
		var err error

		switch ins := ins.(type) {
		case *AddressInstruction:
			if ins.Symbol != "" {
				errs = append(errs, &ResolverInternalError{ins.Symbol})
				continue
			}

			word, err = encoding.EncodeAddress(ins.Value)

		case *ComputeInstruction:
			word, err = encoding.EncodeCompute(ins.Dest, ins.Comp, ins.Jump)

			if mnemonicErr, ok := err.(*encoding.MnemonicError); ok {
				switch mnemonicErr.Field {
				case encoding.FIELD_DEST:
					err = &InvalidDestError{ins.Position, ins.Dest}
				case encoding.FIELD_JUMP:
					err = &InvalidJumpError{ins.Position, ins.Jump}
				default:
					err = &InvalidCompError{ins.Position, ins.Comp}
				}
			}

		case *LabelDeclaration:
			continue
		}

		if err != nil {
			errs = append(errs, err)
			continue
		}

		result = append(result, word)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return result, nil
}

// Assembles a whole source file. No words are returned unless every line
// assembled. When symtable is non-nil it receives debugging information.
func AssembleHackSource(input io.Reader, symtable *SymTable) ([]string, []error) {
	lines, err := Normalize(input)

	if err != nil {
		return nil, []error{&FileError{Err: err}}
	}

	return assemble(lines, symtable)
}

func AssembleFile(path string, symtable *SymTable) ([]string, []error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, []error{&FileError{path, err}}
	}

	defer file.Close()

	lines, err := Normalize(file)

	if err != nil {
		return nil, []error{&FileError{path, err}}
	}

	return assemble(lines, symtable)
}

func assemble(lines []Line, symtable *SymTable) ([]string, []error) {
	var program = make([]Instruction, 0, len(lines))
	var errs []error

	for _, line := range lines {
		ins, err := Classify(line)

		if err != nil {
			errs = append(errs, err)
			continue
		}

		program = append(program, ins)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	resolver := NewResolver()
	resolved, errs := resolver.Resolve(program)

	if len(errs) > 0 {
		return nil, errs
	}

	result, errs := Encode(resolved)

	if len(errs) > 0 {
		return nil, errs
	}

	if symtable != nil {
		fillSymTable(symtable, program, resolver.Symbols)
	}

	return result, nil
}

func fillSymTable(symtable *SymTable, program []Instruction, symbols *SymbolTable) {
	if symtable.Symbols == nil {
		symtable.Symbols = make(map[uint16]int64)
	}

	if symtable.Labels == nil {
		symtable.Labels = make(map[uint16][]string)
	}

	if symtable.Operands == nil {
		symtable.Operands = make(map[uint16]string)
	}

	if symtable.Values == nil {
		symtable.Values = make(map[string]uint16)
	}

	for _, kind := range []SymbolKind{SYMBOL_LABEL, SYMBOL_VARIABLE} {
		for _, name := range symbols.Names(kind) {
			symtable.Values[name], _ = symbols.Lookup(name)
		}
	}

	var addr uint16

	for _, ins := range program {
		switch ins := ins.(type) {
		case *LabelDeclaration:
			symtable.Labels[addr] = append(symtable.Labels[addr], ins.Name)
			continue

		case *AddressInstruction:
			if ins.Symbol != "" {
				symtable.Operands[addr] = ins.Symbol
			}
		}

		symtable.Symbols[addr] = ins.GetPosition().LineByte
		addr++
	}
}
