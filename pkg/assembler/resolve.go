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
	"github.com/golang/glog"

	"github.com/lassandro/gohack/pkg/encoding"
)

// Resolver replaces every symbol of a classified program with its value. Both
// passes must see the whole program: labels may be used before they are
// declared.
type Resolver struct {
	Symbols *SymbolTable
}

func NewResolver() *Resolver {
	return &Resolver{Symbols: NewSymbolTable()}
}

// Returns the program without label declarations and with every address
// operand numeric.
func (r *Resolver) Resolve(program []Instruction) ([]Instruction, []error) {
	if errs := r.collectLabels(program); len(errs) > 0 {
		return nil, errs
	}

	return r.assignVariables(program)
}

// Pass 1: bind each label to the index of the next real instruction
func (r *Resolver) collectLabels(program []Instruction) (errs []error) {
	var counter int

	for _, ins := range program {
		label, ok := ins.(*LabelDeclaration)

		if !ok {
			counter++

			if counter > PROGRAM_SIZE {
				return append(errs, &OversizedBinaryError{})
			}

			continue
		}

		if counter > int(encoding.MAX_ADDRESS) {
			return append(errs, &OversizedBinaryError{})
		}

		if !r.Symbols.AddLabel(label.Name, uint16(counter)) {
			errs = append(errs, &RedeclaredLabelError{label.Position, label.Name})
			continue
		}

		glog.V(2).Infof("label %s = %d", label.Name, counter)
	}

	return errs
}

// Pass 2: emit real instructions, allocating addresses for new variables in
// order of first use
func (r *Resolver) assignVariables(program []Instruction) (resolved []Instruction, errs []error) {
	resolved = make([]Instruction, 0, len(program))

	for _, ins := range program {
		switch ins := ins.(type) {
		case *LabelDeclaration:
			continue

		case *AddressInstruction:
			if ins.Symbol == "" {
				resolved = append(resolved, ins)
				continue
			}

			value, created, err := r.Symbols.AddVariable(ins.Symbol)

			if err != nil {
				errs = append(errs, &OversizedMemoryError{ins.Position, ins.Symbol})
				continue
			}

			if created {
				glog.V(2).Infof("variable %s = %d", ins.Symbol, value)
			}

			resolved = append(resolved, &AddressInstruction{
				Position: ins.Position,
				Value:    value,
			})

		default:
			resolved = append(resolved, ins)
		}
	}

	if glog.V(1) {
		glog.Infof(
			"resolved %d instructions, %d labels, %d variables",
			len(resolved),
			len(r.Symbols.Names(SYMBOL_LABEL)),
			len(r.Symbols.Names(SYMBOL_VARIABLE)),
		)
	}

	return resolved, errs
}
