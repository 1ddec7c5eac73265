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
	"sort"

	"github.com/lassandro/gohack/pkg/encoding"
)

type symbol struct {
	Value uint16
	Kind  SymbolKind
	Order int
}

// SymbolTable maps symbol names to values for a single assembly run. A value
// is never overwritten once assigned.
type SymbolTable struct {
	symbols     map[string]symbol
	nextAddress uint16
	order       int
}

// Returns a table seeded with the predefined register and I/O symbols
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		symbols:     make(map[string]symbol, len(predefinedSymbols)),
		nextAddress: VARIABLE_BASE,
	}

	for name, value := range predefinedSymbols {
		st.symbols[name] = symbol{value, SYMBOL_PREDEFINED, 0}
	}

	return st
}

func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	sym, exists := st.symbols[name]
	return sym.Value, exists
}

func (st *SymbolTable) Kind(name string) SymbolKind {
	return st.symbols[name].Kind
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Address the next new variable will receive
func (st *SymbolTable) NextAddress() uint16 {
	return st.nextAddress
}

// Binds name to addr unless name is already present. Reports whether the
// binding was made.
func (st *SymbolTable) AddLabel(name string, addr uint16) bool {
	if _, exists := st.symbols[name]; exists {
		return false
	}

	st.order++
	st.symbols[name] = symbol{addr, SYMBOL_LABEL, st.order}

	return true
}

// Returns the value of name, allocating the next free variable address if
// name is unknown. Reports whether a new address was allocated.
func (st *SymbolTable) AddVariable(name string) (uint16, bool, error) {
	if sym, exists := st.symbols[name]; exists {
		return sym.Value, false, nil
	}

	if st.nextAddress > encoding.MAX_ADDRESS {
		return 0, false, &encoding.OversizedAddressError{Value: st.nextAddress}
	}

	value := st.nextAddress
	st.nextAddress++
	st.order++
	st.symbols[name] = symbol{value, SYMBOL_VARIABLE, st.order}

	return value, true, nil
}

// Names of the given kind in the order they were added
func (st *SymbolTable) Names(kind SymbolKind) []string {
	var names []string

	for name, sym := range st.symbols {
		if sym.Kind == kind {
			names = append(names, name)
		}
	}

	sort.Slice(names, func(i, j int) bool {
		a, b := st.symbols[names[i]], st.symbols[names[j]]

		if a.Order != b.Order {
			return a.Order < b.Order
		}

		return names[i] < names[j]
	})

	return names
}

// Snapshot of every symbol and its value
func (st *SymbolTable) Map() map[string]uint16 {
	result := make(map[string]uint16, len(st.symbols))

	for name, sym := range st.symbols {
		result[name] = sym.Value
	}

	return result
}
