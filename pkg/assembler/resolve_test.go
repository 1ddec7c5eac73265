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

func classify(t *testing.T, source string) []assembler.Instruction {
	t.Helper()

	lines, err := assembler.Normalize(strings.NewReader(source))

	if err != nil {
		t.Fatal(err)
	}

	program := make([]assembler.Instruction, 0, len(lines))

	for _, line := range lines {
		ins, err := assembler.Classify(line)

		if err != nil {
			t.Fatal(err)
		}

		program = append(program, ins)
	}

	return program
}

func values(t *testing.T, program []assembler.Instruction) []int {
	t.Helper()

	var result []int

	for _, ins := range program {
		switch ins := ins.(type) {
		case *assembler.AddressInstruction:
			if ins.Symbol != "" {
				t.Fatalf("Unresolved symbol %s", ins.Symbol)
			}
			result = append(result, int(ins.Value))
		case *assembler.ComputeInstruction:
			result = append(result, -1)
		default:
			t.Fatalf("Unexpected %T in resolved program", ins)
		}
	}

	return result
}

func TestResolveLabelValue(t *testing.T) {
	r := assembler.NewResolver()
	program := classify(t, "@1\n@2\n@3\n(HERE)\n@HERE\n(THERE)\n(ALSO)\nD;JGT\n@THERE")

	resolved, errs := r.Resolve(program)

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	for name, want := range map[string]uint16{"HERE": 3, "THERE": 4, "ALSO": 4} {
		if have, _ := r.Symbols.Lookup(name); have != want {
			t.Errorf("%s\nwant:%d\nhave:%d", name, want, have)
		}
	}

	if have, want := values(t, resolved), []int{1, 2, 3, 3, -1, 4}; !reflect.DeepEqual(have, want) {
		t.Fatalf("want:%v\nhave:%v", want, have)
	}
}

func TestResolveVariables(t *testing.T) {
	r := assembler.NewResolver()
	program := classify(t, "@X\nM=1\n@Y\n@LOOP\n(LOOP)\n@X\n@R3\n@Z")

	resolved, errs := r.Resolve(program)

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	if have, want := values(t, resolved), []int{16, -1, 17, 4, 16, 3, 18}; !reflect.DeepEqual(have, want) {
		t.Fatalf("want:%v\nhave:%v", want, have)
	}

	if kind := r.Symbols.Kind("LOOP"); kind != assembler.SYMBOL_LABEL {
		t.Errorf("LOOP kind\nwant:%d\nhave:%d", assembler.SYMBOL_LABEL, kind)
	}

	if names := r.Symbols.Names(assembler.SYMBOL_VARIABLE); !reflect.DeepEqual(names, []string{"X", "Y", "Z"}) {
		t.Errorf("Variables\nwant:[X Y Z]\nhave:%v", names)
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := assembler.NewResolver()
	program := classify(t, "@i\nM=0\n(LOOP)\n@i\nM=M+1\n@LOOP\n0;JMP")

	resolved, errs := r.Resolve(program)

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	before := r.Symbols.Map()
	next := r.Symbols.NextAddress()

	again, errs := r.Resolve(resolved)

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	if !reflect.DeepEqual(r.Symbols.Map(), before) {
		t.Fatalf("Symbol table changed\nbefore:%v\nafter:%v", before, r.Symbols.Map())
	}

	if r.Symbols.NextAddress() != next {
		t.Fatalf("Next address changed\nwant:%d\nhave:%d", next, r.Symbols.NextAddress())
	}

	if !reflect.DeepEqual(values(t, again), values(t, resolved)) {
		t.Fatalf("Program changed\nwant:%v\nhave:%v", values(t, resolved), values(t, again))
	}
}

func TestResolveRedeclared(t *testing.T) {
	r := assembler.NewResolver()
	program := classify(t, "(A_LABEL)\n@1\n(A_LABEL)\n@2\n(R5)")

	_, errs := r.Resolve(program)

	if len(errs) != 2 {
		t.Fatalf("Error count\nwant:2\nhave:%d", len(errs))
	}

	for _, err := range errs {
		if _, ok := err.(*assembler.RedeclaredLabelError); !ok {
			t.Errorf("want:%T\nhave:%T", &assembler.RedeclaredLabelError{}, err)
		}
	}

	if value, _ := r.Symbols.Lookup("A_LABEL"); value != 0 {
		t.Errorf("First declaration overwritten\nwant:0\nhave:%d", value)
	}
}

func TestEncodeUnresolved(t *testing.T) {
	_, errs := assembler.Encode([]assembler.Instruction{
		&assembler.AddressInstruction{Value: 1},
		&assembler.AddressInstruction{Symbol: "ghost"},
	})

	if len(errs) != 1 {
		t.Fatalf("Error count\nwant:1\nhave:%d", len(errs))
	}

	if _, ok := errs[0].(*assembler.ResolverInternalError); !ok {
		t.Fatalf("want:%T\nhave:%T", &assembler.ResolverInternalError{}, errs[0])
	}
}

func TestEncodeOrder(t *testing.T) {
	result, errs := assembler.Encode([]assembler.Instruction{
		&assembler.AddressInstruction{Value: 2},
		&assembler.ComputeInstruction{Dest: "D", Comp: "A"},
		&assembler.AddressInstruction{Value: 42},
	})

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	want := []string{
		"0000000000000010",
		"1110110000010000",
		"0000000000101010",
	}

	if !reflect.DeepEqual(result, want) {
		t.Fatalf("want:%v\nhave:%v", want, result)
	}
}
