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


package encoding_test

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/lassandro/gohack/pkg/encoding"
)

func TestEncodeAddress(t *testing.T) {
	tests := []struct {
		Value uint16
		Want  string
	}{
		{0, "0000000000000000"},
		{2, "0000000000000010"},
		{42, "0000000000101010"},
		{16384, "0100000000000000"},
		{32767, "0111111111111111"},
	}

	for _, test := range tests {
		have, err := encoding.EncodeAddress(test.Value)

		if err != nil {
			t.Fatal(err)
		}

		if have != test.Want {
			t.Errorf(
				"Address encoding mismatch\nwant:%s (%d)\nhave:%s",
				test.Want,
				test.Value,
				have,
			)
		}
	}

	if _, err := encoding.EncodeAddress(32768); err == nil {
		t.Fatal("Expected oversized address error")
	} else if _, ok := err.(*encoding.OversizedAddressError); !ok {
		t.Fatalf("Unexpected error type\nwant:%T\nhave:%T",
			&encoding.OversizedAddressError{}, err)
	}
}

func TestEncodeCompute(t *testing.T) {
	tests := []struct {
		Dest string
		Comp string
		Jump string
		Want string
	}{
		{"D", "M+1", "", "111" + "1110111" + "010" + "000"},
		{"MD", "D+1", "", "1110011111011000"},
		{"MD", "A-1", "JGE", "1110110010011011"},
		{"", "0", "JMP", "1110101010000111"},
		{"AMD", "D|M", "JLE", "1111010101111110"},
		{"", "D", "", "1110001100000000"},
	}

	for _, test := range tests {
		have, err := encoding.EncodeCompute(test.Dest, test.Comp, test.Jump)

		if err != nil {
			t.Fatal(err)
		}

		if have != test.Want {
			t.Errorf(
				"Compute encoding mismatch\nwant:%s (%s=%s;%s)\nhave:%s",
				test.Want,
				test.Dest,
				test.Comp,
				test.Jump,
				have,
			)
		}
	}
}

func TestEncodeEveryComp(t *testing.T) {
	for comp, code := range encoding.CompTable {
		have, err := encoding.EncodeCompute("", comp, "")

		if err != nil {
			t.Fatal(err)
		}

		bits := strconv.FormatUint(uint64(code)|1<<7, 2)[1:]
		want := "111" + bits + "000000"

		if len(have) != encoding.WORD_BITS || have != want {
			t.Errorf("Comp %q\nwant:%s\nhave:%s", comp, want, have)
		}
	}
}

func TestEncodeUnknownMnemonic(t *testing.T) {
	tests := []struct {
		Dest  string
		Comp  string
		Jump  string
		Field encoding.Field
	}{
		{"", "D+D", "", encoding.FIELD_COMP},
		{"DM", "D", "", encoding.FIELD_DEST},
		{"", "D", "JZ", encoding.FIELD_JUMP},
	}

	for _, test := range tests {
		_, err := encoding.EncodeCompute(test.Dest, test.Comp, test.Jump)

		mnemonicErr, ok := err.(*encoding.MnemonicError)

		if !ok {
			t.Fatalf("Unexpected error type\nwant:%T\nhave:%T",
				&encoding.MnemonicError{}, err)
		}

		if mnemonicErr.Field != test.Field {
			t.Errorf("Field mismatch\nwant:%s\nhave:%s",
				test.Field, mnemonicErr.Field)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	dests := []string{""}
	jumps := []string{""}

	for dest := range encoding.DestTable {
		dests = append(dests, dest)
	}

	for jump := range encoding.JumpTable {
		jumps = append(jumps, jump)
	}

	for comp := range encoding.CompTable {
		for _, dest := range dests {
			for _, jump := range jumps {
				bits, err := encoding.EncodeCompute(dest, comp, jump)

				if err != nil {
					t.Fatal(err)
				}

				have, err := encoding.Decode(bits)

				if err != nil {
					t.Fatal(err)
				}

				want := encoding.Word{Dest: dest, Comp: comp, Jump: jump}

				if !reflect.DeepEqual(have, want) {
					t.Fatalf("Round trip mismatch\nwant:%+v\nhave:%+v",
						want, have)
				}
			}
		}
	}

	for _, value := range []uint16{0, 1, 16, 1234, 32767} {
		bits, err := encoding.EncodeAddress(value)

		if err != nil {
			t.Fatal(err)
		}

		have, err := encoding.Decode(bits)

		if err != nil {
			t.Fatal(err)
		}

		if !have.Address || have.Value != value {
			t.Fatalf("Round trip mismatch\nwant:@%d\nhave:%s", value, have)
		}
	}
}

func TestWordString(t *testing.T) {
	tests := map[string]encoding.Word{
		"@42":        {Address: true, Value: 42},
		"D=M+1":      {Dest: "D", Comp: "M+1"},
		"0;JMP":      {Comp: "0", Jump: "JMP"},
		"AM=D|A;JNE": {Dest: "AM", Comp: "D|A", Jump: "JNE"},
		"D":          {Comp: "D"},
	}

	for want, word := range tests {
		if have := word.String(); have != want {
			t.Errorf("want:%s\nhave:%s", want, have)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"111",
		"00000000000000002",
		"000000000000000a",
		"1010101010101010",
		"1111111111111111",
	}

	for _, input := range inputs {
		if _, err := encoding.Decode(input); err == nil {
			t.Errorf("Expected error decoding %q", input)
		}
	}
}

func TestDecodeInt(t *testing.T) {
	success := map[string]uint16{
		"0":     0,
		"007":   7,
		"16384": 16384,
		"32767": 32767,
	}

	for input, want := range success {
		have, err := encoding.DecodeInt(input)

		if err != nil {
			t.Fatal(err)
		}

		if have != want {
			t.Errorf("DecodeInt(%q)\nwant:%d\nhave:%d", input, want, have)
		}
	}

	for _, input := range []string{"32768", "65536", "99999999999"} {
		_, err := encoding.DecodeInt(input)

		if _, ok := err.(*encoding.OversizedAddressError); !ok {
			t.Errorf("DecodeInt(%q)\nwant:%T\nhave:%T", input,
				&encoding.OversizedAddressError{}, err)
		}
	}

	for _, input := range []string{"", "-1", "+1", "1x", "0x10", "1_000"} {
		if _, err := encoding.DecodeInt(input); err == nil {
			t.Errorf("DecodeInt(%q) expected error", input)
		}
	}
}

func TestFormatWord(t *testing.T) {
	for _, value := range []uint16{0, 1, 0x8000, 0xFFFF, 0b1110_1010_1000_0111} {
		s := encoding.FormatWord(value)

		if len(s) != encoding.WORD_BITS {
			t.Fatalf("Invalid word length %d", len(s))
		}

		have, err := encoding.ParseWord(s)

		if err != nil {
			t.Fatal(err)
		}

		if have != value {
			t.Errorf("want:%#04x\nhave:%#04x", value, have)
		}
	}
}

func TestReadWords(t *testing.T) {
	input := "0000000000101010\n1110101010000111\r\n\n"

	have, err := encoding.ReadWords(strings.NewReader(input))

	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{42, 0b1110_1010_1000_0111}

	if !reflect.DeepEqual(have, want) {
		t.Fatalf("want:%v\nhave:%v", want, have)
	}

	if _, err := encoding.ReadWords(strings.NewReader("0101\n")); err == nil {
		t.Fatal("Expected invalid word error")
	}
}
