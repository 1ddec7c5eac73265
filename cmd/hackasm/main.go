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


package main

import (
	"bufio"
	"encoding/gob"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/term"
)

var debugvar bool
var symbolsvar bool
var outvar string

var color bool
var status int

const usage = "hackasm [--debug] [--symbols] [-o outfile] filename.asm"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	color = term.IsTerminal(int(os.Stderr.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "hackasm [flags] filename.asm",
	Short: "Assembles Hack assembly into Hack binary text",
	Long: `Hackasm translates a single Hack assembly file into the text form of
Hack machine code: one line of sixteen '0' and '1' characters per
instruction. Labels and variables are resolved in two passes, variables
being allocated from address 16 in order of first use.

Nothing is written unless the whole file assembles.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		status = hackasm(args)
	},
}

func init() {
	rootCmd.Flags().BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'"+assembler.DEBUG_EXT+"'",
	)
	rootCmd.Flags().BoolVar(
		&symbolsvar, "symbols", false,
		"Prints the resolved labels and variables to stderr",
	)
	rootCmd.Flags().StringVarP(
		&outvar, "out", "o", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func bold(s string) string {
	if !color {
		return s
	}

	return "\033[1m" + s + "\033[0m"
}

func red(s string) string {
	if !color {
		return s
	}

	return "\033[31m" + s + "\033[0m"
}

// Prints err followed by the offending source line, underlined
func reportError(input io.ReadSeeker, err error) {
	tokenErr, ok := err.(assembler.TokenError)

	if !ok {
		log.Println(err)
		return
	}

	cursor := tokenErr.GetPosition()

	if _, seekErr := input.Seek(cursor.LineByte, io.SeekStart); seekErr != nil {
		log.Println(err)
		return
	}

	line, _ := bufio.NewReader(input).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	size := int(cursor.Size)
	if size < 1 {
		size = 1
	}

	underlinefmt := fmt.Sprintf(
		"%% %ds%s",
		int(cursor.Byte-cursor.LineByte)+1,
		strings.Repeat("~", size-1),
	)

	log.Printf(
		"%s\n%s\n%s",
		err,
		line,
		red(fmt.Sprintf(underlinefmt, "^")),
	)
}

// Writes data to a temporary file beside filename and renames it into place,
// so a failed write never leaves a partial artifact.
func writeFile(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".hackasm-*")

	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}

func hackasm(args []string) int {
	if len(args) != 1 || filepath.Ext(args[0]) != assembler.SOURCE_EXT {
		log.Println(usage)
		return 1
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	filename := filepath.Base(file.Name())

	if stat, err := file.Stat(); err != nil {
		log.Println(err)
		return 1
	} else if stat.IsDir() {
		log.Printf("%s is not a valid Hack assembly file", filename)
		return 1
	}

	log.SetPrefix(bold(filename + ":"))

	if outvar == "" {
		outvar = strings.TrimSuffix(args[0], assembler.SOURCE_EXT) +
			assembler.BINARY_EXT
	}

	var symtarget *assembler.SymTable = nil

	if debugvar || symbolsvar {
		source, err := filepath.Abs(args[0])

		if err != nil {
			log.Println(err)
			source = ""
		}

		symtarget = assembler.NewSymTable(source)
	}

	result, errs := assembler.AssembleHackSource(file, symtarget)

	if len(errs) > 0 {
		for _, err := range errs {
			reportError(file, err)
		}

		glog.V(1).Infof("%s: %d errors", filename, len(errs))

		return 1
	}

	if err := writeFile(outvar, []byte(strings.Join(result, "\n"))); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	glog.V(1).Infof("%s: wrote %d words to %s", filename, len(result), outvar)

	if symbolsvar {
		printer := pp.New()
		printer.SetColoringEnabled(color)
		printer.Fprintln(os.Stderr, symtarget.Values)
	}

	if debugvar {
		dbgname := strings.TrimSuffix(outvar, filepath.Ext(outvar)) +
			assembler.DEBUG_EXT

		if file, err := os.Create(dbgname); err == nil {
			defer file.Close()

			if err := gob.NewEncoder(file).Encode(symtarget); err != nil {
				log.Println("Error writing symbol table")
				log.Println(err)
				return 1
			}
		} else {
			log.Println("Error creating symbol table")
			log.Println(err)
			return 1
		}
	}

	return 0
}

func main() {
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse([]string{})

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	glog.Flush()
	os.Exit(status)
}
