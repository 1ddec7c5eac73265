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
	"encoding/gob"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/encoding"
	"github.com/lassandro/gohack/pkg/listing"
	"github.com/lassandro/gohack/pkg/term"
)

var dbvar string
var status int

const usage = "hackdis [--db symfile] filename.hack"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(filepath.Base(exe) + ": ")
	log.SetOutput(os.Stderr)
}

var rootCmd = &cobra.Command{
	Use:   "hackdis [flags] filename.hack",
	Short: "Lists a Hack binary as assembly",
	Long: `Hackdis decodes every word of a Hack binary text file back into its
assembly mnemonic. When a debugging symbol table produced by
'hackasm --debug' is found, labels, symbolic operands, and the original
source lines are shown alongside.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		status = hackdis(args)
	},
}

func init() {
	rootCmd.Flags().StringVar(
		&dbvar, "db", "",
		"Specifies the symbol table to load, overriding the default of the "+
			"input filename with extension '"+assembler.DEBUG_EXT+"'",
	)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func hackdis(args []string) int {
	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	words, err := encoding.ReadWords(file)

	if err != nil {
		log.Println(err)
		return 1
	}

	var l listing.Listing
	l.Color = term.IsTerminal(int(os.Stdout.Fd()))

	explicit := dbvar != ""

	if !explicit {
		dbvar = strings.TrimSuffix(args[0], filepath.Ext(args[0])) +
			assembler.DEBUG_EXT
	}

	if file, err := os.Open(dbvar); err == nil {
		var symtable assembler.SymTable

		if err := gob.NewDecoder(file).Decode(&symtable); err == nil {
			l.SymTable = &symtable
		} else {
			log.Println("Error loading symbol file")
			log.Println(err)
		}

		file.Close()
	} else if explicit {
		log.Println("Error loading symbol file")
		log.Println(err)
	} else {
		glog.V(1).Infof("no symbol file: %v", err)
	}

	if l.SymTable != nil && l.SymTable.Source != "" {
		if file, err := os.Open(l.SymTable.Source); err == nil {
			l.Source = file
			defer file.Close()
		} else {
			log.Println("Error loading source file")
			log.Println(err)
		}
	}

	if err := l.Print(os.Stdout, words); err != nil {
		log.Println(err)
		return 1
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
