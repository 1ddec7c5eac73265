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
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/lassandro/gohack/pkg/machine"
	"github.com/lassandro/gohack/pkg/term"
)

var stepsvar uint
var ramvar string
var keyboardvar bool
var status int

const usage = "hackrun [--steps N] [--ram lo:hi] [--keyboard] filename.hack"

// Steps executed between checks for an interrupt
const slice = 4096

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

var rootCmd = &cobra.Command{
	Use:   "hackrun [flags] filename.hack",
	Short: "Runs a Hack binary and prints a range of data memory",
	Long: `Hackrun loads a Hack binary text file into instruction memory and
executes it until the program settles into a jump to itself, runs past
its last instruction, exhausts the step budget, or is interrupted. The
requested range of data memory is then printed.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		status = hackrun(args)
	},
}

func init() {
	rootCmd.Flags().UintVar(&stepsvar, "steps", 1000000, "Maximum steps to execute")
	rootCmd.Flags().StringVar(&ramvar, "ram", "0:16", "Range of data memory to print, lo:hi")
	rootCmd.Flags().BoolVar(
		&keyboardvar, "keyboard", false,
		"Feeds keystrokes from the terminal to the KBD register",
	)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func parseRange(s string) (uint16, uint16, error) {
	lo, hi, found := strings.Cut(s, ":")

	if !found {
		return 0, 0, fmt.Errorf("Invalid memory range '%s'", s)
	}

	start, err := strconv.ParseUint(lo, 0, 15)

	if err != nil {
		return 0, 0, err
	}

	end, err := strconv.ParseUint(hi, 0, 16)

	if err != nil {
		return 0, 0, err
	}

	if end < start || end > machine.MEMORY_SIZE {
		return 0, 0, fmt.Errorf("Invalid memory range '%s'", s)
	}

	return uint16(start), uint16(end), nil
}

func printMem(mc *machine.MachineState, lo, hi uint16) {
	for i := lo; i < hi; i++ {
		if i == lo {
			fmt.Printf("[%04x] ", i)
		} else if (i-lo)%4 == 0 {
			fmt.Println()
			fmt.Printf("[%04x] ", i)
		}

		fmt.Printf("%6d ", int16(mc.Memory[i]))
	}

	fmt.Println()
}

func hackrun(args []string) int {
	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	lo, hi, err := parseRange(ramvar)

	if err != nil {
		log.Println(err)
		return 1
	}

	file, err := os.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	defer file.Close()

	var mc machine.Machine

	if err := mc.LoadHack(file); err != nil {
		log.Println(err)
		return 1
	}

	if keyboardvar {
		fd := int(os.Stdin.Fd())

		if !term.IsTerminal(fd) {
			log.Println("--keyboard requires a terminal on stdin")
			return 1
		}

		restore, err := term.MakeRaw(fd)

		if err != nil {
			log.Println(err)
			return 1
		}

		defer term.Restore(fd, restore)

		mc.Devices = &machine.DeviceHandler{Keyboard: bufio.NewReader(os.Stdin)}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)

	var steps uint

	for steps < stepsvar && !mc.State.Halted {
		budget := stepsvar - steps
		if budget > slice {
			budget = slice
		}

		steps += mc.Run(budget)

		select {
		case <-c:
			fmt.Println()
			log.Printf("Interrupted at %#04x", mc.State.Program)
			stepsvar = steps
		default:
		}
	}

	glog.V(1).Infof("%d steps, pc=%d halted=%t", steps, mc.State.Program, mc.State.Halted)

	if !mc.State.Halted {
		log.Printf("Stopped after %d steps", steps)
	}

	printMem(&mc.State, lo, hi)

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
