/*
 * AGC core - Non-interactive stepping driver.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// agcstep is a non-interactive driver: it loads a yaYUL ROM image,
// steps the core a fixed number of subinstructions (optionally
// checking every time pulse against a conformance CSV), and prints the
// final register state. A non-interactive driver; no redraw loop or
// raw terminal mode, just load, step, and print the final state.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/agc-core/agc/agclog"
	"github.com/agc-core/agc/cpu"
	"github.com/agc-core/agc/loader"
	"github.com/agc-core/agc/oracle"
)

var logger *slog.Logger

func main() {
	optROM := getopt.StringLong("rom", 'r', "", "yaYUL fixed-memory ROM image")
	optSteps := getopt.IntLong("steps", 's', 18, "Number of subinstructions to execute")
	optConformance := getopt.StringLong("conformance", 'C', "", "Conformance CSV to check each time pulse against")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror log records to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var out *os.File
	if *optLogFile != "" {
		var err error
		out, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "agcstep: %v\n", err)
			os.Exit(1)
		}
	}
	handler := agclog.NewHandler(out, slog.LevelInfo, *optDebug)
	logger = slog.New(handler)
	slog.SetDefault(logger)

	if *optROM == "" {
		logger.Error("agcstep: --rom is required")
		os.Exit(1)
	}

	fixed, err := loader.LoadFile(*optROM)
	if err != nil {
		logger.Error("agcstep: loading ROM", "error", err)
		os.Exit(1)
	}
	logger.Info("agcstep: ROM loaded", "path", *optROM)

	machine := cpu.New(fixed)

	var rows *bufio.Scanner
	var csvFile *os.File
	lineNum := 0
	if *optConformance != "" {
		csvFile, err = os.Open(*optConformance)
		if err != nil {
			logger.Error("agcstep: opening conformance CSV", "error", err)
			os.Exit(1)
		}
		defer csvFile.Close()
		rows = bufio.NewScanner(csvFile)
		rows.Scan() // header
		lineNum = 1
	}

	for i := 0; i < *optSteps; i++ {
		name := machine.CurrentSubinstructionName()
		for t := 0; t < 12; t++ {
			if rows != nil {
				if !rows.Scan() {
					logger.Error("agcstep: conformance CSV ended early", "subinstruction", i, "timepulse", t+1)
					os.Exit(1)
				}
				lineNum++
				want, err := oracle.Parse(rows.Text(), lineNum)
				if err != nil {
					logger.Error("agcstep: parsing conformance row", "error", err)
					os.Exit(1)
				}
				got := oracle.FromCpu(machine.Cpu)
				if diff := oracle.Diff(got, want); diff != "" {
					logger.Error("agcstep: conformance mismatch", "subinstruction", i, "name", name, "timepulse", t+1, "field", diff)
					os.Exit(1)
				}
			}
			machine.StepControlPulse()
		}
	}

	printState(machine)
}

func printState(c *cpu.Cpu) {
	fmt.Printf("A=%o L=%o Q=%o Z=%o EBANK=%o FBANK=%o\n", c.A, c.L, c.Q, c.Z, c.EBank, c.FBank)
	fmt.Printf("B=%o G=%o S=%o ST=%o X=%o Y=%o BR=%o\n", c.B, c.G, c.S, c.ST, c.X, c.Y, c.BR.Inner())
	fmt.Printf("next subinstruction: %s\n", c.CurrentSubinstructionName())
}
