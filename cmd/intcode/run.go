// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	inputKey       = "input"
	asciiKey       = "ascii"
	interactiveKey = "interactive"
	noRawKey       = "noraw"
	dumpKey        = "dump"
	growMarginKey  = "grow-margin"
	maxTapeKey     = "max-tape"
)

// errWaiting is returned when a non interactive run stops on an input
// instruction.
var errWaiting = errors.New("program is waiting for more input")

func (a *app) runCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "run PROGRAM",
		Short: "Runs an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.run(c, args[0])
		},
	}
	addRunFlags(c.Flags())
	return c
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.StringP(inputKey, "i", "", "comma separated input `values`, or text in ASCII mode")
	flags.BoolP(asciiKey, "a", false, "exchange ASCII text with the program")
	flags.BoolP(interactiveKey, "t", false, "read more input from stdin when the program needs it")
	flags.Bool(noRawKey, false, "disable raw terminal IO in interactive mode")
	flags.Bool(dumpKey, false, "dump registers, output and tape upon exit")
	flags.Int(growMarginKey, vm.DefaultGrowMargin, "extra cells allocated when the tape grows")
	flags.Int(maxTapeKey, vm.DefaultMaxTape, "tape size limit in cells")
}

// parseInput converts a line of user input to input values.
func parseInput(s string, text bool) ([]vm.Cell, error) {
	if text {
		return ascii.EncodeLine(s), nil
	}
	in, err := vm.ParseString(s)
	return in, errors.Wrap(err, "invalid input")
}

func writeOutput(w io.Writer, out []vm.Cell, text bool) error {
	if text {
		return ascii.Write(w, out)
	}
	b := make([]byte, 0, 22)
	for _, v := range out {
		b = strconv.AppendInt(b[:0], int64(v), 10)
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) run(c *cobra.Command, name string) (err error) {
	tape, err := vm.Load(name)
	if err != nil {
		return err
	}
	text := a.v.GetBool(asciiKey)
	var in []vm.Cell
	if s := a.v.GetString(inputKey); s != "" {
		if in, err = parseInput(s, text); err != nil {
			return err
		}
	}
	i, err := vm.New(tape, a.vmOptions(
		vm.GrowMargin(a.v.GetInt(growMarginKey)),
		vm.MaxTape(a.v.GetInt(maxTapeKey)))...)
	if err != nil {
		return err
	}

	stdout := bufio.NewWriter(c.OutOrStdout())
	defer func() {
		if err == nil && a.v.GetBool(dumpKey) {
			err = ascii.DumpState(stdout, i.State(), i.Tape)
		}
		if ferr := stdout.Flush(); err == nil {
			err = errors.Wrap(ferr, "write failed")
		}
	}()

	var lr *lineReader
	if a.v.GetBool(interactiveKey) {
		raw := false
		if f, ok := c.InOrStdin().(*os.File); ok && !a.v.GetBool(noRawKey) {
			if tearDown, err := setRawIO(f.Fd()); err == nil {
				defer tearDown()
				raw = true
			} else {
				a.log.Debug("raw terminal IO unavailable", zap.Error(err))
			}
		}
		lr = newLineReader(c.InOrStdin(), stdout, raw)
	}

	seen := 0
	for {
		r, err := i.Continue(in...)
		out := i.Output()
		if werr := writeOutput(stdout, out[seen:], text); werr != nil {
			return errors.Wrap(werr, "write failed")
		}
		seen = len(out)
		if err != nil {
			return err
		}
		if r != vm.InputEmpty {
			break
		}
		if lr == nil {
			return errors.Wrapf(errWaiting, "pc %d", i.PC)
		}
		if err = stdout.Flush(); err != nil {
			return errors.Wrap(err, "write failed")
		}
		line, err := lr.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read failed")
		}
		if in, err = parseInput(line, text); err != nil {
			return err
		}
	}

	if i.Reason() == vm.Exhausted {
		a.log.Warn("program ran past the end of its tape", zap.Int("pc", i.PC))
	}
	a.log.Debug("program stopped",
		zap.Stringer("reason", i.Reason()),
		zap.Int("pc", i.PC),
		zap.Int64("instructions", i.InstructionCount()),
		zap.Int("tape", i.Tape.Len()))
	return nil
}
