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

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	outputKey = "output"
	baseKey   = "base"
)

func (a *app) asmCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "asm SOURCE",
		Short: "Assembles an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.assemble(c, args[0])
		},
	}
	c.Flags().StringP(outputKey, "o", "", "write the program to `file` instead of stdout (zstd compressed if it ends with .zst)")
	return c
}

func (a *app) assemble(c *cobra.Command, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	t, err := asm.Assemble(name, bufio.NewReader(f))
	if err != nil {
		return err
	}
	if out := a.v.GetString(outputKey); out != "" {
		return vm.Save(out, t)
	}
	_, err = io.WriteString(c.OutOrStdout(), t.String()+"\n")
	return errors.Wrap(err, "write failed")
}

func (a *app) disasmCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "disasm PROGRAM",
		Short: "Disassembles an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.disassemble(c, args[0])
		},
	}
	c.Flags().Int(baseKey, 0, "address of the first cell")
	return c
}

func (a *app) disassemble(c *cobra.Command, name string) error {
	t, err := vm.Load(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(c.OutOrStdout())
	if err = asm.DisassembleAll(t, a.v.GetInt(baseKey), w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write failed")
}
