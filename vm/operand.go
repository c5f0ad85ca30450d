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

package vm

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (i *Instance) addrError(addr Cell) error {
	return errors.WithStack(&AddressError{PC: i.PC, Addr: addr})
}

// check returns an error if addr is negative or if accessing it would grow the
// tape past its size limit.
func (i *Instance) check(addr Cell) error {
	if !i.Tape.valid(addr, i.maxTape) {
		return i.addrError(addr)
	}
	return nil
}

// grow grows the tape so that addr is a valid index.
func (i *Instance) grow(addr Cell) {
	n := i.Tape.grow(addr, i.margin, i.maxTape)
	if n == 0 {
		return
	}
	i.metrics.grew(n)
	if ce := i.log.Check(zap.DebugLevel, "tape grown"); ce != nil {
		ce.Write(zap.Int("pc", i.PC), zap.Int64("addr", int64(addr)), zap.Int("added", n), zap.Int("len", len(i.Tape)))
	}
}

func (i *Instance) read(addr Cell) (Cell, error) {
	if err := i.check(addr); err != nil {
		return 0, err
	}
	i.grow(addr)
	return i.Tape[addr], nil
}

func (i *Instance) write(addr, v Cell) error {
	if err := i.check(addr); err != nil {
		return err
	}
	i.grow(addr)
	i.Tape[addr] = v
	return nil
}

// param returns the raw n-th parameter of the current instruction. Parameter
// cells past the end of the tape read as 0 and do not grow it.
func (i *Instance) param(n int) Cell {
	if p := i.PC + 1 + n; p < len(i.Tape) {
		return i.Tape[p]
	}
	return 0
}

// value returns the effective value of the n-th parameter of ins.
func (i *Instance) value(ins Instruction, n int) (Cell, error) {
	p := i.param(n)
	switch ins.Modes[n] {
	case Immediate:
		return p, nil
	case Relative:
		return i.read(i.RelBase + p)
	default:
		return i.read(p)
	}
}

// address returns the effective write address of the n-th parameter of ins.
// Immediate mode makes no sense for a write target and is handled like
// position mode.
func (i *Instance) address(ins Instruction, n int) (Cell, error) {
	addr := i.param(n)
	if ins.Modes[n] == Relative {
		addr += i.RelBase
	}
	if err := i.check(addr); err != nil {
		return 0, err
	}
	return addr, nil
}
