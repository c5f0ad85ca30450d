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

import "github.com/pkg/errors"

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// binop reads the two operands of a 3 parameter instruction and stores f(a, b)
// at the address given by the third one.
func (i *Instance) binop(ins Instruction, f func(a, b Cell) Cell) (int, error) {
	a, err := i.value(ins, 0)
	if err != nil {
		return i.PC, err
	}
	b, err := i.value(ins, 1)
	if err != nil {
		return i.PC, err
	}
	dst, err := i.address(ins, 2)
	if err != nil {
		return i.PC, err
	}
	if err = i.write(dst, f(a, b)); err != nil {
		return i.PC, err
	}
	return i.PC + 4, nil
}

// jump evaluates a conditional jump. The target is only checked when the jump
// is taken.
func (i *Instance) jump(ins Instruction, cond func(Cell) bool) (int, error) {
	v, err := i.value(ins, 0)
	if err != nil {
		return i.PC, err
	}
	target, err := i.value(ins, 1)
	if err != nil {
		return i.PC, err
	}
	if !cond(v) {
		return i.PC + 3, nil
	}
	if target < 0 {
		return i.PC, i.addrError(target)
	}
	return int(target), nil
}

// exec executes ins, the instruction at PC, and returns the address of the
// next instruction. On error, the returned address is the current PC and no
// cell has been written.
//
// The caller is responsible for checking that the input queue is not empty
// before executing an OpIn instruction.
func (i *Instance) exec(ins Instruction) (next int, err error) {
	switch ins.Op {
	case OpAdd:
		return i.binop(ins, func(a, b Cell) Cell { return a + b })
	case OpMul:
		return i.binop(ins, func(a, b Cell) Cell { return a * b })
	case OpIn:
		dst, err := i.address(ins, 0)
		if err != nil {
			return i.PC, err
		}
		if err = i.write(dst, i.input.pop()); err != nil {
			return i.PC, err
		}
		return i.PC + 2, nil
	case OpOut:
		v, err := i.value(ins, 0)
		if err != nil {
			return i.PC, err
		}
		i.output = append(i.output, v)
		return i.PC + 2, nil
	case OpJnz:
		return i.jump(ins, func(v Cell) bool { return v != 0 })
	case OpJz:
		return i.jump(ins, func(v Cell) bool { return v == 0 })
	case OpLt:
		return i.binop(ins, func(a, b Cell) Cell { return b2c(a < b) })
	case OpEq:
		return i.binop(ins, func(a, b Cell) Cell { return b2c(a == b) })
	case OpArb:
		v, err := i.value(ins, 0)
		if err != nil {
			return i.PC, err
		}
		i.RelBase += v
		return i.PC + 2, nil
	case OpHalt:
		return i.PC, nil
	default:
		return i.PC, errors.WithStack(&OpcodeError{PC: i.PC, Raw: ins.Encode()})
	}
}
