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
	"strconv"

	"github.com/pkg/errors"
)

// Sentinel errors. Use errors.Is to test for them; the concrete errors
// returned by the VM carry more context.
var (
	ErrNegativeAddress = errors.New("negative address")
	ErrAddressRange    = errors.New("address out of range")
	ErrUnknownOpcode   = errors.New("unknown opcode")
)

// AddressError reports an attempt to read, write or jump to a negative
// address, or to grow the tape past its size limit.
type AddressError struct {
	PC   int  // address of the faulting instruction, -1 if outside of a run
	Addr Cell // offending address
}

func (e *AddressError) Error() string {
	s := "address " + strconv.FormatInt(int64(e.Addr), 10) + ": " + e.Unwrap().Error()
	if e.PC < 0 {
		return s
	}
	return "pc " + strconv.Itoa(e.PC) + ": " + s
}

// Unwrap returns ErrNegativeAddress for negative addresses and ErrAddressRange
// otherwise.
func (e *AddressError) Unwrap() error {
	if e.Addr < 0 {
		return ErrNegativeAddress
	}
	return ErrAddressRange
}

// OpcodeError reports an instruction cell that could not be decoded or whose
// opcode is not part of the instruction set.
type OpcodeError struct {
	PC  int
	Raw Cell // raw instruction cell
}

func (e *OpcodeError) Error() string {
	return "pc " + strconv.Itoa(e.PC) + ": " + ErrUnknownOpcode.Error() + " " + strconv.FormatInt(int64(e.Raw), 10)
}

// Unwrap returns ErrUnknownOpcode.
func (e *OpcodeError) Unwrap() error { return ErrUnknownOpcode }
