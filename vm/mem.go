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
	"strings"
)

// Cell is the raw type stored in a memory location.
type Cell int64

const (
	// DefaultGrowMargin is the number of extra cells allocated past the
	// requested address whenever the tape grows.
	DefaultGrowMargin = 2
	// DefaultMaxTape is the default size limit of a growing tape, in cells.
	DefaultMaxTape = 1 << 24
)

// Tape is the memory of an Intcode program. It holds both the program code
// and its data.
//
// The zero value is an empty tape ready to use.
type Tape []Cell

// Len returns the current number of allocated cells.
func (t Tape) Len() int { return len(t) }

// Clone returns an independent copy of the tape.
func (t Tape) Clone() Tape {
	if t == nil {
		return nil
	}
	c := make(Tape, len(t))
	copy(c, t)
	return c
}

// String returns the tape contents as comma separated integers, the same
// format accepted by Parse.
func (t Tape) String() string {
	var b strings.Builder
	buf := make([]byte, 0, 20)
	for i, v := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		b.Write(buf)
	}
	return b.String()
}

// Read returns the value stored at addr. If addr is past the end of the tape,
// the tape is grown first and 0 is returned. The tape does not grow past
// DefaultMaxTape cells.
func (t *Tape) Read(addr Cell) (Cell, error) {
	if err := t.ensure(addr, DefaultGrowMargin); err != nil {
		return 0, err
	}
	return (*t)[addr], nil
}

// Write stores v at addr, growing the tape as needed.
func (t *Tape) Write(addr, v Cell) error {
	if err := t.ensure(addr, DefaultGrowMargin); err != nil {
		return err
	}
	(*t)[addr] = v
	return nil
}

// ensure makes sure that addr is a valid index into the tape.
func (t *Tape) ensure(addr Cell, margin int) error {
	if !t.valid(addr, DefaultMaxTape) {
		return &AddressError{PC: -1, Addr: addr}
	}
	t.grow(addr, margin, DefaultMaxTape)
	return nil
}

// valid returns true if addr is either within the tape or can be reached by
// growing it up to limit cells.
func (t Tape) valid(addr Cell, limit int) bool {
	return addr >= 0 && (addr < Cell(len(t)) || addr < Cell(limit))
}

// grow extends the tape to at least addr+1+margin cells, capped to limit, if
// addr is out of bounds. addr must be valid. Existing cells are left untouched
// and new cells are zero. It returns the number of cells added.
func (t *Tape) grow(addr Cell, margin, limit int) int {
	if addr < Cell(len(*t)) {
		return 0
	}
	n := int(addr) + 1
	if margin > 0 {
		n += min(margin, limit-n)
	}
	old := len(*t)
	if n <= cap(*t) {
		// re-slicing may expose stale cells from a previous shrink by the caller.
		*t = (*t)[:n]
		clear((*t)[old:])
	} else {
		nt := make(Tape, n)
		copy(nt, *t)
		*t = nt
	}
	return n - old
}
