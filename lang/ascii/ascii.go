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

// Package ascii provides utility functions to exchange text with Intcode
// programs that use the ASCII convention: input and output values in the range
// [0, 127] are characters, and anything else is a plain integer.
package ascii

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// MaxChar is the largest value considered to be a character.
const MaxChar = 127

// IsChar returns true if v is a character value.
func IsChar(v vm.Cell) bool {
	return v >= 0 && v <= MaxChar
}

// Encode converts s to input values, one per byte.
func Encode(s string) []vm.Cell {
	in := make([]vm.Cell, len(s))
	for i := 0; i < len(s); i++ {
		in[i] = vm.Cell(s[i])
	}
	return in
}

// EncodeLine is like Encode but terminates the input with a new line if s does
// not end with one.
func EncodeLine(s string) []vm.Cell {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return Encode(s)
}

// Decode splits program output into text and non character values. The
// relative order of values is not preserved between the two.
func Decode(out []vm.Cell) (text string, values []vm.Cell) {
	var b strings.Builder
	for _, v := range out {
		if IsChar(v) {
			b.WriteByte(byte(v))
		} else {
			values = append(values, v)
		}
	}
	return b.String(), values
}

// Write writes program output to w. Character values are written as-is, other
// values are written in decimal on a line of their own.
func Write(w io.Writer, out []vm.Cell) error {
	ew := ici.NewErrWriter(w)
	b := make([]byte, 0, 22)
	for n, v := range out {
		if IsChar(v) {
			ew.Write([]byte{byte(v)})
			continue
		}
		b = b[:0]
		if n > 0 && IsChar(out[n-1]) && out[n-1] != '\n' {
			b = append(b, '\n')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, '\n')
		ew.Write(b)
	}
	return ew.Err
}
