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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	Instructions take their parameters from the cells following them. "dst" is
//	a write target.
//
//	opcode	asm	params		description
//	------	---	------		------------------------------------------------
//	1	add	a b dst		dst = a + b
//	2	mul	a b dst		dst = a * b
//	3	in	dst		read the next input value into dst
//	4	out	a		output a
//	5	jnz	a target	jump to target if a != 0
//	6	jz	a target	jump to target if a == 0
//	7	lt	a b dst		dst = 1 if a < b, else 0
//	8	eq	a b dst		dst = 1 if a == b, else 0
//	9	arb	a		add a to the relative base
//	99	hlt			stop
//
// Parameter modes:
//
// The mode of a parameter is selected by a prefix:
//
//	add 12 #3 ~-2	( position mode, immediate mode, relative mode )
//
// A parameter with no prefix is an address. A '#' prefix makes it a literal
// value and a '~' prefix makes it an address relative to the relative base.
// The assembler computes the mode digits of the instruction cell.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not )
//
// Literals and label/const identifiers:
//
// Like a Forth parser, the assembler splits its input at white space. Each
// token is then processed as follows:
//
//	- If a token can be converted to a Go integer (see strconv.ParseInt), it
//	  is an integer literal.
//	- If it is a Go character literal between single quotes, it is converted
//	  to the corresponding integer literal.
//	- If a token is the name of a defined constant, it is replaced by the
//	  constant's value.
//	- Where an instruction is expected, the token is looked up in the
//	  mnemonics. Anything else is compiled as data, as if preceded by .dat.
//	- Where a parameter is expected, any other token is a label reference.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:). A reference to a
// label compiles to its address. Forward references are allowed:
//
//	:loop	in val	( stores input in the cell labelled val )
//		out #42
//		jnz #1 #loop
//	:val	.dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer value, named constant
// or character literal.
//
//	.org <value>
//
// Will place the next instruction at the address specified by the given
// integer literal or named constant.
//
//	.dat <value>
//
// Will compile the specified integer value, named constant, character literal
// or label address as-is.
//
// Disassembly:
//
// Disassemble writes instructions in the same syntax. Cells that cannot be
// decoded are written as .dat directives, so that the output of Disassemble
// always assembles back to the original cells.
package asm
