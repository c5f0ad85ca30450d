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

// The intcode command line tool runs, assembles and disassembles Intcode
// programs. It is a showcase for the package github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode [global flags] run PROGRAM [flags]
//	intcode [global flags] amp PROGRAM [flags]
//	intcode [global flags] asm SOURCE [-o file]
//	intcode [global flags] disasm PROGRAM [--base n]
//
// Global flags:
//
//	--config file
//		  read configuration from file
//	--debug
//		  enable debug diagnostics
//	--metrics
//		  print execution metrics to stderr on exit
//	--trace
//		  log every executed instruction
//
// Program files are lists of comma separated integers, optionally Zstandard
// compressed.
//
// run: runs a program. Flags:
//
//	-i, --input values
//		  comma separated input values, or text in ASCII mode
//	-a, --ascii
//		  exchange ASCII text with the program
//	-t, --interactive
//		  read more input from stdin when the program needs it
//	--noraw
//		  disable raw terminal IO in interactive mode
//	--dump
//		  dump registers, output and tape upon exit
//	--grow-margin int
//		  extra cells allocated when the tape grows (default 2)
//	--max-tape int
//		  tape size limit in cells (default 16777216)
//
// Without -t, a program that needs more input than given with -i stops with
// an error. With -t, each line read from stdin is sent to the program when it
// needs input, until end of file. In ASCII mode, lines are sent as text and
// output values in the range [0, 127] are printed as characters.
//
// --noraw: in interactive mode, intcode switches the terminal to raw mode and
// handles line editing itself. This flag disables this behavior.
//
// --dump: the dump is written to stdout after the program output. Value groups
// are introduced by ASCII separators: '\x1C' before the registers (pc,
// relative base, stop reason and opcode), '\x1D' before the output and '\x1D'
// before the tape.
//
// amp: runs the program as a series of amplifiers for every ordering of the
// phase settings and prints the highest signal with the phase settings that
// produced it. Flags:
//
//	-f, --feedback
//		  connect the amplifiers in a feedback loop
//	-p, --phases settings
//		  comma separated phase settings (default 0-4, or 5-9 in feedback mode)
//	-j, --jobs int
//		  number of circuits evaluated concurrently (default GOMAXPROCS)
//	--signal int
//		  input signal of the first amplifier
//
// asm: assembles SOURCE (see package github.com/db47h/intcode/asm) and writes
// the program to stdout, or to the file given with -o.
//
// disasm: writes a disassembly of PROGRAM to stdout.
//
// Every flag can also be set in the configuration file or with an environment
// variable named after the flag, prefixed with INTCODE_ and with dashes
// replaced by underscores, e.g. INTCODE_GROW_MARGIN.
package main
