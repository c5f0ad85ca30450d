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

package asm

import (
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

// Error is a single assembler error.
type Error struct {
	Pos scanner.Position
	Msg string
}

// ErrAsm is the error type returned by Assemble. Entries are sorted by
// position.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for n, err := range e {
		if n > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	t      vm.Tape
	pc     int
	size   int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	errs   ErrAsm
}

func newParser() *parser {
	return &parser{
		labels: make(map[string]*label),
		consts: make(map[string]labelSite),
	}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{pos, msg})
	}
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.t) {
		p.t = append(p.t, make(vm.Tape, 256)...)
	}
	p.t[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

// next returns the next token, skipping comments. It returns false on EOF.
func (p *parser) next() (string, bool) {
	for {
		tok := p.s.Scan()
		switch tok {
		case scanner.EOF:
			return "", false
		case scanner.Ident:
			if s := p.s.TokenText(); s != "(" {
				return s, true
			}
			p.skipComment()
		default:
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
		}
	}
}

func (p *parser) skipComment() {
	start := p.s.Position
	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if tok == scanner.Ident && p.s.TokenText() == ")" {
			return
		}
	}
	p.error(start, "unterminated comment")
}

// literal converts s to an integer. s can be an integer literal, a character
// literal or a constant name.
func (p *parser) literal(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, _, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil {
			p.error(p.s.Position, "invalid character literal "+s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// value writes the value of token s at pc. Tokens that are not literals are
// label references.
func (p *parser) value(s string) {
	if v, ok := p.literal(s); ok {
		p.write(v)
		return
	}
	switch s[0] {
	case ':', '.', '#', '~':
		p.error(p.s.Position, "unexpected token as value: "+s)
	default:
		p.useLabel(s)
	}
	p.write(0)
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{labelSite{p.s.Position, -1}, nil}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
}

func (p *parser) defineLabel(name string) {
	pos := p.s.Position
	if name == "" {
		p.error(pos, "empty label name")
		return
	}
	if c, ok := p.consts[name]; ok {
		p.error(pos, "label redefinition, previously defined as a constant at "+c.pos.String()+": "+name)
		return
	}
	l, ok := p.labels[name]
	if !ok {
		p.labels[name] = &label{labelSite{pos, p.pc}, nil}
		return
	}
	if l.address != -1 {
		p.error(pos, "label redefinition, previous definition at "+l.pos.String()+": "+name)
		return
	}
	l.labelSite = labelSite{pos, p.pc}
}

var modeWeight = [...]vm.Cell{100, 1000, 10000}

func (p *parser) instruction(op vm.Opcode) {
	at := p.pc
	p.write(vm.Cell(op))
	for n := 0; n < op.Argc(); n++ {
		s, ok := p.next()
		if !ok {
			p.error(p.s.Position, "missing operand for "+op.String())
			return
		}
		switch s[0] {
		case '#':
			p.t[at] += vm.Cell(vm.Immediate) * modeWeight[n]
			s = s[1:]
		case '~':
			p.t[at] += vm.Cell(vm.Relative) * modeWeight[n]
			s = s[1:]
		}
		if s == "" {
			p.error(p.s.Position, "missing operand value")
			p.write(0)
			continue
		}
		p.value(s)
	}
}

func (p *parser) directive(s string) {
	pos := p.s.Position
	arg, ok := p.next()
	if !ok {
		p.error(pos, "missing argument for "+s)
		return
	}
	switch s {
	case ".dat":
		p.value(arg)
	case ".org":
		v, ok := p.literal(arg)
		if !ok || v < 0 {
			p.error(p.s.Position, ".org: expected a positive integer or constant, got "+arg)
			return
		}
		p.pc = int(v)
	case ".equ":
		if l, ok := p.labels[arg]; ok {
			p.error(p.s.Position, ".equ: redefinition, previously defined or used as a label at "+l.pos.String()+": "+arg)
		}
		name, npos := arg, p.s.Position
		if arg, ok = p.next(); !ok {
			p.error(pos, "missing value for .equ "+name)
			return
		}
		v, ok := p.literal(arg)
		if !ok {
			p.error(p.s.Position, ".equ: expected an integer or constant, got "+arg)
			return
		}
		p.consts[name] = labelSite{npos, int(v)}
	default:
		p.error(pos, "unknown directive "+s)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Tape, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(s.Pos(), msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for s, ok := p.next(); ok && len(p.errs) < maxErrors; s, ok = p.next() {
		switch s[0] {
		case ':':
			p.defineLabel(s[1:])
		case '.':
			p.directive(s)
		default:
			if op, ok := vm.LookupOpcode(s); ok {
				p.instruction(op)
				continue
			}
			// implicit .dat
			p.value(s)
		}
	}

	for _, n := range slices.Sorted(maps.Keys(p.labels)) {
		l := p.labels[n]
		if l.address == -1 {
			p.error(l.pos, "undefined label "+n)
			continue
		}
		for _, u := range l.uses {
			p.t[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		slices.SortStableFunc(p.errs, func(a, b Error) int { return a.Pos.Offset - b.Pos.Offset })
		return nil, p.errs
	}
	return p.t[:p.size:p.size], nil
}
