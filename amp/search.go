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

package amp

import (
	"context"
	"runtime"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"
)

// Result is the outcome of a phase setting search.
type Result struct {
	Signal vm.Cell
	Phases []vm.Cell
}

type search struct {
	workers int
	signal  vm.Cell
	log     *zap.Logger
	vmOpts  []vm.Option
}

// Option configures MaxSignal.
type Option func(*search)

// Workers sets the maximum number of circuits evaluated concurrently. The
// default is runtime.GOMAXPROCS(0).
func Workers(n int) Option {
	return func(s *search) {
		if n > 0 {
			s.workers = n
		}
	}
}

// Signal sets the input signal of the first amplifier. The default is 0.
func Signal(v vm.Cell) Option {
	return func(s *search) { s.signal = v }
}

// Logger sets the logger used to report evaluated permutations at debug
// level.
func Logger(l *zap.Logger) Option {
	return func(s *search) {
		if l != nil {
			s.log = l
		}
	}
}

// VMOptions sets options applied to every amplifier.
func VMOptions(opts ...vm.Option) Option {
	return func(s *search) { s.vmOpts = append(s.vmOpts, opts...) }
}

func pick(phases []vm.Cell, perm []int) []vm.Cell {
	p := make([]vm.Cell, len(perm))
	for n, k := range perm {
		p[n] = phases[k]
	}
	return p
}

// MaxSignal tries every ordering of the given phase settings on a fresh
// circuit running program in mode m, and returns the highest signal produced
// by the last amplifier along with the phase settings that produced it. If
// several orderings yield the same signal, the first one in enumeration order
// wins.
//
// Circuits are evaluated concurrently. The first error cancels the search and
// is returned.
func MaxSignal(ctx context.Context, program vm.Tape, phases []vm.Cell, m Mode, opts ...Option) (Result, error) {
	s := search{workers: runtime.GOMAXPROCS(0), log: zap.NewNop()}
	for _, o := range opts {
		o(&s)
	}
	if len(phases) == 0 {
		return Result{}, errors.New("no phase settings")
	}

	perms := combin.Permutations(len(phases), len(phases))
	signals := make([]vm.Cell, len(perms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for k, perm := range perms {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := pick(phases, perm)
			c, err := NewCircuit(program, p, s.vmOpts...)
			if err != nil {
				return err
			}
			v, err := c.Run(m, s.signal)
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			if ce := s.log.Check(zap.DebugLevel, "circuit"); ce != nil {
				ce.Write(zap.Stringer("mode", m), zap.Int64s("phases", cells(p)), zap.Int64("signal", int64(v)))
			}
			signals[k] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for k, v := range signals[1:] {
		if v > signals[best] {
			best = k + 1
		}
	}
	r := Result{Signal: signals[best], Phases: pick(phases, perms[best])}
	s.log.Info("max signal", zap.Stringer("mode", m), zap.Int64s("phases", cells(r.Phases)), zap.Int64("signal", int64(r.Signal)), zap.Int("circuits", len(perms)))
	return r, nil
}

func cells(a []vm.Cell) []int64 {
	r := make([]int64, len(a))
	for n, v := range a {
		r[n] = int64(v)
	}
	return r
}
