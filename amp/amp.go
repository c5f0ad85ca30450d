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

// Package amp runs networks of Intcode amplifiers.
//
// An amplifier is a VM instance running the same program as its peers, with
// its own copy of the tape. Each amplifier receives a phase setting as its
// first input, then the signal produced by the previous amplifier. In Chain
// mode, the signal goes through the amplifiers once. In Feedback mode, the
// output of the last amplifier is fed back to the first one until the last
// amplifier halts.
package amp

import (
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Mode selects how amplifiers are connected.
type Mode int

// Circuit modes.
const (
	Chain    Mode = iota // single pass through the amplifiers
	Feedback             // loop from the last amplifier back to the first
)

func (m Mode) String() string {
	switch m {
	case Chain:
		return "chain"
	case Feedback:
		return "feedback"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Phases returns the default set of phase settings for the given mode.
func (m Mode) Phases() []vm.Cell {
	if m == Feedback {
		return []vm.Cell{5, 6, 7, 8, 9}
	}
	return []vm.Cell{0, 1, 2, 3, 4}
}

var (
	// ErrNoOutput is returned when an amplifier stops without producing the
	// signal expected from it.
	ErrNoOutput = errors.New("amplifier produced no output")
	// ErrStalled is returned when a whole feedback round completes without any
	// amplifier producing output while the last amplifier is still running.
	ErrStalled = errors.New("feedback loop stalled")
)

// Amplifier is a single VM in a circuit.
type Amplifier struct {
	Phase vm.Cell
	i     *vm.Instance
	seen  int // number of outputs already forwarded
}

// Instance returns the amplifier's VM.
func (a *Amplifier) Instance() *vm.Instance {
	return a.i
}

// resume runs the amplifier with the given input and returns the outputs it
// produced since the previous call.
func (a *Amplifier) resume(in []vm.Cell) (vm.Reason, []vm.Cell, error) {
	r, err := a.i.Continue(in...)
	if err != nil {
		return r, nil, err
	}
	out := a.i.Output()
	out, a.seen = out[a.seen:len(out):len(out)], len(out)
	return r, out, nil
}

// Circuit is a series of amplifiers. A Circuit can be run only once.
type Circuit struct {
	amps []*Amplifier
}

// NewCircuit creates a circuit of len(phases) amplifiers running the given
// program. Each amplifier gets its own copy of the program. The options are
// applied to every amplifier's VM.
func NewCircuit(program vm.Tape, phases []vm.Cell, opts ...vm.Option) (*Circuit, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty circuit")
	}
	c := &Circuit{amps: make([]*Amplifier, len(phases))}
	for n, p := range phases {
		i, err := vm.New(program.Clone(), append([]vm.Option{vm.Input(p)}, opts...)...)
		if err != nil {
			return nil, errors.Wrapf(err, "amplifier %d", n)
		}
		c.amps[n] = &Amplifier{Phase: p, i: i}
	}
	return c, nil
}

// Amplifiers returns the circuit's amplifiers.
func (c *Circuit) Amplifiers() []*Amplifier {
	return c.amps
}

// Run runs the circuit in the given mode.
func (c *Circuit) Run(m Mode, signal vm.Cell) (vm.Cell, error) {
	switch m {
	case Chain:
		return c.Chain(signal)
	case Feedback:
		return c.Feedback(signal)
	}
	return 0, errors.Errorf("invalid mode %d", int(m))
}

// Chain sends signal through all amplifiers once and returns the first output
// of the last amplifier. Each amplifier receives the first output of the
// previous one.
func (c *Circuit) Chain(signal vm.Cell) (vm.Cell, error) {
	for n, a := range c.amps {
		_, out, err := a.resume([]vm.Cell{signal})
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", n)
		}
		if len(out) == 0 {
			return 0, errors.Wrapf(ErrNoOutput, "amplifier %d", n)
		}
		signal = out[0]
	}
	return signal, nil
}

// Feedback sends signal to the first amplifier and runs the amplifiers in a
// loop, each one receiving the outputs produced by its predecessor since it
// last ran. The loop stops when the last amplifier halts. The last output of
// the last amplifier is returned.
func (c *Circuit) Feedback(signal vm.Cell) (vm.Cell, error) {
	last := len(c.amps) - 1
	in := []vm.Cell{signal}
	for {
		produced := false
		for n, a := range c.amps {
			r, out, err := a.resume(in)
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d", n)
			}
			in = out
			produced = produced || len(out) > 0
			if n < last {
				continue
			}
			switch r {
			case vm.InputEmpty:
			case vm.Finished:
				all := a.i.Output()
				if len(all) == 0 {
					return 0, errors.Wrapf(ErrNoOutput, "amplifier %d", n)
				}
				return all[len(all)-1], nil
			default:
				return 0, errors.Errorf("amplifier %d stopped: %v", n, r)
			}
		}
		if !produced {
			return 0, ErrStalled
		}
	}
}
