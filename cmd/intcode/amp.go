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

package main

import (
	"fmt"

	"github.com/db47h/intcode/amp"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	feedbackKey = "feedback"
	phasesKey   = "phases"
	jobsKey     = "jobs"
	signalKey   = "signal"
)

func (a *app) ampCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "amp PROGRAM",
		Short: "Finds the phase settings that yield the highest amplifier signal",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.maxSignal(c, args[0])
		},
	}
	addAmpFlags(c.Flags())
	return c
}

func addAmpFlags(flags *pflag.FlagSet) {
	flags.BoolP(feedbackKey, "f", false, "connect the amplifiers in a feedback loop")
	flags.StringP(phasesKey, "p", "", "comma separated phase `settings` (default 0-4, or 5-9 in feedback mode)")
	flags.IntP(jobsKey, "j", 0, "number of circuits evaluated concurrently (default GOMAXPROCS)")
	flags.Int64(signalKey, 0, "input signal of the first amplifier")
}

func (a *app) maxSignal(c *cobra.Command, name string) error {
	program, err := vm.Load(name)
	if err != nil {
		return err
	}
	mode := amp.Chain
	if a.v.GetBool(feedbackKey) {
		mode = amp.Feedback
	}
	phases := mode.Phases()
	if s := a.v.GetString(phasesKey); s != "" {
		if phases, err = vm.ParseString(s); err != nil {
			return errors.Wrap(err, "invalid phase settings")
		}
	}

	r, err := amp.MaxSignal(c.Context(), program, phases, mode,
		amp.Workers(a.v.GetInt(jobsKey)),
		amp.Signal(vm.Cell(a.v.GetInt64(signalKey))),
		amp.Logger(a.log),
		amp.VMOptions(a.vmOptions()...))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), r.Signal, r.Phases)
	return errors.Wrap(err, "write failed")
}
