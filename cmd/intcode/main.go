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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configKey  = "config"
	debugKey   = "debug"
	traceKey   = "trace"
	metricsKey = "metrics"
)

// app holds the state shared by all commands.
type app struct {
	v       *viper.Viper
	log     *zap.Logger
	debug   bool
	trace   bool
	reg     *prometheus.Registry
	metrics *vm.Metrics
}

func newApp() *app {
	return &app{v: viper.New(), log: zap.NewNop()}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "intcode",
		Short:             "Runs, assembles and disassembles Intcode programs",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	flags := root.PersistentFlags()
	flags.String(configKey, "", "read configuration from `file`")
	flags.Bool(debugKey, false, "enable debug diagnostics")
	flags.Bool(traceKey, false, "log every executed instruction")
	flags.Bool(metricsKey, false, "print execution metrics to stderr on exit")

	root.AddCommand(
		a.runCommand(),
		a.ampCommand(),
		a.asmCommand(),
		a.disasmCommand(),
	)
	return root
}

// setup binds the flags of the command being executed to the configuration
// and builds the logger and metrics.
func (a *app) setup(c *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(c.Flags()); err != nil {
		return errors.Wrap(err, "flag binding failed")
	}
	a.v.SetEnvPrefix("intcode")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if fn := a.v.GetString(configKey); fn != "" {
		a.v.SetConfigFile(fn)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "cannot read configuration file %s", fn)
		}
	}

	a.debug = a.v.GetBool(debugKey)
	a.trace = a.v.GetBool(traceKey)
	log, err := newLogger(a.debug, a.trace)
	if err != nil {
		return err
	}
	a.log = log

	if a.v.GetBool(metricsKey) {
		a.reg = prometheus.NewRegistry()
		if a.metrics, err = vm.NewMetrics(a.reg); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(debug, trace bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug || trace {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	if !debug {
		cfg.Development = false
		cfg.DisableStacktrace = true
		cfg.DisableCaller = true
	}
	log, err := cfg.Build()
	return log, errors.Wrap(err, "cannot build logger")
}

// vmOptions returns the VM options selected by the global flags.
func (a *app) vmOptions(opts ...vm.Option) []vm.Option {
	if a.trace {
		opts = append(opts, vm.Trace(a.log))
	}
	if a.metrics != nil {
		opts = append(opts, vm.WithMetrics(a.metrics))
	}
	return opts
}

func (a *app) finish(w io.Writer) error {
	a.log.Sync()
	if a.reg == nil {
		return nil
	}
	return dumpMetrics(a.reg, w)
}

func atExit(err error, debug bool) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	os.Exit(1)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()
	err := a.rootCommand().ExecuteContext(ctx)
	if ferr := a.finish(os.Stderr); err == nil {
		err = ferr
	}
	stop()
	atExit(err, a.debug)
}
