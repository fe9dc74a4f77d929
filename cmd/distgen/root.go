/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mukherjeesagar/simulation-of-probabilities/internal/logging"
	"github.com/mukherjeesagar/simulation-of-probabilities/rng"
)

const (
	cfgConfigFile = "config"
	cfgSeed       = "seed"
	cfgCount      = "count"
	cfgLogFile    = "log.file"
	cfgLogFmt     = "log.format"
	cfgLogLevel   = "log.level"
)

var (
	logger = logging.GetLogger("distgen")

	loggingOnce sync.Once
	loggingErr  error
)

// app carries the configuration shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	out     io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{
		v:   viper.New(),
		out: out,
	}

	rootCmd := &cobra.Command{
		Use:   "distgen",
		Short: "Draw random variates from standard probability distributions",
		Long: `distgen draws variates with a Lehmer (Park-Miller) generator, modulus 2^31-1
and multiplier 16807, and prints them or summary statistics about them.
A seed of 0 seeds the generator from the monotonic clock.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initCommon,
	}
	rootCmd.SetOut(out)

	persistentFlags := flag.NewFlagSet("", flag.ContinueOnError)
	persistentFlags.StringVar(&a.cfgFile, cfgConfigFile, "", "config file")
	persistentFlags.Uint64(cfgSeed, 0, "generator seed in (0, 2^31-1), 0 seeds from the clock")

	logFmt := logging.FmtLogfmt
	logLevel := logging.LevelWarn
	persistentFlags.String(cfgLogFile, "", "log file (default stderr)")
	persistentFlags.Var(&logFmt, cfgLogFmt, "log format")
	persistentFlags.Var(&logLevel, cfgLogLevel, "log level")
	rootCmd.PersistentFlags().AddFlagSet(persistentFlags)

	rootCmd.AddCommand(
		newSeedCmd(a),
		newUniformCmd(a),
		newSampleCmd(a),
		newDistanceCmd(a),
		newDemoCmd(a),
	)

	return rootCmd
}

// initCommon reads the config file, binds the flags of the command
// being executed and initializes logging.
func (a *app) initCommon(cmd *cobra.Command, args []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", a.cfgFile)
		}
	}

	return a.initLogging()
}

func (a *app) initLogging() error {
	loggingOnce.Do(func() {
		var logLevel logging.Level
		if loggingErr = logLevel.Set(a.v.GetString(cfgLogLevel)); loggingErr != nil {
			return
		}

		var logFmt logging.Format
		if loggingErr = logFmt.Set(a.v.GetString(cfgLogFmt)); loggingErr != nil {
			return
		}

		var w io.Writer = os.Stderr
		if logFile := a.v.GetString(cfgLogFile); logFile != "" {
			if w, loggingErr = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); loggingErr != nil {
				return
			}
		}

		loggingErr = logging.Initialize(w, logFmt, logLevel, nil)
	})

	return loggingErr
}

// generator returns a Generator seeded with the configured seed, or
// from the clock when the seed is 0.
func (a *app) generator() (*rng.Generator, error) {
	seed := a.v.GetUint64(cfgSeed)
	if seed == 0 {
		g := rng.New()
		logger.Info("seeded generator from the clock", "seed", g.State())
		return g, nil
	}

	g, err := rng.NewWithSeed(seed)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --seed")
	}

	return g, nil
}
