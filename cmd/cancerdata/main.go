// Copyright 2025 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
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

	"github.com/gorse-io/cancerdata/base/log"
	"github.com/gorse-io/cancerdata/cmd/version"
	"github.com/gorse-io/cancerdata/config"
	"github.com/gorse-io/cancerdata/dataset"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "cancerdata",
		Short:         "Inspect train and validation splits of the breast cancer dataset.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			log.SetLogger(cmd.Flags(), debug)
		},
	}
	flags := rootCommand.PersistentFlags()
	log.AddFlags(flags)
	flags.Bool("debug", false, "use debug log mode")
	flags.StringP("config", "c", "", "configuration file path")
	flags.String("dir", "", "dataset location (local directory, s3://, gcs:// or azblob://)")
	flags.Int64("seed", dataset.DefaultSeed, "seed of validation sampling")
	flags.Float64("valid-ratio", dataset.DefaultValidRatio, "fraction of rows in the validation split")
	rootCommand.AddCommand(newSplitCommand(), newRowsCommand(), newVersionCommand())
	return rootCommand
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of cancerdata",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.BuildInfo())
		},
	}
}

// loadConfig loads the configuration file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if cmd.Flags().Changed("dir") {
		conf.Dataset.Dir, _ = cmd.Flags().GetString("dir")
	}
	if cmd.Flags().Changed("seed") {
		conf.Dataset.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("valid-ratio") {
		conf.Dataset.ValidRatio, _ = cmd.Flags().GetFloat64("valid-ratio")
	}
	if err = conf.Validate(); err != nil {
		return nil, errors.Annotate(err, "invalid config")
	}
	return conf, nil
}

func splitOptions(conf *config.Config) []dataset.SplitOption {
	return []dataset.SplitOption{
		dataset.WithSeed(conf.Dataset.Seed),
		dataset.WithValidRatio(conf.Dataset.ValidRatio),
	}
}

// contextWithTimeout bounds dataset reads by the configured timeout. A zero timeout never expires.
func contextWithTimeout(conf *config.Config) (context.Context, context.CancelFunc) {
	if conf.Dataset.Timeout > 0 {
		return context.WithTimeout(context.Background(), conf.Dataset.Timeout)
	}
	return context.WithCancel(context.Background())
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
