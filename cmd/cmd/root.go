// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ostafen/smushinfo/internal/config"
	"github.com/ostafen/smushinfo/internal/env"
	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/internal/logger"
	"github.com/ostafen/smushinfo/internal/report"
)

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - describe Smash Ultimate asset files",
	}

	rootCmd.PersistentFlags().String("config", "", "configuration file path")
	rootCmd.PersistentFlags().String("log-level", "INFO", "logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().String("labels", "", "hash label file used to print parameter names")

	rootCmd.AddCommand(
		DefineInfoCommand(),
		DefineFormatsCommand(),
		DefineScanCommand(),
		DefineMountCommand(),
		DefineServeCommand(),
		DefineVersionCommand(),
	)
	return rootCmd
}

// app holds what every command needs once flags, environment and config
// file have been resolved.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	dispatcher *report.Dispatcher
}

func setup(cmd *cobra.Command) (*app, error) {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}

	log := logger.New(cmd.ErrOrStderr(), logger.ParseLevel(cfg.LogLevel))

	var labels *hash40.Labels
	if cfg.Labels != "" {
		labels, err = hash40.LoadLabels(cfg.Labels)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded %d labels from %s", labels.Len(), cfg.Labels)
	}

	return &app{
		cfg:        cfg,
		log:        log,
		dispatcher: report.New(report.WithLabels(labels)),
	}, nil
}
