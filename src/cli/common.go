// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/config"
	"github.com/H0llyW00dzZ/pccs-calldata-tools/src/logger"
)

// commonOptions holds the flags shared by both tools, and the logger a run
// reports its failure through.
type commonOptions struct {
	configFile string
	logFormat  string
	log        logger.Logger
}

// bind registers the shared flags and makes cmd report flag parsing errors
// through log.
func (o *commonOptions) bind(cmd *cobra.Command, log logger.Logger) {
	o.log = log
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return o.report(err)
	})

	cmd.Flags().StringVar(&o.configFile, "config", "",
		"path to a JSON or YAML configuration file (or set "+config.EnvConfigFile+")")
	cmd.Flags().StringVar(&o.logFormat, "log-format", "",
		`diagnostic log format, "text" or "json" (overrides configuration)`)
}

// resolve loads the configuration and returns the logger the command should use.
// A JSON log format replaces a text logger with a structured one on the
// command's error stream.
func (o *commonOptions) resolve(cmd *cobra.Command, log logger.Logger) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, nil, err
	}

	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	if cfg.Log.Format == config.LogFormatJSON {
		if _, ok := log.(*logger.StructuredLogger); !ok {
			log = logger.NewStructuredLogger(cmd.ErrOrStderr(), cmd.Name())
		}
	}

	o.log = log
	return cfg, log, nil
}

// report logs a non-nil err once, through the most recently resolved logger,
// and returns it unchanged.
func (o *commonOptions) report(err error) error {
	if err != nil {
		o.log.Errorf("%v", err)
	}
	return err
}

// instruction returns the single selected instruction, or ErrUnknownInstruction.
func instruction(flags map[string]bool) (string, error) {
	selected := ""
	for name, set := range flags {
		if !set {
			continue
		}
		if selected != "" {
			return "", ErrUnknownInstruction
		}
		selected = name
	}

	if selected == "" {
		return "", ErrUnknownInstruction
	}
	return selected, nil
}
