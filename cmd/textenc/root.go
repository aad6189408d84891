package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errFilesFailed is returned after per-file failures have been reported.
var errFilesFailed = errors.New("one or more files failed")

// usageError marks bad flags or arguments.
type usageError struct {
	Cause error
}

func (e *usageError) Error() string { return e.Cause.Error() }

func (e *usageError) Unwrap() error { return e.Cause }

func (e *usageError) InvalidInput() bool { return true }

// usageArgs tags argument validation failures as invalid input.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{Cause: err}
		}
		return nil
	}
}

func newRootCommand(deps *Dependencies) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "textenc",
		Short:         "Detect and convert UTF-8 / UTF-16 text file encodings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			cfg, err := deps.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config %s: %w", cfgFile, err)
			}
			deps.Config = cfg
			return nil
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{Cause: err}
	})
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/textenc/config.json)")

	root.AddCommand(
		newCatCommand(deps),
		newDetectCommand(deps),
		newConvertCommand(deps),
		newCheckCommand(deps),
	)
	return root
}
