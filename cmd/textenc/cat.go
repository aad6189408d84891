package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/textenc/internal/file"
)

// binaryTerminalError is returned when binary content would be printed to a terminal.
type binaryTerminalError struct {
	Path string
}

func (e *binaryTerminalError) Error() string {
	return fmt.Sprintf("%s is binary; use --force to print it to a terminal", e.Path)
}

func (e *binaryTerminalError) InvalidInput() bool { return true }

func newCatCommand(deps *Dependencies) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cat FILE",
		Short: "Print a file with its detected encoding",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := deps.store().Open(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, ok := f.Content().(file.BinaryContent); ok && !force && deps.IsTerminal(out) {
				return &binaryTerminalError{Path: f.Path()}
			}

			_, err = fmt.Fprintln(out, f.String())
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "print binary content even to a terminal")
	return cmd
}
