package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/textenc/internal/file"
	"github.com/Cyclone1070/textenc/internal/textcodec"
)

func newConvertCommand(deps *Dependencies) *cobra.Command {
	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert FILE --to ENCODING",
		Short: "Re-encode a text file (UTF-8, UTF-8-BOM, UTF-16-BE, UTF-16-LE)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return &usageError{Cause: errors.New(`required flag "--to" not set`)}
			}
			enc, err := textcodec.ParseEncoding(to)
			if err != nil {
				return err
			}

			store := deps.store()
			f, err := store.Open(args[0])
			if err != nil {
				return err
			}

			if binary, ok := f.Content().(file.BinaryContent); ok && binary.Cause != nil {
				return fmt.Errorf("cannot convert %s: %w", f.Path(), binary.Cause)
			}
			converted, err := store.Convert(f, enc)
			if err != nil {
				return fmt.Errorf("cannot convert %s: %w", f.Path(), err)
			}

			if output != "" {
				converted = converted.WithPath(output)
			}
			if err := store.Save(converted); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s (%s)\n",
				f.Path(), file.Label(f.Content()), enc, converted.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target encoding")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this path instead of in place")
	return cmd
}
