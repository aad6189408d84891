package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cyclone1070/textenc/internal/file"
)

func newCheckCommand(deps *Dependencies) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Verify that each file decodes and re-encodes to identical bytes",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if recursive {
				expanded, err := expandPaths(deps, args)
				if err != nil {
					return err
				}
				args = expanded
			}
			results, err := scanFiles(cmd, deps, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := false
			for i, r := range results {
				switch {
				case r.err != nil:
					fmt.Fprintf(out, "FAIL  %s: %v\n", args[i], r.err)
					failed = true
				case !r.entry.RoundTrip:
					fmt.Fprintf(out, "FAIL  %s: re-encoding as %s changes the bytes\n", r.entry.Path, r.entry.Encoding)
					failed = true
				default:
					if binary, ok := r.file.Content().(file.BinaryContent); ok {
						if binary.Cause != nil {
							fmt.Fprintf(out, "FAIL  %s: %v\n", r.entry.Path, binary.Cause)
							failed = true
							continue
						}
						fmt.Fprintf(out, "skip  %s (binary)\n", r.entry.Path)
						continue
					}
					fmt.Fprintf(out, "ok    %s (%s)\n", r.entry.Path, r.entry.Encoding)
				}
			}

			if failed {
				return errFilesFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into directories, honouring .gitignore")
	return cmd
}
