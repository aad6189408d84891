package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Cyclone1070/textenc/internal/config"
	"github.com/Cyclone1070/textenc/internal/file"
	"github.com/Cyclone1070/textenc/internal/report"
)

// scanResult is the outcome for one path; err is set when it could not be read.
type scanResult struct {
	file  *file.File
	entry report.Entry
	err   error
}

// scanFiles reads and classifies paths concurrently, at most
// files.concurrency at a time. Results keep the order of paths.
func scanFiles(cmd *cobra.Command, deps *Dependencies, paths []string) ([]scanResult, error) {
	store := deps.store()
	results := make([]scanResult, len(paths))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(deps.Config.Files.Concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := store.Read(path)
			if err != nil {
				results[i].err = err
				return nil
			}
			f := file.FromBytes(path, raw)
			results[i] = scanResult{file: f, entry: report.FromFile(f, raw)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func newDetectCommand(deps *Dependencies) *cobra.Command {
	var (
		asJSON    bool
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "detect FILE...",
		Short: "Report the encoding of each file",
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

			entries := make([]report.Entry, 0, len(results))
			failed := false
			for _, r := range results {
				if r.err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", r.err)
					failed = true
					continue
				}
				entries = append(entries, r.entry)
			}

			out := cmd.OutOrStdout()
			if asJSON || deps.Config.Output.Format == config.FormatJSON {
				err = report.WriteJSON(out, entries)
			} else {
				err = report.WriteText(out, entries, deps.Config.Output.Color && deps.IsTerminal(out))
			}
			if err != nil {
				return err
			}

			if failed {
				return errFilesFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into directories, honouring .gitignore")
	return cmd
}
