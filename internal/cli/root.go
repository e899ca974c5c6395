// Package cli implements brgyctl, the office administrator's command line
// over the records store.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/barangayan/brgyems/internal/buildinfo"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	JSON bool
}

type commandDeps struct {
	out     io.Writer
	open    Opener
	globals *globalOptions
}

// NewRootCommand builds the brgyctl command tree. open is called once per
// command that touches the store.
func NewRootCommand(out io.Writer, open Opener) *cobra.Command {
	globals := &globalOptions{}
	deps := commandDeps{out: out, open: open, globals: globals}

	cmd := &cobra.Command{
		Use:           "brgyctl",
		Short:         "Barangay records administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.PersistentFlags().BoolVar(&globals.JSON, "json", false, "Print output as JSON")

	cmd.AddCommand(
		newVersionCommand(deps),
		newBootstrapCommand(deps),
		newUserCommand(deps),
		newRequestCommand(deps),
		newBlotterCommand(deps),
		newFeedbackCommand(deps),
		newSummaryCommand(deps),
	)
	return cmd
}

func newVersionCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := buildinfo.Fields()
			if deps.globals.JSON {
				return printJSON(deps.out, info)
			}
			_, err := fmt.Fprintf(deps.out, "version=%s commit=%s commit_time=%s build_time=%s\n",
				info["version"], info["commit"], info["commit_time"], info["build_time"])
			return err
		},
	}
}

// withStore opens the records store for the duration of fn
func withStore(ctx context.Context, deps commandDeps, fn func(ctx context.Context, store *Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := deps.open(ctx)
	if err != nil {
		return mapCommandError(err)
	}
	defer store.Close()
	return mapCommandError(fn(ctx, store))
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("%s requires %s", cmd.CommandPath(), usage)
		}
		return nil
	}
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
