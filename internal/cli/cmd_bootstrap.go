package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newBootstrapCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the records database and any missing tables",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Opening the store runs the bootstrapper.
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				requests, err := store.Repos.DocumentRequests.Count(ctx)
				if err != nil {
					return err
				}
				blotters, err := store.Repos.Blotters.Count(ctx)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, map[string]int64{"requests": requests, "blotters": blotters})
				}
				_, err = fmt.Fprintf(deps.out, "schema ready (requests=%d blotters=%d)\n", requests, blotters)
				return err
			})
		},
	}
}
