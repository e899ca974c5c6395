package cli

import (
	"context"
	"fmt"

	"github.com/barangayan/brgyems/internal/services/dashboard"
	"github.com/spf13/cobra"
)

func newFeedbackCommand(deps commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Resident feedback",
	}
	cmd.AddCommand(newFeedbackAddCommand(deps), newFeedbackLatestCommand(deps))
	return cmd
}

func newFeedbackAddCommand(deps commandDeps) *cobra.Command {
	var feedbackType, message, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record feedback",
		Args:  exactArgs(0, "flags only"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return usageErrorf("feedback add requires --message")
			}
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				rec, err := store.Repos.Feedback.Insert(ctx, feedbackType, message, name)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, rec)
				}
				_, err = fmt.Fprintf(deps.out, "recorded feedback %d (%s)\n", rec.ID, rec.Type)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&feedbackType, "type", "", "Feedback type")
	cmd.Flags().StringVar(&message, "message", "", "Message")
	cmd.Flags().StringVar(&name, "name", "", "Name of the submitter")
	return cmd
}

func newFeedbackLatestCommand(deps commandDeps) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the most recent feedback",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				feedback, err := store.Repos.Feedback.GetLatest(ctx, limit)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, feedback)
				}
				for _, rec := range feedback {
					if _, err := fmt.Fprintf(deps.out, "%s [%s] %s: %s\n",
						rec.CreatedAt, rec.Type, rec.UserName, rec.Message); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum entries to show")
	return cmd
}

func newSummaryCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard totals",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				summary, err := dashboard.NewService(store.Repos).Summary(ctx)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, summary)
				}
				_, err = fmt.Fprintf(deps.out, "requests=%d pending=%d blotters=%d feedback=%d\n",
					summary.TotalRequests, summary.PendingRequests, summary.TotalBlotters, len(summary.LatestFeedback))
				return err
			})
		},
	}
}
