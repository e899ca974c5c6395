package cli

import (
	"context"
	"fmt"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/spf13/cobra"
)

func newBlotterCommand(deps commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blotter",
		Short: "Blotter reports",
	}
	cmd.AddCommand(
		newBlotterListCommand(deps),
		newBlotterShowCommand(deps),
		newBlotterAddCommand(deps),
		newBlotterStatusCommand(deps),
		newBlotterDeleteCommand(deps),
	)
	return cmd
}

func newBlotterListCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List blotter reports, newest first",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				blotters, err := store.Repos.Blotters.GetAll(ctx)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, blotters)
				}
				for _, rec := range blotters {
					if _, err := fmt.Fprintf(deps.out, "%s %s priority=%s complainant=%q status=%q reported=%s\n",
						rec.CaseNo, rec.ReportType, rec.PriorityLevel, rec.Complainant, rec.Status, rec.DateReported); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newBlotterShowCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <case-no>",
		Short: "Show one blotter report",
		Args:  exactArgs(1, "exactly one case number"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				rec, err := store.Repos.Blotters.GetByCaseNo(ctx, args[0])
				if err != nil {
					return err
				}
				return printBlotter(deps, rec)
			})
		},
	}
}

func newBlotterAddCommand(deps commandDeps) *cobra.Command {
	var (
		rec      models.BlotterRecord
		incident string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "File a blotter report",
		Args:  exactArgs(0, "flags only"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rec.Complainant == "" {
				return usageErrorf("blotter add requires --complainant")
			}
			if incident != "" {
				date, err := models.ParseDate(incident)
				if err != nil {
					return usageErrorf("blotter add --incident-date: %v", err)
				}
				rec.IncidentDate = date
			}
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				if _, err := store.Repos.Blotters.Insert(ctx, &rec); err != nil {
					return err
				}
				return printBlotter(deps, &rec)
			})
		},
	}
	cmd.Flags().StringVar(&rec.ReportType, "type", "", "Report type")
	cmd.Flags().StringVar(&rec.PriorityLevel, "priority", "", "Priority level")
	cmd.Flags().StringVar(&rec.Barangay, "barangay", "", "Barangay")
	cmd.Flags().StringVar(&rec.Complainant, "complainant", "", "Complainant")
	cmd.Flags().StringVar(&rec.Respondent, "respondent", "", "Respondent")
	cmd.Flags().StringVar(&incident, "incident-date", "", "Incident date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&rec.IncidentLocation, "location", "", "Incident location")
	cmd.Flags().StringVar(&rec.Description, "description", "", "Description")
	cmd.Flags().StringVar(&rec.Witnesses, "witnesses", "", "Witnesses")
	return cmd
}

func newBlotterStatusCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "status <case-no> <status>",
		Short: "Change the status of a blotter report",
		Args:  exactArgs(2, "a case number and a status"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				if err := store.Repos.Blotters.UpdateStatus(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(deps.out, "%s -> %s\n", args[0], args[1])
				return err
			})
		},
	}
}

func newBlotterDeleteCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <case-no>",
		Short: "Delete a blotter report",
		Args:  exactArgs(1, "exactly one case number"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				if err := store.Repos.Blotters.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(deps.out, "deleted %s\n", args[0])
				return err
			})
		},
	}
}

func printBlotter(deps commandDeps, rec *models.BlotterRecord) error {
	if deps.globals.JSON {
		return printJSON(deps.out, rec)
	}
	_, err := fmt.Fprintf(deps.out,
		"case_no=%s\ntype=%s\npriority=%s\nstatus=%s\nbarangay=%s\ncomplainant=%s\nrespondent=%s\nincident=%s at %s\nwitnesses=%s\nreported=%s\ndescription=%s\n",
		rec.CaseNo, rec.ReportType, rec.PriorityLevel, rec.Status, rec.Barangay, rec.Complainant,
		rec.Respondent, rec.IncidentDate, rec.IncidentLocation, rec.Witnesses, rec.DateReported, rec.Description)
	return err
}
