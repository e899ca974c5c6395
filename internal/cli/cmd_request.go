package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/services/printer"
	"github.com/spf13/cobra"
)

func newRequestCommand(deps commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Document requests",
	}
	cmd.AddCommand(
		newRequestListCommand(deps),
		newRequestShowCommand(deps),
		newRequestAddCommand(deps),
		newRequestStatusCommand(deps),
		newRequestDeleteCommand(deps),
		newRequestSlipCommand(deps),
	)
	return cmd
}

func newRequestListCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List document requests, newest first",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				requests, err := store.Repos.DocumentRequests.GetAll(ctx)
				if err != nil {
					return err
				}
				if deps.globals.JSON {
					return printJSON(deps.out, requests)
				}
				for _, rec := range requests {
					if _, err := fmt.Fprintf(deps.out, "%s %s %q status=%q filed=%s\n",
						rec.RequestID, rec.Type, rec.RequesterName, rec.Status, rec.DateFiled); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newRequestShowCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <request-id>",
		Short: "Show one document request",
		Args:  exactArgs(1, "exactly one request id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				rec, err := store.Repos.DocumentRequests.GetByRequestID(ctx, args[0])
				if err != nil {
					return err
				}
				return printDocumentRequest(deps, rec)
			})
		},
	}
}

func newRequestAddCommand(deps commandDeps) *cobra.Command {
	var (
		rec    models.DocumentRequest
		pickup string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "File a document request",
		Args:  exactArgs(0, "flags only"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rec.Type == "" || rec.RequesterName == "" {
				return usageErrorf("request add requires --type and --name")
			}
			if pickup != "" {
				date, err := models.ParseDate(pickup)
				if err != nil {
					return usageErrorf("request add --pickup: %v", err)
				}
				rec.PickupDate = &date
			}
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				if _, err := store.Repos.DocumentRequests.Insert(ctx, &rec); err != nil {
					return err
				}
				return printDocumentRequest(deps, &rec)
			})
		},
	}
	cmd.Flags().StringVar(&rec.Type, "type", "", "Document type")
	cmd.Flags().StringVar(&rec.RequesterName, "name", "", "Requester name")
	cmd.Flags().StringVar(&rec.ContactNumber, "contact", "", "Contact number")
	cmd.Flags().StringVar(&rec.Purpose, "purpose", "", "Purpose")
	cmd.Flags().StringVar(&pickup, "pickup", "", "Pickup date (yyyy-mm-dd)")
	cmd.Flags().IntVar(&rec.Copies, "copies", 1, "Number of copies")
	cmd.Flags().StringVar(&rec.AdditionalRequirements, "requirements", "", "Additional requirements")
	return cmd
}

func newRequestStatusCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "status <request-id> <status>",
		Short: "Change the status of a document request",
		Args:  exactArgs(2, "a request id and a status"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				if err := store.Repos.DocumentRequests.UpdateStatus(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(deps.out, "%s -> %s\n", args[0], args[1])
				return err
			})
		},
	}
}

func newRequestDeleteCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <request-id>",
		Short: "Delete a document request",
		Args:  exactArgs(1, "exactly one request id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				if err := store.Repos.DocumentRequests.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(deps.out, "deleted %s\n", args[0])
				return err
			})
		},
	}
}

func newRequestSlipCommand(deps commandDeps) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "slip <request-id>",
		Short: "Write the printable claim slip as PDF",
		Args:  exactArgs(1, "exactly one request id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), deps, func(ctx context.Context, store *Store) error {
				rec, err := store.Repos.DocumentRequests.GetByRequestID(ctx, args[0])
				if err != nil {
					return err
				}
				data, err := printer.RequestSlipPDF(rec)
				if err != nil {
					return err
				}
				path := outPath
				if path == "" {
					path = rec.RequestID + ".pdf"
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				_, err = fmt.Fprintf(deps.out, "wrote %s\n", path)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default <request-id>.pdf)")
	return cmd
}

func printDocumentRequest(deps commandDeps, rec *models.DocumentRequest) error {
	if deps.globals.JSON {
		return printJSON(deps.out, rec)
	}
	pickup := "-"
	if rec.PickupDate != nil {
		pickup = rec.PickupDate.String()
	}
	_, err := fmt.Fprintf(deps.out,
		"request_id=%s\ntype=%s\nrequester=%s\nstatus=%s\nfiled=%s\npickup=%s\ncopies=%d\ncontact=%s\npurpose=%s\nrequirements=%s\n",
		rec.RequestID, rec.Type, rec.RequesterName, rec.Status, rec.DateFiled, pickup,
		rec.Copies, rec.ContactNumber, rec.Purpose, rec.AdditionalRequirements)
	return err
}
