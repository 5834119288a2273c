package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bindery/internal/ledger"
)

type unresolvedReport struct {
	PassID     string         `json:"pass_id"`
	StartedAt  string         `json:"started_at"`
	Unresolved []ledger.Entry `json:"unresolved"`
}

func newUnresolvedCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var passID string

	cmd := &cobra.Command{
		Use:   "unresolved",
		Short: "List rows the latest pass could not match to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := ledger.Open(cfg.LedgerPath())
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			defer store.Close()

			report := unresolvedReport{PassID: strings.TrimSpace(passID)}
			if report.PassID == "" {
				last, err := store.LastPass(cmd.Context())
				if err != nil {
					return fmt.Errorf("look up latest pass: %w", err)
				}
				if last == nil {
					if jsonOutput {
						return writeJSON(cmd, report)
					}
					fmt.Fprintln(cmd.OutOrStdout(), "No reconciliation passes recorded yet.")
					return nil
				}
				report.PassID = last.ID
				report.StartedAt = last.StartedAt.Format("2006-01-02 15:04:05")
			}

			entries, err := store.Unresolved(cmd.Context(), report.PassID)
			if err != nil {
				return fmt.Errorf("list unresolved entries: %w", err)
			}
			report.Unresolved = entries

			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "Pass %s resolved every row.\n", report.PassID)
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Category, entry.Title, strings.Join(entry.Prefixes, ", ")})
			}
			rendered := renderTable(out, []string{"Category", "Title", "Tried Prefixes"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft})
			fmt.Fprintln(out, rendered)
			fmt.Fprintf(out, "%d unresolved row(s) in pass %s\n", len(entries), report.PassID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the listing as JSON")
	cmd.Flags().StringVar(&passID, "pass", "", "Inspect a specific pass instead of the latest")
	return cmd
}
