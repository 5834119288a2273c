package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"bindery/internal/ledger"
	"bindery/internal/logging"
	"bindery/internal/manifest"
	"bindery/internal/pool"
	"bindery/internal/reconcile"
	"bindery/internal/sheet"
)

type reconcileReport struct {
	PassID       string                    `json:"pass_id,omitempty"`
	Archive      int                       `json:"archive_version"`
	PoolFiles    int                       `json:"pool_files"`
	Resolved     int                       `json:"resolved"`
	Unresolved   int                       `json:"unresolved"`
	ManifestPath string                    `json:"manifest_path,omitempty"`
	Categories   []reconcile.CategoryGroup `json:"categories"`
}

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var skipManifest bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run a reconciliation pass against the pinned archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "bindery.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire pass lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another reconciliation pass is already running against %s", cfg.ArchiveDir())
			}
			defer lock.Unlock()

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			grid, err := sheet.Load(cfg.SpreadsheetPath())
			if err != nil {
				return fmt.Errorf("load spreadsheet: %w", err)
			}
			snap, err := pool.Take(cfg.ResourcesDir())
			if err != nil {
				return fmt.Errorf("snapshot resources: %w", err)
			}

			runner := reconcile.New(cfg, logger)

			var pass *ledger.Pass
			if cfg.Ledger.Enabled {
				store, err := ledger.Open(cfg.LedgerPath())
				if err != nil {
					return fmt.Errorf("open ledger: %w", err)
				}
				defer store.Close()

				pass, err = store.BeginPass(cmd.Context(), cfg.Archive.ContentVersion)
				if err != nil {
					return fmt.Errorf("begin ledger pass: %w", err)
				}
				runner.SetRecorder(pass)
			}

			tree, summary, err := runner.Run(cmd.Context(), grid, snap)
			if err != nil {
				return err
			}
			if pass != nil {
				if err := pass.Finish(cmd.Context()); err != nil {
					logger.Warn("finish ledger pass", logging.Error(err))
				}
			}

			report := reconcileReport{
				Archive:    cfg.Archive.ContentVersion,
				PoolFiles:  snap.Len(),
				Resolved:   summary.Resolved,
				Unresolved: summary.Unresolved,
				Categories: tree.Groups(),
			}
			if pass != nil {
				report.PassID = pass.ID
			}

			if !skipManifest {
				channel := manifest.Build(cfg, tree)
				if err := channel.WriteFile(cfg.ManifestPath()); err != nil {
					return err
				}
				report.ManifestPath = cfg.ManifestPath()
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			return renderReconcileReport(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the pass report as JSON")
	cmd.Flags().BoolVar(&skipManifest, "no-manifest", false, "Skip writing the channel manifest")
	return cmd
}

func renderReconcileReport(cmd *cobra.Command, report reconcileReport) error {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(report.Categories))
	for _, group := range report.Categories {
		rows = append(rows, []string{group.Category, strconv.Itoa(len(group.Entries))})
	}
	if len(rows) > 0 {
		rendered := renderTable(out, []string{"Category", "Resolved"}, rows,
			[]columnAlignment{alignLeft, alignRight})
		fmt.Fprintln(out, rendered)
	}

	fmt.Fprintf(out, "Archive version: %d (%d files)\n", report.Archive, report.PoolFiles)
	fmt.Fprintf(out, "Resolved %d, unresolved %d\n", report.Resolved, report.Unresolved)
	if report.PassID != "" {
		fmt.Fprintf(out, "Ledger pass: %s\n", report.PassID)
	}
	if report.ManifestPath != "" {
		fmt.Fprintf(out, "Manifest written to %s\n", report.ManifestPath)
	}
	if report.Unresolved > 0 {
		fmt.Fprintln(out, "Run `bindery unresolved` to list the rows that matched no file.")
	}
	return nil
}
