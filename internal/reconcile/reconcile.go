package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bindery/internal/classify"
	"bindery/internal/config"
	"bindery/internal/logging"
	"bindery/internal/pool"
	"bindery/internal/resolve"
	"bindery/internal/sheet"
)

// Recorder receives per-row outcomes as the pass progresses. The ledger
// implements it; a nil recorder disables recording.
type Recorder interface {
	RecordResolved(ctx context.Context, category, title, file string) error
	RecordUnresolved(ctx context.Context, category, title string, prefixes []string) error
}

// Summary counts the outcomes of one pass.
type Summary struct {
	Resolved   int
	Unresolved int
}

// Reconciler binds the classifier and resolver into a pass runner.
type Reconciler struct {
	rules    *classify.Ruleset
	resolver *resolve.Resolver
	logger   *slog.Logger
	recorder Recorder
}

// New constructs a Reconciler from validated configuration.
func New(cfg *config.Config, logger *slog.Logger) *Reconciler {
	r := &Reconciler{
		rules:    classify.NewRuleset(cfg),
		resolver: resolve.New(cfg),
	}
	r.SetLogger(logger)
	return r
}

// SetLogger updates the reconciler's logging destination.
func (r *Reconciler) SetLogger(logger *slog.Logger) {
	r.logger = logging.NewComponentLogger(logger, "reconcile")
}

// SetRecorder attaches a pass recorder. Recording failures are logged, never
// fatal: the ledger is operator history, not pass state.
func (r *Reconciler) SetRecorder(recorder Recorder) {
	r.recorder = recorder
}

// Run executes a full reconciliation pass over the grid against the pool
// snapshot. It returns the grouped output tree and a summary, or an error
// when a spreadsheet category has no configured prefix tokens.
func (r *Reconciler) Run(ctx context.Context, grid *sheet.Grid, snap *pool.Snapshot) (*Tree, Summary, error) {
	tree := NewTree()
	summary := Summary{}
	names := snap.Names()
	claimed := make(map[string]string)

	for rowIdx, row := range grid.Rows {
		for colIdx, cell := range row {
			if colIdx >= len(grid.Headers) {
				break
			}
			category := strings.TrimSpace(grid.Headers[colIdx])
			if category == "" {
				continue
			}
			title := strings.TrimSpace(cell)
			if title == "" {
				continue
			}

			result, err := r.rules.Classify(category, title)
			if err != nil {
				return nil, Summary{}, fmt.Errorf("row %d column %d: %w", rowIdx+2, colIdx+1, err)
			}
			if result.Title == "" {
				r.logger.Warn("title empty after marker stripping",
					logging.String(logging.FieldCategory, category),
					logging.String(logging.FieldTitle, title),
					logging.Int(logging.FieldRow, rowIdx+2),
				)
			}

			file, ok := r.resolver.Resolve(result.Prefixes, names)
			if !ok {
				summary.Unresolved++
				r.logger.Warn("no file matched candidate prefixes",
					logging.String(logging.FieldCategory, category),
					logging.String(logging.FieldTitle, result.Title),
					logging.String(logging.FieldPrefixes, strings.Join(result.Prefixes, ", ")),
				)
				r.record(ctx, func(rec Recorder) error {
					return rec.RecordUnresolved(ctx, category, result.Title, result.Prefixes)
				})
				continue
			}

			if prior, dup := claimed[file]; dup {
				r.logger.Warn("file claimed by multiple rows",
					logging.String(logging.FieldFile, file),
					logging.String(logging.FieldTitle, result.Title),
					logging.String("previous_title", prior),
				)
			} else {
				claimed[file] = result.Title
			}

			summary.Resolved++
			tree.Add(category, Entry{Title: result.Title, File: file})
			r.logger.Info("entry resolved",
				logging.String(logging.FieldCategory, category),
				logging.String(logging.FieldTitle, result.Title),
				logging.String(logging.FieldFile, file),
			)
			r.record(ctx, func(rec Recorder) error {
				return rec.RecordResolved(ctx, category, result.Title, file)
			})
		}
	}

	r.logger.Info("pass complete",
		logging.Int("resolved", summary.Resolved),
		logging.Int("unresolved", summary.Unresolved),
		logging.Int("pool_files", snap.Len()),
	)
	return tree, summary, nil
}

func (r *Reconciler) record(ctx context.Context, fn func(Recorder) error) {
	if r.recorder == nil {
		return
	}
	if err := fn(r.recorder); err != nil {
		r.logger.Warn("ledger record failed", logging.Error(err))
	}
}
