package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cryptotable/internal/coinmarketcap/catalog"
	"cryptotable/internal/coinmarketcap/export"
	"cryptotable/internal/coinmarketcap/table"
	"cryptotable/pkg/coinmarketcap"

	"go.uber.org/zap"
)

// QuoteFetcher is the market data source; *coinmarketcap.Client satisfies it.
type QuoteFetcher interface {
	QuotesLatest(ctx context.Context, symbols []string) (*coinmarketcap.QuotesResponse, error)
}

type Options struct {
	Symbols    []string // user supplied; empty selects the catalog
	UseCatalog bool
	Output     string
	Currency   string // quote sub-object, defaults to USD
	Sheet      string
	Exporter   export.Exporter // nil picks one from Output
}

type Result struct {
	Requested []string
	Table     table.Table // sorted, with placeholders
	Missing   []string
	Output    string
}

// Runner executes one fetch-build-export pass. Operator-facing lines go to Out.
type Runner struct {
	Fetcher QuoteFetcher
	Logger  *zap.Logger
	Out     io.Writer
}

// Run collects symbols, fetches quotes, builds and reconciles the table and
// exports it. Nothing is written unless every earlier stage succeeded.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	currency := opts.Currency
	if currency == "" {
		currency = "USD"
	}

	// Collecting symbols
	symbols := catalog.Resolve(opts.UseCatalog, opts.Symbols)
	logger.Info("resolved symbols",
		zap.Int("count", len(symbols)),
		zap.Bool("catalog", opts.UseCatalog || len(opts.Symbols) == 0))

	// Fetching / building
	resp, err := r.Fetcher.QuotesLatest(ctx, symbols)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}
	if resp == nil {
		return nil, &StageError{Stage: StageBuild, Err: errors.New("empty quotes response")}
	}
	logger.Debug("fetched quotes", zap.Int("assets", len(resp.Data)), zap.Int("credits", resp.Status.CreditCount))

	built := table.Build(resp, currency)
	reconciled, missing := table.Reconcile(built, symbols)
	if len(missing) > 0 {
		fmt.Fprintf(out, "Missing symbols: %s\n", formatList(missing))
		logger.Warn("symbols missing from response", zap.Strings("symbols", missing))
	}
	sorted := table.SortByPrice(reconciled)

	// Exporting
	exp := opts.Exporter
	if exp == nil {
		exp = export.ForPath(opts.Output, opts.Sheet)
	}
	if err := exp.Export(opts.Output, sorted); err != nil {
		return nil, &StageError{Stage: StageExport, Err: err}
	}
	fmt.Fprintf(out, "Exported to %s\n", opts.Output)
	logger.Info("exported table",
		zap.String("path", opts.Output),
		zap.Int("rows", len(sorted)),
		zap.Int("missing", len(missing)))

	return &Result{
		Requested: symbols,
		Table:     sorted,
		Missing:   missing,
		Output:    opts.Output,
	}, nil
}

// formatList renders symbols as ['A', 'B'].
func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
