package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cryptotable/config"
	"cryptotable/internal/coinmarketcap/pipeline"
	"cryptotable/logger"
	"cryptotable/pkg/coinmarketcap"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cryptotable [-s SYMBOL...] [-o PATH] [--cp]",
		Short: "Export latest CoinMarketCap quotes to a spreadsheet sorted by price",
		Long: `Fetch the latest quotes for a set of ticker symbols from CoinMarketCap and
write them to a spreadsheet sorted by price. Without -s, or with --cp, the
built-in token catalog is used. The API key is read from API_KEY.

Examples:
  cryptotable -s BTC ETH SOL
  cryptotable --cp -o catalog.xlsx
  cryptotable -s BTC,ETH -o quotes.csv`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, out)
		},
	}
	cmd.SetOut(out)

	flags := cmd.Flags()
	flags.StringSliceP("symbols", "s", nil, "symbols to fetch (e.g. BTC ETH SOL)")
	flags.StringP("output", "o", config.DefaultOutput, "output spreadsheet path (.xlsx or .csv)")
	flags.Bool("cp", false, "use the built-in token catalog")
	flags.String("config", "", "config file path (default: ./config/config.yaml)")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")

	return cmd
}

func run(cmd *cobra.Command, args []string, out io.Writer) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(out, "Error loading config: %v\n", err)
		return err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(out, "Error creating logger: %v\n", err)
		return err
	}
	defer log.Sync()

	opts := optionsFromFlags(cmd, args, cfg)

	if cfg.CMC.APIKey == "" {
		log.Warn("API key not set, the quotes request will be unauthenticated")
	}

	runner := &pipeline.Runner{
		Fetcher: coinmarketcap.NewClient(cfg.CMC.BaseURL, cfg.CMC.APIKey, cfg.CMC.Timeout),
		Logger:  log,
		Out:     out,
	}

	if _, err := runner.Run(context.Background(), opts); err != nil {
		stage, _ := pipeline.StageOf(err)
		log.Error("run failed", zap.String("stage", string(stage)), zap.Error(err))
		if stage == pipeline.StageExport {
			fmt.Fprintf(out, "Error exporting table: %v\n", err)
		} else {
			fmt.Fprintf(out, "Error fetching data: %v\n", err)
		}
		return err
	}
	return nil
}

// optionsFromFlags merges flags over config. Positional arguments extend -s so
// "-s BTC ETH SOL" requests all three symbols.
func optionsFromFlags(cmd *cobra.Command, args []string, cfg *config.Config) pipeline.Options {
	flags := cmd.Flags()

	symbols, _ := flags.GetStringSlice("symbols")
	symbols = append(symbols, args...)
	useCatalog, _ := flags.GetBool("cp")

	output := cfg.Export.Output
	if flags.Changed("output") || output == "" {
		output, _ = flags.GetString("output")
	}

	return pipeline.Options{
		Symbols:    symbols,
		UseCatalog: useCatalog,
		Output:     output,
		Currency:   cfg.CMC.Currency,
		Sheet:      cfg.Export.SheetName,
	}
}
