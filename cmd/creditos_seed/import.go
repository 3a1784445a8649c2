package main

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/creditos/internal/ingest"
	"github.com/DjordjeVuckovic/creditos/internal/storage/factory"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	"github.com/spf13/cobra"
)

type importOptions struct {
	file        string
	mappingPath string
	separator   string
	batchSize   int
	workers     int
	maxRejected int
}

func newImportCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports creditos from a CSV file",
		Long: `Imports creditos from a CSV file in batches. Columns are matched to credito
fields by a CreditoMapping YAML document; without --mapping the header must
use the credito JSON field names. Missing baseCalculo and valorIssqn values
are computed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := loadMapping(opts.mappingPath)
			if err != nil {
				return err
			}

			chain, err := validation.NewDefaultChain(validation.DefaultConfig())
			if err != nil {
				return err
			}
			mapper, err := ingest.NewCreditoMapper(mapping, chain)
			if err != nil {
				return err
			}

			sep := []rune(opts.separator)
			if len(sep) != 1 {
				return fmt.Errorf("separator must be a single character, got %q", opts.separator)
			}

			f, err := os.Open(opts.file)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", opts.file, err)
			}
			defer f.Close()

			collector := ingest.NewCreditoCollector(ingest.NewCSVReader(f, ingest.WithSeparator(sep[0])), mapper, opts.workers)

			return withBackend(cmd.Context(), func(b *factory.Backend) error {
				stats, err := ingest.NewPipeline(collector, b.Repository,
					ingest.WithName("csv-import"),
					ingest.WithBatchSize(opts.batchSize),
					ingest.WithMaxRejected(opts.maxRejected),
				).Run(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d creditos imported in %d batches, %d rows rejected\n",
					stats.Imported, stats.Batches, stats.Rejected)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "CSV file to import")
	cmd.Flags().StringVarP(&opts.mappingPath, "mapping", "m", "", "CreditoMapping YAML file")
	cmd.Flags().StringVar(&opts.separator, "separator", ",", "CSV field separator")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", ingest.DefaultBatchSize, "Creditos saved per batch")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "Parallel row readers")
	cmd.Flags().IntVar(&opts.maxRejected, "max-rejected", 0, "Abort after this many rejected rows; 0 never aborts")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadMapping(path string) (*ingest.Mapping, error) {
	if path == "" {
		return ingest.DefaultMapping(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping: %w", err)
	}
	defer f.Close()

	return ingest.LoadMapping(f)
}
