package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/creditos/internal/credito"
	"github.com/DjordjeVuckovic/creditos/internal/storage/factory"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	nfseCount      int
	creditsPerNfse int
	seed           uint64
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Replaces the test creditos by a generated set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := validation.NewDefaultChain(validation.DefaultConfig())
			if err != nil {
				return err
			}

			var genOpts []credito.GeneratorOption
			if cmd.Flags().Changed("seed") {
				genOpts = append(genOpts, credito.WithSeed(opts.seed))
			}

			return withBackend(cmd.Context(), func(b *factory.Backend) error {
				svc := credito.NewService(b.Repository, chain, credito.NewGenerator(genOpts...))

				n, err := svc.GenerateTestData(cmd.Context(), credito.GenerateOptions{
					NfseCount:      opts.nfseCount,
					CreditsPerNfse: opts.creditsPerNfse,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d test creditos generated across %d NFS-e\n", n, opts.nfseCount)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&opts.nfseCount, "nfse-count", credito.DefaultNfseCount, "Number of NFS-e to generate")
	cmd.Flags().IntVar(&opts.creditsPerNfse, "credits-per-nfse", credito.DefaultCreditsPerNfse, "Creditos generated per NFS-e")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible data set")
	return cmd
}
