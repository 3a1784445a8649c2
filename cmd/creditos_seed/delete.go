package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/creditos/internal/credito"
	"github.com/DjordjeVuckovic/creditos/internal/storage/factory"
	"github.com/DjordjeVuckovic/creditos/internal/validation"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Deletes every test credito",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := validation.NewDefaultChain(validation.DefaultConfig())
			if err != nil {
				return err
			}

			return withBackend(cmd.Context(), func(b *factory.Backend) error {
				n, err := credito.NewService(b.Repository, chain, nil).DeleteTestData(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d test creditos deleted\n", n)
				return nil
			})
		},
	}
}
