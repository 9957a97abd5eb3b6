package cmd

import (
	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/internal/service"
	"github.com/spf13/cobra"
)

func newStoresCmd(a *app) *cobra.Command {
	var (
		cpf      string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Print a page of stores with transactions and balances",
		Long: `Stores prints stores ordered by name, each with its transactions
and balance, as JSON. --cpf keeps only stores with at least one
transaction paid by that CPF (dots and dashes are ignored).`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if pageSize == 0 {
				pageSize = a.cfg.Query.DefaultPageSize
			}

			ledgerService := service.NewLedgerService(a.ledger, a.cfg.Query.MaxPageSize, a.log)
			result, err := ledgerService.GetStores(cmd.Context(), domain.StoresQuery{
				Page:     page,
				PageSize: pageSize,
				CPF:      cpf,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd, result)
		}),
	}

	cmd.Flags().StringVar(&cpf, "cpf", "", "only stores with transactions paid by this CPF")
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "stores per page (default from QUERY_DEFAULT_PAGE_SIZE)")

	return cmd
}
