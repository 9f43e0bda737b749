package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/shopctl/internal/common"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Product catalog commands",
	}
	cmd.AddCommand(newProductsListCommand(app))
	cmd.AddCommand(newProductsViewCommand(app))
	return cmd
}

func newProductsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products available for purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := app.open(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			list, err := rt.catalog.List(ctx)
			if err != nil {
				return err
			}
			renderProducts(cmd.OutOrStdout(), list)
			return nil
		},
	}
}

func newProductsViewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <product-id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			productID, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			rt, err := app.open(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			p, err := rt.catalog.Get(ctx, productID)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "Product %d not found.\n", productID)
					return nil
				}
				return err
			}
			renderProduct(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}
