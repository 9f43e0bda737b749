package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/shopctl/internal/common"
)

// NewCartCommand creates the cart command group.
func NewCartCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Shopping cart commands",
	}
	cmd.AddCommand(newCartAddCommand(app))
	cmd.AddCommand(newCartRemoveCommand(app))
	cmd.AddCommand(newCartUpdateCommand(app))
	cmd.AddCommand(newCartShowCommand(app))
	return cmd
}

// reportCartErr prints the recoverable cart preconditions as plain text and
// passes everything else through as a command error.
func reportCartErr(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, common.ErrNotLoggedIn):
		fmt.Fprintln(cmd.OutOrStdout(), "You are not logged in. Run 'shopctl auth login' first.")
		return nil
	case errors.Is(err, common.ErrProductUnavailable):
		fmt.Fprintln(cmd.OutOrStdout(), "Rejected: invalid or inactive product.")
		return nil
	case errors.Is(err, common.ErrInvalidQuantity):
		fmt.Fprintln(cmd.OutOrStdout(), "Quantity must be at least 1. Use 'cart remove' to drop a product.")
		return nil
	}
	return err
}

func newCartAddCommand(app *App) *cobra.Command {
	var quantity int64

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to your cart",
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

			qty, err := rt.cart.Add(ctx, productID, quantity)
			if err != nil {
				return reportCartErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added product %d to cart (quantity now %d).\n", productID, qty)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&quantity, "quantity", "q", 1, "number of units to add")
	return cmd
}

func newCartRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from your cart",
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

			removed, err := rt.cart.Remove(ctx, productID)
			if err != nil {
				return reportCartErr(cmd, err)
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to remove: product %d is not in your cart.\n", productID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed product %d from cart.\n", productID)
			return nil
		},
	}
}

func newCartUpdateCommand(app *App) *cobra.Command {
	var quantity int64

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Set the quantity of a product in your cart",
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

			updated, err := rt.cart.Update(ctx, productID, quantity)
			if err != nil {
				return reportCartErr(cmd, err)
			}
			if !updated {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to update: product %d is not in your cart.\n", productID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated product %d (quantity now %d).\n", productID, quantity)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&quantity, "quantity", "q", 0, "new number of units")
	_ = cmd.MarkFlagRequired("quantity")
	return cmd
}

func newCartShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rt, err := app.open(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			items, err := rt.cart.Items(ctx)
			if err != nil {
				return reportCartErr(cmd, err)
			}
			renderCart(cmd.OutOrStdout(), items)
			return nil
		},
	}
}
