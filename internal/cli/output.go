package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/shopctl/internal/models"
)

// formatPrice renders minor currency units as a decimal amount.
func formatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func renderProducts(w io.Writer, list []models.Product) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No products available.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tDESCRIPTION")
	for _, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, formatPrice(p.PriceCents), p.Description)
	}
	tw.Flush()
}

func renderProduct(w io.Writer, p *models.Product) {
	fmt.Fprintf(w, "Product %d: %s\n", p.ID, p.Name)
	fmt.Fprintf(w, "Price: %s\n", formatPrice(p.PriceCents))
	if p.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", p.Description)
	}
}

func renderCart(w io.Writer, items []models.CartItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	var total int64
	for _, item := range items {
		subtotal := item.PriceCents * item.Quantity
		total += subtotal
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			item.ProductID, item.Name, formatPrice(item.PriceCents), item.Quantity, formatPrice(subtotal))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %s\n", formatPrice(total))
}
