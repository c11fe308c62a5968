package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/portfolioimane/storefront-cli/internal/client/models"
)

// renderCartLines prints the cart snapshot as a table followed by the items
// total (price × quantity over all lines).
func renderCartLines(w io.Writer, lines []models.CartLine) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tPRICE\tQTY\tTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			l.ID, l.Product.Name, l.Price.StringFixed(2), l.Quantity, l.Total().StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %s\n", models.CartTotal(lines).StringFixed(2))
}

// renderSummary prints the server-computed checkout summary: the lines, the
// items total, the shipping cost and the grand total the buyer will pay.
func renderSummary(w io.Writer, s *models.CheckoutSummary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tPRICE\tQTY\tTOTAL")
	for _, l := range s.CartItems {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			l.Product.Name, l.Price.StringFixed(2), l.Quantity, l.Total().StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintf(w, "Items:    %s\n", s.Total.StringFixed(2))
	fmt.Fprintf(w, "Shipping: %s\n", s.Shipping.StringFixed(2))
	fmt.Fprintf(w, "To pay:   %s\n", s.GrandTotal().StringFixed(2))
}

// renderOrder prints the order confirmation view.
func renderOrder(w io.Writer, d *models.OrderDetails) {
	fmt.Fprintf(w, "Order #%d (%s, %s)\n", d.Order.ID, d.Order.PaymentMethod, d.Order.Status)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tPRICE\tQTY\tTOTAL")
	for _, item := range d.Order.OrderItems {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			item.Product.Name, item.Price.StringFixed(2), item.Quantity, item.Total().StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintf(w, "Shipping: %s\n", d.Shipping.StringFixed(2))
	fmt.Fprintf(w, "Total:    %s\n", d.Order.TotalAmount.StringFixed(2))
}
