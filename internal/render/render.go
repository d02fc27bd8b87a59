// Package render produces the text views of the storefront: catalog
// listing, product detail, cart contents, order summary, and receipt.
//
// All functions are pure (input in, string out) so views can be golden
// tested. Prices are formatted to two decimals here and nowhere else.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Medofathi/hadrempro/internal/cart"
	"github.com/Medofathi/hadrempro/internal/catalog"
	"github.com/Medofathi/hadrempro/internal/checkout"
)

// printer groups thousands per en-US conventions ($1,234.56).
var printer = message.NewPrinter(language.AmericanEnglish)

// Price formats a price for display. Display-only: stored prices keep
// full precision.
func Price(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Catalog renders the product listing view.
func Catalog(products []catalog.Product) string {
	var b strings.Builder
	b.WriteString("Our Products\n")
	b.WriteString("Discover our curated collection of fine goods.\n\n")
	if len(products) == 0 {
		b.WriteString("No products found.\n")
		return b.String()
	}
	for _, p := range products {
		fmt.Fprintf(&b, "  [%d] %-28s %10s  %s\n", p.ID, p.Name, Price(p.Price), p.Category)
	}
	return b.String()
}

// ProductDetail renders the single-product view.
func ProductDetail(p catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Name)
	fmt.Fprintf(&b, "%s\n\n", p.Description)
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	fmt.Fprintf(&b, "Price:    %s\n", Price(p.Price))
	fmt.Fprintf(&b, "Image:    %s\n", p.ImageURL)
	return b.String()
}

// Cart renders the cart view with per-line totals and the subtotal.
func Cart(items []cart.LineItem, subtotal float64) string {
	var b strings.Builder
	b.WriteString("Your Shopping Cart\n\n")
	if len(items) == 0 {
		b.WriteString("Your cart is empty.\n")
		b.WriteString("Looks like you haven't added anything to your cart yet.\n")
		return b.String()
	}
	for _, li := range items {
		fmt.Fprintf(&b, "  [%d] %-28s %s x %d = %s\n",
			li.ID, li.Name, Price(li.Price), li.Quantity, Price(li.LineTotal()))
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", Price(subtotal))
	return b.String()
}

// Badge renders the header cart badge.
func Badge(itemCount int) string {
	return fmt.Sprintf("Cart (%d)", itemCount)
}

// Summary renders the checkout order summary.
func Summary(s checkout.Summary) string {
	var b strings.Builder
	b.WriteString("Order Summary\n\n")
	for _, li := range s.Lines {
		fmt.Fprintf(&b, "  %-28s Qty: %-3d %10s\n", li.Name, li.Quantity, Price(li.LineTotal()))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Subtotal  %10s\n", Price(s.Subtotal))
	fmt.Fprintf(&b, "  Shipping  %10s\n", Price(s.Shipping))
	fmt.Fprintf(&b, "  Taxes     %10s\n", Price(s.Tax))
	fmt.Fprintf(&b, "  Total     %10s\n", Price(s.GrandTotal))
	return b.String()
}

// Receipt renders the order-complete view.
func Receipt(r checkout.Receipt) string {
	var b strings.Builder
	b.WriteString("Thank you for your order!\n")
	b.WriteString("Your payment has been processed successfully.\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", r.OrderID)
	fmt.Fprintf(&b, "Paid:     %s\n", Price(r.Total))
	return b.String()
}
