package shop

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Medofathi/hadrempro/internal/cart"
	"github.com/Medofathi/hadrempro/internal/catalog"
	"github.com/Medofathi/hadrempro/internal/checkout"
	"github.com/Medofathi/hadrempro/internal/render"
)

// View identifies the storefront view the session is showing.
type View string

const (
	ViewProductList   View = "PRODUCT_LIST"
	ViewProductDetail View = "PRODUCT_DETAIL"
	ViewCart          View = "CART"
	ViewCheckout      View = "CHECKOUT"
)

// Session owns the per-session state: the catalog snapshot, the cart
// store, the current view, the selected product, and the search query.
//
// Not safe for concurrent use; Run is the single writer.
type Session struct {
	products []catalog.Product
	cart     *cart.Store
	payments *checkout.Processor
	logger   *slog.Logger

	view     View
	selected catalog.Product
	query    string
}

// NewSession creates a session over an already-validated catalog
// snapshot, starting with an empty cart on the product list view.
func NewSession(products []catalog.Product, payments *checkout.Processor, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		products: products,
		cart:     cart.NewStore(),
		payments: payments,
		logger:   logger,
		view:     ViewProductList,
	}
}

// Cart exposes the session's cart store. Used by tests and by the
// scenario harness; the CLI goes through Handle.
func (s *Session) Cart() *cart.Store {
	return s.cart
}

// View returns the current view.
func (s *Session) View() View {
	return s.view
}

// Handle processes one command line to completion and returns the
// rendered response. quit is true when the shopper asked to leave.
//
// The only error Handle can return is context cancellation during the
// simulated payment step; cart mutations themselves never fail.
func (s *Session) Handle(ctx context.Context, line string) (out string, quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return s.renderCurrent(), false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		return helpText, false, nil

	case "quit", "exit":
		return "Thanks for visiting!\n", true, nil

	case "list":
		s.query = ""
		s.navigate(ViewProductList)
		return s.renderCurrent(), false, nil

	case "search":
		s.query = strings.Join(args, " ")
		// Searching from another view brings the shopper back to the list.
		s.navigate(ViewProductList)
		return s.renderCurrent(), false, nil

	case "show":
		return s.handleShow(args), false, nil

	case "add":
		return s.handleAdd(args), false, nil

	case "cart":
		s.navigate(ViewCart)
		return s.renderCurrent(), false, nil

	case "qty":
		return s.handleQty(args), false, nil

	case "rm", "remove":
		return s.handleRemove(args), false, nil

	case "clear":
		s.cart.Clear()
		s.logger.Debug("cart cleared")
		s.navigate(ViewCart)
		return s.renderCurrent(), false, nil

	case "back":
		s.navigate(ViewProductList)
		return s.renderCurrent(), false, nil

	case "checkout":
		return s.handleCheckout(), false, nil

	case "pay":
		return s.handlePay(ctx)

	default:
		return fmt.Sprintf("Unknown command %q. Type 'help' for a list of commands.\n", cmd), false, nil
	}
}

func (s *Session) navigate(v View) {
	if v == s.view {
		return
	}
	s.logger.Debug("view changed", "from", string(s.view), "to", string(v))
	s.view = v
}

func (s *Session) renderCurrent() string {
	switch s.view {
	case ViewProductDetail:
		return render.ProductDetail(s.selected)
	case ViewCart:
		return render.Cart(s.cart.Items(), s.cart.TotalPrice())
	case ViewCheckout:
		return render.Summary(checkout.Summarize(s.cart))
	default:
		return render.Catalog(catalog.Filter(s.products, s.query))
	}
}

func (s *Session) handleShow(args []string) string {
	id, ok := parseID(args)
	if !ok {
		return "Usage: show <product-id>\n"
	}
	p, found := catalog.FindByID(s.products, id)
	if !found {
		return fmt.Sprintf("No product with id %d.\n", id)
	}
	s.selected = p
	s.navigate(ViewProductDetail)
	return s.renderCurrent()
}

func (s *Session) handleAdd(args []string) string {
	var p catalog.Product
	if len(args) == 0 && s.view == ViewProductDetail {
		// Bare "add" on the detail view adds the product being shown.
		p = s.selected
	} else {
		id, ok := parseID(args)
		if !ok {
			return "Usage: add <product-id>\n"
		}
		var found bool
		p, found = catalog.FindByID(s.products, id)
		if !found {
			return fmt.Sprintf("No product with id %d.\n", id)
		}
	}
	s.cart.Add(p)
	s.logger.Debug("item added",
		"product", p.ID,
		"item_count", s.cart.ItemCount(),
		"subtotal", s.cart.TotalPrice())
	return fmt.Sprintf("Added %s to cart. %s\n", p.Name, render.Badge(s.cart.ItemCount()))
}

func (s *Session) handleQty(args []string) string {
	if len(args) != 2 {
		return "Usage: qty <product-id> <quantity>\n"
	}
	id, ok := parseID(args[:1])
	if !ok {
		return "Usage: qty <product-id> <quantity>\n"
	}
	// Quantity input is free text; the policy floors fractions and maps
	// anything below 1 (or non-numeric) to removal.
	q, valid := cart.ParseQuantity(args[1])
	if !valid {
		q = 0
	}
	s.cart.UpdateQuantity(id, q)
	s.logger.Debug("quantity updated",
		"product", id,
		"requested", args[1],
		"effective", q,
		"item_count", s.cart.ItemCount())
	s.navigate(ViewCart)
	return s.renderCurrent()
}

func (s *Session) handleRemove(args []string) string {
	id, ok := parseID(args)
	if !ok {
		return "Usage: rm <product-id>\n"
	}
	s.cart.Remove(id)
	s.logger.Debug("item removed", "product", id, "item_count", s.cart.ItemCount())
	s.navigate(ViewCart)
	return s.renderCurrent()
}

func (s *Session) handleCheckout() string {
	if s.cart.Empty() {
		return "Your cart is empty. Add something before checking out.\n"
	}
	s.navigate(ViewCheckout)
	return s.renderCurrent() + "\nType 'pay' to place the order.\n"
}

func (s *Session) handlePay(ctx context.Context) (string, bool, error) {
	if s.view != ViewCheckout {
		return "Type 'checkout' first to review your order.\n", false, nil
	}
	summary := checkout.Summarize(s.cart)
	s.logger.Info("processing payment", "total", summary.GrandTotal)

	receipt, err := s.payments.Pay(ctx, summary)
	if err != nil {
		return "", false, fmt.Errorf("payment interrupted: %w", err)
	}

	// Clear only after the simulated payment completed.
	s.cart.Clear()
	s.navigate(ViewProductList)
	s.logger.Info("order placed", "order_id", receipt.OrderID, "total", receipt.Total)
	return render.Receipt(receipt), false, nil
}

func parseID(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

const helpText = `Commands:
  list               show the product list
  search <text>      filter products by name or category
  show <id>          show product details
  add [id]           add a product to the cart
  cart               show the cart
  qty <id> <n>       change a line's quantity (below 1 removes it)
  rm <id>            remove a line from the cart
  clear              empty the cart
  checkout           review the order summary
  pay                place the order (simulated payment)
  back               return to the product list
  quit               leave the shop
`
