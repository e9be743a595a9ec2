package entity

import (
	"github.com/shopspring/decimal"
)

// TaxRate is the fixed sales tax applied to every cart and order total.
var TaxRate = decimal.RequireFromString("0.13")

// CartLine is a single intended purchase inside a cart. Name and UnitPrice
// are snapshots taken when the product was added, so later catalog edits do
// not change a cart already in progress.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the session-scoped working set of items a shopper intends to buy.
// It holds at most one line per product id, in insertion order, and is never
// persisted to the relational store; it lives in the session cart store until
// checkout or abandonment.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
}

// NewCart returns an empty cart bound to the given session.
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

// Add merges a product into the cart. If a line for the same product already
// exists its quantity is incremented; otherwise a new line is appended.
// Non-positive quantities fall back to 1, the documented permissive default.
func (c *Cart) Add(product *Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			c.Lines[i].Quantity += quantity

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear resets the cart to empty. Called after a successful order placement.
func (c *Cart) Clear() {
	c.Lines = nil
}

// CartTotals holds the three display totals for a cart, each rounded to two
// decimal places.
type CartTotals struct {
	RawTotal   decimal.Decimal `json:"raw_total"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Totals computes raw total, tax and grand total over all lines. Accumulation
// stays in decimal space so repeated additions never drift; only the final
// values are rounded. An empty cart yields all zeros.
func (c *Cart) Totals() CartTotals {
	raw := decimal.Zero
	for _, line := range c.Lines {
		raw = raw.Add(line.Subtotal())
	}

	return CartTotals{
		RawTotal:   raw.Round(2),
		Tax:        raw.Mul(TaxRate).Round(2),
		GrandTotal: raw.Add(raw.Mul(TaxRate)).Round(2),
	}
}
