// Package cart holds an order in progress for one customer interaction.
//
// A Cart is the staging area between menu selection and a committed order.
// It is not safe for concurrent use; shells that share a cart between
// goroutines must serialize access themselves.
package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/roach88/foodorders/internal/menu"
)

// Catalog is the read-only menu lookup a Cart needs.
type Catalog interface {
	Lookup(name string) (menu.Entry, error)
}

// LineItem is one menu selection recorded in a cart.
type LineItem struct {
	ItemName  string          `json:"item_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  string          `json:"category"`
}

// Cart accumulates line items and keeps the running total equal to the
// sum of their unit prices.
type Cart struct {
	catalog Catalog
	lines   []LineItem
	total   decimal.Decimal
}

// New returns an empty cart bound to catalog.
func New(catalog Catalog) *Cart {
	return &Cart{catalog: catalog, total: decimal.Zero}
}

// AddItem appends the named menu item. An unknown name returns the
// catalog's error and leaves the cart unchanged.
func (c *Cart) AddItem(name string) error {
	entry, err := c.catalog.Lookup(name)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, LineItem{
		ItemName:  entry.Name,
		UnitPrice: entry.UnitPrice,
		Category:  entry.Category,
	})
	c.total = c.total.Add(entry.UnitPrice)
	return nil
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the running total.
func (c *Cart) Total() decimal.Decimal {
	return c.total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Reset clears all lines and zeroes the total.
func (c *Cart) Reset() {
	c.lines = nil
	c.total = decimal.Zero
}

// ItemsSummary joins item names with ", " in cart order.
func (c *Cart) ItemsSummary() string {
	names := make([]string, len(c.lines))
	for i, l := range c.lines {
		names[i] = l.ItemName
	}
	return strings.Join(names, ", ")
}

// Validate checks that customer (after trimming) is non-blank and the cart
// has at least one line. The name check runs first.
func (c *Cart) Validate(customer string) error {
	if strings.TrimSpace(customer) == "" {
		return errBlankCustomer
	}
	if c.IsEmpty() {
		return errEmptyCart
	}
	return nil
}
