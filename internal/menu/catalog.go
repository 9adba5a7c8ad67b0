package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one purchasable item.
type Entry struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  string          `json:"category"`
}

// Label renders the entry the way a running order list shows it:
// "Pizza - $10 (Fast Food)".
func (e Entry) Label() string {
	return fmt.Sprintf("%s - $%s (%s)", e.Name, e.UnitPrice.String(), e.Category)
}

// Catalog is an immutable name-keyed set of entries.
// Safe for concurrent use since nothing mutates it after New returns.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// New builds a catalog from entries, keeping their order.
// Names must be unique and non-blank, categories non-blank and prices positive.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, &DefinitionError{Message: "item name is required"}
		}
		if strings.TrimSpace(e.Category) == "" {
			return nil, &DefinitionError{Item: e.Name, Message: "category is required"}
		}
		if !e.UnitPrice.IsPositive() {
			return nil, &DefinitionError{Item: e.Name, Message: fmt.Sprintf("price must be > 0, got %s", e.UnitPrice)}
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, &DefinitionError{Item: e.Name, Message: "duplicate item"}
		}
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is New for static menus; it panics on an invalid definition.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the entry for name or a *NotFoundError.
func (c *Catalog) Lookup(name string) (Entry, error) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, &NotFoundError{Name: name}
	}
	return c.entries[i], nil
}

// ListItems returns a copy of all entries in declaration order.
func (c *Catalog) ListItems() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Default returns the house menu.
func Default() *Catalog {
	return MustNew(
		item("Pizza", 10, "Fast Food"),
		item("Burger", 5, "Fast Food"),
		item("Pasta", 8, "Italian"),
		item("Sushi", 12, "Japanese"),
		item("Tacos", 7, "Mexican"),
		item("Biryani", 9, "Indian"),
		item("Salad", 6, "Healthy"),
		item("Ice Cream", 4, "Dessert"),
	)
}

func item(name string, price int64, category string) Entry {
	return Entry{Name: name, UnitPrice: decimal.NewFromInt(price), Category: category}
}
