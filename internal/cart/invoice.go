package cart

import (
	"fmt"
	"strings"
)

// InvoiceText renders the bill for customer:
//
//	** Invoice **
//	Customer: Alice
//
//	Items Ordered:
//	- Pizza ($10) - Fast Food
//
//	Total Amount: $10
//
// There is no trailing newline.
func (c *Cart) InvoiceText(customer string) (string, error) {
	if err := c.Validate(customer); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "** Invoice **\nCustomer: %s\n\nItems Ordered:\n", strings.TrimSpace(customer))
	for _, l := range c.lines {
		fmt.Fprintf(&b, "- %s ($%s) - %s\n", l.ItemName, l.UnitPrice.String(), l.Category)
	}
	fmt.Fprintf(&b, "\nTotal Amount: $%s", c.total.String())
	return b.String(), nil
}
