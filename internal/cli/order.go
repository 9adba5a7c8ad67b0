package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/foodorders/internal/cart"
	"github.com/roach88/foodorders/internal/ledger"
)

// OrderOptions holds flags for the order command.
type OrderOptions struct {
	*RootOptions
	Customer string
	Invoice  bool
}

// orderResult is the JSON payload of the order command.
type orderResult struct {
	Order   ledger.Order `json:"order"`
	Invoice string       `json:"invoice,omitempty"`
}

// NewOrderCommand creates the order command.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "order --customer NAME ITEM...",
		Short: "Place an order",
		Long: `Build an order from menu items and record it.

Items are added in the order given; an item may repeat. The order is
rejected without writing anything if an item is not on the menu, the
customer name is blank, or no items are given.

Example:
  foodorders order --customer Alice Pizza Burger
  foodorders order --customer Bob --invoice "Ice Cream" Tacos`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Customer, "customer", "", "customer name")
	cmd.Flags().BoolVar(&opts.Invoice, "invoice", false, "print the invoice before placing the order")

	return cmd
}

func runOrder(opts *OrderOptions, items []string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	ctx := commandContext(cmd)

	sess, err := openSession(ctx, opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	c, err := fillCart(sess.catalog, items)
	if err != nil {
		return out.Fail("failed to build order", err)
	}

	var result orderResult
	if opts.Invoice {
		result.Invoice, err = c.InvoiceText(opts.Customer)
		if err != nil {
			return out.Fail("failed to build invoice", err)
		}
	}

	result.Order, err = sess.ledger.Commit(ctx, opts.Customer, c)
	if err != nil {
		return out.Fail("failed to place order", err)
	}

	text := placedText(result.Order)
	if result.Invoice != "" {
		text = result.Invoice + "\n\n" + text
	}
	return out.Success(result, text)
}

// InvoiceOptions holds flags for the invoice command.
type InvoiceOptions struct {
	*RootOptions
	Customer string
}

// invoiceResult is the JSON payload of the invoice command.
type invoiceResult struct {
	Customer string          `json:"customer"`
	Lines    []cart.LineItem `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	Invoice  string          `json:"invoice"`
}

// NewInvoiceCommand creates the invoice command.
func NewInvoiceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InvoiceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "invoice --customer NAME ITEM...",
		Short: "Print an invoice without placing the order",
		Long: `Print the invoice for a set of menu items. Nothing is recorded.

Example:
  foodorders invoice --customer Alice Pizza Burger`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoice(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Customer, "customer", "", "customer name")

	return cmd
}

func runInvoice(opts *InvoiceOptions, items []string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	cfg, logger, err := settings(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	c, err := fillCart(catalog, items)
	if err != nil {
		return out.Fail("failed to build order", err)
	}
	text, err := c.InvoiceText(opts.Customer)
	if err != nil {
		return out.Fail("failed to build invoice", err)
	}

	return out.Success(invoiceResult{
		Customer: opts.Customer,
		Lines:    c.Lines(),
		Total:    c.Total(),
		Invoice:  text,
	}, text)
}
