package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/foodorders/internal/ledger"
)

// NewRevenueCommand creates the revenue command.
func NewRevenueCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "revenue",
		Short:         "Show total revenue across all orders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(rootOpts, cmd, func(sess *session, out *OutputFormatter) error {
				total, err := sess.ledger.TotalRevenue(commandContext(cmd))
				if err != nil {
					return out.Fail("failed to read revenue", err)
				}
				return out.Success(struct {
					TotalRevenue decimal.Decimal `json:"total_revenue"`
				}{total}, revenueText(total))
			})
		},
	}
}

// NewCustomersCommand creates the customers command.
func NewCustomersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "customers",
		Short:         "List customers who have placed orders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(rootOpts, cmd, func(sess *session, out *OutputFormatter) error {
				names, err := sess.ledger.DistinctCustomers(commandContext(cmd))
				if err != nil {
					return out.Fail("failed to read customers", err)
				}
				return out.Success(struct {
					Customers []string `json:"customers"`
				}{names}, customersText(names))
			})
		},
	}
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "orders",
		Short:         "List every recorded order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(rootOpts, cmd, func(sess *session, out *OutputFormatter) error {
				orders, err := sess.ledger.AllOrders(commandContext(cmd))
				if err != nil {
					return out.Fail("failed to read orders", err)
				}
				return out.Success(struct {
					Orders []ledger.Order `json:"orders"`
				}{orders}, ordersText(orders))
			})
		},
	}
}

func runView(opts *RootOptions, cmd *cobra.Command, view func(*session, *OutputFormatter) error) error {
	sess, err := openSession(commandContext(cmd), opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	return view(sess, &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()})
}
