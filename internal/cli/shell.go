package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/foodorders/internal/cart"
)

const shellHelp = `Commands:
  menu               list the menu
  add ITEM           add a menu item to the current order
  lines              show the current order
  total              show the current bill
  invoice NAME       print the invoice for NAME
  place NAME         place the current order for NAME
  clear              discard the current order
  revenue            total revenue across all orders
  customers          customers who have placed orders
  orders             every recorded order
  help               show this help
  quit               leave the shell`

// NewShellCommand creates the interactive shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Take orders interactively",
		Long: `Start a line-oriented shell that keeps one order in progress.

Errors are printed and the shell keeps going; the order in progress is
left as it was. Type "help" for the command list.

Example:
  foodorders shell --db ./food_orders.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			sess, err := openSession(ctx, rootOpts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			sh := &shell{sess: sess, cart: cart.New(sess.catalog), out: cmd.OutOrStdout()}
			return sh.run(ctx, cmd.InOrStdin())
		},
	}
}

type shell struct {
	sess *session
	cart *cart.Cart
	out  io.Writer
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(sh.out, `foodorders shell. Type "help" for commands.`)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			break
		}
		if done := sh.exec(ctx, scanner.Text()); done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitFailure, "failed to read input", err)
	}
	return nil
}

// exec runs one shell line and reports whether the shell should exit.
func (sh *shell) exec(ctx context.Context, line string) bool {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "":
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	case "quit", "exit":
		return true
	case "menu":
		fmt.Fprintln(sh.out, menuText(sh.sess.catalog.ListItems()))
	case "add":
		if err := sh.cart.AddItem(arg); err != nil {
			sh.fail(err)
			return false
		}
		lines := sh.cart.Lines()
		fmt.Fprintln(sh.out, lineText(lines[len(lines)-1]))
		fmt.Fprintln(sh.out, totalBillText(sh.cart.Total()))
	case "lines":
		if sh.cart.IsEmpty() {
			fmt.Fprintln(sh.out, "Order list is empty.")
			return false
		}
		for _, l := range sh.cart.Lines() {
			fmt.Fprintln(sh.out, lineText(l))
		}
		fmt.Fprintln(sh.out, totalBillText(sh.cart.Total()))
	case "total":
		fmt.Fprintln(sh.out, totalBillText(sh.cart.Total()))
	case "invoice":
		text, err := sh.cart.InvoiceText(arg)
		if err != nil {
			sh.fail(err)
			return false
		}
		fmt.Fprintln(sh.out, text)
	case "place":
		order, err := sh.sess.ledger.Commit(ctx, arg, sh.cart)
		if err != nil {
			sh.fail(err)
			return false
		}
		fmt.Fprintln(sh.out, placedText(order))
	case "clear":
		sh.cart.Reset()
		fmt.Fprintln(sh.out, totalBillText(sh.cart.Total()))
	case "revenue":
		total, err := sh.sess.ledger.TotalRevenue(ctx)
		if err != nil {
			sh.fail(err)
			return false
		}
		fmt.Fprintln(sh.out, revenueText(total))
	case "customers":
		names, err := sh.sess.ledger.DistinctCustomers(ctx)
		if err != nil {
			sh.fail(err)
			return false
		}
		fmt.Fprintln(sh.out, customersText(names))
	case "orders":
		orders, err := sh.sess.ledger.AllOrders(ctx)
		if err != nil {
			sh.fail(err)
			return false
		}
		fmt.Fprintln(sh.out, ordersText(orders))
	default:
		fmt.Fprintf(sh.out, "Error: unknown command %q (type \"help\")\n", verb)
	}
	return false
}

func (sh *shell) fail(err error) {
	var verr *cart.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(sh.out, "Error: %s\n", verr.Message)
		return
	}
	fmt.Fprintf(sh.out, "Error: %v\n", err)
}
