package cli

import (
	"github.com/spf13/cobra"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the menu",
		Long: `List every menu item with its price and category, in menu order.

The built-in menu is used unless --menu or the config names a .yaml or
.cue menu file.

Example:
  foodorders menu
  foodorders menu --menu ./menu.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(rootOpts, cmd)
		},
	}
}

func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	cfg, logger, err := settings(opts, cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	entries := catalog.ListItems()
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return out.Success(entries, menuText(entries))
}
