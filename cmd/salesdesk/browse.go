package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"salesdesk/internal/tui"
	"salesdesk/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive transaction dashboard",
		Long: `Browse transactions in a full-screen terminal dashboard with
search, filters, sorting, paging and inline editing.`,
		RunE: runBrowse,
	}

	cmd.Flags().String("theme", "default", "visual theme (default, catppuccin-mocha)")
	cmd.Flags().Int("per-page", 10, "rows per page")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("ui.per_page", cmd.Flags().Lookup("per-page"))

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	gateway, err := newGateway()
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(),
		tui.WithGateway(gateway),
		tui.WithTheme(themes.GetTheme(viper.GetString("ui.theme"))),
		tui.WithPerPage(viper.GetInt("ui.per_page")),
	)
}
