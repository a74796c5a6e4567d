package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/henri123lemoine/noticias/internal/app"
	"github.com/henri123lemoine/noticias/internal/cli"
	"github.com/henri123lemoine/noticias/internal/content"
	"github.com/henri123lemoine/noticias/internal/debug"
	"github.com/henri123lemoine/noticias/internal/ui"
)

func newRenderCommand() *cobra.Command {
	var (
		tabName string
		query   string
		width   int
		height  int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the screen without starting the UI",
		Long: `Render composes the screen once and prints it.

Formats:
  text  - the screen as it appears in the terminal (default)
  json  - the composed layout tree
  yaml  - the composed layout tree

Examples:
  # The Noticias tab at 100 columns
  noticias render --width 100

  # Layout of the Eventos tab as YAML
  noticias render --tab eventos --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, ok := content.ParseTab(tabName)
			if !ok {
				return fmt.Errorf("unknown tab %q (expected noticias, eventos, clima or 1-3)", tabName)
			}
			outFormat, err := cli.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			done := debug.Timed("render")
			screen, view := app.Snapshot(cfg, tab, query, width, height)
			done()

			out := cmd.OutOrStdout()
			if outFormat == cli.FormatText {
				_, err := fmt.Fprintln(out, view)
				return err
			}
			return cli.OutputResults(out, outFormat, screen)
		},
	}

	cmd.Flags().StringVarP(&tabName, "tab", "t", content.TabNoticias.Label(), "tab to show")
	cmd.Flags().StringVarP(&query, "query", "q", "", "text in the search field")
	cmd.Flags().IntVarP(&width, "width", "W", ui.DefaultWidth, "terminal width")
	cmd.Flags().IntVarP(&height, "height", "H", ui.DefaultHeight, "terminal height")
	cmd.Flags().StringVarP(&format, "format", "f", string(cli.FormatText), "output format (text, json, yaml)")

	return cmd
}
