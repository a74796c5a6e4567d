package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/noticias/internal/app"
	"github.com/henri123lemoine/noticias/internal/config"
	"github.com/henri123lemoine/noticias/internal/debug"
	"github.com/henri123lemoine/noticias/internal/ui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath string
	debugPath  string
)

// newRootCommand builds the command tree. Flag values are bound to the
// package variables and reset to their defaults on every call.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "noticias",
		Short:         "Terminal news screen",
		Long:          `Noticias shows a news screen in the terminal: a search field, the Noticias/Eventos/Clima tabs, a row of featured cards and a grid of secondary cards.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugPath == "" {
				return nil
			}
			if err := debug.Enable(debugPath); err != nil {
				return fmt.Errorf("enable debug log: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{tea.WithAltScreen()}
			if cfg.UI.Mouse {
				opts = append(opts, tea.WithMouseCellMotion())
			}

			p := tea.NewProgram(app.New(cfg), opts...)
			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("failed to start the terminal user interface: %w", err)
			}

			if m, ok := finalModel.(app.Model); ok {
				debug.Log("exit: tab=%s query=%q", m.Tab(), m.Query())
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	cmd.PersistentFlags().StringVar(&debugPath, "debug", "", "write a debug log to this file")
	cmd.PersistentFlags().Lookup("debug").NoOptDefVal = debug.DefaultPath()

	cmd.AddCommand(newRenderCommand())
	cmd.AddCommand(newConfigCommand())
	return cmd
}

// loadConfig loads the config file, applies the theme and reports
// validation warnings on stderr.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.ConfigPath()
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		debug.Log("config warning: %s", w)
	}

	ui.ApplyTheme(cfg.UI.Theme)
	return cfg, nil
}

func main() {
	err := newRootCommand().Execute()
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
