package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"devconsole/internal/agent"
	"devconsole/internal/catalog"
	"devconsole/internal/config"
	"devconsole/internal/execute"
	"devconsole/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "devconsole",
		Short: "Interactive command terminal for the device fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runConsole(cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a devconsole.yaml")

	agentCmd := &cobra.Command{
		Use:   "agent",
		Short: "Run the local device agent the console talks to",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return agent.NewServer().ListenAndServe(cfg.ListenAddr)
		},
	}
	root.AddCommand(agentCmd)
	return root
}

func runConsole(cfg config.Config) error {
	transport := execute.NewHTTPTransport(cfg.AgentURL, cfg.ExecuteTimeout())
	provider := catalog.NewHTTP(cfg.AgentURL, cfg.CatalogTimeout(), catalog.NewStatic(catalog.Defaults()))
	model := tui.New(cfg, transport, provider)
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("devconsole fatal error: %w", err)
	}
	return nil
}
