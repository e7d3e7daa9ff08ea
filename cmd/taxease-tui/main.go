package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/rgehrsitz/taxease/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:          "taxease-tui [request-file]",
		Short:        "Interactive old vs new regime calculator",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := domain.DefaultRulesFY2024_25()
			if rulesPath, _ := cmd.Flags().GetString("rules"); rulesPath != "" {
				var err error
				if rules, err = config.LoadRulesFromFile(rulesPath); err != nil {
					return err
				}
			}
			engine := calculation.NewTaxEngineWithRules(rules)

			var req *domain.TaxRequest
			if len(args) > 0 {
				var err error
				if req, err = config.NewInputParserWithRules(rules).LoadRequestFromFile(args[0]); err != nil {
					return err
				}
			}

			p := tea.NewProgram(tui.NewModel(engine, req), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
	root.Flags().String("rules", "", "Path to a tax-year rules YAML file (default: built-in FY2024-25)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
