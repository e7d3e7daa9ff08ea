package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/domain"
)

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s value %q: %w", name, raw, err)
	}
	return v, nil
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest deductions with unused headroom",
		Long: `List 80C, 80D and 80CCD(1B) headroom and the tax it could save.

Example:
  taxease suggest --salary 1000000 --80c 50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(cmd)
			if err != nil {
				return err
			}

			var req domain.SuggestionRequest
			if req.GrossSalary, err = decimalFlag(cmd, "salary"); err != nil {
				return err
			}
			if req.CurrentDeductions.Section80C, err = decimalFlag(cmd, "80c"); err != nil {
				return err
			}
			if req.CurrentDeductions.Section80D, err = decimalFlag(cmd, "80d"); err != nil {
				return err
			}
			if req.CurrentDeductions.NPS, err = decimalFlag(cmd, "nps"); err != nil {
				return err
			}

			report := calculation.NewSuggestionCalculator(rules.Suggestions).Suggest(req)

			out := cmd.OutOrStdout()
			if len(report.Suggestions) == 0 {
				fmt.Fprintln(out, "All tracked deductions are already maximized.")
				return nil
			}
			for _, s := range report.Suggestions {
				fmt.Fprintf(out, "%-10s %s\n", s.Section, s.Title)
				fmt.Fprintf(out, "           current %s, suggested %s (limit %s), saves %s\n",
					s.CurrentAmount, s.SuggestedAmount, s.MaxLimit, s.PotentialSaving)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, report.Message)
			return nil
		},
	}
	cmd.Flags().String("salary", "0", "Gross salary")
	cmd.Flags().String("80c", "0", "Current Section 80C investments")
	cmd.Flags().String("80d", "0", "Current Section 80D health insurance premium")
	cmd.Flags().String("nps", "0", "Current 80CCD(1B) NPS contribution")
	return cmd
}
