package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/taxease/internal/breakeven"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
)

func breakevenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven [input-file]",
		Short: "Find the deductions at which the old regime matches the new one",
		Long: `Search for the smallest total of old-regime-only deductions (Chapter VI-A
plus other deductions) at which the old regime is no costlier than the new regime.

Examples:
  taxease breakeven request.yaml
  taxease breakeven scenarios.yaml --scenarios
  taxease breakeven request.yaml --max 400000 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}

			var maxDeduction *decimal.Decimal
			if raw, _ := cmd.Flags().GetString("max"); raw != "" {
				v, err := decimalFlag(cmd, "max")
				if err != nil {
					return err
				}
				maxDeduction = &v
			}

			solver := breakeven.NewDefaultSolver(engine)
			parser := config.NewInputParserWithRules(engine.Rules)

			var results []breakeven.Result
			if multi, _ := cmd.Flags().GetBool("scenarios"); multi {
				file, err := parser.LoadScenariosFromFile(args[0])
				if err != nil {
					return err
				}
				if results, err = solver.SolveScenarios(cmd.Context(), file, maxDeduction); err != nil {
					return fmt.Errorf("break-even search failed: %w", err)
				}
			} else {
				req, err := parser.LoadRequestFromFile(args[0])
				if err != nil {
					return err
				}
				result, err := solver.Solve(cmd.Context(), breakeven.Request{Base: req, MaxDeduction: maxDeduction})
				if err != nil {
					return fmt.Errorf("break-even search failed: %w", err)
				}
				results = []breakeven.Result{*result}
			}

			out := cmd.OutOrStdout()
			format, _ := cmd.Flags().GetString("format")
			switch strings.ToLower(format) {
			case "json":
				text, err := (&breakeven.JSONFormatter{}).Format(results)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprint(out, text)
			case "table", "console", "":
				tf := &breakeven.TableFormatter{}
				if len(results) == 1 {
					fmt.Fprint(out, tf.Format(&results[0]))
				} else {
					fmt.Fprint(out, tf.FormatAll(results))
				}
			default:
				return fmt.Errorf("%w: %s (valid: table, json)", domain.ErrUnknownFormat, format)
			}
			return nil
		},
	}
	cmd.Flags().Bool("scenarios", false, "Treat the input as a scenarios file and solve every scenario")
	cmd.Flags().String("max", "", "Upper bound of the deduction search (default: gross salary)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}
