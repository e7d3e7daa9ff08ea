package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/taxease/internal/compare"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/rgehrsitz/taxease/internal/transform"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [scenarios-file]",
		Short: "Compare what-if tax scenarios against a base",
		Long: `Compare the scenarios of a scenarios file against its base scenario,
optionally adding alternatives built from templates or transforms.

Examples:
  taxease compare scenarios.yaml
  taxease compare scenarios.yaml --base Current --templates max_80c,employer_nps_10
  taxease compare scenarios.yaml --transform "add_gain:type=ltcg,asset=equity,amount=250000" --format csv
  taxease compare scenarios.yaml --format xlsx --output comparison.xlsx
  taxease compare --list-templates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}

			if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates(engine.Rules)))
				fmt.Fprintf(cmd.OutOrStdout(), "\nAvailable Transforms: %s\n", strings.Join(transform.NewTransformRegistry().List(), ", "))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("scenarios file required for comparison (use --list-templates to see available templates)")
			}
			inputFile := args[0]

			file, err := config.NewInputParserWithRules(engine.Rules).LoadScenariosFromFile(inputFile)
			if err != nil {
				return err
			}

			baseScenarioName, _ := cmd.Flags().GetString("base")
			templatesStr, _ := cmd.Flags().GetString("templates")
			transformSpecs, _ := cmd.Flags().GetStringArray("transform")
			outputFormat, _ := cmd.Flags().GetString("format")

			comparisonSet, err := compare.NewCompareEngine(engine).Compare(context.Background(), file, compare.CompareOptions{
				BaseScenarioName: baseScenarioName,
				Templates:        transform.ParseTemplateList(templatesStr),
				Transforms:       transformSpecs,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			comparisonSet.ConfigPath = inputFile

			out := cmd.OutOrStdout()
			switch strings.ToLower(outputFormat) {
			case "csv":
				text, err := (&compare.CSVFormatter{}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)
			case "json":
				text, err := (&compare.JSONFormatter{Pretty: true}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprint(out, text)
			case "xlsx":
				data, err := (&compare.XLSXFormatter{}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to build workbook: %w", err)
				}
				path, _ := cmd.Flags().GetString("output")
				if path == "" {
					path = "comparison.xlsx"
				}
				if err := os.WriteFile(path, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintf(out, "Comparison written to %s\n", path)
			case "compact":
				fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(comparisonSet))
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(comparisonSet))
			default:
				return fmt.Errorf("%w: %s (valid: table, compact, csv, json, xlsx)", domain.ErrUnknownFormat, outputFormat)
			}
			return nil
		},
	}
	cmd.Flags().String("base", "", "Base scenario name (default: the file's base, then the first scenario)")
	cmd.Flags().String("templates", "", "Comma-separated templates applied to the base scenario")
	cmd.Flags().StringArray("transform", nil, "Transform spec applied to the base scenario, e.g. raise_salary:percent=10 (repeatable)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json, xlsx)")
	cmd.Flags().StringP("output", "o", "", "Workbook path for xlsx output (default: comparison.xlsx)")
	cmd.Flags().Bool("list-templates", false, "List all available templates and transforms")
	return cmd
}
