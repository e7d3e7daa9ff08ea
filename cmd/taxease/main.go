package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/rgehrsitz/taxease/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taxease",
		Short: "Indian income tax calculator CLI",
		Long: `Computes income tax under the old and new regimes, recommends the
cheaper one and compares what-if scenarios.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("rules", "", "Path to a tax-year rules YAML file (default: built-in FY2024-25)")
	root.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	root.AddCommand(
		calculateCmd(),
		validateCmd(),
		compareCmd(),
		breakevenCmd(),
		suggestCmd(),
		serveCmd(),
		rulesCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taxease %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// loadRules returns the built-in rules or the ones named by --rules
func loadRules(cmd *cobra.Command) (domain.TaxRules, error) {
	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile == "" {
		return domain.DefaultRulesFY2024_25(), nil
	}
	return config.LoadRulesFromFile(rulesFile)
}

// newEngine builds a tax engine honouring --rules and --debug
func newEngine(cmd *cobra.Command) (*calculation.TaxEngine, error) {
	rules, err := loadRules(cmd)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewTaxEngineWithRules(rules)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate tax under both regimes",
		Long: `Calculate tax for a request file (YAML or JSON) under both regimes.

Examples:
  taxease calculate request.yaml
  taxease calculate request.yaml --format json
  taxease calculate request.yaml --format html --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}

			parser := config.NewInputParserWithRules(engine.Rules)
			req, err := parser.LoadRequestFromFile(args[0])
			if err != nil {
				return err
			}
			result := engine.Compute(parser.Normalize(req))

			outputFormat, _ := cmd.Flags().GetString("format")
			f, err := output.LookupFormatterWithRules(outputFormat, &engine.Rules)
			if err != nil {
				return err
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				filename, err := output.WriteFormatted(f, result, output.FileExtension(f))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := f.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, json, csv, detailed-csv, html)")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(cmd)
			if err != nil {
				return err
			}

			if _, err := config.NewInputParserWithRules(rules).LoadRequestFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request file %s is valid\n", args[0])
			return nil
		},
	}
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the active tax-year rules as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rules); err != nil {
				return fmt.Errorf("failed to encode rules: %w", err)
			}
			return enc.Close()
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
