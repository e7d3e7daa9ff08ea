package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tax API over HTTP",
		Long: `Serve the /api/enhanced-tax endpoints.

Settings come from TAXEASE_* environment variables, e.g. TAXEASE_SERVER_PORT,
TAXEASE_SERVER_READ_TIMEOUT and TAXEASE_RULES_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.Load()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				if !strings.Contains(port, ":") {
					port = ":" + port
				}
				cfg.Server.Port = port
			}

			engine, err := newEngine(cmd)
			if err != nil {
				return err
			}
			if rulesFlag, _ := cmd.Flags().GetString("rules"); rulesFlag == "" && cfg.Rules.File != "" {
				rules, err := config.LoadRulesFromFile(cfg.Rules.File)
				if err != nil {
					return err
				}
				logger := engine.Logger
				engine = calculation.NewTaxEngineWithRules(rules)
				engine.SetLogger(logger)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, engine, log.New(cmd.ErrOrStderr(), "taxease ", log.LstdFlags)).Run(ctx)
		},
	}
	cmd.Flags().String("port", "", "Listen address, overrides TAXEASE_SERVER_PORT")
	return cmd
}
