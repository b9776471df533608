package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/prettyirrelevant/wakaru/internal/api"
	"github.com/prettyirrelevant/wakaru/internal/config"
	"github.com/prettyirrelevant/wakaru/internal/jobs"
	"github.com/prettyirrelevant/wakaru/internal/models"
	"github.com/prettyirrelevant/wakaru/internal/parser"
	"github.com/prettyirrelevant/wakaru/internal/writer"
)

var version = "1.0.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "wakaru",
	Short: "Normalize Nigerian bank statements into canonical transactions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <statement-file>",
	Short: "Parse a statement file and print the transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %q: %w", args[0], err)
		}

		bank, _ := cmd.Flags().GetString("bank")
		password, _ := cmd.Flags().GetString("password")
		output, _ := cmd.Flags().GetString("output")

		p := parser.New(logger)
		transactions, err := p.ParseFile(data, args[0], models.BankCode(bank), password, nil)
		if err != nil {
			return err
		}

		w := &writer.CSVWriter{IncludeHeader: true}
		if output != "" {
			if err := w.WriteToFile(output, models.BankCode(bank), transactions); err != nil {
				return err
			}
			logger.Info("wrote transactions", "count", len(transactions), "path", output)
			return nil
		}
		return w.Write(os.Stdout, models.BankCode(bank), transactions)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statement parsing HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		logger := newLogger(cfg)

		app := fiber.New(fiber.Config{
			BodyLimit:             cfg.Server.BodyLimitMB << 20,
			DisableStartupMessage: true,
		})

		handler := api.NewHandler(parser.New(logger), jobs.NewStore(), logger)
		handler.Register(app)

		logger.Info("starting server", "addr", cfg.Server.Addr)
		return app.Listen(cfg.Server.Addr)
	},
}

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List supported banks",
	Run: func(_ *cobra.Command, _ []string) {
		for _, code := range parser.SupportedBanks() {
			fmt.Println(code)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("wakaru " + version)
	},
}

func newLogger(cfg config.Config) *log.Logger {
	level := log.InfoLevel
	if parsed, err := log.ParseLevel(strings.ToLower(cfg.Log.Level)); err == nil {
		level = parsed
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    cfg.Log.Caller,
		ReportTimestamp: true,
		Prefix:          "wakaru",
		Level:           level,
	})
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	parseCmd.Flags().String("bank", "", "bank code (omit to auto-detect)")
	parseCmd.Flags().String("password", "", "password for protected PDFs")
	parseCmd.Flags().StringP("output", "o", "", "write CSV to this path instead of stdout")

	serveCmd.Flags().String("addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(parseCmd, serveCmd, banksCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
