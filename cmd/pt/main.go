// Package main is the entry point for the pt CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/pt/internal/cli"
	"github.com/jacksmith/pt/internal/logging"
	"github.com/jacksmith/pt/internal/ops"
	"github.com/jacksmith/pt/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// stdin is read by confirmation prompts. Tests replace it.
var stdin io.Reader = os.Stdin

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pt",
	Short: "pt - inventory and orders for a small pastry shop",
	Long: `pt keeps track of a pastry shop's products, clients and orders.

Everything lives in one plain-text data file (patisserie.txt by default)
in the current directory. The file is rewritten after every change.

Placing an order takes its quantity out of stock. When a product has
fewer units than requested, pt asks whether to order what is left.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("pt version {{.Version}}\n")
}

// openEngine loads the shop in the current directory. Load problems are
// printed as warnings; they never stop the command. The returned func
// flushes the logger.
func openEngine() (*ops.Engine, func(), error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, nil, err
	}
	cfg := s.Config()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	e, res := ops.Open(s,
		ops.WithLogger(logger),
		ops.WithAllowEmptyClientName(cfg.AllowEmptyClientName),
		ops.WithLowStockThreshold(cfg.LowStockThreshold),
	)
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, cli.Yellow("warning: skipped "+w.String()))
	}
	printWarning(res.Warning)

	return e, func() { _ = logger.Sync() }, nil
}

// printWarning reports a save or load problem that did not stop the command.
func printWarning(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, cli.FormatWarning(err))
	if hint := cli.Hint(err); hint != "" {
		fmt.Fprintln(os.Stderr, cli.Gray(hint))
	}
}
