package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/pt/internal/cli"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all products, clients and orders",
	Long: `Delete every product, client and order and save the empty data file.

Asks for confirmation unless --force is given. Order numbers keep
counting up after a clear; they are never reused.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearForce bool

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	counts := e.Store().Counts()
	if !clearForce {
		question := fmt.Sprintf("Delete %s, %s and %s?",
			pluralize(counts.Products, "product"),
			pluralize(counts.Clients, "client"),
			pluralize(counts.Orders, "order"))
		if !cli.Confirm(stdin, os.Stdout, question) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	res := e.ClearAll()
	fmt.Println("All records deleted.")
	printWarning(res.Warning)
	return nil
}
