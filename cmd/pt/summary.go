package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/pt/internal/cli"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show shop totals",
	Long:  `Show record counts, units sold, revenue and products that need restocking.`,
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	sum := e.Summary()
	limits := e.Store().Limits()

	table := cli.NewTable()
	table.AlignRight(1)
	table.AddRow("Products:", usage(sum.Products, limits.MaxProducts))
	table.AddRow("Clients:", usage(sum.Clients, limits.MaxClients))
	table.AddRow("Orders:", usage(sum.Orders, limits.MaxOrders))
	table.AddRow("Units sold:", fmt.Sprintf("%d", sum.UnitsSold))
	table.AddRow("Revenue:", cli.Money(sum.Revenue))
	table.Render(os.Stdout)

	if sum.LowStock > 0 {
		fmt.Println(cli.Yellow(fmt.Sprintf("%s low on stock (at or below %d)", pluralize(sum.LowStock, "product"), e.LowStockThreshold())))
	}
	if sum.OutOfStock > 0 {
		fmt.Println(cli.Red(fmt.Sprintf("%s out of stock", pluralize(sum.OutOfStock, "product"))))
	}
	return nil
}

// usage formats a collection size against its capacity. A capacity of zero
// or less means unbounded.
func usage(n, max int) string {
	if max <= 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d/%d", n, max)
}
