package main

import (
	"fmt"

	"github.com/jacksmith/pt/internal/cli"
	"github.com/jacksmith/pt/internal/model"
	"github.com/jacksmith/pt/internal/ops"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Check the data file for records pt would not have written itself.

Checks for:
- Orders referencing missing clients or products
- Duplicate order numbers
- Unknown product names, non-positive prices, negative stock
- Client names with digits or symbols, phone numbers that are not 8 digits
- Orders with a quantity below 1

Lines that could not be parsed at all are reported as warnings on load.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	issues := e.Validate()
	if len(issues) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	fmt.Printf("Found %d issue(s):\n\n", len(issues))
	for _, is := range issues {
		fmt.Printf("%s %s %s: %s\n", is.Kind, model.FormatID(is.ID), formatIssueType(is.Type), is.Message)
	}
	return fmt.Errorf("found %d issue(s)", len(issues))
}

func formatIssueType(t ops.IssueType) string {
	switch t {
	case ops.IssueOrphanClient:
		return cli.Red("[orphan client]")
	case ops.IssueOrphanProduct:
		return cli.Red("[orphan product]")
	case ops.IssueDuplicateOrderID:
		return cli.Red("[duplicate ID]")
	case ops.IssueInvalidField:
		return cli.Yellow("[invalid]")
	case ops.IssueUnaddressableID:
		return cli.Yellow("[unusable ID]")
	}
	return string(t)
}
