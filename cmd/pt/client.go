package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/pt/internal/cli"
	"github.com/jacksmith/pt/internal/model"
	"github.com/jacksmith/pt/internal/ops"
	"github.com/spf13/cobra"
)

var clientCmd = &cobra.Command{
	Use:     "client",
	Aliases: []string{"clients", "c"},
	Short:   "Manage clients",
}

var clientAddCmd = &cobra.Command{
	Use:   "add <id> <name> <phone>",
	Short: "Add a client",
	Long: `Add a client.

Names contain only letters and spaces. Phone numbers are exactly 8 digits.

Examples:
  pt client add 1 Amira 22123456
  pt client add 2 "Sami Ben Ali" 98765432`,
	Args: cobra.ExactArgs(3),
	RunE: runClientAdd,
}

var clientEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a client",
	Long: `Edit a client's name or phone number.

Use flags to change specific fields, or -i to edit in $EDITOR.
Nothing is changed if any new value is invalid.

Examples:
  pt client edit 1 --phone 55000111
  pt client edit 1 --name "Amira Ben Salah"
  pt client edit 1 -i`,
	Args:              cobra.ExactArgs(1),
	RunE:              runClientEdit,
	ValidArgsFunction: completeClientIDs,
}

var clientListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List clients",
	Args:    cobra.NoArgs,
	RunE:    runClientList,
}

var (
	clientEditName        string
	clientEditPhone       string
	clientEditInteractive bool
)

func init() {
	clientEditCmd.Flags().StringVar(&clientEditName, "name", "", "set client name")
	clientEditCmd.Flags().StringVar(&clientEditPhone, "phone", "", "set phone number (8 digits)")
	clientEditCmd.Flags().BoolVarP(&clientEditInteractive, "interactive", "i", false, "edit in $EDITOR")

	clientCmd.AddCommand(clientAddCmd, clientEditCmd, clientListCmd)
	rootCmd.AddCommand(clientCmd)
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(model.KindClient, args[0])
	if err != nil {
		return err
	}

	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	res, err := e.AddClient(ops.ClientInput{ID: id, Name: args[1], Phone: args[2]})
	if err != nil {
		return err
	}

	fmt.Printf("Client %s added: %s.\n", model.FormatID(id), args[1])
	printWarning(res.Warning)
	return nil
}

func runClientEdit(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(model.KindClient, args[0])
	if err != nil {
		return err
	}

	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	var changes ops.ClientChanges
	if clientEditInteractive {
		changes, err = editClientInteractive(e, id)
		if errors.Is(err, cli.ErrNoChanges) {
			fmt.Println("No changes.")
			return nil
		}
		if err != nil {
			return err
		}
	} else {
		hasChanges := false
		if cmd.Flags().Changed("name") {
			name := clientEditName
			changes.Name = &name
			hasChanges = true
		}
		if cmd.Flags().Changed("phone") {
			phone := clientEditPhone
			changes.Phone = &phone
			hasChanges = true
		}
		if !hasChanges {
			return fmt.Errorf("no changes specified")
		}
	}

	res, err := e.EditClient(id, changes)
	if err != nil {
		return err
	}

	fmt.Printf("Client %s updated.\n", model.FormatID(id))
	printWarning(res.Warning)
	return nil
}

// editableClient is the YAML form of a client for interactive editing.
type editableClient struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

func editClientInteractive(e *ops.Engine, id int) (ops.ClientChanges, error) {
	var changes ops.ClientChanges

	c, err := e.GetClient(id)
	if err != nil {
		return changes, err
	}

	editable := editableClient{Name: c.Name, Phone: c.Phone}
	header := fmt.Sprintf("# Editing client %s\n# Save and close editor to apply changes. Exit without saving to cancel.\n\n", model.FormatID(id))
	if err := cli.EditYAML(&editable, header); err != nil {
		return changes, err
	}

	if editable.Name != c.Name {
		changes.Name = &editable.Name
	}
	if editable.Phone != c.Phone {
		changes.Phone = &editable.Phone
	}
	return changes, nil
}

func runClientList(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	clients := e.ListClients()
	if len(clients) == 0 {
		fmt.Println("No clients.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxNameWidth)
	for _, c := range clients {
		orders := len(e.ListOrders(ops.OrderFilter{ClientID: c.ID}))
		table.AddRow(
			model.FormatID(c.ID),
			c.Name,
			c.Phone,
			cli.Gray(pluralize(orders, "order")),
		)
	}
	table.Render(os.Stdout)
	return nil
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
