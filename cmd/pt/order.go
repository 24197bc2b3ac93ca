package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/pt/internal/cli"
	"github.com/jacksmith/pt/internal/model"
	"github.com/jacksmith/pt/internal/ops"
	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:     "order",
	Aliases: []string{"orders", "o"},
	Short:   "Place and list orders",
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place <client-id> <product-id> <quantity>",
	Short: "Place an order",
	Long: `Place an order and take its quantity out of stock.

When the product has fewer units than requested, pt asks whether to
order the remaining stock instead. Answer o (oui) or y to accept.
--yes and --no answer the question in advance.

A product with no stock at all cannot be ordered.

Examples:
  pt order place 1 1 4
  pt order place 1 2 12 --yes`,
	Args:              cobra.ExactArgs(3),
	RunE:              runOrderPlace,
	ValidArgsFunction: completeOrderArgs,
}

var orderListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List orders",
	Args:    cobra.NoArgs,
	RunE:    runOrderList,
}

var (
	orderYes bool
	orderNo  bool

	orderListClient  string
	orderListProduct string
)

func init() {
	orderPlaceCmd.Flags().BoolVarP(&orderYes, "yes", "y", false, "accept a reduced order without asking")
	orderPlaceCmd.Flags().BoolVarP(&orderNo, "no", "n", false, "decline a reduced order without asking")
	orderPlaceCmd.MarkFlagsMutuallyExclusive("yes", "no")

	orderListCmd.Flags().StringVar(&orderListClient, "client", "", "only orders from this client")
	orderListCmd.Flags().StringVar(&orderListProduct, "product", "", "only orders for this product")
	orderListCmd.RegisterFlagCompletionFunc("client", completeClientIDs)
	orderListCmd.RegisterFlagCompletionFunc("product", completeProductIDs)

	orderCmd.AddCommand(orderPlaceCmd, orderListCmd)
	rootCmd.AddCommand(orderCmd)
}

func runOrderPlace(cmd *cobra.Command, args []string) error {
	if orderYes && orderNo {
		return fmt.Errorf("--yes and --no cannot be used together")
	}

	clientID, err := model.ParseID(model.KindClient, args[0])
	if err != nil {
		return err
	}
	productID, err := model.ParseID(model.KindProduct, args[1])
	if err != nil {
		return err
	}
	quantity, err := parseCount(model.FieldQuantity, args[2])
	if err != nil {
		return err
	}

	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	res, err := e.PlaceOrder(ops.OrderRequest{
		ClientID:  clientID,
		ProductID: productID,
		Quantity:  quantity,
	}, orderConfirm())
	if err != nil {
		return err
	}

	o := res.Order
	p, _ := e.GetProduct(o.ProductID)
	fmt.Printf("Order %s placed: %d x %s for client %s, total %s.\n",
		model.FormatID(o.ID), o.Quantity, p.Name, model.FormatID(o.ClientID), cli.Money(o.Total))
	if res.Partial {
		fmt.Println(cli.Yellow(fmt.Sprintf("Reduced from %d; %s is now out of stock.", res.Requested, p.Name)))
	}
	printWarning(res.Warning)
	return nil
}

// orderConfirm answers the partial-order question from --yes/--no, or
// asks on stdin.
func orderConfirm() ops.ConfirmFunc {
	switch {
	case orderYes:
		return func(int, int) bool { return true }
	case orderNo:
		return func(int, int) bool { return false }
	}
	return func(requested, available int) bool {
		question := fmt.Sprintf("Only %d left, %d requested. Order %d instead?", available, requested, available)
		return cli.Confirm(stdin, os.Stdout, question)
	}
}

func runOrderList(cmd *cobra.Command, args []string) error {
	filter := ops.OrderFilter{}
	if orderListClient != "" {
		id, err := model.ParseID(model.KindClient, orderListClient)
		if err != nil {
			return err
		}
		filter.ClientID = id
	}
	if orderListProduct != "" {
		id, err := model.ParseID(model.KindProduct, orderListProduct)
		if err != nil {
			return err
		}
		filter.ProductID = id
	}

	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	orders := e.ListOrders(filter)
	if len(orders) == 0 {
		fmt.Println("No orders.")
		return nil
	}

	table := cli.NewTable()
	table.AlignRight(3, 4)
	for _, o := range orders {
		table.AddRow(
			model.FormatID(o.ID),
			clientLabel(e, o.ClientID),
			productLabel(e, o.ProductID),
			"x"+strconv.Itoa(o.Quantity),
			cli.Money(o.Total),
		)
	}
	table.Render(os.Stdout)
	return nil
}

// clientLabel names a client for listings. Orders may outlive a hand-edited
// client, so a missing one is shown in red.
func clientLabel(e *ops.Engine, id int) string {
	c, err := e.GetClient(id)
	if err != nil {
		return cli.Red(model.FormatID(id) + " ?")
	}
	return model.FormatID(id) + " " + cli.Truncate(c.Name, cli.DefaultMaxNameWidth)
}

func productLabel(e *ops.Engine, id int) string {
	p, err := e.GetProduct(id)
	if err != nil {
		return cli.Red(model.FormatID(id) + " ?")
	}
	return model.FormatID(id) + " " + p.Name
}
