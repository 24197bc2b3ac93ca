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

var productCmd = &cobra.Command{
	Use:     "product",
	Aliases: []string{"products", "p"},
	Short:   "Manage products",
	Long: `Manage the product catalog.

Products are one of gateau, tarte or croissant. Names may be abbreviated
to any unique prefix, so "cr" means croissant.`,
}

var productAddCmd = &cobra.Command{
	Use:   "add <id> <name> <price> <stock>",
	Short: "Add a product",
	Long: `Add a product to the catalog.

Examples:
  pt product add 1 tarte 5.00 10
  pt product add 2 gat 18,50 4       # gateau, comma as decimal separator`,
	Args:              cobra.ExactArgs(4),
	RunE:              runProductAdd,
	ValidArgsFunction: completeProductAddArgs,
}

var productEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a product",
	Long: `Edit a product's fields.

Use flags to change specific fields, or -i to edit in $EDITOR.
Nothing is changed if any new value is invalid.

Examples:
  pt product edit 1 --stock 25
  pt product edit 1 --price 5.50 --name croissant
  pt product edit 1 -i`,
	Args:              cobra.ExactArgs(1),
	RunE:              runProductEdit,
	ValidArgsFunction: completeProductIDs,
}

var productListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List products",
	Long: `List products in the order they were added.

Each product shows its stock level: in_stock, low (at or below
low_stock_threshold) or out.`,
	Args: cobra.NoArgs,
	RunE: runProductList,
}

var (
	productEditName        string
	productEditPrice       string
	productEditStock       int
	productEditInteractive bool

	productListName string
	productListLow  bool
	productListOut  bool
)

func init() {
	productEditCmd.Flags().StringVar(&productEditName, "name", "", "set product name")
	productEditCmd.Flags().StringVar(&productEditPrice, "price", "", "set unit price")
	productEditCmd.Flags().IntVar(&productEditStock, "stock", 0, "set units in stock")
	productEditCmd.Flags().BoolVarP(&productEditInteractive, "interactive", "i", false, "edit in $EDITOR")
	productEditCmd.RegisterFlagCompletionFunc("name", completeProductNames)

	productListCmd.Flags().StringVar(&productListName, "name", "", "only products with this name")
	productListCmd.Flags().BoolVar(&productListLow, "low", false, "only products with low stock")
	productListCmd.Flags().BoolVar(&productListOut, "out", false, "only products out of stock")
	productListCmd.RegisterFlagCompletionFunc("name", completeProductNames)
	productListCmd.MarkFlagsMutuallyExclusive("low", "out")

	productCmd.AddCommand(productAddCmd, productEditCmd, productListCmd)
	rootCmd.AddCommand(productCmd)
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(model.KindProduct, args[0])
	if err != nil {
		return err
	}
	price, err := model.ParsePrice(args[2])
	if err != nil {
		return err
	}
	stock, err := parseCount(model.FieldStock, args[3])
	if err != nil {
		return err
	}

	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	res, err := e.AddProduct(ops.ProductInput{
		ID:    id,
		Name:  cli.MatchProductName(args[1]),
		Price: price,
		Stock: stock,
	})
	if err != nil {
		return err
	}

	p, _ := e.GetProduct(id)
	fmt.Printf("Product %s added: %s at %s, %d in stock.\n", model.FormatID(id), p.Name, cli.Money(p.Price), p.Stock)
	printWarning(res.Warning)
	return nil
}

func runProductEdit(cmd *cobra.Command, args []string) error {
	id, err := model.ParseID(model.KindProduct, args[0])
	if err != nil {
		return err
	}

	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	var changes ops.ProductChanges
	if productEditInteractive {
		changes, err = editProductInteractive(e, id)
		if errors.Is(err, cli.ErrNoChanges) {
			fmt.Println("No changes.")
			return nil
		}
		if err != nil {
			return err
		}
	} else {
		changes, err = productChangesFromFlags(cmd)
		if err != nil {
			return err
		}
	}

	res, err := e.EditProduct(id, changes)
	if err != nil {
		return err
	}

	fmt.Printf("Product %s updated.\n", model.FormatID(id))
	printWarning(res.Warning)
	return nil
}

func productChangesFromFlags(cmd *cobra.Command) (ops.ProductChanges, error) {
	var changes ops.ProductChanges
	hasChanges := false

	if cmd.Flags().Changed("name") {
		name := cli.MatchProductName(productEditName)
		changes.Name = &name
		hasChanges = true
	}
	if cmd.Flags().Changed("price") {
		price, err := model.ParsePrice(productEditPrice)
		if err != nil {
			return changes, err
		}
		changes.Price = &price
		hasChanges = true
	}
	if cmd.Flags().Changed("stock") {
		stock := productEditStock
		changes.Stock = &stock
		hasChanges = true
	}

	if !hasChanges {
		return changes, fmt.Errorf("no changes specified")
	}
	return changes, nil
}

// editableProduct is the YAML form of a product for interactive editing.
// Price is a string so that both "5.5" and "5,50" survive the round trip.
type editableProduct struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Stock int    `yaml:"stock"`
}

func editProductInteractive(e *ops.Engine, id int) (ops.ProductChanges, error) {
	var changes ops.ProductChanges

	p, err := e.GetProduct(id)
	if err != nil {
		return changes, err
	}

	editable := editableProduct{Name: p.Name, Price: cli.Money(p.Price), Stock: p.Stock}
	header := fmt.Sprintf("# Editing product %s\n# name: one of %v\n# Save and close editor to apply changes. Exit without saving to cancel.\n\n",
		model.FormatID(id), model.ProductNames)
	if err := cli.EditYAML(&editable, header); err != nil {
		return changes, err
	}

	if editable.Name != p.Name {
		name := cli.MatchProductName(editable.Name)
		changes.Name = &name
	}
	price, err := model.ParsePrice(editable.Price)
	if err != nil {
		return changes, err
	}
	if !price.Equal(p.Price) {
		changes.Price = &price
	}
	if editable.Stock != p.Stock {
		changes.Stock = &editable.Stock
	}
	return changes, nil
}

func runProductList(cmd *cobra.Command, args []string) error {
	e, done, err := openEngine()
	if err != nil {
		return err
	}
	defer done()

	filter := ops.ProductFilter{}
	if productListName != "" {
		name, err := cli.Match(productListName, model.ProductNames, "product name")
		if err != nil {
			return err
		}
		filter.Name = name
	}
	switch {
	case productListLow:
		level := model.StockLevelLow
		filter.Level = &level
	case productListOut:
		level := model.StockLevelOut
		filter.Level = &level
	}

	products := e.ListProducts(filter)
	if len(products) == 0 {
		fmt.Println("No products.")
		return nil
	}

	table := cli.NewTable()
	table.AlignRight(2, 3)
	for _, v := range products {
		table.AddRow(
			model.FormatID(v.Product.ID),
			v.Product.Name,
			cli.Money(v.Product.Price),
			strconv.Itoa(v.Product.Stock),
			cli.Level(v.Level),
		)
	}
	table.Render(os.Stdout)
	return nil
}

// parseCount parses a whole number typed by the operator. Range checks are
// left to the engine.
func parseCount(field model.Field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &model.ValidationError{Field: field, Value: s, Message: "must be a whole number"}
	}
	return n, nil
}
