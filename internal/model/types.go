// Package model defines the core data structures for pt.
package model

import "github.com/shopspring/decimal"

// Product names accepted by the catalog.
const (
	ProductGateau    = "gateau"
	ProductTarte     = "tarte"
	ProductCroissant = "croissant"
)

// ProductNames is the closed set of sellable product names, in display order.
var ProductNames = []string{ProductGateau, ProductTarte, ProductCroissant}

// Kind names an entity collection. It is used in error messages and warnings.
type Kind string

const (
	KindProduct Kind = "product"
	KindClient  Kind = "client"
	KindOrder   Kind = "order"
)

// Product is a sellable catalog item.
type Product struct {
	ID    int             `yaml:"id"`
	Name  string          `yaml:"name"`
	Price decimal.Decimal `yaml:"price"`
	Stock int             `yaml:"stock"`
}

// Client is a buyer.
type Client struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

// Order links one client to one product with the fulfilled quantity.
// Orders are never modified once created.
type Order struct {
	ID        int             `yaml:"id"`
	ClientID  int             `yaml:"client_id"`
	ProductID int             `yaml:"product_id"`
	Quantity  int             `yaml:"quantity"`
	Total     decimal.Decimal `yaml:"total"`
}

// LineTotal returns price × quantity rounded to cents.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
