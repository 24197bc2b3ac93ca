package ops

import (
	"strings"

	"github.com/jacksmith/pt/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductInput contains the fields of a new product.
type ProductInput struct {
	ID    int
	Name  string
	Price decimal.Decimal
	Stock int
}

// ProductChanges represents fields that can be updated on a product.
// Nil fields are left untouched.
type ProductChanges struct {
	Name  *string
	Price *decimal.Decimal
	Stock *int
}

// ValidateProductName checks that name is one of the catalog names.
func ValidateProductName(name string) error {
	if !model.ValidProductName(name) {
		return &model.ValidationError{
			Field:   model.FieldProductName,
			Value:   name,
			Message: "choose one of " + strings.Join(model.ProductNames, ", "),
		}
	}
	return nil
}

// ValidatePrice checks that price is positive once rounded to cents.
// It returns the rounded price.
func ValidatePrice(price decimal.Decimal) (decimal.Decimal, error) {
	rounded := price.Round(2)
	if !model.ValidPrice(rounded) {
		return rounded, &model.ValidationError{
			Field:   model.FieldPrice,
			Value:   price.String(),
			Message: "must be positive",
		}
	}
	return rounded, nil
}

// ValidateStock checks that stock is not negative.
func ValidateStock(stock int) error {
	if !model.ValidStock(stock) {
		return &model.ValidationError{
			Field:   model.FieldStock,
			Message: "must not be negative",
		}
	}
	return nil
}

// AddProduct creates a new product.
// Checks run in order: capacity, duplicate ID, name, price, stock.
func (e *Engine) AddProduct(in ProductInput) (Result, error) {
	if err := e.store.CanAppendProduct(in.ID); err != nil {
		return Result{}, err
	}
	if err := ValidateProductName(in.Name); err != nil {
		return Result{}, err
	}
	price, err := ValidatePrice(in.Price)
	if err != nil {
		return Result{}, err
	}
	if err := ValidateStock(in.Stock); err != nil {
		return Result{}, err
	}

	p := model.Product{
		ID:    in.ID,
		Name:  in.Name,
		Price: price,
		Stock: in.Stock,
	}
	if err := e.store.AppendProduct(p); err != nil {
		return Result{}, err
	}

	e.logger.Info("product added",
		zap.Int("id", p.ID),
		zap.String("name", p.Name),
		zap.String("price", p.Price.StringFixed(2)),
		zap.Int("stock", p.Stock),
	)
	return Result{Warning: e.persist("add_product")}, nil
}

// EditProduct modifies an existing product.
// All changes are validated before any field is written.
func (e *Engine) EditProduct(id int, changes ProductChanges) (Result, error) {
	p := e.store.Product(id)
	if p == nil {
		return Result{}, &model.NotFoundError{Kind: model.KindProduct, ID: id}
	}

	name, price, stock := p.Name, p.Price, p.Stock
	if changes.Name != nil {
		if err := ValidateProductName(*changes.Name); err != nil {
			return Result{}, err
		}
		name = *changes.Name
	}
	if changes.Price != nil {
		rounded, err := ValidatePrice(*changes.Price)
		if err != nil {
			return Result{}, err
		}
		price = rounded
	}
	if changes.Stock != nil {
		if err := ValidateStock(*changes.Stock); err != nil {
			return Result{}, err
		}
		stock = *changes.Stock
	}

	p.Name, p.Price, p.Stock = name, price, stock

	e.logger.Info("product edited",
		zap.Int("id", id),
		zap.String("name", p.Name),
		zap.String("price", p.Price.StringFixed(2)),
		zap.Int("stock", p.Stock),
	)
	return Result{Warning: e.persist("edit_product")}, nil
}
