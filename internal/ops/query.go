package ops

import (
	"github.com/jacksmith/pt/internal/model"
	"github.com/shopspring/decimal"
)

// ProductFilter specifies criteria for listing products.
type ProductFilter struct {
	Name  string            // exact product name, empty for all
	Level *model.StockLevel // nil for all levels
}

// ProductView is a product with its derived stock level.
type ProductView struct {
	Product model.Product
	Level   model.StockLevel
}

// OrderFilter specifies criteria for listing orders. Zero means any.
type OrderFilter struct {
	ClientID  int
	ProductID int
}

// Summary aggregates the store for a quick overview.
type Summary struct {
	Products   int
	Clients    int
	Orders     int
	UnitsSold  int
	Revenue    decimal.Decimal
	LowStock   int
	OutOfStock int
}

// LowStockThreshold returns the threshold used for stock levels.
func (e *Engine) LowStockThreshold() int {
	return e.lowStockThreshold
}

// ListProducts returns products matching filter in insertion order.
func (e *Engine) ListProducts(filter ProductFilter) []ProductView {
	var results []ProductView
	for _, p := range e.store.Products() {
		if filter.Name != "" && p.Name != filter.Name {
			continue
		}
		level := model.ComputeStockLevel(&p, e.lowStockThreshold)
		if filter.Level != nil && level != *filter.Level {
			continue
		}
		results = append(results, ProductView{Product: p, Level: level})
	}
	return results
}

// ListClients returns all clients in insertion order.
func (e *Engine) ListClients() []model.Client {
	return e.store.Clients()
}

// ListOrders returns orders matching filter in creation order.
func (e *Engine) ListOrders(filter OrderFilter) []model.Order {
	var results []model.Order
	for _, o := range e.store.Orders() {
		if filter.ClientID != 0 && o.ClientID != filter.ClientID {
			continue
		}
		if filter.ProductID != 0 && o.ProductID != filter.ProductID {
			continue
		}
		results = append(results, o)
	}
	return results
}

// GetProduct returns a copy of product id.
func (e *Engine) GetProduct(id int) (model.Product, error) {
	p := e.store.Product(id)
	if p == nil {
		return model.Product{}, &model.NotFoundError{Kind: model.KindProduct, ID: id}
	}
	return *p, nil
}

// GetClient returns a copy of client id.
func (e *Engine) GetClient(id int) (model.Client, error) {
	c := e.store.Client(id)
	if c == nil {
		return model.Client{}, &model.NotFoundError{Kind: model.KindClient, ID: id}
	}
	return *c, nil
}

// Summary computes totals over the whole store.
func (e *Engine) Summary() Summary {
	counts := e.store.Counts()
	sum := Summary{
		Products: counts.Products,
		Clients:  counts.Clients,
		Orders:   counts.Orders,
		Revenue:  decimal.Zero,
	}

	for _, o := range e.store.Orders() {
		sum.UnitsSold += o.Quantity
		sum.Revenue = sum.Revenue.Add(o.Total)
	}
	for _, p := range e.store.Products() {
		switch model.ComputeStockLevel(&p, e.lowStockThreshold) {
		case model.StockLevelLow:
			sum.LowStock++
		case model.StockLevelOut:
			sum.OutOfStock++
		}
	}

	return sum
}
