package model

// StockLevel represents the derived availability of a product.
type StockLevel string

const (
	StockLevelIn  StockLevel = "in_stock"
	StockLevelLow StockLevel = "low"
	StockLevelOut StockLevel = "out"
)

// DefaultLowStockThreshold is the stock at or below which a product is low.
const DefaultLowStockThreshold = 5

// ComputeStockLevel returns the derived level for a product.
// A product with no stock is out. A product at or below threshold is low.
// A threshold of zero or less disables the low level.
func ComputeStockLevel(p *Product, threshold int) StockLevel {
	if p.Stock <= 0 {
		return StockLevelOut
	}
	if threshold > 0 && p.Stock <= threshold {
		return StockLevelLow
	}
	return StockLevelIn
}

// CanFulfill reports whether p has at least quantity units.
func CanFulfill(p *Product, quantity int) bool {
	return p.Stock >= quantity
}
