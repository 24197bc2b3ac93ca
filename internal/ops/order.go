package ops

import (
	"github.com/jacksmith/pt/internal/model"
	"go.uber.org/zap"
)

// OrderRequest describes an order before stock is checked.
type OrderRequest struct {
	ClientID  int
	ProductID int
	Quantity  int
}

// ConfirmFunc is asked whether to place a reduced order when the product
// has fewer than requested units. Returning false aborts the order.
type ConfirmFunc func(requested, available int) bool

// OrderResult contains the order that was placed.
type OrderResult struct {
	Order model.Order
	// Requested is the quantity asked for; Order.Quantity may be lower.
	Requested int
	// Partial is true when the order was reduced to the remaining stock.
	Partial bool
	// Warning is set when the order could not be saved.
	Warning error
}

// PlaceOrder creates an order and takes its quantity out of stock.
//
// When the product has fewer units than requested, confirm decides whether
// to order the remaining stock instead. A nil confirm declines. A declined
// order, or a request against a product with no stock at all, returns an
// *model.InsufficientStockError and changes nothing.
func (e *Engine) PlaceOrder(req OrderRequest, confirm ConfirmFunc) (OrderResult, error) {
	if err := e.store.CanAppendOrder(); err != nil {
		return OrderResult{}, err
	}
	if !e.store.ClientExists(req.ClientID) {
		return OrderResult{}, &model.NotFoundError{Kind: model.KindClient, ID: req.ClientID}
	}
	p := e.store.Product(req.ProductID)
	if p == nil {
		return OrderResult{}, &model.NotFoundError{Kind: model.KindProduct, ID: req.ProductID}
	}
	if !model.ValidQuantity(req.Quantity) {
		return OrderResult{}, &model.ValidationError{
			Field:   model.FieldQuantity,
			Message: "must be at least 1",
		}
	}

	quantity := req.Quantity
	partial := false
	if !model.CanFulfill(p, req.Quantity) {
		insufficient := &model.InsufficientStockError{
			ProductID: p.ID,
			Requested: req.Quantity,
			Available: p.Stock,
		}
		if p.Stock <= 0 || confirm == nil || !confirm(req.Quantity, p.Stock) {
			e.logger.Info("order aborted",
				zap.Int("product_id", p.ID),
				zap.Int("requested", req.Quantity),
				zap.Int("available", p.Stock),
			)
			return OrderResult{}, insufficient
		}
		quantity = p.Stock
		partial = true
	}

	order := model.Order{
		ID:        e.store.NextOrderID(),
		ClientID:  req.ClientID,
		ProductID: p.ID,
		Quantity:  quantity,
		Total:     model.LineTotal(p.Price, quantity),
	}
	if err := e.store.AppendOrder(order); err != nil {
		return OrderResult{}, err
	}
	p.Stock -= quantity

	e.logger.Info("order placed",
		zap.Int("id", order.ID),
		zap.Int("client_id", order.ClientID),
		zap.Int("product_id", order.ProductID),
		zap.Int("quantity", order.Quantity),
		zap.Bool("partial", partial),
		zap.String("total", order.Total.StringFixed(2)),
	)

	return OrderResult{
		Order:     order,
		Requested: req.Quantity,
		Partial:   partial,
		Warning:   e.persist("place_order"),
	}, nil
}
