package ops

import (
	"fmt"

	"github.com/jacksmith/pt/internal/model"
)

// IssueType represents the type of integrity issue.
type IssueType string

const (
	IssueOrphanClient     IssueType = "orphan_client"
	IssueOrphanProduct    IssueType = "orphan_product"
	IssueDuplicateOrderID IssueType = "duplicate_order_id"
	IssueInvalidField     IssueType = "invalid_field"
	// IssueUnaddressableID flags an identifier below 1. It loads, but no
	// command accepts it as an argument.
	IssueUnaddressableID IssueType = "unaddressable_id"
)

// Issue represents a data integrity problem found in the store.
// Records can reach the store without validation when the data file is
// edited by hand, so loaded data is checked separately.
type Issue struct {
	Type    IssueType
	Kind    model.Kind
	ID      int
	Message string
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s %s: %s - %s", i.Kind, model.FormatID(i.ID), i.Type, i.Message)
}

// Validate checks every record and returns the problems found, in
// products, clients, orders order.
func (e *Engine) Validate() []Issue {
	var issues []Issue

	for _, p := range e.store.Products() {
		if p.ID < 1 {
			issues = append(issues, idIssue(model.KindProduct, p.ID))
		}
		if err := ValidateProductName(p.Name); err != nil {
			issues = append(issues, fieldIssue(model.KindProduct, p.ID, err))
		}
		if !model.ValidPrice(p.Price) {
			issues = append(issues, Issue{
				Type:    IssueInvalidField,
				Kind:    model.KindProduct,
				ID:      p.ID,
				Message: fmt.Sprintf("price %s is not positive", p.Price.StringFixed(2)),
			})
		}
		if err := ValidateStock(p.Stock); err != nil {
			issues = append(issues, fieldIssue(model.KindProduct, p.ID, err))
		}
	}

	for _, c := range e.store.Clients() {
		if c.ID < 1 {
			issues = append(issues, idIssue(model.KindClient, c.ID))
		}
		if err := e.validateClientName(c.Name); err != nil {
			issues = append(issues, fieldIssue(model.KindClient, c.ID, err))
		}
		if err := ValidatePhone(c.Phone); err != nil {
			issues = append(issues, fieldIssue(model.KindClient, c.ID, err))
		}
	}

	seen := make(map[int]bool)
	for _, o := range e.store.Orders() {
		if seen[o.ID] {
			issues = append(issues, Issue{
				Type:    IssueDuplicateOrderID,
				Kind:    model.KindOrder,
				ID:      o.ID,
				Message: "order ID used more than once",
			})
		}
		seen[o.ID] = true

		if o.ID < 1 {
			issues = append(issues, idIssue(model.KindOrder, o.ID))
		}
		if !e.store.ClientExists(o.ClientID) {
			issues = append(issues, Issue{
				Type:    IssueOrphanClient,
				Kind:    model.KindOrder,
				ID:      o.ID,
				Message: fmt.Sprintf("references missing client %s", model.FormatID(o.ClientID)),
			})
		}
		if !e.store.ProductExists(o.ProductID) {
			issues = append(issues, Issue{
				Type:    IssueOrphanProduct,
				Kind:    model.KindOrder,
				ID:      o.ID,
				Message: fmt.Sprintf("references missing product %s", model.FormatID(o.ProductID)),
			})
		}
		if !model.ValidQuantity(o.Quantity) {
			issues = append(issues, Issue{
				Type:    IssueInvalidField,
				Kind:    model.KindOrder,
				ID:      o.ID,
				Message: fmt.Sprintf("quantity %d is not positive", o.Quantity),
			})
		}
	}

	return issues
}

func fieldIssue(kind model.Kind, id int, err error) Issue {
	return Issue{Type: IssueInvalidField, Kind: kind, ID: id, Message: err.Error()}
}

func idIssue(kind model.Kind, id int) Issue {
	return Issue{
		Type:    IssueUnaddressableID,
		Kind:    kind,
		ID:      id,
		Message: "identifiers start at 1; renumber it in the data file to use it from pt",
	}
}
