package ops

import (
	"strings"

	"github.com/jacksmith/pt/internal/model"
	"go.uber.org/zap"
)

// ClientInput contains the fields of a new client.
type ClientInput struct {
	ID    int
	Name  string
	Phone string
}

// ClientChanges represents fields that can be updated on a client.
// Nil fields are left untouched.
type ClientChanges struct {
	Name  *string
	Phone *string
}

// ValidatePhone checks that phone is exactly eight digits.
func ValidatePhone(phone string) error {
	if !model.ValidPhone(phone) {
		return &model.ValidationError{
			Field:   model.FieldPhone,
			Value:   phone,
			Message: "must be exactly 8 digits",
		}
	}
	return nil
}

// validateClientName applies the character rule and the empty-name policy.
func (e *Engine) validateClientName(name string) error {
	if !model.ValidClientName(name) {
		return &model.ValidationError{
			Field:   model.FieldClientName,
			Value:   name,
			Message: "must contain only letters and spaces",
		}
	}
	if strings.TrimSpace(name) == "" && !e.allowEmptyClientName {
		return &model.ValidationError{
			Field:   model.FieldClientName,
			Message: "must not be empty",
		}
	}
	return nil
}

// AddClient creates a new client.
// Checks run in order: capacity, duplicate ID, name, phone.
func (e *Engine) AddClient(in ClientInput) (Result, error) {
	if err := e.store.CanAppendClient(in.ID); err != nil {
		return Result{}, err
	}
	if err := e.validateClientName(in.Name); err != nil {
		return Result{}, err
	}
	if err := ValidatePhone(in.Phone); err != nil {
		return Result{}, err
	}

	c := model.Client{ID: in.ID, Name: in.Name, Phone: in.Phone}
	if err := e.store.AppendClient(c); err != nil {
		return Result{}, err
	}

	e.logger.Info("client added", zap.Int("id", c.ID), zap.String("name", c.Name))
	return Result{Warning: e.persist("add_client")}, nil
}

// EditClient modifies an existing client.
// All changes are validated before any field is written, so a bad phone
// number leaves the name untouched too.
func (e *Engine) EditClient(id int, changes ClientChanges) (Result, error) {
	c := e.store.Client(id)
	if c == nil {
		return Result{}, &model.NotFoundError{Kind: model.KindClient, ID: id}
	}

	name, phone := c.Name, c.Phone
	if changes.Name != nil {
		if err := e.validateClientName(*changes.Name); err != nil {
			return Result{}, err
		}
		name = *changes.Name
	}
	if changes.Phone != nil {
		if err := ValidatePhone(*changes.Phone); err != nil {
			return Result{}, err
		}
		phone = *changes.Phone
	}

	c.Name, c.Phone = name, phone

	e.logger.Info("client edited", zap.Int("id", id), zap.String("name", c.Name))
	return Result{Warning: e.persist("edit_client")}, nil
}
