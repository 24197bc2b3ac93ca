package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when an identifier is already used in a collection.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrCapacityExceeded is returned when a collection is full.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrValidation is returned when a field value is rejected.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced client or product does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned when an order asks for more than the product has.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrAborted is returned when the operator declines a partial order.
	ErrAborted = errors.New("aborted")

	// ErrPersistenceUnavailable is returned when the data file cannot be read or written.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	// ErrDataUnreadable marks a data file that exists but could not be read.
	// Saving over it would lose the records it holds.
	ErrDataUnreadable = errors.New("existing data file could not be read")
)

// Field identifies the value that failed validation.
type Field string

const (
	FieldPhone       Field = "phone"
	FieldClientName  Field = "client_name"
	FieldProductName Field = "product_name"
	FieldPrice       Field = "price"
	FieldStock       Field = "stock"
	FieldQuantity    Field = "quantity"
)

// DuplicateIDError reports an add with an identifier already present.
type DuplicateIDError struct {
	Kind Kind
	ID   int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s %d already exists", e.Kind, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

// CapacityError reports an add into a full collection.
type CapacityError struct {
	Kind Kind
	Max  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s capacity reached (max %d)", e.Kind, e.Max)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field   Field
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a lookup of a missing client or product.
type NotFoundError struct {
	Kind Kind
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InsufficientStockError reports a declined partial order. No state was changed.
type InsufficientStockError struct {
	ProductID int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, only %d left; order aborted",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock || target == ErrAborted
}

// PersistenceError reports a failed read or write of the backing file.
// The in-memory state is still valid when this is returned.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistenceUnavailable }
