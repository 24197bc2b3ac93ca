package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/pt/internal/model"
)

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " and adds a hint line for errors the
// operator can act on.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()
	if hint := Hint(err); hint != "" {
		msg += "\n" + Gray(hint)
	}
	return msg
}

// FormatWarning returns a warning line for a problem that did not stop the
// command, such as a failed save.
func FormatWarning(err error) string {
	if err == nil {
		return ""
	}
	return Yellow("warning: " + err.Error())
}

// Hint returns a suggestion for err, or "" when there is none.
func Hint(err error) string {
	var (
		dup      *model.DuplicateIDError
		capacity *model.CapacityError
		notFound *model.NotFoundError
		stock    *model.InsufficientStockError
	)

	switch {
	case errors.As(err, &dup):
		return fmt.Sprintf("use 'pt %s edit %d' to change it", dup.Kind, dup.ID)
	case errors.As(err, &capacity):
		return fmt.Sprintf("raise max_%ss in .ptconfig.yaml", capacity.Kind)
	case errors.As(err, &notFound):
		if notFound.Kind == model.KindOrder {
			return ""
		}
		return fmt.Sprintf("run 'pt %s list' to see existing IDs", notFound.Kind)
	case errors.As(err, &stock):
		if stock.Available > 0 {
			return fmt.Sprintf("order at most %d, or use --yes to accept the remaining stock", stock.Available)
		}
		return fmt.Sprintf("restock with 'pt product edit %d --stock N'", stock.ProductID)
	case errors.Is(err, model.ErrDataUnreadable):
		return "changes are not saved until the data file can be read; it was left untouched"
	case errors.Is(err, model.ErrPersistenceUnavailable):
		return "check that the data file and its directory are writable"
	}
	return ""
}
