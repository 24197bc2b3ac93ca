package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// idRegex matches IDs like 7, 007, #7
	idRegex = regexp.MustCompile(`^#?(\d+)$`)

	// priceRegex matches amounts like 5, 5.5, 5.50, 5,50
	priceRegex = regexp.MustCompile(`^\d+([.,]\d+)?$`)
)

// ParseID parses a record identifier for the given kind.
// Accepts 7, 007 and #7. Zero and negative numbers are rejected.
func ParseID(kind Kind, s string) (int, error) {
	matches := idRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a valid %s ID", ErrInvalidID, s, kind)
	}

	id, err := strconv.Atoi(matches[1])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}
	return id, nil
}

// FormatID formats an identifier for display.
func FormatID(id int) string {
	return "#" + strconv.Itoa(id)
}

// ParsePrice parses an amount typed by the operator. Both "." and "," are
// accepted as the decimal separator. The result is rounded to cents.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !priceRegex.MatchString(s) {
		return decimal.Zero, &ValidationError{Field: FieldPrice, Value: s, Message: "must be a number like 4.50"}
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: FieldPrice, Value: s, Message: err.Error()}
	}
	return d.Round(2), nil
}
