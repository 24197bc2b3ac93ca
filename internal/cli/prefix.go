// Package cli provides CLI infrastructure for pt.
package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/pt/internal/model"
)

// Match finds a unique candidate from a prefix. Matching is case-sensitive
// and an exact match wins over prefix matches. what names the candidates
// in error messages.
func Match(prefix string, candidates []string, what string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("empty %s", what)
	}

	for _, c := range candidates {
		if c == prefix {
			return c, nil
		}
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown %s %q (choose one of %s)", what, prefix, strings.Join(candidates, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous %s %q matches: %s", what, prefix, strings.Join(matches, ", "))
	}
}

// MatchProductName resolves a catalog name from a prefix, so "cr" gives
// "croissant". Case is not folded: "Cr" and other unknown names are
// returned unchanged for the engine to reject with a validation error.
func MatchProductName(prefix string) string {
	name, err := Match(prefix, model.ProductNames, "product name")
	if err != nil {
		return prefix
	}
	return name
}
