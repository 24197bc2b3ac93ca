package model

import (
	"unicode"

	"github.com/shopspring/decimal"
)

// PhoneLength is the exact number of digits in a phone number.
const PhoneLength = 8

// ValidPhone reports whether s is exactly eight ASCII digits.
func ValidPhone(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidClientName reports whether every character of s is a letter or a space.
// The empty string passes; callers decide whether to accept it.
func ValidClientName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// ValidProductName reports whether s is one of ProductNames. Matching is case-sensitive.
func ValidProductName(s string) bool {
	for _, name := range ProductNames {
		if s == name {
			return true
		}
	}
	return false
}

// ValidPrice reports whether p is strictly positive.
func ValidPrice(p decimal.Decimal) bool {
	return p.IsPositive()
}

// ValidStock reports whether n is a usable stock level.
func ValidStock(n int) bool {
	return n >= 0
}

// ValidQuantity reports whether n is a usable order quantity.
func ValidQuantity(n int) bool {
	return n > 0
}
