package errors

import (
	"math"
	"slices"
	"strings"
)

// ValidateCount checks that n is at least minimum. what names the counted
// thing in the message ("points", "clusters").
func ValidateCount(what string, n, minimum int) error {
	if n < minimum {
		return New(ErrCodeInvalidInput, "need at least %d %s, got %d", minimum, what, n)
	}
	return nil
}

// ValidateLimit checks that n does not exceed limit. A limit of 0 disables
// the check.
func ValidateLimit(what string, n, limit int) error {
	if limit > 0 && n > limit {
		return New(ErrCodeTooLarge, "too many %s: %d (max %d)", what, n, limit)
	}
	return nil
}

// ValidatePositive checks that v is a finite number greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be a positive number, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative checks that v is a finite number not below zero.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidConfig, "%s must be zero or positive, got %v", name, v)
	}
	return nil
}

// ValidateOneOf checks that v is one of allowed.
func ValidateOneOf(name, v string, allowed ...string) error {
	if !slices.Contains(allowed, v) {
		return New(ErrCodeInvalidConfig, "invalid %s: %q (must be one of: %s)", name, v, strings.Join(allowed, ", "))
	}
	return nil
}
