package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization shared by the
// typed configuration fields (content status, log level, theme kind).
type Normalizer[T comparable] struct {
	validValues  map[string]T
	defaultValue T
	validKeys    []string // cached for error messages
}

// NewNormalizer creates a normalizer from a map of canonical string->value
// pairs. Keys are lowercased and trimmed before lookup.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))
	for k, v := range values {
		key := canonical(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	sort.Strings(validKeys)
	return &Normalizer[T]{
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    validKeys,
	}
}

// Normalize converts a raw string to the enum type, falling back to the
// default value when the string is not recognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, ok := n.validValues[canonical(raw)]; ok {
		return value
	}
	return n.defaultValue
}

// NormalizeWithError converts a raw string to the enum type and errors on
// unrecognized input instead of falling back.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if value, ok := n.validValues[canonical(raw)]; ok {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %v", raw, n.validKeys)
}

// IsValid reports whether raw maps to a known value.
func (n *Normalizer[T]) IsValid(raw string) bool {
	_, ok := n.validValues[canonical(raw)]
	return ok
}

// ValidKeys returns all valid normalized keys.
func (n *Normalizer[T]) ValidKeys() []string {
	result := make([]string, len(n.validKeys))
	copy(result, n.validKeys)
	return result
}

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
