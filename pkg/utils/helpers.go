package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts a raw cell string into its typed value.
// Empty cells become nil, the missing-value marker.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// CoerceString renders a cell value for matching or serialization.
// Missing values become the empty string.
func CoerceString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
