package utils

import (
	"strconv"
	"strings"
)

// JoinStrings joins a slice of strings with the given separator
func JoinStrings(items []string, separator string) string {
	return strings.Join(items, separator)
}

// FormatInt64 converts an int64 to a string
func FormatInt64(value int64) string {
	return strconv.FormatInt(value, 10)
}

// ParseInt64 parses a string as an int64, returning an error for invalid input
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Plural returns the plural suffix "s" if count is not 1
func Plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// TruncateString truncates a string to the given length, adding an ellipsis
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength] + "..."
}

// ContainsString checks if a slice contains a specific string
func ContainsString(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// RemoveString removes a string from a slice
func RemoveString(slice []string, s string) []string {
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if item != s {
			result = append(result, item)
		}
	}
	return result
}

// NormalizeStrings lowercases and trims each value, dropping empties and
// duplicates while preserving order. Used for catalog name filters.
func NormalizeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
