// Package library holds the built-in table of common regex patterns.
// The table is compiled into the binary and never mutated at runtime.
package library

import "sort"

// Entry is one named pattern with its description and a matching example.
type Entry struct {
	Name        string
	Pattern     string
	Description string
	Example     string
}

var patterns = map[string]Entry{
	"email": {
		Pattern:     `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`,
		Description: "Standard email address format",
		Example:     "user@example.com",
	},
	"url": {
		Pattern:     `^https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_+.~#?&/=]*)$`,
		Description: "HTTP/HTTPS URL",
		Example:     "https://example.com/path",
	},
	"phone_us": {
		Pattern:     `^\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})$`,
		Description: "US phone number (various formats)",
		Example:     "(555) 123-4567",
	},
	"ip_address": {
		Pattern:     `^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`,
		Description: "IPv4 address",
		Example:     "192.168.1.1",
	},
	"date_iso": {
		Pattern:     `^\d{4}-\d{2}-\d{2}$`,
		Description: "ISO date format (YYYY-MM-DD)",
		Example:     "2026-01-15",
	},
	"time_24h": {
		Pattern:     `^([01]?[0-9]|2[0-3]):[0-5][0-9]$`,
		Description: "24-hour time format (HH:MM)",
		Example:     "14:30",
	},
	"hex_color": {
		Pattern:     `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`,
		Description: "Hexadecimal color code",
		Example:     "#FF5733",
	},
	"username": {
		Pattern:     `^[a-zA-Z0-9_-]{3,16}$`,
		Description: "Username (3-16 chars, alphanumeric, underscore, hyphen)",
		Example:     "user_name-123",
	},
	"uuid": {
		Pattern:     `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
		Description: "UUID (RFC 4122 textual form)",
		Example:     "550e8400-e29b-41d4-a716-446655440000",
	},
	"credit_card": {
		Pattern:     `^\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}$`,
		Description: "Credit card number (with optional separators)",
		Example:     "1234-5678-9012-3456",
	},
	"ssn": {
		Pattern:     `^\d{3}-\d{2}-\d{4}$`,
		Description: "US Social Security Number",
		Example:     "123-45-6789",
	},
	"zip_code_us": {
		Pattern:     `^\d{5}(?:-\d{4})?$`,
		Description: "US ZIP code (5 or 9 digits)",
		Example:     "12345-6789",
	},
}

// Lookup returns the entry for name, or false when the library has none.
func Lookup(name string) (Entry, bool) {
	e, ok := patterns[name]
	if !ok {
		return Entry{}, false
	}
	e.Name = name
	return e, true
}

// List returns every library entry ordered by name.
func List() []Entry {
	out := make([]Entry, 0, len(patterns))
	for name, e := range patterns {
		e.Name = name
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
