// Package entity contains the core business objects of the project.
package entity

import "strings"

// Address is the structured postal address attached to a user or company account.
// Incoming profile updates supply it as a single comma-separated string which is
// normalized through ParseAddress.
type Address struct {
	Street  string // Street line, e.g., "123 Main St".
	City    string // City name.
	State   string // State or province.
	Zip     string // Postal code.
	Country string // Country name.
}

// ParseAddress splits a comma-separated address string into its structured parts.
// Segments are assigned in order: street, city, state, zip, country. Missing
// trailing segments are left empty.
func ParseAddress(raw string) Address {
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}

	var addr Address
	if len(fields) > 0 {
		addr.Street = fields[0]
	}
	if len(fields) > 1 {
		addr.City = fields[1]
	}
	if len(fields) > 2 {
		addr.State = fields[2]
	}
	if len(fields) > 3 {
		addr.Zip = fields[3]
	}
	if len(fields) > 4 {
		addr.Country = fields[4]
	}

	return addr
}

// String renders the address back into its comma-separated form, skipping empty segments.
func (a Address) String() string {
	segments := make([]string, 0, 5)
	for _, s := range []string{a.Street, a.City, a.State, a.Zip, a.Country} {
		if s != "" {
			segments = append(segments, s)
		}
	}

	return strings.Join(segments, ", ")
}

// IsZero reports whether every segment of the address is empty.
func (a Address) IsZero() bool {
	return a == Address{}
}
