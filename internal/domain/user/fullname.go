package user

import "strings"

// FullName holds optional first and last names.
type FullName struct {
	First string
	Last  string
}

// String joins the non-empty parts with a single space. It is empty when
// both parts are empty.
func (n FullName) String() string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(n.First); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(n.Last); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether neither part is set.
func (n FullName) IsZero() bool {
	return n.String() == ""
}
