// Package validation holds the pure input validators. Each validator returns
// a field→message map and a flag that is true iff the map is empty. Checks run
// in a fixed order and a later check overwrites an earlier message for the
// same field; callers depend on the exact messages, so the order matters.
package validation

import (
	"net/mail"
	"net/url"
	"strings"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func lengthBetween(s string, min, max int) bool {
	n := len([]rune(s))
	return n >= min && n <= max
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// isURL accepts scheme-less values ("example.com") the way the upstream
// validator does.
func isURL(s string) bool {
	if isBlank(s) {
		return false
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Host == "" || strings.ContainsAny(u.Host, " ") {
		return false
	}
	return strings.Contains(u.Host, ".") || u.Host == "localhost"
}
