// utils/strings.go - string helpers shared across packages
package utils

import "strings"

// NormalizeEmail lowercases and trims an email address. Every email is
// normalized before storage and before lookup so uniqueness and login are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
