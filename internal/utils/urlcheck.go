// Package utils provides utility functions for the notebook relay service.
package utils

import "net/url"

// IsValidURL reports whether s parses as a structurally valid absolute URL
// with both a scheme and a host. Used to pre-check configured endpoint
// URLs so a malformed address fails with a clear message instead of a
// confusing network-layer error.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
