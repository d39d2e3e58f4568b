package validation

import (
	"net/url"
	"strings"
)

// ValidateOrigin checks that a CORS origin is a single http(s) origin:
// scheme and host, optional port, nothing else. Wildcards are rejected
// because credentials are allowed for the origin.
func ValidateOrigin(origin string) (bool, string) {
	if origin == "" {
		return false, "origin is required"
	}
	if strings.Contains(origin, "*") {
		return false, "origin must not contain a wildcard"
	}
	if strings.Contains(origin, ",") {
		return false, "only one origin may be configured"
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false, "invalid origin format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "origin must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "origin must have a valid host"
	}

	if u.User != nil || (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return false, "origin must not include a path, query, or credentials"
	}

	return true, ""
}

// NormalizeOrigin lowercases scheme and host and drops a trailing slash so the
// value matches the Origin header browsers send.
func NormalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(origin), "/")
}
