// Package redact provides utilities for redacting sensitive information
// from strings before they are logged. It prevents accidental leakage of
// credentials, connection strings, tokens and addresses in error messages.
package redact

import "regexp"

// RedactionPlaceholder replaces matched sensitive fragments.
const RedactionPlaceholder = "[REDACTED]"

var (
	// Database connection strings with embedded credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|mysql|mongodb)://[^@\s]+@`)

	// Password/secret/key-style assignments
	credentialRegex = regexp.MustCompile(
		`(?i)(password|passwd|secret|api[_-]?key|access[_-]?key|token)([=:\s]['"]?)[^'"&\s]{3,}`,
	)

	// Three-part base64url-encoded JWT tokens
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	patterns = []*regexp.Regexp{
		dbConnRegex, credentialRegex, jwtTokenRegex, emailRegex,
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, RedactionPlaceholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
