// Package names holds the language-independent identifier helpers shared by
// every language model: camel-casing of wire-format names, owner-domain
// sanitization and discovery-name validation.
package names

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titler capitalizes the first letter of a segment without lower-casing the
// rest, so inner camel humps in wire names survive ("dateTime" -> "DateTime").
var titler = cases.Title(language.Und, cases.NoLower)

// separators are the characters treated as word breaks in wire-format names.
const separators = "-_. /"

// CamelCase converts a wire-format name into an upper camel-case identifier.
// Word breaks are '-', '_', '.', ' ' and '/'; everything else is preserved.
func CamelCase(s string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(s, isSeparator) {
		b.WriteString(titler.String(part))
	}
	return b.String()
}

// LowerFirst lowers the first rune of an identifier, producing the
// member-style variant of a camel-cased name.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

// SanitizeDomain normalizes an API owner domain for use in module paths.
// The domain is lower-cased, a leading "www." is dropped, and any character
// outside [a-z0-9.-] is replaced with '_'.
func SanitizeDomain(domain string) string {
	if domain == "" {
		return ""
	}
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "www.")
	var b strings.Builder
	for _, r := range domain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ReversedDomainComponents splits a domain on '.' and reverses the parts, so
// "example.com" becomes ["com", "example"]. An empty domain yields nil.
func ReversedDomainComponents(domain string) []string {
	if domain == "" {
		return nil
	}
	parts := strings.Split(domain, ".")
	out := make([]string, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		out = append(out, parts[i])
	}
	return out
}

// ValidateName checks that a wire-format name is safe to carry into generated
// source. Discovery documents occasionally ship junk; anything outside
// letters, digits and the separator set is rejected, as is a name that does
// not start with a letter or '$' (a derived identifier could not either).
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	first := rune(name[0])
	if !(first >= 'a' && first <= 'z' || first >= 'A' && first <= 'Z' || first == '$') {
		return fmt.Errorf("name %q must start with a letter", name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '$' || isSeparator(r):
		default:
			return fmt.Errorf("invalid character %q in name %q", r, name)
		}
	}
	return nil
}
