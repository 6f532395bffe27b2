package names

import (
	"fmt"
	"html"
	"strings"
	"unicode"
)

// StripHTML removes markup from a description string, keeping only the text
// content. Entities are unescaped so "&amp;" comes back as "&". Unterminated
// tags are dropped through to the end of the input, matching what a
// forgiving parser would feed to a code comment.
func StripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}

// SanitizeComment makes free-form description text safe to place inside a
// generated comment block. Control characters (except newline and tab) are
// dropped. Text that would break out of a comment or re-enter template
// processing is rejected; callers degrade to an empty comment on error.
func SanitizeComment(comment string) (string, error) {
	if strings.Contains(comment, "*/") {
		return "", fmt.Errorf("comment contains block-comment terminator")
	}
	if strings.Contains(comment, "{{") || strings.Contains(comment, "{%") {
		return "", fmt.Errorf("comment contains template markup")
	}
	var b strings.Builder
	for _, r := range comment {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
