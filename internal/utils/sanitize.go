package utils

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// SanitizeHTML escapes characters that could carry markup in user-supplied
// free text. Stored escaped, rendered as-is.
func SanitizeHTML(text string) string {
	if text == "" {
		return text
	}
	return htmlEscaper.Replace(text)
}
