package utils

import "strings"

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// EscapeXML replaces the five XML special characters with their entities.
// The result is safe inside element text and quoted attribute values.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
