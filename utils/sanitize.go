package utils

import "github.com/microcosm-cc/bluemonday"

var (
	// contentPolicy keeps the harmless formatting writers paste in with
	// their stories while stripping anything script-bearing.
	contentPolicy = bluemonday.UGCPolicy()
	// textPolicy strips all markup; used for profile fields.
	textPolicy = bluemonday.StrictPolicy()
)

// Sanitize cleans story HTML, keeping safe user-generated formatting.
func Sanitize(input string) string {
	return contentPolicy.Sanitize(input)
}

// SanitizeText reduces input to plain text with no markup at all.
func SanitizeText(input string) string {
	return textPolicy.Sanitize(input)
}
