package utils

import "strings"

// NormalizePhone reduces user input to E.164. Ten bare digits are
// assumed to be a US number; anything else non-empty just gets the
// international prefix. Empty input stays empty (member has no SMS).
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case digits == "":
		return ""
	case len(digits) == 10:
		return "+1" + digits
	default:
		return "+" + digits
	}
}
