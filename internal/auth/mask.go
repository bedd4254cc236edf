package auth

import "strings"

// MaskEmail hides most of the local part of an address:
// "ab@x.io" -> "a***@x.io", "johnson@x.io" -> "jo***n@x.io".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local, domain := []rune(email[:at]), email[at+1:]

	switch {
	case len(local) == 0:
		return "***@" + domain
	case len(local) <= 3:
		return string(local[0]) + "***@" + domain
	default:
		return string(local[:2]) + "***" + string(local[len(local)-1]) + "@" + domain
	}
}
