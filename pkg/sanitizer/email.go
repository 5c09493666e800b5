package sanitizer

import "strings"

// NormalizeEmail trims and lowercases email so lookups ignore case. It does
// not validate.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ExtractEmailDomain(email string) string {
	_, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok {
		return ""
	}
	return strings.ToLower(domain)
}

// MaskEmail keeps the first character of the local part and the domain, so
// an address can be recognised in logs without being recorded.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return strings.Repeat("*", len([]rune(email)))
	}
	first := []rune(local)[0]
	return string(first) + strings.Repeat("*", len([]rune(local))-1) + "@" + domain
}
