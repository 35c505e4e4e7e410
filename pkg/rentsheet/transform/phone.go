package transform

import "strings"

// CleanPhoneNumber normalizes a French phone number.
// A leading "=" left by formula-style entry is dropped, every non-digit is
// removed and the international prefix 33 becomes 0. Ten-digit results are
// grouped by pairs ("04 67 60 31 60"); anything else is returned as bare
// digits.
func CleanPhoneNumber(tel string) string {
	if tel == "" {
		return ""
	}
	tel = strings.TrimPrefix(tel, "=")

	var b strings.Builder
	for _, r := range tel {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "33") && len(digits) > 9 {
		digits = "0" + digits[2:]
	}

	if len(digits) != 10 {
		return digits
	}

	groups := make([]string, 0, 5)
	for i := 0; i < 10; i += 2 {
		groups = append(groups, digits[i:i+2])
	}
	return strings.Join(groups, " ")
}
