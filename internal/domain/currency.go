package domain

// Allowed currency codes (ISO 4217). Loaded once, read-only, safe for
// concurrent lookups.
var allowedCurrencies = map[string]bool{
	"EUR": true,
	"SEK": true,
	"GBP": true,
	"USD": true,
}

// IsAllowedCurrency reports whether code is a supported currency.
func IsAllowedCurrency(code string) bool {
	return allowedCurrencies[code]
}

// IsWellFormedCurrency reports whether code looks like an ISO 4217 code:
// exactly three uppercase ASCII letters. Membership in the allowed set is a
// separate check.
func IsWellFormedCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// AllowedCurrencies returns the supported currency codes. The returned slice
// is a copy; callers may not mutate the catalog.
func AllowedCurrencies() []string {
	codes := make([]string, 0, len(allowedCurrencies))
	for code := range allowedCurrencies {
		codes = append(codes, code)
	}
	return codes
}
