package domain

import "testing"

func TestIsAllowedCurrency(t *testing.T) {
	tests := []struct {
		code    string
		allowed bool
	}{
		{"EUR", true},
		{"SEK", true},
		{"GBP", true},
		{"USD", true},
		{"RUB", false},
		{"JPY", false},
		{"eur", false},
		{"", false},
		{"EURO", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsAllowedCurrency(tt.code); got != tt.allowed {
				t.Errorf("IsAllowedCurrency(%q) = %v, want %v", tt.code, got, tt.allowed)
			}
		})
	}
}

func TestIsWellFormedCurrency(t *testing.T) {
	tests := []struct {
		code string
		ok   bool
	}{
		{"EUR", true},
		{"RUB", true}, // well-formed even though not allowed
		{"eur", false},
		{"EU", false},
		{"EURO", false},
		{"E1R", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsWellFormedCurrency(tt.code); got != tt.ok {
				t.Errorf("IsWellFormedCurrency(%q) = %v, want %v", tt.code, got, tt.ok)
			}
		})
	}
}

func TestAllowedCurrenciesIsACopy(t *testing.T) {
	codes := AllowedCurrencies()
	if len(codes) != 4 {
		t.Fatalf("expected 4 allowed currencies, got %d", len(codes))
	}

	codes[0] = "XXX"
	if IsAllowedCurrency("XXX") {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}
