package domain

// Country is the account's country of residence (ISO 3166-1 alpha-2).
type Country string

const (
	CountryEE Country = "EE"
	CountrySE Country = "SE"
	CountryGB Country = "GB"
	CountryUS Country = "US"
)

var validCountries = map[Country]bool{
	CountryEE: true,
	CountrySE: true,
	CountryGB: true,
	CountryUS: true,
}

// IsValid reports whether the country is in the supported set.
func (c Country) IsValid() bool {
	return validCountries[c]
}
