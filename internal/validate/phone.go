package validate

import "regexp"

// Country describes a supported calling code and the two phone shapes it
// accepts: a local number with the country's digit grouping, or the same
// number behind a +NNN / NNN prefix.
type Country struct {
	Code string
	Name string
	Flag string

	local *regexp.Regexp
	full  *regexp.Regexp
}

// gccCountries are the countries selectable on the signup form.
var gccCountries = []Country{
	{Code: "+973", Name: "Bahrain", Flag: "🇧🇭",
		local: regexp.MustCompile(`^\d{4}\s?\d{4}$`),
		full:  regexp.MustCompile(`^(\+973|973)\s?\d{4}\s?\d{4}$`)},
	{Code: "+966", Name: "Saudi Arabia", Flag: "🇸🇦",
		local: regexp.MustCompile(`^\d{2}\s?\d{3}\s?\d{4}$`),
		full:  regexp.MustCompile(`^(\+966|966)\s?\d{2}\s?\d{3}\s?\d{4}$`)},
	{Code: "+971", Name: "UAE", Flag: "🇦🇪",
		local: regexp.MustCompile(`^\d{2}\s?\d{3}\s?\d{4}$`),
		full:  regexp.MustCompile(`^(\+971|971)\s?\d{2}\s?\d{3}\s?\d{4}$`)},
	{Code: "+965", Name: "Kuwait", Flag: "🇰🇼",
		local: regexp.MustCompile(`^\d{4}\s?\d{4}$`),
		full:  regexp.MustCompile(`^(\+965|965)\s?\d{4}\s?\d{4}$`)},
	{Code: "+968", Name: "Oman", Flag: "🇴🇲",
		local: regexp.MustCompile(`^\d{4}\s?\d{4}$`),
		full:  regexp.MustCompile(`^(\+968|968)\s?\d{4}\s?\d{4}$`)},
	{Code: "+974", Name: "Qatar", Flag: "🇶🇦",
		local: regexp.MustCompile(`^\d{4}\s?\d{4}$`),
		full:  regexp.MustCompile(`^(\+974|974)\s?\d{4}\s?\d{4}$`)},
}

// Countries returns the supported countries in display order.
func Countries() []Country {
	out := make([]Country, len(gccCountries))
	copy(out, gccCountries)
	return out
}

// CountryByCode looks up a supported country by its calling code.
func CountryByCode(code string) (Country, bool) {
	for _, c := range gccCountries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// PhoneValid reports whether phone matches either accepted shape for the
// selected country. Unknown country codes never validate.
func PhoneValid(phone, countryCode string) bool {
	c, ok := CountryByCode(countryCode)
	if !ok {
		return false
	}
	return c.local.MatchString(phone) || c.full.MatchString(phone)
}
