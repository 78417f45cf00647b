package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries(t *testing.T) {
	countries := Countries()
	require.Len(t, countries, 6)
	assert.Equal(t, "+973", countries[0].Code)
	assert.Equal(t, "Bahrain", countries[0].Name)

	// Returned slice is a copy; mutating it must not affect the source
	countries[0].Name = "changed"
	again := Countries()
	assert.Equal(t, "Bahrain", again[0].Name)
}

func TestCountryByCode(t *testing.T) {
	c, ok := CountryByCode("+966")
	require.True(t, ok)
	assert.Equal(t, "Saudi Arabia", c.Name)

	_, ok = CountryByCode("+20")
	assert.False(t, ok)
}

func TestPhoneValid(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        bool
	}{
		{"bahrain local with space", "3612 3456", "+973", true},
		{"bahrain local without space", "36123456", "+973", true},
		{"bahrain full with plus", "+973 3612 3456", "+973", true},
		{"bahrain full without plus", "973 36123456", "+973", true},
		{"bahrain too short", "361234", "+973", false},
		{"bahrain too long", "361234567", "+973", false},
		{"bahrain letters", "3612 345a", "+973", false},
		{"saudi local", "50 123 4567", "+966", true},
		{"saudi full", "+966 50 123 4567", "+966", true},
		{"saudi eight digits", "5012 3456", "+966", false},
		{"uae local", "501234567", "+971", true},
		{"kuwait local", "5012 3456", "+965", true},
		{"oman full", "+968 9123 4567", "+968", true},
		{"qatar local", "33123456", "+974", true},
		{"wrong prefix for country", "+974 3612 3456", "+973", false},
		{"unknown country code", "36123456", "+20", false},
		{"empty phone", "", "+973", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneValid(tt.phone, tt.countryCode))
		})
	}
}
