package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-console/internal/domain/clinic"
)

// fixedNow keeps age arithmetic deterministic across test runs.
var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func validForm() SignupForm {
	return SignupForm{
		FirstName:   "Sara",
		LastName:    "Ahmed",
		Email:       "sara@example.com",
		Phone:       "3612 3456",
		CountryCode: "+973",
		DateOfBirth: "1990-03-20",
		Gender:      clinic.GenderFemale,
		Address: clinic.Address{
			Street:     "Road 2832",
			City:       "Manama",
			State:      "Capital",
			PostalCode: "317",
			Country:    "Bahrain",
		},
		AgreeToTerms: true,
	}
}

func TestSignup_Valid(t *testing.T) {
	assert.Empty(t, Signup(validForm(), fixedNow))
}

func TestSignup_EmptyForm(t *testing.T) {
	errs := Signup(SignupForm{}, fixedNow)

	// Every required field reported, in form order, nothing short-circuited
	assert.Equal(t, []string{
		"First name is required",
		"Last name is required",
		"Email is required",
		"Phone number is required",
		"Date of birth is required",
		"Gender is required",
		"Street address is required",
		"City is required",
		"State/Province is required",
		"Postal code is required",
		"Country is required",
		"You must agree to the terms and conditions",
	}, errs)
}

func TestSignup_FieldViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignupForm)
		want   string
	}{
		{"whitespace-only first name", func(f *SignupForm) { f.FirstName = "   " }, "First name is required"},
		{"bad email", func(f *SignupForm) { f.Email = "sara@nodot" }, "Please enter a valid email address"},
		{"email with spaces", func(f *SignupForm) { f.Email = "sa ra@example.com" }, "Please enter a valid email address"},
		{"bad phone", func(f *SignupForm) { f.Phone = "361234" }, "Please enter a valid Bahrain phone number"},
		{"phone for unknown country", func(f *SignupForm) { f.CountryCode = "+1"; f.Phone = "5551234567" }, "Please select a valid country code"},
		{"unparseable birth date", func(f *SignupForm) { f.DateOfBirth = "20-03-1990" }, "Please enter a valid date of birth"},
		{"terms unchecked", func(f *SignupForm) { f.AgreeToTerms = false }, "You must agree to the terms and conditions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			errs := Signup(f, fixedNow)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0])
		})
	}
}

func TestSignup_MinimumAge(t *testing.T) {
	f := validForm()

	// Turns 18 exactly today: allowed
	f.DateOfBirth = "2006-06-15"
	assert.Empty(t, Signup(f, fixedNow))

	// Birthday tomorrow: still 17
	f.DateOfBirth = "2006-06-16"
	errs := Signup(f, fixedNow)
	require.Len(t, errs, 1)
	assert.Equal(t, "You must be at least 18 years old to register", errs[0])
}

func TestAge(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"birthday passed this year", time.Date(1990, 3, 20, 0, 0, 0, 0, time.UTC), 34},
		{"birthday today", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), 34},
		{"birthday later this year", time.Date(1990, 9, 1, 0, 0, 0, 0, time.UTC), 33},
		{"birthday tomorrow", time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC), 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.dob, fixedNow))
		})
	}
}

func TestBirthDateBounds(t *testing.T) {
	assert.Equal(t, time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC), MaxBirthDate(fixedNow))
	assert.Equal(t, time.Date(1904, 6, 15, 12, 0, 0, 0, time.UTC), MinBirthDate(fixedNow))
}
