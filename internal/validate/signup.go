package validate

import (
	"regexp"
	"strings"
	"time"

	"clinic-console/internal/domain/clinic"
)

// emailPattern is deliberately loose: one @, no whitespace, a dot in the
// domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinimumAge is the youngest a registrant may be.
const MinimumAge = 18

// oldestAgeYears bounds the birth date picker at the other end.
const oldestAgeYears = 120

// SignupForm carries the raw signup submission.
type SignupForm struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	CountryCode  string         `json:"countryCode"`
	DateOfBirth  string         `json:"dateOfBirth"` // YYYY-MM-DD
	Gender       string         `json:"gender"`
	Address      clinic.Address `json:"address"`
	AgreeToTerms bool           `json:"agreeToTerms"`
}

// Signup validates a signup form against the reference time and returns
// every violation as an ordered, human-readable message. An empty slice
// means the form is valid. Violations are collected, not short-circuited.
func Signup(f SignupForm, now time.Time) []string {
	var errs []string

	required := []struct {
		value   string
		message string
	}{
		{f.FirstName, "First name is required"},
		{f.LastName, "Last name is required"},
		{f.Email, "Email is required"},
		{f.Phone, "Phone number is required"},
		{f.DateOfBirth, "Date of birth is required"},
		{f.Gender, "Gender is required"},
		{f.Address.Street, "Street address is required"},
		{f.Address.City, "City is required"},
		{f.Address.State, "State/Province is required"},
		{f.Address.PostalCode, "Postal code is required"},
		{f.Address.Country, "Country is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.message)
		}
	}
	if !f.AgreeToTerms {
		errs = append(errs, "You must agree to the terms and conditions")
	}

	if f.Email != "" && !emailPattern.MatchString(f.Email) {
		errs = append(errs, "Please enter a valid email address")
	}

	if f.Phone != "" && !PhoneValid(f.Phone, f.CountryCode) {
		if c, ok := CountryByCode(f.CountryCode); ok {
			errs = append(errs, "Please enter a valid "+c.Name+" phone number")
		} else {
			errs = append(errs, "Please select a valid country code")
		}
	}

	if f.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", f.DateOfBirth)
		if err != nil {
			errs = append(errs, "Please enter a valid date of birth")
		} else if Age(dob, now) < MinimumAge {
			errs = append(errs, "You must be at least 18 years old to register")
		}
	}

	return errs
}

// Age computes completed years between dob and now, decrementing when the
// birthday has not yet occurred this year.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// MaxBirthDate is the latest acceptable birth date: exactly MinimumAge
// years before now.
func MaxBirthDate(now time.Time) time.Time {
	return now.AddDate(-MinimumAge, 0, 0)
}

// MinBirthDate is the earliest acceptable birth date.
func MinBirthDate(now time.Time) time.Time {
	return now.AddDate(-oldestAgeYears, 0, 0)
}
