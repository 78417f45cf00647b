// Package report derives dashboard statistics from fetched collections.
// Every function is pure: it reads its input slice and returns a fresh
// value, so calling twice on unchanged input yields identical output.
package report

import (
	"math"
	"sort"

	"clinic-console/internal/domain/clinic"
)

// GenderStats summarizes registrants by gender. Only male and female are
// counted toward percentages; other gender values still count in Total, so
// the two percentages may sum below 100.
type GenderStats struct {
	Male             int `json:"male"`
	Female           int `json:"female"`
	Total            int `json:"total"`
	MalePercentage   int `json:"malePercentage"`
	FemalePercentage int `json:"femalePercentage"`
}

// Gender computes the gender distribution.
func Gender(users []clinic.Registrant) GenderStats {
	var s GenderStats
	s.Total = len(users)
	for _, u := range users {
		switch u.Gender {
		case clinic.GenderMale:
			s.Male++
		case clinic.GenderFemale:
			s.Female++
		}
	}
	s.MalePercentage = percentage(s.Male, s.Total)
	s.FemalePercentage = percentage(s.Female, s.Total)
	return s
}

// CountryShare is one calling-code group in the country distribution.
type CountryShare struct {
	Country    string `json:"country"` // calling code, or "Unknown"
	Flag       string `json:"flag"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// CountryStats summarizes registrants by country calling code.
type CountryStats struct {
	Countries       []CountryShare `json:"countries"`
	Total           int            `json:"total"`
	UniqueCountries int            `json:"uniqueCountries"`
}

// Country groups registrants by calling code, sorted descending by count.
// Registrants without a code fall into the "Unknown" group.
func Country(users []clinic.Registrant) CountryStats {
	counts := make(map[string]int)
	for _, u := range users {
		code := u.CountryCode
		if code == "" {
			code = "Unknown"
		}
		counts[code]++
	}

	total := len(users)
	countries := make([]CountryShare, 0, len(counts))
	for code, count := range counts {
		countries = append(countries, CountryShare{
			Country:    code,
			Flag:       Flag(code),
			Count:      count,
			Percentage: percentage(count, total),
		})
	}
	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Count != countries[j].Count {
			return countries[i].Count > countries[j].Count
		}
		return countries[i].Country < countries[j].Country
	})

	return CountryStats{
		Countries:       countries,
		Total:           total,
		UniqueCountries: len(countries),
	}
}

// AppointmentStats tallies appointments per status. Unrecognized status
// values land in no bucket but still count in Total.
type AppointmentStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

// Appointments computes the appointment status counts.
func Appointments(appts []clinic.Appointment) AppointmentStats {
	var s AppointmentStats
	s.Total = len(appts)
	for _, a := range appts {
		switch a.Status {
		case clinic.AppointmentPending:
			s.Pending++
		case clinic.AppointmentConfirmed:
			s.Confirmed++
		case clinic.AppointmentCompleted:
			s.Completed++
		case clinic.AppointmentCancelled:
			s.Cancelled++
		}
	}
	return s
}

// OfferStats summarizes the offer catalog for the control panel.
type OfferStats struct {
	Total        int     `json:"total"`
	Active       int     `json:"active"`
	Inactive     int     `json:"inactive"`
	TotalValue   float64 `json:"totalValue"`
	AveragePrice float64 `json:"averagePrice"`
}

// Offers computes offer catalog statistics.
func Offers(offers []clinic.Offer) OfferStats {
	var s OfferStats
	s.Total = len(offers)
	for _, o := range offers {
		if o.IsActive {
			s.Active++
		}
		s.TotalValue += o.Price
	}
	s.Inactive = s.Total - s.Active
	if s.Total > 0 {
		s.AveragePrice = s.TotalValue / float64(s.Total)
	}
	return s
}

// percentage rounds count/total to the nearest whole percent, 0 when the
// collection is empty.
func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
