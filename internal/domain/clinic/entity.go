package clinic

import "time"

// Gender values accepted on the signup form.
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer-not-to-say"
)

// Appointment status values. Completed and cancelled are terminal by
// convention only; the backend does not enforce transitions.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Offer categories.
const (
	CategoryConsultation = "consultation"
	CategoryTreatment    = "treatment"
	CategoryPackage      = "package"
	CategoryCheckup      = "checkup"
	CategoryOther        = "other"
)

// Address is the postal address captured on signup.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Registrant is a visitor who completed the signup form, stored for admin
// review. Immutable after creation except for admin deletion.
type Registrant struct {
	ID          string    `json:"_id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CountryCode string    `json:"countryCode"` // calling code, e.g. "+973"
	DateOfBirth string    `json:"dateOfBirth"` // YYYY-MM-DD
	Gender      string    `json:"gender"`
	Address     Address   `json:"address"`
	SignupTime  time.Time `json:"signupTime"`
	Status      string    `json:"status"`
}

// Appointment is a booking request made through the public site.
type Appointment struct {
	ID              string `json:"_id"`
	PatientName     string `json:"patientName"`
	PatientEmail    string `json:"patientEmail"`
	PatientPhone    string `json:"patientPhone"`
	AppointmentDate string `json:"appointmentDate"` // YYYY-MM-DD
	AppointmentTime string `json:"appointmentTime"` // HH:MM
	Doctor          string `json:"doctor"`
	Department      string `json:"department"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
	Status          string `json:"status"`
}

// Offer is a promotional package displayed publicly and managed by admins.
type Offer struct {
	ID                 string   `json:"_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	OriginalPrice      *float64 `json:"originalPrice,omitempty"`
	Image              string   `json:"image"`
	Category           string   `json:"category"`
	Features           []string `json:"features"`
	IsActive           bool     `json:"isActive"`
	TermsAndConditions string   `json:"termsAndConditions"`
}

// SliderImage is a homepage carousel entry managed by admins.
type SliderImage struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	Link        string `json:"link,omitempty"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

// AdminUser is the account record returned by the backend on login.
type AdminUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

// UserStats is the registrant summary reported by the backend.
type UserStats struct {
	TotalUsers  int `json:"totalUsers"`
	NewToday    int `json:"newToday"`
	NewThisWeek int `json:"newThisWeek"`
}

// ValidAppointmentStatus reports whether s is one of the four known
// appointment states.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// ValidOfferCategory reports whether c is a known offer category.
func ValidOfferCategory(c string) bool {
	switch c {
	case CategoryConsultation, CategoryTreatment, CategoryPackage, CategoryCheckup, CategoryOther:
		return true
	}
	return false
}
