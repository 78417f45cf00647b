package validate

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// v validates the admin-facing forms through struct tags; the signup form
// keeps its own bespoke message ordering in Signup.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	return val
}

// AppointmentForm carries a public booking submission.
type AppointmentForm struct {
	PatientName     string `json:"patientName" validate:"required"`
	PatientEmail    string `json:"patientEmail" validate:"required"`
	PatientPhone    string `json:"patientPhone" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" validate:"required"`
	Doctor          string `json:"doctor"`
	Department      string `json:"department" validate:"required"`
	Reason          string `json:"reason" validate:"required"`
	Notes           string `json:"notes"`
}

// Appointment validates a booking form, returning ordered human-readable
// messages; empty means valid.
func Appointment(f AppointmentForm) []string {
	errs := collect(v.Struct(f), map[string]string{
		"PatientName":     "Patient name is required",
		"PatientEmail":    "Patient email is required",
		"PatientPhone":    "Patient phone number is required",
		"AppointmentDate": "Please enter a valid appointment date",
		"AppointmentTime": "Appointment time is required",
		"Department":      "Department is required",
		"Reason":          "Reason for visit is required",
	})
	if f.PatientEmail != "" && !emailPattern.MatchString(f.PatientEmail) {
		errs = append(errs, "Please enter a valid email address")
	}
	return errs
}

// OfferForm carries the admin offer create/edit submission.
type OfferForm struct {
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	Price              float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice      *float64 `json:"originalPrice" validate:"omitempty,gt=0"`
	Image              string   `json:"image" validate:"required,url"`
	Category           string   `json:"category" validate:"omitempty,oneof=consultation treatment package checkup other"`
	Features           []string `json:"features"`
	TermsAndConditions string   `json:"termsAndConditions"`
}

// Offer validates an offer form.
func Offer(f OfferForm) []string {
	return collect(v.Struct(f), map[string]string{
		"Title":         "Please enter an offer title",
		"Description":   "Please enter an offer description",
		"Price":         "Please enter a valid price",
		"OriginalPrice": "Please enter a valid original price",
		"Image":         "Please enter an image URL",
		"Category":      "Please select a valid category",
	})
}

// SliderForm carries the admin slider-image create/edit submission.
type SliderForm struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"required,url"`
	Link        string `json:"link" validate:"omitempty,url"`
	Order       int    `json:"order" validate:"omitempty,gte=1"`
}

// Slider validates a slider form.
func Slider(f SliderForm) []string {
	return collect(v.Struct(f), map[string]string{
		"Title": "Please enter a slider title",
		"Image": "Please enter an image URL",
		"Link":  "Please enter a valid link URL",
		"Order": "Display order must be at least 1",
	})
}

// collect converts validator.ValidationErrors into the per-field messages,
// preserving struct field order.
func collect(err error, messages map[string]string) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	for _, e := range verrs {
		if msg, ok := messages[e.Field()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, e.Field()+" is invalid")
		}
	}
	return out
}

// DefaultSliderOrder picks the next display position for a new slider
// image: one past the current count.
func DefaultSliderOrder(existing int) int {
	return existing + 1
}

// ParseDate parses a YYYY-MM-DD form value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
