package profile

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Gender is one of the enumerated options the KYC step accepts.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Genders lists the accepted genders in display order.
var Genders = []Gender{Male, Female}

// Profile is the KYC record of the account holder. Every field is stored
// already normalized.
type Profile struct {
	Firstname string
	Lastname  string
	Gender    Gender
	Age       int
	Phone     string
	Email     string
}

// FullName joins first and last name for display.
func (p Profile) FullName() string {
	return p.Firstname + " " + p.Lastname
}

// CreateParams carries raw, possibly unnormalized field values.
type CreateParams struct {
	Firstname string
	Lastname  string
	Gender    string
	Age       int
	Phone     string
	Email     string
}

// New normalizes params and validates every field, reporting the first
// failure as a *FieldError. Implementations must normalize input data:
//   - Firstname, Lastname, Gender: title case
//   - Email: lowercase and trim whitespace
//   - Phone: trim whitespace
func New(params CreateParams) (*Profile, error) {
	p := &Profile{
		Firstname: TitleCase(strings.TrimSpace(params.Firstname)),
		Lastname:  TitleCase(strings.TrimSpace(params.Lastname)),
		Gender:    Gender(TitleCase(strings.TrimSpace(params.Gender))),
		Age:       params.Age,
		Phone:     strings.TrimSpace(params.Phone),
		Email:     NormalizeEmail(params.Email),
	}

	checks := []error{
		ValidateFirstname(p.Firstname),
		ValidateLastname(p.Lastname),
		ValidateEmail(p.Email),
		ValidatePhone(p.Phone),
		ValidateAge(p.Age),
		ValidateGender(string(p.Gender)),
	}
	for _, err := range checks {
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// TitleCase upper-cases the first letter of each word and lower-cases the rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
