package profile

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidField is wrapped by every FieldError.
var ErrInvalidField = errors.New("invalid profile field")

// FieldError describes why a single field value was rejected. Msg is the
// diagnostic shown to the user.
type FieldError struct {
	Field string
	Value string
	Msg   string
}

func (e *FieldError) Error() string { return e.Msg }

func (e *FieldError) Unwrap() error { return ErrInvalidField }

// Field rules, in go-playground/validator tag syntax.
const (
	lettersRule = "required,alpha"
	genderRule  = "oneof=Male Female"
	ageRule     = "min=1,max=100"
	phoneRule   = "len=10,number,startswith=0"
	emailRule   = "required,email"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateFirstname accepts one or more ASCII letters.
func ValidateFirstname(s string) error {
	if validatorInstance().Var(s, lettersRule) != nil {
		return &FieldError{Field: "firstname", Value: s, Msg: fmt.Sprintf("%s is not a valid firstname", s)}
	}
	return nil
}

// ValidateLastname accepts one or more ASCII letters.
func ValidateLastname(s string) error {
	if validatorInstance().Var(s, lettersRule) != nil {
		return &FieldError{Field: "lastname", Value: s, Msg: fmt.Sprintf("%s is not a valid lastname", s)}
	}
	return nil
}

// ValidateGender accepts Male or Female in any letter case.
func ValidateGender(s string) error {
	err := validatorInstance().Var(s, lettersRule)
	if err == nil {
		err = validatorInstance().Var(TitleCase(s), genderRule)
	}
	if err != nil {
		return &FieldError{
			Field: "gender",
			Value: s,
			Msg:   fmt.Sprintf("%s is not valid, expected gender is %s or %s", s, Genders[0], Genders[1]),
		}
	}
	return nil
}

// ValidateAge accepts 1 through 100 inclusive.
func ValidateAge(age int) error {
	if validatorInstance().Var(age, ageRule) != nil {
		return &FieldError{Field: "age", Value: fmt.Sprint(age), Msg: "age should be between 1 to 100 years"}
	}
	return nil
}

// ValidatePhone accepts exactly ten digits with a leading zero.
func ValidatePhone(s string) error {
	if validatorInstance().Var(s, phoneRule) != nil {
		return &FieldError{Field: "phone", Value: s, Msg: "invalid phone number! must be 10 digits starting with 0"}
	}
	return nil
}

// ValidateEmail checks address syntax only; deliverability is not checked.
func ValidateEmail(s string) error {
	if validatorInstance().Var(s, emailRule) != nil {
		return &FieldError{Field: "email", Value: s, Msg: fmt.Sprintf("invalid email: %s is not a valid email address", s)}
	}
	return nil
}
