package user

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

var validate = validator.New()

// Normalize trims surrounding whitespace and folds every value to NFC.
func Normalize(u User) User {
	clean := func(s string) string { return norm.NFC.String(strings.TrimSpace(s)) }

	return User{
		FirstName: clean(u.FirstName),
		LastName:  clean(u.LastName),
		Email:     clean(u.Email),
		Address:   clean(u.Address),
		Phone:     clean(u.Phone),
	}
}

// Validate reports every failing field of u. It returns nil when u may be
// submitted. Address and phone carry no rule.
func Validate(u User) ValidationErrors {
	errs := make(ValidationErrors)

	u = Normalize(u)

	if u.FirstName == "" {
		errs[FieldFirstName] = Failure{Kind: MissingField, Message: "First Name is required"}
	}
	if u.LastName == "" {
		errs[FieldLastName] = Failure{Kind: MissingField, Message: "Last Name is required"}
	}

	// email (required + format)
	if u.Email == "" {
		errs[FieldEmail] = Failure{Kind: MissingField, Message: "Email is required"}
	} else if err := validate.Var(u.Email, "email"); err != nil {
		errs[FieldEmail] = Failure{Kind: InvalidFormat, Message: "Invalid email"}
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
