package validator

import (
	"user-form/internal/domain/user"
	dto "user-form/internal/interface/api/rest/dto/user"
)

// IsField reports whether s names one of the form fields.
func IsField(s string) (bool, user.Field) {
	f := user.Field(s)
	return f.Valid(), f
}

func ValidateUser(r dto.Request) user.ValidationErrors {
	return user.Validate(dto.ToDomainUser(r))
}

// ValidateField runs the full check and keeps the failure of f only.
func ValidateField(r dto.Request, f user.Field) user.ValidationErrors {
	return ValidateUser(r).Only(f)
}
