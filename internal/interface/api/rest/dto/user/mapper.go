package user

import (
	"user-form/internal/domain/user"
)

func ToDomainUser(r Request) user.User {
	return user.User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Address:   r.Address,
		Phone:     r.Phone,
	}
}

func ToValidateResponse(errs user.ValidationErrors) ValidateResponse {
	msgs := errs.Messages()
	if msgs == nil {
		msgs = map[string]string{}
	}

	return ValidateResponse{
		Valid:  len(errs) == 0,
		Errors: msgs,
	}
}
