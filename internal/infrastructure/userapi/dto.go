package userapi

import "user-form/internal/domain/user"

// User is the wire shape; every field is always sent, optional ones as "".
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

func toPayload(u user.User) User {
	return User{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Address:   u.Address,
		Phone:     u.Phone,
	}
}

func fromPayloads(in []User) user.Users {
	us := make(user.Users, len(in))
	for idx, u := range in {
		us[idx] = user.User{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Address:   u.Address,
			Phone:     u.Phone,
		}
	}

	return us
}
