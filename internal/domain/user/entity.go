package user

type (
	Field string
	User  struct {
		FirstName string
		LastName  string
		Email     string
		Address   string
		Phone     string
	}
	Users []User
)

const (
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldEmail     Field = "email"
	FieldAddress   Field = "address"
	FieldPhone     Field = "phone"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldAddress, FieldPhone}

func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name"
	case FieldLastName:
		return "Last Name"
	case FieldEmail:
		return "Email"
	case FieldAddress:
		return "Address"
	case FieldPhone:
		return "Phone"
	}
	return string(f)
}

func (f Field) Valid() bool {
	for _, k := range Fields {
		if k == f {
			return true
		}
	}
	return false
}

func (u User) Value(f Field) string {
	switch f {
	case FieldFirstName:
		return u.FirstName
	case FieldLastName:
		return u.LastName
	case FieldEmail:
		return u.Email
	case FieldAddress:
		return u.Address
	case FieldPhone:
		return u.Phone
	}
	return ""
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u User) IsZero() bool { return u == User{} }
