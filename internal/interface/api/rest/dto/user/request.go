package user

type (
	// Request is the form payload; urlencoded from the page, JSON from the api.
	Request struct {
		FirstName string `json:"first_name" form:"first_name"`
		LastName  string `json:"last_name" form:"last_name"`
		Email     string `json:"email" form:"email"`
		Address   string `json:"address" form:"address"`
		Phone     string `json:"phone" form:"phone"`
	}
	ValidateRequest struct {
		Request
		// Field limits the answer to one field, as on blur. Empty means all.
		Field string `json:"field"`
	}
	ValidateResponse struct {
		Valid  bool              `json:"valid"`
		Errors map[string]string `json:"errors"`
	}
)
