package validation

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateLogin(in LoginInput) (map[string]string, bool) {
	errs := map[string]string{}

	if !isEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}
	if isBlank(in.Email) {
		errs["email"] = "Email field is required"
	}

	if isBlank(in.Password) {
		errs["password"] = "Password field is required"
	}

	return errs, len(errs) == 0
}
