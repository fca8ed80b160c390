package validation

type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func ValidateRegister(in RegisterInput) (map[string]string, bool) {
	errs := map[string]string{}

	if !lengthBetween(in.Name, 2, 30) {
		errs["name"] = "Name must be between 2 and 30 characters"
	}
	if isBlank(in.Name) {
		errs["name"] = "Name field is required"
	}

	if isBlank(in.Email) {
		errs["email"] = "Email field is required"
	}
	if !isEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}

	if isBlank(in.Password) {
		errs["password"] = "Password field is required"
	}
	if !lengthBetween(in.Password, 6, 30) {
		errs["password"] = "Password must be at least 6 characters"
	}

	if isBlank(in.Password2) {
		errs["password2"] = "Confirm password field is required"
	}
	if in.Password != in.Password2 {
		errs["password2"] = "Passwords must match"
	}

	return errs, len(errs) == 0
}
