package validation

// ProfileInput carries the flat request record; Skills is the raw
// comma-separated string, split only after validation passes.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

func ValidateProfile(in ProfileInput) (map[string]string, bool) {
	errs := map[string]string{}

	if !lengthBetween(in.Handle, 2, 40) {
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}
	if isBlank(in.Handle) {
		errs["handle"] = "Profile handle is required"
	}

	if isBlank(in.Status) {
		errs["status"] = "Status field is required"
	}

	if isBlank(in.Skills) {
		errs["skills"] = "Skills field is required"
	}

	optionalURL(errs, "website", in.Website)
	optionalURL(errs, "youtube", in.Youtube)
	optionalURL(errs, "twitter", in.Twitter)
	optionalURL(errs, "facebook", in.Facebook)
	optionalURL(errs, "linkedin", in.Linkedin)
	optionalURL(errs, "instagram", in.Instagram)

	return errs, len(errs) == 0
}

func optionalURL(errs map[string]string, field, value string) {
	if isBlank(value) {
		return
	}
	if !isURL(value) {
		errs[field] = "Not a valid URL"
	}
}
