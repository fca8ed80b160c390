package validation

type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func ValidateExperience(in ExperienceInput) (map[string]string, bool) {
	errs := map[string]string{}

	if isBlank(in.Title) {
		errs["title"] = "Job title field is required"
	}
	if isBlank(in.Company) {
		errs["company"] = "Company field is required"
	}
	if isBlank(in.From) {
		errs["from"] = "From date field is required"
	}

	return errs, len(errs) == 0
}
