package profile

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID             uuid.UUID    `json:"id"`
	UserID         uuid.UUID    `json:"user"`
	Handle         string       `json:"handle"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"date"`
	UpdatedAt      time.Time    `json:"-"`
}

type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Dates are passed through as opaque strings; the upstream contract never
// parses them.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldofstudy"`
	From         string    `json:"from"`
	To           string    `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
}

// Patch is a merge patch: nil pointers (and a nil Skills slice) leave the
// corresponding profile field untouched.
type Patch struct {
	Handle         *string
	Status         *string
	Skills         []string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Social         SocialPatch
}

type SocialPatch struct {
	Youtube   *string
	Twitter   *string
	Facebook  *string
	Linkedin  *string
	Instagram *string
}

// Apply merges the patch into the profile in place.
func (p *Profile) Apply(patch Patch) {
	setString(&p.Handle, patch.Handle)
	setString(&p.Status, patch.Status)
	if patch.Skills != nil {
		p.Skills = patch.Skills
	}
	setString(&p.Company, patch.Company)
	setString(&p.Website, patch.Website)
	setString(&p.Location, patch.Location)
	setString(&p.Bio, patch.Bio)
	setString(&p.GithubUsername, patch.GithubUsername)

	setString(&p.Social.Youtube, patch.Social.Youtube)
	setString(&p.Social.Twitter, patch.Social.Twitter)
	setString(&p.Social.Facebook, patch.Social.Facebook)
	setString(&p.Social.Linkedin, patch.Social.Linkedin)
	setString(&p.Social.Instagram, patch.Social.Instagram)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
