package profileapimodels

import (
	"strings"

	"jobboard-backend/lib/utils/validation"
	dbmodels "jobboard-backend/models/db"
)

type ProfileData struct {
	Headline          string   `json:"headline" validate:"omitempty,max=255"`
	Location          string   `json:"location" validate:"omitempty,max=255"`
	YearsOfExperience int      `json:"years_of_experience" validate:"min=0,max=70"`
	Skills            []string `json:"skills" validate:"max=100,dive,required,max=100"`
	DesiredRoles      []string `json:"desired_roles" validate:"max=20,dive,required,max=255"`
	Summary           string   `json:"summary" validate:"omitempty,max=10000"`
	IsPublic          bool     `json:"is_public"`
}

func (p ProfileData) Validate() error {
	return validation.Check(p)
}

func (p *ProfileData) Normalize() {
	p.Headline = strings.TrimSpace(p.Headline)
	p.Location = strings.TrimSpace(p.Location)
	p.Skills = trimList(p.Skills)
	p.DesiredRoles = trimList(p.DesiredRoles)
}

type ProfileView struct {
	ProfileData
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	ResumeURL string `json:"resume_url"`
}

func ProfileConvert(rec dbmodels.CandidateProfile) ProfileView {
	result := ProfileView{
		ProfileData: ProfileData{
			Headline:          rec.Headline,
			Location:          rec.Location,
			YearsOfExperience: rec.YearsOfExperience,
			Skills:            []string(rec.Skills),
			DesiredRoles:      []string(rec.DesiredRoles),
			Summary:           rec.Summary,
			IsPublic:          rec.IsPublic,
		},
		UserID:    rec.UserID,
		ResumeURL: rec.ResumeURL,
	}
	if result.Skills == nil {
		result.Skills = []string{}
	}
	if result.DesiredRoles == nil {
		result.DesiredRoles = []string{}
	}
	if rec.User != nil {
		result.Name = rec.User.Name
		result.Email = rec.User.Email
	}
	return result
}

func trimList(list []string) []string {
	result := make([]string, 0, len(list))
	for _, item := range list {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
