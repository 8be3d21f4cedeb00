package jobapimodels

import (
	"strings"
	"time"

	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/lib/utils/validation"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
)

type JobData struct {
	ID                    string                 `json:"id"`                                              // ид вакансии, если указан - обновление
	Title                 string                 `json:"title" validate:"required,max=255"`               // название
	Location              string                 `json:"location" validate:"required,max=255"`            // локация
	JobType               models.JobType         `json:"job_type" validate:"required"`                    // тип занятости
	ExperienceLevel       models.ExperienceLevel `json:"experience_level" validate:"required"`            // уровень
	EmploymentType        models.EmploymentType  `json:"employment_type"`                                 // тип трудоустройства
	Salary                Salary                 `json:"salary"`                                          // вилка
	SalaryText            string                 `json:"salary_text"`                                     // вилка строкой, "USD 80K–120K / year"
	Description           string                 `json:"description" validate:"required"`                 // описание
	TechnicalRequirements []string               `json:"technical_requirements" validate:"dive,required"` // технические требования
	SoftSkills            []string               `json:"soft_skills" validate:"dive,required"`            // софт скилы
	Responsibilities      []string               `json:"responsibilities" validate:"dive,required"`       // обязанности
	Benefits              []string               `json:"benefits" validate:"dive,required"`               // бонусы
	IsActive              bool                   `json:"is_active"`                                       // опубликована
	ExpiresAt             *time.Time             `json:"expires_at"`                                      // дата окончания публикации
	CompanyBrandingID     string                 `json:"company_branding_id"`                             // ид страницы компании, если не указан - страница текущего пользователя
}

type Salary struct {
	Min      *int   `json:"min" validate:"omitempty,min=0"`
	Max      *int   `json:"max" validate:"omitempty,min=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

func (s Salary) IsEmpty() bool {
	return s.Min == nil && s.Max == nil
}

func (v JobData) Validate() error {
	details := validation.Struct(v)
	if details == nil {
		details = map[string]string{}
	}
	if v.JobType != "" {
		if err := v.JobType.Validate(); err != nil {
			details["job_type"] = err.Error()
		}
	}
	if v.ExperienceLevel != "" {
		if err := v.ExperienceLevel.Validate(); err != nil {
			details["experience_level"] = err.Error()
		}
	}
	if err := v.EmploymentType.Validate(); err != nil {
		details["employment_type"] = err.Error()
	}
	if v.Salary.Min != nil && v.Salary.Max != nil && *v.Salary.Max < *v.Salary.Min {
		details["salary.max"] = "must be greater than or equal to salary.min"
	}
	if v.ExpiresAt != nil && !v.ExpiresAt.After(time.Now()) {
		details["expires_at"] = "must be in the future"
	}
	if len(details) != 0 {
		return apperrors.Validation("invalid job data", details)
	}
	return nil
}

// Normalize приводит перечисления к каноничному виду до валидации
func (v *JobData) Normalize() {
	if jobType, err := models.ParseJobType(string(v.JobType)); err == nil {
		v.JobType = jobType
	}
	if level, err := models.ParseExperienceLevel(string(v.ExperienceLevel)); err == nil {
		v.ExperienceLevel = level
	}
	v.Salary.Currency = strings.ToUpper(strings.TrimSpace(v.Salary.Currency))
	v.Title = strings.TrimSpace(v.Title)
	v.Location = strings.TrimSpace(v.Location)
	v.TechnicalRequirements = trimList(v.TechnicalRequirements)
	v.SoftSkills = trimList(v.SoftSkills)
	v.Responsibilities = trimList(v.Responsibilities)
	v.Benefits = trimList(v.Benefits)
}

type StatusChangeRequest struct {
	IsActive *bool `json:"is_active"` // опубликовать/снять с публикации
}

func (r StatusChangeRequest) Validate() error {
	if r.IsActive == nil {
		return apperrors.Validation("invalid request", map[string]string{"is_active": "is required"})
	}
	return nil
}

type CompanyInfo struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	CompanyName string `json:"company_name"`
	LogoURL     string `json:"logo_url"`
}

type JobView struct {
	JobData
	JobTypeName         string       `json:"job_type_name"`
	ExperienceLevelName string       `json:"experience_level_name"`
	Company             *CompanyInfo `json:"company,omitempty"`
	ApplicationCount    int64        `json:"application_count"`
	PostedAt            *time.Time   `json:"posted_at"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

type JobListResponse struct {
	Jobs       []JobView `json:"jobs"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"totalPages"`
}

type UpsertResult struct {
	ID       string `json:"id"`
	Created  bool   `json:"created"`
	IsActive bool   `json:"is_active"`
	Title    string `json:"title"`
}

func JobConvert(rec dbmodels.JobExt) JobView {
	result := JobView{
		JobData: JobData{
			ID:                    rec.ID,
			Title:                 rec.Title,
			Location:              rec.Location,
			JobType:               rec.JobType,
			ExperienceLevel:       rec.ExperienceLevel,
			EmploymentType:        rec.EmploymentType,
			Description:           rec.Description,
			TechnicalRequirements: nonNilList(rec.TechnicalRequirements),
			SoftSkills:            nonNilList(rec.SoftSkills),
			Responsibilities:      nonNilList(rec.Responsibilities),
			Benefits:              nonNilList(rec.Benefits),
			IsActive:              rec.IsActive,
			ExpiresAt:             rec.ExpiresAt,
			CompanyBrandingID:     rec.CompanyBrandingID,
			Salary: Salary{
				Min:      rec.SalaryMin,
				Max:      rec.SalaryMax,
				Currency: rec.SalaryCurrency,
			},
		},
		JobTypeName:         rec.JobType.ToHuman(),
		ExperienceLevelName: rec.ExperienceLevel.ToHuman(),
		ApplicationCount:    rec.ApplicationCount,
		PostedAt:            rec.PostedAt,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
	}
	if rec.CompanyBranding != nil {
		result.Company = &CompanyInfo{
			ID:          rec.CompanyBranding.ID,
			Slug:        rec.CompanyBranding.Slug,
			CompanyName: rec.CompanyBranding.CompanyName,
			LogoURL:     rec.CompanyBranding.LogoURL,
		}
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

func nonNilList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
