package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"jobboard-backend/models"
)

type Job struct {
	BaseModel
	Salary
	CompanyBrandingID     string                 `gorm:"type:varchar(36);index:idx_job_company"`
	CompanyBranding       *CompanyBranding       `gorm:"foreignKey:CompanyBrandingID"`
	Title                 string                 `gorm:"type:varchar(255)"`
	Location              string                 `gorm:"type:varchar(255)"`
	JobType               models.JobType         `gorm:"type:varchar(50);index"`
	ExperienceLevel       models.ExperienceLevel `gorm:"type:varchar(50);index"`
	EmploymentType        models.EmploymentType  `gorm:"type:varchar(50)"`
	Description           string                 `gorm:"type:text"`
	TechnicalRequirements pq.StringArray         `gorm:"type:text[]"`
	SoftSkills            pq.StringArray         `gorm:"type:text[]"`
	Responsibilities      pq.StringArray         `gorm:"type:text[]"`
	Benefits              pq.StringArray         `gorm:"type:text[]"`
	IsActive              bool                   `gorm:"index"`
	PostedAt              *time.Time             `gorm:"index"`
	ExpiresAt             *time.Time
}

type Salary struct {
	SalaryMin      *int   `gorm:"column:salary_min"`
	SalaryMax      *int   `gorm:"column:salary_max"`
	SalaryCurrency string `gorm:"column:salary_currency;type:varchar(10)"`
}

type JobExt struct {
	Job
	ApplicationCount int64
}

// IsOwnedBy вакансия принадлежит странице компании
func (j Job) IsOwnedBy(companyBrandingID string) bool {
	return companyBrandingID != "" && j.CompanyBrandingID == companyBrandingID
}
