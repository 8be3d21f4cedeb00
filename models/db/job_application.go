package dbmodels

import (
	"time"

	"jobboard-backend/models"
)

// JobApplication отклик кандидата, пара (JobID, CandidateEmail) уникальна на уровне БД
type JobApplication struct {
	BaseModel
	JobID           string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_job_candidate"`
	Job             *Job                     `gorm:"foreignKey:JobID"`
	CandidateEmail  string                   `gorm:"type:varchar(255);uniqueIndex:idx_application_job_candidate"`
	CandidateUserID string                   `gorm:"type:varchar(36);index"`
	CandidateName   string                   `gorm:"type:varchar(255)"`
	Phone           string                   `gorm:"type:varchar(50)"`
	CoverLetter     string                   `gorm:"type:text"`
	ResumeURL       string                   `gorm:"type:varchar(1024)"`
	ProfileURL      string                   `gorm:"type:varchar(1024)"`
	Status          models.ApplicationStatus `gorm:"type:varchar(50);index"`
	AppliedAt       time.Time
}

func (a JobApplication) IsAllowStatusChange(newStatus models.ApplicationStatus) (bool, string) {
	if err := newStatus.Validate(); err != nil {
		return false, err.Error()
	}
	if a.Status == newStatus {
		return false, ""
	}
	if a.Status.IsTerminal() {
		return false, "application status is final: " + a.Status.ToHuman()
	}
	if !a.Status.CanChangeTo(newStatus) {
		return false, "status change from " + string(a.Status) + " to " + string(newStatus) + " is not allowed"
	}
	return true, ""
}
