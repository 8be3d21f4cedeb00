package applicationapimodels

import (
	"strconv"
	"strings"
	"time"

	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/lib/utils/validation"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
	dbmodels "jobboard-backend/models/db"
)

type ApplyRequest struct {
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
}

func (r ApplyRequest) Validate() error {
	return validation.Check(r)
}

type StatusChangeRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r StatusChangeRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return apperrors.Validation("invalid request", map[string]string{"status": err.Error()})
	}
	return nil
}

type ApplicationFilter struct {
	apimodels.Pagination
	Statuses []models.ApplicationStatus `json:"statuses"`
}

func (f ApplicationFilter) Validate() error {
	for _, status := range f.Statuses {
		if err := status.Validate(); err != nil {
			return apperrors.Validation("invalid filter", map[string]string{"statuses": err.Error()})
		}
	}
	if f.Page < 0 || f.Limit < 0 {
		return apperrors.Validation("invalid filter", map[string]string{"page": "must not be negative"})
	}
	if f.Page > apimodels.MaxPage {
		return apperrors.Validation("invalid filter", map[string]string{"page": "must be at most " + strconv.Itoa(apimodels.MaxPage)})
	}
	return nil
}

// ParseApplicationFilter параметры списка откликов: page, limit, status (через запятую)
func ParseApplicationFilter(params map[string]string) (ApplicationFilter, error) {
	filter := ApplicationFilter{
		Pagination: apimodels.Pagination{Page: apimodels.DefaultPage, Limit: apimodels.DefaultLimit},
	}
	details := map[string]string{}
	if raw := strings.TrimSpace(params["page"]); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil || page <= 0:
			details["page"] = "must be a positive integer"
		case page > apimodels.MaxPage:
			details["page"] = "must be at most " + strconv.Itoa(apimodels.MaxPage)
		}
		filter.Page = page
	}
	if raw := strings.TrimSpace(params["limit"]); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil || limit <= 0:
			details["limit"] = "must be a positive integer"
		case limit > apimodels.MaxLimit:
			details["limit"] = "must be at most " + strconv.Itoa(apimodels.MaxLimit)
		}
		filter.Limit = limit
	}
	for _, item := range strings.Split(params["status"], ",") {
		status := models.ApplicationStatus(strings.ToUpper(strings.TrimSpace(item)))
		if status == "" {
			continue
		}
		if err := status.Validate(); err != nil {
			details["status"] = err.Error()
			break
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if len(details) != 0 {
		return ApplicationFilter{}, apperrors.Validation("invalid query parameters", details)
	}
	return filter, nil
}

type ApplicationView struct {
	ID             string                   `json:"id"`
	JobID          string                   `json:"job_id"`
	JobTitle       string                   `json:"job_title,omitempty"`
	CandidateEmail string                   `json:"candidate_email"`
	CandidateName  string                   `json:"candidate_name"`
	Phone          string                   `json:"phone"`
	CoverLetter    string                   `json:"cover_letter"`
	ResumeURL      string                   `json:"resume_url"`
	ProfileURL     string                   `json:"profile_url"`
	Status         models.ApplicationStatus `json:"status"`
	StatusName     string                   `json:"status_name"`
	AppliedAt      time.Time                `json:"applied_at"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	result := ApplicationView{
		ID:             rec.ID,
		JobID:          rec.JobID,
		CandidateEmail: rec.CandidateEmail,
		CandidateName:  rec.CandidateName,
		Phone:          rec.Phone,
		CoverLetter:    rec.CoverLetter,
		ResumeURL:      rec.ResumeURL,
		ProfileURL:     rec.ProfileURL,
		Status:         rec.Status,
		StatusName:     rec.Status.ToHuman(),
		AppliedAt:      rec.AppliedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	return result
}
