package jobhandler

import (
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jobboard-backend/db"
	brandingstore "jobboard-backend/lib/branding/store"
	pdfexport "jobboard-backend/lib/export/pdf"
	jobstore "jobboard-backend/lib/job/store"
	apperrors "jobboard-backend/lib/utils/app-errors"
	salaryparser "jobboard-backend/lib/utils/salary-parser"
	apimodels "jobboard-backend/models/api"
	jobapimodels "jobboard-backend/models/api/job"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Upsert(userID string, data jobapimodels.JobData) (result jobapimodels.UpsertResult, err error)
	GetPublic(id string) (item jobapimodels.JobView, err error)
	GetForRecruiter(userID, id string) (item jobapimodels.JobView, err error)
	List(filter jobapimodels.JobFilter) (result jobapimodels.JobListResponse, err error)
	ListForRecruiter(userID string, filter jobapimodels.JobFilter) (result jobapimodels.JobListResponse, err error)
	ChangeActive(userID, id string, isActive bool) error
	ExportPDF(userID, id string) (pdfFile []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         jobstore.NewInstance(db.DB),
		brandingStore: brandingstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         jobstore.Provider
	brandingStore brandingstore.Provider
}

var errJobNotFound = apperrors.NotFound("job not found")

func (i impl) Upsert(userID string, data jobapimodels.JobData) (jobapimodels.UpsertResult, error) {
	data.Normalize()
	if data.SalaryText != "" && data.Salary.IsEmpty() {
		salary, err := salaryparser.Parse(data.SalaryText)
		if err != nil {
			return jobapimodels.UpsertResult{}, apperrors.Validation("invalid job data", map[string]string{"salary_text": err.Error()})
		}
		data.Salary = jobapimodels.Salary{
			Min:      &salary.Min,
			Max:      &salary.Max,
			Currency: salary.Currency,
		}
	}
	if err := data.Validate(); err != nil {
		return jobapimodels.UpsertResult{}, err
	}
	branding, err := i.getRecruiterBranding(userID)
	if err != nil {
		return jobapimodels.UpsertResult{}, err
	}
	if data.CompanyBrandingID != "" && data.CompanyBrandingID != branding.ID {
		return jobapimodels.UpsertResult{}, apperrors.Forbidden("jobs can be posted only to your own company page")
	}

	if data.ID != "" {
		return i.update(userID, branding.ID, data)
	}
	return i.create(userID, branding.ID, data)
}

func (i impl) create(userID, brandingID string, data jobapimodels.JobData) (jobapimodels.UpsertResult, error) {
	rec := dbmodels.Job{
		CompanyBrandingID: brandingID,
		Title:             data.Title,
		Location:          data.Location,
		JobType:           data.JobType,
		ExperienceLevel:   data.ExperienceLevel,
		EmploymentType:    data.EmploymentType,
		Description:       data.Description,
		IsActive:          data.IsActive,
		ExpiresAt:         data.ExpiresAt,
		Salary: dbmodels.Salary{
			SalaryMin:      data.Salary.Min,
			SalaryMax:      data.Salary.Max,
			SalaryCurrency: data.Salary.Currency,
		},
		TechnicalRequirements: data.TechnicalRequirements,
		SoftSkills:            data.SoftSkills,
		Responsibilities:      data.Responsibilities,
		Benefits:              data.Benefits,
	}
	if rec.IsActive {
		now := time.Now()
		rec.PostedAt = &now
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return jobapimodels.UpsertResult{}, errors.Wrap(err, "ошибка создания вакансии")
	}
	i.getLogger(userID, id).Info("создана вакансия")
	return jobapimodels.UpsertResult{
		ID:       id,
		Created:  true,
		IsActive: rec.IsActive,
		Title:    rec.Title,
	}, nil
}

func (i impl) update(userID, brandingID string, data jobapimodels.JobData) (jobapimodels.UpsertResult, error) {
	rec, err := i.store.GetByID(data.ID)
	if err != nil {
		return jobapimodels.UpsertResult{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil || !rec.IsOwnedBy(brandingID) {
		return jobapimodels.UpsertResult{}, errJobNotFound
	}
	updMap := map[string]interface{}{
		"title":                  data.Title,
		"location":               data.Location,
		"job_type":               data.JobType,
		"experience_level":       data.ExperienceLevel,
		"employment_type":        data.EmploymentType,
		"description":            data.Description,
		"salary_min":             data.Salary.Min,
		"salary_max":             data.Salary.Max,
		"salary_currency":        data.Salary.Currency,
		"technical_requirements": dbStringArray(data.TechnicalRequirements),
		"soft_skills":            dbStringArray(data.SoftSkills),
		"responsibilities":       dbStringArray(data.Responsibilities),
		"benefits":               dbStringArray(data.Benefits),
		"is_active":              data.IsActive,
		"expires_at":             data.ExpiresAt,
	}
	if data.IsActive && rec.PostedAt == nil {
		updMap["posted_at"] = time.Now()
	}
	err = i.store.Update(data.ID, updMap)
	if err != nil {
		return jobapimodels.UpsertResult{}, errors.Wrap(err, "ошибка обновления вакансии")
	}
	i.getLogger(userID, data.ID).Info("обновлена вакансия")
	return jobapimodels.UpsertResult{
		ID:       data.ID,
		Created:  false,
		IsActive: data.IsActive,
		Title:    data.Title,
	}, nil
}

func (i impl) GetPublic(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil || !rec.IsActive {
		return jobapimodels.JobView{}, errJobNotFound
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) GetForRecruiter(userID, id string) (jobapimodels.JobView, error) {
	rec, _, err := i.getOwnJob(userID, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) List(filter jobapimodels.JobFilter) (jobapimodels.JobListResponse, error) {
	filter.CompanyBrandingID = ""
	return i.list(filter)
}

func (i impl) ListForRecruiter(userID string, filter jobapimodels.JobFilter) (jobapimodels.JobListResponse, error) {
	branding, err := i.getRecruiterBranding(userID)
	if err != nil {
		return jobapimodels.JobListResponse{}, err
	}
	filter.CompanyBrandingID = branding.ID
	filter.ActiveOnly = false
	return i.list(filter)
}

func (i impl) list(filter jobapimodels.JobFilter) (jobapimodels.JobListResponse, error) {
	page, limit := filter.GetPage()
	result := jobapimodels.JobListResponse{
		Jobs:  []jobapimodels.JobView{},
		Page:  page,
		Limit: limit,
	}
	total, err := i.store.ListCount(filter)
	if err != nil {
		return jobapimodels.JobListResponse{}, err
	}
	result.Total = total
	result.TotalPages = apimodels.TotalPages(total, limit)
	if filter.IsBeyond(total) {
		return result, nil
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return jobapimodels.JobListResponse{}, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	for _, rec := range recList {
		result.Jobs = append(result.Jobs, jobapimodels.JobConvert(rec))
	}
	return result, nil
}

func (i impl) ChangeActive(userID, id string, isActive bool) error {
	rec, _, err := i.getOwnJob(userID, id)
	if err != nil {
		return err
	}
	if rec.IsActive == isActive {
		return nil
	}
	updMap := map[string]interface{}{
		"is_active": isActive,
	}
	if isActive && rec.PostedAt == nil {
		updMap["posted_at"] = time.Now()
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка изменения статуса публикации вакансии")
	}
	logger := i.getLogger(userID, id)
	if isActive {
		logger.Info("вакансия опубликована")
	} else {
		logger.Info("вакансия снята с публикации")
	}
	return nil
}

func (i impl) ExportPDF(userID, id string) (pdfFile []byte, fileName string, err error) {
	rec, branding, err := i.getOwnJob(userID, id)
	if err != nil {
		return nil, "", err
	}
	pdfFile, err = pdfexport.GenerateJobPosting(jobapimodels.JobConvert(*rec), branding.PrimaryColor)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка формирования pdf вакансии")
	}
	return pdfFile, "job-" + rec.ID + ".pdf", nil
}

func (i impl) getRecruiterBranding(userID string) (*dbmodels.CompanyBranding, error) {
	branding, err := i.brandingStore.GetByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения страницы компании")
	}
	if branding == nil {
		return nil, apperrors.NotFound("company branding not found, create your company page first")
	}
	return branding, nil
}

// getOwnJob вакансия компании рекрутера, чужая вакансия неотличима от отсутствующей
func (i impl) getOwnJob(userID, id string) (*dbmodels.JobExt, *dbmodels.CompanyBranding, error) {
	branding, err := i.getRecruiterBranding(userID)
	if err != nil {
		return nil, nil, err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil || !rec.IsOwnedBy(branding.ID) {
		return nil, nil, errJobNotFound
	}
	return rec, branding, nil
}

func (i impl) getLogger(userID, jobID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if jobID != "" {
		logger = logger.WithField("job_id", jobID)
	}
	return logger
}

func dbStringArray(list []string) pq.StringArray {
	if list == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(list)
}
