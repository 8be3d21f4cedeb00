package applicationhandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jobboard-backend/config"
	"jobboard-backend/db"
	applicationstore "jobboard-backend/lib/application/store"
	brandingstore "jobboard-backend/lib/branding/store"
	xlsexport "jobboard-backend/lib/export/xls"
	jobstore "jobboard-backend/lib/job/store"
	profilestore "jobboard-backend/lib/profile/store"
	"jobboard-backend/lib/smtp"
	userstore "jobboard-backend/lib/user/store"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/lib/utils/helpers"
	"jobboard-backend/models"
	applicationapimodels "jobboard-backend/models/api/application"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Apply(userID, jobID string, data applicationapimodels.ApplyRequest) (item applicationapimodels.ApplicationView, err error)
	ListForCandidate(userID string, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	Withdraw(userID, id string) error
	ListForJob(userID, jobID string, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	ChangeStatus(userID, id string, status models.ApplicationStatus) error
	ExportXLS(userID, jobID string) (file []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         applicationstore.NewInstance(db.DB),
		jobStore:      jobstore.NewInstance(db.DB),
		brandingStore: brandingstore.NewInstance(db.DB),
		userStore:     userstore.NewInstance(db.DB),
		profileStore:  profilestore.NewInstance(db.DB),
		notifier:      smtp.Instance,
		xlsExport:     xlsexport.Instance,
		publicURL:     config.Conf.App.PublicURL,
	}
}

type impl struct {
	store         applicationstore.Provider
	jobStore      jobstore.Provider
	brandingStore brandingstore.Provider
	userStore     userstore.Provider
	profileStore  profilestore.Provider
	notifier      smtp.Provider
	xlsExport     xlsexport.Provider
	publicURL     string
}

var (
	errJobNotFound         = apperrors.NotFound("job not found")
	errApplicationNotFound = apperrors.NotFound("application not found")
)

func (i impl) Apply(userID, jobID string, data applicationapimodels.ApplyRequest) (applicationapimodels.ApplicationView, error) {
	if err := data.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	logger := i.getLogger(userID, jobID)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil {
		return applicationapimodels.ApplicationView{}, apperrors.Unauthorized("user not found")
	}
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil || !job.IsActive {
		return applicationapimodels.ApplicationView{}, errJobNotFound
	}

	email := helpers.NormalizeEmail(user.Email)
	exists, err := i.store.IsExist(jobID, email)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка проверки наличия отклика")
	}
	if exists {
		logger.Info("повторный отклик на вакансию")
		return applicationapimodels.ApplicationView{}, apperrors.DuplicateApplication()
	}

	rec := dbmodels.JobApplication{
		JobID:           jobID,
		CandidateEmail:  email,
		CandidateUserID: userID,
		CandidateName:   user.Name,
		Phone:           strings.TrimSpace(data.Phone),
		CoverLetter:     strings.TrimSpace(data.CoverLetter),
		ProfileURL:      i.profileURL(userID),
		Status:          models.ApplicationStatusApplied,
		AppliedAt:       time.Now(),
	}
	profile, err := i.profileStore.GetByUserID(userID)
	if err != nil {
		logger.WithError(err).Warn("не удалось получить анкету кандидата, отклик без резюме")
	} else if profile != nil {
		rec.ResumeURL = profile.ResumeURL
	}

	rec.ID, err = i.store.Create(rec)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeDuplicateApplication) {
			logger.Info("повторный отклик на вакансию, сработал уникальный индекс")
			return applicationapimodels.ApplicationView{}, err
		}
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "ошибка сохранения отклика")
	}
	logger.WithField("application_id", rec.ID).Info("создан отклик на вакансию")

	go i.notifyRecruiter(job.Job, rec)

	rec.Job = &job.Job
	return applicationapimodels.ApplicationConvert(rec), nil
}

func (i impl) ListForCandidate(userID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCountByCandidate(userID, filter)
	if err != nil {
		return nil, 0, err
	}
	if filter.IsBeyond(rowCount) {
		return []applicationapimodels.ApplicationView{}, rowCount, nil
	}
	recList, err := i.store.ListByCandidate(userID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка откликов кандидата")
	}
	return convertList(recList), rowCount, nil
}

func (i impl) Withdraw(userID, id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil || rec.CandidateUserID != userID {
		return errApplicationNotFound
	}
	return i.changeStatus(userID, *rec, models.ApplicationStatusWithdrawn)
}

func (i impl) ListForJob(userID, jobID string, filter applicationapimodels.ApplicationFilter) ([]applicationapimodels.ApplicationView, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	if _, err := i.getOwnJob(userID, jobID); err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCountByJob(jobID, filter)
	if err != nil {
		return nil, 0, err
	}
	if filter.IsBeyond(rowCount) {
		return []applicationapimodels.ApplicationView{}, rowCount, nil
	}
	recList, err := i.store.ListByJob(jobID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка откликов по вакансии")
	}
	return convertList(recList), rowCount, nil
}

func (i impl) ChangeStatus(userID, id string, status models.ApplicationStatus) error {
	if status == models.ApplicationStatusWithdrawn {
		return apperrors.Validation("invalid status", map[string]string{"status": "only the candidate can withdraw an application"})
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return errApplicationNotFound
	}
	if _, err = i.getOwnJob(userID, rec.JobID); err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return errApplicationNotFound
		}
		return err
	}
	return i.changeStatus(userID, *rec, status)
}

func (i impl) ExportXLS(userID, jobID string) (file []byte, fileName string, err error) {
	job, err := i.getOwnJob(userID, jobID)
	if err != nil {
		return nil, "", err
	}
	list, err := i.store.ListAllByJob(jobID)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения списка откликов по вакансии")
	}
	buf, err := i.xlsExport.ExportApplicationList(job.Title, list)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка выгрузки откликов в xlsx")
	}
	return buf.Bytes(), "applications-" + jobID + ".xlsx", nil
}

func (i impl) changeStatus(userID string, rec dbmodels.JobApplication, status models.ApplicationStatus) error {
	if rec.Status == status {
		return nil
	}
	ok, hMsg := rec.IsAllowStatusChange(status)
	if !ok {
		return apperrors.Validation("invalid status", map[string]string{"status": hMsg})
	}
	err := i.store.Update(rec.ID, map[string]interface{}{"status": status})
	if err != nil {
		return errors.Wrap(err, "ошибка изменения статуса отклика")
	}
	i.getLogger(userID, rec.JobID).
		WithField("application_id", rec.ID).
		WithField("status", status).
		Info("изменен статус отклика")
	return nil
}

// getOwnJob вакансия компании рекрутера, чужая вакансия неотличима от отсутствующей
func (i impl) getOwnJob(userID, jobID string) (*dbmodels.JobExt, error) {
	branding, err := i.brandingStore.GetByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения страницы компании")
	}
	if branding == nil {
		return nil, errJobNotFound
	}
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if job == nil || !job.IsOwnedBy(branding.ID) {
		return nil, errJobNotFound
	}
	return job, nil
}

func (i impl) profileURL(userID string) string {
	return fmt.Sprintf("%s/candidates/%s", strings.TrimRight(i.publicURL, "/"), userID)
}

// notifyRecruiter письмо владельцу страницы компании, ошибка только логируется
func (i impl) notifyRecruiter(job dbmodels.Job, rec dbmodels.JobApplication) {
	logger := i.getLogger(rec.CandidateUserID, job.ID)
	if i.notifier == nil {
		return
	}
	branding, err := i.brandingStore.GetByID(job.CompanyBrandingID)
	if err != nil || branding == nil {
		logger.WithError(err).Warn("уведомление об отклике не отправлено, не найдена страница компании")
		return
	}
	recruiter, err := i.userStore.GetByID(branding.UserID)
	if err != nil || recruiter == nil {
		logger.WithError(err).Warn("уведомление об отклике не отправлено, не найден рекрутер")
		return
	}
	subject := "New application: " + job.Title
	message := fmt.Sprintf("%s (%s) applied for \"%s\".\r\nProfile: %s\r\n", rec.CandidateName, rec.CandidateEmail, job.Title, rec.ProfileURL)
	if err = i.notifier.SendEMail(recruiter.Email, subject, message); err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления об отклике")
	}
}

func (i impl) getLogger(userID, jobID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if jobID != "" {
		logger = logger.WithField("job_id", jobID)
	}
	return logger
}

func convertList(recList []dbmodels.JobApplication) []applicationapimodels.ApplicationView {
	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result
}
