package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/lib/utils/helpers"
	applicationapimodels "jobboard-backend/models/api/application"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	IsExist(jobID, candidateEmail string) (found bool, err error)
	GetByID(id string) (rec *dbmodels.JobApplication, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCountByJob(jobID string, filter applicationapimodels.ApplicationFilter) (count int64, err error)
	ListByJob(jobID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, err error)
	ListAllByJob(jobID string) (list []dbmodels.JobApplication, err error)
	ListCountByCandidate(userID string, filter applicationapimodels.ApplicationFilter) (count int64, err error)
	ListByCandidate(userID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create нарушение уникального индекса (job_id, candidate_email) возвращается как DUPLICATE_APPLICATION
func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if helpers.IsDuplicateKeyError(err) {
			return "", apperrors.DuplicateApplication()
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) IsExist(jobID, candidateEmail string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.JobApplication{}).
		Select("count(*) > 0").
		Where("job_id = ?", jobID).
		Where("candidate_email = ?", helpers.NormalizeEmail(candidateEmail)).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Preload("Job").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ListCountByJob(jobID string, filter applicationapimodels.ApplicationFilter) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("job_id = ?", jobID)
	tx = i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения количества откликов")
	}
	return count, nil
}

func (i impl) ListByJob(jobID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("job_id = ?", jobID)
	tx = i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	err = i.setPage(tx.Order("applied_at desc").Order("id"), page, limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAllByJob(jobID string) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	err = i.db.
		Model(&dbmodels.JobApplication{}).
		Where("job_id = ?", jobID).
		Order("applied_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCountByCandidate(userID string, filter applicationapimodels.ApplicationFilter) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("candidate_user_id = ?", userID)
	tx = i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения количества откликов кандидата")
	}
	return count, nil
}

func (i impl) ListByCandidate(userID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("candidate_user_id = ?", userID)
	tx = i.addFilter(tx, filter)
	page, limit := filter.GetPage()
	err = i.setPage(tx.Order("applied_at desc").Order("id"), page, limit).
		Preload("Job").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter applicationapimodels.ApplicationFilter) *gorm.DB {
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, page, limit int) *gorm.DB {
	offset := (page - 1) * limit
	return tx.Limit(limit).Offset(offset)
}
