package jobstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"jobboard-backend/models"
	jobapimodels "jobboard-backend/models/api/job"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobExt, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter jobapimodels.JobFilter) (count int64, err error)
	List(filter jobapimodels.JobFilter) (list []dbmodels.JobExt, err error)
	ListToExpire(expireTime time.Time, limit int) (list []dbmodels.Job, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

const applicationCountSelect = "jobs.*, (SELECT COUNT(*) FROM job_applications AS a WHERE a.job_id = jobs.id) AS application_count"

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobExt, error) {
	rec := dbmodels.JobExt{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Select(applicationCountSelect).
		Where("jobs.id = ?", id).
		Preload("CompanyBranding").
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
		Model(&dbmodels.Job{}).
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

func (i impl) ListCount(filter jobapimodels.JobFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(&dbmodels.Job{})
	tx = i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества вакансий")
		return 0, errors.Wrap(err, "ошибка получения общего количества вакансий")
	}
	return rowCount, nil
}

func (i impl) List(filter jobapimodels.JobFilter) (list []dbmodels.JobExt, err error) {
	list = []dbmodels.JobExt{}
	tx := i.listQuery(filter)
	err = tx.Preload("CompanyBranding").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListToExpire опубликованные вакансии с истекшим сроком публикации
func (i impl) ListToExpire(expireTime time.Time, limit int) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Where("is_active = ?", true).
		Where("expires_at IS NOT NULL AND expires_at <= ?", expireTime).
		Order("expires_at").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) listQuery(filter jobapimodels.JobFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.Job{}).
		Select(applicationCountSelect)
	tx = i.addFilter(tx, filter)
	tx = i.addSort(tx, filter.Sort)
	page, limit := filter.GetPage()
	return i.setPage(tx, page, limit)
}

func (i impl) addFilter(tx *gorm.DB, filter jobapimodels.JobFilter) *gorm.DB {
	if filter.IsCompanyScope() {
		tx = tx.Where("jobs.company_branding_id = ?", filter.CompanyBrandingID)
	}
	if filter.IsActiveRequired() {
		tx = tx.Where("jobs.is_active = ?", true)
	}
	if filter.Search != "" {
		searchValue := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		tx = tx.Where("(LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ? OR ? = ANY(jobs.technical_requirements))",
			searchValue, searchValue, filter.Search)
	}
	if filter.Location != "" {
		tx = tx.Where("LOWER(jobs.location) LIKE ?", "%"+escapeLike(strings.ToLower(filter.Location))+"%")
	}
	if len(filter.JobTypes) != 0 {
		tx = tx.Where("jobs.job_type IN ?", filter.JobTypes)
	}
	if len(filter.ExperienceLevels) != 0 {
		tx = tx.Where("jobs.experience_level IN ?", filter.ExperienceLevels)
	}
	return tx
}

func (i impl) addSort(tx *gorm.DB, sort models.JobSort) *gorm.DB {
	switch sort {
	case models.JobSortDateAsc:
		tx = tx.Order("COALESCE(jobs.posted_at, jobs.created_at) ASC")
	case models.JobSortTitleAsc:
		tx = tx.Order("LOWER(jobs.title) ASC")
	case models.JobSortTitleDesc:
		tx = tx.Order("LOWER(jobs.title) DESC")
	case models.JobSortApplicationsAsc:
		tx = tx.Order("application_count ASC")
	case models.JobSortApplicationsDesc:
		tx = tx.Order("application_count DESC")
	default:
		tx = tx.Order("COALESCE(jobs.posted_at, jobs.created_at) DESC")
	}
	// стабильный порядок между страницами
	return tx.Order("jobs.id")
}

func (i impl) setPage(tx *gorm.DB, page, limit int) *gorm.DB {
	offset := (page - 1) * limit
	return tx.Limit(limit).Offset(offset)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
