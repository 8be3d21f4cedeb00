package brandingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CompanyBranding) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.CompanyBranding, err error)
	GetByUserID(userID string) (rec *dbmodels.CompanyBranding, err error)
	GetBySlug(slug string) (rec *dbmodels.CompanyBranding, err error)
	IsSlugExist(slug, exceptID string) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CompanyBranding) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.CompanyBranding{}).
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

func (i impl) GetByID(id string) (*dbmodels.CompanyBranding, error) {
	return i.getBy("id = ?", id)
}

func (i impl) GetByUserID(userID string) (*dbmodels.CompanyBranding, error) {
	return i.getBy("user_id = ?", userID)
}

func (i impl) GetBySlug(slug string) (*dbmodels.CompanyBranding, error) {
	return i.getBy("slug = ?", slug)
}

func (i impl) IsSlugExist(slug, exceptID string) (found bool, err error) {
	var exists bool
	tx := i.db.Model(&dbmodels.CompanyBranding{}).
		Select("count(*) > 0").
		Where("slug = ?", slug)
	if exceptID != "" {
		tx = tx.Where("id <> ?", exceptID)
	}
	err = tx.Find(&exists).Error
	return exists, err
}

func (i impl) getBy(query string, value string) (*dbmodels.CompanyBranding, error) {
	rec := dbmodels.CompanyBranding{}
	err := i.db.
		Model(&dbmodels.CompanyBranding{}).
		Where(query, value).
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
