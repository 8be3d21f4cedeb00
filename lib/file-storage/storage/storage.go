package filesdbstorage

import (
	"gorm.io/gorm"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	SaveFile(rec dbmodels.MediaFile) (id string, err error)
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.MediaFile) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}
