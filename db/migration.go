package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "jobboard-backend/models/db"
)

func AutoMigrateDB() error {
	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return errors.Wrap(err, "ошибка создания расширения uuid-ossp")
	}
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.CompanyBranding{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CompanyBranding")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры JobApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateProfile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.MediaFile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MediaFile")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
