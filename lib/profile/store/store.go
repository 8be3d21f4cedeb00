package profilestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.CandidateProfile) (id string, err error)
	SetResume(userID, resumeURL string) error
	GetByUserID(userID string) (rec *dbmodels.CandidateProfile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

var profileColumns = []string{
	"headline", "location", "years_of_experience", "skills", "desired_roles", "summary", "is_public", "updated_at",
}

// Save одна анкета на пользователя, повторное сохранение обновляет запись по user_id
func (i impl) Save(rec dbmodels.CandidateProfile) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(profileColumns),
		}).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) SetResume(userID, resumeURL string) error {
	rec := dbmodels.CandidateProfile{
		UserID:    userID,
		ResumeURL: resumeURL,
		IsPublic:  true,
	}
	return i.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"resume_url", "updated_at"}),
		}).
		Create(&rec).
		Error
}

func (i impl) GetByUserID(userID string) (*dbmodels.CandidateProfile, error) {
	rec := dbmodels.CandidateProfile{}
	err := i.db.
		Where("user_id = ?", userID).
		Preload("User").
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
