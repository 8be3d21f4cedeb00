package dbmodels

import "github.com/lib/pq"

type CandidateProfile struct {
	BaseModel
	UserID            string `gorm:"type:varchar(36);uniqueIndex"`
	User              *User  `gorm:"foreignKey:UserID"`
	Headline          string `gorm:"type:varchar(255)"`
	Location          string `gorm:"type:varchar(255)"`
	YearsOfExperience int
	Skills            pq.StringArray `gorm:"type:text[]"`
	DesiredRoles      pq.StringArray `gorm:"type:text[]"`
	Summary           string         `gorm:"type:text"`
	ResumeURL         string         `gorm:"type:varchar(1024)"`
	IsPublic          bool           `gorm:"not null"`
}
