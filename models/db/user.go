package dbmodels

import (
	"time"

	"jobboard-backend/models"
)

type User struct {
	BaseModel
	Email     string          `gorm:"type:varchar(255);uniqueIndex"`
	Password  string          `gorm:"type:varchar(128)"`
	Name      string          `gorm:"type:varchar(255)"`
	Role      models.UserRole `gorm:"type:varchar(50)"`
	IsActive  bool            `gorm:"default:true"`
	LastLogin *time.Time
}
