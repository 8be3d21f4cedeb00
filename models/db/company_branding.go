package dbmodels

import "gorm.io/datatypes"

type CompanyBranding struct {
	BaseModel
	UserID         string                               `gorm:"type:varchar(36);uniqueIndex"`
	User           *User                                `gorm:"foreignKey:UserID"`
	Slug           string                               `gorm:"type:varchar(120);uniqueIndex"`
	CompanyName    string                               `gorm:"type:varchar(255)"`
	Tagline        string                               `gorm:"type:varchar(255)"`
	Website        string                               `gorm:"type:varchar(255)"`
	PrimaryColor   string                               `gorm:"type:varchar(20)"`
	SecondaryColor string                               `gorm:"type:varchar(20)"`
	LogoURL        string                               `gorm:"type:varchar(1024)"`
	BannerURL      string                               `gorm:"type:varchar(1024)"`
	Sections       datatypes.JSONSlice[BrandingSection] `gorm:"type:jsonb"`
	IsPublished    bool
	Jobs           []Job `gorm:"foreignKey:CompanyBrandingID"`
}

// BrandingSection блок контента на странице компании, порядок задает Order
type BrandingSection struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}
