package brandingapimodels

import (
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/lib/utils/validation"
	jobapimodels "jobboard-backend/models/api/job"
	dbmodels "jobboard-backend/models/db"
)

type BrandingData struct {
	Slug           string        `json:"slug" validate:"omitempty,max=120"`             // адрес страницы, если не указан - из названия компании
	CompanyName    string        `json:"company_name" validate:"required,max=255"`      // название компании
	Tagline        string        `json:"tagline" validate:"omitempty,max=255"`          // слоган
	Website        string        `json:"website" validate:"omitempty,url,max=255"`      // сайт компании
	PrimaryColor   string        `json:"primary_color" validate:"omitempty,hexcolor"`   // основной цвет темы
	SecondaryColor string        `json:"secondary_color" validate:"omitempty,hexcolor"` // дополнительный цвет темы
	LogoURL        string        `json:"logo_url" validate:"omitempty,url,max=1024"`    // лого
	BannerURL      string        `json:"banner_url" validate:"omitempty,url,max=1024"`  // баннер
	Sections       []SectionData `json:"sections" validate:"max=50,dive"`               // блоки контента
}

type SectionData struct {
	Type    string `json:"type" validate:"required,max=50"`
	Title   string `json:"title" validate:"max=255"`
	Content string `json:"content"`
	Order   int    `json:"order" validate:"min=0"`
}

func (b BrandingData) Validate() error {
	return validation.Check(b)
}

func (b *BrandingData) Normalize() {
	b.Slug = strings.TrimSpace(b.Slug)
	b.CompanyName = strings.TrimSpace(b.CompanyName)
	b.Tagline = strings.TrimSpace(b.Tagline)
	b.Website = strings.TrimSpace(b.Website)
}

type PublishRequest struct {
	IsPublished *bool `json:"is_published"`
}

func (r PublishRequest) Validate() error {
	if r.IsPublished == nil {
		return apperrors.Validation("invalid request", map[string]string{"is_published": "is required"})
	}
	return nil
}

type BrandingView struct {
	BrandingData
	ID          string    `json:"id"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CareerPageView struct {
	BrandingView
	Jobs       []jobapimodels.JobView `json:"jobs"`
	JobsTotal  int64                  `json:"jobs_total"`
	TotalPages int                    `json:"totalPages"`
}

type MediaUploadView struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

// ToSections блоки в порядке Order
func (b BrandingData) ToSections() datatypes.JSONSlice[dbmodels.BrandingSection] {
	result := make([]dbmodels.BrandingSection, 0, len(b.Sections))
	for _, section := range b.Sections {
		result = append(result, dbmodels.BrandingSection{
			Type:    section.Type,
			Title:   section.Title,
			Content: section.Content,
			Order:   section.Order,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return datatypes.JSONSlice[dbmodels.BrandingSection](result)
}

func BrandingConvert(rec dbmodels.CompanyBranding) BrandingView {
	sections := make([]SectionData, 0, len(rec.Sections))
	for _, section := range rec.Sections {
		sections = append(sections, SectionData{
			Type:    section.Type,
			Title:   section.Title,
			Content: section.Content,
			Order:   section.Order,
		})
	}
	return BrandingView{
		BrandingData: BrandingData{
			Slug:           rec.Slug,
			CompanyName:    rec.CompanyName,
			Tagline:        rec.Tagline,
			Website:        rec.Website,
			PrimaryColor:   rec.PrimaryColor,
			SecondaryColor: rec.SecondaryColor,
			LogoURL:        rec.LogoURL,
			BannerURL:      rec.BannerURL,
			Sections:       sections,
		},
		ID:          rec.ID,
		IsPublished: rec.IsPublished,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
