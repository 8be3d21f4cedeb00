package brandinghandler

import (
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jobboard-backend/db"
	brandingstore "jobboard-backend/lib/branding/store"
	filestorage "jobboard-backend/lib/file-storage"
	jobstore "jobboard-backend/lib/job/store"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/lib/utils/helpers"
	apimodels "jobboard-backend/models/api"
	brandingapimodels "jobboard-backend/models/api/branding"
	jobapimodels "jobboard-backend/models/api/job"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Get(userID string) (item brandingapimodels.BrandingView, err error)
	Upsert(userID string, data brandingapimodels.BrandingData) (item brandingapimodels.BrandingView, err error)
	SetPublished(userID string, isPublished bool) (item brandingapimodels.BrandingView, err error)
	UploadMedia(ctx context.Context, userID, kind string, file io.Reader, info dbmodels.UploadFileInfo) (item brandingapimodels.MediaUploadView, err error)
	CareerPage(slug string, filter jobapimodels.JobFilter) (item brandingapimodels.CareerPageView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       brandingstore.NewInstance(db.DB),
		jobStore:    jobstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
	}
}

type impl struct {
	store       brandingstore.Provider
	jobStore    jobstore.Provider
	fileStorage filestorage.Provider
}

const (
	MediaKindLogo   = "logo"
	MediaKindBanner = "banner"
)

var mediaKinds = map[string]dbmodels.FileType{
	MediaKindLogo:   dbmodels.BrandingLogo,
	MediaKindBanner: dbmodels.BrandingBanner,
}

var errBrandingNotFound = apperrors.NotFound("company branding not found")

func (i impl) Get(userID string) (brandingapimodels.BrandingView, error) {
	rec, err := i.getOwn(userID)
	if err != nil {
		return brandingapimodels.BrandingView{}, err
	}
	return brandingapimodels.BrandingConvert(*rec), nil
}

func (i impl) Upsert(userID string, data brandingapimodels.BrandingData) (brandingapimodels.BrandingView, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return brandingapimodels.BrandingView{}, err
	}
	slugSource := data.Slug
	if slugSource == "" {
		slugSource = data.CompanyName
	}
	slug := helpers.Slugify(slugSource)
	if slug == "" {
		return brandingapimodels.BrandingView{}, apperrors.Validation("invalid branding data", map[string]string{"slug": "must contain latin letters or digits"})
	}

	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return brandingapimodels.BrandingView{}, errors.Wrap(err, "ошибка получения страницы компании")
	}
	exceptID := ""
	if rec != nil {
		exceptID = rec.ID
	}
	taken, err := i.store.IsSlugExist(slug, exceptID)
	if err != nil {
		return brandingapimodels.BrandingView{}, errors.Wrap(err, "ошибка проверки адреса страницы компании")
	}
	if taken {
		return brandingapimodels.BrandingView{}, apperrors.Conflict("company page address is already taken: " + slug)
	}

	logger := i.getLogger(userID, exceptID)
	if rec == nil {
		newRec := dbmodels.CompanyBranding{
			UserID:         userID,
			Slug:           slug,
			CompanyName:    data.CompanyName,
			Tagline:        data.Tagline,
			Website:        data.Website,
			PrimaryColor:   data.PrimaryColor,
			SecondaryColor: data.SecondaryColor,
			LogoURL:        data.LogoURL,
			BannerURL:      data.BannerURL,
			Sections:       data.ToSections(),
		}
		newRec.ID, err = i.store.Create(newRec)
		if err != nil {
			return brandingapimodels.BrandingView{}, i.mapSlugConflict(err, slug, "ошибка создания страницы компании")
		}
		logger.WithField("branding_id", newRec.ID).Info("создана страница компании")
		return i.Get(userID)
	}

	updMap := map[string]interface{}{
		"slug":            slug,
		"company_name":    data.CompanyName,
		"tagline":         data.Tagline,
		"website":         data.Website,
		"primary_color":   data.PrimaryColor,
		"secondary_color": data.SecondaryColor,
		"logo_url":        data.LogoURL,
		"banner_url":      data.BannerURL,
		"sections":        data.ToSections(),
	}
	err = i.store.Update(rec.ID, updMap)
	if err != nil {
		return brandingapimodels.BrandingView{}, i.mapSlugConflict(err, slug, "ошибка обновления страницы компании")
	}
	logger.Info("обновлена страница компании")
	return i.Get(userID)
}

func (i impl) SetPublished(userID string, isPublished bool) (brandingapimodels.BrandingView, error) {
	rec, err := i.getOwn(userID)
	if err != nil {
		return brandingapimodels.BrandingView{}, err
	}
	if rec.IsPublished != isPublished {
		err = i.store.Update(rec.ID, map[string]interface{}{"is_published": isPublished})
		if err != nil {
			return brandingapimodels.BrandingView{}, errors.Wrap(err, "ошибка изменения публикации страницы компании")
		}
		rec.IsPublished = isPublished
		i.getLogger(userID, rec.ID).
			WithField("is_published", isPublished).
			Info("изменена публикация страницы компании")
	}
	return brandingapimodels.BrandingConvert(*rec), nil
}

func (i impl) UploadMedia(ctx context.Context, userID, kind string, file io.Reader, info dbmodels.UploadFileInfo) (brandingapimodels.MediaUploadView, error) {
	fileType, ok := mediaKinds[kind]
	if !ok {
		return brandingapimodels.MediaUploadView{}, apperrors.Validation("invalid media kind", map[string]string{"kind": "must be one of: logo banner"})
	}
	rec, err := i.getOwn(userID)
	if err != nil {
		return brandingapimodels.MediaUploadView{}, err
	}
	info.OwnerID = rec.ID
	info.FileType = fileType
	fileRec, err := i.fileStorage.Upload(ctx, info, file)
	if err != nil {
		return brandingapimodels.MediaUploadView{}, err
	}
	column := "logo_url"
	if fileType == dbmodels.BrandingBanner {
		column = "banner_url"
	}
	err = i.store.Update(rec.ID, map[string]interface{}{column: fileRec.URL})
	if err != nil {
		return brandingapimodels.MediaUploadView{}, errors.Wrap(err, "ошибка сохранения ссылки на медиафайл")
	}
	return brandingapimodels.MediaUploadView{
		Kind: kind,
		URL:  fileRec.URL,
	}, nil
}

func (i impl) CareerPage(slug string, filter jobapimodels.JobFilter) (brandingapimodels.CareerPageView, error) {
	rec, err := i.store.GetBySlug(helpers.Slugify(slug))
	if err != nil {
		return brandingapimodels.CareerPageView{}, errors.Wrap(err, "ошибка получения страницы компании")
	}
	if rec == nil || !rec.IsPublished {
		return brandingapimodels.CareerPageView{}, apperrors.NotFound("career page not found")
	}
	filter.CompanyBrandingID = rec.ID
	filter.ActiveOnly = true
	result := brandingapimodels.CareerPageView{
		BrandingView: brandingapimodels.BrandingConvert(*rec),
		Jobs:         []jobapimodels.JobView{},
	}
	result.JobsTotal, err = i.jobStore.ListCount(filter)
	if err != nil {
		return brandingapimodels.CareerPageView{}, err
	}
	_, limit := filter.GetPage()
	result.TotalPages = apimodels.TotalPages(result.JobsTotal, limit)
	if filter.IsBeyond(result.JobsTotal) {
		return result, nil
	}
	list, err := i.jobStore.List(filter)
	if err != nil {
		return brandingapimodels.CareerPageView{}, errors.Wrap(err, "ошибка получения вакансий страницы компании")
	}
	for _, job := range list {
		result.Jobs = append(result.Jobs, jobapimodels.JobConvert(job))
	}
	return result, nil
}

func (i impl) getOwn(userID string) (*dbmodels.CompanyBranding, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения страницы компании")
	}
	if rec == nil {
		return nil, errBrandingNotFound
	}
	return rec, nil
}

// mapSlugConflict гонка двух сохранений с одинаковым адресом упирается в уникальный индекс
func (i impl) mapSlugConflict(err error, slug, msg string) error {
	if helpers.IsDuplicateKeyError(err) {
		return apperrors.Conflict("company page address is already taken: " + slug)
	}
	return errors.Wrap(err, msg)
}

func (i impl) getLogger(userID, brandingID string) *log.Entry {
	logger := log.WithField("user_id", userID)
	if brandingID != "" {
		logger = logger.WithField("branding_id", brandingID)
	}
	return logger
}
