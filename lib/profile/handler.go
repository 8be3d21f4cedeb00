package profilehandler

import (
	"context"
	"io"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jobboard-backend/db"
	filestorage "jobboard-backend/lib/file-storage"
	profilestore "jobboard-backend/lib/profile/store"
	userstore "jobboard-backend/lib/user/store"
	apperrors "jobboard-backend/lib/utils/app-errors"
	profileapimodels "jobboard-backend/models/api/profile"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Get(userID string) (item profileapimodels.ProfileView, err error)
	Save(userID string, data profileapimodels.ProfileData) (item profileapimodels.ProfileView, err error)
	UploadResume(ctx context.Context, userID string, file io.Reader, info dbmodels.UploadFileInfo) (item profileapimodels.ProfileView, err error)
	GetPublic(userID string) (item profileapimodels.ProfileView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       profilestore.NewInstance(db.DB),
		userStore:   userstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
	}
}

type impl struct {
	store       profilestore.Provider
	userStore   userstore.Provider
	fileStorage filestorage.Provider
}

var errProfileNotFound = apperrors.NotFound("candidate profile not found")

// Get анкета еще не заполнена - пустая анкета с данными пользователя
func (i impl) Get(userID string) (profileapimodels.ProfileView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return profileapimodels.ProfileView{}, errors.Wrap(err, "ошибка получения анкеты кандидата")
	}
	if rec != nil {
		return profileapimodels.ProfileConvert(*rec), nil
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return profileapimodels.ProfileView{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil {
		return profileapimodels.ProfileView{}, errProfileNotFound
	}
	return profileapimodels.ProfileConvert(dbmodels.CandidateProfile{
		UserID:   userID,
		User:     user,
		IsPublic: true,
	}), nil
}

func (i impl) Save(userID string, data profileapimodels.ProfileData) (profileapimodels.ProfileView, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return profileapimodels.ProfileView{}, err
	}
	rec := dbmodels.CandidateProfile{
		UserID:            userID,
		Headline:          data.Headline,
		Location:          data.Location,
		YearsOfExperience: data.YearsOfExperience,
		Skills:            pq.StringArray(data.Skills),
		DesiredRoles:      pq.StringArray(data.DesiredRoles),
		Summary:           data.Summary,
		IsPublic:          data.IsPublic,
	}
	_, err := i.store.Save(rec)
	if err != nil {
		return profileapimodels.ProfileView{}, errors.Wrap(err, "ошибка сохранения анкеты кандидата")
	}
	log.WithField("user_id", userID).Info("сохранена анкета кандидата")
	return i.Get(userID)
}

func (i impl) UploadResume(ctx context.Context, userID string, file io.Reader, info dbmodels.UploadFileInfo) (profileapimodels.ProfileView, error) {
	info.OwnerID = userID
	info.FileType = dbmodels.CandidateResume
	fileRec, err := i.fileStorage.Upload(ctx, info, file)
	if err != nil {
		return profileapimodels.ProfileView{}, err
	}
	err = i.store.SetResume(userID, fileRec.URL)
	if err != nil {
		return profileapimodels.ProfileView{}, errors.Wrap(err, "ошибка сохранения ссылки на резюме")
	}
	log.WithField("user_id", userID).Info("загружено резюме кандидата")
	return i.Get(userID)
}

// GetPublic анкета по ссылке из отклика, email не отдаем
func (i impl) GetPublic(userID string) (profileapimodels.ProfileView, error) {
	rec, err := i.store.GetByUserID(userID)
	if err != nil {
		return profileapimodels.ProfileView{}, errors.Wrap(err, "ошибка получения анкеты кандидата")
	}
	if rec == nil || !rec.IsPublic {
		return profileapimodels.ProfileView{}, errProfileNotFound
	}
	result := profileapimodels.ProfileConvert(*rec)
	result.Email = ""
	return result, nil
}
