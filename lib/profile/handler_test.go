package profilehandler

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "jobboard-backend/lib/utils/app-errors"
	profileapimodels "jobboard-backend/models/api/profile"
	dbmodels "jobboard-backend/models/db"
)

type fakeProfileStore struct {
	profiles map[string]*dbmodels.CandidateProfile
	users    *fakeUserStore
}

func (f *fakeProfileStore) Save(rec dbmodels.CandidateProfile) (string, error) {
	existing, ok := f.profiles[rec.UserID]
	if ok {
		rec.ID = existing.ID
		rec.ResumeURL = existing.ResumeURL
	} else {
		rec.ID = "profile-" + rec.UserID
	}
	rec.User = f.users.users[rec.UserID]
	f.profiles[rec.UserID] = &rec
	return rec.ID, nil
}

func (f *fakeProfileStore) SetResume(userID, resumeURL string) error {
	rec, ok := f.profiles[userID]
	if !ok {
		rec = &dbmodels.CandidateProfile{UserID: userID, IsPublic: true, User: f.users.users[userID]}
		f.profiles[userID] = rec
	}
	rec.ResumeURL = resumeURL
	return nil
}

func (f *fakeProfileStore) GetByUserID(userID string) (*dbmodels.CandidateProfile, error) {
	rec, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

type fakeUserStore struct {
	users map[string]*dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	return "", nil
}

func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetByEmail(email string) (*dbmodels.User, error) {
	return nil, nil
}

type fakeFileStorage struct{}

func (f fakeFileStorage) Upload(ctx context.Context, info dbmodels.UploadFileInfo, file io.Reader) (dbmodels.MediaFile, error) {
	if !info.FileType.IsAllowedContent(info.ContentType) {
		return dbmodels.MediaFile{}, apperrors.Validation("invalid file", map[string]string{"file": "content type is not allowed"})
	}
	return dbmodels.MediaFile{URL: "https://cdn.example.com/media/" + info.OwnerID + "/" + info.FileName}, nil
}

func newTestHandler() impl {
	users := &fakeUserStore{users: map[string]*dbmodels.User{
		"candidate-1": {BaseModel: dbmodels.BaseModel{ID: "candidate-1"}, Email: "jane@example.com", Name: "Jane"},
	}}
	return impl{
		store:       &fakeProfileStore{profiles: map[string]*dbmodels.CandidateProfile{}, users: users},
		userStore:   users,
		fileStorage: fakeFileStorage{},
	}
}

func TestProfile(t *testing.T) {
	handler := newTestHandler()

	t.Run(`empty profile before first save`, func(t *testing.T) {
		view, err := handler.Get("candidate-1")
		require.Nil(t, err)
		require.Equal(t, "Jane", view.Name)
		require.Empty(t, view.Skills)
		require.NotNil(t, view.Skills)
	})

	t.Run(`save trims lists`, func(t *testing.T) {
		view, err := handler.Save("candidate-1", profileapimodels.ProfileData{
			Headline:          " Backend engineer ",
			YearsOfExperience: 5,
			Skills:            []string{" Go ", "", "PostgreSQL"},
			IsPublic:          true,
		})
		require.Nil(t, err)
		require.Equal(t, "Backend engineer", view.Headline)
		require.Equal(t, []string{"Go", "PostgreSQL"}, view.Skills)
	})

	t.Run(`invalid experience`, func(t *testing.T) {
		_, err := handler.Save("candidate-1", profileapimodels.ProfileData{YearsOfExperience: -1})
		require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	})

	t.Run(`resume upload keeps profile fields`, func(t *testing.T) {
		view, err := handler.UploadResume(context.Background(), "candidate-1", bytes.NewReader([]byte("%PDF")), dbmodels.UploadFileInfo{
			FileName:    "cv.pdf",
			ContentType: "application/pdf",
			Size:        4,
		})
		require.Nil(t, err)
		require.Equal(t, "https://cdn.example.com/media/candidate-1/cv.pdf", view.ResumeURL)
		require.Equal(t, "Backend engineer", view.Headline)
	})

	t.Run(`resume must be a document`, func(t *testing.T) {
		_, err := handler.UploadResume(context.Background(), "candidate-1", bytes.NewReader([]byte("png")), dbmodels.UploadFileInfo{
			FileName:    "cv.png",
			ContentType: "image/png",
			Size:        3,
		})
		require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	})

	t.Run(`public view hides email`, func(t *testing.T) {
		view, err := handler.GetPublic("candidate-1")
		require.Nil(t, err)
		require.Empty(t, view.Email)
		require.Equal(t, "Jane", view.Name)
	})

	t.Run(`private profile is not found`, func(t *testing.T) {
		_, err := handler.Save("candidate-1", profileapimodels.ProfileData{IsPublic: false})
		require.Nil(t, err)
		_, err = handler.GetPublic("candidate-1")
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
		_, err = handler.GetPublic("ghost")
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})
}
