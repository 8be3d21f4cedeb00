package jobhandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
	jobapimodels "jobboard-backend/models/api/job"
	dbmodels "jobboard-backend/models/db"
)

type fakeJobStore struct {
	jobs      map[string]*dbmodels.JobExt
	order     []string
	listCalls int
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[string]*dbmodels.JobExt{}}
}

func (f *fakeJobStore) ListToExpire(expireTime time.Time, limit int) ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	for _, id := range f.order {
		job := f.jobs[id]
		if job.IsActive && job.ExpiresAt != nil && !job.ExpiresAt.After(expireTime) && len(list) < limit {
			list = append(list, job.Job)
		}
	}
	return list, nil
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) {
	rec.ID = fmt.Sprintf("job-%d", len(f.order)+1)
	rec.CreatedAt = time.Now()
	f.jobs[rec.ID] = &dbmodels.JobExt{Job: rec}
	f.order = append(f.order, rec.ID)
	return rec.ID, nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.JobExt, error) {
	rec, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	result := *rec
	return &result, nil
}

func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.jobs[id]
	if !ok {
		return fmt.Errorf("not found")
	}
	for key, value := range updMap {
		switch key {
		case "title":
			rec.Title = value.(string)
		case "location":
			rec.Location = value.(string)
		case "is_active":
			rec.IsActive = value.(bool)
		case "posted_at":
			postedAt := value.(time.Time)
			rec.PostedAt = &postedAt
		case "salary_min":
			rec.SalaryMin = value.(*int)
		case "salary_max":
			rec.SalaryMax = value.(*int)
		}
	}
	return nil
}

func (f *fakeJobStore) match(filter jobapimodels.JobFilter, rec *dbmodels.JobExt) bool {
	if filter.IsCompanyScope() && rec.CompanyBrandingID != filter.CompanyBrandingID {
		return false
	}
	if filter.IsActiveRequired() && !rec.IsActive {
		return false
	}
	if len(filter.JobTypes) != 0 && !containsJobType(filter.JobTypes, rec.JobType) {
		return false
	}
	return true
}

func (f *fakeJobStore) ListCount(filter jobapimodels.JobFilter) (int64, error) {
	var count int64
	for _, id := range f.order {
		if f.match(filter, f.jobs[id]) {
			count++
		}
	}
	return count, nil
}

func (f *fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.JobExt, error) {
	f.listCalls++
	matched := []dbmodels.JobExt{}
	for _, id := range f.order {
		if f.match(filter, f.jobs[id]) {
			matched = append(matched, *f.jobs[id])
		}
	}
	page, limit := filter.GetPage()
	from := (page - 1) * limit
	if from >= len(matched) {
		return []dbmodels.JobExt{}, nil
	}
	to := from + limit
	if to > len(matched) {
		to = len(matched)
	}
	return matched[from:to], nil
}

func containsJobType(list []models.JobType, value models.JobType) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

type fakeBrandingStore struct {
	byUser map[string]*dbmodels.CompanyBranding
}

func (f *fakeBrandingStore) Create(rec dbmodels.CompanyBranding) (string, error) {
	return "", nil
}

func (f *fakeBrandingStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeBrandingStore) GetByID(id string) (*dbmodels.CompanyBranding, error) {
	for _, rec := range f.byUser {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeBrandingStore) GetByUserID(userID string) (*dbmodels.CompanyBranding, error) {
	return f.byUser[userID], nil
}

func (f *fakeBrandingStore) GetBySlug(slug string) (*dbmodels.CompanyBranding, error) {
	return nil, nil
}

func (f *fakeBrandingStore) IsSlugExist(slug, exceptID string) (bool, error) {
	return false, nil
}

func newTestHandler() (impl, *fakeJobStore) {
	store := newFakeJobStore()
	brandings := &fakeBrandingStore{byUser: map[string]*dbmodels.CompanyBranding{
		"recruiter-1": {BaseModel: dbmodels.BaseModel{ID: "branding-1"}, CompanyName: "Acme", PrimaryColor: "#1E88E5"},
		"recruiter-2": {BaseModel: dbmodels.BaseModel{ID: "branding-2"}, CompanyName: "Globex"},
	}}
	return impl{store: store, brandingStore: brandings}, store
}

func jobData(title string, jobType models.JobType, isActive bool) jobapimodels.JobData {
	return jobapimodels.JobData{
		Title:           title,
		Location:        "Dubai",
		JobType:         jobType,
		ExperienceLevel: models.ExperienceMid,
		Description:     "description",
		IsActive:        isActive,
	}
}

func TestJobList(t *testing.T) {
	handler, store := newTestHandler()
	for n := 0; n < 25; n++ {
		_, err := handler.Upsert("recruiter-1", jobData(fmt.Sprintf("remote %d", n), models.JobTypeRemote, true))
		require.Nil(t, err)
	}
	for n := 0; n < 10; n++ {
		_, err := handler.Upsert("recruiter-2", jobData(fmt.Sprintf("office %d", n), models.JobTypeFullTime, true))
		require.Nil(t, err)
	}
	_, err := handler.Upsert("recruiter-1", jobData("draft", models.JobTypeRemote, false))
	require.Nil(t, err)

	remoteFilter := func(page int) jobapimodels.JobFilter {
		return jobapimodels.JobFilter{
			Pagination: apimodels.Pagination{Page: page, Limit: 20},
			JobTypes:   []models.JobType{models.JobTypeRemote},
		}
	}

	t.Run(`first page of remote jobs`, func(t *testing.T) {
		result, err := handler.List(remoteFilter(1))
		require.Nil(t, err)
		require.Len(t, result.Jobs, 20)
		require.Equal(t, int64(25), result.Total)
		require.Equal(t, 2, result.TotalPages)
		require.Equal(t, 1, result.Page)
		require.Equal(t, 20, result.Limit)
		for _, job := range result.Jobs {
			require.Equal(t, models.JobTypeRemote, job.JobType)
			require.True(t, job.IsActive)
		}
	})

	t.Run(`last page is partial`, func(t *testing.T) {
		result, err := handler.List(remoteFilter(2))
		require.Nil(t, err)
		require.Len(t, result.Jobs, 5)
		require.Equal(t, int64(25), result.Total)
	})

	t.Run(`page beyond total is empty and skips the list query`, func(t *testing.T) {
		calls := store.listCalls
		result, err := handler.List(remoteFilter(3))
		require.Nil(t, err)
		require.Empty(t, result.Jobs)
		require.NotNil(t, result.Jobs)
		require.Equal(t, int64(25), result.Total)
		require.Equal(t, 2, result.TotalPages)
		require.Equal(t, calls, store.listCalls)
	})

	t.Run(`public list ignores company scope from the caller`, func(t *testing.T) {
		filter := remoteFilter(1)
		filter.CompanyBrandingID = "branding-2"
		result, err := handler.List(filter)
		require.Nil(t, err)
		require.Equal(t, int64(25), result.Total)
	})

	t.Run(`recruiter list sees own drafts only`, func(t *testing.T) {
		result, err := handler.ListForRecruiter("recruiter-1", jobapimodels.JobFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(26), result.Total)
		require.Equal(t, 2, result.TotalPages)

		result, err = handler.ListForRecruiter("recruiter-2", jobapimodels.JobFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(10), result.Total)
	})

	t.Run(`empty result has zero pages`, func(t *testing.T) {
		result, err := handler.List(jobapimodels.JobFilter{JobTypes: []models.JobType{models.JobTypeContract}})
		require.Nil(t, err)
		require.Equal(t, int64(0), result.Total)
		require.Equal(t, 0, result.TotalPages)
		require.Empty(t, result.Jobs)
	})
}

func TestJobUpsert(t *testing.T) {
	t.Run(`same id twice keeps one row with latest values`, func(t *testing.T) {
		handler, store := newTestHandler()
		created, err := handler.Upsert("recruiter-1", jobData("Go developer", models.JobTypeRemote, false))
		require.Nil(t, err)
		require.True(t, created.Created)

		data := jobData("Senior Go developer", models.JobTypeRemote, true)
		data.ID = created.ID
		for n := 0; n < 2; n++ {
			result, err := handler.Upsert("recruiter-1", data)
			require.Nil(t, err)
			require.False(t, result.Created)
			require.Equal(t, created.ID, result.ID)
		}
		require.Len(t, store.order, 1)
		rec := store.jobs[created.ID]
		require.Equal(t, "Senior Go developer", rec.Title)
		require.True(t, rec.IsActive)
		require.NotNil(t, rec.PostedAt)
	})

	t.Run(`enum spellings are normalized`, func(t *testing.T) {
		handler, store := newTestHandler()
		data := jobData("Go developer", "full-time", true)
		data.ExperienceLevel = "senior"
		result, err := handler.Upsert("recruiter-1", data)
		require.Nil(t, err)
		require.Equal(t, models.JobTypeFullTime, store.jobs[result.ID].JobType)
		require.Equal(t, models.ExperienceSenior, store.jobs[result.ID].ExperienceLevel)
	})

	t.Run(`salary text is parsed`, func(t *testing.T) {
		handler, store := newTestHandler()
		data := jobData("Go developer", models.JobTypeRemote, true)
		data.SalaryText = "AED 8K–12K / month"
		result, err := handler.Upsert("recruiter-1", data)
		require.Nil(t, err)
		rec := store.jobs[result.ID]
		require.Equal(t, 96000, *rec.SalaryMin)
		require.Equal(t, 144000, *rec.SalaryMax)
		require.Equal(t, "AED", rec.SalaryCurrency)
	})

	t.Run(`bad salary text is a validation error`, func(t *testing.T) {
		handler, store := newTestHandler()
		data := jobData("Go developer", models.JobTypeRemote, true)
		data.SalaryText = "competitive"
		_, err := handler.Upsert("recruiter-1", data)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeValidation, appErr.Code)
		require.Contains(t, appErr.Details, "salary_text")
		require.Empty(t, store.order)
	})

	t.Run(`invalid data never reaches the store`, func(t *testing.T) {
		handler, store := newTestHandler()
		min, max := 100, 50
		data := jobData("", "INTERN", true)
		data.Salary = jobapimodels.Salary{Min: &min, Max: &max}
		_, err := handler.Upsert("recruiter-1", data)
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeValidation, appErr.Code)
		require.Contains(t, appErr.Details, "title")
		require.Contains(t, appErr.Details, "job_type")
		require.Contains(t, appErr.Details, "salary.max")
		require.Empty(t, store.order)
	})

	t.Run(`unknown or foreign id is not found`, func(t *testing.T) {
		handler, _ := newTestHandler()
		created, err := handler.Upsert("recruiter-2", jobData("Globex job", models.JobTypeRemote, true))
		require.Nil(t, err)

		data := jobData("Go developer", models.JobTypeRemote, true)
		data.ID = "missing"
		_, err = handler.Upsert("recruiter-1", data)
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

		data.ID = created.ID
		_, err = handler.Upsert("recruiter-1", data)
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})

	t.Run(`foreign company page is forbidden`, func(t *testing.T) {
		handler, _ := newTestHandler()
		data := jobData("Go developer", models.JobTypeRemote, true)
		data.CompanyBrandingID = "branding-2"
		_, err := handler.Upsert("recruiter-1", data)
		require.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
	})

	t.Run(`recruiter without company page`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Upsert("recruiter-3", jobData("Go developer", models.JobTypeRemote, true))
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})
}

func TestJobVisibility(t *testing.T) {
	handler, store := newTestHandler()
	draft, err := handler.Upsert("recruiter-1", jobData("draft", models.JobTypeRemote, false))
	require.Nil(t, err)

	t.Run(`draft hidden from public`, func(t *testing.T) {
		_, err := handler.GetPublic(draft.ID)
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})

	t.Run(`draft visible in recruiter preview`, func(t *testing.T) {
		view, err := handler.GetForRecruiter("recruiter-1", draft.ID)
		require.Nil(t, err)
		require.Equal(t, "draft", view.Title)
		_, err = handler.GetForRecruiter("recruiter-2", draft.ID)
		require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	})

	t.Run(`publishing sets posted date once`, func(t *testing.T) {
		require.Nil(t, handler.ChangeActive("recruiter-1", draft.ID, true))
		postedAt := store.jobs[draft.ID].PostedAt
		require.NotNil(t, postedAt)

		view, err := handler.GetPublic(draft.ID)
		require.Nil(t, err)
		require.True(t, view.IsActive)

		require.Nil(t, handler.ChangeActive("recruiter-1", draft.ID, false))
		require.False(t, store.jobs[draft.ID].IsActive)
		require.Nil(t, handler.ChangeActive("recruiter-1", draft.ID, true))
		require.Equal(t, postedAt, store.jobs[draft.ID].PostedAt)
	})

	t.Run(`pdf export of own job`, func(t *testing.T) {
		pdfFile, fileName, err := handler.ExportPDF("recruiter-1", draft.ID)
		require.Nil(t, err)
		require.Equal(t, "job-"+draft.ID+".pdf", fileName)
		require.NotEmpty(t, pdfFile)
	})
}
