package jobapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/models"
)

func TestParseJobFilter(t *testing.T) {
	t.Run(`empty query`, func(t *testing.T) {
		filter, err := ParseJobFilter(map[string]string{})
		require.Nil(t, err)
		require.Equal(t, 1, filter.Page)
		require.Equal(t, 20, filter.Limit)
		require.Equal(t, models.JobSortDateDesc, filter.Sort)
		require.Empty(t, filter.JobTypes)
		require.True(t, filter.IsActiveRequired())
	})

	t.Run(`lists are normalized and deduplicated`, func(t *testing.T) {
		filter, err := ParseJobFilter(map[string]string{
			"search":          "  golang ",
			"jobType":         "remote, REMOTE ,full-time,",
			"experienceLevel": "senior,lead",
		})
		require.Nil(t, err)
		require.Equal(t, "golang", filter.Search)
		require.Equal(t, []models.JobType{models.JobTypeRemote, models.JobTypeFullTime}, filter.JobTypes)
		require.Equal(t, []models.ExperienceLevel{models.ExperienceSenior, models.ExperienceLead}, filter.ExperienceLevels)
	})

	t.Run(`all problems are reported together`, func(t *testing.T) {
		_, err := ParseJobFilter(map[string]string{
			"jobType": "INTERN",
			"page":    "0",
			"limit":   "101",
			"sort":    "salary",
		})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeValidation, appErr.Code)
		require.Len(t, appErr.Details, 4)
		require.Contains(t, appErr.Details, "jobType")
		require.Contains(t, appErr.Details, "page")
		require.Contains(t, appErr.Details, "limit")
		require.Contains(t, appErr.Details, "sort")
	})

	t.Run(`non numeric page`, func(t *testing.T) {
		_, err := ParseJobFilter(map[string]string{"page": "two"})
		require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	})

	t.Run(`page above upper bound`, func(t *testing.T) {
		_, err := ParseJobFilter(map[string]string{"page": "100000000000000000", "limit": "100"})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeValidation, appErr.Code)
		require.Contains(t, appErr.Details, "page")

		filter, err := ParseJobFilter(map[string]string{"page": "2147483647", "limit": "100"})
		require.Nil(t, err)
		require.Equal(t, 2147483647, filter.Page)
		require.True(t, filter.IsBeyond(25))
	})

	t.Run(`sort is case insensitive`, func(t *testing.T) {
		filter, err := ParseJobFilter(map[string]string{"sort": "Applications_Desc"})
		require.Nil(t, err)
		require.Equal(t, models.JobSortApplicationsDesc, filter.Sort)
	})
}

func TestJobDataValidate(t *testing.T) {
	valid := func() JobData {
		return JobData{
			Title:           "Go developer",
			Location:        "Dubai",
			JobType:         "full-time",
			ExperienceLevel: "senior",
			Description:     "Build services",
		}
	}

	t.Run(`normalized payload is valid`, func(t *testing.T) {
		data := valid()
		data.Normalize()
		require.Nil(t, data.Validate())
		require.Equal(t, models.JobTypeFullTime, data.JobType)
	})

	t.Run(`salary max below min`, func(t *testing.T) {
		data := valid()
		data.Normalize()
		minValue, maxValue := 100, 50
		data.Salary = Salary{Min: &minValue, Max: &maxValue}
		appErr, ok := apperrors.As(data.Validate())
		require.True(t, ok)
		require.Contains(t, appErr.Details, "salary.max")
	})

	t.Run(`required fields`, func(t *testing.T) {
		appErr, ok := apperrors.As(JobData{}.Validate())
		require.True(t, ok)
		require.Contains(t, appErr.Details, "title")
		require.Contains(t, appErr.Details, "location")
		require.Contains(t, appErr.Details, "description")
	})
}
