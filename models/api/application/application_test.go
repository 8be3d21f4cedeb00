package applicationapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "jobboard-backend/lib/utils/app-errors"
	"jobboard-backend/models"
)

func TestParseApplicationFilter(t *testing.T) {
	t.Run(`defaults`, func(t *testing.T) {
		filter, err := ParseApplicationFilter(map[string]string{})
		require.Nil(t, err)
		require.Equal(t, 1, filter.Page)
		require.Equal(t, 20, filter.Limit)
		require.Empty(t, filter.Statuses)
	})

	t.Run(`status list`, func(t *testing.T) {
		filter, err := ParseApplicationFilter(map[string]string{"status": "applied, reviewing"})
		require.Nil(t, err)
		require.Equal(t, []models.ApplicationStatus{models.ApplicationStatusApplied, models.ApplicationStatusReviewing}, filter.Statuses)
	})

	t.Run(`page above upper bound`, func(t *testing.T) {
		_, err := ParseApplicationFilter(map[string]string{"page": "100000000000000000"})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeValidation, appErr.Code)
		require.Contains(t, appErr.Details, "page")
	})

	t.Run(`non positive page`, func(t *testing.T) {
		_, err := ParseApplicationFilter(map[string]string{"page": "0"})
		require.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
	})
}
