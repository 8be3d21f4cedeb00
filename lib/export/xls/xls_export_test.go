package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
)

func TestExportApplicationList(t *testing.T) {
	appliedAt := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	list := []dbmodels.JobApplication{
		{
			CandidateName:  "Jane Doe",
			CandidateEmail: "jane@example.com",
			Phone:          "+971500000000",
			Status:         models.ApplicationStatusReviewing,
			AppliedAt:      appliedAt,
			ProfileURL:     "https://jobs.example.com/candidates/u1",
		},
		{
			CandidateName:  "John Roe",
			CandidateEmail: "john@example.com",
			Status:         models.ApplicationStatusApplied,
			AppliedAt:      appliedAt,
		},
	}
	buf, err := impl{}.ExportApplicationList("Senior Go Engineer", list)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	t.Run(`sheet renamed`, func(t *testing.T) {
		require.Equal(t, []string{sheetName}, f.GetSheetList())
	})
	t.Run(`title, header and rows`, func(t *testing.T) {
		rows, err := f.GetRows(sheetName)
		require.Nil(t, err)
		require.Len(t, rows, 4)
		require.Equal(t, "Senior Go Engineer", rows[0][0])
		require.Equal(t, applicationHeaders, rows[1])
		require.Equal(t, "Jane Doe", rows[2][0])
		require.Equal(t, "jane@example.com", rows[2][1])
		require.Equal(t, models.ApplicationStatusReviewing.ToHuman(), rows[2][3])
		require.Equal(t, "2024-03-05 10:30", rows[2][4])
		require.Equal(t, "https://jobs.example.com/candidates/u1", rows[2][6])
		require.Equal(t, "John Roe", rows[3][0])
	})
}
