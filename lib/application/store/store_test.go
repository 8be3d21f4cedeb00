package applicationstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
	applicationapimodels "jobboard-backend/models/api/application"
)

// newCaptureDB DryRun соединение, последний построенный SELECT пишется в *sql
func newCaptureDB(t *testing.T, sql *string) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=5432 user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.Nil(t, err)
	err = db.Callback().Query().After("gorm:query").Before("gorm:preload").Register("test:capture", func(tx *gorm.DB) {
		*sql = tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...)
	})
	require.Nil(t, err)
	return db
}

func TestApplicationStoreQueries(t *testing.T) {
	var sql string
	store := NewInstance(newCaptureDB(t, &sql))

	t.Run(`existence check compares normalized email`, func(t *testing.T) {
		_, err := store.IsExist("job-1", "  Jane@Example.COM ")
		require.Nil(t, err)
		require.Contains(t, sql, "job_id = 'job-1' AND candidate_email = 'jane@example.com'")
	})

	t.Run(`list by job filters statuses and pages`, func(t *testing.T) {
		filter := applicationapimodels.ApplicationFilter{
			Pagination: apimodels.Pagination{Page: 2, Limit: 5},
			Statuses:   []models.ApplicationStatus{models.ApplicationStatusApplied, models.ApplicationStatusReviewing},
		}
		_, err := store.ListByJob("job-1", filter)
		require.Nil(t, err)
		require.Contains(t, sql, "job_id = 'job-1' AND status IN ('APPLIED','REVIEWING')")
		require.Contains(t, sql, "ORDER BY applied_at desc,id LIMIT 5 OFFSET 5")
	})

	t.Run(`list by candidate without status filter`, func(t *testing.T) {
		_, err := store.ListByCandidate("user-1", applicationapimodels.ApplicationFilter{})
		require.Nil(t, err)
		require.Contains(t, sql, "candidate_user_id = 'user-1'")
		require.NotContains(t, sql, "status IN")
		require.Contains(t, sql, "LIMIT 20")
	})
}
