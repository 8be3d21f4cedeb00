package jobstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
	jobapimodels "jobboard-backend/models/api/job"
	dbmodels "jobboard-backend/models/db"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=5432 user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.Nil(t, err)
	return db
}

func listSQL(db *gorm.DB, filter jobapimodels.JobFilter) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		list := []dbmodels.JobExt{}
		return impl{db: tx}.listQuery(filter).Find(&list)
	})
}

func countSQL(db *gorm.DB, filter jobapimodels.JobFilter) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var count int64
		i := impl{db: tx}
		return i.addFilter(tx.Model(&dbmodels.Job{}), filter).Count(&count)
	})
}

func defaultFilter() jobapimodels.JobFilter {
	return jobapimodels.JobFilter{
		Pagination: apimodels.Pagination{Page: 1, Limit: 20},
		Sort:       models.JobSortDateDesc,
	}
}

func TestJobQueryBuilder(t *testing.T) {
	db := newDryRunDB(t)

	t.Run(`public search restricts to active jobs`, func(t *testing.T) {
		sql := listSQL(db, defaultFilter())
		require.Contains(t, sql, "jobs.is_active = true")
		require.NotContains(t, sql, "company_branding_id")
		require.Contains(t, sql, "ORDER BY COALESCE(jobs.posted_at, jobs.created_at) DESC,jobs.id")
		require.Contains(t, sql, "LIMIT 20")
		require.NotContains(t, sql, "OFFSET")
	})

	t.Run(`company scope replaces active restriction`, func(t *testing.T) {
		filter := defaultFilter()
		filter.CompanyBrandingID = "branding-1"
		sql := listSQL(db, filter)
		require.Contains(t, sql, "jobs.company_branding_id = 'branding-1'")
		require.NotContains(t, sql, "is_active")

		filter.ActiveOnly = true
		sql = listSQL(db, filter)
		require.Contains(t, sql, "jobs.company_branding_id = 'branding-1'")
		require.Contains(t, sql, "jobs.is_active = true")
	})

	t.Run(`search is an OR over title, description and skills`, func(t *testing.T) {
		filter := defaultFilter()
		filter.Search = "GoLang"
		sql := listSQL(db, filter)
		require.Contains(t, sql, "(LOWER(jobs.title) LIKE '%golang%' OR LOWER(jobs.description) LIKE '%golang%' OR 'GoLang' = ANY(jobs.technical_requirements))")
	})

	t.Run(`like wildcards in search are escaped`, func(t *testing.T) {
		filter := defaultFilter()
		filter.Location = "100%_remote"
		sql := listSQL(db, filter)
		require.Contains(t, sql, `LOWER(jobs.location) LIKE '%100\%\_remote%'`)
	})

	t.Run(`enum lists use set membership and predicates are ANDed`, func(t *testing.T) {
		filter := defaultFilter()
		filter.JobTypes = []models.JobType{models.JobTypeRemote, models.JobTypeContract}
		filter.ExperienceLevels = []models.ExperienceLevel{models.ExperienceSenior}
		filter.Location = "dubai"
		sql := listSQL(db, filter)
		require.Contains(t, sql, "jobs.job_type IN ('REMOTE','CONTRACT')")
		require.Contains(t, sql, "jobs.experience_level IN ('SENIOR')")
		require.Contains(t, sql, "jobs.is_active = true AND LOWER(jobs.location) LIKE '%dubai%' AND jobs.job_type IN")
	})

	t.Run(`empty lists impose no constraint`, func(t *testing.T) {
		filter := defaultFilter()
		filter.JobTypes = []models.JobType{}
		sql := listSQL(db, filter)
		require.NotContains(t, sql, "job_type")
		require.NotContains(t, sql, "experience_level")
	})

	t.Run(`pagination offset`, func(t *testing.T) {
		filter := defaultFilter()
		filter.Page = 3
		filter.Limit = 10
		sql := listSQL(db, filter)
		require.Contains(t, sql, "LIMIT 10 OFFSET 20")
	})

	t.Run(`huge page keeps a positive offset`, func(t *testing.T) {
		filter := defaultFilter()
		filter.Page = 100000000000000000
		filter.Limit = 100
		sql := listSQL(db, filter)
		require.Contains(t, sql, "LIMIT 100 OFFSET 214748364600")
	})

	t.Run(`sort keys`, func(t *testing.T) {
		cases := map[models.JobSort]string{
			models.JobSortDateAsc:          "ORDER BY COALESCE(jobs.posted_at, jobs.created_at) ASC",
			models.JobSortTitleAsc:         "ORDER BY LOWER(jobs.title) ASC",
			models.JobSortTitleDesc:        "ORDER BY LOWER(jobs.title) DESC",
			models.JobSortApplicationsAsc:  "ORDER BY application_count ASC",
			models.JobSortApplicationsDesc: "ORDER BY application_count DESC",
		}
		for sort, expected := range cases {
			filter := defaultFilter()
			filter.Sort = sort
			require.Contains(t, listSQL(db, filter), expected, sort)
		}
	})

	t.Run(`count uses the same predicates without paging`, func(t *testing.T) {
		filter := defaultFilter()
		filter.JobTypes = []models.JobType{models.JobTypeRemote}
		sql := countSQL(db, filter)
		require.Contains(t, sql, "SELECT count(*) FROM \"jobs\"")
		require.Contains(t, sql, "jobs.job_type IN ('REMOTE')")
		require.NotContains(t, sql, "LIMIT")
		require.NotContains(t, sql, "ORDER BY")
	})
}
