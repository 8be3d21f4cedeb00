package helpers

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHelpers(t *testing.T) {
	t.Run(`Slugify check`, func(t *testing.T) {
		require.Equal(t, "acme-corp", Slugify("Acme Corp."))
		require.Equal(t, "acme-corp", Slugify("  --Acme   Corp--  "))
		require.Equal(t, "dubai-tech-2024", Slugify("Dubai Tech 2024"))
		require.Equal(t, "", Slugify("!!!"))
	})

	t.Run(`IsDuplicateKeyError check`, func(t *testing.T) {
		require.False(t, IsDuplicateKeyError(nil))
		require.False(t, IsDuplicateKeyError(errors.New("connection refused")))
		require.True(t, IsDuplicateKeyError(gorm.ErrDuplicatedKey))
		require.True(t, IsDuplicateKeyError(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
		require.True(t, IsDuplicateKeyError(errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_application_job_candidate"}, "insert")))
		require.False(t, IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
		require.False(t, IsDuplicateKeyError(errors.New("duplicate key value violates unique constraint (SQLSTATE 23505)")))
	})

	t.Run(`NormalizeEmail check`, func(t *testing.T) {
		require.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	})
}
