package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "jobboard-backend/lib/utils/app-errors"
)

func TestPagination(t *testing.T) {
	t.Run(`defaults`, func(t *testing.T) {
		page, limit := Pagination{}.GetPage()
		require.Equal(t, DefaultPage, page)
		require.Equal(t, DefaultLimit, limit)
		require.Equal(t, 0, Pagination{}.Offset())
	})

	t.Run(`offset`, func(t *testing.T) {
		require.Equal(t, 20, Pagination{Page: 3, Limit: 10}.Offset())
		require.Equal(t, 100, Pagination{Page: 2, Limit: 500}.Offset())
	})

	t.Run(`total pages`, func(t *testing.T) {
		require.Equal(t, 0, TotalPages(0, 20))
		require.Equal(t, 1, TotalPages(1, 20))
		require.Equal(t, 1, TotalPages(20, 20))
		require.Equal(t, 2, TotalPages(25, 20))
		require.Equal(t, 0, TotalPages(25, 0))
	})

	t.Run(`page beyond total`, func(t *testing.T) {
		require.False(t, Pagination{Page: 2, Limit: 20}.IsBeyond(25))
		require.True(t, Pagination{Page: 3, Limit: 20}.IsBeyond(25))
		require.True(t, Pagination{Page: 1, Limit: 20}.IsBeyond(0))
		require.False(t, Pagination{Page: 1, Limit: 20}.IsBeyond(1))
	})

	t.Run(`huge page does not wrap around`, func(t *testing.T) {
		huge := Pagination{Page: 100000000000000000, Limit: 100}
		page, limit := huge.GetPage()
		require.Equal(t, MaxPage, page)
		require.Equal(t, 100, limit)
		require.Greater(t, huge.Offset(), 0)
		require.True(t, huge.IsBeyond(25))
		require.True(t, Pagination{Page: MaxPage, Limit: 100}.IsBeyond(25))
	})
}

func TestEnvelope(t *testing.T) {
	resp := NewResponse([]string{"a"})
	require.True(t, resp.Success)
	require.Nil(t, resp.Error)

	appErr, ok := apperrors.As(apperrors.Validation("invalid", map[string]string{"title": "is required"}))
	require.True(t, ok)
	resp = NewAppError(appErr)
	require.False(t, resp.Success)
	require.Nil(t, resp.Data)
	require.Equal(t, apperrors.CodeValidation, resp.Error.Code)
	require.Equal(t, "is required", resp.Error.Details["title"])
}
