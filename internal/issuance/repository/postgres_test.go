package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestPGRepository_FindAll_BySourceEventInKit(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM issuances WHERE location LIKE \$1 ESCAPE '\\' AND source_event_id = \$2`).
		WithArgs(`kit/K\_7/%`, "evt-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectPrepare(`SELECT \* FROM issuances WHERE location LIKE \$1 ESCAPE '\\' AND source_event_id = \$2 ORDER BY issued_at DESC LIMIT 1 OFFSET 0`).
		ExpectQuery().
		WithArgs(`kit/K\_7/%`, "evt-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "item_id", "location", "quantity", "recipient", "purpose",
			"work_order_id", "issued_by", "issued_at", "source_event_id",
		}).AddRow("is-1", "item-1", "kit/K_7/B1", "2", "tech-4", "work order WO-1", "WO-1", "tech-4", now, "evt-1"))

	list, total, err := repo.FindAll(context.Background(), &dto.IssuanceFilters{KitID: "K_7", SourceEventID: "evt-1", PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].SourceEventID)
	assert.Equal(t, "evt-1", *list[0].SourceEventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
