package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
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

func sampleRecord() (*model.InventoryRecord, *model.InventoryMovement) {
	now := time.Now()
	loc := model.KitLocation("K1", "B1")
	rec := &model.InventoryRecord{
		ID:        "rec-1",
		ItemID:    "item-1",
		Location:  loc,
		Quantity:  decimal.NewFromInt(7),
		CreatedAt: now,
		UpdatedAt: now,
	}
	mv := &model.InventoryMovement{
		ID:             "mv-1",
		ItemID:         "item-1",
		Location:       loc,
		MovementType:   model.MovementAdjustment,
		QuantityChange: decimal.NewFromInt(7),
		QuantityBefore: decimal.Zero,
		QuantityAfter:  decimal.NewFromInt(7),
		CreatedAt:      now,
	}
	return rec, mv
}

func TestPGRepository_GetRecord(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "item_id", "location", "quantity", "minimum_stock_level", "created_at", "updated_at"}).
		AddRow("rec-1", "item-1", "kit/K1/B1", "5", nil, now, now)
	mock.ExpectQuery(`SELECT \* FROM inventory_records WHERE item_id = \$1 AND location = \$2`).
		WithArgs("item-1", "kit/K1/B1").
		WillReturnRows(rows)

	rec, err := repo.GetRecord(context.Background(), "item-1", model.KitLocation("K1", "B1"))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, model.KitLocation("K1", "B1"), rec.Location)
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(5)))
	assert.False(t, rec.MinimumStockLevel.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_GetRecord_Missing(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`SELECT \* FROM inventory_records`).WillReturnError(sql.ErrNoRows)

	rec, err := repo.GetRecord(context.Background(), "item-1", model.WarehouseLocation("W1"))
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestPGRepository_SaveRecordWithMovement(t *testing.T) {
	repo, mock := newMock(t)
	rec, mv := sampleRecord()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO inventory_records`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO inventory_movements`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveRecordWithMovement(context.Background(), rec, mv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_SaveRecordWithMovement_RollsBack(t *testing.T) {
	repo, mock := newMock(t)
	rec, mv := sampleRecord()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO inventory_records`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO inventory_movements`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.SaveRecordWithMovement(context.Background(), rec, mv)
	assert.ErrorContains(t, err, "failed to log movement")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_DeleteRecordWithMovement(t *testing.T) {
	repo, mock := newMock(t)
	rec, mv := sampleRecord()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM inventory_records WHERE item_id = \$1 AND location = \$2`).
		WithArgs("item-1", "kit/K1/B1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO inventory_movements`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteRecordWithMovement(context.Background(), rec, mv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_FindAll_KitIDWildcardsAreLiteral(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM inventory_records WHERE location LIKE \$1 ESCAPE '\\'`).
		WithArgs(`kit/K\_1\%/%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectPrepare(`SELECT \* FROM inventory_records WHERE location LIKE \$1 ESCAPE '\\'`).
		ExpectQuery().
		WithArgs(`kit/K\_1\%/%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "location", "quantity", "minimum_stock_level", "created_at", "updated_at"}))

	recs, total, err := repo.FindAll(context.Background(), &dto.InventoryFilters{KitID: "K_1%"})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, recs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_FindAll_LowStockForKit(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM inventory_records WHERE location LIKE \$1 ESCAPE '\\' AND minimum_stock_level IS NOT NULL`).
		WithArgs("kit/K1/%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectPrepare(`SELECT \* FROM inventory_records WHERE location LIKE \$1`).
		ExpectQuery().
		WithArgs("kit/K1/%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_id", "location", "quantity", "minimum_stock_level", "created_at", "updated_at"}).
			AddRow("rec-1", "item-1", "kit/K1/B1", "1", "3", now, now))

	recs, total, err := repo.FindAll(context.Background(), &dto.InventoryFilters{KitID: "K1", LowStock: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].BelowMinimum())
	assert.NoError(t, mock.ExpectationsWereMet())
}
