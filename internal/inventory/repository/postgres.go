package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-kit-inventory/internal/inventory/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const upsertRecordQuery = `
        INSERT INTO inventory_records (
            id, item_id, location, quantity, minimum_stock_level, created_at, updated_at
        )
        VALUES (
            :id, :item_id, :location, :quantity, :minimum_stock_level, :created_at, :updated_at
        )
        ON CONFLICT (item_id, location)
        DO UPDATE SET
            quantity = EXCLUDED.quantity,
            minimum_stock_level = EXCLUDED.minimum_stock_level,
            updated_at = EXCLUDED.updated_at
    `

const insertMovementQuery = `
        INSERT INTO inventory_movements (
            id, item_id, location, movement_type, quantity_change, quantity_before, quantity_after,
            reference_type, reference_id, notes, created_by, created_at
        )
        VALUES (
            :id, :item_id, :location, :movement_type, :quantity_change, :quantity_before, :quantity_after,
            :reference_type, :reference_id, :notes, :created_by, :created_at
        )
    `

func (r *PGRepository) GetRecord(ctx context.Context, itemID string, loc model.Location) (*model.InventoryRecord, error) {
	var rec model.InventoryRecord
	query := `SELECT * FROM inventory_records WHERE item_id = $1 AND location = $2`
	err := r.DB.GetContext(ctx, &rec, query, itemID, loc.Key())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.InventoryFilters) ([]model.InventoryRecord, int, error) {
	var items []model.InventoryRecord
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ItemID != "" {
		conditions = append(conditions, "item_id = :item_id")
		args["item_id"] = f.ItemID
	}
	if f.LocationType != "" {
		conditions = append(conditions, `location LIKE :location_type ESCAPE '\'`)
		args["location_type"] = postgres.LikePrefix(string(f.LocationType) + "/")
	}
	if f.KitID != "" {
		conditions = append(conditions, `location LIKE :kit_prefix ESCAPE '\'`)
		args["kit_prefix"] = postgres.LikePrefix("kit/" + f.KitID + "/")
	}
	if f.WarehouseID != "" {
		conditions = append(conditions, "location = :warehouse")
		args["warehouse"] = model.WarehouseLocation(f.WarehouseID).Key()
	}
	if f.LowStock {
		conditions = append(conditions, "minimum_stock_level IS NOT NULL AND quantity <= minimum_stock_level")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM inventory_records"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM inventory_records" + whereClause + " ORDER BY item_id, location"
	query += pageClause(f.Page, f.PageSize)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func (r *PGRepository) SumQuantity(ctx context.Context, itemID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.GetContext(ctx, &total, `SELECT COALESCE(SUM(quantity), 0) FROM inventory_records WHERE item_id = $1`, itemID)
	return total, err
}

func (r *PGRepository) SaveRecordWithMovement(ctx context.Context, rec *model.InventoryRecord, movement *model.InventoryMovement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.NamedExecContext(ctx, upsertRecordQuery, rec); err != nil {
		return fmt.Errorf("failed to update inventory record: %w", err)
	}
	if _, err = tx.NamedExecContext(ctx, insertMovementQuery, movement); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}
	return tx.Commit()
}

func (r *PGRepository) DeleteRecordWithMovement(ctx context.Context, rec *model.InventoryRecord, movement *model.InventoryMovement) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM inventory_records WHERE item_id = $1 AND location = $2`, rec.ItemID, rec.Location.Key()); err != nil {
		return fmt.Errorf("failed to prune inventory record: %w", err)
	}
	if _, err = tx.NamedExecContext(ctx, insertMovementQuery, movement); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}
	return tx.Commit()
}

func (r *PGRepository) UpdateRecord(ctx context.Context, rec *model.InventoryRecord) error {
	_, err := r.DB.NamedExecContext(ctx, upsertRecordQuery, rec)
	return err
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	var items []model.InventoryMovement
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ItemID != "" {
		conditions = append(conditions, "item_id = :item_id")
		args["item_id"] = f.ItemID
	}
	if f.Location != nil {
		conditions = append(conditions, "location = :location")
		args["location"] = f.Location.Key()
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}
	if f.ReferenceID != "" {
		conditions = append(conditions, "reference_id = :reference_id")
		args["reference_id"] = f.ReferenceID
	}
	if f.StartDate != nil {
		conditions = append(conditions, "created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "created_at <= :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM inventory_movements"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM inventory_movements" + whereClause + " ORDER BY created_at DESC"
	query += pageClause(f.Page, f.PageSize)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func pageClause(page, pageSize int) string {
	if pageSize <= 0 {
		return ""
	}
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, (page-1)*pageSize)
}
