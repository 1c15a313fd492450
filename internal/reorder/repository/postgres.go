package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/reorder/dto"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

var openStatuses = []model.ReorderStatus{model.ReorderPending, model.ReorderApproved, model.ReorderOrdered}

func (r *PGRepository) Create(ctx context.Context, req *model.ReorderRequest) error {
	query := `
        INSERT INTO reorder_requests (
            id, item_id, owning_kit_id, quantity_requested, priority, is_automatic, status,
            fulfillment_box, notes, vendor_reference, cancel_reason, requested_by,
            approved_by, approved_at, ordered_by, ordered_at, fulfilled_by, fulfilled_at,
            cancelled_by, cancelled_at, created_at, updated_at
        )
        VALUES (
            :id, :item_id, :owning_kit_id, :quantity_requested, :priority, :is_automatic, :status,
            :fulfillment_box, :notes, :vendor_reference, :cancel_reason, :requested_by,
            :approved_by, :approved_at, :ordered_by, :ordered_at, :fulfilled_by, :fulfilled_at,
            :cancelled_by, :cancelled_at, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, req)
	return err
}

func (r *PGRepository) Update(ctx context.Context, req *model.ReorderRequest) error {
	query := `
        UPDATE reorder_requests SET
            status = :status,
            fulfillment_box = :fulfillment_box,
            notes = :notes,
            vendor_reference = :vendor_reference,
            cancel_reason = :cancel_reason,
            approved_by = :approved_by,
            approved_at = :approved_at,
            ordered_by = :ordered_by,
            ordered_at = :ordered_at,
            fulfilled_by = :fulfilled_by,
            fulfilled_at = :fulfilled_at,
            cancelled_by = :cancelled_by,
            cancelled_at = :cancelled_at,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, req)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &model.NotFoundError{Entity: "reorder request", ID: req.ID}
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.ReorderRequest, error) {
	var req model.ReorderRequest
	if err := r.DB.GetContext(ctx, &req, `SELECT * FROM reorder_requests WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *PGRepository) FindOpenByOwner(ctx context.Context, itemID, kitID string) ([]model.ReorderRequest, error) {
	owner := "owning_kit_id = ?"
	args := []interface{}{itemID}
	if kitID == "" {
		owner = "owning_kit_id IS NULL"
	} else {
		args = append(args, kitID)
	}

	query, inArgs, err := sqlx.In(`
        SELECT * FROM reorder_requests
        WHERE item_id = ? AND `+owner+` AND status IN (?)
        ORDER BY created_at`, append(args, openStatuses)...)
	if err != nil {
		return nil, err
	}

	var out []model.ReorderRequest
	err = r.DB.SelectContext(ctx, &out, r.DB.Rebind(query), inArgs...)
	return out, err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ReorderFilters) ([]model.ReorderRequest, int, error) {
	var items []model.ReorderRequest
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ItemID != "" {
		conditions = append(conditions, "item_id = :item_id")
		args["item_id"] = f.ItemID
	}
	if f.KitID != "" {
		conditions = append(conditions, "owning_kit_id = :kit_id")
		args["kit_id"] = f.KitID
	}
	if f.WarehouseLevel {
		conditions = append(conditions, "owning_kit_id IS NULL")
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}
	if f.OpenOnly {
		conditions = append(conditions, "status IN ('pending', 'approved', 'ordered')")
	}
	if f.IsAutomatic != nil {
		conditions = append(conditions, "is_automatic = :is_automatic")
		args["is_automatic"] = *f.IsAutomatic
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM reorder_requests"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM reorder_requests" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}
