package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, is *model.Issuance) error {
	query := `
        INSERT INTO issuances (
            id, item_id, location, quantity, recipient, purpose, work_order_id, issued_by, issued_at, source_event_id
        )
        VALUES (
            :id, :item_id, :location, :quantity, :recipient, :purpose, :work_order_id, :issued_by, :issued_at, :source_event_id
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, is)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Issuance, error) {
	var is model.Issuance
	if err := r.DB.GetContext(ctx, &is, `SELECT * FROM issuances WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &is, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.IssuanceFilters) ([]model.Issuance, int, error) {
	var items []model.Issuance
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ItemID != "" {
		conditions = append(conditions, "item_id = :item_id")
		args["item_id"] = f.ItemID
	}
	if f.KitID != "" {
		conditions = append(conditions, `location LIKE :kit_prefix ESCAPE '\'`)
		args["kit_prefix"] = postgres.LikePrefix("kit/" + f.KitID + "/")
	}
	if f.WorkOrderID != "" {
		conditions = append(conditions, "work_order_id = :work_order_id")
		args["work_order_id"] = f.WorkOrderID
	}
	if f.Recipient != "" {
		conditions = append(conditions, "recipient = :recipient")
		args["recipient"] = f.Recipient
	}
	if f.SourceEventID != "" {
		conditions = append(conditions, "source_event_id = :source_event_id")
		args["source_event_id"] = f.SourceEventID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM issuances"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM issuances" + whereClause + " ORDER BY issued_at DESC"
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
