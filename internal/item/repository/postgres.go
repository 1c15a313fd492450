package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-kit-inventory/internal/item/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, it *model.Item) error {
	query := `
        INSERT INTO items (id, kind, part_number, serial_number, lot_number, tracking_type, description, unit, created_at, updated_at)
        VALUES (:id, :kind, :part_number, :serial_number, :lot_number, :tracking_type, :description, :unit, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, it)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Item, error) {
	return r.getOne(ctx, `SELECT * FROM items WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindBySerial(ctx context.Context, serial string) (*model.Item, error) {
	return r.getOne(ctx, `SELECT * FROM items WHERE serial_number = $1 LIMIT 1`, serial)
}

func (r *PGRepository) FindUntracked(ctx context.Context, kind model.ItemKind, partNumber string) (*model.Item, error) {
	return r.getOne(ctx, `
        SELECT * FROM items
        WHERE kind = $1 AND part_number = $2 AND serial_number IS NULL AND lot_number IS NULL
        LIMIT 1`, kind, partNumber)
}

func (r *PGRepository) FindByLot(ctx context.Context, lot string) ([]model.Item, error) {
	var items []model.Item
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM items WHERE lot_number = $1`, lot)
	return items, err
}

func (r *PGRepository) getOne(ctx context.Context, query string, args ...interface{}) (*model.Item, error) {
	var it model.Item
	if err := r.DB.GetContext(ctx, &it, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ItemFilters) ([]model.Item, int, error) {
	var items []model.Item
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.Kind != "" {
		conditions = append(conditions, "kind = :kind")
		args["kind"] = f.Kind
	}
	if f.PartNumber != "" {
		conditions = append(conditions, "part_number = :part_number")
		args["part_number"] = f.PartNumber
	}
	if f.TrackingType != "" {
		conditions = append(conditions, "tracking_type = :tracking_type")
		args["tracking_type"] = f.TrackingType
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM items"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM items" + whereClause + " ORDER BY created_at DESC"
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
