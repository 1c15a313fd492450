package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-kit-inventory/internal/location/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateKit(ctx context.Context, k *model.Kit) error {
	query := `
        INSERT INTO kits (id, name, aircraft_type, is_active, created_at, updated_at)
        VALUES (:id, :name, :aircraft_type, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, k)
	return err
}

func (r *PGRepository) UpdateKit(ctx context.Context, k *model.Kit) error {
	query := `
        UPDATE kits SET name = :name, aircraft_type = :aircraft_type, is_active = :is_active, updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, k)
	return err
}

func (r *PGRepository) FindKitByID(ctx context.Context, id string) (*model.Kit, error) {
	var k model.Kit
	if err := r.DB.GetContext(ctx, &k, `SELECT * FROM kits WHERE id = $1 LIMIT 1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &k, nil
}

func (r *PGRepository) FindAllKits(ctx context.Context, f *dto.KitFilters) ([]model.Kit, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}
	if f.AircraftType != "" {
		conditions = append(conditions, "aircraft_type = :aircraft_type")
		args["aircraft_type"] = f.AircraftType
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	var kits []model.Kit
	count, err := r.selectPage(ctx, &kits, "kits", conditions, args, "id ASC", f.Page, f.PageSize)
	return kits, count, err
}

func (r *PGRepository) CreateBox(ctx context.Context, b *model.Box) error {
	query := `
        INSERT INTO kit_boxes (id, kit_id, box_number, description, created_at, updated_at)
        VALUES (:id, :kit_id, :box_number, :description, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) FindBoxByID(ctx context.Context, id string) (*model.Box, error) {
	return r.getBox(ctx, `SELECT * FROM kit_boxes WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindBoxByNumber(ctx context.Context, kitID, boxNumber string) (*model.Box, error) {
	return r.getBox(ctx, `SELECT * FROM kit_boxes WHERE kit_id = $1 AND box_number = $2 LIMIT 1`, kitID, boxNumber)
}

func (r *PGRepository) getBox(ctx context.Context, query string, args ...interface{}) (*model.Box, error) {
	var b model.Box
	if err := r.DB.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGRepository) ListBoxes(ctx context.Context, kitID string) ([]model.Box, error) {
	var boxes []model.Box
	err := r.DB.SelectContext(ctx, &boxes, `SELECT * FROM kit_boxes WHERE kit_id = $1 ORDER BY box_number`, kitID)
	return boxes, err
}

func (r *PGRepository) CreateWarehouse(ctx context.Context, w *model.Warehouse) error {
	query := `
        INSERT INTO warehouses (id, name, address, is_active, created_at, updated_at)
        VALUES (:id, :name, :address, :is_active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, w)
	return err
}

func (r *PGRepository) UpdateWarehouse(ctx context.Context, w *model.Warehouse) error {
	query := `
        UPDATE warehouses SET name = :name, address = :address, is_active = :is_active, updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, w)
	return err
}

func (r *PGRepository) FindWarehouseByID(ctx context.Context, id string) (*model.Warehouse, error) {
	var w model.Warehouse
	if err := r.DB.GetContext(ctx, &w, `SELECT * FROM warehouses WHERE id = $1 LIMIT 1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *PGRepository) FindAllWarehouses(ctx context.Context, f *dto.WarehouseFilters) ([]model.Warehouse, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	var warehouses []model.Warehouse
	count, err := r.selectPage(ctx, &warehouses, "warehouses", conditions, args, "id ASC", f.Page, f.PageSize)
	return warehouses, count, err
}

func (r *PGRepository) selectPage(ctx context.Context, dest interface{}, table string, conditions []string, args map[string]interface{}, orderBy string, page, pageSize int) (int, error) {
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM "+table+whereClause, args)
	if err != nil {
		return 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return 0, err
	}

	query := "SELECT * FROM " + table + whereClause + " ORDER BY " + orderBy
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, (page-1)*pageSize)
	}
	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer nstmt.Close()
	return count, nstmt.SelectContext(ctx, dest, args)
}
