package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
// Las lecturas cargan supermercado, provincia y región en una sola consulta.
type LocationRepo struct {
	q Querier
}

func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationSelect = `
	SELECT l.id, l.address, l.city, l.supermarket_id, l.province_id, l.created_at, l.updated_at,
	       s.id, s.name, s.created_at, s.updated_at,
	       p.id, p.code, p.name, p.region_id, p.created_at, p.updated_at,
	       r.id, r.code, r.name, r.created_at, r.updated_at
	FROM locations l
	JOIN supermarkets s ON s.id = l.supermarket_id
	JOIN provinces p ON p.id = l.province_id
	JOIN regions r ON r.id = p.region_id`

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	var sm entity.Supermarket
	var p entity.Province
	var reg entity.Region
	if err := row.Scan(
		&l.ID, &l.Address, &l.City, &l.SupermarketID, &l.ProvinceID, &l.CreatedAt, &l.UpdatedAt,
		&sm.ID, &sm.Name, &sm.CreatedAt, &sm.UpdatedAt,
		&p.ID, &p.Code, &p.Name, &p.RegionID, &p.CreatedAt, &p.UpdatedAt,
		&reg.ID, &reg.Code, &reg.Name, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Region = &reg
	l.Supermarket = &sm
	l.Province = &p
	return &l, nil
}

func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	query := `
		INSERT INTO locations (address, city, supermarket_id, province_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, l.Address, l.City, l.SupermarketID, l.ProvinceID, l.CreatedAt, l.UpdatedAt).
		Scan(&l.ID); err != nil {
		return writeErr("insert location", err)
	}
	return nil
}

func (r *LocationRepo) GetByID(ctx context.Context, id int64) (*entity.Location, error) {
	l, err := scanLocation(r.q.QueryRow(ctx, locationSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

func (r *LocationRepo) Update(ctx context.Context, l *entity.Location) error {
	query := `
		UPDATE locations SET address = $2, city = $3, supermarket_id = $4, province_id = $5, updated_at = $6
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, l.ID, l.Address, l.City, l.SupermarketID, l.ProvinceID, l.UpdatedAt); err != nil {
		return writeErr("update location", err)
	}
	return nil
}

func (r *LocationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Location, error) {
	rows, err := r.q.Query(ctx, locationSelect+` ORDER BY l.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *LocationRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id); err != nil {
		return deleteErr("delete location", err)
	}
	return nil
}

func (r *LocationRepo) ExistsByAddress(ctx context.Context, address string) (bool, error) {
	return exists(ctx, r.q, "exists location address",
		`SELECT EXISTS (SELECT 1 FROM locations WHERE address = $1)`, address)
}

func (r *LocationRepo) ExistsByAddressAndNotID(ctx context.Context, address string, id int64) (bool, error) {
	return exists(ctx, r.q, "exists location address",
		`SELECT EXISTS (SELECT 1 FROM locations WHERE address = $1 AND id <> $2)`, address, id)
}
