package sqlstore

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

var _ repository.BillboardRepository = (*BillboardRepository)(nil)

var billboardColumns = []string{"id", "store_id", "label", "image_url", "created_at", "updated_at"}

// BillboardRepository implementación de repository.BillboardRepository.
type BillboardRepository struct {
	base
}

// NewBillboardRepository construye el repositorio.
func NewBillboardRepository(q Querier, d Dialect) *BillboardRepository {
	return &BillboardRepository{base{q: q, d: d}}
}

func scanBillboard(row Row) (*entity.Billboard, error) {
	var b entity.Billboard
	if err := row.Scan(&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BillboardRepository) Create(ctx context.Context, b *entity.Billboard) error {
	_, err := r.exec(ctx, r.sql().Insert("billboards").
		Columns(billboardColumns...).
		Values(b.ID, b.StoreID, b.Label, b.ImageURL, b.CreatedAt, b.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insertar billboard: %w", err)
	}
	return nil
}

func (r *BillboardRepository) GetByID(ctx context.Context, storeID, id string) (*entity.Billboard, error) {
	row, err := r.queryRow(ctx, r.sql().Select(billboardColumns...).From("billboards").
		Where(sq.Eq{"id": id, "store_id": storeID}))
	if err != nil {
		return nil, err
	}
	b, err := scanBillboard(row)
	if errors.Is(err, ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener billboard: %w", err)
	}
	return b, nil
}

func (r *BillboardRepository) ListByStore(ctx context.Context, storeID string) ([]*entity.Billboard, error) {
	rows, err := r.query(ctx, r.sql().Select(billboardColumns...).From("billboards").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("created_at DESC"))
	if err != nil {
		return nil, fmt.Errorf("listar billboards: %w", err)
	}
	return scanAll(rows, scanBillboard)
}

func (r *BillboardRepository) Update(ctx context.Context, b *entity.Billboard) error {
	n, err := r.exec(ctx, r.sql().Update("billboards").
		Set("label", b.Label).
		Set("image_url", b.ImageURL).
		Set("updated_at", b.UpdatedAt).
		Where(sq.Eq{"id": b.ID, "store_id": b.StoreID}))
	if err != nil {
		return fmt.Errorf("actualizar billboard: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BillboardRepository) Delete(ctx context.Context, storeID, id string) (*entity.Billboard, error) {
	b, err := r.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := r.exec(ctx, r.sql().Delete("billboards").Where(sq.Eq{"id": id, "store_id": storeID})); err != nil {
		return nil, fmt.Errorf("eliminar billboard: %w", err)
	}
	return b, nil
}
