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

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implementación de repository.CategoryRepository. Las lecturas traen el billboard.
type CategoryRepository struct {
	base
}

// NewCategoryRepository construye el repositorio.
func NewCategoryRepository(q Querier, d Dialect) *CategoryRepository {
	return &CategoryRepository{base{q: q, d: d}}
}

func (r *CategoryRepository) selectWithBillboard() sq.SelectBuilder {
	return r.sql().Select(
		"c.id", "c.store_id", "c.billboard_id", "c.name", "c.created_at", "c.updated_at",
		"b.id", "b.store_id", "b.label", "b.image_url", "b.created_at", "b.updated_at",
	).From("categories c").Join("billboards b ON b.id = c.billboard_id")
}

func scanCategory(row Row) (*entity.Category, error) {
	var c entity.Category
	var b entity.Billboard
	err := row.Scan(
		&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		&b.ID, &b.StoreID, &b.Label, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Billboard = &b
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	_, err := r.exec(ctx, r.sql().Insert("categories").
		Columns("id", "store_id", "billboard_id", "name", "created_at", "updated_at").
		Values(c.ID, c.StoreID, c.BillboardID, c.Name, c.CreatedAt, c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insertar categoría: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, storeID, id string) (*entity.Category, error) {
	row, err := r.queryRow(ctx, r.selectWithBillboard().Where(sq.Eq{"c.id": id, "c.store_id": storeID}))
	if err != nil {
		return nil, err
	}
	c, err := scanCategory(row)
	if errors.Is(err, ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener categoría: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) ListByStore(ctx context.Context, storeID string) ([]*entity.Category, error) {
	rows, err := r.query(ctx, r.selectWithBillboard().
		Where(sq.Eq{"c.store_id": storeID}).
		OrderBy("c.created_at DESC"))
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	return scanAll(rows, scanCategory)
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	n, err := r.exec(ctx, r.sql().Update("categories").
		Set("name", c.Name).
		Set("billboard_id", c.BillboardID).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID, "store_id": c.StoreID}))
	if err != nil {
		return fmt.Errorf("actualizar categoría: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, storeID, id string) (*entity.Category, error) {
	c, err := r.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := r.exec(ctx, r.sql().Delete("categories").Where(sq.Eq{"id": id, "store_id": storeID})); err != nil {
		return nil, fmt.Errorf("eliminar categoría: %w", err)
	}
	return c, nil
}
