package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

var (
	_ repository.SizeRepository  = (*AttributeRepository[entity.Size])(nil)
	_ repository.ColorRepository = (*AttributeRepository[entity.Color])(nil)
)

var attributeColumns = []string{"id", "store_id", "name", "value", "created_at", "updated_at"}

// attribute campos comunes de tallas y colores.
type attribute struct {
	ID, StoreID, Name, Value string
	CreatedAt, UpdatedAt     time.Time
}

// AttributeRepository tablas name/value por tienda (sizes, colors).
type AttributeRepository[T any] struct {
	base
	table string
	label string
	to    func(*T) attribute
	from  func(attribute) *T
}

// NewSizeRepository repositorio de tallas.
func NewSizeRepository(q Querier, d Dialect) *AttributeRepository[entity.Size] {
	return &AttributeRepository[entity.Size]{
		base:  base{q: q, d: d},
		table: "sizes",
		label: "talla",
		to: func(s *entity.Size) attribute {
			return attribute{s.ID, s.StoreID, s.Name, s.Value, s.CreatedAt, s.UpdatedAt}
		},
		from: func(a attribute) *entity.Size {
			return &entity.Size{ID: a.ID, StoreID: a.StoreID, Name: a.Name, Value: a.Value, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
		},
	}
}

// NewColorRepository repositorio de colores.
func NewColorRepository(q Querier, d Dialect) *AttributeRepository[entity.Color] {
	return &AttributeRepository[entity.Color]{
		base:  base{q: q, d: d},
		table: "colors",
		label: "color",
		to: func(c *entity.Color) attribute {
			return attribute{c.ID, c.StoreID, c.Name, c.Value, c.CreatedAt, c.UpdatedAt}
		},
		from: func(a attribute) *entity.Color {
			return &entity.Color{ID: a.ID, StoreID: a.StoreID, Name: a.Name, Value: a.Value, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
		},
	}
}

func (r *AttributeRepository[T]) scan(row Row) (*T, error) {
	var a attribute
	if err := row.Scan(&a.ID, &a.StoreID, &a.Name, &a.Value, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return r.from(a), nil
}

func (r *AttributeRepository[T]) Create(ctx context.Context, item *T) error {
	a := r.to(item)
	_, err := r.exec(ctx, r.sql().Insert(r.table).
		Columns(attributeColumns...).
		Values(a.ID, a.StoreID, a.Name, a.Value, a.CreatedAt, a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insertar %s: %w", r.label, err)
	}
	return nil
}

func (r *AttributeRepository[T]) GetByID(ctx context.Context, storeID, id string) (*T, error) {
	row, err := r.queryRow(ctx, r.sql().Select(attributeColumns...).From(r.table).
		Where(sq.Eq{"id": id, "store_id": storeID}))
	if err != nil {
		return nil, err
	}
	item, err := r.scan(row)
	if errors.Is(err, ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener %s: %w", r.label, err)
	}
	return item, nil
}

func (r *AttributeRepository[T]) ListByStore(ctx context.Context, storeID string) ([]*T, error) {
	rows, err := r.query(ctx, r.sql().Select(attributeColumns...).From(r.table).
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("created_at DESC"))
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", r.table, err)
	}
	return scanAll(rows, r.scan)
}

func (r *AttributeRepository[T]) Update(ctx context.Context, item *T) error {
	a := r.to(item)
	n, err := r.exec(ctx, r.sql().Update(r.table).
		Set("name", a.Name).
		Set("value", a.Value).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID, "store_id": a.StoreID}))
	if err != nil {
		return fmt.Errorf("actualizar %s: %w", r.label, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AttributeRepository[T]) Delete(ctx context.Context, storeID, id string) (*T, error) {
	item, err := r.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := r.exec(ctx, r.sql().Delete(r.table).Where(sq.Eq{"id": id, "store_id": storeID})); err != nil {
		return nil, fmt.Errorf("eliminar %s: %w", r.label, err)
	}
	return item, nil
}
