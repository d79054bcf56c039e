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

var _ repository.StoreRepository = (*StoreRepository)(nil)

var storeColumns = []string{"id", "name", "user_id", "created_at", "updated_at"}

// StoreRepository implementación de repository.StoreRepository.
type StoreRepository struct {
	base
}

// NewStoreRepository construye el repositorio.
func NewStoreRepository(q Querier, d Dialect) *StoreRepository {
	return &StoreRepository{base{q: q, d: d}}
}

func scanStore(row Row) (*entity.Store, error) {
	var s entity.Store
	if err := row.Scan(&s.ID, &s.Name, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta una tienda.
func (r *StoreRepository) Create(ctx context.Context, s *entity.Store) error {
	_, err := r.exec(ctx, r.sql().Insert("stores").
		Columns(storeColumns...).
		Values(s.ID, s.Name, s.UserID, s.CreatedAt, s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insertar tienda: %w", err)
	}
	return nil
}

// GetByID obtiene por ID; nil, nil si no existe.
func (r *StoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

// GetByIDAndOwner obtiene la tienda solo si pertenece a userID.
func (r *StoreRepository) GetByIDAndOwner(ctx context.Context, id, userID string) (*entity.Store, error) {
	if id == "" || userID == "" {
		return nil, nil
	}
	return r.getOne(ctx, sq.Eq{"id": id, "user_id": userID})
}

func (r *StoreRepository) getOne(ctx context.Context, where sq.Eq) (*entity.Store, error) {
	row, err := r.queryRow(ctx, r.sql().Select(storeColumns...).From("stores").Where(where))
	if err != nil {
		return nil, err
	}
	s, err := scanStore(row)
	if errors.Is(err, ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener tienda: %w", err)
	}
	return s, nil
}

// ListByOwner lista las tiendas del usuario, de la más antigua a la más reciente.
func (r *StoreRepository) ListByOwner(ctx context.Context, userID string) ([]*entity.Store, error) {
	rows, err := r.query(ctx, r.sql().Select(storeColumns...).From("stores").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC"))
	if err != nil {
		return nil, fmt.Errorf("listar tiendas: %w", err)
	}
	return scanAll(rows, scanStore)
}

// Update renombra la tienda.
func (r *StoreRepository) Update(ctx context.Context, s *entity.Store) error {
	n, err := r.exec(ctx, r.sql().Update("stores").
		Set("name", s.Name).
		Set("updated_at", s.UpdatedAt).
		Where(sq.Eq{"id": s.ID, "user_id": s.UserID}))
	if err != nil {
		return fmt.Errorf("actualizar tienda: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la tienda. Falla con ErrReferenced mientras tenga registros asociados.
func (r *StoreRepository) Delete(ctx context.Context, id string) (*entity.Store, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := r.exec(ctx, r.sql().Delete("stores").Where(sq.Eq{"id": id})); err != nil {
		return nil, fmt.Errorf("eliminar tienda: %w", err)
	}
	return s, nil
}
