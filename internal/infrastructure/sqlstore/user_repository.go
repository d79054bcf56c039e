package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

var userColumns = []string{"id", "email", "password_hash", "name", "created_at", "updated_at"}

// UserRepository implementación de repository.UserRepository. El email se guarda en minúsculas.
type UserRepository struct {
	base
}

// NewUserRepository construye el repositorio.
func NewUserRepository(q Querier, d Dialect) *UserRepository {
	return &UserRepository{base{q: q, d: d}}
}

func scanUser(row Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.exec(ctx, r.sql().Insert("users").
		Columns(userColumns...).
		Values(u.ID, strings.ToLower(u.Email), u.PasswordHash, u.Name, u.CreatedAt, u.UpdatedAt))
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmailAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insertar usuario: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, sq.Eq{"email": strings.ToLower(email)})
}

func (r *UserRepository) getOne(ctx context.Context, where sq.Eq) (*entity.User, error) {
	row, err := r.queryRow(ctx, r.sql().Select(userColumns...).From("users").Where(where))
	if err != nil {
		return nil, err
	}
	u, err := scanUser(row)
	if errors.Is(err, ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener usuario: %w", err)
	}
	return u, nil
}
