package repository

import "github.com/jhoicas/store-admin-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
// GetByID carga además el billboard asociado.
type CategoryRepository interface {
	ScopedRepository[entity.Category]
}
