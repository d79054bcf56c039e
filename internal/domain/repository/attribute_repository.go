package repository

import "github.com/jhoicas/store-admin-api/internal/domain/entity"

// SizeRepository define el puerto de persistencia para Size.
type SizeRepository interface {
	ScopedRepository[entity.Size]
}

// ColorRepository define el puerto de persistencia para Color.
type ColorRepository interface {
	ScopedRepository[entity.Color]
}
