package repository

import "github.com/jhoicas/store-admin-api/internal/domain/entity"

// BillboardRepository define el puerto de persistencia para Billboard.
type BillboardRepository interface {
	ScopedRepository[entity.Billboard]
}
