package sqlstore

import (
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
)

// Repositories agrupa los repositorios sobre una misma conexión.
type Repositories struct {
	Stores     *StoreRepository
	Billboards *BillboardRepository
	Categories *CategoryRepository
	Sizes      *AttributeRepository[entity.Size]
	Colors     *AttributeRepository[entity.Color]
	Products   *ProductRepository
	Users      *UserRepository
	Tx         *TxRunner
}

// NewRepositories construye todos los repositorios sobre db.
func NewRepositories(db DB, d Dialect) *Repositories {
	return &Repositories{
		Stores:     NewStoreRepository(db, d),
		Billboards: NewBillboardRepository(db, d),
		Categories: NewCategoryRepository(db, d),
		Sizes:      NewSizeRepository(db, d),
		Colors:     NewColorRepository(db, d),
		Products:   NewProductRepository(db, d),
		Users:      NewUserRepository(db, d),
		Tx:         NewTxRunner(db, d),
	}
}
