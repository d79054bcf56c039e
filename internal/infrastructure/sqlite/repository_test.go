package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlstore"
)

func openRepos(t *testing.T) (*sqlite.DB, *sqlstore.Repositories) {
	t.Helper()
	db, err := sqlite.OpenMigrated(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, sqlstore.NewRepositories(db, sqlite.Dialect)
}

// seedCatalog crea tienda, billboard, categoría, talla y color.
func seedCatalog(t *testing.T, repos *sqlstore.Repositories) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repos.Stores.Create(ctx, &entity.Store{ID: "st1", Name: "Acme", UserID: "u1", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repos.Billboards.Create(ctx, &entity.Billboard{ID: "bb1", StoreID: "st1", Label: "Verano", ImageURL: "https://img/bb.png", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repos.Categories.Create(ctx, &entity.Category{ID: "cat1", StoreID: "st1", BillboardID: "bb1", Name: "Camisetas", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repos.Sizes.Create(ctx, &entity.Size{ID: "sz1", StoreID: "st1", Name: "Mediana", Value: "M", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repos.Colors.Create(ctx, &entity.Color{ID: "co1", StoreID: "st1", Name: "Negro", Value: "#000000", CreatedAt: now, UpdatedAt: now}))
}

func newProduct(id string, featured, archived bool, urls ...string) *entity.Product {
	now := time.Now().UTC()
	p := &entity.Product{
		ID: id, StoreID: "st1", CategoryID: "cat1", SizeID: "sz1", ColorID: "co1",
		Name: "Camiseta " + id, Price: decimal.RequireFromString("19.99"),
		IsFeatured: featured, IsArchived: archived, CreatedAt: now, UpdatedAt: now,
	}
	for i, u := range urls {
		p.Images = append(p.Images, entity.Image{ProductID: id, URL: u, Position: i})
	}
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Migraciones
// ──────────────────────────────────────────────────────────────────────────────

func TestMigrate_Idempotente(t *testing.T) {
	db, _ := openRepos(t)

	applied, err := sqlite.Migrate(context.Background(), db)

	require.NoError(t, err)
	assert.Empty(t, applied, "una segunda pasada no aplica nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tiendas
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_GetByIDAndOwner(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()

	s, err := repos.Stores.GetByIDAndOwner(ctx, "st1", "u1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Acme", s.Name)

	s, err = repos.Stores.GetByIDAndOwner(ctx, "st1", "u2")
	require.NoError(t, err)
	assert.Nil(t, s, "tienda ajena")

	s, err = repos.Stores.GetByIDAndOwner(ctx, "nope", "u1")
	require.NoError(t, err)
	assert.Nil(t, s, "tienda inexistente")
}

func TestStore_DeleteConRegistros_EsReferenciada(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)

	_, err := repos.Stores.Delete(context.Background(), "st1")
	assert.ErrorIs(t, err, domain.ErrReferenced)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entidades de la tienda
// ──────────────────────────────────────────────────────────────────────────────

func TestBillboard_UpdateYDelete(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()

	err := repos.Billboards.Update(ctx, &entity.Billboard{ID: "bb1", StoreID: "st1", Label: "Invierno", ImageURL: "https://img/w.png", UpdatedAt: time.Now().UTC()})
	require.NoError(t, err)
	b, err := repos.Billboards.GetByID(ctx, "st1", "bb1")
	require.NoError(t, err)
	assert.Equal(t, "Invierno", b.Label)

	_, err = repos.Billboards.Delete(ctx, "st1", "bb1")
	assert.ErrorIs(t, err, domain.ErrReferenced, "la categoría lo referencia")

	err = repos.Billboards.Update(ctx, &entity.Billboard{ID: "bb1", StoreID: "otra", Label: "x", ImageURL: "y"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "otro storeId no encuentra el registro")
}

func TestCategory_TraeBillboard(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)

	c, err := repos.Categories.GetByID(context.Background(), "st1", "cat1")

	require.NoError(t, err)
	require.NotNil(t, c.Billboard)
	assert.Equal(t, "Verano", c.Billboard.Label)
}

func TestColor_ListYDelete(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()

	list, err := repos.Colors.ListByStore(ctx, "st1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "#000000", list[0].Value)

	deleted, err := repos.Colors.Delete(ctx, "st1", "co1")
	require.NoError(t, err)
	assert.Equal(t, "Negro", deleted.Name)

	_, err = repos.Colors.Delete(ctx, "st1", "co1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_CreateConImagenesYRelaciones(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()

	require.NoError(t, repos.Products.Create(ctx, newProduct("p1", false, false, "https://img/a.png", "https://img/b.png")))

	p, err := repos.Products.GetByID(ctx, "st1", "p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.99")))
	require.Len(t, p.Images, 2)
	assert.Equal(t, "https://img/a.png", p.Images[0].URL)
	assert.Equal(t, "https://img/b.png", p.Images[1].URL)
	assert.Equal(t, "Camisetas", p.Category.Name)
	assert.Equal(t, "M", p.Size.Value)
	assert.Equal(t, "Negro", p.Color.Name)
}

func TestProduct_ReplaceImagesEnTransaccion(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()
	require.NoError(t, repos.Products.Create(ctx, newProduct("p1", false, false, "https://img/a.png", "https://img/b.png")))

	err := repos.Tx.RunProducts(ctx, func(products repository.ProductRepository) error {
		return products.ReplaceImages(ctx, "p1", []entity.Image{{URL: "https://img/c.png"}})
	})
	require.NoError(t, err)

	p, err := repos.Products.GetByID(ctx, "st1", "p1")
	require.NoError(t, err)
	require.Len(t, p.Images, 1)
	assert.Equal(t, "https://img/c.png", p.Images[0].URL)
}

func TestProduct_RollbackConservaImagenes(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()
	require.NoError(t, repos.Products.Create(ctx, newProduct("p1", false, false, "https://img/a.png")))

	err := repos.Tx.RunProducts(ctx, func(products repository.ProductRepository) error {
		if err := products.ReplaceImages(ctx, "p1", nil); err != nil {
			return err
		}
		return domain.ErrInvalidInput
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := repos.Products.GetByID(ctx, "st1", "p1")
	require.NoError(t, err)
	assert.Len(t, p.Images, 1, "el rollback deja las imágenes originales")
}

func TestProduct_ListFiltros(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()
	require.NoError(t, repos.Products.Create(ctx, newProduct("p1", true, false, "https://img/1.png")))
	require.NoError(t, repos.Products.Create(ctx, newProduct("p2", false, false, "https://img/2.png")))
	require.NoError(t, repos.Products.Create(ctx, newProduct("p3", true, true, "https://img/3.png")))

	visible, err := repos.Products.List(ctx, "st1", repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, visible, 2, "los archivados quedan fuera")

	featured, err := repos.Products.List(ctx, "st1", repository.ProductFilter{OnlyFeatured: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "p1", featured[0].ID)

	all, err := repos.Products.ListByStore(ctx, "st1")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := repos.Products.List(ctx, "st1", repository.ProductFilter{ColorID: "otro"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProduct_DeleteCascadaImagenes(t *testing.T) {
	_, repos := openRepos(t)
	seedCatalog(t, repos)
	ctx := context.Background()
	require.NoError(t, repos.Products.Create(ctx, newProduct("p1", false, false, "https://img/a.png")))

	deleted, err := repos.Products.Delete(ctx, "st1", "p1")
	require.NoError(t, err)
	assert.Len(t, deleted.Images, 1)

	_, err = repos.Sizes.Delete(ctx, "st1", "sz1")
	assert.NoError(t, err, "sin productos la talla ya no está referenciada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_EmailDuplicado(t *testing.T) {
	_, repos := openRepos(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "u1", Email: "Ana@Example.com", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}))
	err := repos.Users.Create(ctx, &entity.User{ID: "u2", Email: "ana@example.com", PasswordHash: "h", CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	u, err := repos.Users.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}
