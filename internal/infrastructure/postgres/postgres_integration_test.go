package postgres_test

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlstore"
	"github.com/jhoicas/store-admin-api/pkg/config"
)

const pgTestPort = 54329

// startPostgres levanta un PostgreSQL embebido. Descarga binarios, por eso solo corre con
// STOREADMIN_PG_TESTS=1.
func startPostgres(t *testing.T) *postgres.DB {
	t.Helper()
	if os.Getenv("STOREADMIN_PG_TESTS") != "1" {
		t.Skip("STOREADMIN_PG_TESTS=1 para correr contra PostgreSQL embebido")
	}

	pg := embeddedpostgres.NewDatabase(embeddedpostgres.DefaultConfig().
		Port(pgTestPort).
		Database("storeadmin").
		Username("postgres").
		Password("postgres").
		RuntimePath(t.TempDir()).
		StartTimeout(time.Minute).
		Logger(io.Discard))
	require.NoError(t, pg.Start())
	t.Cleanup(func() { _ = pg.Stop() })

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{
		Driver:   config.DriverPostgres,
		Host:     "localhost",
		Port:     pgTestPort,
		User:     "postgres",
		Password: "postgres",
		DBName:   "storeadmin",
		SSLMode:  "disable",
		MaxConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	db := postgres.NewDB(pool)
	applied, err := postgres.Migrate(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, applied)
	return db
}

func TestPostgres_Repositories(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	repos := sqlstore.NewRepositories(db, postgres.Dialect)
	now := time.Now().UTC().Truncate(time.Microsecond)

	store := &entity.Store{ID: "s1", Name: "Centro", UserID: "u1", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Stores.Create(ctx, store))
	bb := &entity.Billboard{ID: "b1", StoreID: "s1", Label: "Verano", ImageURL: "https://img/v.png", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Billboards.Create(ctx, bb))
	require.NoError(t, repos.Categories.Create(ctx, &entity.Category{ID: "c1", StoreID: "s1", BillboardID: "b1", Name: "Camisas", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repos.Sizes.Create(ctx, &entity.Size{ID: "z1", StoreID: "s1", Name: "Mediana", Value: "M", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repos.Colors.Create(ctx, &entity.Color{ID: "k1", StoreID: "s1", Name: "Negro", Value: "#000", CreatedAt: now, UpdatedAt: now}))

	t.Run("migraciones idempotentes", func(t *testing.T) {
		applied, err := postgres.Migrate(ctx, db)
		require.NoError(t, err)
		assert.Empty(t, applied)
	})

	t.Run("FK restringe el borrado", func(t *testing.T) {
		_, err := repos.Billboards.Delete(ctx, "s1", "b1")
		assert.ErrorIs(t, err, domain.ErrReferenced)
		got, err := repos.Billboards.GetByID(ctx, "s1", "b1")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("producto con precio NUMERIC e imágenes", func(t *testing.T) {
		price := decimal.RequireFromString("1234.50")
		p := &entity.Product{
			ID: "p1", StoreID: "s1", CategoryID: "c1", SizeID: "z1", ColorID: "k1",
			Name: "Camisa", Price: price, CreatedAt: now, UpdatedAt: now,
			Images: []entity.Image{{URL: "https://img/1.png"}, {URL: "https://img/2.png"}},
		}
		require.NoError(t, repos.Products.Create(ctx, p))

		got, err := repos.Products.GetByID(ctx, "s1", "p1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Price.Equal(price), got.Price.String())
		assert.Len(t, got.Images, 2)
		require.NotNil(t, got.Category)
		assert.Equal(t, "Camisas", got.Category.Name)

		err = repos.Tx.RunProducts(ctx, func(products repository.ProductRepository) error {
			return products.ReplaceImages(ctx, "p1", []entity.Image{{URL: "https://img/3.png"}})
		})
		require.NoError(t, err)
		got, err = repos.Products.GetByID(ctx, "s1", "p1")
		require.NoError(t, err)
		require.Len(t, got.Images, 1)
		assert.Equal(t, "https://img/3.png", got.Images[0].URL)
	})

	t.Run("email duplicado", func(t *testing.T) {
		u := &entity.User{ID: "u1", Email: "ana@example.com", PasswordHash: "x", Name: "Ana", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repos.Users.Create(ctx, u))
		u2 := *u
		u2.ID = "u2"
		assert.ErrorIs(t, repos.Users.Create(ctx, &u2), domain.ErrEmailAlreadyExists)
	})
}
