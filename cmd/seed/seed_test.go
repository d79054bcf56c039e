package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/store-admin-api/internal/app"
	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
	"github.com/jhoicas/store-admin-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

const sampleCSV = `category,billboard,billboard_image,size,size_value,color,color_value,name,price,featured,images
Camisas,Verano,https://img/verano.png,Mediana,M,Negro,#000000,Camisa lino,"59,90",si,https://img/1.png|https://img/2.png
Camisas,Verano,https://img/verano.png,Grande,L,Negro,#000000,Camisa oxford,64.5,,https://img/3.png
Pantalones,Invierno,https://img/invierno.png,Mediana,M,Azul,#0000ff,Pantalón,80,false,https://img/4.png
`

func TestReadCatalog(t *testing.T) {
	rows, err := readCatalog(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Camisa lino", rows[0].Name)
	assert.True(t, rows[0].Price.Equal(mustDecimal(t, "59.90")))
	assert.True(t, rows[0].Featured)
	assert.Equal(t, []string{"https://img/1.png", "https://img/2.png"}, rows[0].Images)
	assert.False(t, rows[1].Featured)
	assert.Equal(t, 4, rows[2].Line)
}

func TestReadCatalog_Latin1(t *testing.T) {
	enc, err := charmap.ISO8859_1.NewEncoder().String(sampleCSV)
	require.NoError(t, err)

	rows, err := readCatalog(bytes.NewBufferString(enc), true)
	require.NoError(t, err)
	assert.Equal(t, "Pantalón", rows[2].Name)
}

func TestReadCatalog_Errors(t *testing.T) {
	_, err := readCatalog(strings.NewReader("name,price\nx,1\n"), false)
	assert.ErrorContains(t, err, "category")

	bad := strings.Replace(sampleCSV, "64.5", "gratis", 1)
	_, err = readCatalog(strings.NewReader(bad), false)
	assert.ErrorContains(t, err, "línea 3")
}

func TestImporter(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.OpenMigrated(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	svc := app.NewServices(db, sqlite.Dialect, app.Options{})

	store, err := svc.Stores.Create(ctx, "owner-1", dto.StoreRequest{Name: "Importada"})
	require.NoError(t, err)
	rows, err := readCatalog(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)

	sum, err := newImporter(svc, "owner-1", store.ID, logger.Nop()).run(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, summary{Billboards: 2, Categories: 2, Sizes: 2, Colors: 2, Products: 3}, sum)

	products, err := svc.ProductSearch.Search(ctx, store.ID, repository.ProductFilter{OnlyFeatured: true})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Len(t, products[0].Images, 2)

	// Segunda pasada: reutiliza los registros por nombre.
	sum, err = newImporter(svc, "owner-1", store.ID, logger.Nop()).run(ctx, rows[:1])
	require.NoError(t, err)
	assert.Equal(t, summary{Products: 1}, sum)
}

func TestImporter_NotOwner(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.OpenMigrated(ctx, sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	svc := app.NewServices(db, sqlite.Dialect, app.Options{})

	store, err := svc.Stores.Create(ctx, "owner-1", dto.StoreRequest{Name: "Ajena"})
	require.NoError(t, err)
	rows, err := readCatalog(strings.NewReader(sampleCSV), false)
	require.NoError(t, err)

	_, err = newImporter(svc, "otro", store.ID, logger.Nop()).run(ctx, rows)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
