package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/store-admin-api/internal/app"
	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/pkg/logger"
)

// summary registros creados por la importación.
type summary struct {
	Billboards, Categories, Sizes, Colors, Products int
}

// importer crea billboards, categorías, tallas y colores por nombre (una vez cada uno) y luego
// los productos, con los mismos chequeos de propiedad que la API.
type importer struct {
	svc     app.Services
	ownerID string
	storeID string
	log     *logger.Logger

	billboards map[string]string
	categories map[string]string
	sizes      map[string]string
	colors     map[string]string
}

func newImporter(svc app.Services, ownerID, storeID string, log *logger.Logger) *importer {
	return &importer{
		svc:        svc,
		ownerID:    ownerID,
		storeID:    storeID,
		log:        log,
		billboards: map[string]string{},
		categories: map[string]string{},
		sizes:      map[string]string{},
		colors:     map[string]string{},
	}
}

// preload registra los nombres ya existentes en la tienda para no duplicarlos.
func (im *importer) preload(ctx context.Context) error {
	bbs, err := im.svc.Billboards.List(ctx, im.storeID)
	if err != nil {
		return err
	}
	for _, b := range bbs {
		im.billboards[b.Label] = b.ID
	}
	cats, err := im.svc.Categories.List(ctx, im.storeID)
	if err != nil {
		return err
	}
	for _, c := range cats {
		im.categories[c.Name] = c.ID
	}
	sizes, err := im.svc.Sizes.List(ctx, im.storeID)
	if err != nil {
		return err
	}
	for _, s := range sizes {
		im.sizes[s.Name] = s.ID
	}
	colors, err := im.svc.Colors.List(ctx, im.storeID)
	if err != nil {
		return err
	}
	for _, c := range colors {
		im.colors[c.Name] = c.ID
	}
	return nil
}

func (im *importer) run(ctx context.Context, rows []catalogRow) (summary, error) {
	var sum summary
	if err := im.preload(ctx); err != nil {
		return sum, err
	}
	for _, row := range rows {
		if err := im.importRow(ctx, row, &sum); err != nil {
			return sum, fmt.Errorf("línea %d (%s): %w", row.Line, row.Name, err)
		}
	}
	return sum, nil
}

func (im *importer) importRow(ctx context.Context, row catalogRow, sum *summary) error {
	billboardID, ok := im.billboards[row.Billboard]
	if !ok {
		b, err := im.svc.Billboards.Create(ctx, im.ownerID, im.storeID, dto.BillboardRequest{Label: row.Billboard, ImageURL: row.BillboardImage})
		if err != nil {
			return err
		}
		billboardID = b.ID
		im.billboards[row.Billboard] = b.ID
		sum.Billboards++
	}
	categoryID, ok := im.categories[row.Category]
	if !ok {
		c, err := im.svc.Categories.Create(ctx, im.ownerID, im.storeID, dto.CategoryRequest{Name: row.Category, BillboardID: billboardID})
		if err != nil {
			return err
		}
		categoryID = c.ID
		im.categories[row.Category] = c.ID
		sum.Categories++
	}
	sizeID, ok := im.sizes[row.Size]
	if !ok {
		s, err := im.svc.Sizes.Create(ctx, im.ownerID, im.storeID, dto.AttributeRequest{Name: row.Size, Value: row.SizeValue})
		if err != nil {
			return err
		}
		sizeID = s.ID
		im.sizes[row.Size] = s.ID
		sum.Sizes++
	}
	colorID, ok := im.colors[row.Color]
	if !ok {
		c, err := im.svc.Colors.Create(ctx, im.ownerID, im.storeID, dto.AttributeRequest{Name: row.Color, Value: row.ColorValue})
		if err != nil {
			return err
		}
		colorID = c.ID
		im.colors[row.Color] = c.ID
		sum.Colors++
	}

	images := make([]dto.ImageRequest, 0, len(row.Images))
	for _, u := range row.Images {
		images = append(images, dto.ImageRequest{URL: u})
	}
	p, err := im.svc.Products.Create(ctx, im.ownerID, im.storeID, dto.ProductRequest{
		Name:       row.Name,
		Price:      row.Price,
		CategoryID: categoryID,
		SizeID:     sizeID,
		ColorID:    colorID,
		Images:     images,
		IsFeatured: row.Featured,
		IsArchived: row.Archived,
	})
	if err != nil {
		return err
	}
	sum.Products++
	im.log.Debug().Str("product_id", p.ID).Str("name", p.Name).Msg("producto importado")
	return nil
}
