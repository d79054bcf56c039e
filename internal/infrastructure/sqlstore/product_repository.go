package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación de repository.ProductRepository.
// Las lecturas traen categoría, talla, color e imágenes ordenadas por posición.
type ProductRepository struct {
	base
}

// NewProductRepository construye el repositorio. q puede ser el pool o una Tx.
func NewProductRepository(q Querier, d Dialect) *ProductRepository {
	return &ProductRepository{base{q: q, d: d}}
}

func (r *ProductRepository) selectWithRelations() sq.SelectBuilder {
	return r.sql().Select(
		"p.id", "p.store_id", "p.category_id", "p.size_id", "p.color_id", "p.name", "p.price",
		"p.is_featured", "p.is_archived", "p.created_at", "p.updated_at",
		"c.id", "c.store_id", "c.billboard_id", "c.name", "c.created_at", "c.updated_at",
		"s.id", "s.store_id", "s.name", "s.value", "s.created_at", "s.updated_at",
		"co.id", "co.store_id", "co.name", "co.value", "co.created_at", "co.updated_at",
	).From("products p").
		Join("categories c ON c.id = p.category_id").
		Join("sizes s ON s.id = p.size_id").
		Join("colors co ON co.id = p.color_id")
}

func scanProduct(row Row) (*entity.Product, error) {
	var (
		p  entity.Product
		c  entity.Category
		s  entity.Size
		co entity.Color
	)
	err := row.Scan(
		&p.ID, &p.StoreID, &p.CategoryID, &p.SizeID, &p.ColorID, &p.Name, &p.Price,
		&p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.StoreID, &c.BillboardID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
		&s.ID, &s.StoreID, &s.Name, &s.Value, &s.CreatedAt, &s.UpdatedAt,
		&co.ID, &co.StoreID, &co.Name, &co.Value, &co.CreatedAt, &co.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category, p.Size, p.Color = &c, &s, &co
	p.Images = []entity.Image{}
	return &p, nil
}

// Create inserta el producto y sus imágenes. Para atomicidad usar dentro de una Tx.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.exec(ctx, r.sql().Insert("products").SetMap(map[string]any{
		"id":          p.ID,
		"store_id":    p.StoreID,
		"category_id": p.CategoryID,
		"size_id":     p.SizeID,
		"color_id":    p.ColorID,
		"name":        p.Name,
		"price":       p.Price,
		"is_featured": p.IsFeatured,
		"is_archived": p.IsArchived,
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}))
	if err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return r.insertImages(ctx, p.ID, p.Images)
}

func (r *ProductRepository) GetByID(ctx context.Context, storeID, id string) (*entity.Product, error) {
	row, err := r.queryRow(ctx, r.selectWithRelations().Where(sq.Eq{"p.id": id, "p.store_id": storeID}))
	if err != nil {
		return nil, err
	}
	p, err := scanProduct(row)
	if errors.Is(err, ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if err := r.attachImages(ctx, []*entity.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ListByStore listado de administración: incluye archivados.
func (r *ProductRepository) ListByStore(ctx context.Context, storeID string) ([]*entity.Product, error) {
	return r.List(ctx, storeID, repository.ProductFilter{IncludeArchived: true})
}

// List lista los productos de la tienda aplicando el filtro, del más reciente al más antiguo.
func (r *ProductRepository) List(ctx context.Context, storeID string, f repository.ProductFilter) ([]*entity.Product, error) {
	where := sq.And{sq.Eq{"p.store_id": storeID}}
	if f.CategoryID != "" {
		where = append(where, sq.Eq{"p.category_id": f.CategoryID})
	}
	if f.SizeID != "" {
		where = append(where, sq.Eq{"p.size_id": f.SizeID})
	}
	if f.ColorID != "" {
		where = append(where, sq.Eq{"p.color_id": f.ColorID})
	}
	if f.OnlyFeatured {
		where = append(where, sq.Eq{"p.is_featured": true})
	}
	if !f.IncludeArchived {
		where = append(where, sq.Eq{"p.is_archived": false})
	}

	rows, err := r.query(ctx, r.selectWithRelations().Where(where).OrderBy("p.created_at DESC"))
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	products, err := scanAll(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	if err := r.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// Update reemplaza los campos escalares. Las imágenes van por ReplaceImages.
func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	n, err := r.exec(ctx, r.sql().Update("products").SetMap(map[string]any{
		"category_id": p.CategoryID,
		"size_id":     p.SizeID,
		"color_id":    p.ColorID,
		"name":        p.Name,
		"price":       p.Price,
		"is_featured": p.IsFeatured,
		"is_archived": p.IsArchived,
		"updated_at":  p.UpdatedAt,
	}).Where(sq.Eq{"id": p.ID, "store_id": p.StoreID}))
	if err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto; sus imágenes caen en cascada.
func (r *ProductRepository) Delete(ctx context.Context, storeID, id string) (*entity.Product, error) {
	p, err := r.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := r.exec(ctx, r.sql().Delete("products").Where(sq.Eq{"id": id, "store_id": storeID})); err != nil {
		return nil, fmt.Errorf("eliminar producto: %w", err)
	}
	return p, nil
}

// ReplaceImages borra todas las imágenes del producto y crea las indicadas.
func (r *ProductRepository) ReplaceImages(ctx context.Context, productID string, images []entity.Image) error {
	if _, err := r.exec(ctx, r.sql().Delete("images").Where(sq.Eq{"product_id": productID})); err != nil {
		return fmt.Errorf("borrar imágenes: %w", err)
	}
	return r.insertImages(ctx, productID, images)
}

func (r *ProductRepository) insertImages(ctx context.Context, productID string, images []entity.Image) error {
	if len(images) == 0 {
		return nil
	}
	now := time.Now().UTC()
	ins := r.sql().Insert("images").Columns("id", "product_id", "url", "position", "created_at", "updated_at")
	for i, img := range images {
		if img.ID == "" {
			img.ID = uuid.New().String()
		}
		if img.CreatedAt.IsZero() {
			img.CreatedAt = now
		}
		if img.UpdatedAt.IsZero() {
			img.UpdatedAt = img.CreatedAt
		}
		ins = ins.Values(img.ID, productID, img.URL, i, img.CreatedAt, img.UpdatedAt)
	}
	if _, err := r.exec(ctx, ins); err != nil {
		return fmt.Errorf("insertar imágenes: %w", err)
	}
	return nil
}

// attachImages carga en una sola consulta las imágenes de todos los productos.
func (r *ProductRepository) attachImages(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Product, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	rows, err := r.query(ctx, r.sql().
		Select("id", "product_id", "url", "position", "created_at", "updated_at").
		From("images").
		Where(sq.Eq{"product_id": ids}).
		OrderBy("product_id", "position ASC"))
	if err != nil {
		return fmt.Errorf("cargar imágenes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.Position, &img.CreatedAt, &img.UpdatedAt); err != nil {
			return fmt.Errorf("cargar imágenes: %w", err)
		}
		if p := byID[img.ProductID]; p != nil {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}
