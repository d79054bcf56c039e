package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/store-admin-api/internal/application/catalog"
	"github.com/jhoicas/store-admin-api/internal/application/dto"
	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/entity"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

// StoreUseCase casos de uso de tiendas. Mismo orden de verificaciones que las entidades de la tienda:
// identidad, campos, id de ruta, propiedad.
type StoreUseCase struct {
	repo   repository.StoreRepository
	tracer trace.Tracer
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo, tracer: otel.Tracer("github.com/jhoicas/store-admin-api/internal/application/usecase")}
}

// Create crea una tienda cuyo dueño es userID.
func (uc *StoreUseCase) Create(ctx context.Context, userID string, in dto.StoreRequest) (*entity.Store, error) {
	ctx, span := uc.tracer.Start(ctx, "store.create")
	defer span.End()

	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := catalog.Check([]catalog.Requirement{catalog.Text("name", in.Name)}); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Get lectura pública de una tienda.
func (uc *StoreUseCase) Get(ctx context.Context, storeID string) (*entity.Store, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, domain.Required("storeId")
	}
	store, err := uc.repo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

// ListMine tiendas del usuario.
func (uc *StoreUseCase) ListMine(ctx context.Context, userID string) ([]*entity.Store, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return uc.repo.ListByOwner(ctx, userID)
}

// Update renombra la tienda.
func (uc *StoreUseCase) Update(ctx context.Context, userID, storeID string, in dto.StoreRequest) (*entity.Store, error) {
	ctx, span := uc.tracer.Start(ctx, "store.update")
	defer span.End()

	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := catalog.Check([]catalog.Requirement{catalog.Text("name", in.Name)}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(storeID) == "" {
		return nil, domain.Required("storeId")
	}
	store, err := catalog.RequireOwner(ctx, uc.repo, storeID, userID)
	if err != nil {
		return nil, err
	}
	store.Name = strings.TrimSpace(in.Name)
	store.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// Delete elimina la tienda. Falla (ErrReferenced) mientras tenga registros.
func (uc *StoreUseCase) Delete(ctx context.Context, userID, storeID string) (*entity.Store, error) {
	ctx, span := uc.tracer.Start(ctx, "store.delete")
	defer span.End()

	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if strings.TrimSpace(storeID) == "" {
		return nil, domain.Required("storeId")
	}
	if _, err := catalog.RequireOwner(ctx, uc.repo, storeID, userID); err != nil {
		return nil, err
	}
	return uc.repo.Delete(ctx, storeID)
}
