package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

const tracerName = "github.com/jhoicas/store-admin-api/internal/application/catalog"

// Resource describe una entidad que pertenece a una tienda: nombre, campos obligatorios,
// cómo se construye el registro a partir del payload y cómo se persiste.
type Resource[T any, In any] struct {
	// Name en singular ("billboard"). El parámetro de ruta se reporta como Name+"Id".
	Name string
	Repo repository.ScopedRepository[T]
	// Required lista los campos obligatorios en el orden en que se validan.
	Required func(in In) []Requirement
	// Build arma el registro completo (PATCH reemplaza todos los campos, no mezcla).
	Build func(storeID, id string, in In, now time.Time) *T
	// Refs verifica que los ids referenciados por el payload existan en la misma tienda.
	// Corre después de la verificación de propiedad.
	Refs func(ctx context.Context, storeID string, in In) error

	// Insert y Save sustituyen a Repo.Create / Repo.Update cuando la escritura toca varias tablas.
	Insert func(ctx context.Context, item *T) error
	Save   func(ctx context.Context, item *T) error
}

// Service aplica el patrón identidad -> campos -> id de ruta -> propiedad -> mutación
// para cualquier entidad de la tienda.
type Service[T any, In any] struct {
	stores repository.StoreRepository
	res    Resource[T, In]
	tracer trace.Tracer

	now   func() time.Time
	newID func() string
}

// NewService construye el servicio genérico para la entidad descrita por res.
func NewService[T any, In any](stores repository.StoreRepository, res Resource[T, In]) *Service[T, In] {
	repo := res.Repo
	if res.Insert == nil {
		res.Insert = func(ctx context.Context, item *T) error { return repo.Create(ctx, item) }
	}
	if res.Save == nil {
		res.Save = func(ctx context.Context, item *T) error { return repo.Update(ctx, item) }
	}
	return &Service[T, In]{
		stores: stores,
		res:    res,
		tracer: otel.Tracer(tracerName),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
	}
}

// Name devuelve el nombre singular de la entidad.
func (s *Service[T, In]) Name() string { return s.res.Name }

// Get lee un registro de la tienda. No exige identidad.
func (s *Service[T, In]) Get(ctx context.Context, storeID, id string) (item *T, err error) {
	ctx, span := s.tracer.Start(ctx, s.res.Name+".get")
	defer func() { endSpan(span, err) }()

	if err := s.requireID(id); err != nil {
		return nil, err
	}
	item, err = s.res.Repo.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List lista los registros de la tienda. No exige identidad.
func (s *Service[T, In]) List(ctx context.Context, storeID string) (items []*T, err error) {
	ctx, span := s.tracer.Start(ctx, s.res.Name+".list")
	defer func() { endSpan(span, err) }()

	return s.res.Repo.ListByStore(ctx, storeID)
}

// Create valida, verifica la propiedad de la tienda y persiste un registro nuevo.
func (s *Service[T, In]) Create(ctx context.Context, userID, storeID string, in In) (item *T, err error) {
	ctx, span := s.tracer.Start(ctx, s.res.Name+".create")
	defer func() { endSpan(span, err) }()

	if err := s.precheck(userID, in); err != nil {
		return nil, err
	}
	if _, err := RequireOwner(ctx, s.stores, storeID, userID); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, storeID, in); err != nil {
		return nil, err
	}
	id := s.newID()
	if err := s.res.Insert(ctx, s.res.Build(storeID, id, in, s.now())); err != nil {
		return nil, err
	}
	return s.reload(ctx, storeID, id)
}

// Update reemplaza todos los campos del registro id.
func (s *Service[T, In]) Update(ctx context.Context, userID, storeID, id string, in In) (item *T, err error) {
	ctx, span := s.tracer.Start(ctx, s.res.Name+".update")
	defer func() { endSpan(span, err) }()

	if err := s.precheck(userID, in); err != nil {
		return nil, err
	}
	if err := s.requireID(id); err != nil {
		return nil, err
	}
	if _, err := RequireOwner(ctx, s.stores, storeID, userID); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, storeID, in); err != nil {
		return nil, err
	}
	if err := s.res.Save(ctx, s.res.Build(storeID, id, in, s.now())); err != nil {
		return nil, err
	}
	return s.reload(ctx, storeID, id)
}

// Delete elimina el registro id y lo devuelve.
func (s *Service[T, In]) Delete(ctx context.Context, userID, storeID, id string) (item *T, err error) {
	ctx, span := s.tracer.Start(ctx, s.res.Name+".delete")
	defer func() { endSpan(span, err) }()

	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.requireID(id); err != nil {
		return nil, err
	}
	if _, err := RequireOwner(ctx, s.stores, storeID, userID); err != nil {
		return nil, err
	}
	return s.res.Repo.Delete(ctx, storeID, id)
}

func (s *Service[T, In]) precheck(userID string, in In) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	return Check(s.res.Required(in))
}

func (s *Service[T, In]) checkRefs(ctx context.Context, storeID string, in In) error {
	if s.res.Refs == nil {
		return nil
	}
	return s.res.Refs(ctx, storeID, in)
}

func (s *Service[T, In]) requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.Required(s.res.Name + "Id")
	}
	return nil
}

func (s *Service[T, In]) reload(ctx context.Context, storeID, id string) (*T, error) {
	item, err := s.res.Repo.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// endSpan marca el span como fallido solo ante errores que no son del cliente.
func endSpan(span trace.Span, err error) {
	if err != nil && !isClientError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrUnauthenticated) ||
		errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrNotFound)
}
