package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/store-admin-api/internal/domain"
	"github.com/jhoicas/store-admin-api/internal/domain/repository"
)

// Requirement un campo obligatorio del payload y si viene informado.
type Requirement struct {
	Field   string
	Present bool
}

// Text: el campo de texto debe venir no vacío (los espacios no cuentan).
func Text(field, value string) Requirement {
	return Requirement{Field: field, Present: strings.TrimSpace(value) != ""}
}

// Present: condición arbitraria de presencia (listas no vacías, montos positivos...).
func Present(field string, ok bool) Requirement {
	return Requirement{Field: field, Present: ok}
}

// Check devuelve el primer campo ausente, en el orden declarado.
func Check(reqs []Requirement) error {
	for _, r := range reqs {
		if !r.Present {
			return domain.Required(r.Field)
		}
	}
	return nil
}

// BelongsTo exige que el registro id exista en la tienda; si no, error de validación sobre field.
func BelongsTo[T any](ctx context.Context, repo repository.ScopedRepository[T], storeID, field, id string) error {
	item, err := repo.GetByID(ctx, storeID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.Invalid(field, field+" no pertenece a la tienda")
	}
	return nil
}
