package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-admin-api/internal/domain"
)

func TestValidationError_MensajeNombraElCampo(t *testing.T) {
	err := domain.Required("name")
	assert.Equal(t, "name es requerido", err.Error())
	assert.Equal(t, "name", err.Field)
}

func TestValidationError_MensajePropio(t *testing.T) {
	err := domain.Invalid("price", "price debe ser mayor que cero")
	assert.Equal(t, "price debe ser mayor que cero", err.Error())
}

func TestValidationError_EnvueltoSeClasifica(t *testing.T) {
	wrapped := fmt.Errorf("crear talla: %w", domain.Required("value"))

	ve, ok := domain.AsValidation(wrapped)
	require.True(t, ok)
	assert.Equal(t, "value", ve.Field)
	assert.True(t, errors.Is(wrapped, domain.ErrInvalidInput))
	assert.False(t, errors.Is(wrapped, domain.ErrNotFound))
}

func TestAsValidation_OtroError(t *testing.T) {
	_, ok := domain.AsValidation(domain.ErrUnauthorized)
	assert.False(t, ok)
}
