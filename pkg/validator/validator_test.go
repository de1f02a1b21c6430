package validator_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/pkg/validator"
)

func TestValidateStruct_ProductoValido(t *testing.T) {
	in := dto.CreateProductRequest{
		Name:     "Widget",
		Category: "Hardware",
		Price:    decimal.RequireFromString("9.99"),
		Quantity: 0,
	}
	assert.NoError(t, validator.ValidateStruct(in))
}

func TestValidateStruct_NombreEnBlanco(t *testing.T) {
	in := dto.CreateProductRequest{Name: "   ", Category: "Hardware"}

	err := validator.ValidateStruct(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "is required", verr.Message)
}

func TestValidateStruct_PrecioNegativo(t *testing.T) {
	in := dto.CreateProductRequest{
		Name:     "Widget",
		Category: "Hardware",
		Price:    decimal.NewFromInt(-1),
	}

	err := validator.ValidateStruct(in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "price", verr.Field)
}

func TestValidateStruct_UpdateVacioEsValido(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(dto.UpdateProductRequest{}))
}

func TestValidateStruct_UpdateCategoriaEnBlanco(t *testing.T) {
	blank := " "
	err := validator.ValidateStruct(dto.UpdateProductRequest{Category: &blank})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "category", verr.Field)
}

func TestValidateStruct_SupplierNombreRequerido(t *testing.T) {
	err := validator.ValidateStruct(dto.CreateSupplierRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
