package input_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/application/input"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
)

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, llegó %v", err)
	assert.Equal(t, field, verr.Field)
}

func TestRequiredText(t *testing.T) {
	s, err := input.RequiredText("name", "  Widget ")
	require.NoError(t, err)
	assert.Equal(t, "Widget", s)

	_, err = input.RequiredText("name", "   ")
	requireValidation(t, err, "name")
}

func TestPrice(t *testing.T) {
	p, err := input.Price("price", "9.99")
	require.NoError(t, err)
	assert.Equal(t, "9.99", p.String())

	_, err = input.Price("price", "abc")
	requireValidation(t, err, "price")

	_, err = input.Price("price", "-0.01")
	requireValidation(t, err, "price")

	_, err = input.Price("price", "")
	requireValidation(t, err, "price")
}

func TestOptionalPrice_BlancoEsNil(t *testing.T) {
	p, err := input.OptionalPrice("price", "  ")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = input.OptionalPrice("price", "12.5")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "12.5", p.String())
}

func TestQuantity(t *testing.T) {
	n, err := input.Quantity("quantity", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = input.Quantity("quantity", "7", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = input.Quantity("quantity", "-1", 0)
	requireValidation(t, err, "quantity")

	_, err = input.Quantity("quantity", "1.5", 0)
	requireValidation(t, err, "quantity")
}

func TestAmount_DebeSerPositivo(t *testing.T) {
	for _, raw := range []string{"", "0", "-3", "x"} {
		_, err := input.Amount("amount", raw)
		requireValidation(t, err, "amount")
	}
	n, err := input.Amount("amount", "20")
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}

func TestQuantityYAmount_TopeInt4(t *testing.T) {
	n, err := input.Quantity("quantity", "2147483647", 0)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, n)

	for _, raw := range []string{"2147483648", "9223372036854775807", "99999999999999999999"} {
		_, err = input.Quantity("quantity", raw, 0)
		requireValidation(t, err, "quantity")
		assert.Contains(t, err.Error(), "must be at most 2147483647")

		_, err = input.Amount("amount", raw)
		requireValidation(t, err, "amount")
	}

	_, err = input.Quantity("quantity", "-99999999999999999999", 0)
	requireValidation(t, err, "quantity")
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestID(t *testing.T) {
	id, err := input.ID("product", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = input.ID("product", "0")
	requireValidation(t, err, "product")

	opt, err := input.OptionalID("supplier", "")
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestThreshold_DefaultCinco(t *testing.T) {
	n, err := input.Threshold("")
	require.NoError(t, err)
	assert.Equal(t, input.DefaultThreshold, n)

	_, err = input.Threshold("-2")
	requireValidation(t, err, "threshold")
}

func TestCreateProduct(t *testing.T) {
	req, err := input.CreateProduct(input.Values{
		input.FieldName:     "Widget",
		input.FieldCategory: "Hardware",
		input.FieldPrice:    "9.99",
		input.FieldSupplier: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", req.Name)
	assert.Equal(t, 0, req.Quantity)
	require.NotNil(t, req.SupplierID)
	assert.Equal(t, int64(1), *req.SupplierID)

	_, err = input.CreateProduct(input.Values{input.FieldName: "Widget"})
	requireValidation(t, err, "category")
}

func TestUpdateProduct_CamposEnBlancoSonNil(t *testing.T) {
	req, err := input.UpdateProduct(input.Values{input.FieldCategory: "  "})
	require.NoError(t, err)
	assert.Nil(t, req.Price)
	assert.Nil(t, req.Category)
	assert.Nil(t, req.SupplierID)
}

func TestCreateSupplier(t *testing.T) {
	req, err := input.CreateSupplier(input.Values{input.FieldName: "Acme", input.FieldEmail: " a@x.com "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", req.Name)
	assert.Equal(t, "a@x.com", req.Email)
	assert.Equal(t, "", req.Phone)

	_, err = input.CreateSupplier(input.Values{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockChange(t *testing.T) {
	id, amount, err := input.StockChange(input.Values{input.FieldProduct: "3", input.FieldAmount: "5"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, 5, amount)

	_, _, err = input.StockChange(input.Values{input.FieldProduct: "3", input.FieldAmount: "0"})
	requireValidation(t, err, "amount")
}
