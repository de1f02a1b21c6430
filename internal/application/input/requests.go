package input

import (
	"github.com/jhoicas/inventario-cli/internal/application/dto"
)

// Claves de campo compartidas por los formularios del TUI y los flags del CLI.
const (
	FieldName      = "name"
	FieldCategory  = "category"
	FieldPrice     = "price"
	FieldQuantity  = "quantity"
	FieldSupplier  = "supplier"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldProduct   = "product"
	FieldAmount    = "amount"
	FieldThreshold = "threshold"
)

// Values valores crudos indexados por clave de campo.
type Values map[string]string

// CreateProduct arma el request de alta de producto desde texto libre.
func CreateProduct(v Values) (dto.CreateProductRequest, error) {
	var req dto.CreateProductRequest
	var err error
	if req.Name, err = RequiredText(FieldName, v[FieldName]); err != nil {
		return req, err
	}
	if req.Category, err = RequiredText(FieldCategory, v[FieldCategory]); err != nil {
		return req, err
	}
	if req.Price, err = Price(FieldPrice, v[FieldPrice]); err != nil {
		return req, err
	}
	if req.Quantity, err = Quantity(FieldQuantity, v[FieldQuantity], 0); err != nil {
		return req, err
	}
	if req.SupplierID, err = OptionalID(FieldSupplier, v[FieldSupplier]); err != nil {
		return req, err
	}
	return req, nil
}

// UpdateProduct arma el patch; los campos en blanco quedan en nil (sin cambio).
func UpdateProduct(v Values) (dto.UpdateProductRequest, error) {
	var req dto.UpdateProductRequest
	var err error
	if req.Price, err = OptionalPrice(FieldPrice, v[FieldPrice]); err != nil {
		return req, err
	}
	req.Category = OptionalText(v[FieldCategory])
	if req.SupplierID, err = OptionalID(FieldSupplier, v[FieldSupplier]); err != nil {
		return req, err
	}
	return req, nil
}

// CreateSupplier arma el alta de proveedor. Solo el nombre es obligatorio.
func CreateSupplier(v Values) (dto.CreateSupplierRequest, error) {
	name, err := RequiredText(FieldName, v[FieldName])
	if err != nil {
		return dto.CreateSupplierRequest{}, err
	}
	return dto.CreateSupplierRequest{
		Name:  name,
		Email: trim(v[FieldEmail]),
		Phone: trim(v[FieldPhone]),
	}, nil
}

// StockChange producto y cantidad para reposición o venta.
func StockChange(v Values) (int64, int, error) {
	id, err := ID(FieldProduct, v[FieldProduct])
	if err != nil {
		return 0, 0, err
	}
	amount, err := Amount(FieldAmount, v[FieldAmount])
	if err != nil {
		return 0, 0, err
	}
	return id, amount, nil
}

func trim(s string) string {
	if p := OptionalText(s); p != nil {
		return *p
	}
	return ""
}
