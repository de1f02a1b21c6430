package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,notblank,max=200"`
	Category   string          `json:"category" validate:"required,notblank,max=100"`
	Price      decimal.Decimal `json:"price" validate:"gte=0"`
	Quantity   int             `json:"quantity" validate:"gte=0,lte=2147483647"`
	SupplierID *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
}

// UpdateProductRequest actualización parcial; nil conserva el valor actual.
type UpdateProductRequest struct {
	Price      *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Category   *string          `json:"category" validate:"omitempty,notblank,max=100"`
	SupplierID *int64           `json:"supplier_id" validate:"omitempty,gt=0"`
}

// ProductResponse salida de un producto con el nombre del proveedor (LEFT JOIN).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	SupplierID   *int64          `json:"supplier_id"`
	SupplierName *string         `json:"supplier"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
