package dto

// CreateSupplierRequest entrada para crear un proveedor. Email y Phone son libres.
type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=200"`
	Email string `json:"email" validate:"max=200"`
	Phone string `json:"phone" validate:"max=50"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SupplierListResponse listado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
}
