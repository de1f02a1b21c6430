package entity

// Supplier proveedor de productos. Solo lectura después de creado.
type Supplier struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
