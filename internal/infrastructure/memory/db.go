// Package memory implementa los repositorios en memoria. Sustituye a PostgreSQL en tests
// y respeta las mismas reglas: IDs secuenciales, FK de proveedor con restrict, stock >= 0.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-cli/internal/application/inventory"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

// DB estado compartido entre ProductRepo y SupplierRepo (thread-safe).
type DB struct {
	mu           sync.RWMutex
	txMu         sync.Mutex
	products     map[int64]entity.Product
	suppliers    map[int64]entity.Supplier
	nextProduct  int64
	nextSupplier int64
}

// NewDB crea una base vacía.
func NewDB() *DB {
	return &DB{
		products:  make(map[int64]entity.Product),
		suppliers: make(map[int64]entity.Supplier),
	}
}

// Products repositorio de productos sobre esta base.
func (db *DB) Products() *ProductRepo { return &ProductRepo{db: db} }

// Suppliers repositorio de proveedores sobre esta base.
func (db *DB) Suppliers() *SupplierRepo { return &SupplierRepo{db: db} }

// TxRunner serializa los bloques transaccionales.
func (db *DB) TxRunner() *TxRunner { return &TxRunner{db: db} }

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner equivalente en memoria de la transacción con SELECT FOR UPDATE:
// un solo bloque a la vez, de modo que leer-verificar-escribir no se intercala.
type TxRunner struct {
	db *DB
}

// Run ejecuta fn con el repositorio de productos mientras retiene el lock de transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.txMu.Lock()
	defer r.db.txMu.Unlock()
	return fn(r.db.Products())
}

// withSupplierName copia el producto resolviendo el nombre del proveedor (LEFT JOIN).
// Llamar con db.mu tomado.
func (db *DB) withSupplierName(p entity.Product) *entity.Product {
	p.SupplierName = nil
	if p.SupplierID != nil {
		if s, ok := db.suppliers[*p.SupplierID]; ok {
			name := s.Name
			p.SupplierName = &name
		}
	}
	return &p
}
