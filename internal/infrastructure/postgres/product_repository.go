package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Columnas de producto + nombre del proveedor (LEFT JOIN). El alias p es la tabla o el CTE.
const productColumns = `p.id, p.name, p.category, p.price, p.quantity, p.supplier_id, s.name`

const productJoin = ` p LEFT JOIN suppliers s ON s.id = p.supplier_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Las escrituras usan un CTE con RETURNING para devolver la fila ya unida al proveedor en un solo viaje.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y completa ID y SupplierName.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		WITH p AS (
			INSERT INTO products (name, category, price, quantity, supplier_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING *
		)
		SELECT ` + productColumns + ` FROM` + productJoin
	created, err := scanProduct(r.q.QueryRow(ctx, query,
		product.Name, product.Category, product.Price, product.Quantity, product.SupplierID,
	))
	if err != nil {
		switch {
		case isForeignKeyViolation(err) && product.SupplierID != nil:
			return &domain.ReferenceError{SupplierID: *product.SupplierID}
		case isCheckViolation(err):
			return domain.NewValidationError("product", "price and quantity must not be negative")
		}
		return classify("insert product", err)
	}
	*product = *created
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products` + productJoin + ` WHERE p.id = $1`
	return r.one(ctx, "get product", query, id)
}

// GetForUpdate obtiene el producto y bloquea su fila hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products` + productJoin + ` WHERE p.id = $1 FOR UPDATE OF p`
	return r.one(ctx, "get product for update", query, id)
}

// List todos los productos por ID ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products` + productJoin + ` ORDER BY p.id`
	return r.many(ctx, "list products", query)
}

// ListBelowQuantity productos con quantity < threshold por quantity ascendente.
func (r *ProductRepo) ListBelowQuantity(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products` + productJoin + `
		WHERE p.quantity < $1
		ORDER BY p.quantity ASC, p.id ASC`
	return r.many(ctx, "list low stock", query, threshold)
}

// AdjustQuantity suma delta en un único UPDATE condicional: si el resultado quedaría
// negativo (o el ID no existe) no se toca la fila y se devuelve (nil, nil).
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id int64, delta int) (*entity.Product, error) {
	query := `
		WITH p AS (
			UPDATE products SET quantity = quantity + $2
			WHERE id = $1 AND quantity + $2 >= 0
			RETURNING *
		)
		SELECT ` + productColumns + ` FROM` + productJoin
	return r.one(ctx, "adjust quantity", query, id, delta)
}

// Update aplica el patch con COALESCE: un parámetro NULL conserva la columna.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	query := `
		WITH p AS (
			UPDATE products SET
				price       = COALESCE($2, price),
				category    = COALESCE($3, category),
				supplier_id = COALESCE($4, supplier_id)
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + productColumns + ` FROM` + productJoin
	p, err := scanProduct(r.q.QueryRow(ctx, query, id, patch.Price, patch.Category, patch.SupplierID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, nil
		case isForeignKeyViolation(err) && patch.SupplierID != nil:
			return nil, &domain.ReferenceError{SupplierID: *patch.SupplierID}
		case isCheckViolation(err):
			return nil, domain.NewValidationError("price", "must not be negative")
		}
		return nil, classify("update product", err)
	}
	return p, nil
}

// Delete elimina el producto y devuelve su estado previo. (nil, nil) si no existe.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		WITH p AS (
			DELETE FROM products WHERE id = $1
			RETURNING *
		)
		SELECT ` + productColumns + ` FROM` + productJoin
	return r.one(ctx, "delete product", query, id)
}

func (r *ProductRepo) one(ctx context.Context, op, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(op, err)
	}
	return p, nil
}

func (r *ProductRepo) many(ctx context.Context, op, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, classify("scan product", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return list, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.SupplierID, &p.SupplierName); err != nil {
		return nil, err
	}
	return &p, nil
}
