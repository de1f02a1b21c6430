package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
	"github.com/jhoicas/inventario-cli/pkg/logger"
	"github.com/jhoicas/inventario-cli/pkg/validator"
)

// DefaultLowStockThreshold umbral de stock bajo por defecto.
const DefaultLowStockThreshold = 5

// DefaultTimeout tiempo máximo por operación contra el store.
const DefaultTimeout = 5 * time.Second

var _ Store = (*Service)(nil)

// Service implementa Store sobre los repositorios de productos y proveedores.
// Cada operación corre con su propio timeout; un deadline vencido se reporta como domain.ErrTimeout.
type Service struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	txRunner     TxRunner
	timeout      time.Duration
	log          *logger.Logger
}

// NewService construye el servicio. timeout <= 0 usa DefaultTimeout; log nil descarta los logs.
func NewService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	txRunner TxRunner,
	timeout time.Duration,
	log *logger.Logger,
) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		txRunner:     txRunner,
		timeout:      timeout,
		log:          log,
	}
}

// ListProducts todos los productos con el nombre del proveedor, por ID ascendente.
func (s *Service) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list products", err)
	}
	return toProductResponses(list), nil
}

// ListLowStock productos con quantity < threshold, por quantity ascendente.
// Una lista vacía es un resultado válido.
func (s *Service) ListLowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	if threshold < 0 {
		return nil, domain.NewValidationError("threshold", "must not be negative")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.productRepo.ListBelowQuantity(ctx, threshold)
	if err != nil {
		return nil, s.fail(ctx, "list low stock", err)
	}
	return toProductResponses(list), nil
}

// ListSuppliers todos los proveedores por ID ascendente.
func (s *Service) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	list, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list suppliers", err)
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, sup := range list {
		items = append(items, *toSupplierResponse(sup))
	}
	return items, nil
}

// CreateSupplier da de alta un proveedor y devuelve el registro con su ID generado.
func (s *Service) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	supplier := &entity.Supplier{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, s.fail(ctx, "create supplier", err)
	}
	s.log.Debug().Int64("supplier_id", supplier.ID).Str("name", supplier.Name).Msg("proveedor creado")
	return toSupplierResponse(supplier), nil
}

// CreateProduct da de alta un producto. SupplierID debe existir o ser nil;
// si no existe la escritura falla con domain.ErrReferentialIntegrity.
func (s *Service) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product := &entity.Product{
		Name:       in.Name,
		Category:   in.Category,
		Price:      in.Price,
		Quantity:   in.Quantity,
		SupplierID: in.SupplierID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, s.fail(ctx, "create product", err)
	}
	s.log.Debug().Int64("product_id", product.ID).Str("name", product.Name).Int("quantity", product.Quantity).Msg("producto creado")
	return toProductResponse(product), nil
}

// Restock suma amount al stock con un único UPDATE atómico.
func (s *Service) Restock(ctx context.Context, productID int64, amount int) (*dto.ProductResponse, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.productRepo.AdjustQuantity(ctx, productID, amount)
	if err != nil {
		return nil, s.fail(ctx, "restock", err)
	}
	if product == nil {
		return nil, productNotFound(productID)
	}
	s.log.Debug().Int64("product_id", productID).Int("amount", amount).Int("quantity", product.Quantity).Msg("stock repuesto")
	return toProductResponse(product), nil
}

// RecordSale descuenta amount del stock. La lectura y el descuento corren en la misma
// transacción con la fila bloqueada (SELECT FOR UPDATE), de modo que dos ventas
// concurrentes no pueden dejar la cantidad en negativo.
func (s *Service) RecordSale(ctx context.Context, productID int64, amount int) (*dto.ProductResponse, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var updated *entity.Product
	err := s.txRunner.Run(ctx, func(productRepo repository.ProductRepository) error {
		current, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if current == nil {
			return productNotFound(productID)
		}
		if current.Quantity < amount {
			return &domain.InsufficientStockError{ProductID: productID, Current: current.Quantity, Requested: amount}
		}
		updated, err = productRepo.AdjustQuantity(ctx, productID, -amount)
		if err != nil {
			return err
		}
		if updated == nil {
			return &domain.InsufficientStockError{ProductID: productID, Current: current.Quantity, Requested: amount}
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "record sale", err)
	}
	s.log.Debug().Int64("product_id", productID).Int("amount", amount).Int("quantity", updated.Quantity).Msg("venta registrada")
	return toProductResponse(updated), nil
}

// UpdateProduct actualización parcial (merge): los campos nil conservan el valor almacenado.
func (s *Service) UpdateProduct(ctx context.Context, productID int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	patch := entity.ProductPatch{Price: in.Price, Category: in.Category, SupplierID: in.SupplierID}
	var (
		product *entity.Product
		err     error
	)
	if patch.IsEmpty() {
		product, err = s.productRepo.GetByID(ctx, productID)
	} else {
		product, err = s.productRepo.Update(ctx, productID, patch)
	}
	if err != nil {
		return nil, s.fail(ctx, "update product", err)
	}
	if product == nil {
		return nil, productNotFound(productID)
	}
	s.log.Debug().Int64("product_id", productID).Bool("noop", patch.IsEmpty()).Msg("producto actualizado")
	return toProductResponse(product), nil
}

// DeleteProduct elimina el producto y devuelve su estado previo para confirmación.
func (s *Service) DeleteProduct(ctx context.Context, productID int64) (*dto.ProductResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		return nil, s.fail(ctx, "delete product", err)
	}
	if product == nil {
		return nil, productNotFound(productID)
	}
	s.log.Debug().Int64("product_id", productID).Msg("producto eliminado")
	return toProductResponse(product), nil
}

// GetProduct obtiene un producto por ID.
func (s *Service) GetProduct(ctx context.Context, productID int64) (*dto.ProductResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, s.fail(ctx, "get product", err)
	}
	if product == nil {
		return nil, productNotFound(productID)
	}
	return toProductResponse(product), nil
}

// GetSupplier obtiene un proveedor por ID.
func (s *Service) GetSupplier(ctx context.Context, supplierID int64) (*dto.SupplierResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, s.fail(ctx, "get supplier", err)
	}
	if supplier == nil {
		return nil, &domain.NotFoundError{Entity: "supplier", ID: supplierID}
	}
	return toSupplierResponse(supplier), nil
}

// fail normaliza el error de una operación: un deadline vencido pasa a domain.ErrTimeout
// y los errores de infraestructura se registran en warn.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	if !errors.Is(err, domain.ErrTimeout) &&
		(errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)) {
		err = fmt.Errorf("%w: %s", domain.ErrTimeout, op)
	}
	switch {
	case errors.Is(err, domain.ErrTimeout), errors.Is(err, domain.ErrConnectivity):
		s.log.Warn().Err(err).Str("op", op).Msg("fallo del store")
	default:
		s.log.Debug().Err(err).Str("op", op).Msg("operación rechazada")
	}
	return err
}

// checkAmount cantidad de reposición o venta: positiva y dentro del rango de quantity.
func checkAmount(amount int) error {
	if amount <= 0 {
		return domain.NewValidationError("amount", "must be a positive number")
	}
	if amount > entity.MaxQuantity {
		return domain.NewValidationError("amount", fmt.Sprintf("must be at most %d", entity.MaxQuantity))
	}
	return nil
}

func productNotFound(id int64) error {
	return &domain.NotFoundError{Entity: "product", ID: id}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		Quantity:     p.Quantity,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
	}
}
