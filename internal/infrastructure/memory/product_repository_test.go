package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/domain/entity"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
)

func TestProductRepo_CreateResuelveProveedor(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	sup := &entity.Supplier{Name: "Acme"}
	require.NoError(t, db.Suppliers().Create(ctx, sup))

	p := &entity.Product{Name: "Widget", Category: "Hardware", Price: decimal.NewFromInt(3), SupplierID: &sup.ID}
	require.NoError(t, db.Products().Create(ctx, p))

	assert.Equal(t, int64(1), p.ID)
	require.NotNil(t, p.SupplierName)
	assert.Equal(t, "Acme", *p.SupplierName)
}

func TestProductRepo_CreateProveedorInexistente(t *testing.T) {
	missing := int64(99)
	err := memory.NewDB().Products().Create(context.Background(), &entity.Product{Name: "W", Category: "C", SupplierID: &missing})

	var refErr *domain.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, int64(99), refErr.SupplierID)
}

func TestProductRepo_AdjustQuantityNoBajaDeCero(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDB().Products()
	p := &entity.Product{Name: "W", Category: "C", Quantity: 3}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.AdjustQuantity(ctx, p.ID, -4)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.AdjustQuantity(ctx, p.ID, -3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Quantity)
}

func TestProductRepo_AdjustQuantityNoDesbordaInt4(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDB().Products()
	p := &entity.Product{Name: "W", Category: "C", Quantity: entity.MaxQuantity - 1}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.AdjustQuantity(ctx, p.ID, 2)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity-1, stored.Quantity)

	got, err = repo.AdjustQuantity(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxQuantity, got.Quantity)
}

func TestTxRunner_VentasConcurrentesNoDejanNegativo(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB()
	p := &entity.Product{Name: "W", Category: "C", Quantity: 10}
	require.NoError(t, db.Products().Create(ctx, p))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sold int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = db.TxRunner().Run(ctx, func(repo repository.ProductRepository) error {
				cur, err := repo.GetForUpdate(ctx, p.ID)
				if err != nil || cur.Quantity < 1 {
					return domain.ErrInsufficientStock
				}
				if _, err := repo.AdjustQuantity(ctx, p.ID, -1); err != nil {
					return err
				}
				mu.Lock()
				sold++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	final, err := db.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, final.Quantity)
	assert.Equal(t, 10, sold)
}

func TestProductRepo_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewDB().Products().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
