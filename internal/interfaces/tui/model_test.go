package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/inventory"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
)

func newTestModel(t *testing.T) (Model, *inventory.Service) {
	t.Helper()
	db := memory.NewDB()
	svc := inventory.NewService(db.Products(), db.Suppliers(), db.TxRunner(), time.Second, nil)
	return New(context.Background(), svc, Config{LowStockThreshold: 5}, nil), svc
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send entrega las teclas y resuelve en línea los comandos de carga y ejecución.
func send(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(Model)
		for m.state == stateBusy && cmd != nil {
			next, cmd = m.Update(cmd())
			m = next.(Model)
		}
	}
	return m, cmd
}

func choose(t *testing.T, m Model, title string) (Model, tea.Cmd) {
	t.Helper()
	for i, item := range m.menu.Items() {
		if item.(menuItem).act.title == title {
			m.menu.Select(i)
			return send(t, m, "enter")
		}
	}
	t.Fatalf("menu item %q not found", title)
	return m, nil
}

func seed(t *testing.T, svc *inventory.Service) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.CreateSupplier(ctx, dto.CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, dto.CreateProductRequest{
		Name: "Widget", Category: "Tools", Price: decimal.RequireFromString("9.99"), Quantity: 20,
	})
	require.NoError(t, err)
}

func TestMenu_ListaTodasLasAcciones(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Contains(t, m.View(), "View all products")

	var titles []string
	for _, item := range m.menu.Items() {
		titles = append(titles, item.(menuItem).Title())
	}
	assert.Equal(t, []string{
		"View all products", "View low inventory", "View all suppliers",
		"Add a product", "Add a supplier", "Restock a product", "Record a sale",
		"Update a product", "Delete a product", "Find a product", "Find a supplier", "Exit",
	}, titles)
}

func TestAddSupplierYProduct(t *testing.T) {
	m, svc := newTestModel(t)

	m, _ = choose(t, m, "Add a supplier")
	require.Equal(t, stateForm, m.state)
	m, _ = send(t, m, "Acme", "tab", "acme@example.com", "tab", "555-0100", "enter")
	require.Equal(t, stateResult, m.state)
	require.NoError(t, m.err)
	assert.Contains(t, m.View(), `Supplier "Acme" added successfully! (ID: 1)`)

	m, _ = send(t, m, "x")
	require.Equal(t, stateMenu, m.state)

	m, _ = choose(t, m, "Add a product")
	require.Equal(t, stateForm, m.state)
	m, _ = send(t, m,
		"Widget", "tab",
		"Tools", "tab",
		"9.99", "tab",
		"ctrl+u", "20", "tab",
		"right", "enter",
	)
	require.Equal(t, stateResult, m.state)
	require.NoError(t, m.err)
	assert.Contains(t, m.View(), `Product "Widget" added successfully! (ID: 1)`)

	p, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Quantity)
	require.NotNil(t, p.SupplierID)
	assert.Equal(t, int64(1), *p.SupplierID)
	require.NotNil(t, p.SupplierName)
	assert.Equal(t, "Acme", *p.SupplierName)
}

func TestAddProduct_EntradaInvalidaMantieneFormulario(t *testing.T) {
	m, svc := newTestModel(t)

	m, _ = choose(t, m, "Add a product")
	m, _ = send(t, m, "Widget", "tab", "Tools", "tab", "abc", "tab", "tab", "enter")

	require.Equal(t, stateForm, m.state)
	var vErr *domain.ValidationError
	require.ErrorAs(t, m.form.err, &vErr)
	assert.Equal(t, "price", vErr.Field)
	assert.Contains(t, m.View(), "price")

	items, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecordSale(t *testing.T) {
	m, svc := newTestModel(t)
	seed(t, svc)

	m, _ = choose(t, m, "Record a sale")
	require.Equal(t, stateForm, m.state)
	assert.Contains(t, m.View(), "Widget (Available: 20)")

	m, _ = send(t, m, "tab", "5", "enter")
	require.NoError(t, m.err)
	assert.Contains(t, m.View(), `Sold 5 of "Widget". Remaining quantity: 15`)

	m, _ = send(t, m, "x")
	m, _ = choose(t, m, "Record a sale")
	m, _ = send(t, m, "tab", "25", "enter")
	require.Equal(t, stateResult, m.state)
	assert.True(t, errors.Is(m.err, domain.ErrInsufficientStock))
	assert.Contains(t, m.View(), "✗")
	assert.Contains(t, m.View(), "current quantity 15")

	p, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 15, p.Quantity)
}

func TestRestock_SinProductos(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = choose(t, m, "Restock a product")
	require.Equal(t, stateResult, m.state)
	assert.Contains(t, m.View(), "No products available.")
}

func TestUpdateProduct_ConservaProveedor(t *testing.T) {
	m, svc := newTestModel(t)
	seed(t, svc)
	ctx := context.Background()
	supplierID := int64(1)
	_, err := svc.UpdateProduct(ctx, 1, dto.UpdateProductRequest{SupplierID: &supplierID})
	require.NoError(t, err)

	m, _ = choose(t, m, "Update a product")
	require.Equal(t, stateForm, m.state)
	assert.Contains(t, m.View(), "Widget ($9.99)")
	assert.Contains(t, m.View(), "Keep current supplier")

	m, _ = send(t, m, "tab", "12.50", "tab", "tab", "enter")
	require.NoError(t, m.err)
	assert.Contains(t, m.View(), `Product "Widget" updated successfully!`)

	p, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "12.5", p.Price.String())
	assert.Equal(t, "Tools", p.Category)
	require.NotNil(t, p.SupplierID)
	assert.Equal(t, int64(1), *p.SupplierID)
}

func TestDeleteProduct_ConfirmacionPorDefectoNo(t *testing.T) {
	m, svc := newTestModel(t)
	seed(t, svc)
	ctx := context.Background()

	m, _ = choose(t, m, "Delete a product")
	m, _ = send(t, m, "enter")
	require.Equal(t, stateConfirm, m.state)
	assert.False(t, m.confirm.YesSelected)

	m, _ = send(t, m, "enter")
	require.Equal(t, stateResult, m.state)
	assert.Contains(t, m.View(), "Deletion cancelled.")
	_, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)

	m, _ = send(t, m, "x")
	m, _ = choose(t, m, "Delete a product")
	m, _ = send(t, m, "enter", "left", "enter")
	require.NoError(t, m.err)
	assert.Contains(t, m.View(), `Product "Widget" deleted successfully!`)

	_, err = svc.GetProduct(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestViewProducts_Vacio(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = choose(t, m, "View all products")
	require.Equal(t, stateResult, m.state)
	assert.Contains(t, m.View(), "No products found.")
	assert.Contains(t, m.View(), "Press any key to return to the menu")
}

func TestViewLowInventory_UmbralPorDefecto(t *testing.T) {
	m, svc := newTestModel(t)
	seed(t, svc)
	_, err := svc.RecordSale(context.Background(), 1, 17)
	require.NoError(t, err)

	m, _ = choose(t, m, "View low inventory")
	require.Equal(t, stateForm, m.state)
	assert.Equal(t, "5", m.form.values()["threshold"])

	m, _ = send(t, m, "enter")
	require.NoError(t, m.err)
	view := m.View()
	assert.Contains(t, view, "Low Inventory Products (quantity < 5)")
	assert.Contains(t, view, "Widget")
}

func TestFindProduct_NoExiste(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = choose(t, m, "Find a product")
	m, _ = send(t, m, "42", "enter")
	require.Equal(t, stateResult, m.state)
	assert.ErrorIs(t, m.err, domain.ErrNotFound)
	assert.Contains(t, m.View(), "product 42 not found")
}

func TestFormulario_EscVuelveAlMenu(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = choose(t, m, "Add a supplier")
	m, _ = send(t, m, "esc")
	assert.Equal(t, stateMenu, m.state)
	assert.Nil(t, m.form)
}

func TestExit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := choose(t, m, "Exit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Contains(t, m.View(), Farewell)
}
