package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/application/input"
	"github.com/jhoicas/inventario-cli/internal/application/inventory"
	"github.com/jhoicas/inventario-cli/internal/interfaces/render"
)

// Datos que una acción necesita cargar antes de armar su formulario.
const (
	loadProducts = 1 << iota
	loadSuppliers
)

type options struct {
	products  []dto.ProductResponse
	suppliers []dto.SupplierResponse
}

// outcome resultado presentable de una operación.
type outcome struct {
	title   string
	body    string
	message string
	warning string
}

type operation func(ctx context.Context, store inventory.Store) (outcome, error)

// action entrada del menú: qué cargar, qué preguntar y qué ejecutar.
type action struct {
	title           string
	description     string
	load            int
	requireProducts bool
	exit            bool
	fields          func(opts options) []field
	confirm         string
	prepare         func(v input.Values) (operation, error)
}

func newActions(threshold int) []*action {
	return []*action{
		{
			title:       "View all products",
			description: "List every product with its supplier",
			prepare: func(input.Values) (operation, error) {
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					items, err := store.ListProducts(ctx)
					if err != nil {
						return outcome{}, err
					}
					return productsOutcome("All Products", "No products found.", items, threshold), nil
				}, nil
			},
		},
		{
			title:       "View low inventory",
			description: "Products below a quantity threshold",
			fields: func(options) []field {
				return []field{newTextField(input.FieldThreshold, "Threshold", "5", strconv.Itoa(threshold))}
			},
			prepare: func(v input.Values) (operation, error) {
				limit, err := input.Threshold(v[input.FieldThreshold])
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					items, err := store.ListLowStock(ctx, limit)
					if err != nil {
						return outcome{}, err
					}
					title := fmt.Sprintf("Low Inventory Products (quantity < %d)", limit)
					return productsOutcome(title, "No low inventory items found.", items, limit), nil
				}, nil
			},
		},
		{
			title:       "View all suppliers",
			description: "List every supplier",
			prepare: func(input.Values) (operation, error) {
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					items, err := store.ListSuppliers(ctx)
					if err != nil {
						return outcome{}, err
					}
					if len(items) == 0 {
						return outcome{warning: "No suppliers found."}, nil
					}
					return outcome{title: "All Suppliers", body: render.Suppliers(items)}, nil
				}, nil
			},
		},
		{
			title:       "Add a product",
			description: "Create a product, optionally linked to a supplier",
			load:        loadSuppliers,
			fields: func(opts options) []field {
				return []field{
					newTextField(input.FieldName, "Product name", "", ""),
					newTextField(input.FieldCategory, "Category", "", ""),
					newTextField(input.FieldPrice, "Price", "0.00", ""),
					newTextField(input.FieldQuantity, "Initial quantity", "0", "0"),
					newChoiceField(input.FieldSupplier, "Supplier", supplierChoices("No supplier", opts.suppliers)),
				}
			},
			prepare: func(v input.Values) (operation, error) {
				req, err := input.CreateProduct(v)
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					p, err := store.CreateProduct(ctx, req)
					if err != nil {
						return outcome{}, err
					}
					return outcome{message: fmt.Sprintf("Product %q added successfully! (ID: %d)", p.Name, p.ID)}, nil
				}, nil
			},
		},
		{
			title:       "Add a supplier",
			description: "Register a new supplier",
			fields: func(options) []field {
				return []field{
					newTextField(input.FieldName, "Supplier name", "", ""),
					newTextField(input.FieldEmail, "Email", "optional", ""),
					newTextField(input.FieldPhone, "Phone", "optional", ""),
				}
			},
			prepare: func(v input.Values) (operation, error) {
				req, err := input.CreateSupplier(v)
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					s, err := store.CreateSupplier(ctx, req)
					if err != nil {
						return outcome{}, err
					}
					return outcome{message: fmt.Sprintf("Supplier %q added successfully! (ID: %d)", s.Name, s.ID)}, nil
				}, nil
			},
		},
		{
			title:           "Restock a product",
			description:     "Increase the quantity of a product",
			load:            loadProducts,
			requireProducts: true,
			fields: func(opts options) []field {
				return []field{
					newChoiceField(input.FieldProduct, "Product", productChoices(opts.products, func(p dto.ProductResponse) string {
						return fmt.Sprintf("%s (Current: %d)", p.Name, p.Quantity)
					})),
					newTextField(input.FieldAmount, "Quantity to add", "", ""),
				}
			},
			prepare: func(v input.Values) (operation, error) {
				id, amount, err := input.StockChange(v)
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					p, err := store.Restock(ctx, id, amount)
					if err != nil {
						return outcome{}, err
					}
					return outcome{message: fmt.Sprintf("Restocked %q. New quantity: %d", p.Name, p.Quantity)}, nil
				}, nil
			},
		},
		{
			title:           "Record a sale",
			description:     "Decrease the quantity of a product",
			load:            loadProducts,
			requireProducts: true,
			fields: func(opts options) []field {
				return []field{
					newChoiceField(input.FieldProduct, "Product", productChoices(opts.products, func(p dto.ProductResponse) string {
						return fmt.Sprintf("%s (Available: %d)", p.Name, p.Quantity)
					})),
					newTextField(input.FieldAmount, "Quantity sold", "", ""),
				}
			},
			prepare: func(v input.Values) (operation, error) {
				id, amount, err := input.StockChange(v)
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					p, err := store.RecordSale(ctx, id, amount)
					if err != nil {
						return outcome{}, err
					}
					return outcome{message: fmt.Sprintf("Sold %d of %q. Remaining quantity: %d", amount, p.Name, p.Quantity)}, nil
				}, nil
			},
		},
		{
			title:           "Update a product",
			description:     "Change price, category or supplier",
			load:            loadProducts | loadSuppliers,
			requireProducts: true,
			fields: func(opts options) []field {
				return []field{
					newChoiceField(input.FieldProduct, "Product", productChoices(opts.products, func(p dto.ProductResponse) string {
						return fmt.Sprintf("%s ($%s)", p.Name, render.Price(p))
					})),
					newTextField(input.FieldPrice, "New price", "leave blank to keep current", ""),
					newTextField(input.FieldCategory, "New category", "leave blank to keep current", ""),
					newChoiceField(input.FieldSupplier, "Supplier", supplierChoices("Keep current supplier", opts.suppliers)),
				}
			},
			prepare: func(v input.Values) (operation, error) {
				id, err := input.ID(input.FieldProduct, v[input.FieldProduct])
				if err != nil {
					return nil, err
				}
				req, err := input.UpdateProduct(v)
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					p, err := store.UpdateProduct(ctx, id, req)
					if err != nil {
						return outcome{}, err
					}
					return outcome{
						message: fmt.Sprintf("Product %q updated successfully!", p.Name),
						body:    render.Products([]dto.ProductResponse{*p}, threshold),
					}, nil
				}, nil
			},
		},
		{
			title:           "Delete a product",
			description:     "Remove a product permanently",
			load:            loadProducts,
			requireProducts: true,
			confirm:         "Are you sure you want to delete this product?",
			fields: func(opts options) []field {
				return []field{
					newChoiceField(input.FieldProduct, "Product", productChoices(opts.products, func(p dto.ProductResponse) string {
						return fmt.Sprintf("%s (Qty: %d)", p.Name, p.Quantity)
					})),
				}
			},
			prepare: func(v input.Values) (operation, error) {
				id, err := input.ID(input.FieldProduct, v[input.FieldProduct])
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					p, err := store.DeleteProduct(ctx, id)
					if err != nil {
						return outcome{}, err
					}
					return outcome{
						message: fmt.Sprintf("Product %q deleted successfully!", p.Name),
						body:    render.Products([]dto.ProductResponse{*p}, threshold),
					}, nil
				}, nil
			},
		},
		{
			title:       "Find a product",
			description: "Look up a product by ID",
			fields: func(options) []field {
				return []field{newTextField(input.FieldProduct, "Product ID", "", "")}
			},
			prepare: func(v input.Values) (operation, error) {
				id, err := input.ID(input.FieldProduct, v[input.FieldProduct])
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					p, err := store.GetProduct(ctx, id)
					if err != nil {
						return outcome{}, err
					}
					return outcome{title: "Product", body: render.Products([]dto.ProductResponse{*p}, threshold)}, nil
				}, nil
			},
		},
		{
			title:       "Find a supplier",
			description: "Look up a supplier by ID",
			fields: func(options) []field {
				return []field{newTextField(input.FieldSupplier, "Supplier ID", "", "")}
			},
			prepare: func(v input.Values) (operation, error) {
				id, err := input.ID(input.FieldSupplier, v[input.FieldSupplier])
				if err != nil {
					return nil, err
				}
				return func(ctx context.Context, store inventory.Store) (outcome, error) {
					s, err := store.GetSupplier(ctx, id)
					if err != nil {
						return outcome{}, err
					}
					return outcome{title: "Supplier", body: render.Suppliers([]dto.SupplierResponse{*s})}, nil
				}, nil
			},
		},
		{
			title:       "Exit",
			description: "Quit the program",
			exit:        true,
		},
	}
}

func productsOutcome(title, empty string, items []dto.ProductResponse, lowStock int) outcome {
	if len(items) == 0 {
		return outcome{warning: empty}
	}
	return outcome{title: title, body: render.Products(items, lowStock)}
}

func productChoices(items []dto.ProductResponse, label func(dto.ProductResponse) string) []choice {
	out := make([]choice, 0, len(items))
	for _, p := range items {
		out = append(out, choice{label: label(p), value: strconv.FormatInt(p.ID, 10)})
	}
	return out
}

// supplierChoices antepone la opción vacía (sin proveedor o sin cambio).
func supplierChoices(none string, items []dto.SupplierResponse) []choice {
	out := make([]choice, 0, len(items)+1)
	out = append(out, choice{label: none})
	for _, s := range items {
		out = append(out, choice{label: s.Name, value: strconv.FormatInt(s.ID, 10)})
	}
	return out
}
