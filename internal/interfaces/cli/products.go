package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-cli/internal/application/input"
)

func newProductsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products and stock",
		Long: `Manage products and their stock levels.

Subcommands:
  list     - List all products
  low      - List products below a quantity threshold
  get      - Show one product
  add      - Create a product
  restock  - Increase stock
  sell     - Record a sale
  update   - Change price, category or supplier
  delete   - Remove a product`,
	}

	cmd.AddCommand(
		productsListCommand(a),
		productsLowCommand(a),
		productsGetCommand(a),
		productsAddCommand(a),
		productsStockCommand(a, "restock", "Increase the quantity of a product"),
		productsStockCommand(a, "sell", "Record a sale, decreasing the quantity of a product"),
		productsUpdateCommand(a),
		productsDeleteCommand(a),
	)
	return cmd
}

func productsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				items, err := sess.Store.ListProducts(ctx)
				if err != nil {
					return err
				}
				return out.products(items, "No products found.")
			})
		},
	}
}

func productsLowCommand(a *app) *cobra.Command {
	var threshold string
	cmd := &cobra.Command{
		Use:   "low",
		Short: "List products below a quantity threshold",
		Long: `List products whose quantity is strictly below the threshold,
lowest quantity first.

Examples:
  inventario products low                 # Threshold from LOW_STOCK_THRESHOLD (default 5)
  inventario products low --threshold 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				raw := threshold
				if raw == "" {
					raw = strconv.Itoa(sess.LowStockThreshold)
				}
				limit, err := input.Threshold(raw)
				if err != nil {
					return err
				}
				items, err := sess.Store.ListLowStock(ctx, limit)
				if err != nil {
					return err
				}
				out.lowStock = limit
				return out.products(items, "No low inventory items found.")
			})
		},
	}
	cmd.Flags().StringVar(&threshold, "threshold", "", "Quantity threshold")
	return cmd
}

func productsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := input.ID(input.FieldProduct, args[0])
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				p, err := sess.Store.GetProduct(ctx, id)
				if err != nil {
					return err
				}
				return out.product(p, "")
			})
		},
	}
}

func productsAddCommand(a *app) *cobra.Command {
	var name, category, price, quantity, supplier string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		Long: `Create a product, optionally linked to an existing supplier.

Examples:
  inventario products add --name Widget --category Tools --price 9.99 --quantity 20 --supplier 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := input.CreateProduct(input.Values{
				input.FieldName:     name,
				input.FieldCategory: category,
				input.FieldPrice:    price,
				input.FieldQuantity: quantity,
				input.FieldSupplier: supplier,
			})
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				p, err := sess.Store.CreateProduct(ctx, req)
				if err != nil {
					return err
				}
				return out.product(p, fmt.Sprintf("Product %q added successfully! (ID: %d)", p.Name, p.ID))
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&category, "category", "", "Product category")
	cmd.Flags().StringVar(&price, "price", "", "Unit price")
	cmd.Flags().StringVar(&quantity, "quantity", "", "Initial quantity (default 0)")
	cmd.Flags().StringVar(&supplier, "supplier", "", "Supplier ID")
	return cmd
}

// productsStockCommand arma restock y sell, que comparten argumentos.
func productsStockCommand(a *app, use, short string) *cobra.Command {
	var amount string
	cmd := &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, qty, err := input.StockChange(input.Values{
				input.FieldProduct: args[0],
				input.FieldAmount:  amount,
			})
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				if use == "restock" {
					p, err := sess.Store.Restock(ctx, id, qty)
					if err != nil {
						return err
					}
					return out.product(p, fmt.Sprintf("Restocked %q. New quantity: %d", p.Name, p.Quantity))
				}
				p, err := sess.Store.RecordSale(ctx, id, qty)
				if err != nil {
					return err
				}
				return out.product(p, fmt.Sprintf("Sold %d of %q. Remaining quantity: %d", qty, p.Name, p.Quantity))
			})
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Quantity (positive integer)")
	return cmd
}

func productsUpdateCommand(a *app) *cobra.Command {
	var price, category, supplier string
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change price, category or supplier",
		Long: `Update a product. Flags left out keep the stored value.

Examples:
  inventario products update 1 --price 12.50
  inventario products update 1 --category Hardware --supplier 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := input.ID(input.FieldProduct, args[0])
			if err != nil {
				return err
			}
			req, err := input.UpdateProduct(input.Values{
				input.FieldPrice:    price,
				input.FieldCategory: category,
				input.FieldSupplier: supplier,
			})
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				p, err := sess.Store.UpdateProduct(ctx, id, req)
				if err != nil {
					return err
				}
				return out.product(p, fmt.Sprintf("Product %q updated successfully!", p.Name))
			})
		},
	}
	cmd.Flags().StringVar(&price, "price", "", "New unit price")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&supplier, "supplier", "", "New supplier ID")
	return cmd
}

func productsDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := input.ID(input.FieldProduct, args[0])
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				p, err := sess.Store.DeleteProduct(ctx, id)
				if err != nil {
					return err
				}
				return out.product(p, fmt.Sprintf("Product %q deleted successfully!", p.Name))
			})
		},
	}
}
