package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-cli/internal/application/input"
)

func newSuppliersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suppliers",
		Aliases: []string{"supplier"},
		Short:   "Manage suppliers",
	}

	var name, email, phone string
	add := &cobra.Command{
		Use:   "add",
		Short: "Register a supplier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := input.CreateSupplier(input.Values{
				input.FieldName:  name,
				input.FieldEmail: email,
				input.FieldPhone: phone,
			})
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				s, err := sess.Store.CreateSupplier(ctx, req)
				if err != nil {
					return err
				}
				return out.supplier(s, fmt.Sprintf("Supplier %q added successfully! (ID: %d)", s.Name, s.ID))
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "Supplier name")
	add.Flags().StringVar(&email, "email", "", "Contact email")
	add.Flags().StringVar(&phone, "phone", "", "Contact phone")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all suppliers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
					items, err := sess.Store.ListSuppliers(ctx)
					if err != nil {
						return err
					}
					return out.suppliers(items)
				})
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one supplier",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := input.ID(input.FieldSupplier, args[0])
				if err != nil {
					return err
				}
				return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
					s, err := sess.Store.GetSupplier(ctx, id)
					if err != nil {
						return err
					}
					return out.supplier(s, "")
				})
			},
		},
		add,
	)
	return cmd
}
