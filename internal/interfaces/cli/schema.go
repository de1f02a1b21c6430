package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func newSchemaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Database schema bootstrap",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "apply",
		Short: "Create the suppliers and products tables if they do not exist",
		Long: `Create the suppliers and products tables if they do not exist.
Safe to run more than once. This is not a migration tool.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
				if sess.ApplySchema == nil {
					return errors.New("schema apply requires a PostgreSQL store")
				}
				if err := sess.ApplySchema(ctx); err != nil {
					return err
				}
				sess.Log.Info().Msg("esquema aplicado")
				return out.success("Schema applied.")
			})
		},
	})
	return cmd
}
