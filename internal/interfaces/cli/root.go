package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/interfaces/render"
	"github.com/jhoicas/inventario-cli/internal/interfaces/tui"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// app estado compartido por los comandos de una ejecución.
type app struct {
	open Opener
	opts Options
}

// NewRootCommand arma el árbol de comandos. Sin subcomando abre el shell interactivo.
func NewRootCommand(open Opener) *cobra.Command {
	return newRoot(&app{open: open})
}

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "inventario",
		Short: "Inventory Management System",
		Long: `Manage products, suppliers and stock levels stored in PostgreSQL.

Run without a subcommand to open the interactive menu, or use the
products, suppliers and schema commands from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          a.runShell,
	}

	root.PersistentFlags().StringVar(&a.opts.EnvFile, "env-file", "", "Load environment variables from this file")
	root.PersistentFlags().StringVar(&a.opts.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.opts.JSON, "json", false, "Output in JSON format")

	root.AddCommand(
		&cobra.Command{
			Use:   "shell",
			Short: "Open the interactive menu",
			Args:  cobra.NoArgs,
			RunE:  a.runShell,
		},
		newProductsCommand(a),
		newSuppliersCommand(a),
		newSchemaCommand(a),
	)
	return root
}

// Run ejecuta el CLI y devuelve el código de salida. Los errores se imprimen en una
// sola línea (o como dto.ErrorResponse con --json).
func Run(ctx context.Context, open Opener, args []string, stdout, stderr io.Writer) int {
	a := &app{open: open}
	root := newRoot(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if a.opts.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(dto.ErrorResponse{Code: errorCode(err), Message: err.Error()})
	} else {
		fmt.Fprintln(stderr, render.Failure(err))
	}
	return 1
}

// withSession abre la sesión, ejecuta fn y la cierra.
func (a *app) withSession(cmd *cobra.Command, fn func(ctx context.Context, sess *Session, out printer) error) error {
	ctx := cmd.Context()
	sess, err := a.open(ctx, a.opts)
	if err != nil {
		return err
	}
	if sess.Close != nil {
		defer sess.Close()
	}
	if sess.Log == nil {
		sess.Log = logger.Nop()
	}
	return fn(ctx, sess, printer{w: cmd.OutOrStdout(), json: a.opts.JSON, lowStock: sess.LowStockThreshold})
}

func (a *app) runShell(cmd *cobra.Command, _ []string) error {
	return a.withSession(cmd, func(ctx context.Context, sess *Session, out printer) error {
		cfg := tui.Config{LowStockThreshold: sess.LowStockThreshold}
		if err := tui.Run(ctx, sess.Store, cfg, sess.Log); err != nil {
			return fmt.Errorf("shell: %w", err)
		}
		fmt.Fprintln(out.w, tui.Farewell)
		return nil
	})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrReferentialIntegrity):
		return "referential_integrity"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrConnectivity):
		return "connectivity"
	default:
		return "internal"
	}
}
