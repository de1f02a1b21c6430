package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/inventario-cli/internal/application/inventory"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-cli/pkg/config"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

// Options flags globales del CLI.
type Options struct {
	EnvFile  string
	LogLevel string
	JSON     bool
}

// Session dependencias que un comando necesita, ya construidas.
type Session struct {
	Store             inventory.Store
	Log               *logger.Logger
	LowStockThreshold int
	// ApplySchema es nil cuando el backend no es PostgreSQL.
	ApplySchema func(ctx context.Context) error
	Close       func()
}

// Opener construye la sesión de un comando. En producción es OpenPostgres;
// los tests inyectan un store en memoria.
type Opener func(ctx context.Context, opts Options) (*Session, error)

// OpenPostgres carga la configuración, abre el log y el pool y arma el servicio.
func OpenPostgres(ctx context.Context, opts Options) (*Session, error) {
	var envFiles []string
	if opts.EnvFile != "" {
		envFiles = append(envFiles, opts.EnvFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	var out io.Writer
	var logFile *os.File
	if cfg.Log.File != "" {
		logFile, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("abrir log %s: %w", cfg.Log.File, err)
		}
		out = logFile
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   out,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, err
	}

	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	svc := inventory.NewService(productRepo, supplierRepo, txRunner, cfg.Store.QueryTimeout, log)

	return &Session{
		Store:             svc,
		Log:               log,
		LowStockThreshold: cfg.Store.LowStockThreshold,
		ApplySchema: func(ctx context.Context) error {
			return postgres.ApplySchema(ctx, pool)
		},
		Close: func() {
			pool.Close()
			log.Info().Msg("pool cerrado")
			if logFile != nil {
				_ = logFile.Close()
			}
		},
	}, nil
}
