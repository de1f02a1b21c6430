package postgres

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// Schema devuelve el DDL base (suppliers, products).
func Schema() string {
	return schemaSQL
}

// ApplySchema crea las tablas si no existen. No es una herramienta de migraciones:
// solo deja lista una base vacía.
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return classify("apply schema", err)
	}
	return nil
}
