package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/vendedores-api/internal/application/usecase"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
)

var _ usecase.VendedorTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
// Dentro de fn solo debe usarse el repositorio recibido: con una única conexión,
// cualquier consulta por fuera de la tx quedaría bloqueada.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunVendedor inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) RunVendedor(ctx context.Context, fn func(repo repository.VendedorRepository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewVendedorRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
