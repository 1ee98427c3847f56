package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
)

// VendedorTxRunner ejecuta una función dentro de una transacción con un repositorio atado a ella.
// Si fn devuelve error se hace rollback.
type VendedorTxRunner interface {
	RunVendedor(ctx context.Context, fn func(repo repository.VendedorRepository) error) error
}

// VendedorReportGenerator genera el informe PDF del listado de vendedores.
type VendedorReportGenerator interface {
	GenerateVendedoresPDF(ctx context.Context, vendedores []*entity.Vendedor, generatedAt time.Time) ([]byte, error)
}
