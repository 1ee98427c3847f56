package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
)

const reportBatchSize = 200

// ReportUseCase genera el informe PDF con todos los vendedores.
type ReportUseCase struct {
	repo      repository.VendedorRepository
	generator VendedorReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.VendedorRepository, generator VendedorReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator, now: time.Now}
}

// VendedoresPDF recorre el listado completo en lotes y genera el PDF.
// Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ReportUseCase) VendedoresPDF(ctx context.Context) ([]byte, string, error) {
	var all []*entity.Vendedor
	for offset := 0; ; offset += reportBatchSize {
		batch, err := uc.repo.List(ctx, reportBatchSize, offset)
		if err != nil {
			return nil, "", fmt.Errorf("informe: listar vendedores: %w", err)
		}
		all = append(all, batch...)
		if len(batch) < reportBatchSize {
			break
		}
	}

	now := uc.now()
	out, err := uc.generator.GenerateVendedoresPDF(ctx, all, now)
	if err != nil {
		return nil, "", fmt.Errorf("informe: generación fallida: %w", err)
	}
	return out, fmt.Sprintf("vendedores_%s.pdf", now.Format("20060102")), nil
}
