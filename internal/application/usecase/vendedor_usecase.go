package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/domain"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
)

// PageConfig tamaños de página del listado.
type PageConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

// VendedorUseCase casos de uso CRUD para vendedores.
type VendedorUseCase struct {
	repo  repository.VendedorRepository
	tx    VendedorTxRunner
	pages PageConfig
	now   func() time.Time
}

// NewVendedorUseCase construye el caso de uso. repo se usa para lecturas y
// tx para las escrituras que consultan unicidad de NIF.
func NewVendedorUseCase(repo repository.VendedorRepository, tx VendedorTxRunner, pages PageConfig) *VendedorUseCase {
	if pages.DefaultPerPage <= 0 {
		pages.DefaultPerPage = 10
	}
	return &VendedorUseCase{repo: repo, tx: tx, pages: pages, now: time.Now}
}

// List devuelve una página del listado ordenado por nombre.
func (uc *VendedorUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.VendedorPage, error) {
	in.DefaultPage(uc.pages.DefaultPerPage, uc.pages.MaxPerPage)

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	page := &dto.VendedorPage{
		CurrentPage: in.Page,
		Data:        []dto.VendedorResponse{},
		LastPage:    dto.LastPage(total, in.PerPage),
		PerPage:     in.PerPage,
		Total:       total,
	}
	// Más allá de la última página no se consulta: (Page-1)*PerPage podría desbordar.
	if in.Page > page.LastPage {
		return page, nil
	}

	list, err := uc.repo.List(ctx, in.PerPage, in.Offset())
	if err != nil {
		return nil, err
	}
	for _, v := range list {
		page.Data = append(page.Data, *dto.ToVendedorResponse(v))
	}
	if n := len(list); n > 0 {
		from := in.Offset() + 1
		to := in.Offset() + n
		page.From, page.To = &from, &to
	}
	return page, nil
}

// GetByID obtiene un vendedor. domain.ErrNotFound si no existe.
func (uc *VendedorUseCase) GetByID(ctx context.Context, id int64) (*dto.VendedorResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToVendedorResponse(v), nil
}

// Create valida el candidato y lo persiste.
// Los errores de validación se devuelven como *domain.ValidationError.
func (uc *VendedorUseCase) Create(ctx context.Context, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	data, err := vendedor.Validate(in.Input())
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	v := &entity.Vendedor{CreatedAt: now, UpdatedAt: now}
	data.Apply(v)

	err = uc.tx.RunVendedor(ctx, func(repo repository.VendedorRepository) error {
		if err := ensureUniqueNIF(ctx, repo, v.NIF, 0); err != nil {
			return err
		}
		return repo.Create(ctx, v)
	})
	if err != nil {
		return nil, mapWriteError(err)
	}
	return dto.ToVendedorResponse(v), nil
}

// Update reemplaza los cinco campos editables de un vendedor existente.
// domain.ErrNotFound si no existe; el NIF propio no cuenta como duplicado.
func (uc *VendedorUseCase) Update(ctx context.Context, id int64, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	var v *entity.Vendedor
	err := uc.tx.RunVendedor(ctx, func(repo repository.VendedorRepository) error {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		data, err := vendedor.Validate(in.Input())
		if err != nil {
			return err
		}
		if err := ensureUniqueNIF(ctx, repo, data.NIF, id); err != nil {
			return err
		}
		data.Apply(current)
		current.UpdatedAt = uc.now().UTC()
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		v = current
		return nil
	})
	if err != nil {
		return nil, mapWriteError(err)
	}
	return dto.ToVendedorResponse(v), nil
}

// Delete elimina un vendedor. domain.ErrNotFound si no existe.
func (uc *VendedorUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Rules expone el contrato de validación.
func (uc *VendedorUseCase) Rules() dto.RulesResponse {
	return dto.RulesResponse{
		Fields:     vendedor.Fields,
		Sexes:      vendedor.Sexes,
		DateLayout: vendedor.DateFormat,
		Rules:      vendedor.Rules(),
	}
}

// ensureUniqueNIF falla con ValidationError si otro vendedor (id distinto de selfID) usa el NIF.
func ensureUniqueNIF(ctx context.Context, repo repository.VendedorRepository, nif string, selfID int64) error {
	other, err := repo.GetByNIF(ctx, nif)
	if err != nil {
		return fmt.Errorf("comprobar nif: %w", err)
	}
	if other != nil && other.ID != selfID {
		return duplicateNIF()
	}
	return nil
}

// mapWriteError convierte la violación de unicidad del almacén en error de validación.
func mapWriteError(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return duplicateNIF()
	}
	return err
}

func duplicateNIF() error {
	ve := domain.NewValidationError(nil)
	ve.Add(vendedor.FieldNIF, vendedor.UniqueMessage(vendedor.FieldNIF))
	return ve
}
