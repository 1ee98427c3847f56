package repository

import (
	"context"

	"github.com/jhoicas/vendedores-api/internal/domain/entity"
)

// VendedorRepository define el puerto de persistencia para Vendedor (DIP).
//
// GetByID y GetByNIF devuelven (nil, nil) si no hay registro.
// Create y Update devuelven domain.ErrDuplicate si el NIF viola la restricción única;
// Update y Delete devuelven domain.ErrNotFound si el id no existe.
type VendedorRepository interface {
	Create(ctx context.Context, v *entity.Vendedor) error
	GetByID(ctx context.Context, id int64) (*entity.Vendedor, error)
	GetByNIF(ctx context.Context, nif string) (*entity.Vendedor, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Vendedor, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, v *entity.Vendedor) error
	Delete(ctx context.Context, id int64) error
}
