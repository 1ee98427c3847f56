package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vendedores-api/internal/domain"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
)

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

const vendedorColumns = `id, nombre, nif, fecha_nac, sexo, sueldo_base, created_at, updated_at`

// VendedorRepo implementación de VendedorRepository (usable con pool o tx).
type VendedorRepo struct {
	q Querier
}

// NewVendedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendedorRepository(q Querier) *VendedorRepo {
	return &VendedorRepo{q: q}
}

// Create persiste un nuevo vendedor y asigna su ID.
func (r *VendedorRepo) Create(ctx context.Context, v *entity.Vendedor) error {
	query := `
		INSERT INTO vendedor (nombre, nif, fecha_nac, sexo, sueldo_base, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		v.Name, v.NIF, v.BirthDate, v.Sex, v.BaseSalary, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendedor: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID.
func (r *VendedorRepo) GetByID(ctx context.Context, id int64) (*entity.Vendedor, error) {
	query := `SELECT ` + vendedorColumns + ` FROM vendedor WHERE id = $1`
	v, err := scanVendedor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor: %w", err)
	}
	return v, nil
}

// GetByNIF obtiene un vendedor por NIF.
func (r *VendedorRepo) GetByNIF(ctx context.Context, nif string) (*entity.Vendedor, error) {
	query := `SELECT ` + vendedorColumns + ` FROM vendedor WHERE nif = $1`
	v, err := scanVendedor(r.q.QueryRow(ctx, query, nif))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor by nif: %w", err)
	}
	return v, nil
}

// List lista vendedores ordenados por nombre (empates por orden de inserción).
func (r *VendedorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendedor, error) {
	query := `SELECT ` + vendedorColumns + ` FROM vendedor ORDER BY nombre, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendedores: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Vendedor, 0, limit)
	for rows.Next() {
		v, err := scanVendedor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendedor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Count total de vendedores.
func (r *VendedorRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM vendedor`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count vendedores: %w", err)
	}
	return n, nil
}

// Update reemplaza los campos editables del vendedor.
func (r *VendedorRepo) Update(ctx context.Context, v *entity.Vendedor) error {
	query := `
		UPDATE vendedor
		SET nombre = $2, nif = $3, fecha_nac = $4, sexo = $5, sueldo_base = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.NIF, v.BirthDate, v.Sex, v.BaseSalary, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vendedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vendedor por ID (borrado físico).
func (r *VendedorRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM vendedor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVendedor(row pgx.Row) (*entity.Vendedor, error) {
	var v entity.Vendedor
	if err := row.Scan(
		&v.ID, &v.Name, &v.NIF, &v.BirthDate, &v.Sex, &v.BaseSalary, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
