package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/vendedores-api/internal/domain"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
)

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

const vendedorColumns = `id, nombre, nif, fecha_nac, sexo, sueldo_base, created_at, updated_at`

// VendedorRepo implementación de VendedorRepository sobre SQLite (usable con db o tx).
// Fechas y decimales se guardan como TEXT.
type VendedorRepo struct {
	q DBTX
}

// NewVendedorRepository construye el adaptador.
func NewVendedorRepository(q DBTX) *VendedorRepo {
	return &VendedorRepo{q: q}
}

// Create persiste un nuevo vendedor y asigna su ID.
func (r *VendedorRepo) Create(ctx context.Context, v *entity.Vendedor) error {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO vendedor (nombre, nif, fecha_nac, sexo, sueldo_base, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.Name, v.NIF, v.BirthDate.Format(vendedor.DateLayout), v.Sex, v.BaseSalary.StringFixed(2),
		formatTime(v.CreatedAt), formatTime(v.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendedor: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert vendedor: last insert id: %w", err)
	}
	v.ID = id
	return nil
}

// GetByID obtiene un vendedor por ID.
func (r *VendedorRepo) GetByID(ctx context.Context, id int64) (*entity.Vendedor, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+vendedorColumns+` FROM vendedor WHERE id = ?`, id)
	v, err := scanVendedor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor: %w", err)
	}
	return v, nil
}

// GetByNIF obtiene un vendedor por NIF.
func (r *VendedorRepo) GetByNIF(ctx context.Context, nif string) (*entity.Vendedor, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+vendedorColumns+` FROM vendedor WHERE nif = ?`, nif)
	v, err := scanVendedor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendedor by nif: %w", err)
	}
	return v, nil
}

// List lista vendedores ordenados por nombre (empates por orden de inserción).
func (r *VendedorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendedor, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+vendedorColumns+` FROM vendedor ORDER BY nombre, id LIMIT ? OFFSET ?`, limit, offset)
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
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM vendedor`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count vendedores: %w", err)
	}
	return n, nil
}

// Update reemplaza los campos editables del vendedor.
func (r *VendedorRepo) Update(ctx context.Context, v *entity.Vendedor) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE vendedor
		SET nombre = ?, nif = ?, fecha_nac = ?, sexo = ?, sueldo_base = ?, updated_at = ?
		WHERE id = ?`,
		v.Name, v.NIF, v.BirthDate.Format(vendedor.DateLayout), v.Sex, v.BaseSalary.StringFixed(2),
		formatTime(v.UpdatedAt), v.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vendedor: %w", err)
	}
	return requireAffected(res)
}

// Delete elimina un vendedor por ID (borrado físico).
func (r *VendedorRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM vendedor WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete vendedor: %w", err)
	}
	return requireAffected(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVendedor(s scanner) (*entity.Vendedor, error) {
	var (
		v                entity.Vendedor
		birth, salary    string
		created, updated string
	)
	if err := s.Scan(&v.ID, &v.Name, &v.NIF, &birth, &v.Sex, &salary, &created, &updated); err != nil {
		return nil, err
	}
	var err error
	if v.BirthDate, err = time.Parse(vendedor.DateLayout, birth); err != nil {
		return nil, fmt.Errorf("fecha_nac %q: %w", birth, err)
	}
	if v.BaseSalary, err = decimal.NewFromString(salary); err != nil {
		return nil, fmt.Errorf("sueldo_base %q: %w", salary, err)
	}
	if v.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("created_at %q: %w", created, err)
	}
	if v.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("updated_at %q: %w", updated, err)
	}
	return &v, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueViolation verifica si un error es SQLITE_CONSTRAINT_UNIQUE (2067).
func isUniqueViolation(err error) bool {
	var sqErr *sqlitedrv.Error
	if errors.As(err, &sqErr) && sqErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
