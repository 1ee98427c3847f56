package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendedores-api/internal/domain"
	"github.com/jhoicas/vendedores-api/internal/domain/entity"
	"github.com/jhoicas/vendedores-api/internal/domain/repository"
	"github.com/jhoicas/vendedores-api/internal/infrastructure/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newVendedor(name, nif string) *entity.Vendedor {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &entity.Vendedor{
		Name:       name,
		NIF:        nif,
		BirthDate:  time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Sex:        entity.SexFemale,
		BaseSalary: decimal.RequireFromString("1500.50"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := sqlite.NewVendedorRepository(setupDB(t))
	ctx := context.Background()

	v := newVendedor("Ana Pérez", "12345678A")
	require.NoError(t, repo.Create(ctx, v))
	assert.NotZero(t, v.ID)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, v.Name, got.Name)
	assert.Equal(t, v.NIF, got.NIF)
	assert.True(t, v.BirthDate.Equal(got.BirthDate))
	assert.Equal(t, v.Sex, got.Sex)
	assert.Equal(t, "1500.50", got.BaseSalary.StringFixed(2))
	assert.True(t, v.CreatedAt.Equal(got.CreatedAt))

	byNIF, err := repo.GetByNIF(ctx, "12345678A")
	require.NoError(t, err)
	require.NotNil(t, byNIF)
	assert.Equal(t, v.ID, byNIF.ID)
}

func TestGet_NoExiste(t *testing.T) {
	repo := sqlite.NewVendedorRepository(setupDB(t))
	ctx := context.Background()

	got, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByNIF(ctx, "00000000T")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreate_NIFDuplicado(t *testing.T) {
	repo := sqlite.NewVendedorRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newVendedor("Ana", "12345678A")))
	err := repo.Create(ctx, newVendedor("Otra Ana", "12345678A"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate(t *testing.T) {
	repo := sqlite.NewVendedorRepository(setupDB(t))
	ctx := context.Background()

	a := newVendedor("Ana", "11111111H")
	b := newVendedor("Bea", "22222222J")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Name = "Ana María"
	a.BaseSalary = decimal.RequireFromString("2000")
	require.NoError(t, repo.Update(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.Name)
	assert.Equal(t, "2000.00", got.BaseSalary.StringFixed(2))

	a.NIF = b.NIF
	assert.ErrorIs(t, repo.Update(ctx, a), domain.ErrDuplicate)

	ghost := newVendedor("Nadie", "33333333P")
	ghost.ID = 12345
	assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := sqlite.NewVendedorRepository(setupDB(t))
	ctx := context.Background()

	v := newVendedor("Ana", "12345678A")
	require.NoError(t, repo.Create(ctx, v))

	require.NoError(t, repo.Delete(ctx, v.ID))
	assert.ErrorIs(t, repo.Delete(ctx, v.ID), domain.ErrNotFound)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestList_OrdenPorNombreYEmpatePorInsercion(t *testing.T) {
	repo := sqlite.NewVendedorRepository(setupDB(t))
	ctx := context.Background()

	names := []string{"Carlos", "Ana", "Bea", "Ana"}
	for i, n := range names {
		require.NoError(t, repo.Create(ctx, newVendedor(n, fmt.Sprintf("%08dX", i))))
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	list, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Ana", list[1].Name)
	assert.Less(t, list[0].ID, list[1].ID, "empate por nombre se resuelve por orden de inserción")
	assert.Equal(t, "Bea", list[2].Name)
	assert.Equal(t, "Carlos", list[3].Name)

	page, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Bea", page[0].Name)
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	db := setupDB(t)
	runner := sqlite.NewTxRunner(db)
	ctx := context.Background()

	boom := fmt.Errorf("boom")
	err := runner.RunVendedor(ctx, func(repo repository.VendedorRepository) error {
		require.NoError(t, repo.Create(ctx, newVendedor("Ana", "12345678A")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := sqlite.NewVendedorRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "la inserción debe deshacerse")

	err = runner.RunVendedor(ctx, func(repo repository.VendedorRepository) error {
		return repo.Create(ctx, newVendedor("Ana", "12345678A"))
	})
	require.NoError(t, err)
	n, err = sqlite.NewVendedorRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
