package apiclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/application/usecase"
	"github.com/jhoicas/vendedores-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vendedores-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/vendedores-api/internal/interfaces/http"
	"github.com/jhoicas/vendedores-api/pkg/apiclient"
	"github.com/jhoicas/vendedores-api/pkg/logger"
)

// newServer levanta la API real sobre SQLite en memoria detrás de httptest.
func newServer(t *testing.T) *apiclient.Client {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewVendedorRepository(db)
	log := logger.NewWithWriter(io.Discard, "error")
	app := apphttp.NewApp(apphttp.AppConfig{Name: "apiclient-test"}, log)
	require.NoError(t, apphttp.Router(app, apphttp.RouterDeps{
		VendedorUC: usecase.NewVendedorUseCase(repo, sqlite.NewTxRunner(db), usecase.PageConfig{DefaultPerPage: 10, MaxPerPage: 100}),
		ReportUC:   usecase.NewReportUseCase(repo, pdf.NewMarotoPDFGenerator("apiclient-test")),
		Log:        log,
	}))

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL+"/api/", apiclient.WithTimeout(5*time.Second))
}

func anaPerez() dto.VendedorRequest {
	return dto.VendedorRequest{
		Name:       "Ana Pérez",
		NIF:        "12345678A",
		BirthDate:  "1990-05-15",
		Sex:        "F",
		BaseSalary: "1500.50",
	}
}

func TestClient_CRUD(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	created, err := c.Create(ctx, anaPerez())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "1500.50", created.BaseSalary)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.NIF, got.NIF)

	in := anaPerez()
	in.Name = "Ana María"
	updated, err := c.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)

	page, err := c.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Data, 1)

	require.NoError(t, c.Delete(ctx, created.ID))
	assert.ErrorIs(t, c.Delete(ctx, created.ID), apiclient.ErrNotFound)

	_, err = c.Get(ctx, created.ID)
	assert.ErrorIs(t, err, apiclient.ErrNotFound)
}

func TestClient_ErrorDeValidacion(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	_, err := c.Create(ctx, anaPerez())
	require.NoError(t, err)

	_, err = c.Create(ctx, anaPerez())
	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.NotEmpty(t, apiErr.Errors["nif"])
}

func TestClient_ReglasEInforme(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	rules, err := c.Rules(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "F", "O"}, rules.Sexes)
	assert.NotEmpty(t, rules.Rules)

	out, err := c.ReportPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestClient_ErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := apiclient.New(url + "/api")
	_, err := c.List(context.Background(), 0, 0)
	var netErr *apiclient.NetworkError
	assert.True(t, errors.As(err, &netErr), "se esperaba NetworkError, se obtuvo %v", err)
}
