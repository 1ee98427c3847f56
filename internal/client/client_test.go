package client_test

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/client"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
	"github.com/jhoicas/vendedores-api/pkg/apiclient"
)

// fakeAPI API en memoria con hooks para forzar errores.
type fakeAPI struct {
	mu       sync.Mutex
	items    []dto.VendedorResponse
	nextID   int64
	calls    int
	listErr  error
	writeErr error
	block    chan struct{}
}

func newFakeAPI(n int) *fakeAPI {
	f := &fakeAPI{}
	for i := 0; i < n; i++ {
		f.nextID++
		f.items = append(f.items, dto.VendedorResponse{
			ID: f.nextID, Name: fmt.Sprintf("Vendedor %02d", i), NIF: fmt.Sprintf("%08dT", i),
			BirthDate: "1990-01-01", Sex: "M", BaseSalary: "1000.00",
		})
	}
	return f
}

func (f *fakeAPI) List(_ context.Context, page, perPage int) (*dto.VendedorPage, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(f.items) {
		start = len(f.items)
	}
	if end > len(f.items) {
		end = len(f.items)
	}
	return &dto.VendedorPage{
		CurrentPage: page,
		Data:        append([]dto.VendedorResponse(nil), f.items[start:end]...),
		LastPage:    dto.LastPage(len(f.items), perPage),
		PerPage:     perPage,
		Total:       len(f.items),
	}, nil
}

func (f *fakeAPI) find(id int64) int {
	for i, v := range f.items {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeAPI) Get(_ context.Context, id int64) (*dto.VendedorResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	i := f.find(id)
	if i < 0 {
		return nil, apiclient.ErrNotFound
	}
	v := f.items[i]
	return &v, nil
}

func (f *fakeAPI) Create(_ context.Context, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.nextID++
	v := dto.VendedorResponse{
		ID: f.nextID, Name: string(in.Name), NIF: string(in.NIF),
		BirthDate: string(in.BirthDate), Sex: string(in.Sex), BaseSalary: string(in.BaseSalary) + ".00",
	}
	f.items = append(f.items, v)
	return &v, nil
}

func (f *fakeAPI) Update(_ context.Context, id int64, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	i := f.find(id)
	if i < 0 {
		return nil, apiclient.ErrNotFound
	}
	f.items[i].Name = string(in.Name)
	f.items[i].NIF = string(in.NIF)
	v := f.items[i]
	return &v, nil
}

func (f *fakeAPI) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	i := f.find(id)
	if i < 0 {
		return apiclient.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

func validInput() vendedor.Input {
	return vendedor.Input{
		Name: "Ana Pérez", NIF: "12345678Z", BirthDate: "1990-05-15", Sex: "F", BaseSalary: "1500",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ListState
// ──────────────────────────────────────────────────────────────────────────────

func TestListState_CargarMasHastaAgotar(t *testing.T) {
	api := newFakeAPI(25)
	s := client.NewListState(api, 0)
	ctx := context.Background()

	require.NoError(t, s.LoadFirst(ctx))
	assert.Len(t, s.Items(), 10)
	assert.True(t, s.HasMore())
	assert.Equal(t, 25, s.Total())

	require.NoError(t, s.LoadMore(ctx))
	require.NoError(t, s.LoadMore(ctx))
	assert.Len(t, s.Items(), 25)
	assert.False(t, s.HasMore())

	assert.ErrorIs(t, s.LoadMore(ctx), client.ErrNoMorePages)
	assert.Equal(t, 3, api.calls)

	// refrescar reemplaza en lugar de acumular
	require.NoError(t, s.LoadFirst(ctx))
	assert.Len(t, s.Items(), 10)
}

func TestListState_Vacio(t *testing.T) {
	s := client.NewListState(newFakeAPI(0), 10)
	assert.False(t, s.Empty(), "sin cargar todavía no está vacío")

	require.NoError(t, s.LoadFirst(context.Background()))
	assert.True(t, s.Empty())
	assert.False(t, s.HasMore())
}

func TestListState_ErrorConservaElementos(t *testing.T) {
	api := newFakeAPI(15)
	s := client.NewListState(api, 10)
	ctx := context.Background()
	require.NoError(t, s.LoadFirst(ctx))

	netErr := &apiclient.NetworkError{Op: "GET /vendedores", Err: errors.New("connection refused")}
	api.listErr = netErr
	err := s.LoadMore(ctx)
	require.Error(t, err)
	assert.True(t, client.Retryable(err))
	assert.Equal(t, netErr, s.Err())
	assert.Len(t, s.Items(), 10)
	assert.True(t, s.HasMore())

	api.listErr = nil
	require.NoError(t, s.LoadMore(ctx))
	assert.Nil(t, s.Err())
	assert.Len(t, s.Items(), 15)
}

func TestListState_SegundaCargaConcurrenteDevuelveBusy(t *testing.T) {
	api := newFakeAPI(25)
	api.block = make(chan struct{})
	s := client.NewListState(api, 10)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- s.LoadFirst(ctx) }()

	require.Eventually(t, s.Busy, timeout, tick)
	assert.ErrorIs(t, s.LoadFirst(ctx), client.ErrBusy)
	assert.ErrorIs(t, s.LoadMore(ctx), client.ErrBusy)

	close(api.block)
	require.NoError(t, <-done)
	assert.False(t, s.Busy())
	assert.Len(t, s.Items(), 10)
}

func TestListState_CargarMasConcurrenteNoDuplicaPaginas(t *testing.T) {
	api := newFakeAPI(25)
	s := client.NewListState(api, 10)
	ctx := context.Background()
	require.NoError(t, s.LoadFirst(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				err := s.LoadMore(ctx)
				if errors.Is(err, client.ErrNoMorePages) {
					return
				}
				if err != nil && !errors.Is(err, client.ErrBusy) {
					t.Errorf("LoadMore: %v", err)
					return
				}
				runtime.Gosched()
			}
		}()
	}
	wg.Wait()

	items := s.Items()
	require.Len(t, items, 25)
	seen := make(map[int64]bool, len(items))
	for _, v := range items {
		assert.False(t, seen[v.ID], "id %d repetido", v.ID)
		seen[v.ID] = true
	}
	assert.Equal(t, 3, api.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Form
// ──────────────────────────────────────────────────────────────────────────────

func TestForm_ErroresLocalesNoEnvian(t *testing.T) {
	api := newFakeAPI(0)
	f := client.NewCreateForm()

	err := f.Submit(context.Background(), api)
	assert.ErrorIs(t, err, client.ErrInvalid)
	assert.Zero(t, api.calls)
	for _, field := range vendedor.Fields {
		assert.NotEmpty(t, f.FieldError(field), field)
	}
}

func TestForm_AltaUsaRespuestaDelServidor(t *testing.T) {
	api := newFakeAPI(0)
	f := client.NewCreateForm()
	f.Input = validInput()
	f.Input.NIF = " 12345678z "

	require.NoError(t, f.Submit(context.Background(), api))
	require.NotNil(t, f.Result)
	assert.Equal(t, int64(1), f.ID)
	assert.Equal(t, "12345678Z", f.Result.NIF)
	assert.Equal(t, "1500.00", f.Input.BaseSalary)
	assert.Empty(t, f.Warnings)
}

func TestForm_LetraDeControlEsAvisoNoBloqueante(t *testing.T) {
	api := newFakeAPI(0)
	f := client.NewCreateForm()
	f.Input = validInput()
	f.Input.NIF = "12345678A"

	require.NoError(t, f.Submit(context.Background(), api))
	assert.NotEmpty(t, f.Warnings[vendedor.FieldNIF])
	assert.Equal(t, 1, api.calls)
}

func TestForm_ErroresDelServidorPrevalecen(t *testing.T) {
	api := newFakeAPI(0)
	api.writeErr = &apiclient.APIError{
		Status:  422,
		Message: "Errores de validación",
		Errors:  map[string][]string{vendedor.FieldNIF: {"El NIF ya está registrado."}},
	}
	f := client.NewCreateForm()
	f.Input = validInput()

	err := f.Submit(context.Background(), api)
	assert.ErrorIs(t, err, client.ErrInvalid)
	assert.Equal(t, "El NIF ya está registrado.", f.FieldError(vendedor.FieldNIF))
	assert.Nil(t, f.Result)
}

func TestForm_EdicionNoExistente(t *testing.T) {
	api := newFakeAPI(1)
	v, err := api.Get(context.Background(), 1)
	require.NoError(t, err)

	f := client.NewEditForm(v)
	f.Input.Name = "Otro nombre"
	require.NoError(t, api.Delete(context.Background(), 1))

	err = f.Submit(context.Background(), api)
	assert.True(t, client.IsNotFound(err))
}

func TestMergeErrors(t *testing.T) {
	local := map[string][]string{
		"nombre": {"local nombre"},
		"nif":    {"local nif"},
	}
	server := map[string][]string{
		"nif":   {"server nif"},
		"sexo":  {"server sexo"},
		"vacío": nil,
	}
	got := client.MergeErrors(local, server)
	assert.Equal(t, map[string][]string{
		"nombre": {"local nombre"},
		"nif":    {"server nif"},
		"sexo":   {"server sexo"},
	}, got)
	assert.Equal(t, []string{"local nif"}, local["nif"], "no modifica la entrada")
}

// ──────────────────────────────────────────────────────────────────────────────
// DetailState
// ──────────────────────────────────────────────────────────────────────────────

func TestDetailState_CargarYEliminar(t *testing.T) {
	api := newFakeAPI(2)
	d := client.NewDetailState(api, 2)
	ctx := context.Background()

	require.NoError(t, d.Load(ctx))
	require.NotNil(t, d.Vendedor)
	assert.Equal(t, int64(2), d.Vendedor.ID)

	require.NoError(t, d.Delete(ctx))
	assert.True(t, d.Deleted)
	assert.Nil(t, d.Vendedor)

	err := d.Delete(ctx)
	require.Error(t, err)
	assert.True(t, d.NotFound)
	assert.False(t, d.Retryable)

	require.Error(t, d.Load(ctx))
	assert.True(t, d.NotFound)
}

func TestDetailState_ErrorDeRedReintentable(t *testing.T) {
	api := newFakeAPI(1)
	api.listErr = &apiclient.NetworkError{Op: "GET /vendedores/1", Err: errors.New("timeout")}
	d := client.NewDetailState(api, 1)

	require.Error(t, d.Load(context.Background()))
	assert.True(t, d.Retryable)
	assert.False(t, d.NotFound)

	api.listErr = nil
	require.NoError(t, d.Load(context.Background()))
	assert.Nil(t, d.Err)
	assert.False(t, d.Retryable)
}

func TestRetryable(t *testing.T) {
	assert.True(t, client.Retryable(&apiclient.APIError{Status: 503}))
	assert.False(t, client.Retryable(&apiclient.APIError{Status: 422}))
	assert.False(t, client.Retryable(apiclient.ErrNotFound))
	assert.False(t, client.Retryable(nil))
}
