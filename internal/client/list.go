package client

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
)

// DefaultPerPage tamaño de página que pide el listado.
const DefaultPerPage = 10

// MsgLoadFailed mensaje mostrado cuando falla la carga del listado.
const MsgLoadFailed = "No se pudieron cargar los vendedores"

var (
	// ErrBusy ya hay una carga en curso.
	ErrBusy = errors.New("client: carga en curso")
	// ErrNoMorePages no quedan páginas por cargar.
	ErrNoMorePages = errors.New("client: no hay más páginas")
)

// ListState listado acumulado con scroll infinito. Seguro para uso concurrente:
// una segunda carga mientras otra está en vuelo devuelve ErrBusy.
type ListState struct {
	api     API
	perPage int

	mu       sync.Mutex
	busy     bool
	items    []dto.VendedorResponse
	page     int
	lastPage int
	total    int
	err      error
}

// NewListState construye el estado. perPage <= 0 usa DefaultPerPage.
func NewListState(api API, perPage int) *ListState {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &ListState{api: api, perPage: perPage, lastPage: 1}
}

// LoadFirst recarga desde la página 1 y reemplaza los elementos (pull to refresh).
func (s *ListState) LoadFirst(ctx context.Context) error {
	return s.load(ctx, true)
}

// LoadMore agrega la página siguiente.
func (s *ListState) LoadMore(ctx context.Context) error {
	return s.load(ctx, false)
}

// load reserva la carga y decide la página en la misma sección crítica, de
// modo que dos LoadMore concurrentes nunca piden la misma página.
func (s *ListState) load(ctx context.Context, replace bool) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	page := 1
	if !replace {
		if s.page >= s.lastPage {
			s.mu.Unlock()
			return ErrNoMorePages
		}
		page = s.page + 1
	}
	s.busy = true
	s.mu.Unlock()

	out, err := s.api.List(ctx, page, s.perPage)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		s.err = err
		return err
	}
	s.err = nil
	if replace {
		s.items = append([]dto.VendedorResponse(nil), out.Data...)
	} else {
		s.items = append(s.items, out.Data...)
	}
	s.page = out.CurrentPage
	s.lastPage = out.LastPage
	s.total = out.Total
	return nil
}

// Items copia de los vendedores cargados.
func (s *ListState) Items() []dto.VendedorResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.VendedorResponse(nil), s.items...)
}

// HasMore indica si quedan páginas por cargar.
func (s *ListState) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page < s.lastPage
}

// Busy indica si hay una carga en curso.
func (s *ListState) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Total total de registros según la última respuesta.
func (s *ListState) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Err último error de carga (nil si la última carga fue bien).
func (s *ListState) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Empty indica que ya se cargó y no hay ningún vendedor.
func (s *ListState) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page > 0 && s.err == nil && len(s.items) == 0
}
