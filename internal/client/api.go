// Package client mantiene el estado efímero de un cliente de la API de vendedores:
// listado paginado con "cargar más", formulario con prevalidación local y
// detalle. Nunca es dueño de los datos: tras cada escritura manda la respuesta
// del servidor.
package client

import (
	"context"
	"errors"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/pkg/apiclient"
)

// API operaciones remotas que consume el cliente. *apiclient.Client la implementa.
type API interface {
	List(ctx context.Context, page, perPage int) (*dto.VendedorPage, error)
	Get(ctx context.Context, id int64) (*dto.VendedorResponse, error)
	Create(ctx context.Context, in dto.VendedorRequest) (*dto.VendedorResponse, error)
	Update(ctx context.Context, id int64, in dto.VendedorRequest) (*dto.VendedorResponse, error)
	Delete(ctx context.Context, id int64) error
}

var _ API = (*apiclient.Client)(nil)

// Retryable indica si el error es de red y tiene sentido ofrecer reintentar.
func Retryable(err error) bool {
	var netErr *apiclient.NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var apiErr *apiclient.APIError
	return errors.As(err, &apiErr) && apiErr.Status >= 500
}

// IsNotFound indica si el error corresponde a un vendedor inexistente.
func IsNotFound(err error) bool {
	return errors.Is(err, apiclient.ErrNotFound)
}
