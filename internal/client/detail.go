package client

import (
	"context"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
)

// MsgNotFound mensaje para un vendedor inexistente.
const MsgNotFound = "Vendedor no encontrado"

// DetailState detalle de un vendedor con sus estados de error.
type DetailState struct {
	api API
	id  int64

	Vendedor *dto.VendedorResponse
	// NotFound el vendedor no existe (o fue eliminado por otro cliente).
	NotFound bool
	// Err último error no resuelto; Retryable indica si reintentar tiene sentido.
	Err       error
	Retryable bool
	// Deleted el vendedor se eliminó desde este detalle.
	Deleted bool
}

// NewDetailState construye el estado para el id.
func NewDetailState(api API, id int64) *DetailState {
	return &DetailState{api: api, id: id}
}

// Load (re)carga el vendedor.
func (d *DetailState) Load(ctx context.Context) error {
	v, err := d.api.Get(ctx, d.id)
	d.setErr(err)
	if err != nil {
		d.Vendedor = nil
		return err
	}
	d.Vendedor = v
	return nil
}

// Delete elimina el vendedor. Si ya no existía queda en NotFound.
func (d *DetailState) Delete(ctx context.Context) error {
	err := d.api.Delete(ctx, d.id)
	d.setErr(err)
	if err != nil {
		return err
	}
	d.Deleted = true
	d.Vendedor = nil
	return nil
}

func (d *DetailState) setErr(err error) {
	d.Err = err
	d.NotFound = IsNotFound(err)
	d.Retryable = Retryable(err)
}
