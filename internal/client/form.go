package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
	"github.com/jhoicas/vendedores-api/pkg/apiclient"
	"github.com/jhoicas/vendedores-api/pkg/nif"
)

// ErrInvalid el formulario tiene errores por campo (locales o del servidor).
var ErrInvalid = errors.New("client: formulario con errores")

// Form formulario de alta o edición. ID == 0 es un alta.
type Form struct {
	ID    int64
	Input vendedor.Input

	// Errors mensajes por campo bloqueantes.
	Errors map[string][]string
	// Warnings avisos no bloqueantes (p. ej. letra de control del NIF).
	Warnings map[string][]string
	// Result vendedor tal como quedó en el servidor tras un envío correcto.
	Result *dto.VendedorResponse
}

// NewCreateForm formulario de alta vacío.
func NewCreateForm() *Form {
	return &Form{}
}

// NewEditForm formulario de edición precargado con el vendedor.
func NewEditForm(v *dto.VendedorResponse) *Form {
	return &Form{ID: v.ID, Input: v.Input()}
}

// Validate ejecuta la prevalidación local con las mismas reglas que el servidor.
// Devuelve true si no hay errores bloqueantes.
func (f *Form) Validate() bool {
	f.Input = f.Input.Normalize()
	f.Errors = vendedor.Check(f.Input)
	f.Warnings = nil
	if f.Input.NIF != "" && len(f.Errors[vendedor.FieldNIF]) == 0 {
		if err := nif.ValidateControlLetter(f.Input.NIF); err != nil {
			f.Warnings = map[string][]string{vendedor.FieldNIF: {err.Error()}}
		}
	}
	return len(f.Errors) == 0
}

// Submit prevalida y, si procede, envía al servidor. Con errores locales no hay
// petición. Un 422 se fusiona con los errores locales (ganan los del servidor).
func (f *Form) Submit(ctx context.Context, api API) error {
	if !f.Validate() {
		return ErrInvalid
	}

	req := dto.RequestFromInput(f.Input)
	var (
		out *dto.VendedorResponse
		err error
	)
	if f.ID == 0 {
		out, err = api.Create(ctx, req)
	} else {
		out, err = api.Update(ctx, f.ID, req)
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.IsValidation() {
		f.Errors = MergeErrors(f.Errors, apiErr.Errors)
		return fmt.Errorf("%w: %s", ErrInvalid, apiErr.Message)
	}
	if err != nil {
		return err
	}
	f.Result = out
	f.ID = out.ID
	f.Input = out.Input()
	return nil
}

// FieldError primer mensaje del campo, o "".
func (f *Form) FieldError(field string) string {
	if msgs := f.Errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// MergeErrors combina errores locales y del servidor. Para un campo presente en
// ambos se conservan solo los del servidor.
func MergeErrors(local, server map[string][]string) map[string][]string {
	out := make(map[string][]string, len(local)+len(server))
	for field, msgs := range local {
		out[field] = append([]string(nil), msgs...)
	}
	for field, msgs := range server {
		if len(msgs) > 0 {
			out[field] = append([]string(nil), msgs...)
		}
	}
	return out
}
