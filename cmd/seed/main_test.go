package main

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/internal/domain/vendedor"
	"github.com/jhoicas/vendedores-api/pkg/apiclient"
	"github.com/jhoicas/vendedores-api/pkg/nif"
)

func TestGenerator_RequestsValidos(t *testing.T) {
	gen := newGenerator(42)
	for i := 0; i < 200; i++ {
		req := gen.request()
		errs := vendedor.Check(req.Input())
		require.Empty(t, errs, "request %d: %+v", i, req)
		assert.NoError(t, nif.ValidateControlLetter(string(req.NIF)))
		assert.LessOrEqual(t, utf8.RuneCountInString(string(req.Name)), vendedor.MaxNameLength)
	}
}

func TestGenerator_Determinista(t *testing.T) {
	a, b := newGenerator(7), newGenerator(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.request(), b.request())
	}
}

type fakeCreator struct {
	calls    int
	failNIF  int
	fatal    error
	received []dto.VendedorRequest
}

func (f *fakeCreator) Create(_ context.Context, in dto.VendedorRequest) (*dto.VendedorResponse, error) {
	f.calls++
	if f.fatal != nil {
		return nil, f.fatal
	}
	if f.failNIF > 0 {
		f.failNIF--
		return nil, &apiclient.APIError{Status: 422, Errors: map[string][]string{"nif": {"El NIF ya está registrado."}}}
	}
	f.received = append(f.received, in)
	return &dto.VendedorResponse{ID: int64(len(f.received))}, nil
}

func TestSeedVendedores_ReintentaNIFDuplicado(t *testing.T) {
	api := &fakeCreator{failNIF: 2}
	n, err := seedVendedores(context.Background(), api, newGenerator(1), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 5, api.calls)
}

func TestSeedVendedores_ErrorCorta(t *testing.T) {
	api := &fakeCreator{fatal: &apiclient.NetworkError{Op: "POST /vendedores", Err: errors.New("refused")}}
	n, err := seedVendedores(context.Background(), api, newGenerator(1), 3)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, api.calls)
}
