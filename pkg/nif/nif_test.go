package nif_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendedores-api/pkg/nif"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "12345678Z", nif.Normalize("  12345678z "))
	assert.Equal(t, "", nif.Normalize("   "))
}

func TestComputeControlLetter_DNI(t *testing.T) {
	l, err := nif.ComputeControlLetter("12345678")
	require.NoError(t, err)
	assert.Equal(t, 'Z', l)

	l, err = nif.ComputeControlLetter("00000000")
	require.NoError(t, err)
	assert.Equal(t, 'T', l)
}

func TestComputeControlLetter_NIE(t *testing.T) {
	// X1234567 → 01234567 → 1234567 % 23 = 19 → L
	l, err := nif.ComputeControlLetter("x1234567")
	require.NoError(t, err)
	assert.Equal(t, 'L', l)
}

func TestValidateControlLetter(t *testing.T) {
	assert.NoError(t, nif.ValidateControlLetter("12345678Z"))
	assert.NoError(t, nif.ValidateControlLetter("12345678z"))
	assert.NoError(t, nif.ValidateControlLetter("X1234567L"))

	err := nif.ValidateControlLetter("12345678A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "esperado Z")

	assert.Error(t, nif.ValidateControlLetter("1234"))
	assert.Error(t, nif.ValidateControlLetter("B1234567A"), "CIF no soportado")
}
