package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

func TestNormalizarTelefono(t *testing.T) {
	assert.Equal(t, "+56912345678", helper.NormalizarTelefono("+56 9 1234 5678"))
	assert.Equal(t, "221234567", helper.NormalizarTelefono("(2) 2123-4567"))
	assert.Equal(t, "", helper.NormalizarTelefono("sin numero"))
}

func TestNormalizarNombre(t *testing.T) {
	assert.Equal(t, "Juana Pérez", helper.NormalizarNombre("  Juana   Pérez  "))
	assert.Equal(t, "", helper.NormalizarNombre("   "))
}

func TestNormalizarEmail(t *testing.T) {
	assert.Equal(t, "ana@ejemplo.cl", helper.NormalizarEmail("  Ana@Ejemplo.CL "))
}

func TestParseEnteroRelajado(t *testing.T) {
	casos := []struct {
		in   string
		want int64
	}{
		{"120000000", 120000000},
		{"120.000.000", 120000000},
		{"120,000,000", 120000000},
		{"120 000 000", 120000000},
		{"$120.000.000", 120000000},
	}
	for _, tc := range casos {
		got, err := helper.ParseEnteroRelajado(tc.in)
		assert.NoError(t, err, tc.in)
		if assert.NotNil(t, got, tc.in) {
			assert.Equal(t, tc.want, *got, tc.in)
		}
	}
}

func TestParseEnteroRelajadoVacioYCero(t *testing.T) {
	got, err := helper.ParseEnteroRelajado("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = helper.ParseEnteroRelajado("  ")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = helper.ParseEnteroRelajado("sin digitos")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// cero se trata como "sin valor"
	got, err = helper.ParseEnteroRelajado("0")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseEnteroRelajadoDemasiadoLargo(t *testing.T) {
	got, err := helper.ParseEnteroRelajado("1234567890123") // 13 dígitos
	assert.Nil(t, got)
	assert.ErrorIs(t, err, helper.ErrEnteroMuyLargo)
	assert.Equal(t, "Ingresa un valor de hasta 12 dígitos.", err.Error())

	// 12 dígitos exactos pasa
	got, err = helper.ParseEnteroRelajado("123456789012")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, int64(123456789012), *got)
	}
}
