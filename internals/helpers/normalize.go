package helper

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Normalizadores de texto libre. Funciones puras, las usan todos los
// formularios públicos antes de persistir.

// ErrEnteroMuyLargo se reporta cuando el valor supera los 12 dígitos
// (precio referencial).
var ErrEnteroMuyLargo = errors.New("Ingresa un valor de hasta 12 dígitos.")

// NormalizarTelefono deja solo dígitos y '+' (teléfonos internacionales).
func NormalizarTelefono(v string) string {
	var b strings.Builder
	for _, r := range v {
		if unicode.IsDigit(r) || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseEnteroRelajado convierte strings tipo "120.000.000", "120 000 000" o
// "120,000,000" a int64. Retorna nil si viene vacío o sin dígitos.
func ParseEnteroRelajado(v string) (*int64, error) {
	var b strings.Builder
	for _, r := range v {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return nil, nil
	}
	if len(digits) > 12 {
		return nil, ErrEnteroMuyLargo
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return &n, nil
}

// NormalizarNombre recorta y colapsa espacios internos a uno solo.
func NormalizarNombre(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// NormalizarEmail recorta y pasa a minúsculas.
func NormalizarEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
