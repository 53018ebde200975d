package dto

import (
	"strings"

	"github.com/Jalann18/kcm-corredora/internals/constants"
)

// PluralizarES pluraliza una etiqueta en español:
// ya termina en "s" → igual; termina en "ón" → "ones"; si no → +"s".
func PluralizarES(word string) string {
	if word == "" {
		return word
	}
	if strings.HasSuffix(word, "s") {
		return word
	}
	if strings.HasSuffix(word, "ón") {
		return word[:len(word)-len("ón")] + "ones"
	}
	return word + "s"
}

// ComponerTitulo arma el título de la página del listado a partir de los
// criterios validados. Puede quedar vacío si no hay filtros de tipo; la
// comuna se agrega incluso en ese caso.
func ComponerTitulo(c Criterios) string {
	var lp, lo string
	if c.TipoPropiedad != "" {
		lp = constants.EtiquetaPropiedad(c.TipoPropiedad)
	}
	if c.TipoOperacion != "" {
		lo = constants.EtiquetaOperacion(c.TipoOperacion)
	}

	titulo := ""
	switch {
	case lp != "" && lo != "":
		titulo = PluralizarES(lp) + " en " + lo
	case lp != "":
		titulo = PluralizarES(lp) + " disponibles"
	case lo != "":
		titulo = "Propiedades en " + lo
	}

	if c.Comuna != "" {
		titulo = titulo + " en " + c.Comuna
	}
	return titulo
}
