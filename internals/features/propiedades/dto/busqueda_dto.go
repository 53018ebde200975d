package dto

import (
	"strconv"
	"strings"

	"github.com/Jalann18/kcm-corredora/internals/constants"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

// BusquedaQuery es el input crudo del listado: todo llega como string y
// todo es opcional. Nunca toca la base de datos sin pasar por Validar().
type BusquedaQuery struct {
	Q             string `query:"q" json:"q"`
	Region        string `query:"region" json:"region"`
	MinPrecio     string `query:"min_precio" json:"min_precio"`
	MaxPrecio     string `query:"max_precio" json:"max_precio"`
	Dormitorios   string `query:"dormitorios" json:"dormitorios"`
	TipoOperacion string `query:"tipo_operacion" json:"tipo_operacion"`
	TipoPropiedad string `query:"tipo_propiedad" json:"tipo_propiedad"`
	Comuna        string `query:"comuna" json:"comuna"`
	Moneda        string `query:"moneda" json:"moneda"`
}

// Criterios es la versión tipada y validada de BusquedaQuery.
type Criterios struct {
	Q             string
	Region        string
	MinPrecio     *int64
	MaxPrecio     *int64
	Dormitorios   int
	TipoOperacion string
	TipoPropiedad string
	Comuna        string
	Moneda        string
}

// Validar convierte el input crudo en Criterios. Si el map de errores viene
// con algo, los criterios no sirven para consultar: el caller responde los
// errores junto con los valores originales.
//
// Región y comuna desconocidas NO son error: pasan igual y simplemente no
// van a calzar con ninguna fila (comportamiento original del sitio).
func (b BusquedaQuery) Validar() (Criterios, map[string]string) {
	errs := map[string]string{}
	c := Criterios{
		Q:             strings.TrimSpace(b.Q),
		Region:        strings.TrimSpace(b.Region),
		Comuna:        strings.TrimSpace(b.Comuna),
		TipoOperacion: strings.TrimSpace(b.TipoOperacion),
		TipoPropiedad: strings.TrimSpace(b.TipoPropiedad),
		Moneda:        strings.TrimSpace(b.Moneda),
	}

	if c.TipoOperacion != "" && !constants.EsOperacionValida(c.TipoOperacion) {
		errs["tipo_operacion"] = "Escoge una opción válida."
	}
	if c.TipoPropiedad != "" && !constants.EsPropiedadValida(c.TipoPropiedad) {
		errs["tipo_propiedad"] = "Escoge una opción válida."
	}
	if c.Moneda != "" && !constants.EsMonedaValida(c.Moneda) {
		errs["moneda"] = "Escoge una opción válida."
	}

	min, err := helper.ParseEnteroRelajado(b.MinPrecio)
	if err != nil {
		errs["min_precio"] = err.Error()
	} else {
		c.MinPrecio = min
	}
	max, err := helper.ParseEnteroRelajado(b.MaxPrecio)
	if err != nil {
		errs["max_precio"] = err.Error()
	} else {
		c.MaxPrecio = max
	}
	if c.MinPrecio != nil && c.MaxPrecio != nil && *c.MinPrecio > *c.MaxPrecio {
		errs["max_precio"] = "Debe ser mayor o igual que el mínimo."
	}

	if raw := strings.TrimSpace(b.Dormitorios); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs["dormitorios"] = "Ingresa un número entero."
		} else {
			c.Dormitorios = n
		}
	}

	return c, errs
}
