package constants

// Catálogos fijos del sitio. Se cargan una sola vez y no mutan en runtime.

// Solo Región Metropolitana
const RegionRM = "Metropolitana de Santiago"

var Regiones = []string{RegionRM}

// Comunas de la RM
var ComunasRM = []string{
	"Cerrillos", "Cerro Navia", "Conchalí", "El Bosque", "Estación Central", "Huechuraba",
	"Independencia", "La Cisterna", "La Florida", "La Granja", "La Pintana", "La Reina",
	"Las Condes", "Lo Barnechea", "Lo Espejo", "Lo Prado", "Macul", "Maipú", "Ñuñoa",
	"Pedro Aguirre Cerda", "Peñalolén", "Providencia", "Pudahuel", "Puente Alto",
	"Quilicura", "Quinta Normal", "Recoleta", "Renca", "San Joaquín", "San Miguel",
	"San Ramón", "Santiago", "Vitacura", "San Bernardo", "El Monte", "Isla de Maipo",
	"Padre Hurtado", "Peñaflor", "Talagante",
}

// Opcion es un par valor/etiqueta para selects del frontend.
type Opcion struct {
	Valor    string `json:"valor"`
	Etiqueta string `json:"etiqueta"`
}

var TiposOperacion = []Opcion{
	{Valor: "venta", Etiqueta: "Venta"},
	{Valor: "arriendo", Etiqueta: "Arriendo"},
}

var TiposPropiedad = []Opcion{
	{Valor: "casa", Etiqueta: "Casa"},
	{Valor: "departamento", Etiqueta: "Departamento"},
	{Valor: "parcela", Etiqueta: "Parcela/Terreno"},
	{Valor: "oficina", Etiqueta: "Oficina"},
	{Valor: "comercial", Etiqueta: "Local/Bodega"},
}

var Monedas = []string{"CLP", "UF"}

func enOpciones(opts []Opcion, v string) bool {
	for _, o := range opts {
		if o.Valor == v {
			return true
		}
	}
	return false
}

func etiqueta(opts []Opcion, v string) string {
	for _, o := range opts {
		if o.Valor == v {
			return o.Etiqueta
		}
	}
	return v
}

func EsRegionValida(v string) bool {
	for _, r := range Regiones {
		if r == v {
			return true
		}
	}
	return false
}

func EsComunaValida(v string) bool {
	for _, c := range ComunasRM {
		if c == v {
			return true
		}
	}
	return false
}

func EsOperacionValida(v string) bool { return enOpciones(TiposOperacion, v) }
func EsPropiedadValida(v string) bool { return enOpciones(TiposPropiedad, v) }

func EsMonedaValida(v string) bool {
	for _, m := range Monedas {
		if m == v {
			return true
		}
	}
	return false
}

// EtiquetaOperacion retorna el label visible ("venta" → "Venta").
func EtiquetaOperacion(v string) string { return etiqueta(TiposOperacion, v) }

// EtiquetaPropiedad retorna el label visible ("comercial" → "Local/Bodega").
func EtiquetaPropiedad(v string) string { return etiqueta(TiposPropiedad, v) }
