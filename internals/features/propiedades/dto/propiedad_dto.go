package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
)

// ============================
// Response DTO
// ============================

// PropiedadCardDTO es la versión liviana para listados y home.
type PropiedadCardDTO struct {
	ID               uuid.UUID `json:"id"`
	Titulo           string    `json:"titulo"`
	Slug             string    `json:"slug"`
	TipoOperacion    string    `json:"tipo_operacion"`
	TipoPropiedad    string    `json:"tipo_propiedad"`
	Comuna           string    `json:"comuna"`
	PrecioUF         *float64  `json:"precio_uf"`
	PrecioCLP        int64     `json:"precio_clp"`
	Dormitorios      int       `json:"dormitorios"`
	Banos            int       `json:"banos"`
	Estacionamientos int       `json:"estacionamientos"`
	Portada          *string   `json:"portada"`
	Destacada        bool      `json:"destacada"`
	Creado           time.Time `json:"creado"`
}

type ImagenDTO struct {
	ID     uuid.UUID `json:"id"`
	Imagen string    `json:"imagen"`
	Orden  int       `json:"orden"`
}

type AgenteDTO struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono"`
	Foto     *string   `json:"foto"`
}

// PropiedadDetalleDTO es la ficha completa de la página de detalle.
type PropiedadDetalleDTO struct {
	PropiedadCardDTO
	Descripcion     string      `json:"descripcion"`
	Region          string      `json:"region"`
	Direccion       string      `json:"direccion"`
	SupConstruidaM2 *float64    `json:"sup_construida_m2"`
	SupTerrenoM2    *float64    `json:"sup_terreno_m2"`
	AnoConstruccion *int        `json:"ano_construccion"`
	Publicada       bool        `json:"publicada"`
	Imagenes        []ImagenDTO `json:"imagenes"`
	Agente          *AgenteDTO  `json:"agente"`
	Actualizado     time.Time   `json:"actualizado"`
}

func ToPropiedadCardDTO(m model.PropiedadModel) PropiedadCardDTO {
	return PropiedadCardDTO{
		ID:               m.ID,
		Titulo:           m.Titulo,
		Slug:             m.Slug,
		TipoOperacion:    m.TipoOperacion,
		TipoPropiedad:    m.TipoPropiedad,
		Comuna:           m.Comuna,
		PrecioUF:         m.PrecioUF,
		PrecioCLP:        m.PrecioCLP,
		Dormitorios:      m.Dormitorios,
		Banos:            m.Banos,
		Estacionamientos: m.Estacionamientos,
		Portada:          m.Portada,
		Destacada:        m.Destacada,
		Creado:           m.Creado,
	}
}

func ToPropiedadCardList(ms []model.PropiedadModel) []PropiedadCardDTO {
	out := make([]PropiedadCardDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPropiedadCardDTO(m))
	}
	return out
}

func ToPropiedadDetalleDTO(m model.PropiedadModel) PropiedadDetalleDTO {
	d := PropiedadDetalleDTO{
		PropiedadCardDTO: ToPropiedadCardDTO(m),
		Descripcion:      m.Descripcion,
		Region:           m.Region,
		Direccion:        m.Direccion,
		SupConstruidaM2:  m.SupConstruidaM2,
		SupTerrenoM2:     m.SupTerrenoM2,
		AnoConstruccion:  m.AnoConstruccion,
		Publicada:        m.Publicada,
		Actualizado:      m.Actualizado,
		Imagenes:         make([]ImagenDTO, 0, len(m.Imagenes)),
	}
	for _, img := range m.Imagenes {
		d.Imagenes = append(d.Imagenes, ImagenDTO{ID: img.ID, Imagen: img.Imagen, Orden: img.Orden})
	}
	if m.Agente != nil {
		d.Agente = &AgenteDTO{
			ID:       m.Agente.ID,
			Nombre:   m.Agente.Nombre,
			Email:    m.Agente.Email,
			Telefono: m.Agente.Telefono,
			Foto:     m.Agente.Foto,
		}
	}
	return d
}

// ============================
// Back-office requests
// ============================

type CrearPropiedadRequest struct {
	Titulo        string `json:"titulo" validate:"required,max=180"`
	Descripcion   string `json:"descripcion" validate:"required"`
	TipoOperacion string `json:"tipo_operacion" validate:"required"`
	TipoPropiedad string `json:"tipo_propiedad" validate:"required"`
	Comuna        string `json:"comuna" validate:"required"`
	Direccion     string `json:"direccion" validate:"max=200"`

	PrecioUF  *float64 `json:"precio_uf"`
	PrecioCLP int64    `json:"precio_clp" validate:"required,gt=0"`

	Dormitorios      int `json:"dormitorios" validate:"gte=0"`
	Banos            int `json:"banos" validate:"gte=0"`
	Estacionamientos int `json:"estacionamientos" validate:"gte=0"`

	SupConstruidaM2 *float64 `json:"sup_construida_m2"`
	SupTerrenoM2    *float64 `json:"sup_terreno_m2"`
	AnoConstruccion *int     `json:"ano_construccion"`

	AgenteID *uuid.UUID `json:"agente_id"`

	Destacada bool  `json:"destacada"`
	Publicada *bool `json:"publicada"` // nil → true, como el default original
}

type ActualizarPropiedadRequest struct {
	Titulo        *string `json:"titulo" validate:"omitempty,max=180"`
	Descripcion   *string `json:"descripcion"`
	TipoOperacion *string `json:"tipo_operacion"`
	TipoPropiedad *string `json:"tipo_propiedad"`
	Comuna        *string `json:"comuna"`
	Direccion     *string `json:"direccion" validate:"omitempty,max=200"`

	PrecioUF  *float64 `json:"precio_uf"`
	PrecioCLP *int64   `json:"precio_clp" validate:"omitempty,gt=0"`

	Dormitorios      *int `json:"dormitorios" validate:"omitempty,gte=0"`
	Banos            *int `json:"banos" validate:"omitempty,gte=0"`
	Estacionamientos *int `json:"estacionamientos" validate:"omitempty,gte=0"`

	SupConstruidaM2 *float64 `json:"sup_construida_m2"`
	SupTerrenoM2    *float64 `json:"sup_terreno_m2"`
	AnoConstruccion *int     `json:"ano_construccion"`

	AgenteID *uuid.UUID `json:"agente_id"`

	Destacada *bool `json:"destacada"`
	Publicada *bool `json:"publicada"`
}
