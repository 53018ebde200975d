package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Jalann18/kcm-corredora/internals/features/leads/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

// ============================
// Request DTOs
// ============================

// LeadRequest es el formulario de contacto rápido (detalle y /contacto).
type LeadRequest struct {
	Nombre   string `json:"nombre" form:"nombre" validate:"required,max=120"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Telefono string `json:"telefono" form:"telefono" validate:"max=30"`
	Mensaje  string `json:"mensaje" form:"mensaje" validate:"max=600"`
}

// Normalizar limpia los campos de texto antes de persistir.
func (r *LeadRequest) Normalizar() {
	r.Nombre = helper.NormalizarNombre(r.Nombre)
	r.Email = helper.NormalizarEmail(r.Email)
	r.Telefono = helper.NormalizarTelefono(r.Telefono)
}

// QuieroPublicarRequest es el formulario "Publica tu propiedad".
type QuieroPublicarRequest struct {
	TipoOperacion string `json:"tipo_operacion" form:"tipo_operacion" validate:"required"`
	TipoPropiedad string `json:"tipo_propiedad" form:"tipo_propiedad" validate:"required"`
	Comuna        string `json:"comuna" form:"comuna" validate:"required"`
	// Precio referencial: acepta "120.000.000" y similares, 12 dígitos máx
	PrecioReferencial string `json:"precio_referencial" form:"precio_referencial"`
	Nombre            string `json:"nombre" form:"nombre" validate:"required,max=120"`
	Email             string `json:"email" form:"email" validate:"required,email"`
	Telefono          string `json:"telefono" form:"telefono" validate:"max=30"`
	Mensaje           string `json:"mensaje" form:"mensaje" validate:"max=600"`
}

func (r *QuieroPublicarRequest) Normalizar() {
	r.Nombre = helper.NormalizarNombre(r.Nombre)
	r.Email = helper.NormalizarEmail(r.Email)
	r.Telefono = helper.NormalizarTelefono(r.Telefono)
}

// ============================
// Response DTO
// ============================

type LeadDTO struct {
	ID          uuid.UUID  `json:"id"`
	PropiedadID *uuid.UUID `json:"propiedad_id"`
	Nombre      string     `json:"nombre"`
	Email       string     `json:"email"`
	Telefono    string     `json:"telefono"`
	Mensaje     string     `json:"mensaje"`
	Comuna      string     `json:"comuna"`
	Origen      string     `json:"origen"`
	Creado      time.Time  `json:"creado"`
}

func ToLeadDTO(m model.LeadModel) LeadDTO {
	return LeadDTO{
		ID:          m.ID,
		PropiedadID: m.PropiedadID,
		Nombre:      m.Nombre,
		Email:       m.Email,
		Telefono:    m.Telefono,
		Mensaje:     m.Mensaje,
		Comuna:      m.Comuna,
		Origen:      m.Origen,
		Creado:      m.Creado,
	}
}
