package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	propModel "github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
)

// Orígenes conocidos de un lead (para distinguir en el back-office).
const (
	OrigenWeb         = "web"
	OrigenContacto    = "contacto"
	OrigenPublicacion = "publicacion"
	OrigenDetalle     = "detalle"
)

// LeadModel es inmutable después del create: el back-office solo lo lee.
type LeadModel struct {
	ID          uuid.UUID                 `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PropiedadID *uuid.UUID                `gorm:"column:propiedad_id;type:uuid;index" json:"propiedad_id"`
	Propiedad   *propModel.PropiedadModel `gorm:"foreignKey:PropiedadID;constraint:OnDelete:CASCADE" json:"propiedad,omitempty"`

	Nombre   string `gorm:"column:nombre;size:120;not null" json:"nombre"`
	Email    string `gorm:"column:email;size:254;not null" json:"email"`
	Telefono string `gorm:"column:telefono;size:30" json:"telefono"`
	Mensaje  string `gorm:"column:mensaje;type:text" json:"mensaje"`
	// Texto libre, no se valida contra el catálogo de comunas.
	Comuna string `gorm:"column:comuna;size:60" json:"comuna"`
	Origen string `gorm:"column:origen;size:50;not null;default:'web'" json:"origen"`

	Creado time.Time `gorm:"column:creado;autoCreateTime" json:"creado"`
}

func (LeadModel) TableName() string { return "leads" }

func (m *LeadModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Origen == "" {
		m.Origen = OrigenWeb
	}
	return nil
}
