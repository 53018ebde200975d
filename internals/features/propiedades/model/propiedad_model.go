package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	agenteModel "github.com/Jalann18/kcm-corredora/internals/features/agentes/model"
)

type PropiedadModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Titulo      string    `gorm:"column:titulo;size:180;not null" json:"titulo"`
	Slug        string    `gorm:"column:slug;size:200;not null;uniqueIndex" json:"slug"`
	Descripcion string    `gorm:"column:descripcion;type:text;not null" json:"descripcion"`

	TipoOperacion string `gorm:"column:tipo_operacion;size:20;not null" json:"tipo_operacion"`
	TipoPropiedad string `gorm:"column:tipo_propiedad;size:30;not null" json:"tipo_propiedad"`

	// Siempre RM
	Region    string `gorm:"column:region;size:40;not null;default:'Metropolitana de Santiago'" json:"region"`
	Comuna    string `gorm:"column:comuna;size:60;not null" json:"comuna"`
	Direccion string `gorm:"column:direccion;size:200" json:"direccion"`

	// Moneda principal: UF. precio_clp es legado, solo compatibilidad.
	PrecioUF  *float64 `gorm:"column:precio_uf;type:numeric(10,2)" json:"precio_uf"`
	PrecioCLP int64    `gorm:"column:precio_clp;not null" json:"precio_clp"`

	Dormitorios      int `gorm:"column:dormitorios;not null;default:0" json:"dormitorios"`
	Banos            int `gorm:"column:banos;not null;default:0" json:"banos"`
	Estacionamientos int `gorm:"column:estacionamientos;not null;default:0" json:"estacionamientos"`

	SupConstruidaM2 *float64 `gorm:"column:sup_construida_m2;type:numeric(8,2)" json:"sup_construida_m2"`
	SupTerrenoM2    *float64 `gorm:"column:sup_terreno_m2;type:numeric(8,2)" json:"sup_terreno_m2"`
	AnoConstruccion *int     `gorm:"column:ano_construccion" json:"ano_construccion"`

	AgenteID *uuid.UUID               `gorm:"column:agente_id;type:uuid" json:"agente_id"`
	Agente   *agenteModel.AgenteModel `gorm:"foreignKey:AgenteID;constraint:OnDelete:SET NULL" json:"agente,omitempty"`

	Destacada bool    `gorm:"column:destacada;not null;default:false" json:"destacada"`
	Publicada bool    `gorm:"column:publicada;not null" json:"publicada"`
	Portada   *string `gorm:"column:portada;size:255" json:"portada"`

	Imagenes []ImagenPropiedadModel `gorm:"foreignKey:PropiedadID" json:"imagenes,omitempty"`

	Creado      time.Time `gorm:"column:creado;autoCreateTime" json:"creado"`
	Actualizado time.Time `gorm:"column:actualizado;autoUpdateTime" json:"actualizado"`
}

func (PropiedadModel) TableName() string { return "propiedades" }

func (m *PropiedadModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type ImagenPropiedadModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PropiedadID uuid.UUID `gorm:"column:propiedad_id;type:uuid;not null;index" json:"propiedad_id"`
	Propiedad   *PropiedadModel `gorm:"foreignKey:PropiedadID;constraint:OnDelete:CASCADE" json:"-"`
	Imagen      string    `gorm:"column:imagen;size:255;not null" json:"imagen"`
	Orden       int       `gorm:"column:orden;not null;default:0" json:"orden"`
}

func (ImagenPropiedadModel) TableName() string { return "imagenes_propiedad" }

func (m *ImagenPropiedadModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
