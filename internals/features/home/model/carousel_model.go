package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarouselSlideModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Imagen    string    `gorm:"column:imagen;size:255;not null" json:"imagen"`
	Titulo    string    `gorm:"column:titulo;size:120" json:"titulo"`
	Subtitulo string    `gorm:"column:subtitulo;size:200" json:"subtitulo"`
	CtaText   string    `gorm:"column:cta_text;size:40" json:"cta_text"`
	CtaURL    string    `gorm:"column:cta_url;size:200" json:"cta_url"`
	Activo    bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	// Menor número = aparece antes
	Orden  int       `gorm:"column:orden;not null;default:0" json:"orden"`
	Creado time.Time `gorm:"column:creado;autoCreateTime" json:"creado"`
}

func (CarouselSlideModel) TableName() string { return "carousel_slides" }

func (m *CarouselSlideModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
