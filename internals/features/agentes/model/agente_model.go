package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgenteModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Nombre   string    `gorm:"column:nombre;size:120;not null" json:"nombre"`
	Email    string    `gorm:"column:email;size:254;not null" json:"email"`
	Telefono string    `gorm:"column:telefono;size:30" json:"telefono"`
	Foto     *string   `gorm:"column:foto;size:255" json:"foto"`
	Activo   bool      `gorm:"column:activo;not null;default:true" json:"activo"`
}

func (AgenteModel) TableName() string { return "agentes" }

func (m *AgenteModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
