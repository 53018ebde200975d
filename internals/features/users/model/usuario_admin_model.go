package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioAdminModel es la cuenta del back-office. El sitio público no tiene
// usuarios registrados.
type UsuarioAdminModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"column:email;size:254;not null;uniqueIndex" json:"email"`
	Password string    `gorm:"column:password;size:100;not null" json:"-"`
	Activo   bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	Creado   time.Time `gorm:"column:creado;autoCreateTime" json:"creado"`
}

func (UsuarioAdminModel) TableName() string { return "usuarios_admin" }

func (m *UsuarioAdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
