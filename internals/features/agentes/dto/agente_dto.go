package dto

import (
	"github.com/google/uuid"

	"github.com/Jalann18/kcm-corredora/internals/features/agentes/model"
)

type AgenteDTO struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono"`
	Foto     *string   `json:"foto"`
	Activo   bool      `json:"activo"`
}

type CrearAgenteRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono" validate:"max=30"`
	Activo   *bool  `json:"activo"` // nil → true
}

type ActualizarAgenteRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,max=120"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefono *string `json:"telefono" validate:"omitempty,max=30"`
	Activo   *bool   `json:"activo"`
}

func ToAgenteDTO(m model.AgenteModel) AgenteDTO {
	return AgenteDTO{
		ID:       m.ID,
		Nombre:   m.Nombre,
		Email:    m.Email,
		Telefono: m.Telefono,
		Foto:     m.Foto,
		Activo:   m.Activo,
	}
}
