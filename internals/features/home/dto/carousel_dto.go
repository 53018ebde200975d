package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Jalann18/kcm-corredora/internals/features/home/model"
)

type CarouselSlideDTO struct {
	ID        uuid.UUID `json:"id"`
	Imagen    string    `json:"imagen"`
	Titulo    string    `json:"titulo"`
	Subtitulo string    `json:"subtitulo"`
	CtaText   string    `json:"cta_text"`
	CtaURL    string    `json:"cta_url"`
	Activo    bool      `json:"activo"`
	Orden     int       `json:"orden"`
	Creado    time.Time `json:"creado"`
}

type CrearSlideRequest struct {
	Titulo    string `json:"titulo" form:"titulo" validate:"max=120"`
	Subtitulo string `json:"subtitulo" form:"subtitulo" validate:"max=200"`
	CtaText   string `json:"cta_text" form:"cta_text" validate:"max=40"`
	CtaURL    string `json:"cta_url" form:"cta_url" validate:"omitempty,url"`
	Activo    *bool  `json:"activo" form:"activo"` // nil → true
	Orden     int    `json:"orden" form:"orden" validate:"gte=0"`
}

type ActualizarSlideRequest struct {
	Titulo    *string `json:"titulo" validate:"omitempty,max=120"`
	Subtitulo *string `json:"subtitulo" validate:"omitempty,max=200"`
	CtaText   *string `json:"cta_text" validate:"omitempty,max=40"`
	CtaURL    *string `json:"cta_url" validate:"omitempty,url"`
	Activo    *bool   `json:"activo"`
	Orden     *int    `json:"orden" validate:"omitempty,gte=0"`
}

func ToCarouselSlideDTO(m model.CarouselSlideModel) CarouselSlideDTO {
	return CarouselSlideDTO{
		ID:        m.ID,
		Imagen:    m.Imagen,
		Titulo:    m.Titulo,
		Subtitulo: m.Subtitulo,
		CtaText:   m.CtaText,
		CtaURL:    m.CtaURL,
		Activo:    m.Activo,
		Orden:     m.Orden,
		Creado:    m.Creado,
	}
}

func ToCarouselSlideList(ms []model.CarouselSlideModel) []CarouselSlideDTO {
	out := make([]CarouselSlideDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCarouselSlideDTO(m))
	}
	return out
}
