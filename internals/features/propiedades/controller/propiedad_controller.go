package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/dto"
	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

type PropiedadController struct {
	DB *gorm.DB
}

func NewPropiedadController(db *gorm.DB) *PropiedadController {
	return &PropiedadController{DB: db}
}

// =======================
// GET /propiedades — listado filtrado y paginado
// =======================
func (ctrl *PropiedadController) Listar(c *fiber.Ctx) error {
	var raw dto.BusquedaQuery
	if err := c.QueryParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parámetros de búsqueda inválidos")
	}

	criterios, errs := raw.Validar()
	if len(errs) > 0 {
		// Con criterios inválidos no se consulta nada: se devuelven los
		// errores por campo junto a los valores tal como llegaron.
		return helper.JsonFieldErrors(c, errs, raw)
	}

	q := consultaPublicada(ctrl.DB, criterios)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar las propiedades")
	}

	page := helper.PaginaSolicitada(c)
	page, _ = helper.ClampPagina(page, helper.PorPaginaListado, total)

	var props []model.PropiedadModel
	if err := q.
		Order("destacada DESC, creado DESC").
		Limit(helper.PorPaginaListado).
		Offset((page - 1) * helper.PorPaginaListado).
		Find(&props).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener las propiedades")
	}

	return helper.JsonList(c, fiber.Map{
		"items":  dto.ToPropiedadCardList(props),
		"titulo": dto.ComponerTitulo(criterios),
		"qs":     helper.QueryStringSinPagina(c),
	}, helper.BuildPagination(total, page, helper.PorPaginaListado, len(props)))
}

// consultaPublicada arma la consulta del listado. publicada = true va
// siempre, no es un filtro que el usuario pueda sacar; el resto es AND.
func consultaPublicada(db *gorm.DB, c dto.Criterios) *gorm.DB {
	q := db.Model(&model.PropiedadModel{}).Where("publicada = ?", true)

	if c.Q != "" {
		s := "%" + strings.ToLower(c.Q) + "%"
		q = q.Where("(LOWER(titulo) LIKE ? OR LOWER(descripcion) LIKE ? OR LOWER(comuna) LIKE ?)", s, s, s)
	}
	if c.TipoOperacion != "" {
		q = q.Where("tipo_operacion = ?", c.TipoOperacion)
	}
	if c.TipoPropiedad != "" {
		q = q.Where("tipo_propiedad = ?", c.TipoPropiedad)
	}
	if c.Region != "" {
		q = q.Where("region = ?", c.Region)
	}
	// Filtros de precio sobre UF, no sobre el CLP legado
	if c.MinPrecio != nil {
		q = q.Where("precio_uf >= ?", *c.MinPrecio)
	}
	if c.MaxPrecio != nil {
		q = q.Where("precio_uf <= ?", *c.MaxPrecio)
	}
	if c.Dormitorios != 0 {
		q = q.Where("dormitorios >= ?", c.Dormitorios)
	}
	if c.Comuna != "" {
		q = q.Where("comuna = ?", c.Comuna)
	}
	return q
}

// =======================
// GET /propiedades/:slug — ficha de detalle
// =======================
func (ctrl *PropiedadController) Detalle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var prop model.PropiedadModel
	err := ctrl.DB.
		Preload("Imagenes", func(db *gorm.DB) *gorm.DB {
			return db.Order("orden ASC, id ASC")
		}).
		Preload("Agente").
		Where("slug = ? AND publicada = ?", slug, true).
		First(&prop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Propiedad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la propiedad")
	}

	return helper.JsonOK(c, "", dto.ToPropiedadDetalleDTO(prop))
}
