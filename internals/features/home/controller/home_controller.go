package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/constants"
	"github.com/Jalann18/kcm-corredora/internals/features/home/dto"
	"github.com/Jalann18/kcm-corredora/internals/features/home/model"
	propDto "github.com/Jalann18/kcm-corredora/internals/features/propiedades/dto"
	propModel "github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

type HomeController struct {
	DB *gorm.DB
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{DB: db}
}

// =======================
// GET / — portada
// =======================
func (ctrl *HomeController) Home(c *fiber.Ctx) error {
	// Slides administrables (máx. 6)
	var slides []model.CarouselSlideModel
	if err := ctrl.DB.
		Where("activo = ?", true).
		Order("orden ASC, id ASC").
		Limit(6).
		Find(&slides).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar la portada")
	}

	// Destacadas (máx. 6)
	var destacadas []propModel.PropiedadModel
	if err := ctrl.DB.
		Where("publicada = ? AND destacada = ?", true, true).
		Order("creado DESC").
		Limit(6).
		Find(&destacadas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar la portada")
	}

	// Recientes (máx. 9, sin duplicar destacadas)
	q := ctrl.DB.Where("publicada = ?", true)
	if len(destacadas) > 0 {
		ids := make([]uuid.UUID, 0, len(destacadas))
		for _, p := range destacadas {
			ids = append(ids, p.ID)
		}
		q = q.Where("id NOT IN ?", ids)
	}
	var recientes []propModel.PropiedadModel
	if err := q.Order("creado DESC").Limit(9).Find(&recientes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar la portada")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"slides":     dto.ToCarouselSlideList(slides),
		"destacadas": propDto.ToPropiedadCardList(destacadas),
		"recientes":  propDto.ToPropiedadCardList(recientes),
		// catálogos para el formulario de búsqueda
		"form": fiber.Map{
			"regiones":        constants.Regiones,
			"comunas":         constants.ComunasRM,
			"tipos_operacion": constants.TiposOperacion,
			"tipos_propiedad": constants.TiposPropiedad,
			"monedas":         constants.Monedas,
		},
	})
}

// =======================
// GET /nosotros — página informativa estática
// =======================
func (ctrl *HomeController) Nosotros(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", fiber.Map{
		"nombre": "KCM Corredora de Propiedades",
		"region": constants.RegionRM,
	})
}
