package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/home/dto"
	"github.com/Jalann18/kcm-corredora/internals/features/home/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

var validateSlide = validator.New()

type AdminSlideController struct {
	DB *gorm.DB
}

func NewAdminSlideController(db *gorm.DB) *AdminSlideController {
	return &AdminSlideController{DB: db}
}

// =======================
// GET /api/a/slides — todos, activos o no
// =======================
func (ctrl *AdminSlideController) Listar(c *fiber.Ctx) error {
	var slides []model.CarouselSlideModel
	if err := ctrl.DB.Order("orden ASC, id ASC").Find(&slides).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener los slides")
	}
	return helper.JsonList(c, dto.ToCarouselSlideList(slides), nil)
}

// =======================
// POST /api/a/slides (multipart: imagen + campos)
// =======================
func (ctrl *AdminSlideController) Crear(c *fiber.Ctx) error {
	var body dto.CrearSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fh, err := c.FormFile("imagen")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'imagen'")
	}
	ruta, err := helper.GuardarImagenWebp("banners", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	activo := true
	if body.Activo != nil {
		activo = *body.Activo
	}
	slide := model.CarouselSlideModel{
		Imagen:    ruta,
		Titulo:    body.Titulo,
		Subtitulo: body.Subtitulo,
		CtaText:   body.CtaText,
		CtaURL:    body.CtaURL,
		Activo:    activo,
		Orden:     body.Orden,
	}
	if err := ctrl.DB.Create(&slide).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el slide")
	}
	return helper.JsonCreated(c, "Slide creado", dto.ToCarouselSlideDTO(slide))
}

// =======================
// PUT /api/a/slides/:id
// =======================
func (ctrl *AdminSlideController) Actualizar(c *fiber.Ctx) error {
	slide, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return slideError(c, err)
	}

	var body dto.ActualizarSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if body.Titulo != nil {
		slide.Titulo = *body.Titulo
	}
	if body.Subtitulo != nil {
		slide.Subtitulo = *body.Subtitulo
	}
	if body.CtaText != nil {
		slide.CtaText = *body.CtaText
	}
	if body.CtaURL != nil {
		slide.CtaURL = *body.CtaURL
	}
	if body.Activo != nil {
		slide.Activo = *body.Activo
	}
	if body.Orden != nil {
		slide.Orden = *body.Orden
	}

	if err := ctrl.DB.Save(slide).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el slide")
	}
	return helper.JsonUpdated(c, "Slide actualizado", dto.ToCarouselSlideDTO(*slide))
}

// =======================
// DELETE /api/a/slides/:id
// =======================
func (ctrl *AdminSlideController) Eliminar(c *fiber.Ctx) error {
	slide, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return slideError(c, err)
	}

	if err := ctrl.DB.Delete(slide).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el slide")
	}
	_ = helper.EliminarImagen(slide.Imagen)
	return helper.JsonDeleted(c, "Slide eliminado", fiber.Map{"id": slide.ID})
}

// =============================
// utils
// =============================

func (ctrl *AdminSlideController) buscarPorID(id string) (*model.CarouselSlideModel, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var slide model.CarouselSlideModel
	if err := ctrl.DB.First(&slide, "id = ?", sid).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

func slideError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Slide no encontrado")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el slide")
}
