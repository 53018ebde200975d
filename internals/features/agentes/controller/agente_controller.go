package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/agentes/dto"
	"github.com/Jalann18/kcm-corredora/internals/features/agentes/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

var validateAgente = validator.New()

type AgenteController struct {
	DB *gorm.DB
}

func NewAgenteController(db *gorm.DB) *AgenteController {
	return &AgenteController{DB: db}
}

// =======================
// GET /api/a/agentes
// =======================
func (ctrl *AgenteController) Listar(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AgenteModel{})
	if v := c.Query("activo"); v != "" {
		q = q.Where("activo = ?", v == "true" || v == "1")
	}

	var agentes []model.AgenteModel
	if err := q.Order("nombre ASC").Find(&agentes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener los agentes")
	}

	out := make([]dto.AgenteDTO, 0, len(agentes))
	for _, a := range agentes {
		out = append(out, dto.ToAgenteDTO(a))
	}
	return helper.JsonList(c, out, nil)
}

// =======================
// POST /api/a/agentes
// =======================
func (ctrl *AgenteController) Crear(c *fiber.Ctx) error {
	var body dto.CrearAgenteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAgente.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	activo := true
	if body.Activo != nil {
		activo = *body.Activo
	}
	agente := model.AgenteModel{
		Nombre:   helper.NormalizarNombre(body.Nombre),
		Email:    helper.NormalizarEmail(body.Email),
		Telefono: helper.NormalizarTelefono(body.Telefono),
		Activo:   activo,
	}
	if err := ctrl.DB.Create(&agente).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el agente")
	}
	return helper.JsonCreated(c, "Agente creado", dto.ToAgenteDTO(agente))
}

// =======================
// PUT /api/a/agentes/:id
// =======================
func (ctrl *AgenteController) Actualizar(c *fiber.Ctx) error {
	agente, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return agenteError(c, err)
	}

	var body dto.ActualizarAgenteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAgente.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if body.Nombre != nil {
		agente.Nombre = helper.NormalizarNombre(*body.Nombre)
	}
	if body.Email != nil {
		agente.Email = helper.NormalizarEmail(*body.Email)
	}
	if body.Telefono != nil {
		agente.Telefono = helper.NormalizarTelefono(*body.Telefono)
	}
	if body.Activo != nil {
		agente.Activo = *body.Activo
	}

	if err := ctrl.DB.Save(agente).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el agente")
	}
	return helper.JsonUpdated(c, "Agente actualizado", dto.ToAgenteDTO(*agente))
}

// =======================
// POST /api/a/agentes/:id/foto (multipart)
// =======================
func (ctrl *AgenteController) SubirFoto(c *fiber.Ctx) error {
	agente, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return agenteError(c, err)
	}

	fh, err := c.FormFile("imagen")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'imagen'")
	}
	ruta, err := helper.GuardarImagenWebp("agentes", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if agente.Foto != nil {
		_ = helper.EliminarImagen(*agente.Foto)
	}
	if err := ctrl.DB.Model(agente).Update("foto", ruta).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la foto")
	}
	return helper.JsonUpdated(c, "Foto actualizada", fiber.Map{"foto": ruta})
}

// =======================
// DELETE /api/a/agentes/:id
// Las propiedades quedan sin agente, no se borran.
// =======================
func (ctrl *AgenteController) Eliminar(c *fiber.Ctx) error {
	agente, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return agenteError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("propiedades").
			Where("agente_id = ?", agente.ID).
			Update("agente_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(agente).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el agente")
	}
	return helper.JsonDeleted(c, "Agente eliminado", fiber.Map{"id": agente.ID})
}

// =============================
// utils
// =============================

func (ctrl *AgenteController) buscarPorID(id string) (*model.AgenteModel, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var agente model.AgenteModel
	if err := ctrl.DB.First(&agente, "id = ?", aid).Error; err != nil {
		return nil, err
	}
	return &agente, nil
}

func agenteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Agente no encontrado")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el agente")
}
