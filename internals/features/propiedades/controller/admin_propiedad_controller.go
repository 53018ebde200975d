package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/constants"
	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/dto"
	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

var validateProp = validator.New()

// AdminPropiedadController es el CRUD del back-office. A diferencia del
// listado público, acá se ven también las no publicadas.
type AdminPropiedadController struct {
	DB *gorm.DB
}

func NewAdminPropiedadController(db *gorm.DB) *AdminPropiedadController {
	return &AdminPropiedadController{DB: db}
}

func slugOpts() helper.SlugOptions {
	return helper.SlugOptions{Table: "propiedades", SlugColumn: "slug", IDColumn: "id"}
}

// =======================
// GET /api/a/propiedades
// =======================
func (ctrl *AdminPropiedadController) Listar(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PropiedadModel{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(titulo) LIKE ? OR LOWER(descripcion) LIKE ? OR LOWER(comuna) LIKE ? OR LOWER(direccion) LIKE ?)",
			like, like, like, like)
	}
	if v := c.Query("tipo_operacion"); v != "" {
		q = q.Where("tipo_operacion = ?", v)
	}
	if v := c.Query("tipo_propiedad"); v != "" {
		q = q.Where("tipo_propiedad = ?", v)
	}
	if v := c.Query("publicada"); v != "" {
		q = q.Where("publicada = ?", v == "true" || v == "1")
	}
	if v := c.Query("destacada"); v != "" {
		q = q.Where("destacada = ?", v == "true" || v == "1")
	}

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

	return helper.JsonList(c, dto.ToPropiedadCardList(props),
		helper.BuildPagination(total, page, helper.PorPaginaListado, len(props)))
}

// =======================
// POST /api/a/propiedades
// =======================
func (ctrl *AdminPropiedadController) Crear(c *fiber.Ctx) error {
	var body dto.CrearPropiedadRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateProp.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if errs := validarCatalogo(body.TipoOperacion, body.TipoPropiedad, body.Comuna); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs, body)
	}

	slug, err := helper.GenerarSlugUnico(ctrl.DB, slugOpts(), body.Titulo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el slug")
	}

	publicada := true
	if body.Publicada != nil {
		publicada = *body.Publicada
	}

	prop := model.PropiedadModel{
		Titulo:           body.Titulo,
		Slug:             slug,
		Descripcion:      body.Descripcion,
		TipoOperacion:    body.TipoOperacion,
		TipoPropiedad:    body.TipoPropiedad,
		Region:           constants.RegionRM,
		Comuna:           body.Comuna,
		Direccion:        body.Direccion,
		PrecioUF:         body.PrecioUF,
		PrecioCLP:        body.PrecioCLP,
		Dormitorios:      body.Dormitorios,
		Banos:            body.Banos,
		Estacionamientos: body.Estacionamientos,
		SupConstruidaM2:  body.SupConstruidaM2,
		SupTerrenoM2:     body.SupTerrenoM2,
		AnoConstruccion:  body.AnoConstruccion,
		AgenteID:         body.AgenteID,
		Destacada:        body.Destacada,
		Publicada:        publicada,
	}

	if err := ctrl.DB.Create(&prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la propiedad")
	}
	return helper.JsonCreated(c, "Propiedad creada", dto.ToPropiedadDetalleDTO(prop))
}

// =======================
// GET /api/a/propiedades/:id
// =======================
func (ctrl *AdminPropiedadController) Obtener(c *fiber.Ctx) error {
	prop, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return propError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToPropiedadDetalleDTO(*prop))
}

// =======================
// PUT /api/a/propiedades/:id
// =======================
func (ctrl *AdminPropiedadController) Actualizar(c *fiber.Ctx) error {
	prop, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return propError(c, err)
	}

	var body dto.ActualizarPropiedadRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateProp.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	op, tp, com := prop.TipoOperacion, prop.TipoPropiedad, prop.Comuna
	if body.TipoOperacion != nil {
		op = *body.TipoOperacion
	}
	if body.TipoPropiedad != nil {
		tp = *body.TipoPropiedad
	}
	if body.Comuna != nil {
		com = *body.Comuna
	}
	if errs := validarCatalogo(op, tp, com); len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs, body)
	}

	aplicarCambios(prop, body)

	// Si el título cambió el slug se mantiene (las URLs publicadas no se
	// rompen). Solo se regenera cuando quedó vacío.
	if prop.Slug == "" {
		slug, err := helper.GenerarSlugUnico(ctrl.DB, helper.SlugOptions{
			Table: "propiedades", SlugColumn: "slug", IDColumn: "id", ExcluirID: prop.ID,
		}, prop.Titulo)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el slug")
		}
		prop.Slug = slug
	}

	if err := ctrl.DB.Save(prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la propiedad")
	}
	return helper.JsonUpdated(c, "Propiedad actualizada", dto.ToPropiedadDetalleDTO(*prop))
}

// =======================
// DELETE /api/a/propiedades/:id
// =======================
func (ctrl *AdminPropiedadController) Eliminar(c *fiber.Ctx) error {
	prop, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return propError(c, err)
	}

	// Las imágenes y leads asociados caen en cascada; el archivo físico de
	// la galería se limpia acá.
	for _, img := range prop.Imagenes {
		_ = helper.EliminarImagen(img.Imagen)
	}
	if prop.Portada != nil {
		_ = helper.EliminarImagen(*prop.Portada)
	}

	if err := ctrl.DB.Select("Imagenes").Delete(prop).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la propiedad")
	}
	return helper.JsonDeleted(c, "Propiedad eliminada", fiber.Map{"id": prop.ID})
}

// =======================
// POST /api/a/propiedades/:id/imagenes (multipart)
// =======================
func (ctrl *AdminPropiedadController) SubirImagen(c *fiber.Ctx) error {
	prop, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return propError(c, err)
	}

	fh, err := c.FormFile("imagen")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'imagen'")
	}

	ruta, err := helper.GuardarImagenWebp("propiedades/galeria", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	img := model.ImagenPropiedadModel{
		PropiedadID: prop.ID,
		Imagen:      ruta,
		Orden:       len(prop.Imagenes),
	}
	if err := ctrl.DB.Create(&img).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la imagen")
	}
	return helper.JsonCreated(c, "Imagen agregada", dto.ImagenDTO{ID: img.ID, Imagen: img.Imagen, Orden: img.Orden})
}

// =======================
// PUT /api/a/propiedades/:id/imagenes/:imagenId  {"orden": n}
// =======================
func (ctrl *AdminPropiedadController) ReordenarImagen(c *fiber.Ctx) error {
	var body struct {
		Orden int `json:"orden" validate:"gte=0"`
	}
	if err := c.BodyParser(&body); err != nil || body.Orden < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Orden inválido")
	}

	res := ctrl.DB.Model(&model.ImagenPropiedadModel{}).
		Where("id = ? AND propiedad_id = ?", c.Params("imagenId"), c.Params("id")).
		Update("orden", body.Orden)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo reordenar la imagen")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Imagen no encontrada")
	}
	return helper.JsonUpdated(c, "Orden actualizado", nil)
}

// =======================
// DELETE /api/a/propiedades/:id/imagenes/:imagenId
// =======================
func (ctrl *AdminPropiedadController) EliminarImagen(c *fiber.Ctx) error {
	var img model.ImagenPropiedadModel
	err := ctrl.DB.
		Where("id = ? AND propiedad_id = ?", c.Params("imagenId"), c.Params("id")).
		First(&img).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Imagen no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la imagen")
	}

	if err := ctrl.DB.Delete(&img).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la imagen")
	}
	_ = helper.EliminarImagen(img.Imagen)
	return helper.JsonDeleted(c, "Imagen eliminada", fiber.Map{"id": img.ID})
}

// =======================
// POST /api/a/propiedades/:id/portada (multipart)
// =======================
func (ctrl *AdminPropiedadController) SubirPortada(c *fiber.Ctx) error {
	prop, err := ctrl.buscarPorID(c.Params("id"))
	if err != nil {
		return propError(c, err)
	}

	fh, err := c.FormFile("imagen")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'imagen'")
	}

	ruta, err := helper.GuardarImagenWebp("propiedades", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if prop.Portada != nil {
		_ = helper.EliminarImagen(*prop.Portada)
	}
	if err := ctrl.DB.Model(prop).Update("portada", ruta).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la portada")
	}
	return helper.JsonUpdated(c, "Portada actualizada", fiber.Map{"portada": ruta})
}

// =============================
// utils
// =============================

func (ctrl *AdminPropiedadController) buscarPorID(id string) (*model.PropiedadModel, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var prop model.PropiedadModel
	if err := ctrl.DB.
		Preload("Imagenes", func(db *gorm.DB) *gorm.DB { return db.Order("orden ASC, id ASC") }).
		Preload("Agente").
		First(&prop, "id = ?", pid).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}

func propError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Propiedad no encontrada")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la propiedad")
}

func validarCatalogo(op, tp, comuna string) map[string]string {
	errs := map[string]string{}
	if !constants.EsOperacionValida(op) {
		errs["tipo_operacion"] = "Escoge una opción válida."
	}
	if !constants.EsPropiedadValida(tp) {
		errs["tipo_propiedad"] = "Escoge una opción válida."
	}
	if !constants.EsComunaValida(comuna) {
		errs["comuna"] = "Escoge una comuna válida."
	}
	return errs
}

func aplicarCambios(prop *model.PropiedadModel, body dto.ActualizarPropiedadRequest) {
	if body.Titulo != nil {
		prop.Titulo = *body.Titulo
	}
	if body.Descripcion != nil {
		prop.Descripcion = *body.Descripcion
	}
	if body.TipoOperacion != nil {
		prop.TipoOperacion = *body.TipoOperacion
	}
	if body.TipoPropiedad != nil {
		prop.TipoPropiedad = *body.TipoPropiedad
	}
	if body.Comuna != nil {
		prop.Comuna = *body.Comuna
	}
	if body.Direccion != nil {
		prop.Direccion = *body.Direccion
	}
	if body.PrecioUF != nil {
		prop.PrecioUF = body.PrecioUF
	}
	if body.PrecioCLP != nil {
		prop.PrecioCLP = *body.PrecioCLP
	}
	if body.Dormitorios != nil {
		prop.Dormitorios = *body.Dormitorios
	}
	if body.Banos != nil {
		prop.Banos = *body.Banos
	}
	if body.Estacionamientos != nil {
		prop.Estacionamientos = *body.Estacionamientos
	}
	if body.SupConstruidaM2 != nil {
		prop.SupConstruidaM2 = body.SupConstruidaM2
	}
	if body.SupTerrenoM2 != nil {
		prop.SupTerrenoM2 = body.SupTerrenoM2
	}
	if body.AnoConstruccion != nil {
		prop.AnoConstruccion = body.AnoConstruccion
	}
	if body.AgenteID != nil {
		prop.AgenteID = body.AgenteID
	}
	if body.Destacada != nil {
		prop.Destacada = *body.Destacada
	}
	if body.Publicada != nil {
		prop.Publicada = *body.Publicada
	}
}
