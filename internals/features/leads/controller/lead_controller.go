package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/constants"
	"github.com/Jalann18/kcm-corredora/internals/features/leads/dto"
	"github.com/Jalann18/kcm-corredora/internals/features/leads/model"
	propModel "github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

var validateLead = newLeadValidator()

func newLeadValidator() *validator.Validate {
	v := validator.New()
	// los errores por campo se reportan con el nombre del json tag
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// erroresDeValidacion traduce los errores del validator a mensajes por campo.
func erroresDeValidacion(err error) map[string]string {
	errs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = "Formulario inválido."
		return errs
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			errs[fe.Field()] = "Este campo es obligatorio."
		case "email":
			errs[fe.Field()] = "Ingresa un correo válido."
		case "max":
			errs[fe.Field()] = "Este campo es demasiado largo."
		default:
			errs[fe.Field()] = "Valor inválido."
		}
	}
	return errs
}

// LeadController recibe los tres puntos de entrada de leads. Todos terminan
// en un único Create atómico; un lead nunca se edita después.
type LeadController struct {
	DB *gorm.DB
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{DB: db}
}

// =======================
// POST /propiedades/:slug — consulta desde la ficha
// =======================
func (ctrl *LeadController) CrearDesdeDetalle(c *fiber.Ctx) error {
	var prop propModel.PropiedadModel
	err := ctrl.DB.
		Where("slug = ? AND publicada = ?", c.Params("slug"), true).
		First(&prop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Propiedad no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la propiedad")
	}

	var body dto.LeadRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateLead.Struct(&body); err != nil {
		return helper.JsonFieldErrors(c, erroresDeValidacion(err), body)
	}
	body.Normalizar()

	lead := model.LeadModel{
		PropiedadID: &prop.ID,
		Nombre:      body.Nombre,
		Email:       body.Email,
		Telefono:    body.Telefono,
		Mensaje:     body.Mensaje,
		Comuna:      prop.Comuna,
		Origen:      model.OrigenDetalle,
	}
	if err := ctrl.DB.Create(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar tu consulta")
	}
	return helper.JsonCreated(c, "¡Gracias! Te contactaremos pronto.", dto.ToLeadDTO(lead))
}

// =======================
// GET/POST /contacto — contacto general, sin propiedad asociada
// =======================
func (ctrl *LeadController) FormContacto(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", fiber.Map{
		"campos": []string{"nombre", "email", "telefono", "mensaje"},
	})
}

func (ctrl *LeadController) CrearContacto(c *fiber.Ctx) error {
	var body dto.LeadRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateLead.Struct(&body); err != nil {
		return helper.JsonFieldErrors(c, erroresDeValidacion(err), body)
	}
	body.Normalizar()

	lead := model.LeadModel{
		Nombre:   body.Nombre,
		Email:    body.Email,
		Telefono: body.Telefono,
		Mensaje:  body.Mensaje,
		Origen:   model.OrigenContacto,
	}
	if err := ctrl.DB.Create(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar tu mensaje")
	}
	return helper.JsonCreated(c, "¡Gracias! Te contactaremos muy pronto", dto.ToLeadDTO(lead))
}

// =======================
// GET/POST /quiero-publicar — visitante que quiere publicar su propiedad
// =======================
func (ctrl *LeadController) FormQuieroPublicar(c *fiber.Ctx) error {
	// texto breve dependiente de la operación elegida (lo usa la UI)
	helperText := ""
	switch c.Query("tipo_operacion") {
	case "venta":
		helperText = "Venta: indica precio estimado de venta y mejoras relevantes."
	case "arriendo":
		helperText = "Arriendo: indica canon mensual y si incluye gastos comunes."
	}

	return helper.JsonOK(c, "", fiber.Map{
		"tipos_operacion": constants.TiposOperacion,
		"tipos_propiedad": constants.TiposPropiedad,
		"comunas":         constants.ComunasRM,
		"helper_text":     helperText,
	})
}

func (ctrl *LeadController) CrearQuieroPublicar(c *fiber.Ctx) error {
	var body dto.QuieroPublicarRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	errs := map[string]string{}
	if err := validateLead.Struct(&body); err != nil {
		errs = erroresDeValidacion(err)
	}
	if body.TipoOperacion != "" && !constants.EsOperacionValida(body.TipoOperacion) {
		errs["tipo_operacion"] = "Escoge una opción válida."
	}
	if body.TipoPropiedad != "" && !constants.EsPropiedadValida(body.TipoPropiedad) {
		errs["tipo_propiedad"] = "Escoge una opción válida."
	}
	if body.Comuna != "" && !constants.EsComunaValida(body.Comuna) {
		errs["comuna"] = "Escoge una comuna válida."
	}

	precio, err := helper.ParseEnteroRelajado(body.PrecioReferencial)
	if err != nil {
		errs["precio_referencial"] = err.Error()
	}
	if len(errs) > 0 {
		return helper.JsonFieldErrors(c, errs, body)
	}
	body.Normalizar()

	// El mensaje se sintetiza con los datos de la ficha deseada y el texto
	// libre del visitante.
	precioPart := ""
	if precio != nil {
		precioPart = fmt.Sprintf(" | $%d", *precio)
	}
	mensaje := fmt.Sprintf("[%s | %s | %s%s] %s",
		strings.ToUpper(body.TipoOperacion),
		body.TipoPropiedad,
		body.Comuna,
		precioPart,
		body.Mensaje,
	)

	lead := model.LeadModel{
		Nombre:   body.Nombre,
		Email:    body.Email,
		Telefono: body.Telefono,
		Mensaje:  mensaje,
		Comuna:   body.Comuna,
		Origen:   model.OrigenPublicacion,
	}
	if err := ctrl.DB.Create(&lead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar tu solicitud")
	}
	return helper.JsonCreated(c, "¡Gracias! Te contactaremos para publicar tu propiedad.", dto.ToLeadDTO(lead))
}
