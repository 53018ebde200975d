package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/leads/dto"
	"github.com/Jalann18/kcm-corredora/internals/features/leads/model"
	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

// AdminLeadController solo lee: los leads son historial, no se editan.
type AdminLeadController struct {
	DB *gorm.DB
}

func NewAdminLeadController(db *gorm.DB) *AdminLeadController {
	return &AdminLeadController{DB: db}
}

// =======================
// GET /api/a/leads
// Query: ?origen=publicacion&propiedad=<uuid>&search=ana&page=1
// =======================
func (ctrl *AdminLeadController) Listar(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.LeadModel{})

	if v := c.Query("origen"); v != "" {
		q = q.Where("origen = ?", v)
	}
	if v := c.Query("propiedad"); v != "" {
		q = q.Where("propiedad_id = ?", v)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(nombre) LIKE ? OR LOWER(email) LIKE ? OR telefono LIKE ?)", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo contar los leads")
	}

	page := helper.PaginaSolicitada(c)
	page, _ = helper.ClampPagina(page, helper.PorPaginaListado, total)

	var leads []model.LeadModel
	if err := q.
		Order("creado DESC").
		Limit(helper.PorPaginaListado).
		Offset((page - 1) * helper.PorPaginaListado).
		Find(&leads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener los leads")
	}

	out := make([]dto.LeadDTO, 0, len(leads))
	for _, l := range leads {
		out = append(out, dto.ToLeadDTO(l))
	}
	return helper.JsonList(c, out, helper.BuildPagination(total, page, helper.PorPaginaListado, len(out)))
}
