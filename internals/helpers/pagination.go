package helper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Paginación del listado público: tamaño fijo de 12.
const PorPaginaListado = 12

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Count      int   `json:"count"` // items en esta página
}

// PaginaSolicitada lee ?page=. Valores no numéricos o < 1 degradan a 1;
// el clamp contra la última página se hace después del count.
func PaginaSolicitada(c *fiber.Ctx) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ClampPagina acota page a [1, totalPages]. Con total 0 la página es 1
// (una página vacía, nunca error).
func ClampPagina(page, perPage int, total int64) (int, int) {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page, totalPages
}

func BuildPagination(total int64, page, perPage, count int) Pagination {
	page, totalPages := ClampPagina(page, perPage, total)
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Count:      count,
	}
}

// QueryStringSinPagina re-deriva el query string del request quitando "page",
// para que los links del paginador conserven los filtros activos.
func QueryStringSinPagina(c *fiber.Ctx) string {
	params := url.Values{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		if string(k) == "page" {
			return
		}
		params.Add(string(k), string(v))
	})
	return params.Encode()
}
