package controller_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jalann18/kcm-corredora/internals/features/leads/model"
	route "github.com/Jalann18/kcm-corredora/internals/features/leads/route"
)

func TestAdminListarLeads(t *testing.T) {
	app, db := setupApp(t)
	api := app.Group("/api/a")
	route.LeadsAdminRoutes(api, db)

	require.NoError(t, db.Create(&model.LeadModel{
		Nombre: "Ana Torres", Email: "ana@ejemplo.cl", Origen: model.OrigenContacto,
	}).Error)
	require.NoError(t, db.Create(&model.LeadModel{
		Nombre: "Beto Núñez", Email: "beto@ejemplo.cl", Origen: model.OrigenPublicacion,
	}).Error)

	get := func(url string) []any {
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		require.NoError(t, err)
		raw, _ := io.ReadAll(resp.Body)
		var out map[string]any
		require.NoError(t, json.Unmarshal(raw, &out))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		return out["data"].([]any)
	}

	assert.Len(t, get("/api/a/leads"), 2)

	items := get("/api/a/leads?origen=publicacion")
	require.Len(t, items, 1)
	assert.Equal(t, "Beto Núñez", items[0].(map[string]any)["nombre"])

	items = get("/api/a/leads?search=ana")
	require.Len(t, items, 1)
	assert.Equal(t, "Ana Torres", items[0].(map[string]any)["nombre"])
}
