package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	agenteModel "github.com/Jalann18/kcm-corredora/internals/features/agentes/model"
	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
	route "github.com/Jalann18/kcm-corredora/internals/features/propiedades/route"
)

func setupAdminApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&agenteModel.AgenteModel{},
		&model.PropiedadModel{},
		&model.ImagenPropiedadModel{},
	))

	app := fiber.New()
	api := app.Group("/api/a")
	route.PropiedadesAdminRoutes(api, db)
	return app, db
}

func adminJSON(t *testing.T, app *fiber.App, method, url string, payload any) (int, map[string]any) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func crearBody(titulo string) map[string]any {
	return map[string]any{
		"titulo":         titulo,
		"descripcion":    "Amplia y luminosa",
		"tipo_operacion": "venta",
		"tipo_propiedad": "casa",
		"comuna":         "Maipú",
		"precio_uf":      3500.0,
		"precio_clp":     120000000,
	}
}

func TestAdminCrearPropiedad(t *testing.T) {
	app, db := setupAdminApp(t)

	code, out := adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa en Ñuñoa"))
	assert.Equal(t, fiber.StatusCreated, code)

	data := out["data"].(map[string]any)
	assert.Equal(t, "casa-en-nunoa", data["slug"])
	// publicada por omisión
	assert.Equal(t, true, data["publicada"])
	assert.Equal(t, "Metropolitana de Santiago", data["region"])

	var count int64
	db.Model(&model.PropiedadModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminCrearTitulosDuplicados(t *testing.T) {
	app, _ := setupAdminApp(t)

	_, out := adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa en Maipú"))
	assert.Equal(t, "casa-en-maipu", out["data"].(map[string]any)["slug"])

	_, out = adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa en Maipú"))
	assert.Equal(t, "casa-en-maipu-2", out["data"].(map[string]any)["slug"])

	_, out = adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa en Maipú"))
	assert.Equal(t, "casa-en-maipu-3", out["data"].(map[string]any)["slug"])
}

func TestAdminCrearComunaInvalida(t *testing.T) {
	app, db := setupAdminApp(t)

	body := crearBody("Casa")
	body["comuna"] = "Gotham"
	code, out := adminJSON(t, app, "POST", "/api/a/propiedades/", body)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "error", out["status"])
	errs := out["errors"].(map[string]any)
	assert.Equal(t, "Escoge una comuna válida.", errs["comuna"])

	var count int64
	db.Model(&model.PropiedadModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestAdminActualizarMantieneSlug(t *testing.T) {
	app, _ := setupAdminApp(t)

	_, out := adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa Original"))
	data := out["data"].(map[string]any)
	id := data["id"].(string)
	require.Equal(t, "casa-original", data["slug"])

	code, out := adminJSON(t, app, "PUT", "/api/a/propiedades/"+id, map[string]any{
		"titulo": "Casa Renovada",
	})
	assert.Equal(t, fiber.StatusOK, code)
	data = out["data"].(map[string]any)
	assert.Equal(t, "Casa Renovada", data["titulo"])
	// el slug no cambia: las URLs publicadas siguen funcionando
	assert.Equal(t, "casa-original", data["slug"])
}

func TestAdminDespublicar(t *testing.T) {
	app, db := setupAdminApp(t)

	_, out := adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa Visible"))
	id := out["data"].(map[string]any)["id"].(string)

	publicada := false
	code, _ := adminJSON(t, app, "PUT", "/api/a/propiedades/"+id, map[string]any{
		"publicada": publicada,
	})
	assert.Equal(t, fiber.StatusOK, code)

	var prop model.PropiedadModel
	require.NoError(t, db.First(&prop).Error)
	assert.False(t, prop.Publicada)
}

func TestAdminEliminar(t *testing.T) {
	app, db := setupAdminApp(t)

	_, out := adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa a Borrar"))
	id := out["data"].(map[string]any)["id"].(string)

	code, _ := adminJSON(t, app, "DELETE", "/api/a/propiedades/"+id, nil)
	assert.Equal(t, fiber.StatusOK, code)

	var count int64
	db.Model(&model.PropiedadModel{}).Count(&count)
	assert.Zero(t, count)

	// segunda vez: ya no existe
	code, _ = adminJSON(t, app, "DELETE", "/api/a/propiedades/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestAdminObtenerIDInvalido(t *testing.T) {
	app, _ := setupAdminApp(t)

	code, _ := adminJSON(t, app, "GET", "/api/a/propiedades/no-es-uuid", nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestAdminListarConFiltros(t *testing.T) {
	app, db := setupAdminApp(t)

	adminJSON(t, app, "POST", "/api/a/propiedades/", crearBody("Casa Publicada"))
	body := crearBody("Casa Borrador")
	body["publicada"] = false
	adminJSON(t, app, "POST", "/api/a/propiedades/", body)

	var count int64
	db.Model(&model.PropiedadModel{}).Count(&count)
	require.Equal(t, int64(2), count)

	// el listado admin ve también las no publicadas
	_, out := adminJSON(t, app, "GET", "/api/a/propiedades/", nil)
	items := out["data"].([]any)
	assert.Len(t, items, 2)

	_, out = adminJSON(t, app, "GET", "/api/a/propiedades/?publicada=false", nil)
	items = out["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "casa-borrador", items[0].(map[string]any)["slug"])

	_, out = adminJSON(t, app, "GET", "/api/a/propiedades/?search=borrador", nil)
	items = out["data"].([]any)
	assert.Len(t, items, 1)
}
