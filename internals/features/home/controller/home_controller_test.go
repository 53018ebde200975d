package controller_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	agenteModel "github.com/Jalann18/kcm-corredora/internals/features/agentes/model"
	"github.com/Jalann18/kcm-corredora/internals/features/home/model"
	route "github.com/Jalann18/kcm-corredora/internals/features/home/route"
	propModel "github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
)

func setupHomeApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&agenteModel.AgenteModel{},
		&propModel.PropiedadModel{},
		&model.CarouselSlideModel{},
	))

	app := fiber.New()
	route.HomePublicRoutes(app, db)
	return app, db
}

func getHome(t *testing.T, app *fiber.App) map[string]any {
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out["data"].(map[string]any)
}

func TestHomeSecciones(t *testing.T) {
	app, db := setupHomeApp(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		p := propModel.PropiedadModel{
			Titulo: fmt.Sprintf("Propiedad %02d", i), Slug: fmt.Sprintf("propiedad-%02d", i),
			Descripcion: "x", TipoOperacion: "venta", TipoPropiedad: "casa",
			Comuna: "Maipú", Publicada: true,
			Destacada: i < 2, // las dos primeras destacadas
			Creado:    base.Add(-time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&p).Error)
	}

	require.NoError(t, db.Create(&model.CarouselSlideModel{Imagen: "a.webp", Orden: 1, Activo: true}).Error)
	require.NoError(t, db.Create(&model.CarouselSlideModel{Imagen: "b.webp", Orden: 2, Activo: true}).Error)
	// slide desactivado que no debe salir
	off := model.CarouselSlideModel{Imagen: "off.webp", Activo: true}
	require.NoError(t, db.Create(&off).Error)
	require.NoError(t, db.Model(&off).Update("activo", false).Error)

	data := getHome(t, app)

	slides := data["slides"].([]any)
	require.Len(t, slides, 2)
	assert.Equal(t, "a.webp", slides[0].(map[string]any)["imagen"])

	destacadas := data["destacadas"].([]any)
	assert.Len(t, destacadas, 2)

	// recientes no repite las destacadas y corta en 9
	recientes := data["recientes"].([]any)
	assert.Len(t, recientes, 9)
	vistos := map[string]bool{}
	for _, d := range destacadas {
		vistos[d.(map[string]any)["slug"].(string)] = true
	}
	for _, r := range recientes {
		slug := r.(map[string]any)["slug"].(string)
		assert.False(t, vistos[slug], slug)
	}

	form := data["form"].(map[string]any)
	assert.NotEmpty(t, form["comunas"])
	assert.NotEmpty(t, form["tipos_operacion"])
}

func TestHomeVacia(t *testing.T) {
	app, _ := setupHomeApp(t)

	data := getHome(t, app)
	assert.Empty(t, data["destacadas"])
	assert.Empty(t, data["recientes"])
	assert.Empty(t, data["slides"])
}
