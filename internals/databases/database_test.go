package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	database "github.com/Jalann18/kcm-corredora/internals/databases"
	propModel "github.com/Jalann18/kcm-corredora/internals/features/propiedades/model"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrar(db))
	return db
}

func TestMigrarCreaTodasLasTablas(t *testing.T) {
	db := setupDB(t)
	for _, tabla := range []string{
		"agentes", "propiedades", "imagenes_propiedad",
		"leads", "carousel_slides", "usuarios_admin",
	} {
		assert.True(t, db.Migrator().HasTable(tabla), tabla)
	}
}

func TestBackfillPrecioUF(t *testing.T) {
	db := setupDB(t)
	t.Setenv("UF_CLP_VALUE", "36000")

	sinUF := propModel.PropiedadModel{
		Titulo: "Legado", Slug: "legado", Descripcion: "x",
		TipoOperacion: "venta", TipoPropiedad: "casa", Comuna: "Maipú",
		PrecioCLP: 120000000, Publicada: true,
	}
	require.NoError(t, db.Create(&sinUF).Error)

	yaUF := 50.0
	conUF := propModel.PropiedadModel{
		Titulo: "Nueva", Slug: "nueva", Descripcion: "x",
		TipoOperacion: "venta", TipoPropiedad: "casa", Comuna: "Maipú",
		PrecioCLP: 1000000, PrecioUF: &yaUF, Publicada: true,
	}
	require.NoError(t, db.Create(&conUF).Error)

	require.NoError(t, database.BackfillPrecioUF(db))

	var got propModel.PropiedadModel
	require.NoError(t, db.First(&got, "slug = ?", "legado").Error)
	// 120.000.000 / 36.000 = 3333.333... → half-up a 3333.33
	require.NotNil(t, got.PrecioUF)
	assert.InDelta(t, 3333.33, *got.PrecioUF, 0.001)

	// la fila que ya tenía UF no se toca
	var got2 propModel.PropiedadModel
	require.NoError(t, db.First(&got2, "slug = ?", "nueva").Error)
	assert.InDelta(t, 50.0, *got2.PrecioUF, 0.001)
}

func TestBackfillRedondeoHalfUp(t *testing.T) {
	db := setupDB(t)
	t.Setenv("UF_CLP_VALUE", "36000")

	// 180.540 CLP = 5,015 UF exactas → el medio centésimo sube: 5.02
	p := propModel.PropiedadModel{
		Titulo: "Borde", Slug: "borde", Descripcion: "x",
		TipoOperacion: "venta", TipoPropiedad: "casa", Comuna: "Maipú",
		PrecioCLP: 180540, Publicada: true,
	}
	require.NoError(t, db.Create(&p).Error)

	require.NoError(t, database.BackfillPrecioUF(db))

	var got propModel.PropiedadModel
	require.NoError(t, db.First(&got, "slug = ?", "borde").Error)
	require.NotNil(t, got.PrecioUF)
	assert.InDelta(t, 5.02, *got.PrecioUF, 0.001)
}
