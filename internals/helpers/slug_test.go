package helper_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	helper "github.com/Jalann18/kcm-corredora/internals/helpers"
)

func setupSlugDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE propiedades (id TEXT PRIMARY KEY, slug TEXT)").Error)
	return db
}

func TestGenerarSlug(t *testing.T) {
	assert.Equal(t, "casa-en-nunoa-3d-2b", helper.GenerarSlug("Casa en Ñuñoa 3D/2B"))
	assert.Equal(t, "departamento-jardin", helper.GenerarSlug("  Departamento Jardín  "))
	assert.Equal(t, "", helper.GenerarSlug("!!!"))
}

func TestGenerarSlugUnicoSinColision(t *testing.T) {
	db := setupSlugDB(t)
	opts := helper.SlugOptions{Table: "propiedades", SlugColumn: "slug"}

	slug, err := helper.GenerarSlugUnico(db, opts, "Casa en Maipú")
	require.NoError(t, err)
	assert.Equal(t, "casa-en-maipu", slug)
}

func TestGenerarSlugUnicoConColisiones(t *testing.T) {
	db := setupSlugDB(t)
	opts := helper.SlugOptions{Table: "propiedades", SlugColumn: "slug"}

	require.NoError(t, db.Exec("INSERT INTO propiedades (id, slug) VALUES ('a', 'casa-en-maipu')").Error)
	require.NoError(t, db.Exec("INSERT INTO propiedades (id, slug) VALUES ('b', 'casa-en-maipu-2')").Error)

	slug, err := helper.GenerarSlugUnico(db, opts, "Casa en Maipú")
	require.NoError(t, err)
	assert.Equal(t, "casa-en-maipu-3", slug)
}

func TestGenerarSlugUnicoExcluyeLaPropiaFila(t *testing.T) {
	db := setupSlugDB(t)
	require.NoError(t, db.Exec("INSERT INTO propiedades (id, slug) VALUES ('propia', 'casa-en-maipu')").Error)

	opts := helper.SlugOptions{
		Table:      "propiedades",
		SlugColumn: "slug",
		IDColumn:   "id",
		ExcluirID:  "propia",
	}
	slug, err := helper.GenerarSlugUnico(db, opts, "Casa en Maipú")
	require.NoError(t, err)
	// el único ocupante del slug es la misma fila: se reutiliza sin sufijo
	assert.Equal(t, "casa-en-maipu", slug)
}

func TestGenerarSlugUnicoFallbackTitulo(t *testing.T) {
	db := setupSlugDB(t)
	opts := helper.SlugOptions{Table: "propiedades", SlugColumn: "slug"}

	slug, err := helper.GenerarSlugUnico(db, opts, "!!! ???")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slug, "propiedad-"), slug)
}

func TestGenerarSlugUnicoRespetaLargoMaximo(t *testing.T) {
	db := setupSlugDB(t)
	opts := helper.SlugOptions{Table: "propiedades", SlugColumn: "slug"}

	largo := strings.Repeat("casa bonita ", 40)
	slug, err := helper.GenerarSlugUnico(db, opts, largo)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(slug), helper.DefaultSlugMaxLen)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
