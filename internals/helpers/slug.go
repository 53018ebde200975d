package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 180

// SlugOptions define dónde y cómo chequear unicidad del slug.
type SlugOptions struct {
	Table      string // ej: "propiedades"
	SlugColumn string // ej: "slug"

	// Columna de PK para excluir la propia fila en updates (opcional).
	IDColumn string
	// Valor a excluir; se ignora si IDColumn está vacío o ExcluirID es nil.
	ExcluirID any

	// Largo máximo del slug (incluye sufijos -2, -3, ...). 0 = default.
	MaxLen int
}

// GenerarSlug normaliza un título a slug URL-safe:
// minúsculas, no-alfanuméricos a "-", colapsa guiones y recorta extremos.
func GenerarSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case unicode.IsLetter(r):
			// transliteración mínima para tildes y eñes comunes en títulos
			if t, ok := translit[r]; ok {
				b.WriteString(t)
				lastDash = false
			} else if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

var translit = map[rune]string{
	'á': "a", 'é': "e", 'í': "i", 'ó': "o", 'ú': "u", 'ü': "u", 'ñ': "n",
}

func cortarSlug(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func slugOcupado(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}
	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)
	if opts.IDColumn != "" && opts.ExcluirID != nil {
		q = q.Where(fmt.Sprintf("%s <> ?", opts.IDColumn), opts.ExcluirID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerarSlugUnico deriva un slug único a partir del título.
// Si el título no deja nada transliterable, cae a "propiedad-<timestamp>".
// Ojo: el chequeo count-then-insert no toma lock; dos creaciones concurrentes
// con el mismo título pueden ver libre el mismo slug (el índice único manda).
func GenerarSlugUnico(db *gorm.DB, opts SlugOptions, titulo string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	base := cortarSlug(GenerarSlug(titulo), maxLen)
	if base == "" {
		base = fmt.Sprintf("propiedad-%d", time.Now().Unix())
	}

	taken, err := slugOcupado(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i < 10000; i++ {
		suf := fmt.Sprintf("-%d", i)
		candidate := base
		if len(candidate)+len(suf) > maxLen {
			candidate = cortarSlug(candidate, maxLen-len(suf))
			if candidate == "" {
				candidate = "propiedad"
			}
		}
		candidate += suf

		taken, err = slugOcupado(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("no se pudo generar un slug único")
}
