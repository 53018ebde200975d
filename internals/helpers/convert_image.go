package helper

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Jalann18/kcm-corredora/internals/configs"
)

const maxAnchoImagen = 1600

// GuardarImagenWebp decodifica una imagen subida, la re-encodea a webp
// (achicando si excede 1600px de ancho) y la deja bajo MEDIA_ROOT/<carpeta>/.
// Retorna la ruta relativa que se persiste en el modelo; el binario nunca
// va a la base de datos.
func GuardarImagenWebp(carpeta string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("no se pudo abrir la imagen: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("imagen inválida: %w", err)
	}
	if img.Bounds().Dx() > maxAnchoImagen {
		img = imaging.Resize(img, maxAnchoImagen, 0, imaging.Lanczos)
	}

	rel := filepath.Join(carpeta, uuid.New().String()+".webp")
	abs := filepath.Join(mediaRoot(), rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}

	out, err := os.Create(abs)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("no se pudo convertir a webp: %w", err)
	}
	return rel, nil
}

// EliminarImagen borra el archivo físico; un path que ya no existe no es error.
func EliminarImagen(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(mediaRoot(), rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func mediaRoot() string {
	return configs.GetEnv("MEDIA_ROOT", "media")
}
