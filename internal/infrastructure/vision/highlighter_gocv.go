//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"image"

	"gocv.io/x/gocv"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// Highlighter обводит найденный маркер средствами OpenCV.
type Highlighter struct {
	Thickness int
}

// NewHighlighter создаёт подсветку с толщиной линии 2 пикселя.
func NewHighlighter() *Highlighter {
	return &Highlighter{Thickness: 2}
}

// HighlightMarker рисует окружность вокруг маркера и возвращает BMP.
func (h *Highlighter) HighlightMarker(img *entity.Image, marker entity.Circle) ([]byte, error) {
	if img == nil {
		return nil, errors.New("empty image")
	}

	mat, err := gocv.ImageToMatRGB(ToRGBA(img))
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	center := image.Pt(marker.Center.X, marker.Center.Y)
	gocv.Circle(&mat, center, marker.Radius+1, highlightColor, max(h.Thickness, 1))

	buf, err := gocv.IMEncode(gocv.BMPFileExt, mat)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// Проверка реализации интерфейса
var _ port.MarkerHighlighter = (*Highlighter)(nil)
