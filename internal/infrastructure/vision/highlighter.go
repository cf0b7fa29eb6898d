//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"errors"
	"math"

	"golang.org/x/image/bmp"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// Highlighter обводит найденный маркер и кодирует результат в BMP.
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

	out := ToRGBA(img)
	c := marker.Center
	for t := 0; t < max(h.Thickness, 1); t++ {
		r := float64(marker.Radius + 1 + t)
		for _, cs := range &perimeter {
			x := c.X + int(math.Floor(cs[0]*r))
			y := c.Y + int(math.Floor(cs[1]*r))
			if img.In(x, y) {
				out.SetRGBA(x, y, highlightColor)
			}
		}
	}

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Проверка реализации интерфейса
var _ port.MarkerHighlighter = (*Highlighter)(nil)
