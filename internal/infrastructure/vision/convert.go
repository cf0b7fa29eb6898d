package vision

import (
	"image"
	"image/color"

	"marker-clicker/internal/domain/entity"
)

// highlightColor цвет обводки найденного маркера
var highlightColor = color.RGBA{G: 255, A: 255}

// ToRGBA копирует изображение в image.RGBA.
func ToRGBA(img *entity.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c, _ := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return out
}
