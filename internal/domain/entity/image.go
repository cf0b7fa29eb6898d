package entity

import "fmt"

const (
	// BitsPerPixel единственная поддерживаемая глубина цвета
	BitsPerPixel = 24
	// BytesPerPixel размер одного пикселя в буфере
	BytesPerPixel = BitsPerPixel / 8
)

// RGB цвет пикселя.
type RGB struct {
	R, G, B uint8
}

// MarkerColor цвет маркера — чистый красный.
var MarkerColor = RGB{R: 0xFF, G: 0x00, B: 0x00}

// Image неизменяемое изображение 24 бит на пиксель.
//
// Строки хранятся сверху вниз (y = 0 — верхняя строка), каждая строка
// выровнена до 4 байт. Каналы пикселя лежат в порядке B, G, R, как в файле.
type Image struct {
	width  int
	height int
	stride int
	pix    []byte
}

// RowStride возвращает длину строки в байтах с учётом выравнивания до 4 байт.
func RowStride(width int) int {
	return (width*BytesPerPixel + 3) &^ 3
}

// NewImage создаёт изображение поверх буфера pix и забирает его во владение.
// Длина буфера должна быть ровно RowStride(width) * height.
func NewImage(width, height int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrFormat, width, height)
	}
	stride := RowStride(width)
	if len(pix) != stride*height {
		return nil, fmt.Errorf("%w: pixel buffer is %d bytes, want %d", ErrFormat, len(pix), stride*height)
	}
	return &Image{
		width:  width,
		height: height,
		stride: stride,
		pix:    pix,
	}, nil
}

// Width ширина в пикселях
func (im *Image) Width() int { return im.width }

// Height высота в пикселях
func (im *Image) Height() int { return im.height }

// Stride длина строки в байтах
func (im *Image) Stride() int { return im.stride }

// BitsPerPixel глубина цвета
func (im *Image) BitsPerPixel() int { return BitsPerPixel }

// In сообщает, лежит ли (x, y) внутри изображения.
func (im *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < im.width && y < im.height
}

// At возвращает цвет пикселя (x, y). Для координат за пределами
// изображения возвращает false и к буферу не обращается.
func (im *Image) At(x, y int) (RGB, bool) {
	if !im.In(x, y) {
		return RGB{}, false
	}
	off := y*im.stride + x*BytesPerPixel
	return RGB{B: im.pix[off], G: im.pix[off+1], R: im.pix[off+2]}, true
}
