// Package bitmaptest собирает синтетические BMP для тестов.
package bitmaptest

import (
	"encoding/binary"

	"marker-clicker/internal/domain/entity"
)

// Background цвет фона по умолчанию
var Background = entity.RGB{R: 0x20, G: 0x30, B: 0x40}

// Canvas изображение в памяти, из которого собирается файл BMP.
type Canvas struct {
	Width  int
	Height int
	pixels []entity.RGB

	// DataOffset смещение пиксельных данных; 0 означает сразу после заголовка
	DataOffset int
	// TopDown записывать строки сверху вниз (отрицательная высота)
	TopDown bool
	// BitCount значение поля глубины; 0 означает 24
	BitCount uint16
	// Padding байт, которым заполняется выравнивание строк
	Padding byte
}

// NewCanvas создаёт холст, залитый цветом Background.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, pixels: make([]entity.RGB, width*height)}
	for i := range c.pixels {
		c.pixels[i] = Background
	}
	return c
}

// Set закрашивает пиксель; точки за пределами холста игнорируются.
func (c *Canvas) Set(x, y int, col entity.RGB) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// Get возвращает цвет пикселя.
func (c *Canvas) Get(x, y int) entity.RGB {
	return c.pixels[y*c.Width+x]
}

// Disk рисует закрашенный круг: все пиксели с dx²+dy² <= r².
func (c *Canvas) Disk(cx, cy, r int, col entity.RGB) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				c.Set(x, y, col)
			}
		}
	}
}

// Bytes собирает файл BMP.
func (c *Canvas) Bytes() []byte {
	offset := c.DataOffset
	if offset == 0 {
		offset = 54
	}
	bitCount := c.BitCount
	if bitCount == 0 {
		bitCount = entity.BitsPerPixel
	}
	stride := entity.RowStride(c.Width)
	size := offset + stride*c.Height

	buf := make([]byte, size)
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(size))
	binary.LittleEndian.PutUint32(buf[10:], uint32(offset))
	binary.LittleEndian.PutUint32(buf[14:], 40)
	binary.LittleEndian.PutUint32(buf[18:], uint32(int32(c.Width)))
	height := int32(c.Height)
	if c.TopDown {
		height = -height
	}
	binary.LittleEndian.PutUint32(buf[22:], uint32(height))
	binary.LittleEndian.PutUint16(buf[26:], 1)
	binary.LittleEndian.PutUint16(buf[28:], bitCount)
	binary.LittleEndian.PutUint32(buf[34:], uint32(stride*c.Height))

	for y := 0; y < c.Height; y++ {
		row := c.Height - 1 - y
		if c.TopDown {
			row = y
		}
		base := offset + row*stride
		for x := 0; x < c.Width; x++ {
			p := c.Get(x, y)
			o := base + x*entity.BytesPerPixel
			buf[o], buf[o+1], buf[o+2] = p.B, p.G, p.R
		}
		for o := base + c.Width*entity.BytesPerPixel; o < base+stride; o++ {
			buf[o] = c.Padding
		}
	}
	return buf
}
