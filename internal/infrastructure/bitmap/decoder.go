package bitmap

import (
	"encoding/binary"
	"fmt"
	"os"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// HeaderSize размер BITMAPFILEHEADER + BITMAPINFOHEADER
const HeaderSize = 54

// Смещения полей заголовка.
const (
	offSignature   = 0
	offDataOffset  = 10
	offWidth       = 18
	offHeight      = 22
	offBitCount    = 28
	offCompression = 30
)

// compressionRGB несжатые данные (BI_RGB)
const compressionRGB = 0

// Decoder разбирает несжатые 24-битные BMP.
type Decoder struct{}

// NewDecoder создаёт декодер
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Header поля заголовка, которые нужны для разбора пикселей.
type Header struct {
	DataOffset  uint32
	Width       int32
	Height      int32 // отрицательная высота — строки сверху вниз
	BitCount    uint16
	Compression uint32
}

// ParseHeader читает и проверяет заголовок.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", entity.ErrFormat, len(data), HeaderSize)
	}
	if data[offSignature] != 'B' || data[offSignature+1] != 'M' {
		return Header{}, fmt.Errorf("%w: missing BM signature", entity.ErrFormat)
	}

	h := Header{
		DataOffset:  binary.LittleEndian.Uint32(data[offDataOffset:]),
		Width:       int32(binary.LittleEndian.Uint32(data[offWidth:])),
		Height:      int32(binary.LittleEndian.Uint32(data[offHeight:])),
		BitCount:    binary.LittleEndian.Uint16(data[offBitCount:]),
		Compression: binary.LittleEndian.Uint32(data[offCompression:]),
	}

	if h.BitCount != entity.BitsPerPixel {
		return Header{}, fmt.Errorf("%w: %d bits per pixel is not supported", entity.ErrFormat, h.BitCount)
	}
	if h.Compression != compressionRGB {
		return Header{}, fmt.Errorf("%w: compression %d is not supported", entity.ErrFormat, h.Compression)
	}
	if h.Width <= 0 || h.Height == 0 {
		return Header{}, fmt.Errorf("%w: invalid dimensions %dx%d", entity.ErrFormat, h.Width, h.Height)
	}
	if h.DataOffset < HeaderSize || uint64(h.DataOffset) > uint64(len(data)) {
		return Header{}, fmt.Errorf("%w: data offset %d outside of %d byte file", entity.ErrFormat, h.DataOffset, len(data))
	}

	return h, nil
}

// TopDown сообщает, записаны ли строки сверху вниз.
func (h Header) TopDown() bool {
	return h.Height < 0
}

// Rows количество строк изображения
func (h Header) Rows() int {
	if h.Height < 0 {
		return -int(h.Height)
	}
	return int(h.Height)
}

// Decode разбирает BMP. Пиксели копируются, data после вызова можно
// освободить. Строки в результате всегда идут сверху вниз.
func (d *Decoder) Decode(data []byte) (*entity.Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	width := int(h.Width)
	rows := h.Rows()
	stride := entity.RowStride(width)

	need := uint64(h.DataOffset) + uint64(stride)*uint64(rows)
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: pixel data truncated: have %d bytes, header declares %d", entity.ErrFormat, len(data), need)
	}

	src := data[h.DataOffset:need]
	pix := make([]byte, stride*rows)
	if h.TopDown() {
		copy(pix, src)
	} else {
		for y := 0; y < rows; y++ {
			from := (rows - 1 - y) * stride
			copy(pix[y*stride:(y+1)*stride], src[from:from+stride])
		}
	}

	return entity.NewImage(width, rows, pix)
}

// DecodeFile читает файл и разбирает его.
func (d *Decoder) DecodeFile(path string) (*entity.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrIO, err)
	}
	return d.Decode(data)
}

// Проверка реализации интерфейса
var _ port.BitmapDecoder = (*Decoder)(nil)
