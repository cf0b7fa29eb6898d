package port

import "marker-clicker/internal/domain/entity"

// BitmapDecoder интерфейс разбора несжатого 24-битного BMP
type BitmapDecoder interface {
	// Decode разбирает содержимое файла в изображение
	Decode(data []byte) (*entity.Image, error)
}
