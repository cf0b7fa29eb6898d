package port

import (
	"context"

	"marker-clicker/internal/domain/entity"
)

// MarkerDetector интерфейс поиска маркера на изображении
type MarkerDetector interface {
	// FindMarker возвращает самый большой круг цвета маркера.
	// Если маркера нет, возвращает entity.ErrNoMarker.
	FindMarker(ctx context.Context, img *entity.Image) (entity.Circle, error)
}

// MarkerHighlighter рисует найденный круг поверх изображения
type MarkerHighlighter interface {
	// HighlightMarker возвращает BMP с обведённым маркером
	HighlightMarker(img *entity.Image, marker entity.Circle) ([]byte, error)
}
