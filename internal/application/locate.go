package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// LocateService читает файл, разбирает BMP и ищет маркер.
type LocateService struct {
	decoder  port.BitmapDecoder
	detector port.MarkerDetector
}

// Located результат поиска вместе с разобранным изображением.
type Located struct {
	Detection *entity.Detection
	Image     *entity.Image
}

// NewLocateService создаёт сервис поиска маркера.
func NewLocateService(decoder port.BitmapDecoder, detector port.MarkerDetector) *LocateService {
	return &LocateService{decoder: decoder, detector: detector}
}

// Locate возвращает положение самого большого маркера в файле path.
func (s *LocateService) Locate(ctx context.Context, path string) (*entity.Detection, error) {
	located, err := s.LocateImage(ctx, path)
	if err != nil {
		return nil, err
	}
	return located.Detection, nil
}

// LocateImage как Locate, но возвращает ещё и изображение (для подсветки).
func (s *LocateService) LocateImage(ctx context.Context, path string) (*Located, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrIO, err)
	}
	return s.LocateBytes(ctx, path, data)
}

// LocateBytes ищет маркер в уже прочитанном содержимом файла.
func (s *LocateService) LocateBytes(ctx context.Context, name string, data []byte) (*Located, error) {
	if s.decoder == nil || s.detector == nil {
		return nil, errors.New("locate service is not configured")
	}

	img, err := s.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	marker, err := s.detector.FindMarker(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", name, err)
	}

	return &Located{
		Detection: &entity.Detection{
			Path:        name,
			ImageWidth:  img.Width(),
			ImageHeight: img.Height(),
			Marker:      marker,
		},
		Image: img,
	}, nil
}
