package port

import (
	"context"

	"marker-clicker/internal/domain/entity"
)

// InputInjector интерфейс отправки синтетических событий мыши
type InputInjector interface {
	// MoveAbsolute перемещает указатель в абсолютную точку экрана
	MoveAbsolute(ctx context.Context, p entity.Point) error

	// ClickPrimary нажимает и отпускает левую кнопку
	ClickPrimary(ctx context.Context) error

	// Close освобождает соединение
	Close() error
}
