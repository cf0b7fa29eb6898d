package port

import (
	"context"

	"marker-clicker/internal/domain/entity"
)

// ResultNotifier интерфейс отправки отчёта о файле во внешний канал
type ResultNotifier interface {
	// Notify отправляет отчёт; annotated может быть nil
	Notify(ctx context.Context, report entity.FileReport, annotated []byte) error
}
