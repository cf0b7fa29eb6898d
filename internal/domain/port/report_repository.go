package port

import (
	"context"

	"marker-clicker/internal/domain/entity"
)

// ReportRepository интерфейс хранилища отчётов за один запуск
type ReportRepository interface {
	// Save добавляет отчёт в конец списка
	Save(ctx context.Context, report entity.FileReport) error

	// List возвращает отчёты в порядке добавления
	List(ctx context.Context) ([]entity.FileReport, error)
}
