package storage

import (
	"context"
	"sync"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// MemoryReportRepository in-memory хранилище отчётов за запуск
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports []entity.FileReport
}

// NewMemoryReportRepository создаёт новое in-memory хранилище
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make([]entity.FileReport, 0),
	}
}

// Save добавляет отчёт в конец списка
func (r *MemoryReportRepository) Save(ctx context.Context, report entity.FileReport) error {
	r.mu.Lock()
	r.reports = append(r.reports, report)
	r.mu.Unlock()

	return nil
}

// List возвращает копию отчётов в порядке добавления
func (r *MemoryReportRepository) List(ctx context.Context) ([]entity.FileReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.FileReport, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

// Проверка реализации интерфейса
var _ port.ReportRepository = (*MemoryReportRepository)(nil)
