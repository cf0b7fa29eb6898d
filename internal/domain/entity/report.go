package entity

// ReportStatus итоговое состояние обработки файла
type ReportStatus string

const (
	StatusClicked ReportStatus = "clicked" // маркер найден, клик отправлен
	StatusLocated ReportStatus = "located" // маркер найден, клик не отправлялся (dry-run)
	StatusFailed  ReportStatus = "failed"  // ошибка чтения, разбора, поиска или ввода
	StatusSkipped ReportStatus = "skipped" // файл не обработан из-за fail-fast
)

// FileReport результат обработки одного файла
type FileReport struct {
	Path   string       `json:"path"`
	Status ReportStatus `json:"status"`
	Marker *Circle      `json:"marker,omitempty"`
	Width  int          `json:"width,omitempty"`
	Height int          `json:"height,omitempty"`
	Kind   string       `json:"kind,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// NewFailedReport создаёт отчёт об ошибке с классификацией её вида
func NewFailedReport(path string, err error) FileReport {
	return FileReport{
		Path:   path,
		Status: StatusFailed,
		Kind:   ErrorKind(err),
		Error:  err.Error(),
	}
}

// NewDetectionReport создаёт отчёт по найденному маркеру
func NewDetectionReport(d *Detection, status ReportStatus) FileReport {
	marker := d.Marker
	return FileReport{
		Path:   d.Path,
		Status: status,
		Marker: &marker,
		Width:  d.ImageWidth,
		Height: d.ImageHeight,
	}
}

// Failed сообщает, завершилась ли обработка ошибкой
func (r FileReport) Failed() bool {
	return r.Status == StatusFailed
}
