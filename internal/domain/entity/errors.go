package entity

import "errors"

var (
	// ErrIO файл не удалось прочитать
	ErrIO = errors.New("io error")
	// ErrFormat заголовок повреждён, глубина не поддерживается или данных не хватает
	ErrFormat = errors.New("format error")
	// ErrNoMarker на изображении нет ни одного пикселя маркера
	ErrNoMarker = errors.New("no marker found")
	// ErrInjection не удалось отправить событие ввода
	ErrInjection = errors.New("input injection failed")
)

// Виды ошибок для отчёта.
const (
	KindIO        = "io"
	KindFormat    = "format"
	KindNoMarker  = "no_marker"
	KindInjection = "injection"
	KindUnknown   = "unknown"
)

// ErrorKind классифицирует ошибку обработки файла.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrFormat):
		return KindFormat
	case errors.Is(err, ErrNoMarker):
		return KindNoMarker
	case errors.Is(err, ErrInjection):
		return KindInjection
	default:
		return KindUnknown
	}
}
