package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// ErrFilesFailed хотя бы один файл не удалось обработать
var ErrFilesFailed = errors.New("some files failed")

// RunOptions параметры запуска
type RunOptions struct {
	DryRun      bool          // клик не отправляется на реальный дисплей
	FailFast    bool          // остановиться на первой ошибке
	AnnotateDir string        // каталог для копий изображений с обведённым маркером
	ClickDelay  time.Duration // пауза между перемещением и кликом
}

// RunService обрабатывает файлы по очереди: поиск маркера → перемещение → клик.
type RunService struct {
	locate      *LocateService
	injector    port.InputInjector
	highlighter port.MarkerHighlighter
	notifier    port.ResultNotifier
	reports     port.ReportRepository
}

// NewRunService создаёт сервис. highlighter и notifier могут быть nil.
func NewRunService(
	locate *LocateService,
	injector port.InputInjector,
	highlighter port.MarkerHighlighter,
	notifier port.ResultNotifier,
	reports port.ReportRepository,
) *RunService {
	return &RunService{
		locate:      locate,
		injector:    injector,
		highlighter: highlighter,
		notifier:    notifier,
		reports:     reports,
	}
}

// Run обрабатывает paths в порядке аргументов и возвращает отчёты по всем файлам.
// Ошибка одного файла не мешает следующим, если не задан FailFast.
func (s *RunService) Run(ctx context.Context, paths []string, opts RunOptions) ([]entity.FileReport, error) {
	if s.injector == nil {
		return nil, errors.New("input injector is not configured")
	}

	failed := 0
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return s.list(ctx), err
		}

		report := s.processFile(ctx, path, opts)
		if err := s.reports.Save(ctx, report); err != nil {
			return s.list(ctx), err
		}

		if !report.Failed() {
			continue
		}
		failed++
		if opts.FailFast {
			for _, rest := range paths[i+1:] {
				_ = s.reports.Save(ctx, entity.FileReport{Path: rest, Status: entity.StatusSkipped})
			}
			break
		}
	}

	reports := s.list(ctx)
	if failed > 0 {
		return reports, fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(paths))
	}
	return reports, nil
}

// processFile обрабатывает один файл и никогда не возвращает ошибку: она попадает в отчёт.
func (s *RunService) processFile(ctx context.Context, path string, opts RunOptions) entity.FileReport {
	logger := log.With().Str("module", "run").Str("file", path).Logger()

	located, err := s.locate.LocateImage(ctx, path)
	if err != nil {
		report := entity.NewFailedReport(path, err)
		logger.Error().Err(err).Str("kind", report.Kind).Msg("Failed to locate marker")
		s.notify(ctx, report, nil)
		return report
	}

	d := located.Detection
	logger.Info().
		Stringer("point", d.Target()).
		Int("radius", d.Marker.Radius).
		Int("width", d.ImageWidth).
		Int("height", d.ImageHeight).
		Msg("Marker located")

	if err := s.click(ctx, d.Target(), opts.ClickDelay); err != nil {
		report := entity.NewFailedReport(path, err)
		report.Marker = &d.Marker
		logger.Error().Err(err).Msg("Failed to inject click")
		s.notify(ctx, report, nil)
		return report
	}

	status := entity.StatusClicked
	if opts.DryRun {
		status = entity.StatusLocated
	}
	report := entity.NewDetectionReport(d, status)

	annotated := s.annotate(located, opts.AnnotateDir)
	s.notify(ctx, report, annotated)
	return report
}

// click перемещает указатель и кликает, выдерживая паузу между ними.
func (s *RunService) click(ctx context.Context, p entity.Point, delay time.Duration) error {
	if err := s.injector.MoveAbsolute(ctx, p); err != nil {
		return err
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return s.injector.ClickPrimary(ctx)
}

// annotate строит подсвеченное изображение и, если задан каталог, сохраняет его.
// Ошибки подсветки только пишутся в лог.
func (s *RunService) annotate(located *Located, dir string) []byte {
	if s.highlighter == nil || (dir == "" && s.notifier == nil) {
		return nil
	}

	logger := log.With().Str("module", "run").Str("file", located.Detection.Path).Logger()

	data, err := s.highlighter.HighlightMarker(located.Image, located.Detection.Marker)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to highlight marker")
		return nil
	}

	if dir != "" {
		out := AnnotatedPath(dir, located.Detection.Path)
		if err := os.WriteFile(out, data, 0o644); err != nil {
			logger.Warn().Err(err).Str("output", out).Msg("Failed to write annotated image")
		} else {
			logger.Debug().Str("output", out).Msg("Annotated image written")
		}
	}
	return data
}

func (s *RunService) notify(ctx context.Context, report entity.FileReport, annotated []byte) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, report, annotated); err != nil {
		log.Warn().Str("module", "run").Str("file", report.Path).Err(err).Msg("Failed to send notification")
	}
}

func (s *RunService) list(ctx context.Context) []entity.FileReport {
	reports, err := s.reports.List(ctx)
	if err != nil {
		log.Error().Str("module", "run").Err(err).Msg("Failed to list reports")
	}
	return reports
}

// AnnotatedPath путь копии изображения с обведённым маркером
func AnnotatedPath(dir, source string) string {
	base := filepath.Base(source)
	return filepath.Join(dir, base[:len(base)-len(filepath.Ext(base))]+".marked.bmp")
}
