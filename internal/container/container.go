package container

import (
	app "marker-clicker/internal/application"
	"marker-clicker/internal/domain/port"
	"marker-clicker/internal/infrastructure/bitmap"
	"marker-clicker/internal/infrastructure/storage"
	"marker-clicker/internal/infrastructure/vision"
)

type Container struct {
	LocateService *app.LocateService
	RunService    *app.RunService
	Reports       port.ReportRepository
}

// New собирает сервисы приложения вокруг переданного injector; notifier может быть nil.
func New(injector port.InputInjector, notifier port.ResultNotifier) *Container {
	reports := storage.NewMemoryReportRepository()
	locateService := app.NewLocateService(bitmap.NewDecoder(), vision.NewScanner())
	runService := app.NewRunService(locateService, injector, vision.NewHighlighter(), notifier, reports)

	return &Container{
		LocateService: locateService,
		RunService:    runService,
		Reports:       reports,
	}
}
