package input

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// Event событие, записанное DryRunInjector
type Event struct {
	Type  string // "move" или "click"
	Point entity.Point
}

// DryRunInjector ничего не отправляет, только пишет события в лог и запоминает их.
type DryRunInjector struct {
	mu     sync.Mutex
	events []Event
	last   entity.Point
	closed bool
}

// NewDryRunInjector создаёт пустой injector
func NewDryRunInjector() *DryRunInjector {
	return &DryRunInjector{}
}

// MoveAbsolute запоминает перемещение
func (i *DryRunInjector) MoveAbsolute(ctx context.Context, p entity.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	i.mu.Lock()
	i.events = append(i.events, Event{Type: "move", Point: p})
	i.last = p
	i.mu.Unlock()

	log.Debug().Str("module", "input").Int("x", p.X).Int("y", p.Y).Msg("dry-run move")
	return nil
}

// ClickPrimary запоминает клик в последней позиции
func (i *DryRunInjector) ClickPrimary(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	i.mu.Lock()
	p := i.last
	i.events = append(i.events, Event{Type: "click", Point: p})
	i.mu.Unlock()

	log.Debug().Str("module", "input").Int("x", p.X).Int("y", p.Y).Msg("dry-run click")
	return nil
}

// Close помечает injector закрытым
func (i *DryRunInjector) Close() error {
	i.mu.Lock()
	i.closed = true
	i.mu.Unlock()
	return nil
}

// Events возвращает копию записанных событий
func (i *DryRunInjector) Events() []Event {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]Event(nil), i.events...)
}

// Closed сообщает, был ли вызван Close
func (i *DryRunInjector) Closed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.closed
}

// Проверка реализации интерфейса
var _ port.InputInjector = (*DryRunInjector)(nil)
