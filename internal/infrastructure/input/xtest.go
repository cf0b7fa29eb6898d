// Package input отправляет синтетические события мыши.
package input

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

// PrimaryButton номер левой кнопки мыши в X11
const PrimaryButton = 1

// XTestInjector отправляет события через расширение XTEST X-сервера.
type XTestInjector struct {
	conn *xgb.Conn
	root xproto.Window
	once sync.Once
}

// OpenXTest подключается к дисплею display (пустая строка — $DISPLAY)
// и проверяет наличие расширения XTEST.
func OpenXTest(display string) (*XTestInjector, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open display %q: %v", entity.ErrInjection, display, err)
	}
	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: XTEST extension: %v", entity.ErrInjection, err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &XTestInjector{conn: conn, root: screen.Root}, nil
}

// MoveAbsolute перемещает указатель в точку корневого окна.
func (i *XTestInjector) MoveAbsolute(ctx context.Context, p entity.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.X < 0 || p.Y < 0 || p.X > math.MaxInt16 || p.Y > math.MaxInt16 {
		return fmt.Errorf("%w: point %s outside of X11 coordinate range", entity.ErrInjection, p)
	}

	err := xtest.FakeInputChecked(i.conn, xproto.MotionNotify, 0, 0, i.root, int16(p.X), int16(p.Y), 0).Check()
	if err != nil {
		return fmt.Errorf("%w: motion to %s: %v", entity.ErrInjection, p, err)
	}
	return nil
}

// ClickPrimary нажимает и отпускает левую кнопку в текущей позиции.
func (i *XTestInjector) ClickPrimary(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, ev := range []byte{xproto.ButtonPress, xproto.ButtonRelease} {
		err := xtest.FakeInputChecked(i.conn, ev, PrimaryButton, 0, xproto.WindowNone, 0, 0, 0).Check()
		if err != nil {
			return fmt.Errorf("%w: button event %d: %v", entity.ErrInjection, ev, err)
		}
	}
	return nil
}

// Close закрывает соединение с X-сервером; повторный вызов ничего не делает.
func (i *XTestInjector) Close() error {
	i.once.Do(func() {
		i.conn.Close()
	})
	return nil
}

// Проверка реализации интерфейса
var _ port.InputInjector = (*XTestInjector)(nil)
