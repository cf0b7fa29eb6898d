package notify

import (
	"context"
	"fmt"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"marker-clicker/internal/domain/entity"
	"marker-clicker/internal/domain/port"
)

const (
	msgClicked = "✅ %s: маркер в точке %s (радиус %d), клик отправлен."
	msgLocated = "🔎 %s: маркер в точке %s (радиус %d)."
	msgFailed  = "⚠️ %s: не удалось обработать файл (%s): %s"
	msgSkipped = "⏭ %s: пропущен."
)

// sender часть tgbotapi.BotAPI, которая нужна уведомителю
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier отправляет отчёты о файлах в Telegram-чат
type TelegramNotifier struct {
	api    sender
	chatID int64
}

// NewTelegramNotifier авторизуется в Bot API и создаёт уведомитель
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info().Str("module", "notify").Str("account", api.Self.UserName).Msg("Authorized on telegram account")

	return &TelegramNotifier{api: api, chatID: chatID}, nil
}

// Notify отправляет текст отчёта; если есть подсвеченное изображение — отправляет его с подписью
func (n *TelegramNotifier) Notify(ctx context.Context, report entity.FileReport, annotated []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := FormatReport(report)

	var msg tgbotapi.Chattable
	if len(annotated) > 0 {
		photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{
			Name:  filepath.Base(report.Path) + ".marked.bmp",
			Bytes: annotated,
		})
		photo.Caption = text
		msg = photo
	} else {
		msg = tgbotapi.NewMessage(n.chatID, text)
	}

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// FormatReport превращает отчёт в текст сообщения
func FormatReport(r entity.FileReport) string {
	name := filepath.Base(r.Path)
	switch r.Status {
	case entity.StatusClicked:
		return fmt.Sprintf(msgClicked, name, r.Marker.Center, r.Marker.Radius)
	case entity.StatusLocated:
		return fmt.Sprintf(msgLocated, name, r.Marker.Center, r.Marker.Radius)
	case entity.StatusSkipped:
		return fmt.Sprintf(msgSkipped, name)
	default:
		return fmt.Sprintf(msgFailed, name, r.Kind, r.Error)
	}
}

// Проверка реализации интерфейса
var _ port.ResultNotifier = (*TelegramNotifier)(nil)
