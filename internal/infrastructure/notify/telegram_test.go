package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"marker-clicker/internal/domain/entity"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func clickedReport() entity.FileReport {
	d := &entity.Detection{Path: "/tmp/shots/a.bmp", Marker: entity.Circle{Center: entity.Point{X: 3, Y: 4}, Radius: 5}}
	return entity.NewDetectionReport(d, entity.StatusClicked)
}

func TestFormatReport(t *testing.T) {
	require.Contains(t, FormatReport(clickedReport()), "a.bmp: маркер в точке (3, 4) (радиус 5)")

	failed := entity.NewFailedReport("b.bmp", fmt.Errorf("%w: truncated", entity.ErrFormat))
	require.Contains(t, FormatReport(failed), "(format)")

	require.Contains(t, FormatReport(entity.FileReport{Path: "c.bmp", Status: entity.StatusSkipped}), "c.bmp")
}

func TestTelegramNotifier_SendsTextWithoutImage(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{api: fake, chatID: 42}

	require.NoError(t, n.Notify(context.Background(), clickedReport(), nil))
	require.Len(t, fake.sent, 1)

	msg, ok := fake.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Equal(t, int64(42), msg.ChatID)
	require.Equal(t, FormatReport(clickedReport()), msg.Text)
}

func TestTelegramNotifier_SendsPhotoWithCaption(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{api: fake, chatID: 42}

	require.NoError(t, n.Notify(context.Background(), clickedReport(), []byte("BM...")))
	require.Len(t, fake.sent, 1)

	photo, ok := fake.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	require.Equal(t, FormatReport(clickedReport()), photo.Caption)
}

func TestTelegramNotifier_WrapsSendError(t *testing.T) {
	boom := errors.New("boom")
	n := &TelegramNotifier{api: &fakeSender{err: boom}, chatID: 1}

	err := n.Notify(context.Background(), clickedReport(), nil)
	require.ErrorIs(t, err, boom)
}
