// internal/app/notifier.go
package app

import (
	"context"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Notifier delivers messages to the single configured chat on a best-effort basis:
// failures are logged and never returned to the caller.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	limiter        *rate.Limiter
	logger         logrus.FieldLogger
}

func NewNotifier(tc domainTelegram.Client, chatID string, ratePerSec float64, logger logrus.FieldLogger) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		limiter:        rate.NewLimiter(rate.Limit(ratePerSec), 1),
		logger:         logger,
	}
}

// Notify sends text and reports whether it reached the Bot API.
func (n *Notifier) Notify(ctx context.Context, text string) bool {
	if err := n.limiter.Wait(ctx); err != nil {
		n.logger.WithError(err).Warnf("Message %q skipped, notifier is shutting down", text)
		return false
	}

	if err := n.telegramClient.SendMessage(n.chatID, text, nil); err != nil {
		n.logger.WithError(err).Errorf("Failed to send message %q", text)
		return false
	}

	n.logger.Infof("Message %q sent", text)
	return true
}
