// internal/infra/telegram/client.go
package telegram

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewSendOnlyBot creates a bot that is only used to send messages. It is created offline,
// so a bad token or an unreachable Bot API shows up on the first send rather than at startup.
// An empty apiURL selects the public Bot API.
func NewSendOnlyBot(token, apiURL string) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: time.Minute},
	})
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(ParseRecipient(chatID), text, options)
	return err
}

// chatUsername addresses public channels and groups by their @username.
type chatUsername string

func (u chatUsername) Recipient() string { return string(u) }

// ParseRecipient turns a configured chat identifier into a telebot recipient.
func ParseRecipient(chatID string) telebot.Recipient {
	chatID = strings.TrimSpace(chatID)
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return telebot.ChatID(id)
	}
	return chatUsername(chatID)
}
