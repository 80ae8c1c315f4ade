package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	// SendMessage delivers text to a chat given either as a numeric chat ID or as an @channel username.
	SendMessage(chatID string, text string, options *telebot.SendOptions) error
}
