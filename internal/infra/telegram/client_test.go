package telegram

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func TestParseRecipient(t *testing.T) {
	assert.Equal(t, telebot.ChatID(123456), ParseRecipient("123456"))
	assert.Equal(t, telebot.ChatID(-1001234567890), ParseRecipient(" -1001234567890 "))
	assert.Equal(t, "@homework_channel", ParseRecipient("@homework_channel").Recipient())
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var gotPath string
	var gotParams map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotParams))
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":42,"type":"private"},"text":"hello"}}`)
	}))
	defer srv.Close()

	bot, err := NewSendOnlyBot("123:secret", srv.URL)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage("42", "hello", nil)
	require.NoError(t, err)

	assert.Equal(t, "/bot123:secret/sendMessage", gotPath)
	assert.Equal(t, "42", gotParams["chat_id"])
	assert.Equal(t, "hello", gotParams["text"])
}

func TestTelebotAdapter_SendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	}))
	defer srv.Close()

	bot, err := NewSendOnlyBot("123:secret", srv.URL)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage("@missing", "hello", nil)
	assert.Error(t, err)
}
