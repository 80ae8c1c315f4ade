package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_Notify(t *testing.T) {
	tc := &fakeTelegramClient{}
	n := NewNotifier(tc, "@homework", 1000, quietLogger())

	assert.True(t, n.Notify(context.Background(), "hello"))
	assert.Equal(t, []sentMessage{{chatID: "@homework", text: "hello"}}, tc.sent)
}

func TestNotifier_SwallowsSendErrors(t *testing.T) {
	tc := &fakeTelegramClient{err: errors.New("network is unreachable")}
	n := NewNotifier(tc, "42", 1000, quietLogger())

	assert.NotPanics(t, func() {
		assert.False(t, n.Notify(context.Background(), "hello"))
	})
}

func TestNotifier_CancelledContext(t *testing.T) {
	tc := &fakeTelegramClient{}
	n := NewNotifier(tc, "42", 1000, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, n.Notify(ctx, "hello"))
	assert.Empty(t, tc.sent)
}

func TestNotifier_PacesBackToBackSends(t *testing.T) {
	tc := &fakeTelegramClient{}
	n := NewNotifier(tc, "42", 0.5, quietLogger())

	assert.True(t, n.Notify(context.Background(), "first"))

	// The next token is two seconds away, past the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.False(t, n.Notify(ctx, "second"))
	assert.Equal(t, []sentMessage{{chatID: "42", text: "first"}}, tc.sent)
}

func TestNotifier_WaitsForToken(t *testing.T) {
	tc := &fakeTelegramClient{}
	n := NewNotifier(tc, "42", 20, quietLogger())

	start := time.Now()
	assert.True(t, n.Notify(context.Background(), "first"))
	assert.True(t, n.Notify(context.Background(), "second"))

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	assert.Len(t, tc.sent, 2)
}
