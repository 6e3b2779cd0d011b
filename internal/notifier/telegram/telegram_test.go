package telegram

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

type fakeMessenger struct {
	sent []string
	to   []tele.Recipient
	err  error
}

func (f *fakeMessenger) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.to = append(f.to, to)
	f.sent = append(f.sent, what.(string))
	return &tele.Message{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNotifier_Notify(t *testing.T) {
	m := &fakeMessenger{}
	n := NewWithMessenger(m, 42, testLogger())

	n.Notify(context.Background(), "hello")

	require.Len(t, m.sent, 1)
	assert.Equal(t, "hello", m.sent[0])
	assert.Equal(t, tele.ChatID(42), m.to[0])
}

// A delivery failure is swallowed: logged, never propagated, never panics.
func TestNotifier_NotifySwallowsFailure(t *testing.T) {
	m := &fakeMessenger{err: errors.New("rate limited")}
	n := NewWithMessenger(m, 42, testLogger())

	assert.NotPanics(t, func() {
		n.Notify(context.Background(), "hello")
	})
	assert.Empty(t, m.sent)
}
