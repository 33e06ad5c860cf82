package service

import (
	"context"
	"testing"
	"time"

	"tunisiaclean/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(t *testing.T, maxSessions int, delay time.Duration) *ChatService {
	t.Helper()
	svc, err := NewChatService(maxSessions, delay, nil)
	require.NoError(t, err)
	return svc
}

func TestChatServiceRespond(t *testing.T) {
	svc := newTestChatService(t, 10, 0)

	resp, err := svc.Respond("Je cherche une plage")
	require.NoError(t, err)
	assert.Equal(t, RuleBeach, resp.Rule)

	_, err = svc.Respond("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Equal(t, 0, svc.SessionCount())
}

func TestChatServiceSession(t *testing.T) {
	svc := newTestChatService(t, 10, 0)
	ctx := context.Background()

	session := svc.CreateSession()
	require.Len(t, session.Messages, 1)
	assert.Equal(t, WelcomeMessage, session.Messages[0].Text)
	assert.Equal(t, model.SenderBot, session.Messages[0].Sender)

	exchange, err := svc.Send(ctx, session.ID, "Où manger ?")
	require.NoError(t, err)
	assert.Equal(t, session.ID, exchange.SessionID)
	assert.Equal(t, model.SenderUser, exchange.User.Sender)
	assert.Equal(t, "Où manger ?", exchange.User.Text)
	assert.Equal(t, Respond("Où manger ?"), exchange.Bot.Text)
	assert.NotEqual(t, exchange.User.ID, exchange.Bot.ID)

	history, err := svc.History(session.ID)
	require.NoError(t, err)
	require.Len(t, history.Messages, 3)
	assert.Equal(t, exchange.Bot, history.Messages[2])

	// the returned transcript is a copy
	history.Messages[0].Text = "changed"
	again, err := svc.History(session.ID)
	require.NoError(t, err)
	assert.Equal(t, WelcomeMessage, again.Messages[0].Text)
}

func TestChatServiceSendErrors(t *testing.T) {
	svc := newTestChatService(t, 10, 0)
	ctx := context.Background()
	session := svc.CreateSession()

	_, err := svc.Send(ctx, session.ID, " \n\t")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Send(ctx, "unknown", "bonjour")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.History("unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	history, err := svc.History(session.ID)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 1, "rejected messages are not recorded")
}

func TestChatServiceEvictsOldestSession(t *testing.T) {
	svc := newTestChatService(t, 2, 0)

	first := svc.CreateSession()
	second := svc.CreateSession()
	_, err := svc.History(first.ID) // touch first so second becomes the oldest
	require.NoError(t, err)
	third := svc.CreateSession()

	assert.Equal(t, 2, svc.SessionCount())
	_, err = svc.History(second.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.History(first.ID)
	assert.NoError(t, err)
	_, err = svc.History(third.ID)
	assert.NoError(t, err)
}

func TestChatServiceSendStream(t *testing.T) {
	svc := newTestChatService(t, 10, 5*time.Millisecond)
	session := svc.CreateSession()

	var events []string
	exchange, err := svc.SendStream(context.Background(), session.ID, "merci", func(event string, data any) error {
		events = append(events, event)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"typing", "message"}, events)
	assert.Equal(t, Respond("merci"), exchange.Bot.Text)

	history, err := svc.History(session.ID)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 3)
}

func TestChatServiceSendStreamCancelled(t *testing.T) {
	svc := newTestChatService(t, 10, time.Hour)
	session := svc.CreateSession()

	ctx, cancel := context.WithCancel(context.Background())
	var events []string
	_, err := svc.SendStream(ctx, session.ID, "bonjour", func(event string, data any) error {
		events = append(events, event)
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"typing"}, events)

	history, err := svc.History(session.ID)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 1)
}

func TestNewChatServiceRejectsBadSize(t *testing.T) {
	_, err := NewChatService(0, 0, nil)
	assert.Error(t, err)
}
