package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tunisiaclean/internal/model"
	"tunisiaclean/internal/utils"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrEmptyMessage is returned for blank utterances
	ErrEmptyMessage = errors.New("message is empty")
	// ErrSessionNotFound is returned for unknown or evicted session ids
	ErrSessionNotFound = errors.New("chat session not found")
)

// ChatEventCallback is called for streaming chat events
type ChatEventCallback func(event string, data any) error

// ChatService keeps chat transcripts in a bounded in-memory cache and answers
// with the rule-based matcher. Least recently used sessions are evicted first.
type ChatService struct {
	mu          sync.Mutex
	sessions    *lru.Cache[string, *model.ChatSession]
	typingDelay time.Duration
	now         func() time.Time
	logger      *utils.Logger
}

// NewChatService creates a chat service holding at most maxSessions transcripts
func NewChatService(maxSessions int, typingDelay time.Duration, logger *utils.Logger) (*ChatService, error) {
	sessions, err := lru.NewWithEvict[string, *model.ChatSession](maxSessions, func(id string, _ *model.ChatSession) {
		logger.Debug("chat session %s evicted", id)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &ChatService{
		sessions:    sessions,
		typingDelay: typingDelay,
		now:         time.Now,
		logger:      logger,
	}, nil
}

// Respond answers one utterance without touching any session
func (s *ChatService) Respond(utterance string) (*model.ChatResponse, error) {
	if strings.TrimSpace(utterance) == "" {
		return nil, ErrEmptyMessage
	}
	reply, rule := Match(utterance)
	return &model.ChatResponse{Reply: reply, Rule: rule}, nil
}

// CreateSession starts a transcript seeded with the welcome message
func (s *ChatService) CreateSession() *model.ChatSession {
	now := s.now()
	session := &model.ChatSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Messages: []model.ChatMessage{
			s.newMessage(WelcomeMessage, model.SenderBot, now),
		},
	}

	s.mu.Lock()
	s.sessions.Add(session.ID, session)
	s.mu.Unlock()

	s.logger.Debug("chat session %s created", session.ID)
	return copySession(session)
}

// History returns a copy of the transcript of session id
func (s *ChatService) History(id string) (*model.ChatSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return copySession(session), nil
}

// Send appends the user's message and the matcher's reply to session id
func (s *ChatService) Send(ctx context.Context, id, text string) (*model.ChatExchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	reply, rule := Match(text)
	now := s.now()
	exchange := &model.ChatExchange{
		SessionID: id,
		User:      s.newMessage(text, model.SenderUser, now),
		Bot:       s.newMessage(reply, model.SenderBot, now),
	}
	session.Messages = append(session.Messages, exchange.User, exchange.Bot)

	s.logger.Debug("chat session %s matched rule %s", id, rule)
	return exchange, nil
}

// SendStream behaves like Send but first reports a typing event and waits for
// the configured typing delay. It stops early when ctx is cancelled.
func (s *ChatService) SendStream(ctx context.Context, id, text string, callback ChatEventCallback) (*model.ChatExchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if _, err := s.History(id); err != nil {
		return nil, err
	}

	if err := callback("typing", map[string]any{"session_id": id}); err != nil {
		return nil, err
	}

	if s.typingDelay > 0 {
		timer := time.NewTimer(s.typingDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	exchange, err := s.Send(ctx, id, text)
	if err != nil {
		return nil, err
	}
	if err := callback("message", exchange.Bot); err != nil {
		return nil, err
	}
	return exchange, nil
}

// SessionCount returns the number of live sessions
func (s *ChatService) SessionCount() int {
	return s.sessions.Len()
}

func (s *ChatService) newMessage(text string, sender model.Sender, at time.Time) model.ChatMessage {
	return model.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: at,
	}
}

func copySession(session *model.ChatSession) *model.ChatSession {
	out := *session
	out.Messages = append([]model.ChatMessage(nil), session.Messages...)
	return &out
}
