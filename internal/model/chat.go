package model

import "time"

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry of a conversation transcript
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is a transcript kept in memory for one visitor
type ChatSession struct {
	ID        string        `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
}

// ChatRequest carries one user utterance
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the stateless reply to an utterance
type ChatResponse struct {
	Reply string `json:"reply"`
	Rule  string `json:"rule"`
}

// ChatExchange is the result of sending a message to a session
type ChatExchange struct {
	SessionID string      `json:"session_id"`
	User      ChatMessage `json:"user"`
	Bot       ChatMessage `json:"bot"`
}
