package handler

import (
	"errors"
	"net/http"

	"tunisiaclean/internal/model"
	"tunisiaclean/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the assistant chat endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Respond handles POST /api/v1/chat
func (h *ChatHandler) Respond(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.chatService.Respond(req.Message)
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateSession handles POST /api/v1/chat/sessions
func (h *ChatHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.chatService.CreateSession())
}

// History handles GET /api/v1/chat/sessions/:id
func (h *ChatHandler) History(c *gin.Context) {
	session, err := h.chatService.History(c.Param("id"))
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Send handles POST /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	exchange, err := h.chatService.Send(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		writeChatError(c, err)
		return
	}
	c.JSON(http.StatusOK, exchange)
}

// SendStream handles POST /api/v1/chat/sessions/:id/stream - SSE typing indicator then reply
func (h *ChatHandler) SendStream(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Validate before switching to event-stream so errors keep their status code
	if _, err := h.chatService.History(c.Param("id")); err != nil {
		writeChatError(c, err)
		return
	}
	if _, err := h.chatService.Respond(req.Message); err != nil {
		writeChatError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}
	setSSEHeaders(c)

	exchange, err := h.chatService.SendStream(c.Request.Context(), c.Param("id"), req.Message, func(event string, data any) error {
		sendSSE(c, event, data)
		flusher.Flush()
		return nil
	})
	if err != nil {
		sendSSE(c, "error", map[string]any{"error": err.Error()})
		flusher.Flush()
		return
	}

	sendSSE(c, "done", map[string]any{"session_id": exchange.SessionID})
	flusher.Flush()
}

func writeChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed: " + err.Error()})
	}
}
