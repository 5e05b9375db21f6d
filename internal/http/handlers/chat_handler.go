// README: Chat handlers (open session, submit turn, history, close).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"menuboard/internal/assistant"
)

type ChatHandler struct {
	assistant   *assistant.Service
	turnTimeout time.Duration
}

func NewChatHandler(svc *assistant.Service, turnTimeout time.Duration) *ChatHandler {
	if turnTimeout <= 0 {
		turnTimeout = 10 * time.Second
	}
	return &ChatHandler{assistant: svc, turnTimeout: turnTimeout}
}

// Open handles POST /api/chat/sessions.
func (h *ChatHandler) Open(c *gin.Context) {
	sess := h.assistant.Open()
	writeJSON(c, http.StatusCreated, gin.H{
		"id":       sess.ID,
		"messages": sess.History(),
	})
}

type submitReq struct {
	Message string `json:"message"`
}

// Submit handles POST /api/chat/sessions/:id/messages. The timeout bounds the
// remote generation call; an expired turn still answers through the local
// pipeline before the handler returns.
func (h *ChatHandler) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.turnTimeout)
	defer cancel()

	msg, err := h.assistant.Submit(ctx, c.Param("id"), req.Message)
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, msg)
}

// History handles GET /api/chat/sessions/:id/messages.
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.assistant.History(c.Param("id"))
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"messages": messages})
}

// Close handles DELETE /api/chat/sessions/:id.
func (h *ChatHandler) Close(c *gin.Context) {
	if err := h.assistant.Close(c.Param("id")); err != nil {
		writeChatError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
