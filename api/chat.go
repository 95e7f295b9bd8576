package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/user/moodlog/pkg/models"
	"github.com/user/moodlog/pkg/repository"
)

// defaultChatUser matches the mobile client's anonymous fallback identity.
const defaultChatUser = "test_user"

type ChatHandler struct {
	chats  repository.ChatRepo
	engine Engine
}

func NewChatHandler(cr repository.ChatRepo, engine Engine) *ChatHandler {
	return &ChatHandler{chats: cr, engine: engine}
}

type chatRequest struct {
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
}

// Chat persists the user's turn, relays the message to the model and
// persists the AI turn linked back to the user message. The response body is
// the raw reply text, not JSON — the client renders it directly.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeValid(r.Context(), r.Body, chatSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, "Message is required", nil)
		return
	}

	user := req.User
	if user == "" {
		user = userFromContext(r.Context())
	}
	if user == "" {
		user = defaultChatUser
	}

	userMsg := &models.ChatMessage{ID: uuid.NewString(), User: user, Message: message}
	if err := h.chats.InsertMessage(r.Context(), userMsg); err != nil {
		writeStoreError(w, err)
		return
	}

	reply, err := h.engine.Chat(r.Context(), message)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Chatbot error", map[string]any{"details": err.Error()})
		return
	}

	aiMsg := &models.ChatMessage{
		ID:              uuid.NewString(),
		User:            "ai",
		Message:         reply,
		ParentMessageID: &userMsg.ID,
	}
	if err := h.chats.InsertMessage(r.Context(), aiMsg); err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, reply)
}
