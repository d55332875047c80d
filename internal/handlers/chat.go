package handlers

//go:generate mockgen -source=chat.go -destination=chat_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

// PrivateMessageFetcher reads a private conversation.
type PrivateMessageFetcher interface {
	FetchPrivateMessages(ctx context.Context, userID, otherID string) ([]models.Message, error)
}

// PrivateMessageSender stores a private message.
type PrivateMessageSender interface {
	SendPrivateMessage(ctx context.Context, msg models.Message) (models.Message, error)
}

// SendMessageRequest represents the JSON body for sending a private message
// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Sender ID
	// required: true
	UserID string `json:"userId"`

	// Sender display name
	// required: true
	Username string `json:"username"`

	// Receiver ID
	// required: true
	ReceiverID string `json:"receiverId"`

	// Receiver display name
	// required: true
	ReceiverName string `json:"receiverName"`

	// Message text
	// required: true
	// default: hello
	Message string `json:"message"`
}

// SendMessageResponse represents a stored private message
// swagger:model SendMessageResponse
type SendMessageResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Stored message
	Message models.Message `json:"message"`
}

// NewGetPrivateChatHandler returns an HTTP handler reading a conversation.
// @Summary Get private conversation
// @Description Returns the messages between two users, oldest first. The order of the two IDs does not matter.
// @Tags chat
// @Produce json
// @Param userId query string true "User ID"
// @Param receiverId query string true "Other user ID"
// @Success 200 {array} models.Message
// @Failure default {object} handlers.ErrorResponse "Missing ids"
// @Router /chat/private [get]
func NewGetPrivateChatHandler(svc PrivateMessageFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("userId")
		receiverID := r.URL.Query().Get("receiverId")
		if userID == "" || receiverID == "" {
			writeError(w, "User ID and receiver ID are required")
			return
		}

		messages, err := svc.FetchPrivateMessages(r.Context(), userID, receiverID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, messages)
	}
}

// NewSendPrivateMessageHandler returns an HTTP handler storing a private message.
// @Summary Send private message
// @Description Appends a message to the conversation and refreshes the sender's online status. Only the last 100 messages are kept.
// @Tags chat
// @Accept json
// @Produce json
// @Param sendMessageRequest body handlers.SendMessageRequest true "Message"
// @Success 200 {object} handlers.SendMessageResponse
// @Failure default {object} handlers.ErrorResponse "Missing field"
// @Router /chat/private [post]
func NewSendPrivateMessageHandler(svc PrivateMessageSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendMessageRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.UserID == "" || req.Username == "" || req.ReceiverID == "" || req.ReceiverName == "" || req.Message == "" {
			writeError(w, "All fields are required")
			return
		}

		stored, err := svc.SendPrivateMessage(r.Context(), models.Message{
			SenderID:     req.UserID,
			SenderName:   req.Username,
			ReceiverID:   req.ReceiverID,
			ReceiverName: req.ReceiverName,
			Message:      req.Message,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, SendMessageResponse{Success: true, Message: stored})
	}
}
