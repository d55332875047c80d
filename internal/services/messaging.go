package services

//go:generate mockgen -source=messaging.go -destination=messaging_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
	"github.com/sbilibin2017/gw-private-chat/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// ConversationStore keeps private conversations.
type ConversationStore interface {
	Append(ctx context.Context, a, b string, msg models.Message) (models.Message, error)
	Fetch(ctx context.Context, a, b string) ([]models.Message, error)
}

// StatusTracker records heartbeats.
type StatusTracker interface {
	SetOnline(ctx context.Context, userID string) error
	SetOffline(ctx context.Context, userID string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MessagingService handles presence updates and private messages.
type MessagingService struct {
	conversations ConversationStore
	presence      StatusTracker
	kafkaWriter   KafkaWriter
}

// NewMessagingService creates a new MessagingService. kafkaWriter may be nil.
func NewMessagingService(
	conversations ConversationStore,
	presence StatusTracker,
	kafkaWriter KafkaWriter,
) *MessagingService {
	return &MessagingService{
		conversations: conversations,
		presence:      presence,
		kafkaWriter:   kafkaWriter,
	}
}

// SetStatus marks a user online (heartbeat) or offline.
func (s *MessagingService) SetStatus(ctx context.Context, userID string, online bool) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingField
	}

	var err error
	if online {
		err = s.presence.SetOnline(ctx, userID)
	} else {
		err = s.presence.SetOffline(ctx, userID)
	}
	if err != nil {
		logger.Log.Errorw("failed to update status", "user_id", userID, "online", online, "error", err)
		return err
	}

	return nil
}

// SendPrivateMessage refreshes the sender's presence, stores the message and
// publishes it.
func (s *MessagingService) SendPrivateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	if strings.TrimSpace(msg.SenderID) != "" {
		if err := s.presence.SetOnline(ctx, msg.SenderID); err != nil {
			logger.Log.Warnw("failed to refresh sender presence", "user_id", msg.SenderID, "error", err)
		}
	}

	stored, err := s.conversations.Append(ctx, msg.SenderID, msg.ReceiverID, msg)
	if err != nil {
		logger.Log.Errorw("failed to store message", "sender", msg.SenderID, "receiver", msg.ReceiverID, "error", err)
		return models.Message{}, err
	}

	s.publishMessage(ctx, models.MessageEvent{
		ConversationID: repositories.ConversationKey(stored.SenderID, stored.ReceiverID),
		Message:        stored,
	})

	return stored, nil
}

// FetchPrivateMessages returns the conversation between two users.
func (s *MessagingService) FetchPrivateMessages(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(otherID) == "" {
		return nil, ErrMissingField
	}

	messages, err := s.conversations.Fetch(ctx, userID, otherID)
	if err != nil {
		logger.Log.Errorw("failed to fetch messages", "user_id", userID, "other_id", otherID, "error", err)
		return nil, err
	}

	return messages, nil
}

// publishMessage publishes a stored message to Kafka.
func (s *MessagingService) publishMessage(ctx context.Context, event models.MessageEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "message_id", event.Message.ID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal message for Kafka", "message_id", event.Message.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ConversationID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish message to Kafka", "message_id", event.Message.ID, "error", err)
	} else {
		logger.Log.Infow("Message published to Kafka", "message_id", event.Message.ID, "conversation", event.ConversationID)
	}
}
