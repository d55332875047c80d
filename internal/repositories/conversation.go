package repositories

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-private-chat/internal/idgen"
	"github.com/sbilibin2017/gw-private-chat/internal/jsonfile"
	"github.com/sbilibin2017/gw-private-chat/internal/logger"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
)

const (
	// ConversationsFileName is the name of the conversation store inside the data directory.
	ConversationsFileName = "private_chats.json"

	// DefaultMessageLimit is how many of the most recent messages a conversation keeps.
	DefaultMessageLimit = 100

	// TimestampLayout is the ISO-8601 layout used for stored timestamps.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ErrMissingField is returned when a message lacks a sender, receiver or body.
var ErrMissingField = errors.New("missing required field")

// ConversationKey returns the order-independent key of the conversation
// between two users.
func ConversationKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids[0] + "_" + ids[1]
}

// ConversationFileRepository persists all private conversations as one JSON
// object keyed by conversation key.
type ConversationFileRepository struct {
	file  *jsonfile.File[models.Conversations]
	limit int
	ids   *idgen.Generator
	now   func() time.Time
}

// NewConversationFileRepository opens the conversation store at path,
// creating an empty one if it is missing. limit <= 0 means DefaultMessageLimit.
func NewConversationFileRepository(path string, limit int, ids *idgen.Generator) (*ConversationFileRepository, error) {
	file := jsonfile.New(path, func() models.Conversations { return models.Conversations{} })
	if err := file.Init(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	return &ConversationFileRepository{
		file:  file,
		limit: limit,
		ids:   ids,
		now:   time.Now,
	}, nil
}

// LoadAll returns every conversation. An unreadable store reads as empty.
func (r *ConversationFileRepository) LoadAll(ctx context.Context) (models.Conversations, error) {
	all := r.file.Load()
	if all == nil {
		all = models.Conversations{}
	}
	return all, nil
}

// Append stores msg in the conversation between a and b, stamping it with a
// fresh ID and timestamp, and drops the oldest messages beyond the limit.
func (r *ConversationFileRepository) Append(ctx context.Context, a, b string, msg models.Message) (models.Message, error) {
	if isBlank(msg.SenderID, msg.SenderName, msg.ReceiverID, msg.ReceiverName, msg.Message) {
		return models.Message{}, ErrMissingField
	}

	key := ConversationKey(a, b)
	msg.ID = r.ids.Next()
	msg.Timestamp = r.now().UTC().Format(TimestampLayout)

	err := r.file.Update(func(all models.Conversations) (models.Conversations, error) {
		if all == nil {
			all = models.Conversations{}
		}

		list := append(all[key], msg)
		if len(list) > r.limit {
			list = append([]models.Message(nil), list[len(list)-r.limit:]...)
		}
		all[key] = list

		return all, nil
	})

	logger.Log.Infow("message appended",
		"conversation", key,
		"message_id", msg.ID,
		"error", err,
	)

	if err != nil {
		return models.Message{}, err
	}

	return msg, nil
}

// Fetch returns the messages between a and b in append order, or an empty
// slice when they never talked.
func (r *ConversationFileRepository) Fetch(ctx context.Context, a, b string) ([]models.Message, error) {
	all := r.file.Load()

	list, ok := all[ConversationKey(a, b)]
	if !ok || list == nil {
		return []models.Message{}, nil
	}
	return list, nil
}

func isBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
