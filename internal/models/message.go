package models

// Message is a single private message inside a conversation.
// swagger:model Message
type Message struct {
	ID           string `json:"id"`           // Time-derived identifier
	SenderID     string `json:"senderId"`     // Sender user ID
	SenderName   string `json:"senderName"`   // Sender display name at send time
	ReceiverID   string `json:"receiverId"`   // Receiver user ID
	ReceiverName string `json:"receiverName"` // Receiver display name at send time
	Message      string `json:"message"`      // Body text
	Timestamp    string `json:"timestamp"`    // ISO-8601 send time
}

// Conversations maps a conversation key to its messages in append order.
type Conversations map[string][]Message

// MessageEvent is published for every stored private message.
type MessageEvent struct {
	ConversationID string  `json:"conversation_id"` // Conversation key the message was appended to
	Message        Message `json:"message"`         // Stored message
}
