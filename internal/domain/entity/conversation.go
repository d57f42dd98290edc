package entity

import (
	"strings"
	"time"
)

type MessageSender string

const (
	SenderResident MessageSender = "resident"
	SenderHost     MessageSender = "host"
)

type Message struct {
	ID     string        `json:"id"`
	Sender MessageSender `json:"sender"`
	Text   string        `json:"text"`
	SentAt time.Time     `json:"sentAt"`
}

// Conversation is an ordered message thread between the resident and a host,
// keyed by property and contact name.
type Conversation struct {
	ID              string    `json:"id"`
	ContactName     string    `json:"contactName"`
	PropertyID      string    `json:"propertyId"`
	Messages        []Message `json:"messages"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`
	IsArchived      bool      `json:"isArchived"`
}

// ConversationID derives the deterministic thread id: lower-cased
// (propertyID, contactName) with whitespace runs collapsed to underscores.
func ConversationID(propertyID, contactName string) string {
	raw := strings.ToLower(propertyID + " " + contactName)
	return strings.Join(strings.Fields(raw), "_")
}

func NewConversation(propertyID, contactName string) *Conversation {
	return &Conversation{
		ID:          ConversationID(propertyID, contactName),
		ContactName: contactName,
		PropertyID:  propertyID,
		Messages:    []Message{},
	}
}

// Append adds the message and maintains the thread's denormalized fields.
// Host messages bump the unread counter.
func (c *Conversation) Append(m Message) {
	c.Messages = append(c.Messages, m)
	c.LastMessage = m.Text
	c.LastMessageTime = m.SentAt
	if m.Sender == SenderHost {
		c.UnreadCount++
	}
}

func (c *Conversation) MarkRead() {
	c.UnreadCount = 0
}
