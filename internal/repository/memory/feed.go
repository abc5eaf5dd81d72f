package memory

import (
	"errors"
	"time"

	"deligo/internal/domain"
)

// ErrConversationNotFound is returned for unknown conversation ids.
var ErrConversationNotFound = errors.New("conversation not found")

// Feed serves the mock notification, chat and call-history data. Stands in
// for a real messaging backend; read-only after construction.
type Feed struct {
	notifications []domain.Notification
	conversations []domain.Conversation
	calls         []domain.CallEntry
}

// NewFeed creates a feed seeded with mock data.
func NewFeed() *Feed {
	now := time.Now()
	return &Feed{
		notifications: []domain.Notification{
			{
				ID:        "ntf-welcome",
				TitleEN:   "Welcome to DeliGo 🎉",
				TitleRW:   "Murakaza neza kuri DeliGo 🎉",
				BodyEN:    "Your first delivery is on us — order today.",
				BodyRW:    "Itumiza rya mbere turikwishyurira — tumiza uyu munsi.",
				CreatedAt: now.Add(-48 * time.Hour),
				Read:      true,
			},
			{
				ID:        "ntf-promo",
				TitleEN:   "Weekend deal at Kigali Pizza House",
				TitleRW:   "Igabanyirizwa rya weekend kuri Kigali Pizza House",
				BodyEN:    "Two pizzas for the price of one, Saturday only.",
				BodyRW:    "Pizza ebyiri ku giciro kimwe, kuwa gatandatu gusa.",
				CreatedAt: now.Add(-5 * time.Hour),
			},
		},
		conversations: []domain.Conversation{
			{
				ID:          "conv-courier",
				PartnerName: "Jean Bosco (courier)",
				LastMessage: "I'm at the gate, blue jacket.",
				UpdatedAt:   now.Add(-30 * time.Minute),
				Unread:      1,
				Messages: []domain.ChatMessage{
					{ID: "msg-1", FromUser: false, Text: "Your order is on the way!", SentAt: now.Add(-50 * time.Minute)},
					{ID: "msg-2", FromUser: true, Text: "Great, the house with the green roof.", SentAt: now.Add(-40 * time.Minute)},
					{ID: "msg-3", FromUser: false, Text: "I'm at the gate, blue jacket.", SentAt: now.Add(-30 * time.Minute)},
				},
			},
			{
				ID:          "conv-support",
				PartnerName: "DeliGo Support",
				LastMessage: "Glad we could help!",
				UpdatedAt:   now.Add(-3 * 24 * time.Hour),
				Messages: []domain.ChatMessage{
					{ID: "msg-4", FromUser: true, Text: "My order arrived cold.", SentAt: now.Add(-3*24*time.Hour - time.Hour)},
					{ID: "msg-5", FromUser: false, Text: "Sorry about that — a credit has been added to your account.", SentAt: now.Add(-3*24*time.Hour - 30*time.Minute)},
					{ID: "msg-6", FromUser: false, Text: "Glad we could help!", SentAt: now.Add(-3 * 24 * time.Hour)},
				},
			},
		},
		calls: []domain.CallEntry{
			{ID: "call-1", PartnerName: "Jean Bosco (courier)", Incoming: true, At: now.Add(-25 * time.Minute), Duration: 40 * time.Second},
			{ID: "call-2", PartnerName: "Mama Africa Kitchen", Incoming: false, At: now.Add(-2 * 24 * time.Hour), Duration: 95 * time.Second},
			{ID: "call-3", PartnerName: "DeliGo Support", Incoming: true, Missed: true, At: now.Add(-4 * 24 * time.Hour)},
		},
	}
}

// Notifications returns the notification feed, newest first.
func (f *Feed) Notifications() ([]domain.Notification, error) {
	return append([]domain.Notification(nil), f.notifications...), nil
}

// Conversations returns all chat threads.
func (f *Feed) Conversations() ([]domain.Conversation, error) {
	return append([]domain.Conversation(nil), f.conversations...), nil
}

// ConversationByID looks up one chat thread.
func (f *Feed) ConversationByID(id string) (*domain.Conversation, error) {
	for i := range f.conversations {
		if f.conversations[i].ID == id {
			c := f.conversations[i]
			return &c, nil
		}
	}
	return nil, ErrConversationNotFound
}

// CallHistory returns the call log.
func (f *Feed) CallHistory() ([]domain.CallEntry, error) {
	return append([]domain.CallEntry(nil), f.calls...), nil
}
