package domain

import "time"

// Notification is one entry on the notifications screen. Mock feed data.
type Notification struct {
	ID        string
	TitleEN   string
	TitleRW   string
	BodyEN    string
	BodyRW    string
	CreatedAt time.Time
	Read      bool
}

// Title returns the notification title for the given language.
func (n Notification) Title(lang Language) string {
	if lang == LanguageKinyarwanda && n.TitleRW != "" {
		return n.TitleRW
	}
	return n.TitleEN
}

// Body returns the notification body for the given language.
func (n Notification) Body(lang Language) string {
	if lang == LanguageKinyarwanda && n.BodyRW != "" {
		return n.BodyRW
	}
	return n.BodyEN
}

// Conversation is one chat thread with a vendor or courier. Mock feed data;
// there is no real transport behind it.
type Conversation struct {
	ID          string
	PartnerName string
	LastMessage string
	UpdatedAt   time.Time
	Unread      int
	Messages    []ChatMessage
}

// ChatMessage is one message inside a conversation.
type ChatMessage struct {
	ID       string
	FromUser bool
	Text     string
	SentAt   time.Time
}

// CallEntry is one row of the call history screen. Mock feed data.
type CallEntry struct {
	ID          string
	PartnerName string
	Incoming    bool
	Missed      bool
	At          time.Time
	Duration    time.Duration
}
