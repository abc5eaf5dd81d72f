package service

import (
	"deligo/internal/domain"
	"deligo/internal/repository"
)

// FeedService serves the mock notification, chat and call-history feeds.
type FeedService struct {
	feed repository.FeedRepository
}

// NewFeedService creates a new feed service.
func NewFeedService(feed repository.FeedRepository) *FeedService {
	return &FeedService{feed: feed}
}

// Notifications returns the notification feed.
func (s *FeedService) Notifications() ([]domain.Notification, error) {
	return s.feed.Notifications()
}

// Conversations returns all chat threads.
func (s *FeedService) Conversations() ([]domain.Conversation, error) {
	return s.feed.Conversations()
}

// Conversation looks up one chat thread.
func (s *FeedService) Conversation(id string) (*domain.Conversation, error) {
	return s.feed.ConversationByID(id)
}

// CallHistory returns the call log.
func (s *FeedService) CallHistory() ([]domain.CallEntry, error) {
	return s.feed.CallHistory()
}
