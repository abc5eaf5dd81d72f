package service

import (
	"errors"

	"deligo/internal/domain"
	"deligo/internal/repository"

	"go.uber.org/zap"
)

// ErrInvalidLanguage rejects unsupported language codes.
var ErrInvalidLanguage = errors.New("unsupported language")

// ErrInvalidPhone rejects sign-in with a malformed phone number.
var ErrInvalidPhone = errors.New("invalid phone number")

// SessionService owns the per-chat app-state lifecycle: navigation,
// language, sign-in and sign-out, favorites.
type SessionService struct {
	sessions repository.SessionRepository
	logger   *zap.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(sessions repository.SessionRepository, logger *zap.Logger) *SessionService {
	return &SessionService{sessions: sessions, logger: logger}
}

// State returns the chat's current state, creating a session if needed.
func (s *SessionService) State(chatID int64) (domain.AppState, error) {
	return s.sessions.Get(chatID)
}

// Navigate moves the chat to the target screen, merging the payload.
func (s *SessionService) Navigate(chatID int64, target domain.ScreenID, payload *domain.NavPayload) (domain.AppState, error) {
	if !target.Valid() {
		s.logger.Warn("Navigation to unknown screen, degrading to home",
			zap.Int64("chat_id", chatID),
			zap.String("screen", string(target)),
		)
	}
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		return domain.Navigate(state, target, payload), nil
	})
}

// SetLanguage switches the session's display language.
func (s *SessionService) SetLanguage(chatID int64, lang domain.Language) (domain.AppState, error) {
	if !lang.Valid() {
		return domain.AppState{}, ErrInvalidLanguage
	}
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.Language = lang
		return state, nil
	})
}

// CompleteOnboarding marks the intro flow as done.
func (s *SessionService) CompleteOnboarding(chatID int64) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.OnboardingDone = true
		return state, nil
	})
}

// GrantLocation records the resolved address and the permission grant.
func (s *SessionService) GrantLocation(chatID int64, address string) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.LocationGranted = true
		state.Location = address
		return state, nil
	})
}

// LoginGuest signs the chat in as an anonymous guest.
func (s *SessionService) LoginGuest(chatID int64) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.User = domain.NewGuestUser()
		return state, nil
	})
}

// Login signs the chat in with a name and phone number.
func (s *SessionService) Login(chatID int64, name, phone string) (domain.AppState, error) {
	if !domain.ValidPhoneNumber(phone) {
		return domain.AppState{}, ErrInvalidPhone
	}
	state, err := s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.User = domain.NewUser(name, phone)
		return state, nil
	})
	if err == nil {
		s.logger.Info("User signed in", zap.Int64("chat_id", chatID))
	}
	return state, err
}

// UpdateProfileName renames the signed-in user. No-op for sessions without
// a user.
func (s *SessionService) UpdateProfileName(chatID int64, name string) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		if state.User != nil {
			u := *state.User
			u.Name = name
			u.IsGuest = false
			state.User = &u
		}
		return state, nil
	})
}

// Logout drops the user and cascades the reset of cart, orders, favorites
// and the location grant.
func (s *SessionService) Logout(chatID int64) (domain.AppState, error) {
	state, err := s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		return domain.Logout(state), nil
	})
	if err == nil {
		s.logger.Info("User logged out", zap.Int64("chat_id", chatID))
	}
	return state, err
}

// ToggleSaved flips the saved flag of a menu item.
func (s *SessionService) ToggleSaved(chatID int64, itemID string) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.SavedItemIDs = domain.ToggleSaved(state.SavedItemIDs, itemID)
		return state, nil
	})
}

// ToggleSidebar flips the sidebar flag.
func (s *SessionService) ToggleSidebar(chatID int64) (domain.AppState, error) {
	return s.sessions.Update(chatID, func(state domain.AppState) (domain.AppState, error) {
		state.SidebarOpen = !state.SidebarOpen
		return state, nil
	})
}
