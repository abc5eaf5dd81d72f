package handler

import (
	"strings"

	"deligo/internal/domain"
	"deligo/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText drives the conversations that need free-text input: search,
// sign-in, the checkout form and profile renaming. A field that fails
// validation is re-prompted without advancing the flow.
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	state, err := h.sessions.State(chatID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(i18n.T(domain.LanguageEnglish, i18n.KeyErrorGeneric))
	}
	lang := state.Language

	input := h.GetInput(chatID)
	switch input.State {
	case domain.InputSearchQuery:
		return h.handleSearchQuery(c, chatID, text)

	case domain.InputLoginName:
		if text == "" {
			return c.Send(i18n.T(lang, i18n.KeyErrNameRequired))
		}
		form := input.Form
		form.FullName = text
		h.SetInput(chatID, &domain.InputData{State: domain.InputLoginPhone, Form: form})
		return c.Send(i18n.T(lang, i18n.KeyLoginPhonePrompt))

	case domain.InputLoginPhone:
		if !domain.ValidPhoneNumber(text) {
			return c.Send(i18n.T(lang, i18n.KeyErrInvalidPhone))
		}
		if _, err := h.sessions.Login(chatID, input.Form.FullName, text); err != nil {
			h.logger.Error("Sign-in failed", zap.Error(err), zap.Int64("chat_id", chatID))
			return c.Send(i18n.T(lang, i18n.KeyErrorGeneric))
		}
		h.ResetInput(chatID)
		next, err := h.sessions.Navigate(chatID, domain.ScreenHome, nil)
		if err != nil {
			return c.Send(i18n.T(lang, i18n.KeyErrorGeneric))
		}
		return h.respondScreen(c, chatID, next)

	case domain.InputCheckoutName:
		if text == "" {
			return c.Send(i18n.T(lang, i18n.KeyErrNameRequired))
		}
		form := input.Form
		form.FullName = text
		h.SetInput(chatID, &domain.InputData{State: domain.InputCheckoutPhone, Form: form})
		return c.Send(i18n.T(lang, i18n.KeyCheckoutPhone))

	case domain.InputCheckoutPhone:
		if !domain.ValidPhoneNumber(text) {
			return c.Send(i18n.T(lang, i18n.KeyErrInvalidPhone))
		}
		form := input.Form
		form.PhoneNumber = text
		h.SetInput(chatID, &domain.InputData{State: domain.InputCheckoutAddress, Form: form})
		return c.Send(i18n.T(lang, i18n.KeyCheckoutAddress))

	case domain.InputCheckoutAddress:
		if text == "" {
			return c.Send(i18n.T(lang, i18n.KeyErrAddressRequired))
		}
		form := input.Form
		form.DeliveryAddress = text
		h.SetInput(chatID, &domain.InputData{State: domain.InputIdle, Form: form})
		return c.Send(i18n.T(lang, i18n.KeyCheckoutPayment), h.paymentMarkup())

	case domain.InputProfileName:
		if text == "" {
			return c.Send(i18n.T(lang, i18n.KeyErrNameRequired))
		}
		if _, err := h.sessions.UpdateProfileName(chatID, text); err != nil {
			return c.Send(i18n.T(lang, i18n.KeyErrorGeneric))
		}
		h.ResetInput(chatID)
		next, err := h.sessions.Navigate(chatID, domain.ScreenProfile, nil)
		if err != nil {
			return c.Send(i18n.T(lang, i18n.KeyErrorGeneric))
		}
		c.Send(i18n.T(lang, i18n.KeyProfileUpdated))
		return h.respondScreen(c, chatID, next)
	}

	// Any other text is treated as a search from wherever the user is.
	return h.handleSearchQuery(c, chatID, text)
}

// handleSearchQuery stores the query in the nav payload and renders the
// results screen.
func (h *Handler) handleSearchQuery(c tele.Context, chatID int64, query string) error {
	h.ResetInput(chatID)

	state, err := h.sessions.Navigate(chatID, domain.ScreenSearch, &domain.NavPayload{Query: &query})
	if err != nil {
		h.logger.Error("Failed to record search", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(i18n.T(domain.LanguageEnglish, i18n.KeyErrorGeneric))
	}
	return h.respondScreen(c, chatID, state)
}
