package handler

import (
	tele "gopkg.in/telebot.v3"
)

// handleStart handles the /start command. A fresh chat lands on the splash
// screen; a returning one picks up wherever it left off.
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Sender().ID
	h.ResetInput(chatID)
	return h.showScreen(c, chatID)
}
