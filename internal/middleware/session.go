package middleware

import (
	"time"

	"deligo/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SessionMiddleware makes sure a session exists for the sender before any
// handler runs, so handlers never see a missing state.
func SessionMiddleware(sessions *service.SessionService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				logger.Warn("Update without sender, skipping")
				return nil
			}

			if _, err := sessions.State(c.Sender().ID); err != nil {
				logger.Error("Failed to ensure session in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again.")
			}
			return next(c)
		}
	}
}

// LoggingMiddleware logs every incoming update with its handling time.
func LoggingMiddleware(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Int64("chat_id", c.Sender().ID),
				zap.Duration("took", time.Since(start)),
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("callback", cb.Unique))
			} else {
				fields = append(fields, zap.String("text", c.Text()))
			}
			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
			} else {
				logger.Debug("Update handled", fields...)
			}
			return err
		}
	}
}
