package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestIDKey is the fiber locals key carrying the request ID.
const RequestIDKey = "request-id"

// RequestLogger assigns every request a UUID, exposes it via the
// X-Request-ID header and logs request start and completion.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.New().String()

		c.Locals(RequestIDKey, requestID)
		c.Set("X-Request-ID", requestID)

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("remote_addr", c.IP()).
			Msg("Request received")

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		log.Info().
			Str("request_id", requestID).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("Request completed")

		return err
	}
}

// RequestID returns the request ID assigned by RequestLogger, if any.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
