package fiber

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger logs one line per request and propagates a request id,
// generating one when the client did not send it.
func RequestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDHeader, reqID)
		c.Locals("request_id", reqID)

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		entry := log.WithFields(logrus.Fields{
			"request_id": reqID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    time.Since(start).String(),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}

		return err
	}
}
