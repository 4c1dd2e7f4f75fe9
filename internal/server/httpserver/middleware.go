package httpserver

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/gofiber/fiber/v2"
)

// requestLogger logs method, path, status and duration of every request
// together with the id assigned by the requestid middleware.
func requestLogger(log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		log.Info(c.UserContext(), "http",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
			"request_id", reqID,
		)
		return err
	}
}
