package httpserver

import (
	"errors"

	"github.com/dmitrijs2005/ejcdigital/internal/server/documents"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) health(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (s *Server) document(c *fiber.Ctx) error {
	name := c.Params("name")

	b, err := s.store.Get(name)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "document not found")
		}
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(b)
}

// errorHandler answers every failure with a small JSON body. Unexpected
// errors are logged and reported as 500 without detail.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code, msg = fe.Code, fe.Message
	} else {
		s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	}

	return c.Status(code).JSON(fiber.Map{"error": msg})
}
