package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dareyes/inventario-pyme/pkg/logger"
)

// LogMiddleware registra cada petición con método, ruta, status y latencia.
func LogMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := log.Info()
		status := c.Response().StatusCode()
		if err != nil || status >= fiber.StatusInternalServerError {
			event = log.Error().Err(err)
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
