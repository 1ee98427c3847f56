package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendedores-api/internal/application/dto"
	"github.com/jhoicas/vendedores-api/pkg/logger"
)

// Mensajes de la API.
const (
	msgCreated          = "Vendedor creado correctamente"
	msgUpdated          = "Vendedor actualizado correctamente"
	msgDeleted          = "Vendedor eliminado correctamente"
	msgNotFound         = "Vendedor no encontrado"
	msgValidation       = "Errores de validación"
	msgInvalidBody      = "Cuerpo de la petición inválido"
	msgInternal         = "Error interno del servidor"
	msgRouteNotFound    = "Ruta no encontrada"
	msgMethodNotAllowed = "Método no permitido"
)

// ErrorHandler renderiza los errores no tratados por los handlers.
// Bajo /api responde con el sobre JSON; en las páginas, con texto plano.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := msgInternal
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			switch code {
			case fiber.StatusNotFound:
				msg = msgRouteNotFound
			case fiber.StatusMethodNotAllowed:
				msg = msgMethodNotAllowed
			default:
				msg = fe.Message
			}
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}

		if isAPI(c) {
			return c.Status(code).JSON(dto.Failure(msg, nil))
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(msg)
	}
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api")
}
