package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/internal/domain"
)

// respondError traduce un error de dominio al payload {title, message} con su
// status HTTP. Ningún error se traga en silencio: lo que el caso de uso no
// reconoce sale como 500 genérico.
func respondError(c *fiber.Ctx, err error) error {
	status, body := errorBody(err)
	return c.Status(status).JSON(body)
}

// errorBody mapea los sentinelas de dominio a status + cuerpo de error.
// 404 y 403 se distinguen a propósito: "no existe" y "existe pero es de otra
// empresa" son señales diferentes para el caller.
func errorBody(err error) (int, dto.ErrorResponse) {
	switch err {
	case domain.ErrInvalidInput:
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Title:   "Entrada inválida",
			Message: "la petición contiene campos faltantes o malformados",
		}
	case domain.ErrGatewayResponseIncomplete:
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Title:   "Respuesta del proveedor incompleta",
			Message: "la respuesta de ZapSign no contiene todos los campos requeridos",
		}
	case domain.ErrInvalidCredentials:
		return fiber.StatusUnauthorized, dto.ErrorResponse{
			Title:   "Credenciales inválidas",
			Message: "el email o la contraseña son incorrectos",
		}
	case domain.ErrUnauthorized:
		return fiber.StatusForbidden, dto.ErrorResponse{
			Title:   "Acceso no autorizado",
			Message: "no tiene autorización para acceder a este recurso",
		}
	case domain.ErrForbidden:
		return fiber.StatusForbidden, dto.ErrorResponse{
			Title:   "Cuenta inactiva",
			Message: "la cuenta de la empresa está desactivada",
		}
	case domain.ErrNotFound:
		return fiber.StatusNotFound, dto.ErrorResponse{
			Title:   "Recurso no encontrado",
			Message: "el recurso solicitado no existe",
		}
	case domain.ErrEmailAlreadyExists:
		return fiber.StatusConflict, dto.ErrorResponse{
			Title:   "Email ya registrado",
			Message: "ya existe una empresa con ese email",
		}
	case domain.ErrConflict:
		return fiber.StatusConflict, dto.ErrorResponse{
			Title:   "Conflicto",
			Message: "el documento todavía tiene firmantes asociados",
		}
	case domain.ErrDocumentCreateFailed:
		return fiber.StatusInternalServerError, dto.ErrorResponse{
			Title:   "Fallo al crear el documento",
			Message: "el documento no pudo crearse en la base de datos",
		}
	case domain.ErrDocumentUpdateFailed:
		return fiber.StatusInternalServerError, dto.ErrorResponse{
			Title:   "Fallo al actualizar el documento",
			Message: "el documento no pudo reconciliarse con los datos del proveedor",
		}
	case domain.ErrSignerCreateFailed:
		return fiber.StatusInternalServerError, dto.ErrorResponse{
			Title:   "Fallo al crear el firmante",
			Message: "el firmante no pudo agregarse al documento",
		}
	case domain.ErrGatewayFailure:
		return fiber.StatusBadGateway, dto.ErrorResponse{
			Title:   "Fallo del proveedor de firma",
			Message: "el documento no pudo crearse en la API de ZapSign",
		}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{
			Title:   "Error interno",
			Message: "ocurrió un error inesperado procesando la petición",
		}
	}
}
