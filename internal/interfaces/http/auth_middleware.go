package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/esign-api/internal/application/dto"
	"github.com/jhoicas/esign-api/pkg/jwt"
)

// Local key para el CompanyID autenticado en Fiber.
const LocalCompanyID = "company_id"

// AuthMiddleware valida el Bearer Token JWT y extrae el CompanyID a c.Locals.
// Esa identidad es el ancla de propiedad de todos los servicios: nunca se
// re-deriva ni se acepta del cuerpo de la petición.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Title: "Token requerido", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Title: "Token inválido", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Title: "Token requerido", Message: "token vacío"})
		}
		companyID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Title: "Token inválido", Message: "token inválido o expirado"})
		}
		c.Locals(LocalCompanyID, companyID)
		return c.Next()
	}
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
