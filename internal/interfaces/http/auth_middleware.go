package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/pkg/jwt"
)

// Locals keys para los datos de la sesión autenticada en Fiber.
const (
	LocalUserID    = "user_id"
	LocalSessionID = "session_id"
	LocalRole      = "role"
)

// sessionChecker contrato mínimo para verificar que la sesión del token
// sigue viva. Lo implementa kvstore.SessionRepo; la interfaz evita acoplar
// el middleware al store concreto.
type sessionChecker interface {
	GetByID(id string) (*entity.Session, error)
}

// AuthMiddleware valida el Bearer Token JWT, comprueba que su sesión sigue
// existiendo (logout la elimina) y deja UserID, SessionID y Role en c.Locals.
// Una petición sin token válido recibe 401: es el análogo del redirect a
// login de una ruta protegida.
func AuthMiddleware(jwtSecret string, sessions sessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, sessionID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		session, err := sessions.GetByID(sessionID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_CHECK_FAILED", Message: "no se pudo verificar la sesión, intente más tarde"})
		}
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: "la sesión fue cerrada"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalSessionID, sessionID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireCapability devuelve un middleware que verifica la capacidad del rol
// del token contra la matriz de acceso. Debe usarse DESPUÉS de
// AuthMiddleware. Un rol sin la capacidad recibe 403, nunca datos parciales.
func RequireCapability(cap access.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "rol no encontrado en el token"})
		}
		if !access.Can(access.Role(role), cap) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol '" + role + "' no tiene la capacidad '" + string(cap) + "'"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetSessionID devuelve el SessionID del contexto.
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
