package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/dwoms-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/dwoms-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testSessionID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "dwoms-test"
	testExpMin    = 60
)

// sessionStub emula el repositorio de sesiones: conoce una única sesión viva.
type sessionStub struct {
	alive map[string]*entity.Session
	err   error
}

func (s *sessionStub) GetByID(id string) (*entity.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.alive[id], nil
}

func liveSessionStub() *sessionStub {
	return &sessionStub{alive: map[string]*entity.Session{
		testSessionID: {ID: testSessionID, UserID: testUserID, Role: access.RoleAdmin, CreatedAt: time.Now()},
	}}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT, verificar la sesión y cargar locals
//   - RequireCapability para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(sessions *sessionStub, cap access.Capability) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, sessions),
		apphttp.RequireCapability(cap),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado, ligado a la sesión de test.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testSessionID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCapability
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El rol tiene la capacidad requerida → debe pasar (HTTP 200).
func TestRequireCapability_AdminAccedeGestionUsuarios(t *testing.T) {
	app := buildTestApp(liveSessionStub(), access.CapManageUsers)
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta que exige manage-users")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
}

// Caso 1b: supervisor tiene view-reports → HTTP 200.
func TestRequireCapability_SupervisorAccedeReportes(t *testing.T) {
	app := buildTestApp(liveSessionStub(), access.CapViewReports)
	resp := doRequest(t, app, tokenForRole(t, "supervisor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"supervisor debe poder acceder a ruta que exige view-reports")
}

// Caso 2: El rol no tiene la capacidad requerida → HTTP 403 Forbidden.
func TestRequireCapability_WorkerBloqueadoEnReportes(t *testing.T) {
	app := buildTestApp(liveSessionStub(), access.CapViewReports)
	resp := doRequest(t, app, tokenForRole(t, "worker"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"worker no debe poder acceder a ruta que exige view-reports")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: client solo ve el dashboard; bloqueado en submit-production → 403.
func TestRequireCapability_ClientBloqueadoEnProduccion(t *testing.T) {
	app := buildTestApp(liveSessionStub(), access.CapSubmitProduction)
	resp := doRequest(t, app, tokenForRole(t, "client"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin claim de rol → HTTP 401 MISSING_ROLE.
func TestRequireCapability_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(liveSessionStub(), access.CapViewDashboard)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testSessionID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireCapability_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(liveSessionStub(), access.CapViewDashboard)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireCapability_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(liveSessionStub(), access.CapViewDashboard)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — verificación de sesión
// ──────────────────────────────────────────────────────────────────────────────

// Un token bien firmado cuya sesión ya fue cerrada (logout) debe recibir 401.
func TestAuthMiddleware_SesionCerrada_Retorna401(t *testing.T) {
	empty := &sessionStub{alive: map[string]*entity.Session{}}
	app := buildTestApp(empty, access.CapViewDashboard)

	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token de una sesión cerrada debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_CLOSED")
}

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, liveSessionStub()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"session_id": apphttp.GetSessionID(c),
			"role":       apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testSessionID, body["session_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con role y session
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testSessionID, "supervisor", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, sessionID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testSessionID, sessionID)
	assert.Equal(t, "supervisor", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testSessionID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testSessionID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
