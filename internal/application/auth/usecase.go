package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/access"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
	"github.com/tu-usuario/dwoms-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Options comportamiento de autenticación.
//
// En DemoMode cualquier password es válida para un email existente,
// pensado para entornos de demostración. LoginDelay simula latencia de red en
// login y registro; la operación no es cancelable durante la espera.
type Options struct {
	DemoMode   bool
	LoginDelay time.Duration
}

// UseCase casos de uso de identidad: registro, login, logout y sesión actual.
type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
	opts     Options
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, sessions repository.SessionRepository, jwtCfg JWTConfig, opts Options) *UseCase {
	return &UseCase{users: users, sessions: sessions, jwtCfg: jwtCfg, opts: opts}
}

// Signup registra un usuario nuevo y abre sesión. Devuelve
// ErrEmailAlreadyExists si el email ya está registrado (comparación
// case-insensitive). El password se guarda como hash bcrypt.
func (uc *UseCase) Signup(in dto.SignupRequest) (*dto.LoginResponse, error) {
	uc.simulateLatency()

	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := access.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(&user); err != nil {
		return nil, err
	}
	return uc.openSession(user)
}

// Login autentica por email y abre sesión. Email desconocido devuelve
// ErrUnauthorized; con DemoMode activo cualquier password pasa, sin él se
// verifica contra el hash bcrypt (las cuentas creadas por un admin no
// tienen hash y solo entran en modo demo).
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	uc.simulateLatency()

	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !uc.opts.DemoMode {
		if user.PasswordHash == "" {
			return nil, domain.ErrUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	}
	return uc.openSession(*user)
}

// Logout cierra la sesión. Idempotente: cerrar una sesión ya inexistente
// no es un error.
func (uc *UseCase) Logout(sessionID string) error {
	err := uc.sessions.Delete(sessionID)
	if err == domain.ErrNotFound {
		return nil
	}
	return err
}

// Me devuelve el usuario autenticado y sus capacidades; el cliente filtra
// con esa lista las entradas de navegación visibles.
func (uc *UseCase) Me(userID string) (*dto.MeResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	caps := access.Capabilities(user.Role)
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = string(c)
	}
	return &dto.MeResponse{
		User:         *toUserResponse(user),
		Capabilities: names,
	}, nil
}

// openSession persiste la sesión y emite el JWT que la referencia.
func (uc *UseCase) openSession(user entity.User) (*dto.LoginResponse, error) {
	session := entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.sessions.Create(&session); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, session.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(&user)}, nil
}

func (uc *UseCase) simulateLatency() {
	if uc.opts.LoginDelay > 0 {
		time.Sleep(uc.opts.LoginDelay)
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedBy: u.CreatedBy,
		CreatedAt: u.CreatedAt,
	}
}
