package kvstore

import (
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre la colección
// dwoms_sessions del store.
type SessionRepo struct {
	store *Store
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(store *Store) *SessionRepo {
	return &SessionRepo{store: store}
}

func (r *SessionRepo) list() ([]entity.Session, error) {
	sessions := []entity.Session{}
	if err := r.store.Get(KeySessions, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetByID obtiene una sesión por ID; nil si ya no existe (logout).
func (r *SessionRepo) GetByID(id string) (*entity.Session, error) {
	sessions, err := r.list()
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i], nil
		}
	}
	return nil, nil
}

// Create agrega la sesión y reescribe la colección.
func (r *SessionRepo) Create(session *entity.Session) error {
	sessions, err := r.list()
	if err != nil {
		return err
	}
	sessions = append(sessions, *session)
	return r.store.Set(KeySessions, sessions)
}

// Delete elimina la sesión por ID (logout).
func (r *SessionRepo) Delete(id string) error {
	sessions, err := r.list()
	if err != nil {
		return err
	}
	kept := sessions[:0]
	found := false
	for _, s := range sessions {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return domain.ErrNotFound
	}
	return r.store.Set(KeySessions, kept)
}
