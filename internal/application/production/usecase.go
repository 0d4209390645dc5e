// Package production contiene los casos de uso de entradas de producción:
// una colección append-only de registros inmutables.
package production

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/dwoms-api/internal/application/dto"
	"github.com/tu-usuario/dwoms-api/internal/domain"
	"github.com/tu-usuario/dwoms-api/internal/domain/entity"
	"github.com/tu-usuario/dwoms-api/internal/domain/repository"
)

// dateLayout formato del día calendario de una entrada (distinto del timestamp).
const dateLayout = "2006-01-02"

// UseCase aplica las reglas de negocio de producción.
type UseCase struct {
	repo  repository.ProductionRepository
	users repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductionRepository, users repository.UserRepository) *UseCase {
	return &UseCase{repo: repo, users: users}
}

// Create registra una entrada de producción a nombre del usuario autenticado.
// WorkerName es un snapshot del nombre actual del usuario y no sigue
// renombres posteriores. El registro es inmutable una vez persistido.
func (uc *UseCase) Create(workerID string, in dto.CreateProductionEntryRequest) (*entity.ProductionEntry, error) {
	worker, err := uc.users.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	entry := entity.ProductionEntry{
		ID:          uuid.New().String(),
		WorkerID:    worker.ID,
		WorkerName:  worker.Name,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Shift:       in.Shift,
		Date:        in.Date,
		Timestamp:   time.Now(),
	}
	if err := uc.repo.Create(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List devuelve todas las entradas.
func (uc *UseCase) List() ([]entity.ProductionEntry, error) {
	return uc.repo.List()
}

// ListByDate devuelve las entradas de un día calendario (YYYY-MM-DD).
func (uc *UseCase) ListByDate(date string) ([]entity.ProductionEntry, error) {
	entries, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := []entity.ProductionEntry{}
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListByWorker devuelve las entradas de un trabajador.
func (uc *UseCase) ListByWorker(workerID string) ([]entity.ProductionEntry, error) {
	entries, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := []entity.ProductionEntry{}
	for _, e := range entries {
		if e.WorkerID == workerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// TodayTotal suma las cantidades producidas con fecha de hoy.
func (uc *UseCase) TodayTotal() (int, error) {
	entries, err := uc.repo.List()
	if err != nil {
		return 0, err
	}
	today := time.Now().Format(dateLayout)
	total := 0
	for _, e := range entries {
		if e.Date == today {
			total += e.Quantity
		}
	}
	return total, nil
}

// WorkerProductivity agrega la cantidad total por trabajador, en orden
// descendente. Usa el snapshot de nombre de la primera entrada vista.
func (uc *UseCase) WorkerProductivity() ([]dto.WorkerProductivityDTO, error) {
	entries, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	byWorker := map[string]*dto.WorkerProductivityDTO{}
	order := []string{}
	for _, e := range entries {
		p, ok := byWorker[e.WorkerID]
		if !ok {
			p = &dto.WorkerProductivityDTO{WorkerID: e.WorkerID, WorkerName: e.WorkerName}
			byWorker[e.WorkerID] = p
			order = append(order, e.WorkerID)
		}
		p.Quantity += e.Quantity
	}
	out := make([]dto.WorkerProductivityDTO, 0, len(order))
	for _, id := range order {
		out = append(out, *byWorker[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out, nil
}
