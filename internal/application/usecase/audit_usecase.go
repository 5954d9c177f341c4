package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// auditLayout marca de tiempo de los registros de auditoría.
const auditLayout = "2006-01-02 15:04:05"

// defaultAuditLimit tamaño de página cuando el pedido no indica límite.
const defaultAuditLimit = 100

// AuditUseCase registro y consulta de auditoría de sesiones y operaciones.
type AuditUseCase struct {
	audits repository.AuditRepository
	now    Clock
}

// NewAuditUseCase construye el caso de uso. now nil = reloj del sistema.
func NewAuditUseCase(audits repository.AuditRepository, now Clock) *AuditUseCase {
	return &AuditUseCase{audits: audits, now: now.orNow()}
}

// Register abre un registro con la hora actual como entrada.
func (uc *AuditUseCase) Register(in dto.RegisterAuditRequest) (*dto.AuditRef, error) {
	user := strings.TrimSpace(in.User)
	if user == "" {
		return nil, invalid("El usuario es obligatorio.")
	}
	a := &entity.AuditLog{
		User:        user,
		IP:          in.IP,
		Domain:      in.Domain,
		EnteredAt:   uc.now().Format(auditLayout),
		Table:       in.Table,
		Operation:   strings.ToUpper(strings.TrimSpace(in.Operation)),
		Description: in.Description,
	}
	if err := uc.audits.Create(a); err != nil {
		return nil, err
	}
	return &dto.AuditRef{ID: a.ID}, nil
}

// Logs registros filtrados, más recientes primero. limit <= 0 usa la página por defecto.
func (uc *AuditUseCase) Logs(filter repository.AuditFilter) ([]dto.AuditResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Operation = strings.ToUpper(filter.Operation)
	list, err := uc.audits.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAuditResponse(a))
	}
	return out, nil
}

// Finish cierra la sesión: fija la salida y la duración HH:MM:SS.
func (uc *AuditUseCase) Finish(id int64) (*dto.AuditResponse, error) {
	a, err := uc.audits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("Registro de auditoría no encontrado.")
	}
	if !a.IsOpen() {
		return nil, domain.NewRuleError(domain.ErrConflict, "", "La sesión ya fue finalizada.")
	}
	now := uc.now()
	exited := now.Format(auditLayout)
	a.ExitedAt = &exited
	if entered, err := time.ParseInLocation(auditLayout, a.EnteredAt, now.Location()); err == nil {
		d := sessionDuration(now.Sub(entered))
		a.SessionDuration = &d
	}
	if err := uc.audits.Update(a); err != nil {
		return nil, err
	}
	out := toAuditResponse(a)
	return &out, nil
}

func sessionDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}

func toAuditResponse(a *entity.AuditLog) dto.AuditResponse {
	return dto.AuditResponse{
		ID:              a.ID,
		User:            a.User,
		IP:              a.IP,
		Domain:          a.Domain,
		EnteredAt:       a.EnteredAt,
		ExitedAt:        a.ExitedAt,
		Table:           a.Table,
		Operation:       a.Operation,
		SessionDuration: a.SessionDuration,
		Description:     a.Description,
	}
}
