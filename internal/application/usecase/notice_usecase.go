package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// reminderWindow días de anticipación de los recordatorios de pago.
const reminderWindow = 7

// NoticeUseCase genera, lista y despacha los avisos a prestatarios.
type NoticeUseCase struct {
	notices      repository.NoticeRepository
	loans        repository.LoanRepository
	installments repository.InstallmentRepository
	now          Clock
}

// NewNoticeUseCase construye el caso de uso. now nil = reloj del sistema.
func NewNoticeUseCase(
	notices repository.NoticeRepository,
	loans repository.LoanRepository,
	installments repository.InstallmentRepository,
	now Clock,
) *NoticeUseCase {
	return &NoticeUseCase{notices: notices, loans: loans, installments: installments, now: now.orNow()}
}

// Pending avisos sin enviar. Un PRESTATARIO solo ve los suyos.
func (uc *NoticeUseCase) Pending(viewer entity.Identity) ([]dto.NoticeResponse, error) {
	return uc.list(viewer, true)
}

// History todos los avisos. Un PRESTATARIO solo ve los suyos.
func (uc *NoticeUseCase) History(viewer entity.Identity) ([]dto.NoticeResponse, error) {
	return uc.list(viewer, false)
}

func (uc *NoticeUseCase) list(viewer entity.Identity, pendingOnly bool) ([]dto.NoticeResponse, error) {
	var borrowerID int64
	if viewer.Role == entity.RoleBorrower {
		if viewer.BorrowerID == nil {
			return nil, notFound("El usuario no está asociado a un prestatario.")
		}
		borrowerID = *viewer.BorrowerID
	}
	list, err := uc.notices.List(borrowerID, pendingOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NoticeResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoticeResponse(n))
	}
	return out, nil
}

// Send marca como enviados los avisos pendientes del tipo.
func (uc *NoticeUseCase) Send(kind string) (*dto.NoticeBatchResponse, error) {
	k := entity.NoticeKind(kind)
	if !k.Valid() {
		return nil, invalid("Tipo de notificación inválido. Use PAGO, MORA o CANCELACION.")
	}
	n, err := uc.notices.MarkSent(k)
	if err != nil {
		return nil, err
	}
	return &dto.NoticeBatchResponse{Kind: string(k), Count: n}, nil
}

// GeneratePaymentReminders avisa las cuotas pendientes que vencen dentro de la ventana.
func (uc *NoticeUseCase) GeneratePaymentReminders() (*dto.NoticeBatchResponse, error) {
	now := uc.now()
	today := now.Format(dateLayout)
	limit := now.AddDate(0, 0, reminderWindow).Format(dateLayout)
	return uc.generateForInstallments(entity.NoticePayment, func(c *entity.Installment) (string, bool) {
		if effectiveStatus(*c, today) != entity.InstallmentPending || c.DueDate > limit {
			return "", false
		}
		return fmt.Sprintf("Recordatorio: la cuota %d del préstamo %d vence el %s. Monto: %s.",
			c.SequenceNumber, c.LoanID, c.DueDate, c.Amount.StringFixed(2)), true
	})
}

// GenerateDelinquencyNotices avisa las cuotas en mora.
func (uc *NoticeUseCase) GenerateDelinquencyNotices() (*dto.NoticeBatchResponse, error) {
	today := uc.now.today()
	return uc.generateForInstallments(entity.NoticeDelinquency, func(c *entity.Installment) (string, bool) {
		if effectiveStatus(*c, today) != entity.InstallmentDelinquent {
			return "", false
		}
		return fmt.Sprintf("La cuota %d del préstamo %d está en mora desde el %s. Monto adeudado: %s.",
			c.SequenceNumber, c.LoanID, c.DueDate, c.Amount.StringFixed(2)), true
	})
}

// GenerateCancellationNotices avisa los préstamos cancelados.
func (uc *NoticeUseCase) GenerateCancellationNotices() (*dto.NoticeBatchResponse, error) {
	seen, err := uc.existing(entity.NoticeCancellation)
	if err != nil {
		return nil, err
	}
	loans, err := uc.loans.List()
	if err != nil {
		return nil, err
	}
	created := 0
	for _, l := range loans {
		if l.Status != entity.LoanCanceled || seen[l.ID] {
			continue
		}
		n := &entity.Notice{
			BorrowerID: int64Ptr(l.BorrowerID),
			LoanID:     int64Ptr(l.ID),
			Kind:       entity.NoticeCancellation,
			Message:    fmt.Sprintf("El préstamo %d fue cancelado.", l.ID),
			CreatedAt:  uc.now().Format(time.DateTime),
		}
		if err := uc.notices.Create(n); err != nil {
			return nil, err
		}
		created++
	}
	return &dto.NoticeBatchResponse{Kind: string(entity.NoticeCancellation), Count: created}, nil
}

func (uc *NoticeUseCase) generateForInstallments(kind entity.NoticeKind, message func(*entity.Installment) (string, bool)) (*dto.NoticeBatchResponse, error) {
	seen, err := uc.existing(kind)
	if err != nil {
		return nil, err
	}
	items, err := uc.installments.List()
	if err != nil {
		return nil, err
	}
	created := 0
	for _, c := range items {
		if seen[c.ID] {
			continue
		}
		msg, ok := message(c)
		if !ok {
			continue
		}
		n := &entity.Notice{
			BorrowerID:    int64Ptr(c.BorrowerID),
			InstallmentID: int64Ptr(c.ID),
			LoanID:        int64Ptr(c.LoanID),
			Kind:          kind,
			Message:       msg,
			CreatedAt:     uc.now().Format(time.DateTime),
		}
		if err := uc.notices.Create(n); err != nil {
			return nil, err
		}
		created++
	}
	return &dto.NoticeBatchResponse{Kind: string(kind), Count: created}, nil
}

// existing ids (cuota o préstamo) que ya tienen un aviso del tipo.
func (uc *NoticeUseCase) existing(kind entity.NoticeKind) (map[int64]bool, error) {
	list, err := uc.notices.List(0, false)
	if err != nil {
		return nil, err
	}
	seen := map[int64]bool{}
	for _, n := range list {
		if n.Kind != kind {
			continue
		}
		switch {
		case kind == entity.NoticeCancellation && n.LoanID != nil:
			seen[*n.LoanID] = true
		case n.InstallmentID != nil:
			seen[*n.InstallmentID] = true
		}
	}
	return seen, nil
}

func toNoticeResponse(n *entity.Notice) dto.NoticeResponse {
	return dto.NoticeResponse{
		ID:            n.ID,
		BorrowerID:    n.BorrowerID,
		InstallmentID: n.InstallmentID,
		LoanID:        n.LoanID,
		Kind:          string(n.Kind),
		Message:       n.Message,
		Sent:          n.Sent,
		CreatedAt:     n.CreatedAt,
	}
}
