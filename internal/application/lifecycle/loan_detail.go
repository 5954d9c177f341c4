package lifecycle

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/application/store"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// LoanDetail vista de un préstamo: el registro, sus cuotas (del resumen del prestatario,
// filtradas por id de préstamo) y los demás préstamos del mismo prestatario.
type LoanDetail struct {
	loans        *store.LoanStore
	installments *store.InstallmentStore
	refis        *store.RefinancingStore
	notifier     ports.Notifier
	log          *logger.Logger

	mu       sync.RWMutex
	loan     *entity.Loan
	schedule []entity.InstallmentSummary
	siblings []entity.Loan
	errMsg   string
}

// NewLoanDetail compone la vista sobre los stores compartidos.
func NewLoanDetail(loans *store.LoanStore, installments *store.InstallmentStore, refis *store.RefinancingStore, notifier ports.Notifier, log *logger.Logger) *LoanDetail {
	if log == nil {
		log = logger.Nop()
	}
	return &LoanDetail{
		loans:        loans,
		installments: installments,
		refis:        refis,
		notifier:     notifier,
		log:          log.Named("lifecycle.detalle"),
	}
}

// Load lee el préstamo y luego el resumen del prestatario dueño.
// Si alguna lectura falla la vista anterior se conserva y Err() guarda el mensaje.
func (d *LoanDetail) Load(ctx context.Context, loanID int64) error {
	loan, err := d.loans.Get(ctx, loanID)
	if err != nil {
		d.fail(err)
		return err
	}
	if err := d.loans.FetchByBorrower(ctx, strconv.FormatInt(loan.BorrowerID, 10)); err != nil {
		d.fail(err)
		return err
	}

	var schedule []entity.InstallmentSummary
	for _, c := range d.loans.Installments() {
		if c.LoanID == loan.ID {
			schedule = append(schedule, c)
		}
	}

	d.mu.Lock()
	d.loan, d.schedule, d.siblings, d.errMsg = loan, schedule, d.loans.Items(), ""
	d.mu.Unlock()
	d.log.Debug().Int64("id_prestamo", loan.ID).Int("cuotas", len(schedule)).Msg("detalle cargado")
	return nil
}

func (d *LoanDetail) fail(err error) {
	d.mu.Lock()
	d.errMsg = err.Error()
	d.mu.Unlock()
}

// Loan préstamo cargado (nil antes del primer Load exitoso).
func (d *LoanDetail) Loan() *entity.Loan {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.loan == nil {
		return nil
	}
	cp := *d.loan
	return &cp
}

// Schedule cuotas del préstamo.
func (d *LoanDetail) Schedule() []entity.InstallmentSummary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]entity.InstallmentSummary, len(d.schedule))
	copy(out, d.schedule)
	return out
}

// Siblings todos los préstamos del prestatario, incluido este.
func (d *LoanDetail) Siblings() []entity.Loan {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]entity.Loan, len(d.siblings))
	copy(out, d.siblings)
	return out
}

// ActiveLoans préstamos ACTIVO del prestatario. Solo informa: el tope lo aplica el servicio.
func (d *LoanDetail) ActiveLoans() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return entity.CountActive(d.siblings)
}

// Err último error de carga.
func (d *LoanDetail) Err() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.errMsg
}

// RequestRefinancing pide un nuevo número de cuotas para el préstamo cargado.
// La entrada inválida no llega al servicio.
func (d *LoanDetail) RequestRefinancing(ctx context.Context, rawCount, comment string) (int64, error) {
	loan := d.Loan()
	if loan == nil {
		return 0, fmt.Errorf("lifecycle: detalle sin préstamo cargado: %w", domain.ErrInvalidInput)
	}
	n, err := parsePositiveInt(rawCount)
	if err != nil {
		d.notifier.Enqueue(MsgInvalidNewInstallments, entity.SeverityError)
		return 0, err
	}
	id, err := d.refis.Create(ctx, loan.ID, n, comment)
	if err != nil {
		return 0, err
	}
	d.notifier.Enqueue(MsgRefinancingRequested, entity.SeveritySuccess)
	d.log.Info().Int64("id_prestamo", loan.ID).Int("nuevo_nro_cuotas", n).Msg("refinanciación solicitada")
	return id, nil
}

// PayInstallment registra el pago y recarga el detalle. Solo notifica éxito si el servicio lo aceptó.
func (d *LoanDetail) PayInstallment(ctx context.Context, installmentID int64, in dto.PayInstallmentRequest) (*entity.PaymentResult, error) {
	res, err := d.installments.Pay(ctx, installmentID, in)
	if err != nil {
		return nil, err
	}
	d.notifier.Enqueue(MsgPaymentRegistered, entity.SeveritySuccess)
	if loan := d.Loan(); loan != nil {
		// el pago ya quedó registrado; la falla de la recarga queda en Err()
		if err := d.Load(ctx, loan.ID); err != nil {
			d.log.Debug().Err(err).Int64("id_prestamo", loan.ID).Msg("recarga del detalle fallida")
		}
	}
	return res, nil
}
