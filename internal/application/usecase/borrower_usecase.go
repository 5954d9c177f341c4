package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/banco-cliente/internal/application/dto"
	"github.com/jhoicas/banco-cliente/internal/domain"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

// BorrowerUseCase alta, consulta y carga masiva de prestatarios.
type BorrowerUseCase struct {
	borrowers    repository.BorrowerRepository
	logs         repository.LoadLogRepository
	loans        repository.LoanRepository
	installments repository.InstallmentRepository
	tx           TxRunner
	now          Clock
}

// NewBorrowerUseCase construye el caso de uso. now nil = reloj del sistema.
func NewBorrowerUseCase(
	borrowers repository.BorrowerRepository,
	logs repository.LoadLogRepository,
	loans repository.LoanRepository,
	installments repository.InstallmentRepository,
	tx TxRunner,
	now Clock,
) *BorrowerUseCase {
	return &BorrowerUseCase{borrowers: borrowers, logs: logs, loans: loans, installments: installments, tx: tx, now: now.orNow()}
}

// List todos los prestatarios.
func (uc *BorrowerUseCase) List() ([]dto.BorrowerResponse, error) {
	list, err := uc.borrowers.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BorrowerResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBorrowerResponse(b))
	}
	return out, nil
}

// GetByCI prestatario por cédula.
func (uc *BorrowerUseCase) GetByCI(ci string) (*dto.BorrowerResponse, error) {
	b, err := uc.byCI(ci)
	if err != nil {
		return nil, err
	}
	out := toBorrowerResponse(b)
	return &out, nil
}

// Me perfil del prestatario autenticado.
func (uc *BorrowerUseCase) Me(viewer entity.Identity) (*dto.BorrowerResponse, error) {
	if viewer.BorrowerID == nil {
		return nil, notFound("El usuario no está asociado a un prestatario.")
	}
	b, err := uc.borrowers.GetByID(*viewer.BorrowerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("Prestatario no encontrado.")
	}
	out := toBorrowerResponse(b)
	return &out, nil
}

// Create registra un prestatario. La cédula es única.
func (uc *BorrowerUseCase) Create(ctx context.Context, viewer entity.Identity, in dto.CreateBorrowerRequest) (*dto.BorrowerResponse, error) {
	b := &entity.Borrower{
		CI:           strings.TrimSpace(in.CI),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Address:      in.Address,
		Email:        in.Email,
		Phone:        in.Phone,
		BirthDate:    in.BirthDate,
		ClientStatus: in.ClientStatus,
		RegisteredAt: uc.now.today(),
		RegisteredBy: in.RegisteredBy,
	}
	if b.ClientStatus == "" {
		b.ClientStatus = "ACTIVO"
	}
	if b.RegisteredBy == "" {
		b.RegisteredBy = viewer.Username
	}
	if reason := validateBorrower(b); reason != "" {
		return nil, invalid(reason)
	}
	err := uc.tx.Run(ctx, func() error {
		return uc.insert(b)
	})
	if err != nil {
		return nil, err
	}
	out := toBorrowerResponse(b)
	return &out, nil
}

func (uc *BorrowerUseCase) insert(b *entity.Borrower) error {
	existing, err := uc.borrowers.GetByCI(b.CI)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewRuleError(domain.ErrConflict, "", fmt.Sprintf("Ya existe un prestatario con la cédula %s.", b.CI))
	}
	return uc.borrowers.Create(b)
}

func validateBorrower(b *entity.Borrower) string {
	switch {
	case b.CI == "":
		return "La cédula es obligatoria."
	case b.FirstName == "":
		return "El nombre es obligatorio."
	case b.LastName == "":
		return "El apellido es obligatorio."
	}
	return ""
}

// Update aplica los campos presentes.
func (uc *BorrowerUseCase) Update(ci string, in dto.UpdateBorrowerRequest) (*dto.BorrowerResponse, error) {
	b, err := uc.byCI(ci)
	if err != nil {
		return nil, err
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&b.FirstName, in.FirstName)
	set(&b.LastName, in.LastName)
	set(&b.Address, in.Address)
	set(&b.Email, in.Email)
	set(&b.Phone, in.Phone)
	set(&b.BirthDate, in.BirthDate)
	set(&b.ClientStatus, in.ClientStatus)
	if reason := validateBorrower(b); reason != "" {
		return nil, invalid(reason)
	}
	if err := uc.borrowers.Update(b); err != nil {
		return nil, err
	}
	out := toBorrowerResponse(b)
	return &out, nil
}

// Delete elimina un prestatario sin préstamos.
func (uc *BorrowerUseCase) Delete(ctx context.Context, ci string) error {
	return uc.tx.Run(ctx, func() error {
		b, err := uc.byCI(ci)
		if err != nil {
			return err
		}
		loans, err := uc.loans.ListByBorrower(b.ID)
		if err != nil {
			return err
		}
		if len(loans) > 0 {
			return domain.NewRuleError(domain.ErrConflict, "", "No se puede eliminar un prestatario con préstamos registrados.")
		}
		return uc.borrowers.Delete(b.ID)
	})
}

// BulkLoad registra prestatarios desde un CSV (ci,nombre,apellido[,email,telefono,direccion]).
// La primera línea se toma como encabezado si su primera columna es "ci". Las líneas inválidas se
// reportan sin abortar la carga y todo queda en el historial.
func (uc *BorrowerUseCase) BulkLoad(ctx context.Context, viewer entity.Identity, filename string, content []byte) (*dto.BulkLoadResponse, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, invalid("El archivo está vacío.")
	}
	var src io.Reader = bytes.NewReader(content)
	if !utf8.Valid(content) {
		// planillas exportadas en Latin-1
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	result := entity.BulkLoadResult{}
	line := 0
	err := uc.tx.Run(ctx, func() error {
		for {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			line++
			if err != nil {
				result.Total++
				result.Rejected++
				result.Details = append(result.Details, entity.BulkLoadDetail{Line: line, Reason: "Formato inválido."})
				continue
			}
			if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "ci") {
				continue
			}
			result.Total++
			if reason := uc.loadRow(rec, viewer.Username); reason != "" {
				result.Rejected++
				result.Details = append(result.Details, entity.BulkLoadDetail{Line: line, Reason: reason})
				continue
			}
			result.Accepted++
		}
	})
	if err != nil {
		return nil, err
	}

	log := &entity.LoadLog{
		FileName: filename,
		LoadedAt: uc.now().Format("2006-01-02 15:04:05"),
		User:     viewer.Username,
		Valid:    result.Accepted,
		Rejected: result.Rejected,
		Details:  result.Details,
	}
	if err := uc.logs.Create(log); err != nil {
		return nil, err
	}
	return &dto.BulkLoadResponse{
		Total:    result.Total,
		Accepted: result.Accepted,
		Rejected: result.Rejected,
		Details:  toDetailResponses(result.Details),
		LogID:    log.ID,
	}, nil
}

// loadRow devuelve el motivo de rechazo o "" si la fila quedó registrada.
func (uc *BorrowerUseCase) loadRow(rec []string, user string) string {
	if len(rec) < 3 {
		return "Se esperaban al menos 3 columnas (ci, nombre, apellido)."
	}
	col := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	b := &entity.Borrower{
		CI:           col(0),
		FirstName:    col(1),
		LastName:     col(2),
		Email:        col(3),
		Phone:        col(4),
		Address:      col(5),
		ClientStatus: "ACTIVO",
		RegisteredAt: uc.now.today(),
		RegisteredBy: user,
	}
	if reason := validateBorrower(b); reason != "" {
		return reason
	}
	if err := uc.insert(b); err != nil {
		var rule *domain.RuleError
		if errors.As(err, &rule) {
			return rule.Message
		}
		return err.Error()
	}
	return ""
}

// LoadLogs historial de cargas, la más reciente primero.
func (uc *BorrowerUseCase) LoadLogs() ([]dto.LoadLogResponse, error) {
	logs, err := uc.logs.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoadLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.LoadLogResponse{
			ID:       l.ID,
			FileName: l.FileName,
			LoadedAt: l.LoadedAt,
			User:     l.User,
			Valid:    l.Valid,
			Rejected: l.Rejected,
			Details:  toDetailResponses(l.Details),
		})
	}
	return out, nil
}

// Delinquency MOROSO si el prestatario tiene al menos una cuota impaga vencida.
func (uc *BorrowerUseCase) Delinquency(viewer entity.Identity, borrowerID int64) (*dto.DelinquencyResponse, error) {
	if !canView(viewer, borrowerID) {
		return nil, errNotOwner
	}
	b, err := uc.borrowers.GetByID(borrowerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("Prestatario no encontrado.")
	}
	loans, err := uc.loans.ListByBorrower(borrowerID)
	if err != nil {
		return nil, err
	}
	today := uc.now.today()
	overdue := 0
	for _, l := range loans {
		schedule, err := uc.installments.ListByLoan(l.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range schedule {
			if effectiveStatus(*c, today) == entity.InstallmentDelinquent {
				overdue++
			}
		}
	}
	status := entity.DelinquencyActivo
	if overdue > 0 {
		status = entity.DelinquencyMoroso
	}
	return &dto.DelinquencyResponse{BorrowerID: borrowerID, Status: string(status), OverdueUnpaidCount: overdue}, nil
}

func (uc *BorrowerUseCase) byCI(ci string) (*entity.Borrower, error) {
	b, err := uc.borrowers.GetByCI(strings.TrimSpace(ci))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("Prestatario no encontrado.")
	}
	return b, nil
}

// resolveBorrower busca por cédula y, si no aparece y la clave es numérica, por id.
func resolveBorrower(repo repository.BorrowerRepository, key string) (*entity.Borrower, error) {
	key = strings.TrimSpace(key)
	b, err := repo.GetByCI(key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		if id, convErr := strconv.ParseInt(key, 10, 64); convErr == nil {
			if b, err = repo.GetByID(id); err != nil {
				return nil, err
			}
		}
	}
	if b == nil {
		return nil, notFound("Prestatario no encontrado.")
	}
	return b, nil
}
