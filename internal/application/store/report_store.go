package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/application/ports"
	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/pkg/logger"
)

// ReportKind reporte disponible.
type ReportKind string

const (
	ReportLoanSummary  ReportKind = "resumen-prestamos"
	ReportDelinquents  ReportKind = "morosos"
	ReportRefinancings ReportKind = "refinanciaciones"
)

// ReportStore filas crudas de los reportes; las columnas las define el servicio.
type ReportStore struct {
	state
	api  ports.ReportAPI
	rows map[ReportKind][]entity.ReportRow
}

var _ ports.Resetter = (*ReportStore)(nil)

// NewReportStore construye el store vacío.
func NewReportStore(api ports.ReportAPI, log *logger.Logger) *ReportStore {
	return &ReportStore{state: newState(log, "store.reportes"), api: api, rows: map[ReportKind][]entity.ReportRow{}}
}

// Rows última lectura del reporte indicado.
func (s *ReportStore) Rows(kind ReportKind) []entity.ReportRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.rows[kind])
}

// Fetch lee el reporte y reemplaza sus filas.
func (s *ReportStore) Fetch(ctx context.Context, kind ReportKind) error {
	var call func(context.Context) ([]entity.ReportRow, error)
	switch kind {
	case ReportLoanSummary:
		call = s.api.LoanSummary
	case ReportDelinquents:
		call = s.api.Delinquents
	case ReportRefinancings:
		call = s.api.Refinancings
	default:
		return fmt.Errorf("store: reporte desconocido %q", kind)
	}

	s.begin()
	rows, err := call(ctx)
	if err == nil {
		s.mu.Lock()
		s.rows[kind] = rows
		s.mu.Unlock()
		s.log.Debug().Str("reporte", string(kind)).Int("filas", len(rows)).Msg("reporte cargado")
	}
	s.finish(err)
	return err
}

// Reset descarta todo el estado en memoria.
func (s *ReportStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = map[ReportKind][]entity.ReportRow{}
	s.resetState()
}
