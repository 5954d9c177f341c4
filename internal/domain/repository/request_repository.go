package repository

import "github.com/jhoicas/banco-cliente/internal/domain/entity"

// LoanRequestFilter filtros del listado de solicitudes; cero = sin filtro.
type LoanRequestFilter struct {
	Status     entity.LoanRequestStatus
	BorrowerID int64
}

// LoanRequestRepository persistencia de solicitudes de préstamo.
type LoanRequestRepository interface {
	Create(r *entity.LoanRequest) error
	GetByID(id int64) (*entity.LoanRequest, error)
	List(filter LoanRequestFilter) ([]*entity.LoanRequest, error)
	Update(r *entity.LoanRequest) error
}

// RefinancingRepository persistencia de solicitudes de refinanciación.
type RefinancingRepository interface {
	Create(r *entity.RefinancingRequest) error
	GetByID(id int64) (*entity.RefinancingRequest, error)
	// List filtra por estado ("" = todas) y por prestatario (0 = todos).
	List(status entity.RefinancingStatus, borrowerID int64) ([]*entity.RefinancingRequest, error)
	Update(r *entity.RefinancingRequest) error
}
