package memory

import (
	"fmt"

	"github.com/jhoicas/banco-cliente/internal/domain/entity"
	"github.com/jhoicas/banco-cliente/internal/domain/repository"
)

var (
	_ repository.LoanRequestRepository = (*LoanRequestRepo)(nil)
	_ repository.RefinancingRepository = (*RefinancingRepo)(nil)
)

// LoanRequestRepo solicitudes de préstamo.
type LoanRequestRepo struct {
	db *DB
}

// NewLoanRequestRepository construye el repositorio.
func NewLoanRequestRepository(db *DB) *LoanRequestRepo {
	return &LoanRequestRepo{db: db}
}

// Create persiste la solicitud y le asigna id.
func (r *LoanRequestRepo) Create(req *entity.LoanRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	req.ID = r.db.requests.insert(0, *req)
	r.db.requests.rows[req.ID] = *req
	return nil
}

// GetByID obtiene una solicitud por id.
func (r *LoanRequestRepo) GetByID(id int64) (*entity.LoanRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	req, ok := r.db.requests.get(id)
	if !ok {
		return nil, nil
	}
	return &req, nil
}

// List solicitudes filtradas.
func (r *LoanRequestRepo) List(filter repository.LoanRequestFilter) ([]*entity.LoanRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var out []*entity.LoanRequest
	for _, req := range r.db.requests.all() {
		req := req
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.BorrowerID != 0 && req.BorrowerID != filter.BorrowerID {
			continue
		}
		out = append(out, &req)
	}
	return out, nil
}

// Update reemplaza el registro.
func (r *LoanRequestRepo) Update(req *entity.LoanRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.requests.put(req.ID, *req) {
		return fmt.Errorf("update loan request %d: no existe", req.ID)
	}
	return nil
}

// RefinancingRepo solicitudes de refinanciación.
type RefinancingRepo struct {
	db *DB
}

// NewRefinancingRepository construye el repositorio.
func NewRefinancingRepository(db *DB) *RefinancingRepo {
	return &RefinancingRepo{db: db}
}

// Create persiste la solicitud y le asigna id.
func (r *RefinancingRepo) Create(req *entity.RefinancingRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	req.ID = r.db.refis.insert(0, *req)
	r.db.refis.rows[req.ID] = *req
	return nil
}

// GetByID obtiene una solicitud por id.
func (r *RefinancingRepo) GetByID(id int64) (*entity.RefinancingRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	req, ok := r.db.refis.get(id)
	if !ok {
		return nil, nil
	}
	return &req, nil
}

// List solicitudes filtradas por estado y prestatario.
func (r *RefinancingRepo) List(status entity.RefinancingStatus, borrowerID int64) ([]*entity.RefinancingRequest, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var out []*entity.RefinancingRequest
	for _, req := range r.db.refis.all() {
		req := req
		if status != "" && req.Status != status {
			continue
		}
		if borrowerID != 0 && req.BorrowerID != borrowerID {
			continue
		}
		out = append(out, &req)
	}
	return out, nil
}

// Update reemplaza el registro.
func (r *RefinancingRepo) Update(req *entity.RefinancingRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !r.db.refis.put(req.ID, *req) {
		return fmt.Errorf("update refinancing %d: no existe", req.ID)
	}
	return nil
}
