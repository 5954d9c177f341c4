package repository

import "github.com/jhoicas/banco-cliente/internal/domain/entity"

// BorrowerRepository persistencia de prestatarios. La cédula es única.
type BorrowerRepository interface {
	Create(b *entity.Borrower) error
	GetByID(id int64) (*entity.Borrower, error)
	GetByCI(ci string) (*entity.Borrower, error)
	List() ([]*entity.Borrower, error)
	Update(b *entity.Borrower) error
	Delete(id int64) error
}

// LoadLogRepository historial de cargas masivas.
type LoadLogRepository interface {
	Create(log *entity.LoadLog) error
	List() ([]*entity.LoadLog, error)
}
